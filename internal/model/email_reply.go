// internal/model/email_reply.go
package model

import "time"

// EmailReply is the audit record of an admin's outbound reply to a form
// submission. It is written only after the provider accepts the message, so
// every row corresponds to a delivered (or at least provider-accepted) email.
type EmailReply struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id" firestore:"-"`
	SubmissionID   string    `gorm:"type:text;not null;index" json:"submissionId" firestore:"submissionId"`
	SubmissionType FormType  `gorm:"type:text;not null;index" json:"submissionType" firestore:"submissionType"`
	RecipientEmail string    `gorm:"type:text;not null" json:"recipientEmail" firestore:"recipientEmail"`
	Subject        string    `gorm:"type:text;not null" json:"subject" firestore:"subject"`
	Body           string    `gorm:"type:text;not null" json:"body" firestore:"body"`
	SentBy         string    `gorm:"type:text;not null" json:"sentBy" firestore:"sentBy"`
	SentAt         time.Time `json:"sentAt" firestore:"sentAt"`
}
