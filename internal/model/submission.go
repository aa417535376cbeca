// internal/model/submission.go
package model

import "time"

// SubmissionStatus tracks admin triage of a form submission. Transitions are
// admin-only and unconstrained; any status may follow any other.
type SubmissionStatus string

const (
	StatusPending   SubmissionStatus = "pending"
	StatusApproved  SubmissionStatus = "approved"
	StatusRejected  SubmissionStatus = "rejected"
	StatusCompleted SubmissionStatus = "completed"
)

// ValidStatus reports whether s is a recognized triage status.
func ValidStatus(s SubmissionStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// MembershipTypes enumerates the membership tiers a register submission may
// apply for.
var MembershipTypes = []string{
	"entrepreneur",
	"student",
	"campus_innovator",
	"business",
	"investor",
	"institutional",
}

// ContactCategories enumerates the routing categories of the contact form.
var ContactCategories = []string{"general", "partnership", "corporate", "campus"}

// FormType identifies one of the submission collections. It appears in admin
// routes and on email-reply audit records.
type FormType string

const (
	FormApply        FormType = "apply"
	FormRegister     FormType = "register"
	FormConsultation FormType = "consultation"
	FormAdvisory     FormType = "advisory"
	FormCampusInvite FormType = "campus-invite"
	FormContact      FormType = "contact"
)

// ValidFormType reports whether t names a submission collection.
func ValidFormType(t FormType) bool {
	switch t {
	case FormApply, FormRegister, FormConsultation, FormAdvisory, FormCampusInvite, FormContact:
		return true
	}
	return false
}

type ApplyFormSubmission struct {
	ID              string           `gorm:"type:uuid;primaryKey" json:"id" firestore:"-"`
	FullName        string           `gorm:"type:text;not null" json:"fullName" firestore:"fullName"`
	Email           string           `gorm:"type:text;not null" json:"email" firestore:"email"`
	Phone           string           `gorm:"type:text;not null" json:"phone" firestore:"phone"`
	Organization    string           `gorm:"type:text" json:"organization,omitempty" firestore:"organization"`
	ProgramInterest string           `gorm:"type:text" json:"programInterest,omitempty" firestore:"programInterest"`
	Message         string           `gorm:"type:text" json:"message,omitempty" firestore:"message"`
	Status          SubmissionStatus `gorm:"type:text;not null;default:'pending'" json:"status" firestore:"status"`
	AdminNotes      *string          `gorm:"type:text" json:"adminNotes" firestore:"adminNotes"`
	CreatedAt       time.Time        `json:"createdAt" firestore:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt" firestore:"updatedAt"`
}

type RegisterFormSubmission struct {
	ID             string           `gorm:"type:uuid;primaryKey" json:"id" firestore:"-"`
	FullName       string           `gorm:"type:text;not null" json:"fullName" firestore:"fullName"`
	Email          string           `gorm:"type:text;not null" json:"email" firestore:"email"`
	Phone          string           `gorm:"type:text;not null" json:"phone" firestore:"phone"`
	MembershipType string           `gorm:"type:text;not null" json:"membershipType" firestore:"membershipType"`
	Organization   string           `gorm:"type:text" json:"organization,omitempty" firestore:"organization"`
	Designation    string           `gorm:"type:text" json:"designation,omitempty" firestore:"designation"`
	LinkedIn       string           `gorm:"column:linkedin;type:text" json:"linkedIn,omitempty" firestore:"linkedIn"`
	Reason         string           `gorm:"type:text;not null" json:"reason" firestore:"reason"`
	Status         SubmissionStatus `gorm:"type:text;not null;default:'pending'" json:"status" firestore:"status"`
	AdminNotes     *string          `gorm:"type:text" json:"adminNotes" firestore:"adminNotes"`
	CreatedAt      time.Time        `json:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt" firestore:"updatedAt"`
}

type ConsultationSubmission struct {
	ID               string           `gorm:"type:uuid;primaryKey" json:"id" firestore:"-"`
	FullName         string           `gorm:"type:text;not null" json:"fullName" firestore:"fullName"`
	Email            string           `gorm:"type:text;not null" json:"email" firestore:"email"`
	Phone            string           `gorm:"type:text;not null" json:"phone" firestore:"phone"`
	Organization     string           `gorm:"type:text" json:"organization,omitempty" firestore:"organization"`
	ConsultationType string           `gorm:"type:text" json:"consultationType,omitempty" firestore:"consultationType"`
	PreferredDate    string           `gorm:"type:text" json:"preferredDate,omitempty" firestore:"preferredDate"`
	Message          string           `gorm:"type:text" json:"message,omitempty" firestore:"message"`
	Status           SubmissionStatus `gorm:"type:text;not null;default:'pending'" json:"status" firestore:"status"`
	AdminNotes       *string          `gorm:"type:text" json:"adminNotes" firestore:"adminNotes"`
	CreatedAt        time.Time        `json:"createdAt" firestore:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt" firestore:"updatedAt"`
}

type AdvisorySessionSubmission struct {
	ID            string           `gorm:"type:uuid;primaryKey" json:"id" firestore:"-"`
	FullName      string           `gorm:"type:text;not null" json:"fullName" firestore:"fullName"`
	Email         string           `gorm:"type:text;not null" json:"email" firestore:"email"`
	Phone         string           `gorm:"type:text;not null" json:"phone" firestore:"phone"`
	Organization  string           `gorm:"type:text" json:"organization,omitempty" firestore:"organization"`
	SessionTopic  string           `gorm:"type:text" json:"sessionTopic,omitempty" firestore:"sessionTopic"`
	PreferredDate string           `gorm:"type:text" json:"preferredDate,omitempty" firestore:"preferredDate"`
	Message       string           `gorm:"type:text" json:"message,omitempty" firestore:"message"`
	Status        SubmissionStatus `gorm:"type:text;not null;default:'pending'" json:"status" firestore:"status"`
	AdminNotes    *string          `gorm:"type:text" json:"adminNotes" firestore:"adminNotes"`
	CreatedAt     time.Time        `json:"createdAt" firestore:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt" firestore:"updatedAt"`
}

type CampusInviteSubmission struct {
	ID                string           `gorm:"type:uuid;primaryKey" json:"id" firestore:"-"`
	FullName          string           `gorm:"type:text;not null" json:"fullName" firestore:"fullName"`
	Email             string           `gorm:"type:text;not null" json:"email" firestore:"email"`
	Phone             string           `gorm:"type:text;not null" json:"phone" firestore:"phone"`
	Institution       string           `gorm:"type:text;not null" json:"institution" firestore:"institution"`
	Designation       string           `gorm:"type:text" json:"designation,omitempty" firestore:"designation"`
	EventType         string           `gorm:"type:text" json:"eventType,omitempty" firestore:"eventType"`
	PreferredDate     string           `gorm:"type:text" json:"preferredDate,omitempty" firestore:"preferredDate"`
	ExpectedAttendees string           `gorm:"type:text" json:"expectedAttendees,omitempty" firestore:"expectedAttendees"`
	Message           string           `gorm:"type:text" json:"message,omitempty" firestore:"message"`
	Status            SubmissionStatus `gorm:"type:text;not null;default:'pending'" json:"status" firestore:"status"`
	AdminNotes        *string          `gorm:"type:text" json:"adminNotes" firestore:"adminNotes"`
	CreatedAt         time.Time        `json:"createdAt" firestore:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt" firestore:"updatedAt"`
}

type ContactSubmission struct {
	ID         string           `gorm:"type:uuid;primaryKey" json:"id" firestore:"-"`
	FullName   string           `gorm:"type:text;not null" json:"fullName" firestore:"fullName"`
	Email      string           `gorm:"type:text;not null" json:"email" firestore:"email"`
	Phone      string           `gorm:"type:text" json:"phone,omitempty" firestore:"phone"`
	Category   string           `gorm:"type:text;not null" json:"category" firestore:"category"`
	Subject    string           `gorm:"type:text" json:"subject,omitempty" firestore:"subject"`
	Message    string           `gorm:"type:text;not null" json:"message" firestore:"message"`
	Status     SubmissionStatus `gorm:"type:text;not null;default:'pending'" json:"status" firestore:"status"`
	AdminNotes *string          `gorm:"type:text" json:"adminNotes" firestore:"adminNotes"`
	CreatedAt  time.Time        `json:"createdAt" firestore:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt" firestore:"updatedAt"`
}
