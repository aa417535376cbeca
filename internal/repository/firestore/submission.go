// internal/repository/firestore/submission.go
package firestore

import (
	"context"
	"fmt"

	cloudfs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/keralaeconomicforum/forum/internal/model"
)

// statusUpdates builds the triage-field writes shared by every submission
// collection. AdminNotes is written even when nil so clearing notes works.
func statusUpdates(status model.SubmissionStatus, notes *string) []cloudfs.Update {
	var notesValue any
	if notes != nil {
		notesValue = *notes
	}
	return []cloudfs.Update{
		{Path: "status", Value: string(status)},
		{Path: "adminNotes", Value: notesValue},
		{Path: "updatedAt", Value: cloudfs.ServerTimestamp},
	}
}

// newSubmissionFields starts the write map every submission create shares:
// generated id is the doc key, status forced to pending, notes null.
func newSubmissionFields(fullName, email, phone string) map[string]any {
	return map[string]any{
		"fullName":   fullName,
		"email":      email,
		"phone":      phone,
		"status":     string(model.StatusPending),
		"adminNotes": nil,
		"createdAt":  cloudfs.ServerTimestamp,
		"updatedAt":  cloudfs.ServerTimestamp,
	}
}

type ApplyFormRepository struct {
	client *cloudfs.Client
}

func NewApplyFormRepository(client *cloudfs.Client) *ApplyFormRepository {
	return &ApplyFormRepository{client: client}
}

func decodeApplyForm(doc *cloudfs.DocumentSnapshot) (*model.ApplyFormSubmission, error) {
	var submission model.ApplyFormSubmission
	if err := doc.DataTo(&submission); err != nil {
		return nil, fmt.Errorf("decoding apply submission document: %w", err)
	}
	submission.ID = doc.Ref.ID
	return &submission, nil
}

func (r *ApplyFormRepository) FindAll(ctx context.Context) ([]model.ApplyFormSubmission, error) {
	docs, err := r.client.Collection(colApplyForms).
		OrderBy("createdAt", cloudfs.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to find apply submissions: %w", err)
	}

	submissions := make([]model.ApplyFormSubmission, 0, len(docs))
	for _, doc := range docs {
		submission, err := decodeApplyForm(doc)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, *submission)
	}
	return submissions, nil
}

func (r *ApplyFormRepository) Create(ctx context.Context, submission *model.ApplyFormSubmission) error {
	submission.ID = uuid.NewString()

	fields := newSubmissionFields(submission.FullName, submission.Email, submission.Phone)
	putIfSet(fields, "organization", submission.Organization)
	putIfSet(fields, "programInterest", submission.ProgramInterest)
	putIfSet(fields, "message", submission.Message)

	docRef := r.client.Collection(colApplyForms).Doc(submission.ID)
	if _, err := docRef.Set(ctx, fields); err != nil {
		return fmt.Errorf("failed to create apply submission: %w", err)
	}

	doc, err := docRef.Get(ctx)
	if err != nil {
		return fmt.Errorf("reloading apply submission: %w", err)
	}
	stored, err := decodeApplyForm(doc)
	if err != nil {
		return err
	}
	*submission = *stored
	return nil
}

func (r *ApplyFormRepository) UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.ApplyFormSubmission, error) {
	doc, err := applyDocUpdate(ctx, r.client.Collection(colApplyForms).Doc(id), statusUpdates(status, notes))
	if err != nil {
		return nil, err
	}
	return decodeApplyForm(doc)
}

func (r *ApplyFormRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(colApplyForms).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete apply submission: %w", err)
	}
	return nil
}

type RegisterFormRepository struct {
	client *cloudfs.Client
}

func NewRegisterFormRepository(client *cloudfs.Client) *RegisterFormRepository {
	return &RegisterFormRepository{client: client}
}

func decodeRegisterForm(doc *cloudfs.DocumentSnapshot) (*model.RegisterFormSubmission, error) {
	var submission model.RegisterFormSubmission
	if err := doc.DataTo(&submission); err != nil {
		return nil, fmt.Errorf("decoding register submission document: %w", err)
	}
	submission.ID = doc.Ref.ID
	return &submission, nil
}

func (r *RegisterFormRepository) FindAll(ctx context.Context) ([]model.RegisterFormSubmission, error) {
	docs, err := r.client.Collection(colRegisterForms).
		OrderBy("createdAt", cloudfs.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to find register submissions: %w", err)
	}

	submissions := make([]model.RegisterFormSubmission, 0, len(docs))
	for _, doc := range docs {
		submission, err := decodeRegisterForm(doc)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, *submission)
	}
	return submissions, nil
}

func (r *RegisterFormRepository) Create(ctx context.Context, submission *model.RegisterFormSubmission) error {
	submission.ID = uuid.NewString()

	fields := newSubmissionFields(submission.FullName, submission.Email, submission.Phone)
	fields["membershipType"] = submission.MembershipType
	fields["reason"] = submission.Reason
	putIfSet(fields, "organization", submission.Organization)
	putIfSet(fields, "designation", submission.Designation)
	putIfSet(fields, "linkedIn", submission.LinkedIn)

	docRef := r.client.Collection(colRegisterForms).Doc(submission.ID)
	if _, err := docRef.Set(ctx, fields); err != nil {
		return fmt.Errorf("failed to create register submission: %w", err)
	}

	doc, err := docRef.Get(ctx)
	if err != nil {
		return fmt.Errorf("reloading register submission: %w", err)
	}
	stored, err := decodeRegisterForm(doc)
	if err != nil {
		return err
	}
	*submission = *stored
	return nil
}

func (r *RegisterFormRepository) UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.RegisterFormSubmission, error) {
	doc, err := applyDocUpdate(ctx, r.client.Collection(colRegisterForms).Doc(id), statusUpdates(status, notes))
	if err != nil {
		return nil, err
	}
	return decodeRegisterForm(doc)
}

func (r *RegisterFormRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(colRegisterForms).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete register submission: %w", err)
	}
	return nil
}

type ConsultationRepository struct {
	client *cloudfs.Client
}

func NewConsultationRepository(client *cloudfs.Client) *ConsultationRepository {
	return &ConsultationRepository{client: client}
}

func decodeConsultation(doc *cloudfs.DocumentSnapshot) (*model.ConsultationSubmission, error) {
	var submission model.ConsultationSubmission
	if err := doc.DataTo(&submission); err != nil {
		return nil, fmt.Errorf("decoding consultation submission document: %w", err)
	}
	submission.ID = doc.Ref.ID
	return &submission, nil
}

func (r *ConsultationRepository) FindAll(ctx context.Context) ([]model.ConsultationSubmission, error) {
	docs, err := r.client.Collection(colConsultations).
		OrderBy("createdAt", cloudfs.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to find consultation submissions: %w", err)
	}

	submissions := make([]model.ConsultationSubmission, 0, len(docs))
	for _, doc := range docs {
		submission, err := decodeConsultation(doc)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, *submission)
	}
	return submissions, nil
}

func (r *ConsultationRepository) Create(ctx context.Context, submission *model.ConsultationSubmission) error {
	submission.ID = uuid.NewString()

	fields := newSubmissionFields(submission.FullName, submission.Email, submission.Phone)
	putIfSet(fields, "organization", submission.Organization)
	putIfSet(fields, "consultationType", submission.ConsultationType)
	putIfSet(fields, "preferredDate", submission.PreferredDate)
	putIfSet(fields, "message", submission.Message)

	docRef := r.client.Collection(colConsultations).Doc(submission.ID)
	if _, err := docRef.Set(ctx, fields); err != nil {
		return fmt.Errorf("failed to create consultation submission: %w", err)
	}

	doc, err := docRef.Get(ctx)
	if err != nil {
		return fmt.Errorf("reloading consultation submission: %w", err)
	}
	stored, err := decodeConsultation(doc)
	if err != nil {
		return err
	}
	*submission = *stored
	return nil
}

func (r *ConsultationRepository) UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.ConsultationSubmission, error) {
	doc, err := applyDocUpdate(ctx, r.client.Collection(colConsultations).Doc(id), statusUpdates(status, notes))
	if err != nil {
		return nil, err
	}
	return decodeConsultation(doc)
}

func (r *ConsultationRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(colConsultations).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete consultation submission: %w", err)
	}
	return nil
}

type AdvisorySessionRepository struct {
	client *cloudfs.Client
}

func NewAdvisorySessionRepository(client *cloudfs.Client) *AdvisorySessionRepository {
	return &AdvisorySessionRepository{client: client}
}

func decodeAdvisorySession(doc *cloudfs.DocumentSnapshot) (*model.AdvisorySessionSubmission, error) {
	var submission model.AdvisorySessionSubmission
	if err := doc.DataTo(&submission); err != nil {
		return nil, fmt.Errorf("decoding advisory submission document: %w", err)
	}
	submission.ID = doc.Ref.ID
	return &submission, nil
}

func (r *AdvisorySessionRepository) FindAll(ctx context.Context) ([]model.AdvisorySessionSubmission, error) {
	docs, err := r.client.Collection(colAdvisorySessions).
		OrderBy("createdAt", cloudfs.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to find advisory submissions: %w", err)
	}

	submissions := make([]model.AdvisorySessionSubmission, 0, len(docs))
	for _, doc := range docs {
		submission, err := decodeAdvisorySession(doc)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, *submission)
	}
	return submissions, nil
}

func (r *AdvisorySessionRepository) Create(ctx context.Context, submission *model.AdvisorySessionSubmission) error {
	submission.ID = uuid.NewString()

	fields := newSubmissionFields(submission.FullName, submission.Email, submission.Phone)
	putIfSet(fields, "organization", submission.Organization)
	putIfSet(fields, "sessionTopic", submission.SessionTopic)
	putIfSet(fields, "preferredDate", submission.PreferredDate)
	putIfSet(fields, "message", submission.Message)

	docRef := r.client.Collection(colAdvisorySessions).Doc(submission.ID)
	if _, err := docRef.Set(ctx, fields); err != nil {
		return fmt.Errorf("failed to create advisory submission: %w", err)
	}

	doc, err := docRef.Get(ctx)
	if err != nil {
		return fmt.Errorf("reloading advisory submission: %w", err)
	}
	stored, err := decodeAdvisorySession(doc)
	if err != nil {
		return err
	}
	*submission = *stored
	return nil
}

func (r *AdvisorySessionRepository) UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.AdvisorySessionSubmission, error) {
	doc, err := applyDocUpdate(ctx, r.client.Collection(colAdvisorySessions).Doc(id), statusUpdates(status, notes))
	if err != nil {
		return nil, err
	}
	return decodeAdvisorySession(doc)
}

func (r *AdvisorySessionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(colAdvisorySessions).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete advisory submission: %w", err)
	}
	return nil
}

type CampusInviteRepository struct {
	client *cloudfs.Client
}

func NewCampusInviteRepository(client *cloudfs.Client) *CampusInviteRepository {
	return &CampusInviteRepository{client: client}
}

func decodeCampusInvite(doc *cloudfs.DocumentSnapshot) (*model.CampusInviteSubmission, error) {
	var submission model.CampusInviteSubmission
	if err := doc.DataTo(&submission); err != nil {
		return nil, fmt.Errorf("decoding campus invite document: %w", err)
	}
	submission.ID = doc.Ref.ID
	return &submission, nil
}

func (r *CampusInviteRepository) FindAll(ctx context.Context) ([]model.CampusInviteSubmission, error) {
	docs, err := r.client.Collection(colCampusInvites).
		OrderBy("createdAt", cloudfs.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to find campus invite submissions: %w", err)
	}

	submissions := make([]model.CampusInviteSubmission, 0, len(docs))
	for _, doc := range docs {
		submission, err := decodeCampusInvite(doc)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, *submission)
	}
	return submissions, nil
}

func (r *CampusInviteRepository) Create(ctx context.Context, submission *model.CampusInviteSubmission) error {
	submission.ID = uuid.NewString()

	fields := newSubmissionFields(submission.FullName, submission.Email, submission.Phone)
	fields["institution"] = submission.Institution
	putIfSet(fields, "designation", submission.Designation)
	putIfSet(fields, "eventType", submission.EventType)
	putIfSet(fields, "preferredDate", submission.PreferredDate)
	putIfSet(fields, "expectedAttendees", submission.ExpectedAttendees)
	putIfSet(fields, "message", submission.Message)

	docRef := r.client.Collection(colCampusInvites).Doc(submission.ID)
	if _, err := docRef.Set(ctx, fields); err != nil {
		return fmt.Errorf("failed to create campus invite submission: %w", err)
	}

	doc, err := docRef.Get(ctx)
	if err != nil {
		return fmt.Errorf("reloading campus invite submission: %w", err)
	}
	stored, err := decodeCampusInvite(doc)
	if err != nil {
		return err
	}
	*submission = *stored
	return nil
}

func (r *CampusInviteRepository) UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.CampusInviteSubmission, error) {
	doc, err := applyDocUpdate(ctx, r.client.Collection(colCampusInvites).Doc(id), statusUpdates(status, notes))
	if err != nil {
		return nil, err
	}
	return decodeCampusInvite(doc)
}

func (r *CampusInviteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(colCampusInvites).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete campus invite submission: %w", err)
	}
	return nil
}

type ContactRepository struct {
	client *cloudfs.Client
}

func NewContactRepository(client *cloudfs.Client) *ContactRepository {
	return &ContactRepository{client: client}
}

func decodeContact(doc *cloudfs.DocumentSnapshot) (*model.ContactSubmission, error) {
	var submission model.ContactSubmission
	if err := doc.DataTo(&submission); err != nil {
		return nil, fmt.Errorf("decoding contact submission document: %w", err)
	}
	submission.ID = doc.Ref.ID
	return &submission, nil
}

func (r *ContactRepository) FindAll(ctx context.Context, category string) ([]model.ContactSubmission, error) {
	query := r.client.Collection(colContacts).Query
	if category != "" {
		query = query.Where("category", "==", category)
	}

	docs, err := query.OrderBy("createdAt", cloudfs.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to find contact submissions: %w", err)
	}

	submissions := make([]model.ContactSubmission, 0, len(docs))
	for _, doc := range docs {
		submission, err := decodeContact(doc)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, *submission)
	}
	return submissions, nil
}

func (r *ContactRepository) Create(ctx context.Context, submission *model.ContactSubmission) error {
	submission.ID = uuid.NewString()

	fields := map[string]any{
		"fullName":   submission.FullName,
		"email":      submission.Email,
		"category":   submission.Category,
		"message":    submission.Message,
		"status":     string(model.StatusPending),
		"adminNotes": nil,
		"createdAt":  cloudfs.ServerTimestamp,
		"updatedAt":  cloudfs.ServerTimestamp,
	}
	putIfSet(fields, "phone", submission.Phone)
	putIfSet(fields, "subject", submission.Subject)

	docRef := r.client.Collection(colContacts).Doc(submission.ID)
	if _, err := docRef.Set(ctx, fields); err != nil {
		return fmt.Errorf("failed to create contact submission: %w", err)
	}

	doc, err := docRef.Get(ctx)
	if err != nil {
		return fmt.Errorf("reloading contact submission: %w", err)
	}
	stored, err := decodeContact(doc)
	if err != nil {
		return err
	}
	*submission = *stored
	return nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.ContactSubmission, error) {
	doc, err := applyDocUpdate(ctx, r.client.Collection(colContacts).Doc(id), statusUpdates(status, notes))
	if err != nil {
		return nil, err
	}
	return decodeContact(doc)
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(colContacts).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete contact submission: %w", err)
	}
	return nil
}
