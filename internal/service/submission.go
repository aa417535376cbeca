// internal/service/submission.go
package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/keralaeconomicforum/forum/internal/domain"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/keralaeconomicforum/forum/internal/repository"
)

// SubmissionService accepts the public form submissions and exposes the
// admin triage operations over them. Every accepted submission starts in
// status "pending" with no admin notes.
type SubmissionService struct {
	repos    *repository.Container
	validate *validator.Validate
}

func NewSubmissionService(repos *repository.Container) *SubmissionService {
	return &SubmissionService{
		repos:    repos,
		validate: newValidator(),
	}
}

type CreateApplyInput struct {
	FullName        string `json:"fullName" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,min=10"`
	Organization    string `json:"organization"`
	ProgramInterest string `json:"programInterest"`
	Message         string `json:"message"`
}

type CreateRegisterInput struct {
	FullName       string `json:"fullName" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,min=10"`
	MembershipType string `json:"membershipType" validate:"required,oneof=entrepreneur student campus_innovator business investor institutional"`
	Organization   string `json:"organization"`
	Designation    string `json:"designation"`
	LinkedIn       string `json:"linkedIn"`
	Reason         string `json:"reason" validate:"required,min=20"`
}

type CreateConsultationInput struct {
	FullName         string `json:"fullName" validate:"required,min=2"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required,min=10"`
	Organization     string `json:"organization"`
	ConsultationType string `json:"consultationType"`
	PreferredDate    string `json:"preferredDate"`
	Message          string `json:"message"`
}

type CreateAdvisoryInput struct {
	FullName      string `json:"fullName" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=10"`
	Organization  string `json:"organization"`
	SessionTopic  string `json:"sessionTopic"`
	PreferredDate string `json:"preferredDate"`
	Message       string `json:"message"`
}

type CreateCampusInviteInput struct {
	FullName          string `json:"fullName" validate:"required,min=2"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"required,min=10"`
	Institution       string `json:"institution" validate:"required"`
	Designation       string `json:"designation"`
	EventType         string `json:"eventType"`
	PreferredDate     string `json:"preferredDate"`
	ExpectedAttendees string `json:"expectedAttendees"`
	Message           string `json:"message"`
}

type CreateContactInput struct {
	FullName string `json:"fullName" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Category string `json:"category" validate:"required,oneof=general partnership corporate campus"`
	Subject  string `json:"subject"`
	Message  string `json:"message" validate:"required"`
}

// UpdateStatusInput is the admin triage patch. AdminNotes is stored as
// given: omitting it clears any existing notes.
type UpdateStatusInput struct {
	Status     model.SubmissionStatus `json:"status" validate:"required,oneof=pending approved rejected completed"`
	AdminNotes *string                `json:"adminNotes"`
}

func (s *SubmissionService) CreateApply(ctx context.Context, input CreateApplyInput) (*model.ApplyFormSubmission, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, newValidationError(err)
	}
	submission := &model.ApplyFormSubmission{
		FullName:        input.FullName,
		Email:           input.Email,
		Phone:           input.Phone,
		Organization:    input.Organization,
		ProgramInterest: input.ProgramInterest,
		Message:         input.Message,
	}
	if err := s.repos.ApplyForms.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *SubmissionService) CreateRegister(ctx context.Context, input CreateRegisterInput) (*model.RegisterFormSubmission, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, newValidationError(err)
	}
	submission := &model.RegisterFormSubmission{
		FullName:       input.FullName,
		Email:          input.Email,
		Phone:          input.Phone,
		MembershipType: input.MembershipType,
		Organization:   input.Organization,
		Designation:    input.Designation,
		LinkedIn:       input.LinkedIn,
		Reason:         input.Reason,
	}
	if err := s.repos.RegisterForms.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *SubmissionService) CreateConsultation(ctx context.Context, input CreateConsultationInput) (*model.ConsultationSubmission, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, newValidationError(err)
	}
	submission := &model.ConsultationSubmission{
		FullName:         input.FullName,
		Email:            input.Email,
		Phone:            input.Phone,
		Organization:     input.Organization,
		ConsultationType: input.ConsultationType,
		PreferredDate:    input.PreferredDate,
		Message:          input.Message,
	}
	if err := s.repos.Consultations.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *SubmissionService) CreateAdvisory(ctx context.Context, input CreateAdvisoryInput) (*model.AdvisorySessionSubmission, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, newValidationError(err)
	}
	submission := &model.AdvisorySessionSubmission{
		FullName:      input.FullName,
		Email:         input.Email,
		Phone:         input.Phone,
		Organization:  input.Organization,
		SessionTopic:  input.SessionTopic,
		PreferredDate: input.PreferredDate,
		Message:       input.Message,
	}
	if err := s.repos.AdvisorySessions.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *SubmissionService) CreateCampusInvite(ctx context.Context, input CreateCampusInviteInput) (*model.CampusInviteSubmission, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, newValidationError(err)
	}
	submission := &model.CampusInviteSubmission{
		FullName:          input.FullName,
		Email:             input.Email,
		Phone:             input.Phone,
		Institution:       input.Institution,
		Designation:       input.Designation,
		EventType:         input.EventType,
		PreferredDate:     input.PreferredDate,
		ExpectedAttendees: input.ExpectedAttendees,
		Message:           input.Message,
	}
	if err := s.repos.CampusInvites.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *SubmissionService) CreateContact(ctx context.Context, input CreateContactInput) (*model.ContactSubmission, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, newValidationError(err)
	}
	submission := &model.ContactSubmission{
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		Category: input.Category,
		Subject:  input.Subject,
		Message:  input.Message,
	}
	if err := s.repos.Contacts.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// ListContacts returns contact submissions, optionally filtered to one
// category. An unknown category is rejected rather than silently matching
// nothing.
func (s *SubmissionService) ListContacts(ctx context.Context, category string) ([]model.ContactSubmission, error) {
	if category != "" && !contains(model.ContactCategories, category) {
		return nil, &ValidationError{Details: []string{"category must be one of: general, partnership, corporate, campus"}}
	}
	return s.repos.Contacts.FindAll(ctx, category)
}

// List returns every submission of the given form type, newest first. The
// element type varies per form, so callers get an encodable slice.
func (s *SubmissionService) List(ctx context.Context, formType model.FormType) (any, error) {
	switch formType {
	case model.FormApply:
		return s.repos.ApplyForms.FindAll(ctx)
	case model.FormRegister:
		return s.repos.RegisterForms.FindAll(ctx)
	case model.FormConsultation:
		return s.repos.Consultations.FindAll(ctx)
	case model.FormAdvisory:
		return s.repos.AdvisorySessions.FindAll(ctx)
	case model.FormCampusInvite:
		return s.repos.CampusInvites.FindAll(ctx)
	case model.FormContact:
		return s.repos.Contacts.FindAll(ctx, "")
	default:
		return nil, domain.ErrInvalidFormType
	}
}

// UpdateStatus applies an admin triage patch to one submission.
func (s *SubmissionService) UpdateStatus(ctx context.Context, formType model.FormType, id string, input UpdateStatusInput) (any, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, newValidationError(err)
	}
	switch formType {
	case model.FormApply:
		return s.repos.ApplyForms.UpdateStatus(ctx, id, input.Status, input.AdminNotes)
	case model.FormRegister:
		return s.repos.RegisterForms.UpdateStatus(ctx, id, input.Status, input.AdminNotes)
	case model.FormConsultation:
		return s.repos.Consultations.UpdateStatus(ctx, id, input.Status, input.AdminNotes)
	case model.FormAdvisory:
		return s.repos.AdvisorySessions.UpdateStatus(ctx, id, input.Status, input.AdminNotes)
	case model.FormCampusInvite:
		return s.repos.CampusInvites.UpdateStatus(ctx, id, input.Status, input.AdminNotes)
	case model.FormContact:
		return s.repos.Contacts.UpdateStatus(ctx, id, input.Status, input.AdminNotes)
	default:
		return nil, domain.ErrInvalidFormType
	}
}

// Delete removes one submission. Absent ids are not an error.
func (s *SubmissionService) Delete(ctx context.Context, formType model.FormType, id string) error {
	switch formType {
	case model.FormApply:
		return s.repos.ApplyForms.Delete(ctx, id)
	case model.FormRegister:
		return s.repos.RegisterForms.Delete(ctx, id)
	case model.FormConsultation:
		return s.repos.Consultations.Delete(ctx, id)
	case model.FormAdvisory:
		return s.repos.AdvisorySessions.Delete(ctx, id)
	case model.FormCampusInvite:
		return s.repos.CampusInvites.Delete(ctx, id)
	case model.FormContact:
		return s.repos.Contacts.Delete(ctx, id)
	default:
		return domain.ErrInvalidFormType
	}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
