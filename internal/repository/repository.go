// internal/repository/repository.go
package repository

import (
	"context"

	"github.com/keralaeconomicforum/forum/internal/model"
)

// Each entity gets its own repository interface so route and service code
// never depends on a concrete backend. Two adapters satisfy every interface:
// postgres (gorm) and firestore. They must behave identically for every
// operation; the adapter equivalence tests pin the shared contracts.
//
// Contracts shared by all adapters:
//   - Find* returns domain.ErrNotFound (wrapped sentinels) for absent ids,
//     never an error-free nil.
//   - Create assigns the id, default status and timestamps, and leaves the
//     passed record fully populated.
//   - Update merges only the provided fields and always refreshes updatedAt,
//     returning domain.ErrNotFound for absent ids.
//   - Delete is idempotent: removing an absent id is not an error.

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	// Upsert creates or refreshes the user keyed by its provider subject id.
	// The very first user ever stored is atomically promoted to admin.
	Upsert(ctx context.Context, user *model.User) (*model.User, error)
	UpdateRole(ctx context.Context, id, role string) (*model.User, error)
}

type ResourceRepository interface {
	FindAll(ctx context.Context) ([]model.Resource, error)
	FindByID(ctx context.Context, id string) (*model.Resource, error)
	Create(ctx context.Context, resource *model.Resource) error
	Update(ctx context.Context, id string, patch model.ResourcePatch) (*model.Resource, error)
	Delete(ctx context.Context, id string) error
}

type ProgramRepository interface {
	FindAll(ctx context.Context) ([]model.Program, error)
	FindByID(ctx context.Context, id string) (*model.Program, error)
	Create(ctx context.Context, program *model.Program) error
	Update(ctx context.Context, id string, patch model.ProgramPatch) (*model.Program, error)
	Delete(ctx context.Context, id string) error
}

type EventRepository interface {
	// FindAll returns events ordered by event date descending.
	FindAll(ctx context.Context) ([]model.Event, error)
	FindByID(ctx context.Context, id string) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, id string, patch model.EventPatch) (*model.Event, error)
	Delete(ctx context.Context, id string) error
}

type MembershipPlanRepository interface {
	// FindAll returns plans ordered by their display order ascending.
	FindAll(ctx context.Context) ([]model.MembershipPlan, error)
	FindByID(ctx context.Context, id string) (*model.MembershipPlan, error)
	Create(ctx context.Context, plan *model.MembershipPlan) error
	Update(ctx context.Context, id string, patch model.MembershipPlanPatch) (*model.MembershipPlan, error)
	Delete(ctx context.Context, id string) error
}

type ApplyFormRepository interface {
	FindAll(ctx context.Context) ([]model.ApplyFormSubmission, error)
	Create(ctx context.Context, submission *model.ApplyFormSubmission) error
	UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.ApplyFormSubmission, error)
	Delete(ctx context.Context, id string) error
}

type RegisterFormRepository interface {
	FindAll(ctx context.Context) ([]model.RegisterFormSubmission, error)
	Create(ctx context.Context, submission *model.RegisterFormSubmission) error
	UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.RegisterFormSubmission, error)
	Delete(ctx context.Context, id string) error
}

type ConsultationRepository interface {
	FindAll(ctx context.Context) ([]model.ConsultationSubmission, error)
	Create(ctx context.Context, submission *model.ConsultationSubmission) error
	UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.ConsultationSubmission, error)
	Delete(ctx context.Context, id string) error
}

type AdvisorySessionRepository interface {
	FindAll(ctx context.Context) ([]model.AdvisorySessionSubmission, error)
	Create(ctx context.Context, submission *model.AdvisorySessionSubmission) error
	UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.AdvisorySessionSubmission, error)
	Delete(ctx context.Context, id string) error
}

type CampusInviteRepository interface {
	FindAll(ctx context.Context) ([]model.CampusInviteSubmission, error)
	Create(ctx context.Context, submission *model.CampusInviteSubmission) error
	UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.CampusInviteSubmission, error)
	Delete(ctx context.Context, id string) error
}

type ContactRepository interface {
	// FindAll optionally filters by category; an empty category means all.
	FindAll(ctx context.Context, category string) ([]model.ContactSubmission, error)
	Create(ctx context.Context, submission *model.ContactSubmission) error
	UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.ContactSubmission, error)
	Delete(ctx context.Context, id string) error
}

type EmailReplyRepository interface {
	Create(ctx context.Context, reply *model.EmailReply) error
	// FindBySubmission returns the audit trail for one submission, newest first.
	FindBySubmission(ctx context.Context, submissionID string, submissionType model.FormType) ([]model.EmailReply, error)
}

// Container bundles one repository per entity so constructors take a single
// dependency regardless of the active backend.
type Container struct {
	Users            UserRepository
	Resources        ResourceRepository
	Programs         ProgramRepository
	Events           EventRepository
	MembershipPlans  MembershipPlanRepository
	ApplyForms       ApplyFormRepository
	RegisterForms    RegisterFormRepository
	Consultations    ConsultationRepository
	AdvisorySessions AdvisorySessionRepository
	CampusInvites    CampusInviteRepository
	Contacts         ContactRepository
	EmailReplies     EmailReplyRepository
}
