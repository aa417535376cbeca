// internal/repository/postgres/submission.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/keralaeconomicforum/forum/internal/model"
	"gorm.io/gorm"
)

// The six submission collections share one shape of operation set; the
// generic helpers below keep each repository to its entity-specific parts.

func listSubmissions[T any](ctx context.Context, db *gorm.DB, kind string) ([]T, error) {
	var records []T
	result := db.WithContext(ctx).Order("created_at desc").Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find %s submissions: %w", kind, result.Error)
	}
	return records, nil
}

func updateSubmissionStatus[T any](ctx context.Context, db *gorm.DB, id string, status model.SubmissionStatus, notes *string) (*T, error) {
	fields := map[string]any{
		"status":      status,
		"admin_notes": notes,
		"updated_at":  time.Now().UTC(),
	}
	return applyUpdate[T](ctx, db, id, fields)
}

func deleteSubmission[T any](ctx context.Context, db *gorm.DB, kind, id string) error {
	var zero T
	if result := db.WithContext(ctx).Delete(&zero, "id = ?", id); result.Error != nil {
		return fmt.Errorf("failed to delete %s submission: %w", kind, result.Error)
	}
	return nil
}

type ApplyFormRepository struct {
	db *gorm.DB
}

func NewApplyFormRepository(db *gorm.DB) *ApplyFormRepository {
	return &ApplyFormRepository{db: db}
}

func (r *ApplyFormRepository) FindAll(ctx context.Context) ([]model.ApplyFormSubmission, error) {
	return listSubmissions[model.ApplyFormSubmission](ctx, r.db, "apply")
}

func (r *ApplyFormRepository) Create(ctx context.Context, submission *model.ApplyFormSubmission) error {
	submission.ID = uuid.NewString()
	submission.Status = model.StatusPending
	submission.AdminNotes = nil
	if result := r.db.WithContext(ctx).Create(submission); result.Error != nil {
		return fmt.Errorf("failed to create apply submission: %w", result.Error)
	}
	return nil
}

func (r *ApplyFormRepository) UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.ApplyFormSubmission, error) {
	return updateSubmissionStatus[model.ApplyFormSubmission](ctx, r.db, id, status, notes)
}

func (r *ApplyFormRepository) Delete(ctx context.Context, id string) error {
	return deleteSubmission[model.ApplyFormSubmission](ctx, r.db, "apply", id)
}

type RegisterFormRepository struct {
	db *gorm.DB
}

func NewRegisterFormRepository(db *gorm.DB) *RegisterFormRepository {
	return &RegisterFormRepository{db: db}
}

func (r *RegisterFormRepository) FindAll(ctx context.Context) ([]model.RegisterFormSubmission, error) {
	return listSubmissions[model.RegisterFormSubmission](ctx, r.db, "register")
}

func (r *RegisterFormRepository) Create(ctx context.Context, submission *model.RegisterFormSubmission) error {
	submission.ID = uuid.NewString()
	submission.Status = model.StatusPending
	submission.AdminNotes = nil
	if result := r.db.WithContext(ctx).Create(submission); result.Error != nil {
		return fmt.Errorf("failed to create register submission: %w", result.Error)
	}
	return nil
}

func (r *RegisterFormRepository) UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.RegisterFormSubmission, error) {
	return updateSubmissionStatus[model.RegisterFormSubmission](ctx, r.db, id, status, notes)
}

func (r *RegisterFormRepository) Delete(ctx context.Context, id string) error {
	return deleteSubmission[model.RegisterFormSubmission](ctx, r.db, "register", id)
}

type ConsultationRepository struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

func (r *ConsultationRepository) FindAll(ctx context.Context) ([]model.ConsultationSubmission, error) {
	return listSubmissions[model.ConsultationSubmission](ctx, r.db, "consultation")
}

func (r *ConsultationRepository) Create(ctx context.Context, submission *model.ConsultationSubmission) error {
	submission.ID = uuid.NewString()
	submission.Status = model.StatusPending
	submission.AdminNotes = nil
	if result := r.db.WithContext(ctx).Create(submission); result.Error != nil {
		return fmt.Errorf("failed to create consultation submission: %w", result.Error)
	}
	return nil
}

func (r *ConsultationRepository) UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.ConsultationSubmission, error) {
	return updateSubmissionStatus[model.ConsultationSubmission](ctx, r.db, id, status, notes)
}

func (r *ConsultationRepository) Delete(ctx context.Context, id string) error {
	return deleteSubmission[model.ConsultationSubmission](ctx, r.db, "consultation", id)
}

type AdvisorySessionRepository struct {
	db *gorm.DB
}

func NewAdvisorySessionRepository(db *gorm.DB) *AdvisorySessionRepository {
	return &AdvisorySessionRepository{db: db}
}

func (r *AdvisorySessionRepository) FindAll(ctx context.Context) ([]model.AdvisorySessionSubmission, error) {
	return listSubmissions[model.AdvisorySessionSubmission](ctx, r.db, "advisory")
}

func (r *AdvisorySessionRepository) Create(ctx context.Context, submission *model.AdvisorySessionSubmission) error {
	submission.ID = uuid.NewString()
	submission.Status = model.StatusPending
	submission.AdminNotes = nil
	if result := r.db.WithContext(ctx).Create(submission); result.Error != nil {
		return fmt.Errorf("failed to create advisory submission: %w", result.Error)
	}
	return nil
}

func (r *AdvisorySessionRepository) UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.AdvisorySessionSubmission, error) {
	return updateSubmissionStatus[model.AdvisorySessionSubmission](ctx, r.db, id, status, notes)
}

func (r *AdvisorySessionRepository) Delete(ctx context.Context, id string) error {
	return deleteSubmission[model.AdvisorySessionSubmission](ctx, r.db, "advisory", id)
}

type CampusInviteRepository struct {
	db *gorm.DB
}

func NewCampusInviteRepository(db *gorm.DB) *CampusInviteRepository {
	return &CampusInviteRepository{db: db}
}

func (r *CampusInviteRepository) FindAll(ctx context.Context) ([]model.CampusInviteSubmission, error) {
	return listSubmissions[model.CampusInviteSubmission](ctx, r.db, "campus-invite")
}

func (r *CampusInviteRepository) Create(ctx context.Context, submission *model.CampusInviteSubmission) error {
	submission.ID = uuid.NewString()
	submission.Status = model.StatusPending
	submission.AdminNotes = nil
	if result := r.db.WithContext(ctx).Create(submission); result.Error != nil {
		return fmt.Errorf("failed to create campus invite submission: %w", result.Error)
	}
	return nil
}

func (r *CampusInviteRepository) UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.CampusInviteSubmission, error) {
	return updateSubmissionStatus[model.CampusInviteSubmission](ctx, r.db, id, status, notes)
}

func (r *CampusInviteRepository) Delete(ctx context.Context, id string) error {
	return deleteSubmission[model.CampusInviteSubmission](ctx, r.db, "campus-invite", id)
}

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) FindAll(ctx context.Context, category string) ([]model.ContactSubmission, error) {
	query := r.db.WithContext(ctx).Order("created_at desc")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var submissions []model.ContactSubmission
	if result := query.Find(&submissions); result.Error != nil {
		return nil, fmt.Errorf("failed to find contact submissions: %w", result.Error)
	}
	return submissions, nil
}

func (r *ContactRepository) Create(ctx context.Context, submission *model.ContactSubmission) error {
	submission.ID = uuid.NewString()
	submission.Status = model.StatusPending
	submission.AdminNotes = nil
	if result := r.db.WithContext(ctx).Create(submission); result.Error != nil {
		return fmt.Errorf("failed to create contact submission: %w", result.Error)
	}
	return nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus, notes *string) (*model.ContactSubmission, error) {
	return updateSubmissionStatus[model.ContactSubmission](ctx, r.db, id, status, notes)
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	return deleteSubmission[model.ContactSubmission](ctx, r.db, "contact", id)
}
