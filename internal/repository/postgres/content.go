// internal/repository/postgres/content.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/keralaeconomicforum/forum/internal/domain"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) FindAll(ctx context.Context) ([]model.Resource, error) {
	var resources []model.Resource
	result := r.db.WithContext(ctx).Order("created_at desc").Find(&resources)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find resources: %w", result.Error)
	}
	return resources, nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, id string) (*model.Resource, error) {
	var resource model.Resource
	result := r.db.WithContext(ctx).First(&resource, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find resource: %w", result.Error)
	}
	return &resource, nil
}

func (r *ResourceRepository) Create(ctx context.Context, resource *model.Resource) error {
	if resource.ID == "" {
		resource.ID = uuid.NewString()
	}
	if result := r.db.WithContext(ctx).Create(resource); result.Error != nil {
		return fmt.Errorf("failed to create resource: %w", result.Error)
	}
	return nil
}

func (r *ResourceRepository) Update(ctx context.Context, id string, patch model.ResourcePatch) (*model.Resource, error) {
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.Link != nil {
		fields["link"] = *patch.Link
	}
	if patch.ImageURL != nil {
		fields["image_url"] = *patch.ImageURL
	}
	if patch.IsActive != nil {
		fields["is_active"] = *patch.IsActive
	}
	return applyUpdate[model.Resource](ctx, r.db, id, fields)
}

func (r *ResourceRepository) Delete(ctx context.Context, id string) error {
	if result := r.db.WithContext(ctx).Delete(&model.Resource{}, "id = ?", id); result.Error != nil {
		return fmt.Errorf("failed to delete resource: %w", result.Error)
	}
	return nil
}

type ProgramRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func (r *ProgramRepository) FindAll(ctx context.Context) ([]model.Program, error) {
	var programs []model.Program
	result := r.db.WithContext(ctx).Order("created_at desc").Find(&programs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find programs: %w", result.Error)
	}
	return programs, nil
}

func (r *ProgramRepository) FindByID(ctx context.Context, id string) (*model.Program, error) {
	var program model.Program
	result := r.db.WithContext(ctx).First(&program, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find program: %w", result.Error)
	}
	return &program, nil
}

func (r *ProgramRepository) Create(ctx context.Context, program *model.Program) error {
	if program.ID == "" {
		program.ID = uuid.NewString()
	}
	if result := r.db.WithContext(ctx).Create(program); result.Error != nil {
		return fmt.Errorf("failed to create program: %w", result.Error)
	}
	return nil
}

func (r *ProgramRepository) Update(ctx context.Context, id string, patch model.ProgramPatch) (*model.Program, error) {
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.Eligibility != nil {
		fields["eligibility"] = *patch.Eligibility
	}
	if patch.Duration != nil {
		fields["duration"] = *patch.Duration
	}
	if patch.Benefits != nil {
		fields["benefits"] = pq.StringArray(*patch.Benefits)
	}
	if patch.ImageURL != nil {
		fields["image_url"] = *patch.ImageURL
	}
	if patch.IsActive != nil {
		fields["is_active"] = *patch.IsActive
	}
	return applyUpdate[model.Program](ctx, r.db, id, fields)
}

func (r *ProgramRepository) Delete(ctx context.Context, id string) error {
	if result := r.db.WithContext(ctx).Delete(&model.Program{}, "id = ?", id); result.Error != nil {
		return fmt.Errorf("failed to delete program: %w", result.Error)
	}
	return nil
}

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) FindAll(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	result := r.db.WithContext(ctx).Order("date desc").Find(&events)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find events: %w", result.Error)
	}
	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	result := r.db.WithContext(ctx).First(&event, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", result.Error)
	}
	return &event, nil
}

func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if result := r.db.WithContext(ctx).Create(event); result.Error != nil {
		return fmt.Errorf("failed to create event: %w", result.Error)
	}
	return nil
}

func (r *EventRepository) Update(ctx context.Context, id string, patch model.EventPatch) (*model.Event, error) {
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Date != nil {
		fields["date"] = *patch.Date
	}
	if patch.Location != nil {
		fields["location"] = *patch.Location
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.ImageURL != nil {
		fields["image_url"] = *patch.ImageURL
	}
	if patch.RegistrationLink != nil {
		fields["registration_link"] = *patch.RegistrationLink
	}
	if patch.IsActive != nil {
		fields["is_active"] = *patch.IsActive
	}
	return applyUpdate[model.Event](ctx, r.db, id, fields)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if result := r.db.WithContext(ctx).Delete(&model.Event{}, "id = ?", id); result.Error != nil {
		return fmt.Errorf("failed to delete event: %w", result.Error)
	}
	return nil
}

type MembershipPlanRepository struct {
	db *gorm.DB
}

func NewMembershipPlanRepository(db *gorm.DB) *MembershipPlanRepository {
	return &MembershipPlanRepository{db: db}
}

func (r *MembershipPlanRepository) FindAll(ctx context.Context) ([]model.MembershipPlan, error) {
	var plans []model.MembershipPlan
	result := r.db.WithContext(ctx).Order("display_order asc").Find(&plans)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find membership plans: %w", result.Error)
	}
	return plans, nil
}

func (r *MembershipPlanRepository) FindByID(ctx context.Context, id string) (*model.MembershipPlan, error) {
	var plan model.MembershipPlan
	result := r.db.WithContext(ctx).First(&plan, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find membership plan: %w", result.Error)
	}
	return &plan, nil
}

func (r *MembershipPlanRepository) Create(ctx context.Context, plan *model.MembershipPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if result := r.db.WithContext(ctx).Create(plan); result.Error != nil {
		return fmt.Errorf("failed to create membership plan: %w", result.Error)
	}
	return nil
}

func (r *MembershipPlanRepository) Update(ctx context.Context, id string, patch model.MembershipPlanPatch) (*model.MembershipPlan, error) {
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Type != nil {
		fields["type"] = *patch.Type
	}
	if patch.Price != nil {
		fields["price"] = *patch.Price
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Benefits != nil {
		fields["benefits"] = pq.StringArray(*patch.Benefits)
	}
	if patch.IsActive != nil {
		fields["is_active"] = *patch.IsActive
	}
	if patch.Order != nil {
		fields["display_order"] = *patch.Order
	}
	return applyUpdate[model.MembershipPlan](ctx, r.db, id, fields)
}

func (r *MembershipPlanRepository) Delete(ctx context.Context, id string) error {
	if result := r.db.WithContext(ctx).Delete(&model.MembershipPlan{}, "id = ?", id); result.Error != nil {
		return fmt.Errorf("failed to delete membership plan: %w", result.Error)
	}
	return nil
}

// applyUpdate merges the provided column values onto an existing row and
// returns the refreshed record, or domain.ErrNotFound when the id is absent.
func applyUpdate[T any](ctx context.Context, db *gorm.DB, id string, fields map[string]any) (*T, error) {
	var existing T
	if err := db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find record: %w", err)
	}

	if err := db.WithContext(ctx).Model(&existing).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	var updated T
	if err := db.WithContext(ctx).First(&updated, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload record: %w", err)
	}
	return &updated, nil
}
