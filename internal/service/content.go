// internal/service/content.go
package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/keralaeconomicforum/forum/internal/repository"
)

// ContentService manages the admin-curated catalog: resources, programs,
// events and membership plans. Public listings see active records only;
// admin listings see everything.
type ContentService struct {
	repos    *repository.Container
	validate *validator.Validate
}

func NewContentService(repos *repository.Container) *ContentService {
	return &ContentService{
		repos:    repos,
		validate: newValidator(),
	}
}

type CreateResourceInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Link        string `json:"link"`
	ImageURL    string `json:"imageUrl"`
	IsActive    *bool  `json:"isActive"`
}

type CreateProgramInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Eligibility string   `json:"eligibility"`
	Duration    string   `json:"duration"`
	Benefits    []string `json:"benefits"`
	ImageURL    string   `json:"imageUrl"`
	IsActive    *bool    `json:"isActive"`
}

type CreateEventInput struct {
	Title            string    `json:"title" validate:"required"`
	Description      string    `json:"description" validate:"required"`
	Date             time.Time `json:"date" validate:"required"`
	Location         string    `json:"location" validate:"required"`
	Category         string    `json:"category" validate:"required"`
	ImageURL         string    `json:"imageUrl"`
	RegistrationLink string    `json:"registrationLink"`
	IsActive         *bool     `json:"isActive"`
}

type CreateMembershipPlanInput struct {
	Name        string   `json:"name" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Price       string   `json:"price" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Benefits    []string `json:"benefits"`
	IsActive    *bool    `json:"isActive"`
	Order       int      `json:"order"`
}

// activeDefault maps an absent isActive to true so new records are publicly
// visible unless the admin opts out.
func activeDefault(isActive *bool) bool {
	if isActive == nil {
		return true
	}
	return *isActive
}

func (s *ContentService) ListResources(ctx context.Context, includeInactive bool) ([]model.Resource, error) {
	resources, err := s.repos.Resources.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if includeInactive {
		return resources, nil
	}
	active := make([]model.Resource, 0, len(resources))
	for _, r := range resources {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active, nil
}

func (s *ContentService) GetResource(ctx context.Context, id string) (*model.Resource, error) {
	return s.repos.Resources.FindByID(ctx, id)
}

func (s *ContentService) CreateResource(ctx context.Context, input CreateResourceInput) (*model.Resource, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, newValidationError(err)
	}
	resource := &model.Resource{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Link:        input.Link,
		ImageURL:    input.ImageURL,
		IsActive:    activeDefault(input.IsActive),
	}
	if err := s.repos.Resources.Create(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *ContentService) UpdateResource(ctx context.Context, id string, patch model.ResourcePatch) (*model.Resource, error) {
	return s.repos.Resources.Update(ctx, id, patch)
}

func (s *ContentService) DeleteResource(ctx context.Context, id string) error {
	return s.repos.Resources.Delete(ctx, id)
}

func (s *ContentService) ListPrograms(ctx context.Context, includeInactive bool) ([]model.Program, error) {
	programs, err := s.repos.Programs.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if includeInactive {
		return programs, nil
	}
	active := make([]model.Program, 0, len(programs))
	for _, p := range programs {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}

func (s *ContentService) GetProgram(ctx context.Context, id string) (*model.Program, error) {
	return s.repos.Programs.FindByID(ctx, id)
}

func (s *ContentService) CreateProgram(ctx context.Context, input CreateProgramInput) (*model.Program, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, newValidationError(err)
	}
	program := &model.Program{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Eligibility: input.Eligibility,
		Duration:    input.Duration,
		Benefits:    input.Benefits,
		ImageURL:    input.ImageURL,
		IsActive:    activeDefault(input.IsActive),
	}
	if err := s.repos.Programs.Create(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

func (s *ContentService) UpdateProgram(ctx context.Context, id string, patch model.ProgramPatch) (*model.Program, error) {
	return s.repos.Programs.Update(ctx, id, patch)
}

func (s *ContentService) DeleteProgram(ctx context.Context, id string) error {
	return s.repos.Programs.Delete(ctx, id)
}

func (s *ContentService) ListEvents(ctx context.Context, includeInactive bool) ([]model.Event, error) {
	events, err := s.repos.Events.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if includeInactive {
		return events, nil
	}
	active := make([]model.Event, 0, len(events))
	for _, e := range events {
		if e.IsActive {
			active = append(active, e)
		}
	}
	return active, nil
}

func (s *ContentService) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	return s.repos.Events.FindByID(ctx, id)
}

func (s *ContentService) CreateEvent(ctx context.Context, input CreateEventInput) (*model.Event, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, newValidationError(err)
	}
	event := &model.Event{
		Title:            input.Title,
		Description:      input.Description,
		Date:             input.Date,
		Location:         input.Location,
		Category:         input.Category,
		ImageURL:         input.ImageURL,
		RegistrationLink: input.RegistrationLink,
		IsActive:         activeDefault(input.IsActive),
	}
	if err := s.repos.Events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *ContentService) UpdateEvent(ctx context.Context, id string, patch model.EventPatch) (*model.Event, error) {
	return s.repos.Events.Update(ctx, id, patch)
}

func (s *ContentService) DeleteEvent(ctx context.Context, id string) error {
	return s.repos.Events.Delete(ctx, id)
}

func (s *ContentService) ListMembershipPlans(ctx context.Context, includeInactive bool) ([]model.MembershipPlan, error) {
	plans, err := s.repos.MembershipPlans.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if includeInactive {
		return plans, nil
	}
	active := make([]model.MembershipPlan, 0, len(plans))
	for _, p := range plans {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}

func (s *ContentService) GetMembershipPlan(ctx context.Context, id string) (*model.MembershipPlan, error) {
	return s.repos.MembershipPlans.FindByID(ctx, id)
}

func (s *ContentService) CreateMembershipPlan(ctx context.Context, input CreateMembershipPlanInput) (*model.MembershipPlan, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, newValidationError(err)
	}
	plan := &model.MembershipPlan{
		Name:        input.Name,
		Type:        input.Type,
		Price:       input.Price,
		Description: input.Description,
		Benefits:    input.Benefits,
		IsActive:    activeDefault(input.IsActive),
		Order:       input.Order,
	}
	if err := s.repos.MembershipPlans.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *ContentService) UpdateMembershipPlan(ctx context.Context, id string, patch model.MembershipPlanPatch) (*model.MembershipPlan, error) {
	return s.repos.MembershipPlans.Update(ctx, id, patch)
}

func (s *ContentService) DeleteMembershipPlan(ctx context.Context, id string) error {
	return s.repos.MembershipPlans.Delete(ctx, id)
}
