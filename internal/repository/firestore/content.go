// internal/repository/firestore/content.go
package firestore

import (
	"context"
	"fmt"

	cloudfs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/keralaeconomicforum/forum/internal/domain"
	"github.com/keralaeconomicforum/forum/internal/model"
)

type ResourceRepository struct {
	client *cloudfs.Client
}

func NewResourceRepository(client *cloudfs.Client) *ResourceRepository {
	return &ResourceRepository{client: client}
}

func decodeResource(doc *cloudfs.DocumentSnapshot) (*model.Resource, error) {
	var resource model.Resource
	if err := doc.DataTo(&resource); err != nil {
		return nil, fmt.Errorf("decoding resource document: %w", err)
	}
	resource.ID = doc.Ref.ID
	return &resource, nil
}

func (r *ResourceRepository) FindAll(ctx context.Context) ([]model.Resource, error) {
	docs, err := r.client.Collection(colResources).
		OrderBy("createdAt", cloudfs.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to find resources: %w", err)
	}

	resources := make([]model.Resource, 0, len(docs))
	for _, doc := range docs {
		resource, err := decodeResource(doc)
		if err != nil {
			return nil, err
		}
		resources = append(resources, *resource)
	}
	return resources, nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, id string) (*model.Resource, error) {
	doc, err := r.client.Collection(colResources).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find resource: %w", err)
	}
	return decodeResource(doc)
}

func (r *ResourceRepository) Create(ctx context.Context, resource *model.Resource) error {
	if resource.ID == "" {
		resource.ID = uuid.NewString()
	}

	fields := map[string]any{
		"title":       resource.Title,
		"description": resource.Description,
		"category":    resource.Category,
		"isActive":    resource.IsActive,
		"createdAt":   cloudfs.ServerTimestamp,
		"updatedAt":   cloudfs.ServerTimestamp,
	}
	putIfSet(fields, "link", resource.Link)
	putIfSet(fields, "imageUrl", resource.ImageURL)

	docRef := r.client.Collection(colResources).Doc(resource.ID)
	if _, err := docRef.Set(ctx, fields); err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	doc, err := docRef.Get(ctx)
	if err != nil {
		return fmt.Errorf("reloading resource: %w", err)
	}
	stored, err := decodeResource(doc)
	if err != nil {
		return err
	}
	*resource = *stored
	return nil
}

func (r *ResourceRepository) Update(ctx context.Context, id string, patch model.ResourcePatch) (*model.Resource, error) {
	updates := []cloudfs.Update{{Path: "updatedAt", Value: cloudfs.ServerTimestamp}}
	if patch.Title != nil {
		updates = append(updates, cloudfs.Update{Path: "title", Value: *patch.Title})
	}
	if patch.Description != nil {
		updates = append(updates, cloudfs.Update{Path: "description", Value: *patch.Description})
	}
	if patch.Category != nil {
		updates = append(updates, cloudfs.Update{Path: "category", Value: *patch.Category})
	}
	if patch.Link != nil {
		updates = append(updates, cloudfs.Update{Path: "link", Value: *patch.Link})
	}
	if patch.ImageURL != nil {
		updates = append(updates, cloudfs.Update{Path: "imageUrl", Value: *patch.ImageURL})
	}
	if patch.IsActive != nil {
		updates = append(updates, cloudfs.Update{Path: "isActive", Value: *patch.IsActive})
	}

	doc, err := applyDocUpdate(ctx, r.client.Collection(colResources).Doc(id), updates)
	if err != nil {
		return nil, err
	}
	return decodeResource(doc)
}

func (r *ResourceRepository) Delete(ctx context.Context, id string) error {
	// Firestore deletes are no-ops for absent documents, which matches the
	// idempotent delete contract.
	if _, err := r.client.Collection(colResources).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}
	return nil
}

type ProgramRepository struct {
	client *cloudfs.Client
}

func NewProgramRepository(client *cloudfs.Client) *ProgramRepository {
	return &ProgramRepository{client: client}
}

func decodeProgram(doc *cloudfs.DocumentSnapshot) (*model.Program, error) {
	var program model.Program
	if err := doc.DataTo(&program); err != nil {
		return nil, fmt.Errorf("decoding program document: %w", err)
	}
	program.ID = doc.Ref.ID
	return &program, nil
}

func (r *ProgramRepository) FindAll(ctx context.Context) ([]model.Program, error) {
	docs, err := r.client.Collection(colPrograms).
		OrderBy("createdAt", cloudfs.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to find programs: %w", err)
	}

	programs := make([]model.Program, 0, len(docs))
	for _, doc := range docs {
		program, err := decodeProgram(doc)
		if err != nil {
			return nil, err
		}
		programs = append(programs, *program)
	}
	return programs, nil
}

func (r *ProgramRepository) FindByID(ctx context.Context, id string) (*model.Program, error) {
	doc, err := r.client.Collection(colPrograms).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find program: %w", err)
	}
	return decodeProgram(doc)
}

func (r *ProgramRepository) Create(ctx context.Context, program *model.Program) error {
	if program.ID == "" {
		program.ID = uuid.NewString()
	}

	fields := map[string]any{
		"title":       program.Title,
		"description": program.Description,
		"category":    program.Category,
		"isActive":    program.IsActive,
		"createdAt":   cloudfs.ServerTimestamp,
		"updatedAt":   cloudfs.ServerTimestamp,
	}
	putIfSet(fields, "eligibility", program.Eligibility)
	putIfSet(fields, "duration", program.Duration)
	putIfSet(fields, "imageUrl", program.ImageURL)
	if len(program.Benefits) > 0 {
		fields["benefits"] = []string(program.Benefits)
	}

	docRef := r.client.Collection(colPrograms).Doc(program.ID)
	if _, err := docRef.Set(ctx, fields); err != nil {
		return fmt.Errorf("failed to create program: %w", err)
	}

	doc, err := docRef.Get(ctx)
	if err != nil {
		return fmt.Errorf("reloading program: %w", err)
	}
	stored, err := decodeProgram(doc)
	if err != nil {
		return err
	}
	*program = *stored
	return nil
}

func (r *ProgramRepository) Update(ctx context.Context, id string, patch model.ProgramPatch) (*model.Program, error) {
	updates := []cloudfs.Update{{Path: "updatedAt", Value: cloudfs.ServerTimestamp}}
	if patch.Title != nil {
		updates = append(updates, cloudfs.Update{Path: "title", Value: *patch.Title})
	}
	if patch.Description != nil {
		updates = append(updates, cloudfs.Update{Path: "description", Value: *patch.Description})
	}
	if patch.Category != nil {
		updates = append(updates, cloudfs.Update{Path: "category", Value: *patch.Category})
	}
	if patch.Eligibility != nil {
		updates = append(updates, cloudfs.Update{Path: "eligibility", Value: *patch.Eligibility})
	}
	if patch.Duration != nil {
		updates = append(updates, cloudfs.Update{Path: "duration", Value: *patch.Duration})
	}
	if patch.Benefits != nil {
		updates = append(updates, cloudfs.Update{Path: "benefits", Value: *patch.Benefits})
	}
	if patch.ImageURL != nil {
		updates = append(updates, cloudfs.Update{Path: "imageUrl", Value: *patch.ImageURL})
	}
	if patch.IsActive != nil {
		updates = append(updates, cloudfs.Update{Path: "isActive", Value: *patch.IsActive})
	}

	doc, err := applyDocUpdate(ctx, r.client.Collection(colPrograms).Doc(id), updates)
	if err != nil {
		return nil, err
	}
	return decodeProgram(doc)
}

func (r *ProgramRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(colPrograms).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}
	return nil
}

type EventRepository struct {
	client *cloudfs.Client
}

func NewEventRepository(client *cloudfs.Client) *EventRepository {
	return &EventRepository{client: client}
}

func decodeEvent(doc *cloudfs.DocumentSnapshot) (*model.Event, error) {
	var event model.Event
	if err := doc.DataTo(&event); err != nil {
		return nil, fmt.Errorf("decoding event document: %w", err)
	}
	event.ID = doc.Ref.ID
	return &event, nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]model.Event, error) {
	docs, err := r.client.Collection(colEvents).
		OrderBy("date", cloudfs.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to find events: %w", err)
	}

	events := make([]model.Event, 0, len(docs))
	for _, doc := range docs {
		event, err := decodeEvent(doc)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	doc, err := r.client.Collection(colEvents).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return decodeEvent(doc)
}

func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	fields := map[string]any{
		"title":       event.Title,
		"description": event.Description,
		"date":        event.Date,
		"location":    event.Location,
		"category":    event.Category,
		"isActive":    event.IsActive,
		"createdAt":   cloudfs.ServerTimestamp,
		"updatedAt":   cloudfs.ServerTimestamp,
	}
	putIfSet(fields, "imageUrl", event.ImageURL)
	putIfSet(fields, "registrationLink", event.RegistrationLink)

	docRef := r.client.Collection(colEvents).Doc(event.ID)
	if _, err := docRef.Set(ctx, fields); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	doc, err := docRef.Get(ctx)
	if err != nil {
		return fmt.Errorf("reloading event: %w", err)
	}
	stored, err := decodeEvent(doc)
	if err != nil {
		return err
	}
	*event = *stored
	return nil
}

func (r *EventRepository) Update(ctx context.Context, id string, patch model.EventPatch) (*model.Event, error) {
	updates := []cloudfs.Update{{Path: "updatedAt", Value: cloudfs.ServerTimestamp}}
	if patch.Title != nil {
		updates = append(updates, cloudfs.Update{Path: "title", Value: *patch.Title})
	}
	if patch.Description != nil {
		updates = append(updates, cloudfs.Update{Path: "description", Value: *patch.Description})
	}
	if patch.Date != nil {
		updates = append(updates, cloudfs.Update{Path: "date", Value: *patch.Date})
	}
	if patch.Location != nil {
		updates = append(updates, cloudfs.Update{Path: "location", Value: *patch.Location})
	}
	if patch.Category != nil {
		updates = append(updates, cloudfs.Update{Path: "category", Value: *patch.Category})
	}
	if patch.ImageURL != nil {
		updates = append(updates, cloudfs.Update{Path: "imageUrl", Value: *patch.ImageURL})
	}
	if patch.RegistrationLink != nil {
		updates = append(updates, cloudfs.Update{Path: "registrationLink", Value: *patch.RegistrationLink})
	}
	if patch.IsActive != nil {
		updates = append(updates, cloudfs.Update{Path: "isActive", Value: *patch.IsActive})
	}

	doc, err := applyDocUpdate(ctx, r.client.Collection(colEvents).Doc(id), updates)
	if err != nil {
		return nil, err
	}
	return decodeEvent(doc)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(colEvents).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

type MembershipPlanRepository struct {
	client *cloudfs.Client
}

func NewMembershipPlanRepository(client *cloudfs.Client) *MembershipPlanRepository {
	return &MembershipPlanRepository{client: client}
}

func decodeMembershipPlan(doc *cloudfs.DocumentSnapshot) (*model.MembershipPlan, error) {
	var plan model.MembershipPlan
	if err := doc.DataTo(&plan); err != nil {
		return nil, fmt.Errorf("decoding membership plan document: %w", err)
	}
	plan.ID = doc.Ref.ID
	return &plan, nil
}

func (r *MembershipPlanRepository) FindAll(ctx context.Context) ([]model.MembershipPlan, error) {
	docs, err := r.client.Collection(colMembershipPlans).
		OrderBy("order", cloudfs.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to find membership plans: %w", err)
	}

	plans := make([]model.MembershipPlan, 0, len(docs))
	for _, doc := range docs {
		plan, err := decodeMembershipPlan(doc)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *plan)
	}
	return plans, nil
}

func (r *MembershipPlanRepository) FindByID(ctx context.Context, id string) (*model.MembershipPlan, error) {
	doc, err := r.client.Collection(colMembershipPlans).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find membership plan: %w", err)
	}
	return decodeMembershipPlan(doc)
}

func (r *MembershipPlanRepository) Create(ctx context.Context, plan *model.MembershipPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}

	fields := map[string]any{
		"name":        plan.Name,
		"type":        plan.Type,
		"price":       plan.Price,
		"description": plan.Description,
		"isActive":    plan.IsActive,
		"order":       plan.Order,
		"createdAt":   cloudfs.ServerTimestamp,
		"updatedAt":   cloudfs.ServerTimestamp,
	}
	if len(plan.Benefits) > 0 {
		fields["benefits"] = []string(plan.Benefits)
	}

	docRef := r.client.Collection(colMembershipPlans).Doc(plan.ID)
	if _, err := docRef.Set(ctx, fields); err != nil {
		return fmt.Errorf("failed to create membership plan: %w", err)
	}

	doc, err := docRef.Get(ctx)
	if err != nil {
		return fmt.Errorf("reloading membership plan: %w", err)
	}
	stored, err := decodeMembershipPlan(doc)
	if err != nil {
		return err
	}
	*plan = *stored
	return nil
}

func (r *MembershipPlanRepository) Update(ctx context.Context, id string, patch model.MembershipPlanPatch) (*model.MembershipPlan, error) {
	updates := []cloudfs.Update{{Path: "updatedAt", Value: cloudfs.ServerTimestamp}}
	if patch.Name != nil {
		updates = append(updates, cloudfs.Update{Path: "name", Value: *patch.Name})
	}
	if patch.Type != nil {
		updates = append(updates, cloudfs.Update{Path: "type", Value: *patch.Type})
	}
	if patch.Price != nil {
		updates = append(updates, cloudfs.Update{Path: "price", Value: *patch.Price})
	}
	if patch.Description != nil {
		updates = append(updates, cloudfs.Update{Path: "description", Value: *patch.Description})
	}
	if patch.Benefits != nil {
		updates = append(updates, cloudfs.Update{Path: "benefits", Value: *patch.Benefits})
	}
	if patch.IsActive != nil {
		updates = append(updates, cloudfs.Update{Path: "isActive", Value: *patch.IsActive})
	}
	if patch.Order != nil {
		updates = append(updates, cloudfs.Update{Path: "order", Value: *patch.Order})
	}

	doc, err := applyDocUpdate(ctx, r.client.Collection(colMembershipPlans).Doc(id), updates)
	if err != nil {
		return nil, err
	}
	return decodeMembershipPlan(doc)
}

func (r *MembershipPlanRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(colMembershipPlans).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete membership plan: %w", err)
	}
	return nil
}

// applyDocUpdate applies field updates to an existing document and returns
// the refreshed snapshot, mapping an absent document to domain.ErrNotFound.
func applyDocUpdate(ctx context.Context, docRef *cloudfs.DocumentRef, updates []cloudfs.Update) (*cloudfs.DocumentSnapshot, error) {
	if _, err := docRef.Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	doc, err := docRef.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("reloading document: %w", err)
	}
	return doc, nil
}
