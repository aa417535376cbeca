package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/keralaeconomicforum/forum/internal/mocks"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/keralaeconomicforum/forum/internal/repository"
	"github.com/keralaeconomicforum/forum/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestListResources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := []model.Resource{
		{ID: "r1", Title: "Startup Guide", IsActive: true},
		{ID: "r2", Title: "Archived Report", IsActive: false},
	}

	t.Run("public listing hides inactive records", func(t *testing.T) {
		resourceRepo := mocks.NewMockResourceRepository(ctrl)
		svc := service.NewContentService(&repository.Container{Resources: resourceRepo})

		resourceRepo.EXPECT().FindAll(gomock.Any()).Return(stored, nil)

		resources, err := svc.ListResources(context.Background(), false)
		assert.NoError(t, err)
		assert.Len(t, resources, 1)
		assert.Equal(t, "r1", resources[0].ID)
	})

	t.Run("admin listing sees everything", func(t *testing.T) {
		resourceRepo := mocks.NewMockResourceRepository(ctrl)
		svc := service.NewContentService(&repository.Container{Resources: resourceRepo})

		resourceRepo.EXPECT().FindAll(gomock.Any()).Return(stored, nil)

		resources, err := svc.ListResources(context.Background(), true)
		assert.NoError(t, err)
		assert.Len(t, resources, 2)
	})
}

func TestCreateResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("new records default to active", func(t *testing.T) {
		resourceRepo := mocks.NewMockResourceRepository(ctrl)
		svc := service.NewContentService(&repository.Container{Resources: resourceRepo})

		resourceRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *model.Resource) error {
				r.ID = "r1"
				return nil
			})

		resource, err := svc.CreateResource(context.Background(), service.CreateResourceInput{
			Title:       "Startup Guide",
			Description: "A guide for first-time founders",
			Category:    "guides",
		})

		assert.NoError(t, err)
		assert.True(t, resource.IsActive)
	})

	t.Run("explicit isActive false is honored", func(t *testing.T) {
		resourceRepo := mocks.NewMockResourceRepository(ctrl)
		svc := service.NewContentService(&repository.Container{Resources: resourceRepo})

		inactive := false
		resourceRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *model.Resource) error {
				assert.False(t, r.IsActive)
				return nil
			})

		_, err := svc.CreateResource(context.Background(), service.CreateResourceInput{
			Title:       "Draft Guide",
			Description: "Not ready yet",
			Category:    "guides",
			IsActive:    &inactive,
		})
		assert.NoError(t, err)
	})

	t.Run("missing fields are rejected before storage", func(t *testing.T) {
		resourceRepo := mocks.NewMockResourceRepository(ctrl)
		svc := service.NewContentService(&repository.Container{Resources: resourceRepo})

		_, err := svc.CreateResource(context.Background(), service.CreateResourceInput{Title: "Orphan"})

		var verr *service.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Details, 2)
	})
}

func TestCreateEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("date and location are required", func(t *testing.T) {
		eventRepo := mocks.NewMockEventRepository(ctrl)
		svc := service.NewContentService(&repository.Container{Events: eventRepo})

		_, err := svc.CreateEvent(context.Background(), service.CreateEventInput{
			Title:       "Annual Summit",
			Description: "The flagship event",
			Category:    "summit",
		})

		var verr *service.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Details, 2)
	})

	t.Run("valid event is stored", func(t *testing.T) {
		eventRepo := mocks.NewMockEventRepository(ctrl)
		svc := service.NewContentService(&repository.Container{Events: eventRepo})

		eventRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *model.Event) error {
				e.ID = "e1"
				return nil
			})

		event, err := svc.CreateEvent(context.Background(), service.CreateEventInput{
			Title:       "Annual Summit",
			Description: "The flagship event",
			Date:        time.Date(2026, 11, 12, 9, 0, 0, 0, time.UTC),
			Location:    "Kochi",
			Category:    "summit",
		})
		assert.NoError(t, err)
		assert.Equal(t, "e1", event.ID)
	})
}

func TestUpdateMembershipPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	planRepo := mocks.NewMockMembershipPlanRepository(ctrl)
	svc := service.NewContentService(&repository.Container{MembershipPlans: planRepo})

	price := "₹3,000/year"
	patch := model.MembershipPlanPatch{Price: &price}

	planRepo.EXPECT().
		Update(gomock.Any(), "p1", patch).
		Return(&model.MembershipPlan{ID: "p1", Price: price}, nil)

	plan, err := svc.UpdateMembershipPlan(context.Background(), "p1", patch)
	assert.NoError(t, err)
	assert.Equal(t, price, plan.Price)
}
