package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/keralaeconomicforum/forum/internal/domain"
	"github.com/keralaeconomicforum/forum/internal/mocks"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/keralaeconomicforum/forum/internal/repository"
	"github.com/keralaeconomicforum/forum/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreateApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("accepted submission starts pending with no notes", func(t *testing.T) {
		applyRepo := mocks.NewMockApplyFormRepository(ctrl)
		svc := service.NewSubmissionService(&repository.Container{ApplyForms: applyRepo})

		applyRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *model.ApplyFormSubmission) error {
				s.ID = uuid.NewString()
				s.Status = model.StatusPending
				return nil
			})

		submission, err := svc.CreateApply(context.Background(), service.CreateApplyInput{
			FullName: "Anita Menon",
			Email:    "anita@example.com",
			Phone:    "9876543210",
			Message:  "Interested in the incubation program",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, submission.ID)
		assert.Equal(t, model.StatusPending, submission.Status)
		assert.Nil(t, submission.AdminNotes)
	})

	t.Run("invalid input is rejected before storage", func(t *testing.T) {
		applyRepo := mocks.NewMockApplyFormRepository(ctrl)
		svc := service.NewSubmissionService(&repository.Container{ApplyForms: applyRepo})

		_, err := svc.CreateApply(context.Background(), service.CreateApplyInput{
			FullName: "A",
			Email:    "not-an-email",
			Phone:    "123",
		})

		var verr *service.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		assert.Len(t, verr.Details, 3)
	})
}

func TestCreateRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("unknown membership type names the field", func(t *testing.T) {
		registerRepo := mocks.NewMockRegisterFormRepository(ctrl)
		svc := service.NewSubmissionService(&repository.Container{RegisterForms: registerRepo})

		_, err := svc.CreateRegister(context.Background(), service.CreateRegisterInput{
			FullName:       "Anita Menon",
			Email:          "anita@example.com",
			Phone:          "9876543210",
			MembershipType: "platinum",
			Reason:         "I want to join the forum and contribute to its mission",
		})

		var verr *service.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Details, 1)
		assert.Contains(t, verr.Details[0], "membershipType")
	})

	t.Run("short reason is rejected", func(t *testing.T) {
		registerRepo := mocks.NewMockRegisterFormRepository(ctrl)
		svc := service.NewSubmissionService(&repository.Container{RegisterForms: registerRepo})

		_, err := svc.CreateRegister(context.Background(), service.CreateRegisterInput{
			FullName:       "Anita Menon",
			Email:          "anita@example.com",
			Phone:          "9876543210",
			MembershipType: "student",
			Reason:         "too short",
		})

		var verr *service.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Details[0], "reason")
	})

	t.Run("valid registration is stored", func(t *testing.T) {
		registerRepo := mocks.NewMockRegisterFormRepository(ctrl)
		svc := service.NewSubmissionService(&repository.Container{RegisterForms: registerRepo})

		registerRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *model.RegisterFormSubmission) error {
				s.ID = uuid.NewString()
				s.Status = model.StatusPending
				return nil
			})

		submission, err := svc.CreateRegister(context.Background(), service.CreateRegisterInput{
			FullName:       "Anita Menon",
			Email:          "anita@example.com",
			Phone:          "9876543210",
			MembershipType: "entrepreneur",
			Organization:   "Menon Ventures",
			Reason:         "I want to join the forum and contribute to its mission",
		})

		assert.NoError(t, err)
		assert.Equal(t, "entrepreneur", submission.MembershipType)
		assert.Equal(t, model.StatusPending, submission.Status)
	})
}

func TestCreateCampusInvite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("institution is required", func(t *testing.T) {
		campusRepo := mocks.NewMockCampusInviteRepository(ctrl)
		svc := service.NewSubmissionService(&repository.Container{CampusInvites: campusRepo})

		_, err := svc.CreateCampusInvite(context.Background(), service.CreateCampusInviteInput{
			FullName: "Anita Menon",
			Email:    "anita@example.com",
			Phone:    "9876543210",
		})

		var verr *service.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Details[0], "institution")
	})
}

func TestListContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("passes category filter through", func(t *testing.T) {
		contactRepo := mocks.NewMockContactRepository(ctrl)
		svc := service.NewSubmissionService(&repository.Container{Contacts: contactRepo})

		contactRepo.EXPECT().
			FindAll(gomock.Any(), "partnership").
			Return([]model.ContactSubmission{{ID: "c1", Category: "partnership"}}, nil)

		contacts, err := svc.ListContacts(context.Background(), "partnership")
		assert.NoError(t, err)
		assert.Len(t, contacts, 1)
	})

	t.Run("rejects unknown categories", func(t *testing.T) {
		contactRepo := mocks.NewMockContactRepository(ctrl)
		svc := service.NewSubmissionService(&repository.Container{Contacts: contactRepo})

		_, err := svc.ListContacts(context.Background(), "spam")
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})
}

func TestUpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notes := "Reviewed and approved"

	t.Run("routes to the right collection", func(t *testing.T) {
		consultRepo := mocks.NewMockConsultationRepository(ctrl)
		svc := service.NewSubmissionService(&repository.Container{Consultations: consultRepo})

		consultRepo.EXPECT().
			UpdateStatus(gomock.Any(), "sub-1", model.StatusApproved, &notes).
			Return(&model.ConsultationSubmission{ID: "sub-1", Status: model.StatusApproved, AdminNotes: &notes}, nil)

		updated, err := svc.UpdateStatus(context.Background(), model.FormConsultation, "sub-1", service.UpdateStatusInput{
			Status:     model.StatusApproved,
			AdminNotes: &notes,
		})

		assert.NoError(t, err)
		sub, ok := updated.(*model.ConsultationSubmission)
		assert.True(t, ok)
		assert.Equal(t, model.StatusApproved, sub.Status)
	})

	t.Run("unknown status never reaches storage", func(t *testing.T) {
		consultRepo := mocks.NewMockConsultationRepository(ctrl)
		svc := service.NewSubmissionService(&repository.Container{Consultations: consultRepo})

		_, err := svc.UpdateStatus(context.Background(), model.FormConsultation, "sub-1", service.UpdateStatusInput{
			Status: "archived",
		})

		var verr *service.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Details[0], "status")
	})

	t.Run("unknown form type is rejected", func(t *testing.T) {
		svc := service.NewSubmissionService(&repository.Container{})

		_, err := svc.UpdateStatus(context.Background(), "newsletter", "sub-1", service.UpdateStatusInput{
			Status: model.StatusApproved,
		})
		assert.True(t, errors.Is(err, domain.ErrInvalidFormType))
	})
}

func TestDeleteSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("delete is idempotent", func(t *testing.T) {
		advisoryRepo := mocks.NewMockAdvisorySessionRepository(ctrl)
		svc := service.NewSubmissionService(&repository.Container{AdvisorySessions: advisoryRepo})

		advisoryRepo.EXPECT().Delete(gomock.Any(), "missing-id").Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), model.FormAdvisory, "missing-id"))
	})

	t.Run("unknown form type is rejected", func(t *testing.T) {
		svc := service.NewSubmissionService(&repository.Container{})
		err := svc.Delete(context.Background(), "newsletter", "sub-1")
		assert.True(t, errors.Is(err, domain.ErrInvalidFormType))
	})
}
