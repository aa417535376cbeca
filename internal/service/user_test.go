package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/keralaeconomicforum/forum/internal/auth"
	"github.com/keralaeconomicforum/forum/internal/domain"
	"github.com/keralaeconomicforum/forum/internal/mocks"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/keralaeconomicforum/forum/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("mirrors the identity into storage", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		svc := service.NewUserService(userRepo)

		identity := &auth.Identity{
			UID:       "firebase-uid-1",
			Email:     "anita@example.com",
			FirstName: "Anita",
			LastName:  "Menon",
			Picture:   "https://example.com/anita.png",
		}

		userRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) (*model.User, error) {
				assert.Equal(t, identity.UID, u.ID)
				assert.Equal(t, identity.Email, u.Email)
				assert.Equal(t, identity.FirstName, u.FirstName)
				stored := *u
				stored.Role = model.RoleUser
				return &stored, nil
			})

		user, err := svc.Sync(context.Background(), identity)
		assert.NoError(t, err)
		assert.Equal(t, model.RoleUser, user.Role)
	})

	t.Run("rejects a missing identity", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		svc := service.NewUserService(userRepo)

		_, err := svc.Sync(context.Background(), nil)
		assert.True(t, errors.Is(err, domain.ErrInvalidToken))
	})
}

func TestUpdateRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("assigns a known role", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		svc := service.NewUserService(userRepo)

		userRepo.EXPECT().
			UpdateRole(gomock.Any(), "u1", model.RoleAdmin).
			Return(&model.User{ID: "u1", Role: model.RoleAdmin}, nil)

		user, err := svc.UpdateRole(context.Background(), "u1", model.RoleAdmin)
		assert.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.Role)
	})

	t.Run("unknown roles never reach storage", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		svc := service.NewUserService(userRepo)

		_, err := svc.UpdateRole(context.Background(), "u1", "superuser")
		assert.True(t, errors.Is(err, domain.ErrInvalidRole))
	})
}

func TestIsAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("admin user", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		svc := service.NewUserService(userRepo)

		userRepo.EXPECT().
			FindByID(gomock.Any(), "u1").
			Return(&model.User{ID: "u1", Role: model.RoleAdmin}, nil)

		isAdmin, err := svc.IsAdmin(context.Background(), "u1")
		assert.NoError(t, err)
		assert.True(t, isAdmin)
	})

	t.Run("absent user is simply not an admin", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		svc := service.NewUserService(userRepo)

		userRepo.EXPECT().
			FindByID(gomock.Any(), "ghost").
			Return(nil, domain.ErrUserNotFound)

		isAdmin, err := svc.IsAdmin(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.False(t, isAdmin)
	})

	t.Run("storage errors propagate", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(ctrl)
		svc := service.NewUserService(userRepo)

		boom := errors.New("connection reset")
		userRepo.EXPECT().FindByID(gomock.Any(), "u1").Return(nil, boom)

		_, err := svc.IsAdmin(context.Background(), "u1")
		assert.ErrorIs(t, err, boom)
	})
}
