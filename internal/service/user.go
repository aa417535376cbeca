// internal/service/user.go
package service

import (
	"context"
	"errors"

	"github.com/keralaeconomicforum/forum/internal/auth"
	"github.com/keralaeconomicforum/forum/internal/domain"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/keralaeconomicforum/forum/internal/repository"
)

// UserService mirrors identity-provider accounts into storage and manages
// role assignment. Roles live in storage, never in the provider token, so
// revoking an admin takes effect on the next request.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Sync creates or refreshes the stored user for a verified identity. Profile
// fields follow the provider on every call; the stored role is preserved.
func (s *UserService) Sync(ctx context.Context, identity *auth.Identity) (*model.User, error) {
	if identity == nil || identity.UID == "" {
		return nil, domain.ErrInvalidToken
	}
	user := &model.User{
		ID:              identity.UID,
		Email:           identity.Email,
		FirstName:       identity.FirstName,
		LastName:        identity.LastName,
		ProfileImageURL: identity.Picture,
	}
	return s.users.Upsert(ctx, user)
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.FindAll(ctx)
}

// UpdateRole assigns a role to a user. Only the known roles are accepted.
func (s *UserService) UpdateRole(ctx context.Context, id, role string) (*model.User, error) {
	if !model.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	return s.users.UpdateRole(ctx, id, role)
}

// IsAdmin reports whether the stored record for id carries the admin role.
// Absent users are simply not admins.
func (s *UserService) IsAdmin(ctx context.Context, id string) (bool, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return user.Role == model.RoleAdmin, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUserNotFound)
}
