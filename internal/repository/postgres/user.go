// internal/repository/postgres/user.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/keralaeconomicforum/forum/internal/domain"
	"github.com/keralaeconomicforum/forum/internal/model"
	"gorm.io/gorm"
)

// bootstrapLockID serializes the first-admin claim across concurrent syncs.
const bootstrapLockID = 71543

const pgUniqueViolation = "23505"

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	result := r.db.WithContext(ctx).Order("created_at desc").Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find users: %w", result.Error)
	}
	return users, nil
}

// Upsert creates or refreshes the user record keyed by the identity
// provider's subject id. The first user ever stored claims the admin role;
// the claim runs under an advisory lock so two concurrent first syncs cannot
// both observe an empty table.
func (r *UserRepository) Upsert(ctx context.Context, user *model.User) (*model.User, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", bootstrapLockID).Error; err != nil {
			return fmt.Errorf("acquiring bootstrap lock: %w", err)
		}

		var existing model.User
		err := tx.First(&existing, "id = ?", user.ID).Error
		switch {
		case err == nil:
			existing.Email = user.Email
			existing.FirstName = user.FirstName
			existing.LastName = user.LastName
			existing.ProfileImageURL = user.ProfileImageURL
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("updating user: %w", err)
			}
			*user = existing
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			var count int64
			if err := tx.Model(&model.User{}).Count(&count).Error; err != nil {
				return fmt.Errorf("counting users: %w", err)
			}
			user.Role = model.RoleUser
			if count == 0 {
				user.Role = model.RoleAdmin
			}
			if err := tx.Create(user).Error; err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
					return fmt.Errorf("%w: email already linked to another account", domain.ErrInvalidInput)
				}
				return fmt.Errorf("creating user: %w", err)
			}
			return nil

		default:
			return fmt.Errorf("failed to find user: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id, role string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}

	user.Role = role
	if err := r.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	return &user, nil
}
