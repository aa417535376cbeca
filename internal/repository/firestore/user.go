// internal/repository/firestore/user.go
package firestore

import (
	"context"
	"fmt"

	cloudfs "cloud.google.com/go/firestore"
	"github.com/keralaeconomicforum/forum/internal/domain"
	"github.com/keralaeconomicforum/forum/internal/model"
	"google.golang.org/api/iterator"
)

type UserRepository struct {
	client *cloudfs.Client
}

func NewUserRepository(client *cloudfs.Client) *UserRepository {
	return &UserRepository{client: client}
}

func decodeUser(doc *cloudfs.DocumentSnapshot) (*model.User, error) {
	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decoding user document: %w", err)
	}
	user.ID = doc.Ref.ID
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	doc, err := r.client.Collection(colUsers).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return decodeUser(doc)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	iter := r.client.Collection(colUsers).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return decodeUser(doc)
}

func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	docs, err := r.client.Collection(colUsers).
		OrderBy("createdAt", cloudfs.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}

	users := make([]model.User, 0, len(docs))
	for _, doc := range docs {
		user, err := decodeUser(doc)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

// Upsert creates or refreshes the user document keyed by the provider's
// subject id. The first-admin bootstrap is a conditional write: whoever
// creates the meta/firstAdmin claim document gets the admin role, so two
// concurrent first syncs cannot both win.
func (r *UserRepository) Upsert(ctx context.Context, user *model.User) (*model.User, error) {
	docRef := r.client.Collection(colUsers).Doc(user.ID)

	_, err := docRef.Get(ctx)
	switch {
	case err == nil:
		updates := []cloudfs.Update{
			{Path: "email", Value: user.Email},
			{Path: "firstName", Value: user.FirstName},
			{Path: "lastName", Value: user.LastName},
			{Path: "profileImageUrl", Value: user.ProfileImageURL},
			{Path: "updatedAt", Value: cloudfs.ServerTimestamp},
		}
		if _, err := docRef.Update(ctx, updates); err != nil {
			return nil, fmt.Errorf("updating user: %w", err)
		}

	case isNotFound(err):
		role := model.RoleUser
		claim := map[string]any{"userId": user.ID, "claimedAt": cloudfs.ServerTimestamp}
		if _, err := r.client.Collection(colMeta).Doc("firstAdmin").Create(ctx, claim); err == nil {
			role = model.RoleAdmin
		} else if !isAlreadyExists(err) {
			return nil, fmt.Errorf("claiming first admin: %w", err)
		}

		fields := map[string]any{
			"email":     user.Email,
			"role":      role,
			"createdAt": cloudfs.ServerTimestamp,
			"updatedAt": cloudfs.ServerTimestamp,
		}
		putIfSet(fields, "firstName", user.FirstName)
		putIfSet(fields, "lastName", user.LastName)
		putIfSet(fields, "profileImageUrl", user.ProfileImageURL)
		if _, err := docRef.Set(ctx, fields); err != nil {
			return nil, fmt.Errorf("creating user: %w", err)
		}

	default:
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	doc, err := docRef.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("reloading user: %w", err)
	}
	return decodeUser(doc)
}

func (r *UserRepository) UpdateRole(ctx context.Context, id, role string) (*model.User, error) {
	docRef := r.client.Collection(colUsers).Doc(id)

	updates := []cloudfs.Update{
		{Path: "role", Value: role},
		{Path: "updatedAt", Value: cloudfs.ServerTimestamp},
	}
	if _, err := docRef.Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	doc, err := docRef.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("reloading user: %w", err)
	}
	return decodeUser(doc)
}
