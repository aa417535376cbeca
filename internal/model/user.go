// internal/model/user.go
package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User mirrors an identity-provider account. The ID is the provider's stable
// subject identifier, not a generated one, so the same person always maps to
// the same record across syncs.
type User struct {
	ID              string    `gorm:"type:text;primaryKey" json:"id" firestore:"-"`
	Email           string    `gorm:"type:text;uniqueIndex;not null" json:"email" firestore:"email"`
	FirstName       string    `gorm:"type:text" json:"firstName" firestore:"firstName"`
	LastName        string    `gorm:"type:text" json:"lastName" firestore:"lastName"`
	ProfileImageURL string    `gorm:"type:text" json:"profileImageUrl" firestore:"profileImageUrl"`
	Role            string    `gorm:"type:text;not null;default:'user'" json:"role" firestore:"role"`
	CreatedAt       time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// ValidRole reports whether r is an assignable role.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}
