// internal/model/content.go
package model

import (
	"time"

	"github.com/lib/pq"
)

// Content entities are the admin-managed records shown on the public site.
// IsActive gates public visibility without deleting the record.

type Resource struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id" firestore:"-"`
	Title       string    `gorm:"type:text;not null" json:"title" firestore:"title"`
	Description string    `gorm:"type:text;not null" json:"description" firestore:"description"`
	Category    string    `gorm:"type:text;not null" json:"category" firestore:"category"`
	Link        string    `gorm:"type:text" json:"link,omitempty" firestore:"link"`
	ImageURL    string    `gorm:"type:text" json:"imageUrl,omitempty" firestore:"imageUrl"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive" firestore:"isActive"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

type Program struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id" firestore:"-"`
	Title       string         `gorm:"type:text;not null" json:"title" firestore:"title"`
	Description string         `gorm:"type:text;not null" json:"description" firestore:"description"`
	Category    string         `gorm:"type:text;not null" json:"category" firestore:"category"`
	Eligibility string         `gorm:"type:text" json:"eligibility,omitempty" firestore:"eligibility"`
	Duration    string         `gorm:"type:text" json:"duration,omitempty" firestore:"duration"`
	Benefits    pq.StringArray `gorm:"type:text[]" json:"benefits,omitempty" firestore:"benefits"`
	ImageURL    string         `gorm:"type:text" json:"imageUrl,omitempty" firestore:"imageUrl"`
	IsActive    bool           `gorm:"not null;default:true" json:"isActive" firestore:"isActive"`
	CreatedAt   time.Time      `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt" firestore:"updatedAt"`
}

type Event struct {
	ID               string    `gorm:"type:uuid;primaryKey" json:"id" firestore:"-"`
	Title            string    `gorm:"type:text;not null" json:"title" firestore:"title"`
	Description      string    `gorm:"type:text;not null" json:"description" firestore:"description"`
	Date             time.Time `gorm:"not null" json:"date" firestore:"date"`
	Location         string    `gorm:"type:text;not null" json:"location" firestore:"location"`
	Category         string    `gorm:"type:text;not null" json:"category" firestore:"category"`
	ImageURL         string    `gorm:"type:text" json:"imageUrl,omitempty" firestore:"imageUrl"`
	RegistrationLink string    `gorm:"type:text" json:"registrationLink,omitempty" firestore:"registrationLink"`
	IsActive         bool      `gorm:"not null;default:true" json:"isActive" firestore:"isActive"`
	CreatedAt        time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt" firestore:"updatedAt"`
}

type MembershipPlan struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id" firestore:"-"`
	Name        string         `gorm:"type:text;not null" json:"name" firestore:"name"`
	Type        string         `gorm:"type:text;not null" json:"type" firestore:"type"`
	Price       string         `gorm:"type:text;not null" json:"price" firestore:"price"`
	Description string         `gorm:"type:text;not null" json:"description" firestore:"description"`
	Benefits    pq.StringArray `gorm:"type:text[]" json:"benefits,omitempty" firestore:"benefits"`
	IsActive    bool           `gorm:"not null;default:true" json:"isActive" firestore:"isActive"`
	// Order controls the display sequence on the membership page.
	Order     int       `gorm:"column:display_order;not null;default:0" json:"order" firestore:"order"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Patch types carry partial updates. A nil field is "leave unchanged"; the
// adapters translate set fields into their backend's column/field writes.

type ResourcePatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Link        *string `json:"link"`
	ImageURL    *string `json:"imageUrl"`
	IsActive    *bool   `json:"isActive"`
}

type ProgramPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Eligibility *string   `json:"eligibility"`
	Duration    *string   `json:"duration"`
	Benefits    *[]string `json:"benefits"`
	ImageURL    *string   `json:"imageUrl"`
	IsActive    *bool     `json:"isActive"`
}

type EventPatch struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Date             *time.Time `json:"date"`
	Location         *string    `json:"location"`
	Category         *string    `json:"category"`
	ImageURL         *string    `json:"imageUrl"`
	RegistrationLink *string    `json:"registrationLink"`
	IsActive         *bool      `json:"isActive"`
}

type MembershipPlanPatch struct {
	Name        *string   `json:"name"`
	Type        *string   `json:"type"`
	Price       *string   `json:"price"`
	Description *string   `json:"description"`
	Benefits    *[]string `json:"benefits"`
	IsActive    *bool     `json:"isActive"`
	Order       *int      `json:"order"`
}
