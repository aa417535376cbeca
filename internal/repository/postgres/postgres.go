// internal/repository/postgres/postgres.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/keralaeconomicforum/forum/internal/config"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/keralaeconomicforum/forum/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to Postgres with the pool settings the API has always run
// with and verifies the connection before returning.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Resource{},
		&model.Program{},
		&model.Event{},
		&model.MembershipPlan{},
		&model.ApplyFormSubmission{},
		&model.RegisterFormSubmission{},
		&model.ConsultationSubmission{},
		&model.AdvisorySessionSubmission{},
		&model.CampusInviteSubmission{},
		&model.ContactSubmission{},
		&model.EmailReply{},
	)
}

// NewContainer wires the relational adapter for every entity.
func NewContainer(db *gorm.DB) *repository.Container {
	return &repository.Container{
		Users:            NewUserRepository(db),
		Resources:        NewResourceRepository(db),
		Programs:         NewProgramRepository(db),
		Events:           NewEventRepository(db),
		MembershipPlans:  NewMembershipPlanRepository(db),
		ApplyForms:       NewApplyFormRepository(db),
		RegisterForms:    NewRegisterFormRepository(db),
		Consultations:    NewConsultationRepository(db),
		AdvisorySessions: NewAdvisorySessionRepository(db),
		CampusInvites:    NewCampusInviteRepository(db),
		Contacts:         NewContactRepository(db),
		EmailReplies:     NewEmailReplyRepository(db),
	}
}
