// internal/repository/firestore/firestore.go
package firestore

import (
	"context"
	"fmt"

	cloudfs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/keralaeconomicforum/forum/internal/config"
	"github.com/keralaeconomicforum/forum/internal/repository"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names are shared with the deployed Firestore project; renaming
// any of them orphans existing documents.
const (
	colUsers            = "users"
	colResources        = "resources"
	colPrograms         = "programs"
	colEvents           = "events"
	colMembershipPlans  = "membershipPlans"
	colApplyForms       = "applyFormSubmissions"
	colRegisterForms    = "registerFormSubmissions"
	colConsultations    = "consultationSubmissions"
	colAdvisorySessions = "advisorySessionSubmissions"
	colCampusInvites    = "campusInviteSubmissions"
	colContacts         = "contactSubmissions"
	colEmailReplies     = "emailReplies"
	colMeta             = "meta"
)

// NewClient opens a Firestore client for the configured project. A service
// account key is optional; without one the client relies on ambient
// credentials (metadata server or GOOGLE_APPLICATION_CREDENTIALS).
func NewClient(ctx context.Context, cfg *config.Config) (*cloudfs.Client, error) {
	if cfg.Firebase.ProjectID == "" {
		return nil, fmt.Errorf("firestore backend requires FIREBASE_PROJECT_ID")
	}

	var opts []option.ClientOption
	if cfg.Firebase.ServiceAccountKey != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.Firebase.ServiceAccountKey)))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening firestore client: %w", err)
	}
	return client, nil
}

// NewContainer wires the document-store adapter for every entity.
func NewContainer(client *cloudfs.Client) *repository.Container {
	return &repository.Container{
		Users:            NewUserRepository(client),
		Resources:        NewResourceRepository(client),
		Programs:         NewProgramRepository(client),
		Events:           NewEventRepository(client),
		MembershipPlans:  NewMembershipPlanRepository(client),
		ApplyForms:       NewApplyFormRepository(client),
		RegisterForms:    NewRegisterFormRepository(client),
		Consultations:    NewConsultationRepository(client),
		AdvisorySessions: NewAdvisorySessionRepository(client),
		CampusInvites:    NewCampusInviteRepository(client),
		Contacts:         NewContactRepository(client),
		EmailReplies:     NewEmailReplyRepository(client),
	}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

// putIfSet is the adapter's serialization boundary for optional text fields:
// Firestore documents carry only the fields a submitter actually provided,
// so empty optionals are omitted from writes rather than stored as "".
func putIfSet(fields map[string]any, key, value string) {
	if value != "" {
		fields[key] = value
	}
}
