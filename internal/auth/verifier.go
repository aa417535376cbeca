// internal/auth/verifier.go
package auth

import (
	"context"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/keralaeconomicforum/forum/internal/config"
	"github.com/keralaeconomicforum/forum/internal/domain"
	"google.golang.org/api/option"
)

// Identity is the verified caller extracted from a bearer token.
type Identity struct {
	UID       string
	Email     string
	FirstName string
	LastName  string
	Picture   string
}

// Verifier checks a bearer token with the identity provider and returns the
// caller it belongs to.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

type firebaseVerifier struct {
	client *fbauth.Client
}

// NewVerifier builds a Firebase ID-token verifier. When no project is
// configured it returns a degraded verifier whose Verify always reports
// domain.ErrAuthNotConfigured, so the server still starts and public routes
// keep working.
func NewVerifier(ctx context.Context, cfg *config.Config) (Verifier, error) {
	if cfg.Firebase.ProjectID == "" {
		return notConfiguredVerifier{}, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.ServiceAccountKey != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.Firebase.ServiceAccountKey)))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing auth client: %w", err)
	}

	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	return identityFromToken(token), nil
}

func identityFromToken(token *fbauth.Token) *Identity {
	identity := &Identity{UID: token.UID}

	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		identity.Picture = picture
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.FirstName, identity.LastName = splitName(name)
	}
	return identity
}

// splitName breaks a display name into first/last on the first space.
func splitName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

type notConfiguredVerifier struct{}

func (notConfiguredVerifier) Verify(context.Context, string) (*Identity, error) {
	return nil, domain.ErrAuthNotConfigured
}
