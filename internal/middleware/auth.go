// internal/middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/keralaeconomicforum/forum/internal/auth"
	"github.com/keralaeconomicforum/forum/internal/domain"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/keralaeconomicforum/forum/internal/repository"
	"github.com/keralaeconomicforum/forum/internal/respond"
)

type contextKey string

const identityKey = contextKey("kef_identity")

// IdentityFrom returns the verified caller stored by Authenticate, or nil
// when the request never passed through it.
func IdentityFrom(ctx context.Context) *auth.Identity {
	identity, _ := ctx.Value(identityKey).(*auth.Identity)
	return identity
}

// BearerToken extracts the token from an Authorization header, or "" when
// the header is missing or malformed.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// Authenticate validates the bearer token and stores the caller's identity
// in the request context. Verification failures are logged and answered as
// plain 401s; the caller never learns why the token was rejected.
func Authenticate(verifier auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			identity, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrAuthNotConfigured) {
					respondWithError(w, http.StatusServiceUnavailable, "Authentication is not configured: set FIREBASE_PROJECT_ID")
					return
				}
				slog.WarnContext(r.Context(), "token verification failed", "error", err)
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin loads the stored user for the verified caller and rejects any
// request whose role is not admin. Must run after Authenticate.
func RequireAdmin(users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := IdentityFrom(r.Context())
			if identity == nil {
				respondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			user, err := users.FindByID(r.Context(), identity.UID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					respondWithError(w, http.StatusForbidden, "Admin access required")
					return
				}
				slog.ErrorContext(r.Context(), "admin lookup failed", "error", err)
				respondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			if user.Role != model.RoleAdmin {
				respondWithError(w, http.StatusForbidden, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// respondWithError sends the shared JSON error envelope
func respondWithError(w http.ResponseWriter, code int, message string) {
	respond.Error(w, code, message)
}
