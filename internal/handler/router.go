// internal/handler/router.go
package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/keralaeconomicforum/forum/internal/auth"
	"github.com/keralaeconomicforum/forum/internal/middleware"
	"github.com/keralaeconomicforum/forum/internal/repository"
	"github.com/keralaeconomicforum/forum/internal/service"
)

// Deps carries everything the router needs. Tests construct it with mocks;
// main wires the real services.
type Deps struct {
	Verifier    auth.Verifier
	Users       *service.UserService
	Content     *service.ContentService
	Submissions *service.SubmissionService
	Replies     *service.ReplyService

	// UserRepo backs the admin-gating middleware's role lookups.
	UserRepo repository.UserRepository
}

// NewRouter builds the full route tree. Middleware are ordered so every
// request gets an id and structured log line before any handler runs.
func NewRouter(deps Deps) *chi.Mux {
	authHandler := NewAuthHandler(deps.Verifier, deps.Users)
	contentHandler := NewContentHandler(deps.Content)
	formsHandler := NewFormsHandler(deps.Submissions)
	usersHandler := NewUsersHandler(deps.Users)
	replyHandler := NewReplyHandler(deps.Replies)

	authenticate := middleware.Authenticate(deps.Verifier)
	requireAdmin := middleware.RequireAdmin(deps.UserRepo)

	r := chi.NewRouter()
	r.Use(chmw.RequestID)
	r.Use(chmw.RealIP)
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())
	r.Use(chmw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		// Public catalog.
		r.Get("/resources", contentHandler.ListResources)
		r.Get("/programs", contentHandler.ListPrograms)
		r.Get("/events", contentHandler.ListEvents)
		r.Get("/membership-plans", contentHandler.ListMembershipPlans)

		// Public form submissions.
		r.Group(func(r chi.Router) {
			r.Use(chmw.AllowContentType("application/json"))
			r.Post("/forms/apply", formsHandler.SubmitApply)
			r.Post("/forms/register", formsHandler.SubmitRegister)
			r.Post("/forms/consultation", formsHandler.SubmitConsultation)
			r.Post("/forms/advisory", formsHandler.SubmitAdvisory)
			r.Post("/forms/campus-invite", formsHandler.SubmitCampusInvite)
			r.Post("/contact", formsHandler.SubmitContact)
		})

		// Kept for older admin clients that fetch the contact inbox here.
		r.Group(func(r chi.Router) {
			r.Use(authenticate, requireAdmin)
			r.Get("/contact/all", formsHandler.ListContacts)
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(authenticate).Post("/sync", authHandler.Sync)
		})

		r.Route("/admin", func(r chi.Router) {
			// Check is deliberately outside the auth middleware: it reports
			// isAdmin false instead of rejecting.
			r.Get("/check", authHandler.Check)

			r.Group(func(r chi.Router) {
				r.Use(authenticate, requireAdmin)

				r.Route("/resources", func(r chi.Router) {
					r.Get("/", contentHandler.AdminListResources)
					r.Post("/", contentHandler.CreateResource)
					r.Get("/{id}", contentHandler.GetResource)
					r.Patch("/{id}", contentHandler.UpdateResource)
					r.Delete("/{id}", contentHandler.DeleteResource)
				})
				r.Route("/programs", func(r chi.Router) {
					r.Get("/", contentHandler.AdminListPrograms)
					r.Post("/", contentHandler.CreateProgram)
					r.Get("/{id}", contentHandler.GetProgram)
					r.Patch("/{id}", contentHandler.UpdateProgram)
					r.Delete("/{id}", contentHandler.DeleteProgram)
				})
				r.Route("/events", func(r chi.Router) {
					r.Get("/", contentHandler.AdminListEvents)
					r.Post("/", contentHandler.CreateEvent)
					r.Get("/{id}", contentHandler.GetEvent)
					r.Patch("/{id}", contentHandler.UpdateEvent)
					r.Delete("/{id}", contentHandler.DeleteEvent)
				})
				r.Route("/membership-plans", func(r chi.Router) {
					r.Get("/", contentHandler.AdminListMembershipPlans)
					r.Post("/", contentHandler.CreateMembershipPlan)
					r.Get("/{id}", contentHandler.GetMembershipPlan)
					r.Patch("/{id}", contentHandler.UpdateMembershipPlan)
					r.Delete("/{id}", contentHandler.DeleteMembershipPlan)
				})

				r.Route("/forms/{type}", func(r chi.Router) {
					r.Get("/", formsHandler.ListByType)
					r.Patch("/{id}", formsHandler.UpdateStatus)
					r.Delete("/{id}", formsHandler.Delete)
				})

				r.Post("/email-reply", replyHandler.Send)
				r.Get("/email-replies", replyHandler.History)

				r.Get("/users", usersHandler.List)
				r.Patch("/users/{id}/role", usersHandler.UpdateRole)
			})
		})
	})

	return r
}
