package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/keralaeconomicforum/forum/internal/auth"
	"github.com/keralaeconomicforum/forum/internal/domain"
	"github.com/keralaeconomicforum/forum/internal/handler"
	"github.com/keralaeconomicforum/forum/internal/mocks"
	"github.com/keralaeconomicforum/forum/internal/model"
	"github.com/keralaeconomicforum/forum/internal/repository"
	"github.com/keralaeconomicforum/forum/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// testEnv bundles the mocked storage behind a real router so tests exercise
// the full middleware and routing stack.
type testEnv struct {
	router   *chi.Mux
	verifier *mocks.MockVerifier
	users    *mocks.MockUserRepository
	repos    *repository.Container

	resources *mocks.MockResourceRepository
	contacts  *mocks.MockContactRepository
	applies   *mocks.MockApplyFormRepository
	registers *mocks.MockRegisterFormRepository
	replies   *mocks.MockEmailReplyRepository
	sender    *mocks.MockSender
}

func newTestEnv(ctrl *gomock.Controller) *testEnv {
	env := &testEnv{
		verifier:  mocks.NewMockVerifier(ctrl),
		users:     mocks.NewMockUserRepository(ctrl),
		resources: mocks.NewMockResourceRepository(ctrl),
		contacts:  mocks.NewMockContactRepository(ctrl),
		applies:   mocks.NewMockApplyFormRepository(ctrl),
		registers: mocks.NewMockRegisterFormRepository(ctrl),
		replies:   mocks.NewMockEmailReplyRepository(ctrl),
		sender:    mocks.NewMockSender(ctrl),
	}
	env.repos = &repository.Container{
		Users:         env.users,
		Resources:     env.resources,
		Contacts:      env.contacts,
		ApplyForms:    env.applies,
		RegisterForms: env.registers,
		EmailReplies:  env.replies,
	}
	env.router = handler.NewRouter(handler.Deps{
		Verifier:    env.verifier,
		Users:       service.NewUserService(env.users),
		Content:     service.NewContentService(env.repos),
		Submissions: service.NewSubmissionService(env.repos),
		Replies:     service.NewReplyService(env.replies, env.sender, "https://keralaeconomicforum.org"),
		UserRepo:    env.users,
	})
	return env
}

// asAdmin wires the verifier and user lookup for a valid admin token.
func (env *testEnv) asAdmin() {
	env.verifier.EXPECT().
		Verify(gomock.Any(), "admin-token").
		Return(&auth.Identity{UID: "admin-uid", Email: "admin@example.com"}, nil)
	env.users.EXPECT().
		FindByID(gomock.Any(), "admin-uid").
		Return(&model.User{ID: "admin-uid", Role: model.RoleAdmin}, nil)
}

func doJSON(router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(ctrl)

	env.contacts.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *model.ContactSubmission) error {
			s.ID = "c1"
			s.Status = model.StatusPending
			return nil
		})

	rec := doJSON(env.router, http.MethodPost, "/api/contact", "", map[string]any{
		"fullName": "Anita Menon",
		"email":    "anita@example.com",
		"category": "general",
		"message":  "How do I join the forum?",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got handler.SubmissionAccepted
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, "Message sent successfully", got.Message)
	assert.Equal(t, "c1", got.ID)
}

func TestSubmitRegisterValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(ctrl)

	rec := doJSON(env.router, http.MethodPost, "/api/forms/register", "", map[string]any{
		"fullName":       "Anita Menon",
		"email":          "anita@example.com",
		"phone":          "9876543210",
		"membershipType": "platinum",
		"reason":         "I want to join the forum and contribute to its mission",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handler.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	if assert.NotNil(t, resp.Details) {
		assert.Contains(t, (*resp.Details)[0], "membershipType")
	}
}

func TestPublicResourcesActiveOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(ctrl)

	env.resources.EXPECT().FindAll(gomock.Any()).Return([]model.Resource{
		{ID: "r1", IsActive: true},
		{ID: "r2", IsActive: false},
	}, nil)

	rec := doJSON(env.router, http.MethodGet, "/api/resources", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []model.Resource
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(ctrl)

	rec := doJSON(env.router, http.MethodGet, "/api/admin/resources", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// middleware rejections use the same error envelope as the handlers
	var resp handler.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "No authorization header", resp.Error)
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(ctrl)

	env.verifier.EXPECT().
		Verify(gomock.Any(), "user-token").
		Return(&auth.Identity{UID: "user-uid"}, nil)
	env.users.EXPECT().
		FindByID(gomock.Any(), "user-uid").
		Return(&model.User{ID: "user-uid", Role: model.RoleUser}, nil)

	rec := doJSON(env.router, http.MethodGet, "/api/admin/resources", "user-token", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminAuthNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(ctrl)

	env.verifier.EXPECT().
		Verify(gomock.Any(), "some-token").
		Return(nil, domain.ErrAuthNotConfigured)

	rec := doJSON(env.router, http.MethodGet, "/api/admin/resources", "some-token", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAdminListResourcesIncludesInactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(ctrl)
	env.asAdmin()

	env.resources.EXPECT().FindAll(gomock.Any()).Return([]model.Resource{
		{ID: "r1", IsActive: true},
		{ID: "r2", IsActive: false},
	}, nil)

	rec := doJSON(env.router, http.MethodGet, "/api/admin/resources", "admin-token", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []model.Resource
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestAdminGetResourceByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(ctrl)
	env.asAdmin()

	env.resources.EXPECT().FindByID(gomock.Any(), "r2").
		Return(&model.Resource{ID: "r2", Title: "Founder playbook", IsActive: false}, nil)

	rec := doJSON(env.router, http.MethodGet, "/api/admin/resources/r2", "admin-token", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got model.Resource
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Founder playbook", got.Title)
	assert.False(t, got.IsActive)
}

func TestAdminFormsByType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("lists a known collection", func(t *testing.T) {
		env := newTestEnv(ctrl)
		env.asAdmin()

		env.applies.EXPECT().FindAll(gomock.Any()).Return([]model.ApplyFormSubmission{{ID: "a1"}}, nil)

		rec := doJSON(env.router, http.MethodGet, "/api/admin/forms/apply", "admin-token", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown collections are 404", func(t *testing.T) {
		env := newTestEnv(ctrl)
		env.asAdmin()

		rec := doJSON(env.router, http.MethodGet, "/api/admin/forms/newsletter", "admin-token", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		env := newTestEnv(ctrl)
		env.asAdmin()

		env.applies.EXPECT().Delete(gomock.Any(), "missing").Return(nil)

		rec := doJSON(env.router, http.MethodDelete, "/api/admin/forms/apply/missing", "admin-token", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp handler.BaseResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("patches triage status", func(t *testing.T) {
		env := newTestEnv(ctrl)
		env.asAdmin()

		notes := "Looks good"
		env.registers.EXPECT().
			UpdateStatus(gomock.Any(), "reg-1", model.StatusApproved, &notes).
			Return(&model.RegisterFormSubmission{ID: "reg-1", Status: model.StatusApproved, AdminNotes: &notes}, nil)

		rec := doJSON(env.router, http.MethodPatch, "/api/admin/forms/register/reg-1", "admin-token", map[string]any{
			"status":     "approved",
			"adminNotes": "Looks good",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("no token reports not admin instead of rejecting", func(t *testing.T) {
		env := newTestEnv(ctrl)

		rec := doJSON(env.router, http.MethodGet, "/api/admin/check", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp handler.CheckResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.IsAdmin)
	})

	t.Run("unverifiable token reports not admin", func(t *testing.T) {
		env := newTestEnv(ctrl)

		env.verifier.EXPECT().
			Verify(gomock.Any(), "bad-token").
			Return(nil, domain.ErrInvalidToken)

		rec := doJSON(env.router, http.MethodGet, "/api/admin/check", "bad-token", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp handler.CheckResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.IsAdmin)
	})

	t.Run("admin token reports admin", func(t *testing.T) {
		env := newTestEnv(ctrl)

		env.verifier.EXPECT().
			Verify(gomock.Any(), "admin-token").
			Return(&auth.Identity{UID: "admin-uid"}, nil)
		env.users.EXPECT().
			FindByID(gomock.Any(), "admin-uid").
			Return(&model.User{ID: "admin-uid", Role: model.RoleAdmin}, nil)

		rec := doJSON(env.router, http.MethodGet, "/api/admin/check", "admin-token", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp handler.CheckResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.IsAdmin)
	})
}

func TestAuthSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(ctrl)

	env.verifier.EXPECT().
		Verify(gomock.Any(), "user-token").
		Return(&auth.Identity{UID: "user-uid", Email: "anita@example.com"}, nil)
	env.users.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *model.User) (*model.User, error) {
			stored := *u
			stored.Role = model.RoleUser
			return &stored, nil
		})

	rec := doJSON(env.router, http.MethodPost, "/api/auth/sync", "user-token", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.SyncResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user-uid", resp.User.ID)
}

func TestContactInboxAlias(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(ctrl)
	env.asAdmin()

	env.contacts.EXPECT().
		FindAll(gomock.Any(), "campus").
		Return([]model.ContactSubmission{{ID: "c1", Category: "campus"}}, nil)

	rec := doJSON(env.router, http.MethodGet, "/api/contact/all?category=campus", "admin-token", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSendEmailReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("delivered replies are recorded with the acting admin", func(t *testing.T) {
		env := newTestEnv(ctrl)
		env.asAdmin()

		gomock.InOrder(
			env.sender.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return("msg-1", nil),
			env.replies.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, reply *model.EmailReply) error {
					assert.Equal(t, "admin-uid", reply.SentBy)
					reply.ID = "reply-1"
					return nil
				}),
		)

		rec := doJSON(env.router, http.MethodPost, "/api/admin/email-reply", "admin-token", map[string]any{
			"submissionId":   "sub-1",
			"submissionType": "contact",
			"recipientEmail": "anita@example.com",
			"subject":        "Re: your question",
			"body":           "Thanks for reaching out.",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp handler.SendReplyResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "msg-1", resp.EmailID)
		assert.Equal(t, "reply-1", resp.Reply.ID)
	})

	t.Run("a provider failure surfaces as 502 with nothing recorded", func(t *testing.T) {
		env := newTestEnv(ctrl)
		env.asAdmin()

		env.sender.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			Return("", domain.ErrEmailSendFailed)

		rec := doJSON(env.router, http.MethodPost, "/api/admin/email-reply", "admin-token", map[string]any{
			"submissionId":   "sub-1",
			"submissionType": "contact",
			"recipientEmail": "anita@example.com",
			"subject":        "Re: your question",
			"body":           "Thanks for reaching out.",
		})
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestUpdateUserRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(ctrl)
	env.asAdmin()

	env.users.EXPECT().
		UpdateRole(gomock.Any(), "user-uid", model.RoleAdmin).
		Return(&model.User{ID: "user-uid", Role: model.RoleAdmin}, nil)

	rec := doJSON(env.router, http.MethodPatch, "/api/admin/users/user-uid/role", "admin-token", map[string]any{
		"role": "admin",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}
