package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rate-am/internal/data/entity"
	"rate-am/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
	err      error
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error { return nil }

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sessions[token], nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error { return nil }

func (f *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	return nil
}

type fakeRoleRepo struct {
	roles map[uuid.UUID][]*entity.UserRole
	err   error
}

func (f *fakeRoleRepo) Assign(ctx context.Context, role *entity.UserRole) error { return nil }

func (f *fakeRoleRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.UserRole, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.roles[userID], nil
}

func (f *fakeRoleRepo) Replace(ctx context.Context, userID uuid.UUID, role *entity.UserRole) error {
	return nil
}

func validSession(userID uuid.UUID) *entity.Session {
	return &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
		Token:      uuid.New(),
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

// echoHandler records what landed in the request context
func echoHandler(gotUserID *uuid.UUID, gotRole *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
			*gotUserID = userID
		}
		if role, ok := utils.GetRoleFromContext(r.Context()); ok {
			*gotRole = role
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthSession_ValidToken(t *testing.T) {
	userID := uuid.New()
	session := validSession(userID)

	sessions := &fakeSessionRepo{sessions: map[string]*entity.Session{
		session.Token.String(): session,
	}}
	roles := &fakeRoleRepo{roles: map[uuid.UUID][]*entity.UserRole{
		userID: {{UserID: userID, Role: entity.RoleVendor}},
	}}

	var gotUserID uuid.UUID
	var gotRole string
	handler := AuthSession(sessions, roles, zap.NewNop())(echoHandler(&gotUserID, &gotRole))

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, string(entity.RoleVendor), gotRole)
}

func TestAuthSession_MissingHeader(t *testing.T) {
	handler := AuthSession(&fakeSessionRepo{}, &fakeRoleRepo{}, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthSession_MalformedHeader(t *testing.T) {
	handler := AuthSession(&fakeSessionRepo{}, &fakeRoleRepo{}, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		}))

	for _, header := range []string{"token-only", "Basic abc123", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthSession_ExpiredOrUnknownToken(t *testing.T) {
	sessions := &fakeSessionRepo{sessions: map[string]*entity.Session{}}

	handler := AuthSession(sessions, &fakeRoleRepo{}, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+uuid.NewString())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthSession_RoleLookupFailureDefaultsToUser(t *testing.T) {
	userID := uuid.New()
	session := validSession(userID)

	sessions := &fakeSessionRepo{sessions: map[string]*entity.Session{
		session.Token.String(): session,
	}}
	roles := &fakeRoleRepo{err: fmt.Errorf("connection refused")}

	var gotUserID uuid.UUID
	var gotRole string
	handler := AuthSession(sessions, roles, zap.NewNop())(echoHandler(&gotUserID, &gotRole))

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(entity.RoleUser), gotRole)
}

func TestRequireAdmin(t *testing.T) {
	cases := []struct {
		role     entity.Role
		wantCode int
	}{
		{entity.RoleAdmin, http.StatusOK},
		{entity.RoleSuperAdmin, http.StatusOK},
		{entity.RoleVendor, http.StatusForbidden},
		{entity.RoleUser, http.StatusForbidden},
	}

	for _, tc := range cases {
		handler := RequireAdmin(zap.NewNop())(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		ctx := utils.SetUserContext(req.Context(), uuid.New(), string(tc.role))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, tc.wantCode, rec.Code, "role %s", tc.role)
	}
}

func TestRequireAdmin_Unauthenticated(t *testing.T) {
	handler := RequireAdmin(zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireVendor(t *testing.T) {
	handler := RequireVendor(zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/vendor/me", nil)
	ctx := utils.SetUserContext(req.Context(), uuid.New(), string(entity.RoleVendor))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/vendor/me", nil)
	ctx = utils.SetUserContext(req.Context(), uuid.New(), string(entity.RoleUser))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	handler := OptionalAuth(&fakeSessionRepo{}, &fakeRoleRepo{}, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok, "anonymous request must not carry a user")
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/polls", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuth_ResolvesValidToken(t *testing.T) {
	userID := uuid.New()
	session := validSession(userID)

	sessions := &fakeSessionRepo{sessions: map[string]*entity.Session{
		session.Token.String(): session,
	}}

	var gotUserID uuid.UUID
	var gotRole string
	handler := OptionalAuth(sessions, &fakeRoleRepo{}, zap.NewNop())(echoHandler(&gotUserID, &gotRole))

	req := httptest.NewRequest(http.MethodGet, "/api/polls", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, string(entity.RoleUser), gotRole)
}
