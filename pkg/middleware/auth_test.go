package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"shop-portal/internal/data/entity"
	"shop-portal/internal/data/repository"
	"shop-portal/internal/policy"

	"go.uber.org/zap"
)

type stubSessionRepo struct {
	sessions map[string]*entity.Session
}

func (s *stubSessionRepo) Create(_ context.Context, session *entity.Session) error {
	s.sessions[session.Token.String()] = session
	return nil
}

func (s *stubSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	session, ok := s.sessions[token]
	if !ok || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (s *stubSessionRepo) Revoke(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func (s *stubSessionRepo) SetValue(_ context.Context, token, key, value string) error {
	return nil
}

type stubUserRepo struct {
	users map[int64]*entity.User
	perms map[int64][]string
}

func (s *stubUserRepo) Create(_ context.Context, user *entity.User) error { return nil }

func (s *stubUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	return s.users[id], nil
}

func (s *stubUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindAll(_ context.Context) ([]*entity.User, error) { return nil, nil }

func (s *stubUserRepo) GetPermissions(_ context.Context, userID int64) ([]string, error) {
	return s.perms[userID], nil
}

func (s *stubUserRepo) GrantPermission(_ context.Context, userID int64, codename string) error {
	return nil
}

func sessionFixture() (*repository.Repository, uuid.UUID) {
	token := uuid.New()
	sessions := &stubSessionRepo{sessions: map[string]*entity.Session{
		token.String(): {
			UserID:    7,
			Token:     token,
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}}
	users := &stubUserRepo{
		users: map[int64]*entity.User{
			7: {BaseSimple: entity.BaseSimple{ID: 7}, Username: "alice"},
		},
		perms: map[int64][]string{7: {policy.PermViewOrder}},
	}
	return &repository.Repository{Session: sessions, User: users}, token
}

func identityCapture() (http.Handler, **policy.Identity) {
	var captured *policy.Identity
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = policy.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return handler, &captured
}

// TestAuthSessionBearerToken resolves the identity, including granted
// permissions, from an Authorization header.
func TestAuthSessionBearerToken(t *testing.T) {
	repo, token := sessionFixture()
	handler, captured := identityCapture()

	req := httptest.NewRequest(http.MethodGet, "/shop/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token.String())
	rec := httptest.NewRecorder()

	AuthSession(repo, zap.NewNop())(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, *captured)
	assert.Equal(t, int64(7), (*captured).ID)
	assert.Equal(t, "alice", (*captured).Username)
	assert.True(t, (*captured).HasPerm(policy.PermViewOrder))
}

// TestAuthSessionCookie accepts the session cookie browser clients carry.
func TestAuthSessionCookie(t *testing.T) {
	repo, token := sessionFixture()
	handler, captured := identityCapture()

	req := httptest.NewRequest(http.MethodGet, "/shop/orders", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token.String()})
	rec := httptest.NewRecorder()

	AuthSession(repo, zap.NewNop())(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, *captured)
	assert.Equal(t, int64(7), (*captured).ID)
}

// TestAuthSessionInvalidTokenIsAnonymous lets a stale token through as an
// anonymous request instead of failing it outright.
func TestAuthSessionInvalidTokenIsAnonymous(t *testing.T) {
	repo, _ := sessionFixture()
	handler, captured := identityCapture()

	req := httptest.NewRequest(http.MethodGet, "/shop/products", nil)
	req.Header.Set("Authorization", "Bearer "+uuid.NewString())
	rec := httptest.NewRecorder()

	AuthSession(repo, zap.NewNop())(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, *captured)
}

func authedRequest(path string, id *policy.Identity) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if id != nil {
		req = req.WithContext(policy.WithIdentity(req.Context(), id))
	}
	return req
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

// TestLoginRequiredRedirect sends anonymous browser traffic to the login
// page with the original path in the next parameter.
func TestLoginRequiredRedirect(t *testing.T) {
	rec := httptest.NewRecorder()
	LoginRequired(true)(okHandler).ServeHTTP(rec, authedRequest("/shop/orders", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/accounts/login?next=/shop/orders", rec.Header().Get("Location"))
}

// TestLoginRequiredAPI answers 401 on API routes instead of redirecting.
func TestLoginRequiredAPI(t *testing.T) {
	rec := httptest.NewRecorder()
	LoginRequired(false)(okHandler).ServeHTTP(rec, authedRequest("/shop/api/orders", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	LoginRequired(false)(okHandler).ServeHTTP(rec, authedRequest("/shop/api/orders", &policy.Identity{ID: 7}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestStaffRequired separates the anonymous 401 from the non-staff 403.
func TestStaffRequired(t *testing.T) {
	gate := StaffRequired(zap.NewNop())

	rec := httptest.NewRecorder()
	gate(okHandler).ServeHTTP(rec, authedRequest("/shop/orders/export/all", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	gate(okHandler).ServeHTTP(rec, authedRequest("/shop/orders/export/all", &policy.Identity{ID: 7}))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	gate(okHandler).ServeHTTP(rec, authedRequest("/shop/orders/export/all", &policy.Identity{ID: 7, Staff: true}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestPermissionRequired honors explicit grants and the superuser shortcut.
func TestPermissionRequired(t *testing.T) {
	gate := PermissionRequired(policy.PermAddProduct, zap.NewNop())

	rec := httptest.NewRecorder()
	gate(okHandler).ServeHTTP(rec, authedRequest("/shop/products", &policy.Identity{ID: 7}))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	granted := &policy.Identity{ID: 7, Perms: map[string]struct{}{policy.PermAddProduct: {}}}
	rec = httptest.NewRecorder()
	gate(okHandler).ServeHTTP(rec, authedRequest("/shop/products", granted))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	gate(okHandler).ServeHTTP(rec, authedRequest("/shop/products", &policy.Identity{ID: 8, Superuser: true}))
	assert.Equal(t, http.StatusOK, rec.Code)
}
