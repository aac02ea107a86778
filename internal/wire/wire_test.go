package wire

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"shop-portal/internal/data/entity"
	"shop-portal/internal/data/repository"
	"shop-portal/pkg/cache"
	"shop-portal/pkg/utils"

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
	return nil, nil
}

func (s *stubUserRepo) GrantPermission(_ context.Context, userID int64, codename string) error {
	return nil
}

type stubOrderRepo struct {
	orders map[int64]*entity.Order
}

func (s *stubOrderRepo) Create(_ context.Context, order *entity.Order) error { return nil }

func (s *stubOrderRepo) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	return s.orders[id], nil
}

func (s *stubOrderRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) CountAll(_ context.Context) (int64, error) { return 0, nil }

func (s *stubOrderRepo) FindByUserID(_ context.Context, userID int64) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, order := range s.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (s *stubOrderRepo) FindAllByPK(_ context.Context) ([]*entity.Order, error) { return nil, nil }

func (s *stubOrderRepo) Update(_ context.Context, order *entity.Order) error { return nil }

func (s *stubOrderRepo) Delete(_ context.Context, id int64) error { return nil }

func (s *stubOrderRepo) List(_ context.Context, _ repository.ListOptions) ([]*entity.Order, int64, error) {
	return nil, 0, nil
}

type stubStore struct {
	values map[string][]byte
}

func (s *stubStore) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := s.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (s *stubStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.values[key] = raw
	return nil
}

func (s *stubStore) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

var _ cache.Store = (*stubStore)(nil)

func testApp() (*App, uuid.UUID) {
	token := uuid.New()
	repo := &repository.Repository{
		Session: &stubSessionRepo{sessions: map[string]*entity.Session{
			token.String(): {UserID: 7, Token: token, ExpiresAt: time.Now().Add(time.Hour)},
		}},
		User: &stubUserRepo{users: map[int64]*entity.User{
			7: {BaseSimple: entity.BaseSimple{ID: 7}, Username: "alice"},
			8: {BaseSimple: entity.BaseSimple{ID: 8}, Username: "bob"},
		}},
		Order: &stubOrderRepo{orders: map[int64]*entity.Order{
			1: {BaseSimple: entity.BaseSimple{ID: 1}, UserID: 8, ProductIDs: []int64{3}},
		}},
	}
	config := &utils.Config{
		Cache:   utils.CacheConfig{ExportTTLSeconds: 180},
		Session: utils.SessionConfig{ExpiryHours: 24},
		Shop:    utils.ShopConfig{FallbackUserID: 1},
	}
	return Wiring(repo, &stubStore{values: map[string][]byte{}}, config, zap.NewNop()), token
}

func exportRequest(app *App, token, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// TestUserOrdersExportRoute serves the per-user export under the path-id
// route: any authenticated caller may export any user, ownership is not
// checked, and an unknown user id answers 404.
func TestUserOrdersExportRoute(t *testing.T) {
	app, token := testApp()

	// Caller 7 exporting user 8's orders.
	rec := exportRequest(app, token.String(), "/shop/users/8/orders/export")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user":8`)

	// Own export works the same way and may be empty.
	rec = exportRequest(app, token.String(), "/shop/users/7/orders/export")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = exportRequest(app, token.String(), "/shop/users/99/orders/export")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = exportRequest(app, "", "/shop/users/8/orders/export")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
