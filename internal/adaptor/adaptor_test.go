package adaptor

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"shop-portal/internal/usecase"

	"go.uber.org/zap"
)

// TestHandleServiceError maps each sentinel onto its status code, however
// deeply the service wrapped it.
func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", fmt.Errorf("product 7: %w", usecase.ErrNotFound), http.StatusNotFound},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden},
		{"invalid credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"integrity", fmt.Errorf("housing type 3 referenced by 2 housing(s): %w", usecase.ErrIntegrity), http.StatusConflict},
		{"conflict", fmt.Errorf("username %q: %w", "alice", usecase.ErrConflict), http.StatusConflict},
		{"validation", usecase.NewValidationError(map[string]string{"price": "bad"}), http.StatusBadRequest},
		{"unknown", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(zap.NewNop(), rec, tt.err, "test operation")
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

// TestParseListOptions reads the filter, ordering and paging parameters off
// a collection request.
func TestParseListOptions(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/shop/products?search=desk&name=Desk&ordering=-price&page=3&per_page=20&unknown=x", nil)

	opts := parseListOptions(req, []string{"name", "price"})

	assert.Equal(t, "desk", opts.Search)
	assert.Equal(t, map[string]string{"name": "Desk"}, opts.Filters)
	assert.Equal(t, "price", opts.OrderBy)
	assert.True(t, opts.Desc)
	assert.Equal(t, 20, opts.Limit)
	assert.Equal(t, 40, opts.Offset)
}

// TestParseListOptionsDefaults falls back to page one with ten rows and no
// ordering.
func TestParseListOptionsDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/shop/products", nil)

	opts := parseListOptions(req, []string{"name"})

	assert.Empty(t, opts.Search)
	assert.Empty(t, opts.Filters)
	assert.Empty(t, opts.OrderBy)
	assert.False(t, opts.Desc)
	assert.Equal(t, 10, opts.Limit)
	assert.Equal(t, 0, opts.Offset)

	capped := httptest.NewRequest(http.MethodGet, "/shop/products?per_page=500", nil)
	assert.Equal(t, 100, parseListOptions(capped, nil).Limit)
}

// TestOrderFilterParams accepts every documented order filter, including
// the order timestamp.
func TestOrderFilterParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/shop/orders?created_at=2026-03-01&promocode=SPRING&user__username=alice", nil)

	opts := parseListOptions(req, orderFilterParams)

	assert.Equal(t, map[string]string{
		"created_at":     "2026-03-01",
		"promocode":      "SPRING",
		"user__username": "alice",
	}, opts.Filters)
}
