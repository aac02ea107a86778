package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestOrderFilterWhitelist keeps the filterable columns in step with the
// params the API accepts: the order's own text fields, its timestamp and
// the joined username.
func TestOrderFilterWhitelist(t *testing.T) {
	assert.Equal(t, map[string]string{
		"created_at":       "o.created_at",
		"delivery_address": "o.delivery_address",
		"promocode":        "o.promocode",
		"user__username":   "u.username",
	}, orderFilterFields)

	// Ordering never reaches across the product join.
	assert.NotContains(t, orderOrderFields, "products__name")
}
