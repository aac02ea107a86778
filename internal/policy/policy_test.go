package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shop-portal/internal/data/entity"
)

func identityWithPerms(id int64, perms ...string) *Identity {
	set := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return &Identity{ID: id, Username: "user", Perms: set}
}

// TestHasPerm covers the grant lookup including the superuser shortcut.
func TestHasPerm(t *testing.T) {
	var anonymous *Identity
	assert.False(t, anonymous.HasPerm(PermAddProduct))

	plain := identityWithPerms(1)
	assert.False(t, plain.HasPerm(PermAddProduct))

	granted := identityWithPerms(2, PermAddProduct)
	assert.True(t, granted.HasPerm(PermAddProduct))
	assert.False(t, granted.HasPerm(PermDeleteProduct))

	super := &Identity{ID: 3, Superuser: true}
	assert.True(t, super.HasPerm(PermAddProduct))
	assert.True(t, super.HasPerm(PermViewOrder))
}

// TestProductPolicy walks the capability matrix for products: public reads,
// grant-gated create and delete, owner-only update.
func TestProductPolicy(t *testing.T) {
	gate := NewDefaultGate()
	owner := identityWithPerms(7)
	stranger := identityWithPerms(8)
	product := &entity.Product{BaseSimple: entity.BaseSimple{ID: 1}, CreatedByID: 7}

	tests := []struct {
		name     string
		id       *Identity
		action   Action
		resource any
		want     bool
	}{
		{"anonymous can view", nil, ActionView, product, true},
		{"anonymous can list", nil, ActionList, nil, true},
		{"anonymous cannot create", nil, ActionCreate, nil, false},
		{"plain user cannot create", identityWithPerms(5), ActionCreate, nil, false},
		{"add_product grant can create", identityWithPerms(5, PermAddProduct), ActionCreate, nil, true},
		{"superuser can create", &Identity{ID: 9, Superuser: true}, ActionCreate, nil, true},
		{"owner can update", owner, ActionUpdate, product, true},
		{"stranger cannot update", stranger, ActionUpdate, product, false},
		{"delete needs grant", owner, ActionDelete, product, false},
		{"delete_product grant can delete", identityWithPerms(5, PermDeleteProduct), ActionDelete, product, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.Can(tt.id, tt.action, ResourceProduct, tt.resource))
		})
	}
}

// TestOrderPolicy checks the split between authenticated access, the
// view_order grant and the staff-only export.
func TestOrderPolicy(t *testing.T) {
	gate := NewDefaultGate()
	user := identityWithPerms(4)
	viewer := identityWithPerms(5, PermViewOrder)
	staff := &Identity{ID: 6, Staff: true}

	assert.False(t, gate.Can(nil, ActionList, ResourceOrder, nil))
	assert.True(t, gate.Can(user, ActionList, ResourceOrder, nil))

	assert.False(t, gate.Can(user, ActionView, ResourceOrder, nil))
	assert.True(t, gate.Can(viewer, ActionView, ResourceOrder, nil))

	assert.True(t, gate.Can(user, ActionCreate, ResourceOrder, nil))
	assert.False(t, gate.Can(nil, ActionCreate, ResourceOrder, nil))

	assert.False(t, gate.Can(user, ActionExport, ResourceOrder, nil))
	assert.False(t, gate.Can(viewer, ActionExport, ResourceOrder, nil))
	assert.True(t, gate.Can(staff, ActionExport, ResourceOrder, nil))
}

// TestProfilePolicy verifies the owner-only update rule.
func TestProfilePolicy(t *testing.T) {
	gate := NewDefaultGate()
	profile := &entity.Profile{UserID: 11}

	assert.True(t, gate.Can(identityWithPerms(11), ActionUpdate, ResourceProfile, profile))
	assert.False(t, gate.Can(identityWithPerms(12), ActionUpdate, ResourceProfile, profile))
	assert.False(t, gate.Can(nil, ActionUpdate, ResourceProfile, profile))
}

// TestAuthorizeUnknownResource makes sure an unregistered resource type is a
// hard failure, not a silent allow.
func TestAuthorizeUnknownResource(t *testing.T) {
	gate := NewGate()
	err := gate.Authorize(identityWithPerms(1), ActionView, "widget", nil)
	assert.ErrorIs(t, err, ErrNoPolicy)
}
