package policy

import (
	"shop-portal/internal/data/entity"
)

// Resource type names registered on the gate.
const (
	ResourceProduct = "product"
	ResourceOrder   = "order"
	ResourceProfile = "profile"
)

// NewDefaultGate returns a gate with every resource policy registered.
func NewDefaultGate() *Gate {
	g := NewGate()
	g.Register(ResourceProduct, ProductPolicy{})
	g.Register(ResourceOrder, OrderPolicy{})
	g.Register(ResourceProfile, ProfilePolicy{})
	return g
}

// ProductPolicy: create needs the add_product grant, update is owner-only,
// delete (archival) needs the delete_product grant. Reads are public.
type ProductPolicy struct{}

func (ProductPolicy) Can(id *Identity, action Action, resource any) bool {
	switch action {
	case ActionView, ActionList:
		return true
	case ActionCreate:
		return id.HasPerm(PermAddProduct)
	case ActionUpdate:
		p, ok := resource.(*entity.Product)
		return ok && id.IsAuthenticated() && id.ID == p.CreatedByID
	case ActionDelete:
		return id.HasPerm(PermDeleteProduct)
	}
	return false
}

// OrderPolicy: listing needs authentication only, detail needs the
// view_order grant, export is staff-only. Create/update/delete follow the
// original flow and require authentication.
type OrderPolicy struct{}

func (OrderPolicy) Can(id *Identity, action Action, resource any) bool {
	switch action {
	case ActionList:
		return id.IsAuthenticated()
	case ActionView:
		return id.HasPerm(PermViewOrder)
	case ActionCreate, ActionUpdate, ActionDelete:
		return id.IsAuthenticated()
	case ActionExport:
		return id != nil && id.Staff
	}
	return false
}

// ProfilePolicy: a profile may only be updated by its owning user.
type ProfilePolicy struct{}

func (ProfilePolicy) Can(id *Identity, action Action, resource any) bool {
	switch action {
	case ActionView:
		return id.IsAuthenticated()
	case ActionUpdate:
		p, ok := resource.(*entity.Profile)
		return ok && id.IsAuthenticated() && id.ID == p.UserID
	}
	return false
}
