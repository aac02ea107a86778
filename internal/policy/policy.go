// Package policy is the central authorization checkpoint. A Gate holds one
// Policy per resource type; every gated operation asks the Gate before
// touching the store. Policies never load data themselves: callers pass the
// already-fetched resource so a denial leaks nothing beyond the failure.
package policy

import "errors"

// Sentinel errors returned by Gate.Authorize.
var (
	ErrForbidden = errors.New("forbidden")
	ErrNoPolicy  = errors.New("no policy defined for resource")
)

// Policy defines authorization rules for one resource type. For list,
// create and export checks resource may be nil.
type Policy interface {
	Can(id *Identity, action Action, resource any) bool
}

// Gate is a registry of policies keyed by resource type name.
type Gate struct {
	policies map[string]Policy
}

func NewGate() *Gate {
	return &Gate{policies: make(map[string]Policy)}
}

// Register adds a policy for a resource type (e.g. "product"), replacing
// any existing one.
func (g *Gate) Register(resourceType string, p Policy) {
	g.policies[resourceType] = p
}

// Authorize returns ErrForbidden when the policy denies the action and
// ErrNoPolicy when the resource type is unknown.
func (g *Gate) Authorize(id *Identity, action Action, resourceType string, resource any) error {
	p, ok := g.policies[resourceType]
	if !ok {
		return ErrNoPolicy
	}
	if !p.Can(id, action, resource) {
		return ErrForbidden
	}
	return nil
}

// Can is a convenience wrapper returning bool instead of error.
func (g *Gate) Can(id *Identity, action Action, resourceType string, resource any) bool {
	return g.Authorize(id, action, resourceType, resource) == nil
}
