package platform

import "github.com/go-drift/axbridge/pkg/semantics"

// Element is an opaque handle the host accessibility API uses to address
// one semantics node. Elements are created and cached by a Context; two
// lookups for the same live node yield the same handle.
type Element struct {
	node semantics.NodeID
}

// NodeID returns the semantics node this element addresses.
func (e *Element) NodeID() semantics.NodeID { return e.node }

// Surface represents the host view that owns a semantics tree. It is the
// target container for free-text announcements.
type Surface struct {
	label string
}

// NewSurface creates a surface handle. The label is used only for
// diagnostics.
func NewSurface(label string) *Surface {
	return &Surface{label: label}
}

// Label returns the surface's diagnostic label.
func (s *Surface) Label() string { return s.label }
