package semantics

// FilterResult is the outcome of the inclusion filter for one node.
type FilterResult int

const (
	// Include exposes the node to assistive technology.
	Include FilterResult = iota

	// ExcludeNode hides the node but still considers its children.
	ExcludeNode

	// ExcludeSubtree hides the node and everything below it.
	ExcludeSubtree
)

func (r FilterResult) String() string {
	switch r {
	case ExcludeNode:
		return "exclude-node"
	case ExcludeSubtree:
		return "exclude-subtree"
	default:
		return "include"
	}
}

// Filter decides whether a node is exposed to assistive technology.
// It is pure and behaves identically over live and detached views.
//
// Hidden nodes are excluded with their whole subtree. Anonymous
// structural nodes contribute nothing on their own and are excluded
// individually unless they can take focus.
func Filter(v NodeView) FilterResult {
	if v.Hidden() {
		return ExcludeSubtree
	}
	switch v.Role() {
	case RoleUnknown, RoleGroup:
		if v.Name() == "" && !v.Focusable() {
			return ExcludeNode
		}
	}
	return Include
}
