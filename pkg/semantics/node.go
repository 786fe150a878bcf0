package semantics

// NodeView is the read-only view shared by live and detached nodes.
// The inclusion filter and the event generator operate on this interface
// so that before and after states are treated identically.
type NodeView interface {
	// ID returns the node's identifier.
	ID() NodeID

	// Role returns the node's semantic role.
	Role() Role

	// Name returns the accessible name; empty means unnamed.
	Name() string

	// Title returns the text the platform exposes as the node's title.
	Title() string

	// Value returns the node's current value.
	Value() string

	// Live returns the node's live-region setting.
	Live() Live

	// TextSelection returns the raw text selection, if any.
	TextSelection() (TextSelection, bool)

	// SupportsTextRanges reports whether the node exposes text ranges.
	SupportsTextRanges() bool

	// Hidden reports whether the node is hidden from assistive technology.
	Hidden() bool

	// Focusable reports whether the node can receive accessibility focus.
	Focusable() bool
}

// Node is a live view of one node, valid while its tree is unchanged.
type Node struct {
	id   NodeID
	data *NodeData
	tree *Tree
}

// ID returns the node's identifier.
func (n *Node) ID() NodeID { return n.id }

// Role returns the node's semantic role.
func (n *Node) Role() Role { return n.data.Role }

// Name returns the accessible name; empty means unnamed.
func (n *Node) Name() string { return n.data.Label }

// Title returns the text the platform exposes as the node's title.
func (n *Node) Title() string { return n.data.title() }

// Value returns the node's current value.
func (n *Node) Value() string { return n.data.Value }

// Live returns the node's live-region setting.
func (n *Node) Live() Live { return n.data.Live }

// TextSelection returns the raw text selection, if any.
func (n *Node) TextSelection() (TextSelection, bool) { return n.data.textSelection() }

// SupportsTextRanges reports whether the node exposes text ranges.
func (n *Node) SupportsTextRanges() bool { return n.data.SupportsTextRanges }

// Hidden reports whether the node is hidden from assistive technology.
func (n *Node) Hidden() bool { return n.data.Flags.Has(FlagHidden) }

// Focusable reports whether the node can receive accessibility focus.
func (n *Node) Focusable() bool { return n.data.Flags.Has(FlagFocusable) }

// Children returns the node's child IDs in traversal order.
func (n *Node) Children() []NodeID { return n.data.Children }

// Detach returns a read-only snapshot of the node's current attributes,
// valid after the tree moves on.
func (n *Node) Detach() *DetachedNode {
	return &DetachedNode{id: n.id, data: n.data.clone()}
}

// DetachedNode is a read-only snapshot of a node's prior attribute
// values, used for before/after comparison after the tree has changed.
type DetachedNode struct {
	id   NodeID
	data *NodeData
}

// ID returns the node's identifier.
func (n *DetachedNode) ID() NodeID { return n.id }

// Role returns the node's semantic role.
func (n *DetachedNode) Role() Role { return n.data.Role }

// Name returns the accessible name; empty means unnamed.
func (n *DetachedNode) Name() string { return n.data.Label }

// Title returns the text the platform exposes as the node's title.
func (n *DetachedNode) Title() string { return n.data.title() }

// Value returns the node's current value.
func (n *DetachedNode) Value() string { return n.data.Value }

// Live returns the node's live-region setting.
func (n *DetachedNode) Live() Live { return n.data.Live }

// TextSelection returns the raw text selection, if any.
func (n *DetachedNode) TextSelection() (TextSelection, bool) { return n.data.textSelection() }

// SupportsTextRanges reports whether the node exposes text ranges.
func (n *DetachedNode) SupportsTextRanges() bool { return n.data.SupportsTextRanges }

// Hidden reports whether the node is hidden from assistive technology.
func (n *DetachedNode) Hidden() bool { return n.data.Flags.Has(FlagHidden) }

// Focusable reports whether the node can receive accessibility focus.
func (n *DetachedNode) Focusable() bool { return n.data.Flags.Has(FlagFocusable) }

// title derives the platform title. Text inputs expose their content
// through the value attribute, so their title stays empty.
func (d *NodeData) title() string {
	if d.Role == RoleTextInput {
		return ""
	}
	return d.Label
}

func (d *NodeData) textSelection() (TextSelection, bool) {
	if d.Selection == nil {
		return TextSelection{}, false
	}
	return *d.Selection, true
}
