// Package semantics provides the accessibility semantics tree model:
// node attributes, live and detached node views, the inclusion filter,
// and the tree with its change-reporting update walk.
package semantics

// NodeID uniquely identifies a node within a semantics tree.
// The zero value is reserved and never identifies a node.
type NodeID int64

// Live indicates how eagerly text changes on a node should be announced
// to assistive technology.
type Live uint8

const (
	// LiveOff disables proactive announcements for the node.
	LiveOff Live = iota

	// LivePolite announces changes without interrupting current speech.
	LivePolite

	// LiveAssertive announces changes immediately, interrupting if needed.
	LiveAssertive
)

func (l Live) String() string {
	switch l {
	case LivePolite:
		return "polite"
	case LiveAssertive:
		return "assertive"
	default:
		return "off"
	}
}

// Role describes the semantic role of a node.
type Role uint8

const (
	// RoleUnknown is a node with no specific role.
	RoleUnknown Role = iota

	// RoleGroup is a purely structural container.
	RoleGroup

	// RoleLabel is static text.
	RoleLabel

	// RoleButton is an activatable control.
	RoleButton

	// RoleCheckBox is a toggleable control.
	RoleCheckBox

	// RoleTextInput is an editable text field.
	RoleTextInput

	// RoleWindow is a top-level container.
	RoleWindow
)

// Flags is a bitmask of boolean node attributes.
type Flags uint32

const (
	// FlagHidden marks a node that is not exposed to assistive technology.
	FlagHidden Flags = 1 << iota

	// FlagFocusable marks a node that can receive accessibility focus.
	FlagFocusable
)

// Has reports whether all bits in other are set.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// Set returns the flags with the bits in other set.
func (f Flags) Set(other Flags) Flags {
	return f | other
}

// TextSelection is a raw character range within a node's text content.
type TextSelection struct {
	Start int
	End   int
}

// NodeData holds the semantic attributes of one node. It is the raw
// record behind both live and detached node views.
type NodeData struct {
	Role  Role
	Flags Flags

	// Label is the accessible name of the node; empty means unnamed.
	Label string

	// Value is the current value of the node (text content for inputs).
	Value string

	// Live is the node's live-region setting.
	Live Live

	// Selection is the current text selection, if any.
	Selection *TextSelection

	// SupportsTextRanges reports whether the node exposes a text range API.
	SupportsTextRanges bool

	// Children lists child node IDs in traversal order.
	Children []NodeID
}

// clone returns a deep copy so that detached snapshots stay immutable
// while the tree continues to change.
func (d *NodeData) clone() *NodeData {
	c := *d
	if d.Selection != nil {
		sel := *d.Selection
		c.Selection = &sel
	}
	if d.Children != nil {
		c.Children = append([]NodeID(nil), d.Children...)
	}
	return &c
}

// equal compares all semantic attributes by value.
func (d *NodeData) equal(o *NodeData) bool {
	if d.Role != o.Role || d.Flags != o.Flags ||
		d.Label != o.Label || d.Value != o.Value ||
		d.Live != o.Live || d.SupportsTextRanges != o.SupportsTextRanges {
		return false
	}
	if (d.Selection == nil) != (o.Selection == nil) {
		return false
	}
	if d.Selection != nil && *d.Selection != *o.Selection {
		return false
	}
	if len(d.Children) != len(o.Children) {
		return false
	}
	for i, id := range d.Children {
		if o.Children[i] != id {
			return false
		}
	}
	return true
}
