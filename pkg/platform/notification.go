package platform

// Notification is the platform name of an accessibility notification.
type Notification string

const (
	// NotificationTitleChanged signals a change to a node's title.
	NotificationTitleChanged Notification = "AXTitleChanged"

	// NotificationValueChanged signals a change to a node's value.
	NotificationValueChanged Notification = "AXValueChanged"

	// NotificationSelectionChanged signals a change to a node's text selection.
	NotificationSelectionChanged Notification = "AXSelectedTextChanged"

	// NotificationFocusChanged signals that a node gained accessibility focus.
	NotificationFocusChanged Notification = "AXFocusedUIElementChanged"

	// NotificationDestroyed signals that a node left the tree.
	NotificationDestroyed Notification = "AXUIElementDestroyed"
)

// Priority indicates the urgency of an accessibility announcement.
type Priority int

const (
	// PriorityMedium is for announcements that don't interrupt.
	PriorityMedium Priority = iota

	// PriorityHigh is for announcements that should interrupt.
	PriorityHigh
)

func (p Priority) String() string {
	if p == PriorityHigh {
		return "high"
	}
	return "medium"
}
