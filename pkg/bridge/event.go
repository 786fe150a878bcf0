package bridge

import (
	"errors"

	axerrors "github.com/go-drift/axbridge/pkg/errors"
	"github.com/go-drift/axbridge/pkg/platform"
	"github.com/go-drift/axbridge/pkg/semantics"
)

var (
	errAlreadyRaised = errors.New("bridge: events already raised")
	errWrongOwner    = errors.New("bridge: events must be raised on the goroutine that owns the context")
)

type eventKind int

const (
	eventGeneric eventKind = iota
	eventNodeDestroyed
	eventAnnouncement
)

// queuedEvent describes one notification that must be delivered. It is
// immutable once created and carries everything delivery needs, so it is
// safe to build while the tree is mid-update and deliver later.
type queuedEvent struct {
	kind         eventKind
	node         semantics.NodeID
	notification platform.Notification
	text         string
	priority     platform.Priority
}

// liveRegionAnnouncement derives an announcement from a live-region
// node. The caller has already checked that the node has a name and a
// live setting other than off.
func liveRegionAnnouncement(node semantics.NodeView) queuedEvent {
	priority := platform.PriorityMedium
	if node.Live() == semantics.LiveAssertive {
		priority = platform.PriorityHigh
	}
	return queuedEvent{
		kind:     eventAnnouncement,
		text:     node.Name(),
		priority: priority,
	}
}

func (e queuedEvent) raise(ctx *platform.Context) {
	switch e.kind {
	case eventGeneric:
		element := ctx.ElementForNode(e.node)
		if err := platform.PostNotification(element, e.notification); err != nil {
			axerrors.Report(&axerrors.BridgeError{
				Op:           "bridge.QueuedEvents.Raise",
				Kind:         axerrors.KindDispatch,
				Notification: string(e.notification),
				Err:          err,
			})
		}
	case eventNodeDestroyed:
		// A node may be reported destroyed without ever having had a
		// realized element; skipping is the correct outcome then.
		element, ok := ctx.RemoveElement(e.node)
		if !ok {
			return
		}
		if err := platform.PostNotification(element, platform.NotificationDestroyed); err != nil {
			axerrors.Report(&axerrors.BridgeError{
				Op:           "bridge.QueuedEvents.Raise",
				Kind:         axerrors.KindDispatch,
				Notification: string(platform.NotificationDestroyed),
				Err:          err,
			})
		}
	case eventAnnouncement:
		surface := ctx.ActiveSurface()
		if surface == nil {
			return
		}
		if err := platform.PostAnnouncement(surface, e.text, e.priority); err != nil {
			axerrors.Report(&axerrors.BridgeError{
				Op:   "bridge.QueuedEvents.Raise",
				Kind: axerrors.KindDispatch,
				Err:  err,
			})
		}
	}
}

// QueuedEvents is a batch of notifications generated by one tree update,
// ready to be raised. A batch must be raised exactly once.
type QueuedEvents struct {
	context *platform.Context
	events  []queuedEvent
	raised  bool
}

// Raise delivers all queued events in detection order.
//
// Delivery is single-pass and best-effort: a failure to deliver one
// event is reported to the error handler and does not abort the rest.
// The host may call back into the producing system while an event is
// processed, so the caller must not hold any lock the tree or context
// needs. Raise must run on the goroutine that owns the context; a second
// Raise on the same batch is inert. Both misuses are reported.
func (q *QueuedEvents) Raise() {
	if q.raised {
		axerrors.Report(&axerrors.BridgeError{
			Op:   "bridge.QueuedEvents.Raise",
			Kind: axerrors.KindMisuse,
			Err:  errAlreadyRaised,
		})
		return
	}
	if !q.context.OnOwnerGoroutine() {
		axerrors.Report(&axerrors.BridgeError{
			Op:   "bridge.QueuedEvents.Raise",
			Kind: axerrors.KindMisuse,
			Err:  errWrongOwner,
		})
		return
	}
	q.raised = true
	events := q.events
	q.events = nil
	for _, event := range events {
		event.raise(q.context)
	}
}
