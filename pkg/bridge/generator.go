package bridge

import (
	"github.com/go-drift/axbridge/pkg/platform"
	"github.com/go-drift/axbridge/pkg/semantics"
)

// EventGenerator observes the changes of one tree update and queues the
// notifications an assistive-technology client needs. It implements
// semantics.ChangeHandler.
//
// A generator is created fresh per update, filled synchronously by the
// tree walk, and then moved into a QueuedEvents batch with Events. It
// only ever appends to its queue, so events come out in the exact order
// their callbacks were invoked. A generator must not be shared across
// goroutines while the walk is running.
type EventGenerator struct {
	context *platform.Context
	events  []queuedEvent
}

// NewEventGenerator creates a generator that resolves handles through
// the given shared context at delivery time.
func NewEventGenerator(context *platform.Context) *EventGenerator {
	return &EventGenerator{context: context}
}

// Events moves the accumulated queue into a delivery-ready batch.
// The generator is spent afterwards and must not receive further
// callbacks.
func (g *EventGenerator) Events() *QueuedEvents {
	events := g.events
	g.events = nil
	return &QueuedEvents{context: g.context, events: events}
}

// NodeAdded queues a live-region announcement for a named live node
// entering the tree. Excluded nodes produce nothing.
func (g *EventGenerator) NodeAdded(node *semantics.Node) {
	if semantics.Filter(node) != semantics.Include {
		return
	}
	if node.Name() != "" && node.Live() != semantics.LiveOff {
		g.events = append(g.events, liveRegionAnnouncement(node))
	}
}

// NodeUpdated compares the two views of a changed node and queues one
// event per meaningful difference. An excluded new view suppresses all
// comparisons.
func (g *EventGenerator) NodeUpdated(oldNode *semantics.DetachedNode, newNode *semantics.Node) {
	// TODO: announce mid-edit text changes in live regions
	if semantics.Filter(newNode) != semantics.Include {
		return
	}
	nodeID := newNode.ID()
	if oldNode.Title() != newNode.Title() {
		g.events = append(g.events, queuedEvent{
			kind:         eventGeneric,
			node:         nodeID,
			notification: platform.NotificationTitleChanged,
		})
	}
	if oldNode.Value() != newNode.Value() {
		g.events = append(g.events, queuedEvent{
			kind:         eventGeneric,
			node:         nodeID,
			notification: platform.NotificationValueChanged,
		})
	}
	if oldNode.SupportsTextRanges() && newNode.SupportsTextRanges() {
		oldSel, oldOK := oldNode.TextSelection()
		newSel, newOK := newNode.TextSelection()
		if oldOK != newOK || oldSel != newSel {
			g.events = append(g.events, queuedEvent{
				kind:         eventGeneric,
				node:         nodeID,
				notification: platform.NotificationSelectionChanged,
			})
		}
	}
	// A node crossing from excluded to included re-announces even with
	// unchanged name and live setting: the client never saw the prior
	// state.
	if newNode.Name() != "" && newNode.Live() != semantics.LiveOff &&
		(newNode.Name() != oldNode.Name() ||
			newNode.Live() != oldNode.Live() ||
			semantics.Filter(oldNode) != semantics.Include) {
		g.events = append(g.events, liveRegionAnnouncement(newNode))
	}
}

// FocusMoved queues a focus-changed notification for the newly focused
// node. Focus loss alone is not announced.
func (g *EventGenerator) FocusMoved(oldNode *semantics.DetachedNode, newNode *semantics.Node) {
	if newNode == nil {
		return
	}
	if semantics.Filter(newNode) != semantics.Include {
		return
	}
	g.events = append(g.events, queuedEvent{
		kind:         eventGeneric,
		node:         newNode.ID(),
		notification: platform.NotificationFocusChanged,
	})
}

// NodeRemoved queues a destruction event unconditionally. A previously
// included node must be reported destroyed even if its final state would
// now be excluded, or the client is left holding a dangling reference.
func (g *EventGenerator) NodeRemoved(node *semantics.DetachedNode, state *semantics.TreeState) {
	g.events = append(g.events, queuedEvent{
		kind: eventNodeDestroyed,
		node: node.ID(),
	})
}
