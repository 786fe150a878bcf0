package platform

import (
	"sync"

	"github.com/petermattis/goid"

	"github.com/go-drift/axbridge/pkg/semantics"
)

// Context resolves semantics node IDs to platform element handles,
// creating and caching them on demand. It is shared by reference between
// the event generator and the delivery step and outlives both.
//
// A context may be read from any goroutine, but notifications resolved
// against it must be delivered on the goroutine that created it, because
// the host may re-enter the producing system while handling them.
type Context struct {
	mu       sync.Mutex
	owner    int64
	elements map[semantics.NodeID]*Element
	surface  *Surface
}

// NewContext creates a context owned by the calling goroutine.
func NewContext() *Context {
	return &Context{
		owner:    goid.Get(),
		elements: make(map[semantics.NodeID]*Element),
	}
}

// ElementForNode returns the cached element for a node, creating one if
// absent.
func (c *Context) ElementForNode(id semantics.NodeID) *Element {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.elements[id]
	if !ok {
		el = &Element{node: id}
		c.elements[id] = el
	}
	return el
}

// RemoveElement removes and returns the cached element for a node.
// The second result is false if the node never had a realized element.
func (c *Context) RemoveElement(id semantics.NodeID) (*Element, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.elements[id]
	if ok {
		delete(c.elements, id)
	}
	return el, ok
}

// SetActiveSurface registers the surface announcements are delivered
// against. Pass nil when the view detaches from its window.
func (c *Context) SetActiveSurface(s *Surface) {
	c.mu.Lock()
	c.surface = s
	c.mu.Unlock()
}

// ActiveSurface returns the registered surface, or nil if none.
func (c *Context) ActiveSurface() *Surface {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.surface
}

// OnOwnerGoroutine reports whether the caller is the goroutine that
// created the context.
func (c *Context) OnOwnerGoroutine() bool {
	return goid.Get() == c.owner
}
