package bridge

import (
	"github.com/go-drift/axbridge/pkg/platform"
	"github.com/go-drift/axbridge/pkg/semantics"
)

// Adapter owns one semantics tree and the platform context its handles
// live in. Each Update call runs one generation pass and hands back the
// resulting batch; raising the batch is the caller's explicit next step,
// after releasing any lock the tree needs.
type Adapter struct {
	tree    *semantics.Tree
	context *platform.Context
}

// NewAdapter creates an adapter with an empty tree. The context is owned
// by the calling goroutine; see platform.NewContext.
func NewAdapter() *Adapter {
	return &Adapter{
		tree:    semantics.NewTree(),
		context: platform.NewContext(),
	}
}

// Context returns the shared platform context, for registering the
// active surface and for host-side element lookups.
func (a *Adapter) Context() *platform.Context {
	return a.context
}

// Tree returns the current semantics tree.
func (a *Adapter) Tree() *semantics.Tree {
	return a.tree
}

// Update applies a tree update and returns the notifications it
// generated, ready to raise.
func (a *Adapter) Update(u semantics.TreeUpdate) *QueuedEvents {
	generator := NewEventGenerator(a.context)
	a.tree.ApplyUpdate(u, generator)
	return generator.Events()
}
