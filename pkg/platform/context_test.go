package platform

import (
	"sync"
	"testing"

	"github.com/go-drift/axbridge/pkg/semantics"
)

// TestContextElementForNode_CreatesOnDemand verifies that lookups create
// and cache a handle.
func TestContextElementForNode_CreatesOnDemand(t *testing.T) {
	ctx := NewContext()

	el := ctx.ElementForNode(semantics.NodeID(7))
	if el == nil {
		t.Fatal("expected an element")
	}
	if el.NodeID() != 7 {
		t.Errorf("element addresses node %d, want 7", el.NodeID())
	}
	if again := ctx.ElementForNode(semantics.NodeID(7)); again != el {
		t.Error("second lookup should return the cached element")
	}
}

// TestContextRemoveElement verifies removal semantics for realized and
// never-realized nodes.
func TestContextRemoveElement(t *testing.T) {
	ctx := NewContext()
	el := ctx.ElementForNode(semantics.NodeID(1))

	removed, ok := ctx.RemoveElement(semantics.NodeID(1))
	if !ok || removed != el {
		t.Errorf("RemoveElement = (%v, %v), want the realized element", removed, ok)
	}

	if _, ok := ctx.RemoveElement(semantics.NodeID(1)); ok {
		t.Error("second removal should report no element")
	}
	if _, ok := ctx.RemoveElement(semantics.NodeID(99)); ok {
		t.Error("removal of a never-realized node should report no element")
	}
}

// TestContextRemoveElement_FreshHandleAfterRemoval verifies that a
// re-added node gets a new element.
func TestContextRemoveElement_FreshHandleAfterRemoval(t *testing.T) {
	ctx := NewContext()
	first := ctx.ElementForNode(semantics.NodeID(3))
	ctx.RemoveElement(semantics.NodeID(3))

	second := ctx.ElementForNode(semantics.NodeID(3))
	if first == second {
		t.Error("expected a fresh element after removal")
	}
}

// TestContextActiveSurface verifies surface registration and clearing.
func TestContextActiveSurface(t *testing.T) {
	ctx := NewContext()
	if ctx.ActiveSurface() != nil {
		t.Error("new context should have no surface")
	}

	surface := NewSurface("main window")
	ctx.SetActiveSurface(surface)
	if got := ctx.ActiveSurface(); got != surface {
		t.Errorf("ActiveSurface = %v, want the registered surface", got)
	}
	if surface.Label() != "main window" {
		t.Errorf("Label = %q", surface.Label())
	}

	ctx.SetActiveSurface(nil)
	if ctx.ActiveSurface() != nil {
		t.Error("surface should be cleared")
	}
}

// TestContextOnOwnerGoroutine verifies the ownership check across
// goroutines.
func TestContextOnOwnerGoroutine(t *testing.T) {
	ctx := NewContext()
	if !ctx.OnOwnerGoroutine() {
		t.Error("creating goroutine should be the owner")
	}

	var fromOther bool
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		fromOther = ctx.OnOwnerGoroutine()
	}()
	wg.Wait()

	if fromOther {
		t.Error("another goroutine should not be the owner")
	}
}

// TestPostNotification_NoBridge verifies the sentinel when no bridge is
// registered.
func TestPostNotification_NoBridge(t *testing.T) {
	SetNativeBridge(nil)
	ctx := NewContext()

	err := PostNotification(ctx.ElementForNode(1), NotificationValueChanged)
	if err != ErrNotConnected {
		t.Errorf("PostNotification = %v, want ErrNotConnected", err)
	}
	if err := PostAnnouncement(NewSurface("w"), "hi", PriorityMedium); err != ErrNotConnected {
		t.Errorf("PostAnnouncement = %v, want ErrNotConnected", err)
	}
}

// TestSetupTestBridge verifies the no-op bridge accepts posts.
func TestSetupTestBridge(t *testing.T) {
	SetupTestBridge(t.Cleanup)
	ctx := NewContext()

	if err := PostNotification(ctx.ElementForNode(1), NotificationTitleChanged); err != nil {
		t.Errorf("PostNotification = %v, want nil", err)
	}
	if err := PostAnnouncement(NewSurface("w"), "hello", PriorityHigh); err != nil {
		t.Errorf("PostAnnouncement = %v, want nil", err)
	}
}
