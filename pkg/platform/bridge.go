package platform

import (
	"errors"
	"sync"
)

// Sentinel errors for platform operations.
var (
	// ErrNotConnected is returned when no native bridge is registered.
	ErrNotConnected = errors.New("platform: not connected")
)

// NativeBridge is the interface to the host accessibility API. Posting
// is an opaque side effect; the host may synchronously query node state
// while processing a notification.
type NativeBridge interface {
	// PostNotification delivers a named notification for one element.
	PostNotification(element *Element, notification Notification) error

	// PostAnnouncement delivers a free-text announcement to the
	// container owning the surface.
	PostAnnouncement(surface *Surface, text string, priority Priority) error
}

var (
	bridgeMu     sync.RWMutex
	nativeBridge NativeBridge
)

// SetNativeBridge sets the native bridge implementation.
// Called by the embedder during initialization.
func SetNativeBridge(bridge NativeBridge) {
	bridgeMu.Lock()
	nativeBridge = bridge
	bridgeMu.Unlock()
}

func currentBridge() NativeBridge {
	bridgeMu.RLock()
	defer bridgeMu.RUnlock()
	return nativeBridge
}

// PostNotification delivers a notification through the registered bridge.
func PostNotification(element *Element, notification Notification) error {
	bridge := currentBridge()
	if bridge == nil {
		return ErrNotConnected
	}
	return bridge.PostNotification(element, notification)
}

// PostAnnouncement delivers an announcement through the registered bridge.
func PostAnnouncement(surface *Surface, text string, priority Priority) error {
	bridge := currentBridge()
	if bridge == nil {
		return ErrNotConnected
	}
	return bridge.PostAnnouncement(surface, text, priority)
}
