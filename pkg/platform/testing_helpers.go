package platform

// noopBridge is a NativeBridge that accepts all posts without side effects.
type noopBridge struct{}

func (noopBridge) PostNotification(*Element, Notification) error     { return nil }
func (noopBridge) PostAnnouncement(*Surface, string, Priority) error { return nil }

// SetupTestBridge installs a no-op native bridge for testing. The
// cleanup function should be testing.T.Cleanup or equivalent; it
// registers a teardown that unregisters the bridge.
//
//	platform.SetupTestBridge(t.Cleanup)
func SetupTestBridge(cleanup func(func())) {
	SetNativeBridge(noopBridge{})
	cleanup(func() { SetNativeBridge(nil) })
}
