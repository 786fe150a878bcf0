// Package bridge translates semantics tree changes into platform
// accessibility notifications.
//
// An EventGenerator observes one tree update as a semantics.ChangeHandler
// and queues event descriptors for every change an assistive-technology
// client needs to hear about. The queue is then moved into a QueuedEvents
// batch and raised in a separate, explicit step. Generation and delivery
// are deliberately decoupled: the host may re-enter the producing system
// while a notification is processed, so no lock protecting the tree or
// the shared context may be held across Raise.
package bridge
