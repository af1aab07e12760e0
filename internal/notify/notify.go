// Package notify delivers the small, closed set of feedback events produced
// while arming and running a backup.
//
// The core never prints anything itself. Feedback (sound, console, log) is the
// business of whichever Notifier the process wires in.
package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Event names one feedback moment.
type Event string

const (
	// ActivationDetected fires when the activation shape arms the system.
	ActivationDetected Event = "activation-detected"
	// DeviceNotFound fires on every volume discovery attempt that found nothing.
	DeviceNotFound Event = "device-not-found"
	// BackupStarted fires when a confirmed backup begins.
	BackupStarted Event = "backup-started"
	// BackupCompleted fires after a backup finished successfully.
	BackupCompleted Event = "backup-completed"
	// BackupFailed fires after a backup aborted with an error.
	BackupFailed Event = "backup-failed"
)

// Events lists every known event.
var Events = []Event{ActivationDetected, DeviceNotFound, BackupStarted, BackupCompleted, BackupFailed}

// Valid reports whether e is one of the known events.
func (e Event) Valid() bool {
	for _, known := range Events {
		if e == known {
			return true
		}
	}
	return false
}

// Notifier receives feedback events. Implementations must not block for long
// and must handle their own failures; nothing is returned to the caller.
type Notifier interface {
	Notify(ctx context.Context, e Event)
}

// NotifierFunc adapts a function literal to the Notifier interface.
type NotifierFunc func(ctx context.Context, e Event)

// Notify calls the underlying function.
func (f NotifierFunc) Notify(ctx context.Context, e Event) {
	f(ctx, e)
}

// Discard drops every event.
var Discard Notifier = NotifierFunc(func(context.Context, Event) {})

// Multi fans an event out to every notifier in order.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(ctx context.Context, e Event) {
	for _, n := range m {
		if n != nil {
			n.Notify(ctx, e)
		}
	}
}

// LogNotifier records events in the structured log.
type LogNotifier struct {
	Log logrus.FieldLogger
}

// Notify implements Notifier.
func (n LogNotifier) Notify(_ context.Context, e Event) {
	entry := n.Log.WithField("event", string(e))
	switch e {
	case BackupFailed:
		entry.Warn("backup failed")
	case DeviceNotFound:
		entry.Info("no suitable removable volume, waiting")
	default:
		entry.Info("notification")
	}
}
