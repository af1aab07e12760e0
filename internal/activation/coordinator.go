// Package activation turns completed gestures into backup runs.
//
// An activation loop arms the coordinator; a confirmation strip drawn while
// armed triggers exactly one backup. Backups run on a single worker
// goroutine started by Run, so Handle never blocks on I/O.
package activation

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"gesturebackup/internal/gesture"
	"gesturebackup/internal/notify"
)

// State is the armed/trigger state of the coordinator.
type State int

const (
	StateIdle State = iota
	StateArmed
	// StateBackingUp is armed with a backup in flight. It cannot trigger again.
	StateBackingUp
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateBackingUp:
		return "backing-up"
	default:
		return "unknown"
	}
}

// Backup is the work a confirmed gesture starts.
type Backup interface {
	Run(ctx context.Context) error
}

// BackupFunc adapts a function literal to the Backup interface.
type BackupFunc func(ctx context.Context) error

// Run calls the underlying function.
func (f BackupFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Coordinator owns the activation state.
type Coordinator struct {
	mu     sync.Mutex
	state  State
	closed bool

	backup   Backup
	notifier notify.Notifier
	log      logrus.FieldLogger
	requests chan struct{}
}

// NewCoordinator returns an idle coordinator. A nil notifier discards events
// and a nil log is silent.
func NewCoordinator(backup Backup, notifier notify.Notifier, log logrus.FieldLogger) *Coordinator {
	if notifier == nil {
		notifier = notify.Discard
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Coordinator{
		backup:   backup,
		notifier: notifier,
		log:      log,
		requests: make(chan struct{}, 1),
	}
}

// State returns the current state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Coordinator) compareAndSet(from, to State) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != from {
		return false
	}
	c.state = to
	return true
}

// Handle applies one tracker status. Only the two completion statuses do
// anything; every other status is ignored.
func (c *Coordinator) Handle(ctx context.Context, status gesture.Status) {
	switch status {
	case gesture.StatusActivationComplete:
		if !c.compareAndSet(StateIdle, StateArmed) {
			return
		}
		c.log.Info("activation gesture detected, armed")
		c.notifier.Notify(ctx, notify.ActivationDetected)

	case gesture.StatusConfirmationComplete:
		if !c.trigger() {
			c.log.Debug("confirmation gesture ignored, not armed")
			return
		}
		c.log.Info("confirmation gesture detected, backup queued")
	}
}

// trigger moves Armed to BackingUp and queues one request for the worker.
// The send never blocks: the request channel has room for one and only the
// Armed to BackingUp transition writes to it.
func (c *Coordinator) trigger() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state != StateArmed {
		return false
	}
	select {
	case c.requests <- struct{}{}:
		c.state = StateBackingUp
		return true
	default:
		return false
	}
}

// Close stops accepting confirmations. Run finishes any queued backup and
// then returns nil.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.requests)
	}
}

// Run executes queued backups one at a time until ctx is done or the
// coordinator is closed.
func (c *Coordinator) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-c.requests:
			if !ok {
				return nil
			}
			c.runBackup(ctx)
		}
	}
}

func (c *Coordinator) runBackup(ctx context.Context) {
	defer c.compareAndSet(StateBackingUp, StateIdle)
	_ = RunBackup(ctx, c.backup, c.notifier, c.log)
}

// RunBackup runs b once, bracketed by backup-started and either
// backup-completed or backup-failed. The backup's error is returned.
func RunBackup(ctx context.Context, b Backup, n notify.Notifier, log logrus.FieldLogger) error {
	n.Notify(ctx, notify.BackupStarted)
	if err := b.Run(ctx); err != nil {
		log.WithError(err).Error("backup failed")
		n.Notify(ctx, notify.BackupFailed)
		return err
	}
	log.Info("backup completed")
	n.Notify(ctx, notify.BackupCompleted)
	return nil
}
