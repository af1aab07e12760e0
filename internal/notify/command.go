package notify

import (
	"context"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultCommandTimeout bounds a single hook invocation.
const DefaultCommandTimeout = 30 * time.Second

// CommandNotifier runs an external program for every event, passing the event
// name as the last argument. It is how audible feedback is plugged in, e.g.
// a small script that plays a different sound per event.
type CommandNotifier struct {
	Command string
	Args    []string
	Timeout time.Duration
	Log     logrus.FieldLogger

	run func(ctx context.Context, name string, args ...string) error
}

// NewCommandNotifier returns a notifier that invokes command with args plus the event name.
func NewCommandNotifier(command string, args []string, log logrus.FieldLogger) *CommandNotifier {
	return &CommandNotifier{
		Command: command,
		Args:    args,
		Timeout: DefaultCommandTimeout,
		Log:     log,
		run:     runCommand,
	}
}

// Notify implements Notifier. The hook runs synchronously; a failing hook is
// logged and otherwise ignored.
func (n *CommandNotifier) Notify(ctx context.Context, e Event) {
	if n.Command == "" {
		return
	}
	timeout := n.Timeout
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append(append([]string{}, n.Args...), string(e))
	run := n.run
	if run == nil {
		run = runCommand
	}
	if err := run(ctx, n.Command, args...); err != nil && n.Log != nil {
		n.Log.WithFields(logrus.Fields{
			"event":   string(e),
			"command": n.Command,
		}).WithError(err).Warn("notification hook failed")
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}
