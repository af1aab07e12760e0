package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

// ConsoleNotifier prints one coloured line per event. Only wired in with --verbose.
type ConsoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

// NewConsoleNotifier writes event lines to out.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out, now: time.Now}
}

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

// Notify implements Notifier.
func (n *ConsoleNotifier) Notify(_ context.Context, e Event) {
	n.mu.Lock()
	defer n.mu.Unlock()

	stamp := n.now().Format("15:04:05")
	var line string
	switch e {
	case ActivationDetected:
		line = infoColor.Sprintf("%s activation detected, draw the confirmation strip to start the backup", CurrentSymbols.Info)
	case DeviceNotFound:
		line = warningColor.Sprintf("%s no removable volume with enough space, connect one to continue", CurrentSymbols.Warning)
	case BackupStarted:
		line = infoColor.Sprintf("%s backup started", CurrentSymbols.Drive)
	case BackupCompleted:
		line = successColor.Sprintf("%s backup completed", CurrentSymbols.Success)
	case BackupFailed:
		line = errorColor.Sprintf("%s backup failed", CurrentSymbols.Error)
	default:
		line = fmt.Sprintf("%s %s", CurrentSymbols.Bullet, e)
	}
	fmt.Fprintf(n.out, "%s %s\n", stamp, line)
}
