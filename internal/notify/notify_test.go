package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventValid(t *testing.T) {
	for _, e := range Events {
		assert.True(t, e.Valid(), string(e))
	}
	assert.False(t, Event("backup-paused").Valid())
}

func TestMultiFansOutInOrder(t *testing.T) {
	var got []string
	record := func(tag string) Notifier {
		return NotifierFunc(func(_ context.Context, e Event) {
			got = append(got, tag+":"+string(e))
		})
	}

	m := Multi{record("a"), nil, record("b")}
	m.Notify(context.Background(), BackupStarted)

	assert.Equal(t, []string{"a:backup-started", "b:backup-started"}, got)
}

func TestLogNotifier(t *testing.T) {
	logger, hook := test.NewNullLogger()

	n := LogNotifier{Log: logger}
	n.Notify(context.Background(), ActivationDetected)
	n.Notify(context.Background(), BackupFailed)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "activation-detected", entries[0].Data["event"])
	assert.Equal(t, logrus.InfoLevel, entries[0].Level)
	assert.Equal(t, logrus.WarnLevel, entries[1].Level)
}

func TestCommandNotifierAppendsEventName(t *testing.T) {
	var gotName string
	var gotArgs []string
	n := NewCommandNotifier("paplay-event", []string{"--volume", "40"}, nil)
	n.run = func(_ context.Context, name string, args ...string) error {
		gotName = name
		gotArgs = args
		return nil
	}

	n.Notify(context.Background(), DeviceNotFound)

	assert.Equal(t, "paplay-event", gotName)
	assert.Equal(t, []string{"--volume", "40", "device-not-found"}, gotArgs)
	assert.Equal(t, []string{"--volume", "40"}, n.Args, "configured args are not mutated")
}

func TestCommandNotifierLogsFailures(t *testing.T) {
	logger, hook := test.NewNullLogger()
	n := NewCommandNotifier("missing-hook", nil, logger)
	n.run = func(context.Context, string, ...string) error {
		return errors.New("exit status 1")
	}

	n.Notify(context.Background(), BackupCompleted)

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "backup-completed", hook.LastEntry().Data["event"])
}

func TestCommandNotifierWithoutCommandIsNoop(t *testing.T) {
	called := false
	n := &CommandNotifier{run: func(context.Context, string, ...string) error {
		called = true
		return nil
	}}
	n.Notify(context.Background(), BackupStarted)
	assert.False(t, called)
}

func TestConsoleNotifier(t *testing.T) {
	color.NoColor = true
	ForceASCII()

	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf)
	n.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local) }

	n.Notify(context.Background(), BackupCompleted)
	n.Notify(context.Background(), BackupFailed)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "09:30:00 [OK] backup completed", lines[0])
	assert.Equal(t, "09:30:00 [X] backup failed", lines[1])
}
