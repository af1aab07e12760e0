// Package backup implements the backup run triggered by the confirmation
// gesture.
//
// A run is five steps:
//   - validate the source directory
//   - size the filtered source tree
//   - wait for a removable, writable volume with enough free space
//   - create <volume>/<source name>_<timestamp>
//   - copy the filtered tree into it, stopping at the first failure
//
// The source is never modified. Partial output is never rolled back.
package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"gesturebackup/internal/drives"
	"gesturebackup/internal/notify"
	"gesturebackup/internal/retry"
)

// TimestampLayout formats the destination directory suffix in local time.
const TimestampLayout = "2006-01-02-15-04-05"

// VolumeFinder picks a destination volume able to hold minBytes, or returns
// nil when none is attached right now.
type VolumeFinder interface {
	Find(ctx context.Context, minBytes uint64) (*drives.VolumeInfo, error)
}

// Job describes one backup run. It is built fresh for every run and dropped
// afterwards.
type Job struct {
	ID            string
	SourceDir     string
	Filter        string
	RequiredBytes uint64
	Volume        drives.VolumeInfo
	DestName      string
	DestPath      string
}

// Engine executes backup jobs.
type Engine struct {
	finder   VolumeFinder
	notifier notify.Notifier
	policy   retry.Policy
	log      logrus.FieldLogger
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy sets the volume discovery retry policy.
func WithPolicy(p retry.Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithNotifier sets where device-not-found events go.
func WithNotifier(n notify.Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithLogger sets the engine logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

// WithClock overrides the clock used for destination names.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine returns an engine that finds destinations through finder.
func NewEngine(finder VolumeFinder, opts ...Option) *Engine {
	e := &Engine{
		finder:   finder,
		notifier: notify.Discard,
		policy:   retry.DefaultPolicy(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		e.log = l
	}
	return e
}

// Execute backs up sourceDir to the first suitable removable volume. filter
// is FilterAll or an extension without the leading dot. The returned job is
// non-nil whenever the run got past source validation.
//
// Waiting for a volume blocks until one appears; ctx only ends that wait.
// The copy itself is not cancellable.
func (e *Engine) Execute(ctx context.Context, sourceDir, filter string) (*Job, error) {
	src, err := validateSource(sourceDir)
	if err != nil {
		return nil, err
	}

	job := &Job{
		ID:        uuid.NewString(),
		SourceDir: src,
		Filter:    NormalizeFilter(filter),
	}
	log := e.log.WithFields(logrus.Fields{
		"run_id": job.ID,
		"source": job.SourceDir,
		"filter": job.Filter,
	})

	job.RequiredBytes, err = RequiredBytes(job.SourceDir, job.Filter)
	if err != nil {
		log.WithError(err).Error("failed to size source tree")
		return job, err
	}
	log.WithField("required", drives.FormatBytes(job.RequiredBytes)).Info("source sized")

	volume, err := e.waitForVolume(ctx, job.RequiredBytes, log)
	if err != nil {
		return job, err
	}
	job.Volume = *volume

	job.DestName = DestinationName(job.SourceDir, e.now())
	job.DestPath = filepath.Join(volume.MountPoint, job.DestName)
	log = log.WithField("destination", job.DestPath)

	if err := os.Mkdir(job.DestPath, 0o755); err != nil {
		log.WithError(err).Error("failed to create destination directory")
		return job, newError(KindDirectoryCreate, job.DestPath, err)
	}

	start := time.Now()
	if err := copyTree(job.SourceDir, job.DestPath, job.Filter); err != nil {
		log.WithError(err).Error("copy aborted, partial output left in place")
		return job, err
	}

	log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("backup copied")
	return job, nil
}

// waitForVolume polls the finder until a volume turns up, notifying on
// every miss. Enumeration errors count as a miss.
func (e *Engine) waitForVolume(ctx context.Context, required uint64, log logrus.FieldLogger) (*drives.VolumeInfo, error) {
	for attempt := 1; ; attempt++ {
		volume, err := e.finder.Find(ctx, required)
		switch {
		case err != nil:
			log.WithError(err).WithField("attempt", attempt).Warn("volume enumeration failed")
		case volume != nil:
			log.WithFields(logrus.Fields{
				"volume":  volume.MountPoint,
				"device":  volume.Device,
				"free":    drives.FormatBytes(volume.AvailableBytes),
				"attempt": attempt,
			}).Info("backup volume found")
			return volume, nil
		}

		e.notifier.Notify(ctx, notify.DeviceNotFound)

		if e.policy.Exhausted(attempt) {
			return nil, newError(KindNoVolume, "",
				fmt.Errorf("no removable volume with more than %d bytes free after %d attempts", required, attempt))
		}
		if err := e.policy.Wait(ctx); err != nil {
			return nil, newError(KindNoVolume, "", err)
		}
	}
}

// DestinationName builds "<base name of source>_<YYYY-MM-DD-HH-MM-SS>" in local time.
func DestinationName(sourceDir string, now time.Time) string {
	base := filepath.Base(filepath.Clean(sourceDir))
	if base == string(filepath.Separator) || base == "." {
		base = "root"
	}
	return base + "_" + now.Local().Format(TimestampLayout)
}

func validateSource(sourceDir string) (string, error) {
	if sourceDir == "" {
		return "", newError(KindInvalidSource, "", fmt.Errorf("no source directory configured"))
	}
	abs, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", newError(KindInvalidSource, sourceDir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", newError(KindInvalidSource, abs, err)
	}
	if !info.IsDir() {
		return "", newError(KindInvalidSource, abs, fmt.Errorf("not a directory"))
	}
	return abs, nil
}
