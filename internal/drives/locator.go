// Package drives provides removable volume discovery for backup operations.
// This module enumerates volumes and picks a backup destination.
package drives

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Locator enumerates mounted volumes and filters backup candidates.
type Locator struct {
	probe Probe
	log   logrus.FieldLogger
}

// NewLocator returns a locator for the running system.
func NewLocator(log logrus.FieldLogger) *Locator {
	return NewLocatorWithProbe(NewHostProbe(), log)
}

// NewLocatorWithProbe returns a locator backed by probe.
func NewLocatorWithProbe(probe Probe, log logrus.FieldLogger) *Locator {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Locator{probe: probe, log: log}
}

// List enumerates every mounted volume afresh, the root filesystem included.
// Mounts whose usage cannot be read are skipped. Order follows the mount table.
func (l *Locator) List(ctx context.Context) ([]VolumeInfo, error) {
	parts, err := l.probe.Partitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate partitions: %w", err)
	}

	volumes := make([]VolumeInfo, 0, len(parts))
	for _, part := range parts {
		if part.Mountpoint == "" {
			continue
		}

		usage, err := l.probe.Usage(ctx, part.Mountpoint)
		if err != nil {
			l.log.WithField("mount", part.Mountpoint).WithError(err).Debug("skipping unreadable mount")
			continue
		}

		volumes = append(volumes, VolumeInfo{
			MountPoint:     part.Mountpoint,
			Device:         part.Device,
			Fstype:         part.Fstype,
			AvailableBytes: usage.Free,
			Removable:      l.probe.Removable(part.Device, part.Mountpoint),
			ReadOnly:       isReadOnly(part.Opts),
		})
	}
	return volumes, nil
}

// Find returns the first volume that can hold minBytes, or nil when none is
// currently attached.
func (l *Locator) Find(ctx context.Context, minBytes uint64) (*VolumeInfo, error) {
	volumes, err := l.List(ctx)
	if err != nil {
		return nil, err
	}
	if v, ok := SelectVolume(volumes, minBytes); ok {
		return &v, nil
	}
	return nil, nil
}

// SelectVolume returns the first eligible volume in list order. The root
// filesystem is never selected, even when it sits on removable media.
func SelectVolume(volumes []VolumeInfo, minBytes uint64) (VolumeInfo, bool) {
	for _, v := range volumes {
		if v.Eligible(minBytes) && !v.SystemRoot() {
			return v, true
		}
	}
	return VolumeInfo{}, false
}
