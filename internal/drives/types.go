// Package drives provides removable volume discovery for backup operations.
// This module defines the core types used throughout the drives package.
package drives

import "fmt"

// VolumeInfo is a point-in-time snapshot of one mounted volume. It is never
// cached: removable media come and go between polls.
type VolumeInfo struct {
	MountPoint     string // Filesystem root of the volume (e.g., "/run/media/user/STICK")
	Device         string // Block device backing the mount (e.g., "/dev/sdb1")
	Fstype         string // Filesystem type (e.g., "vfat", "exfat", "ext4")
	AvailableBytes uint64 // Bytes an unprivileged writer can still use
	Removable      bool   // Host reports the device as removable or hot-pluggable
	ReadOnly       bool   // Mounted read-only
}

// Eligible reports whether the volume can take a backup of minBytes: it must
// be removable, writable, and have strictly more than minBytes available.
func (v VolumeInfo) Eligible(minBytes uint64) bool {
	return v.Removable && !v.ReadOnly && v.AvailableBytes > minBytes
}

// SystemRoot reports whether the volume is mounted at "/".
func (v VolumeInfo) SystemRoot() bool {
	return v.MountPoint == "/"
}

func (v VolumeInfo) String() string {
	return fmt.Sprintf("%s (%s, %s free)", v.MountPoint, v.Device, FormatBytes(v.AvailableBytes))
}
