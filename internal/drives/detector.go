// Package drives provides removable volume discovery for backup operations.
// This module talks to the host: mount table, filesystem usage and sysfs.
package drives

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

// Probe is the host-facing half of the locator. The default implementation
// uses gopsutil and sysfs; tests substitute a fake.
type Probe interface {
	// Partitions returns the mounted physical filesystems in mount-table order.
	Partitions(ctx context.Context) ([]disk.PartitionStat, error)
	// Usage reports capacity figures for the filesystem mounted at mountPoint.
	Usage(ctx context.Context, mountPoint string) (*disk.UsageStat, error)
	// Removable reports whether the device behind a mount is removable.
	Removable(device, mountPoint string) bool
}

// HostProbe reads the live system.
type HostProbe struct {
	// SysBlock is the sysfs block class directory, normally "/sys/class/block".
	SysBlock string
}

// NewHostProbe returns a probe for the running system.
func NewHostProbe() *HostProbe {
	return &HostProbe{SysBlock: "/sys/class/block"}
}

// Partitions implements Probe. Only physical devices are listed.
func (p *HostProbe) Partitions(ctx context.Context) ([]disk.PartitionStat, error) {
	return disk.PartitionsWithContext(ctx, false)
}

// Usage implements Probe.
func (p *HostProbe) Usage(ctx context.Context, mountPoint string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, mountPoint)
}

// Removable implements Probe. A device counts as removable when the kernel
// flags its disk as removable, or when it is mounted where desktop
// automounters put external media.
func (p *HostProbe) Removable(device, mountPoint string) bool {
	if p.sysfsRemovable(device) {
		return true
	}
	return isExternalMount(mountPoint)
}

// sysfsRemovable checks /sys/class/block/<dev>/removable, walking from a
// partition to its parent disk since only whole disks carry the flag.
func (p *HostProbe) sysfsRemovable(device string) bool {
	if p.SysBlock == "" || !strings.HasPrefix(device, "/dev/") {
		return false
	}

	name := filepath.Base(device)
	devDir := filepath.Join(p.SysBlock, name)
	if _, err := os.Stat(filepath.Join(devDir, "partition")); err == nil {
		resolved, err := filepath.EvalSymlinks(devDir)
		if err != nil {
			return false
		}
		devDir = filepath.Dir(resolved)
	}

	data, err := os.ReadFile(filepath.Join(devDir, "removable"))
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == "1"
}

// isExternalMount checks if a mount point is in a typical external location.
func isExternalMount(mountPoint string) bool {
	return strings.HasPrefix(mountPoint, "/run/media/") ||
		strings.HasPrefix(mountPoint, "/media/") ||
		strings.HasPrefix(mountPoint, "/mnt/") ||
		strings.HasPrefix(mountPoint, "/Volumes/")
}

// isReadOnly reports whether the mount options include "ro".
func isReadOnly(opts []string) bool {
	for _, opt := range opts {
		if opt == "ro" {
			return true
		}
	}
	return false
}
