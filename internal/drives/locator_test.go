package drives

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProbe struct {
	parts     []disk.PartitionStat
	partErr   error
	free      map[string]uint64
	removable map[string]bool
	calls     int
}

func (f *fakeProbe) Partitions(context.Context) ([]disk.PartitionStat, error) {
	f.calls++
	return f.parts, f.partErr
}

func (f *fakeProbe) Usage(_ context.Context, mountPoint string) (*disk.UsageStat, error) {
	free, ok := f.free[mountPoint]
	if !ok {
		return nil, errors.New("permission denied")
	}
	return &disk.UsageStat{Path: mountPoint, Free: free}, nil
}

func (f *fakeProbe) Removable(_, mountPoint string) bool {
	return f.removable[mountPoint]
}

func TestSelectVolumeRules(t *testing.T) {
	tests := []struct {
		name    string
		volumes []VolumeInfo
		min     uint64
		want    string
		found   bool
	}{
		{
			name:    "only volume is fixed",
			volumes: []VolumeInfo{{MountPoint: "/data", AvailableBytes: 1 << 30}},
			min:     100,
		},
		{
			name:    "only volume is read-only",
			volumes: []VolumeInfo{{MountPoint: "/media/cd", AvailableBytes: 1 << 30, Removable: true, ReadOnly: true}},
			min:     100,
		},
		{
			name:    "available equals required",
			volumes: []VolumeInfo{{MountPoint: "/media/usb", AvailableBytes: 170, Removable: true}},
			min:     170,
		},
		{
			name:    "available exceeds required by one byte",
			volumes: []VolumeInfo{{MountPoint: "/media/usb", AvailableBytes: 171, Removable: true}},
			min:     170,
			want:    "/media/usb",
			found:   true,
		},
		{
			name: "root filesystem on removable media is never chosen",
			volumes: []VolumeInfo{
				{MountPoint: "/", Device: "/dev/sda2", AvailableBytes: 1 << 30, Removable: true},
				{MountPoint: "/media/usb", AvailableBytes: 500, Removable: true},
			},
			min:   100,
			want:  "/media/usb",
			found: true,
		},
		{
			name:    "only root filesystem available",
			volumes: []VolumeInfo{{MountPoint: "/", AvailableBytes: 1 << 30, Removable: true}},
			min:     100,
		},
		{
			name: "first eligible wins",
			volumes: []VolumeInfo{
				{MountPoint: "/media/small", AvailableBytes: 10, Removable: true},
				{MountPoint: "/media/a", AvailableBytes: 500, Removable: true},
				{MountPoint: "/media/b", AvailableBytes: 900, Removable: true},
			},
			min:   100,
			want:  "/media/a",
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := SelectVolume(tt.volumes, tt.min)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, v.MountPoint)
			}
		})
	}
}

func TestLocatorListKeepsRootSkipsUnreadable(t *testing.T) {
	probe := &fakeProbe{
		parts: []disk.PartitionStat{
			{Device: "/dev/nvme0n1p2", Mountpoint: "/", Fstype: "ext4", Opts: []string{"rw"}},
			{Device: "/dev/sdb1", Mountpoint: "/run/media/u/STICK", Fstype: "vfat", Opts: []string{"rw", "nosuid"}},
			{Device: "/dev/sr0", Mountpoint: "/run/media/u/CD", Fstype: "iso9660", Opts: []string{"ro"}},
			{Device: "/dev/sdc1", Mountpoint: "/run/media/u/LOCKED", Fstype: "ext4", Opts: []string{"rw"}},
		},
		free: map[string]uint64{
			"/":                  1 << 40,
			"/run/media/u/STICK": 4096,
			"/run/media/u/CD":    0,
		},
		removable: map[string]bool{
			"/run/media/u/STICK": true,
			"/run/media/u/CD":    true,
		},
	}

	l := NewLocatorWithProbe(probe, nil)
	volumes, err := l.List(context.Background())
	require.NoError(t, err)
	require.Len(t, volumes, 3)

	assert.Equal(t, "/", volumes[0].MountPoint)
	assert.True(t, volumes[0].SystemRoot())
	assert.Equal(t, VolumeInfo{
		MountPoint:     "/run/media/u/STICK",
		Device:         "/dev/sdb1",
		Fstype:         "vfat",
		AvailableBytes: 4096,
		Removable:      true,
	}, volumes[1])
	assert.True(t, volumes[2].ReadOnly)
}

func TestLocatorFindEnumeratesEveryCall(t *testing.T) {
	probe := &fakeProbe{free: map[string]uint64{}, removable: map[string]bool{}}
	l := NewLocatorWithProbe(probe, nil)

	v, err := l.Find(context.Background(), 100)
	require.NoError(t, err)
	assert.Nil(t, v)

	// the stick is plugged in between polls
	probe.parts = []disk.PartitionStat{{Device: "/dev/sdb1", Mountpoint: "/media/usb", Opts: []string{"rw"}}}
	probe.free["/media/usb"] = 200
	probe.removable["/media/usb"] = true

	v, err = l.Find(context.Background(), 120)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "/media/usb", v.MountPoint)
	assert.Equal(t, 2, probe.calls)
}

func TestLocatorFindPropagatesEnumerationError(t *testing.T) {
	probe := &fakeProbe{partErr: errors.New("no mount table")}
	_, err := NewLocatorWithProbe(probe, nil).Find(context.Background(), 1)
	assert.Error(t, err)
}

func TestHostProbeRemovableFromSysfs(t *testing.T) {
	sys := t.TempDir()

	// /sys/class/block/sdb -> devices/sdb, partition sdb1 lives under its disk
	diskDir := filepath.Join(sys, "devices", "sdb")
	require.NoError(t, os.MkdirAll(filepath.Join(diskDir, "sdb1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(diskDir, "removable"), []byte("1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(diskDir, "sdb1", "partition"), []byte("1\n"), 0o644))

	fixedDir := filepath.Join(sys, "devices", "sda")
	require.NoError(t, os.MkdirAll(fixedDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(fixedDir, "removable"), []byte("0\n"), 0o644))

	class := filepath.Join(sys, "class")
	require.NoError(t, os.MkdirAll(class, 0o755))
	require.NoError(t, os.Symlink(filepath.Join(diskDir, "sdb1"), filepath.Join(class, "sdb1")))
	require.NoError(t, os.Symlink(diskDir, filepath.Join(class, "sdb")))
	require.NoError(t, os.Symlink(fixedDir, filepath.Join(class, "sda")))

	p := &HostProbe{SysBlock: class}
	assert.True(t, p.Removable("/dev/sdb1", "/srv/backup"))
	assert.True(t, p.Removable("/dev/sdb", "/srv/backup"))
	assert.False(t, p.Removable("/dev/sda", "/srv/data"))
	assert.True(t, p.Removable("/dev/sda", "/run/media/u/DISK"), "automount location counts as external")
	assert.False(t, p.Removable("tmpfs", "/tmp"))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "999 B", FormatBytes(999))
	assert.Equal(t, "1.5 KiB", FormatBytes(1536))
	assert.Equal(t, "1.0 GiB", FormatBytes(1<<30))
}
