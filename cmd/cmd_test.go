package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gesturebackup/internal/drives"
	"gesturebackup/internal/version"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, version.GetFullVersionString()+"\n", out.String())
}

func TestRenderVolumes(t *testing.T) {
	vols := []drives.VolumeInfo{
		{MountPoint: "/run/media/u/STICK", Device: "/dev/sdb1", Fstype: "vfat", AvailableBytes: 4 << 30, Removable: true},
		{MountPoint: "/home", Device: "/dev/nvme0n1p3", Fstype: "ext4", AvailableBytes: 100 << 30},
	}

	out := renderVolumes(vols, 1024)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "ELIGIBLE")
	assert.Contains(t, lines[1], "/dev/sdb1")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[1]), "yes"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[2]), "no"))
}

func TestRenderVolumesEmpty(t *testing.T) {
	assert.Contains(t, renderVolumes(nil, 0), "no mounted volumes found")
}

func TestOpenInputStdin(t *testing.T) {
	r, err := openInput("-", strings.NewReader("1 2\n"))
	require.NoError(t, err)
	defer r.Close()

	_, err = openInput(filepath.Join(t.TempDir(), "missing.fifo"), nil)
	assert.Error(t, err)
}

func withLockPath(t *testing.T) {
	t.Helper()
	old := lockFilePath
	lockFilePath = filepath.Join(t.TempDir(), "gesturebackup.lock")
	t.Cleanup(func() { lockFilePath = old })
}

func TestInstanceLock(t *testing.T) {
	withLockPath(t)

	require.NoError(t, acquireInstanceLock())
	data, err := os.ReadFile(lockFilePath)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data))

	releaseInstanceLock()
	assert.NoFileExists(t, lockFilePath)
}

func TestInstanceLockHeldByLiveProcess(t *testing.T) {
	withLockPath(t)
	// PID 1 always exists
	require.NoError(t, os.WriteFile(lockFilePath, []byte("1"), 0o644))

	err := acquireInstanceLock()
	if err == nil {
		t.Skip("cannot signal PID 1 in this environment")
	}
	assert.Contains(t, err.Error(), "already running")
}

func TestInstanceLockRemovesStaleLock(t *testing.T) {
	withLockPath(t)
	require.NoError(t, os.WriteFile(lockFilePath, []byte("not-a-pid"), 0o644))

	require.NoError(t, acquireInstanceLock())
	releaseInstanceLock()
}
