package backup

import (
	"io/fs"
	"os"
	"path/filepath"
)

// RequiredBytes sums the sizes of every file under root that passes filter.
// Directories contribute nothing. Any read failure aborts the scan.
func RequiredBytes(root, filter string) (uint64, error) {
	var total uint64

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return newError(KindScan, path, err)
		}
		if d.IsDir() {
			return nil
		}

		info, ok, err := regularFile(path, d)
		if err != nil {
			return newError(KindScan, path, err)
		}
		if ok && Matches(d.Name(), filter) {
			total += uint64(info.Size())
		}
		return nil
	})
	return total, err
}

// regularFile resolves d to the regular file it names. Symlinks to regular
// files are followed; symlinks to directories, devices, sockets and pipes are
// reported as not-regular and skipped by callers.
func regularFile(path string, d fs.DirEntry) (fs.FileInfo, bool, error) {
	if d.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			return nil, false, err
		}
		return info, info.Mode().IsRegular(), nil
	}

	info, err := d.Info()
	if err != nil {
		return nil, false, err
	}
	return info, info.Mode().IsRegular(), nil
}
