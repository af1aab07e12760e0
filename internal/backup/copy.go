package backup

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// copyTree mirrors the filtered contents of src into dst, which must already
// exist. Sub-directories are created as they are encountered. The first
// failure stops the walk and is returned as a KindCopy error naming the
// failing source path; nothing already written is removed.
func copyTree(src, dst, filter string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return newError(KindCopy, path, err)
		}

		// Skip the backup destination itself when it lives inside the source
		if path == dst {
			return filepath.SkipDir
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return newError(KindCopy, path, err)
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if err := os.Mkdir(target, 0o755); err != nil {
				return newError(KindCopy, path, err)
			}
			return nil
		}

		if !Matches(d.Name(), filter) {
			return nil
		}
		info, ok, err := regularFile(path, d)
		if err != nil {
			return newError(KindCopy, path, err)
		}
		if !ok {
			return nil
		}
		if err := copyFile(path, target, info); err != nil {
			return newError(KindCopy, path, err)
		}
		return nil
	})
}

// copyFile copies one regular file, sizing the buffer for the file.
// Permissions and timestamps are best-effort; FAT volumes reject both.
func copyFile(src, dst string, info fs.FileInfo) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	bufSize := 256 * 1024
	if info.Size() > 10*1024*1024 {
		bufSize = 2 * 1024 * 1024
	}
	if _, err := io.CopyBuffer(dstFile, srcFile, make([]byte, bufSize)); err != nil {
		dstFile.Close()
		return err
	}
	if err := dstFile.Sync(); err != nil {
		dstFile.Close()
		return err
	}
	if err := dstFile.Close(); err != nil {
		return err
	}

	_ = os.Chmod(dst, info.Mode().Perm())
	_ = os.Chtimes(dst, info.ModTime(), info.ModTime())
	return nil
}
