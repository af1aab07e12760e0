package backup

import "strings"

// FilterAll is the sentinel filter that accepts every file.
const FilterAll = "all"

// NormalizeFilter maps a configured extension to the filter used by the
// engine: empty means FilterAll, and a single leading dot is dropped so that
// ".txt" and "txt" behave the same. Case is preserved.
func NormalizeFilter(ext string) string {
	ext = strings.TrimSpace(ext)
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return FilterAll
	}
	return ext
}

// Extension returns the text after the last dot of a file name. Names with
// no dot, and dot-files such as ".bashrc" with no further dot, have no
// extension.
func Extension(name string) (string, bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return "", false
	}
	return name[idx+1:], true
}

// Matches applies the per-file filter rule: FilterAll accepts everything,
// otherwise the extension must equal filter exactly.
func Matches(name, filter string) bool {
	if filter == FilterAll {
		return true
	}
	ext, ok := Extension(name)
	return ok && ext == filter
}
