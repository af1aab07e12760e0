package drives

import "github.com/dustin/go-humanize"

// FormatBytes formats a byte count with binary units.
//
// Examples:
//
//	FormatBytes(999) -> "999 B"
//	FormatBytes(1536) -> "1.5 KiB"
//	FormatBytes(1073741824) -> "1.0 GiB"
func FormatBytes(bytes uint64) string {
	return humanize.IBytes(bytes)
}
