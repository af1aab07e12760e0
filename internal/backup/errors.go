package backup

import "fmt"

// Kind classifies why a backup run stopped.
type Kind string

const (
	// KindInvalidSource means the configured source directory is unusable. No I/O happened.
	KindInvalidSource Kind = "invalid-source"
	// KindScan means the source tree could not be read while sizing it.
	KindScan Kind = "scan"
	// KindNoVolume means a bounded retry policy ran out, or the wait was interrupted.
	KindNoVolume Kind = "no-volume"
	// KindDirectoryCreate means the destination directory could not be created.
	KindDirectoryCreate Kind = "directory-create"
	// KindCopy means copying stopped at the first failing path. Partial output is left in place.
	KindCopy Kind = "copy"
)

// Error is the typed failure returned by Engine.Execute.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

// Sentinels for errors.Is matching by kind.
var (
	ErrInvalidSource   = &Error{Kind: KindInvalidSource}
	ErrScan            = &Error{Kind: KindScan}
	ErrNoVolume        = &Error{Kind: KindNoVolume}
	ErrDirectoryCreate = &Error{Kind: KindDirectoryCreate}
	ErrCopy            = &Error{Kind: KindCopy}
)

// Error implements the error interface
func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	default:
		return string(e.Kind)
	}
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so callers can write
// errors.Is(err, backup.ErrCopy).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}
