// Package version holds the application identity shown by the version
// command and the settings editor.
package version

const (
	// AppName is the binary and directory name
	AppName = "gesturebackup"

	// AppVersion follows semantic versioning (major.minor.patch)
	AppVersion = "0.4.1"

	// AppDesc is the one-line description used in help and the settings header
	AppDesc = "Gesture-triggered backup to removable media"
)

// Commit is set at build time with -ldflags "-X gesturebackup/internal/version.Commit=...".
var Commit = "dev"

// GetVersionString returns just the version number.
// Example: "0.4.1"
func GetVersionString() string {
	return AppVersion
}

// GetFullVersionString returns the application name with version and commit.
// Example: "gesturebackup v0.4.1 (dev)"
func GetFullVersionString() string {
	return AppName + " v" + AppVersion + " (" + Commit + ")"
}

// GetAppTitle returns the title used in the settings editor header.
// Example: "gesturebackup v0.4.1 - Gesture-triggered backup to removable media"
func GetAppTitle() string {
	return AppName + " v" + AppVersion + " - " + AppDesc
}
