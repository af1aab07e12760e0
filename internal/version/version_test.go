package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionStrings(t *testing.T) {
	assert.Equal(t, AppVersion, GetVersionString())
	assert.Equal(t, "gesturebackup v"+AppVersion+" (dev)", GetFullVersionString())
	assert.Contains(t, GetAppTitle(), AppDesc)
}
