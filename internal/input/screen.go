package input

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
)

// Screen is the size of the screen the pointer moves on.
type Screen struct {
	Width  int
	Height int
}

func (s Screen) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

var currentModeRe = regexp.MustCompile(`current\s+(\d+)\s*x\s*(\d+)`)

// DetectScreen asks xrandr for the current screen size.
func DetectScreen(ctx context.Context) (Screen, error) {
	out, err := exec.CommandContext(ctx, "xrandr", "--current").Output()
	if err != nil {
		return Screen{}, fmt.Errorf("run xrandr: %w", err)
	}
	return ParseXrandr(string(out))
}

// ParseXrandr extracts the "current W x H" size from xrandr output.
func ParseXrandr(out string) (Screen, error) {
	m := currentModeRe.FindStringSubmatch(out)
	if m == nil {
		return Screen{}, fmt.Errorf("no current screen size in xrandr output")
	}
	w, err := strconv.Atoi(m[1])
	if err != nil {
		return Screen{}, err
	}
	h, err := strconv.Atoi(m[2])
	if err != nil {
		return Screen{}, err
	}
	return Screen{Width: w, Height: h}, nil
}

// ResolveScreen returns the override when both dimensions are set, and
// detects the size otherwise.
func ResolveScreen(ctx context.Context, override Screen) (Screen, error) {
	if override.Width > 0 && override.Height > 0 {
		return override, nil
	}
	detected, err := DetectScreen(ctx)
	if err != nil {
		return Screen{}, err
	}
	if override.Width > 0 {
		detected.Width = override.Width
	}
	if override.Height > 0 {
		detected.Height = override.Height
	}
	return detected, nil
}
