package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"gesturebackup/internal/gesture"
)

// LineSource reads one position per line from r. A line holds two numbers
// separated by whitespace or a comma; fractional values are truncated toward
// zero. Blank lines and lines starting with '#' are ignored, anything else
// that does not parse is skipped and counted.
type LineSource struct {
	r       io.Reader
	log     logrus.FieldLogger
	skipped atomic.Int64
}

// NewLineSource returns a source reading from r.
func NewLineSource(r io.Reader, log logrus.FieldLogger) *LineSource {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &LineSource{r: r, log: log}
}

// Skipped reports how many malformed lines have been dropped so far.
func (s *LineSource) Skipped() int64 {
	return s.skipped.Load()
}

// Stream implements Source. Reading is not interruptible, so a blocked read
// only notices ctx once the next line arrives.
func (s *LineSource) Stream(ctx context.Context, emit func(gesture.Coordinate) error) error {
	scanner := bufio.NewScanner(s.r)
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		p, err := ParseCoordinate(text)
		if err != nil {
			s.skipped.Add(1)
			s.log.WithField("line", line).WithError(err).Debug("skipping malformed pointer line")
			continue
		}
		if err := emit(p); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read pointer input: %w", err)
	}
	return nil
}

// ParseCoordinate parses "x y" or "x,y".
func ParseCoordinate(text string) (gesture.Coordinate, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return gesture.Coordinate{}, fmt.Errorf("expected 2 values, got %d", len(fields))
	}

	x, err := parseAxis(fields[0])
	if err != nil {
		return gesture.Coordinate{}, fmt.Errorf("x: %w", err)
	}
	y, err := parseAxis(fields[1])
	if err != nil {
		return gesture.Coordinate{}, fmt.Errorf("y: %w", err)
	}
	return gesture.Coordinate{X: x, Y: y}, nil
}

func parseAxis(s string) (int, error) {
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("out of range: %s", s)
	}
	return int(f), nil
}
