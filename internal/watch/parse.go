// Package watch feeds a ring from progress reports read line by line, the
// engine behind `orbit watch`.
//
// Accepted line formats:
//
//	42%      percentage
//	0.42     fraction (plain numbers up to 1)
//	42       percentage (plain numbers above 1, up to 100)
//	3/10     completed/total unit counts
//
// Blank lines and lines starting with # are skipped.
package watch

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rileyhilliard/orbit/internal/errors"
	"github.com/rileyhilliard/orbit/internal/progress"
)

// Reading is one parsed progress report.
type Reading struct {
	// Fraction is the completion in [0, 1].
	Fraction float64

	// Counted is true for completed/total reports, which carry the counts.
	Counted   bool
	Completed int64
	Total     int64
}

// Apply records the reading on t.
func (r Reading) Apply(t *progress.Tracker) {
	if r.Counted {
		t.Set(r.Completed, r.Total)
		return
	}
	t.SetFraction(r.Fraction)
}

// ParseLine parses a single progress report. ok is false for lines that
// carry no report (blank or comment). Malformed lines return an INPUT error.
func ParseLine(line string) (r Reading, ok bool, err error) {
	s := strings.TrimSpace(line)
	if s == "" || strings.HasPrefix(s, "#") {
		return Reading{}, false, nil
	}

	switch {
	case strings.HasSuffix(s, "%"):
		v, err := parseNumber(strings.TrimSpace(strings.TrimSuffix(s, "%")), line)
		if err != nil {
			return Reading{}, false, err
		}
		return Reading{Fraction: clamp(v / 100)}, true, nil

	case strings.Contains(s, "/"):
		return parseCount(s, line)

	default:
		v, err := parseNumber(s, line)
		if err != nil {
			return Reading{}, false, err
		}
		if v > 1 {
			v /= 100
		}
		return Reading{Fraction: clamp(v)}, true, nil
	}
}

func parseNumber(s, line string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalidLine(line, "expected a number")
	}
	return v, nil
}

func parseCount(s, line string) (Reading, bool, error) {
	parts := strings.SplitN(s, "/", 2)
	completed, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return Reading{}, false, invalidLine(line, "expected whole numbers like 3/10")
	}
	total, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return Reading{}, false, invalidLine(line, "expected whole numbers like 3/10")
	}
	if total <= 0 || completed < 0 {
		return Reading{}, false, invalidLine(line, "total must be positive and completed non-negative")
	}
	if completed > total {
		completed = total
	}
	return Reading{
		Fraction:  float64(completed) / float64(total),
		Counted:   true,
		Completed: completed,
		Total:     total,
	}, true, nil
}

func invalidLine(line, why string) error {
	return errors.New(errors.ErrInput,
		fmt.Sprintf("Can't read progress from %q: %s", strings.TrimSpace(line), why),
		"Write one report per line: 42%, 0.42 or 3/10")
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
