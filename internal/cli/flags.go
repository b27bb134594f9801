package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/orbit/internal/config"
	"github.com/rileyhilliard/orbit/internal/errors"
	"github.com/rileyhilliard/orbit/internal/paint"
	"github.com/rileyhilliard/orbit/internal/ring"
)

// RingFlags holds the appearance flags shared by render and watch.
type RingFlags struct {
	Size  string
	Fill  string
	Track string
}

// AddRingFlags registers --size, --fill and --track on a command.
func AddRingFlags(cmd *cobra.Command, flags *RingFlags) {
	cmd.Flags().StringVar(&flags.Size, "size", "", "ring size in cells, COLSxROWS (e.g., 12x6)")
	cmd.Flags().StringVar(&flags.Fill, "fill", "", "fill color (hex, ANSI index or name)")
	cmd.Flags().StringVar(&flags.Track, "track", "", "track color (hex, ANSI index or name)")
}

// Options turns the flags into ring options on top of the config's.
func (f RingFlags) Options(c *config.Config) ([]ring.Option, error) {
	opts := c.RingOptions()

	if f.Size != "" {
		cols, rows, err := ParseSize(f.Size)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ring.WithSize(cols, rows))
	}

	if f.Fill != "" {
		fill, err := ParseColorFlag("fill", f.Fill)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ring.WithProgressTint(fill))
	}

	if f.Track != "" {
		track, err := ParseColorFlag("track", f.Track)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ring.WithTrackTint(track))
	}

	return opts, nil
}

// ParseSize parses a COLSxROWS size like "12x6".
func ParseSize(s string) (cols, rows int, err error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return 0, 0, invalidSize(s)
	}
	cols, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, invalidSize(s)
	}
	rows, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, invalidSize(s)
	}
	if cols < 1 || rows < 1 || cols > config.MaxRingCells || rows > config.MaxRingCells {
		return 0, 0, invalidSize(s)
	}
	return cols, rows, nil
}

func invalidSize(s string) error {
	return errors.New(errors.ErrInput,
		fmt.Sprintf("'%s' doesn't look like a ring size", s),
		fmt.Sprintf("Use COLSxROWS with each side between 1 and %d, like 12x6.", config.MaxRingCells))
}

// ParseColorFlag parses a color given to the named flag.
func ParseColorFlag(flag, value string) (paint.Color, error) {
	c, err := paint.Parse(value)
	if err != nil {
		return paint.Color{}, errors.WrapWithCode(err, errors.ErrInput,
			fmt.Sprintf("--%s '%s' isn't a color", flag, value),
			"Try a hex value like #ff8800, an ANSI index like 208, or a name like orange.")
	}
	return c, nil
}

// ParseProgress parses a progress value: a fraction like 0.42 or a
// percentage like 42%.
func ParseProgress(s string) (float64, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrInput,
			fmt.Sprintf("'%s' isn't a progress value", s),
			"Use a fraction like 0.42 or a percentage like 42%.")
	}
	if percent {
		v /= 100
	}
	return ring.Clamp(v), nil
}

// overrideTints reapplies explicit --fill and --track values to a ring whose
// tints were decoded from a layout file.
func (f RingFlags) overrideTints(r *ring.Ring) error {
	if f.Fill != "" {
		fill, err := ParseColorFlag("fill", f.Fill)
		if err != nil {
			return err
		}
		r.SetProgressTint(&fill)
	}
	if f.Track != "" {
		track, err := ParseColorFlag("track", f.Track)
		if err != nil {
			return err
		}
		r.SetTrackTint(&track)
	}
	return nil
}
