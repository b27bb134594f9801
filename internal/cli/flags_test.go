package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/orbit/internal/config"
	"github.com/rileyhilliard/orbit/internal/errors"
	"github.com/rileyhilliard/orbit/internal/paint"
	"github.com/rileyhilliard/orbit/internal/ring"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCols int
		wantRows int
		wantErr  bool
	}{
		{name: "default size", input: "12x6", wantCols: 12, wantRows: 6},
		{name: "uppercase separator", input: "16X8", wantCols: 16, wantRows: 8},
		{name: "surrounding spaces", input: " 4x2 ", wantCols: 4, wantRows: 2},
		{name: "smallest", input: "1x1", wantCols: 1, wantRows: 1},
		{name: "missing rows", input: "12", wantErr: true},
		{name: "extra part", input: "1x2x3", wantErr: true},
		{name: "not a number", input: "axb", wantErr: true},
		{name: "zero", input: "0x6", wantErr: true},
		{name: "negative", input: "12x-1", wantErr: true},
		{name: "too large", input: "201x6", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows, err := ParseSize(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCols, cols)
			assert.Equal(t, tt.wantRows, rows)
		})
	}
}

func TestParseProgress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "fraction", input: "0.42", want: 0.42},
		{name: "percentage", input: "42%", want: 0.42},
		{name: "whole percent", input: "100%", want: 1},
		{name: "spaces", input: " 0.5 ", want: 0.5},
		{name: "above one clamps", input: "1.5", want: 1},
		{name: "negative clamps", input: "-0.2", want: 0},
		{name: "percentage above 100 clamps", input: "250%", want: 1},
		{name: "not a number", input: "half", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProgress(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrInput))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseColorFlag(t *testing.T) {
	c, err := ParseColorFlag("fill", "#ff8800")
	require.NoError(t, err)
	assert.Equal(t, "#ff8800", c.Hex())

	_, err = ParseColorFlag("track", "not-a-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--track 'not-a-color'")
}

func TestRingFlagsOptions(t *testing.T) {
	c := config.DefaultConfig()

	t.Run("no flags uses config", func(t *testing.T) {
		opts, err := RingFlags{}.Options(c)
		require.NoError(t, err)

		r := ring.New(opts...)
		cols, rows := r.Size()
		assert.Equal(t, c.Ring.Width, cols)
		assert.Equal(t, c.Ring.Height, rows)
		assert.Nil(t, r.ProgressTint())
		assert.Nil(t, r.TrackTint())
	})

	t.Run("flags override config", func(t *testing.T) {
		opts, err := RingFlags{Size: "8x4", Fill: "orange", Track: "#222222"}.Options(c)
		require.NoError(t, err)

		r := ring.New(opts...)
		cols, rows := r.Size()
		assert.Equal(t, 8, cols)
		assert.Equal(t, 4, rows)
		require.NotNil(t, r.ProgressTint())
		assert.True(t, r.ProgressTint().AlmostEqual(paint.MustParse("orange")))
		require.NotNil(t, r.TrackTint())
		assert.Equal(t, "#222222", r.TrackTint().Hex())
	})

	t.Run("bad values fail", func(t *testing.T) {
		for _, f := range []RingFlags{{Size: "big"}, {Fill: "nope"}, {Track: "nope"}} {
			_, err := f.Options(c)
			assert.Error(t, err)
		}
	})
}

func TestRingFlagsOverrideTints(t *testing.T) {
	fill := paint.MustParse("red")
	r := ring.New(ring.WithProgressTint(fill))

	require.NoError(t, RingFlags{Track: "blue"}.overrideTints(r))
	assert.True(t, r.ProgressTint().AlmostEqual(fill), "unset flags keep the ring's tint")
	assert.True(t, r.TrackTint().AlmostEqual(paint.MustParse("blue")))

	require.NoError(t, RingFlags{Fill: "green"}.overrideTints(r))
	assert.True(t, r.ProgressTint().AlmostEqual(paint.MustParse("green")))
}

func TestAddRingFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var flags RingFlags
	AddRingFlags(cmd, &flags)

	for _, name := range []string{"size", "fill", "track"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "expected flag %q", name)
	}

	require.NoError(t, cmd.Flags().Parse([]string{"--size", "10x5", "--fill", "teal"}))
	assert.Equal(t, "10x5", flags.Size)
	assert.Equal(t, "teal", flags.Fill)
	assert.Empty(t, flags.Track)
}
