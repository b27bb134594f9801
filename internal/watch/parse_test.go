package watch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/orbit/internal/errors"
	"github.com/rileyhilliard/orbit/internal/progress"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line     string
		want     float64
		wantOK   bool
		wantErr  bool
		counted  bool
		complete int64
		total    int64
	}{
		{line: "42%", want: 0.42, wantOK: true},
		{line: " 42 % ", want: 0.42, wantOK: true},
		{line: "150%", want: 1, wantOK: true},
		{line: "-5%", want: 0, wantOK: true},
		{line: "0.42", want: 0.42, wantOK: true},
		{line: "1", want: 1, wantOK: true},
		{line: "0", want: 0, wantOK: true},
		{line: "42", want: 0.42, wantOK: true},
		{line: "250", want: 1, wantOK: true},
		{line: "3/10", want: 0.3, wantOK: true, counted: true, complete: 3, total: 10},
		{line: "3 / 4", want: 0.75, wantOK: true, counted: true, complete: 3, total: 4},
		{line: "12/10", want: 1, wantOK: true, counted: true, complete: 10, total: 10},
		{line: "", wantOK: false},
		{line: "   ", wantOK: false},
		{line: "# starting", wantOK: false},
		{line: "lots", wantErr: true},
		{line: "%", wantErr: true},
		{line: "NaN", wantErr: true},
		{line: "inf%", wantErr: true},
		{line: "3/0", wantErr: true},
		{line: "-1/10", wantErr: true},
		{line: "1.5/10", wantErr: true},
		{line: "a/b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			r, ok, err := ParseLine(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrInput))
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.InDelta(t, tt.want, r.Fraction, 1e-9)
			assert.Equal(t, tt.counted, r.Counted)
			if tt.counted {
				assert.Equal(t, tt.complete, r.Completed)
				assert.Equal(t, tt.total, r.Total)
			}
		})
	}
}

func TestParseLine_ErrorMentionsLine(t *testing.T) {
	_, _, err := ParseLine("halfway")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"halfway"`)
	assert.Contains(t, err.Error(), "42%")
}

func TestReading_Apply(t *testing.T) {
	tracker := progress.NewTracker(100)

	Reading{Fraction: 0.25}.Apply(tracker)
	assert.Equal(t, 0.25, tracker.FractionCompleted())

	Reading{Fraction: 0.3, Counted: true, Completed: 3, Total: 10}.Apply(tracker)
	assert.Equal(t, int64(10), tracker.Total())
	assert.Equal(t, int64(3), tracker.Completed())
}

func TestReading_Apply_CountedIsOneUpdate(t *testing.T) {
	tracker := progress.NewTracker(0)
	Reading{Fraction: 0.42}.Apply(tracker)

	ch, cancel := tracker.Subscribe()
	defer cancel()

	reading, ok, err := ParseLine("3/10")
	require.NoError(t, err)
	require.True(t, ok)

	observed := make(chan float64, 1)
	go func() {
		<-ch
		observed <- tracker.FractionCompleted()
	}()

	reading.Apply(tracker)

	assert.InDelta(t, 0.3, <-observed, 1e-9, "subscribers only see the finished update")
	assert.Equal(t, int64(3), tracker.Completed())
	assert.Equal(t, int64(10), tracker.Total())
}
