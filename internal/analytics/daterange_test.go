package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTimeRangeDefaults(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

	tr, err := resolveTimeRange("", "", now)
	require.NoError(t, err)
	assert.True(t, tr.From.Equal(now.AddDate(0, -6, 0)))
	assert.True(t, tr.To.Equal(now))
}

func TestResolveTimeRangeExplicit(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

	tr, err := resolveTimeRange("2024-01", "2024-03", now)
	require.NoError(t, err)
	assert.True(t, tr.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	// the end month itself stays inside the window
	assert.True(t, tr.To.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestResolveTimeRangeMixedBounds(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

	tr, err := resolveTimeRange("2024-01", "", now)
	require.NoError(t, err)
	assert.True(t, tr.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, tr.To.Equal(now))

	tr, err = resolveTimeRange("", "2024-05", now)
	require.NoError(t, err)
	assert.True(t, tr.From.Equal(now.AddDate(0, -6, 0)))
	assert.True(t, tr.To.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestResolveTimeRangeBadFormat(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"March-2024", "2024-13", "2024", "2024-1-1", "garbage"} {
		_, err := resolveTimeRange(in, "", now)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrInvalidDateFormat), in)

		_, err = resolveTimeRange("", in, now)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrInvalidDateFormat), in)
	}
}

func TestResolveTimeRangeReversedWindow(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	_, err := resolveTimeRange("2024-05", "2024-01", now)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDateFormat))
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "three months",
			from: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			want: 3,
		},
		{
			name: "across year boundary",
			from: time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			want: 3,
		},
		{
			name: "same month floors to one",
			from: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "single full month",
			from: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, monthsBetween(tt.from, tt.to))
		})
	}
}

func TestShiftBackOneMonth(t *testing.T) {
	tr, err := resolveTimeRange("2024-03", "2024-04", time.Time{})
	require.NoError(t, err)

	prev := shiftBackOneMonth(tr)
	assert.True(t, prev.From.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, prev.To.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFirstOfMonth(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2024, 3, 1, 1, 30, 0, 0, loc) // 2024-02-29T22:30Z

	got := firstOfMonth(in)
	assert.True(t, got.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
}
