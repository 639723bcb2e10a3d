//go:build unit

package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"voicefront/internal/pkg/clock"
	"voicefront/internal/pkg/dates"
)

// Wednesday, 2025-02-12, 10:00 Dublin time.
func fixedClock(t *testing.T) *clock.MockClock {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Dublin")
	require.NoError(t, err)
	return clock.NewMockClock(time.Date(2025, 2, 12, 10, 0, 0, 0, loc))
}

func newResolver(t *testing.T) *dates.Resolver {
	t.Helper()
	r, err := dates.NewResolver(fixedClock(t), "Europe/Dublin")
	require.NoError(t, err)
	return r
}

func TestResolveDate(t *testing.T) {
	r := newResolver(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"today", "today", "2025-02-12"},
		{"tomorrow", "tomorrow", "2025-02-13"},
		{"next weekday", "next saturday", "2025-02-15"},
		{"in n days", "in 3 days", "2025-02-15"},
		{"iso literal", "2025-02-15", "2025-02-15"},
		{"iso round trip", "2025-03-01", "2025-03-01"},
		{"ordinal future this month", "the 20th", "2025-02-20"},
		{"ordinal today counts", "the 12th", "2025-02-12"},
		{"ordinal past rolls to next month", "the 5th", "2025-03-05"},
		{"ordinal day missing from month", "the 31st", "2025-03-31"},
		{"month day future", "february 20", "2025-02-20"},
		{"month day past rolls to next year", "february 5", "2026-02-05"},
		{"explicit year stays put", "february 5 2024", "2024-02-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ResolveDate(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.ISO())
		})
	}
}

func TestResolveDateRoundTrip(t *testing.T) {
	r := newResolver(t)

	first, err := r.ResolveDate("next saturday")
	require.NoError(t, err)

	second, err := r.ResolveDate(first.ISO())
	require.NoError(t, err)
	require.True(t, first.Equal(second))
}

func TestResolveDateErrors(t *testing.T) {
	r := newResolver(t)

	_, err := r.ResolveDate("")
	require.ErrorIs(t, err, dates.ErrNoDate)

	for _, input := range []string{"banana", "sometime nice", "the 99th"} {
		_, err := r.ResolveDate(input)
		require.ErrorIs(t, err, dates.ErrUnknownDate, "input %q", input)
	}
}

func TestResolvedFormats(t *testing.T) {
	r := newResolver(t)

	got, err := r.ResolveDate("2025-02-15")
	require.NoError(t, err)
	require.Equal(t, "20250215", got.Compact())
	require.Equal(t, "Saturday, February 15, 2025", got.Label)
}

func TestResolveTimeOfDay(t *testing.T) {
	tests := []struct {
		input string
		want  dates.TimeOfDay
	}{
		{"2pm", dates.TimeOfDay{Hour: 14}},
		{"2:30 PM", dates.TimeOfDay{Hour: 14, Minute: 30}},
		{"14:30", dates.TimeOfDay{Hour: 14, Minute: 30}},
		{"12am", dates.TimeOfDay{Hour: 0}},
		{"noon", dates.TimeOfDay{Hour: 12}},
	}
	for _, tt := range tests {
		got, err := dates.ResolveTimeOfDay(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		require.Equal(t, tt.want, got, "input %q", tt.input)
	}

	for _, input := range []string{"", "afternoon", "2", "25:00"} {
		_, err := dates.ResolveTimeOfDay(input)
		require.ErrorIs(t, err, dates.ErrUnknownTime, "input %q", input)
	}
}

func TestResolveDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"90 minutes", 90 * time.Minute},
		{"1.5 hours", 90 * time.Minute},
		{"half an hour", 30 * time.Minute},
		{"2 hours", 2 * time.Hour},
		{"1 hour 30 mins", 90 * time.Minute},
	}
	for _, tt := range tests {
		got, err := dates.ResolveDuration(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		require.Equal(t, tt.want, got, "input %q", tt.input)
	}

	_, err := dates.ResolveDuration("a while")
	require.ErrorIs(t, err, dates.ErrUnknownDuration)
}

func TestResolveQuantity(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"4", 4},
		{"two", 2},
		{"a couple of people", 2},
		{"3 adults", 3},
		{"", 0},
		{"lots", 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, dates.ResolveQuantity(tt.input), "input %q", tt.input)
	}
}
