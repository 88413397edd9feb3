package isodate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AcceptedLayouts(t *testing.T) {
	cases := map[string]time.Time{
		"2024-02-15":                time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		"2024-02-15T08:00:00Z":      time.Date(2024, 2, 15, 8, 0, 0, 0, time.UTC),
		"2024-02-15T08:00:00+02:00": time.Date(2024, 2, 15, 6, 0, 0, 0, time.UTC),
		"2024-02-15T08:30:00":       time.Date(2024, 2, 15, 8, 30, 0, 0, time.UTC),
		" 2024-02-15 ":              time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s: got %s", in, got)
	}
}

func TestParse_Rejects(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "2024-13-01", "2024-02-30", "15/02/2024"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalid, in)
		assert.False(t, Valid(in), in)
	}
}

func TestWholeDays(t *testing.T) {
	day := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, WholeDays(day, day.AddDate(0, 0, 2)))
	assert.Equal(t, 0, WholeDays(day, day))
	assert.Equal(t, 1, WholeDays(day, day.Add(time.Hour)))
	assert.Equal(t, 2, WholeDays(day, day.Add(25*time.Hour)))
	assert.LessOrEqual(t, WholeDays(day, day.AddDate(0, 0, -1)), 0)
}
