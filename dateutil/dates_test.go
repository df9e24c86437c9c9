package dateutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{"plain date", "2025-10-25", true},
		{"leap day", "2024-02-29", true},
		{"empty", "", false},
		{"wrong order", "25-10-2025", false},
		{"not a date", "yesterday", false},
		{"month out of range", "2025-13-01", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.date))
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		date string
		n    int
		want string
	}{
		{"zero keeps the date", "2025-10-25", 0, "2025-10-25"},
		{"forward one", "2025-10-25", 1, "2025-10-26"},
		{"back one", "2025-10-25", -1, "2025-10-24"},
		{"across month end", "2025-01-31", 1, "2025-02-01"},
		{"across year end", "2024-12-30", 3, "2025-01-02"},
		{"week window", "2025-10-25", 6, "2025-10-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.date, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid date", func(t *testing.T) {
		_, err := AddDays("not-a-date", 1)
		assert.Error(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		forward, err := AddDays("2025-03-08", 10)
		require.NoError(t, err)
		back, err := AddDays(forward, -10)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-08", back)
	})
}

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2025-10-25", "saturday"},
		{"2025-10-26", "sunday"},
		{"2025-10-27", "monday"},
		{"2024-02-29", "thursday"},
	}
	for _, tt := range tests {
		got, err := WeekdayOf(tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := WeekdayOf("2025-99-99")
	assert.Error(t, err)
}

func TestHeading(t *testing.T) {
	got, err := Heading("2025-10-25")
	require.NoError(t, err)
	assert.Equal(t, "Saturday, October 25, 2025", got)
}

func TestToday(t *testing.T) {
	assert.True(t, Valid(Today()))
}
