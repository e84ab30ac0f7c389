package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsLeap(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1900, false},
		{1970, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{2100, false},
		{2400, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLeap(tt.year), "year %d", tt.year)
	}
}

func TestDaysIn_MatchesTimePackage(t *testing.T) {
	for y := 1900; y <= 2100; y++ {
		for m := 1; m <= 12; m++ {
			want := time.Date(y, time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC).Day()
			if got := DaysIn(y, m); got != want {
				t.Fatalf("DaysIn(%d, %d) = %d, want %d", y, m, got, want)
			}
		}
	}
}

func TestFirstWeekday_MatchesTimePackage(t *testing.T) {
	for y := 1600; y <= 2400; y++ {
		for m := 1; m <= 12; m++ {
			want := int(time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC).Weekday())
			if got := FirstWeekday(y, m); got != want {
				t.Fatalf("FirstWeekday(%d, %d) = %d, want %d", y, m, got, want)
			}
		}
	}
}

func TestFirstWeekday_KnownDates(t *testing.T) {
	assert.Equal(t, 4, FirstWeekday(1970, 1), "1970-01-01 is a Thursday")
	assert.Equal(t, 6, FirstWeekday(2000, 1), "2000-01-01 is a Saturday")
	assert.Equal(t, 1, FirstWeekday(1900, 1), "1900-01-01 is a Monday")
	assert.Equal(t, 5, FirstWeekday(2100, 1), "2100-01-01 is a Friday")
}

func TestDaysFromCivil(t *testing.T) {
	assert.Equal(t, 0, daysFromCivil(1970, 1, 1))
	assert.Equal(t, -1, daysFromCivil(1969, 12, 31))
	assert.Equal(t, 10957, daysFromCivil(2000, 1, 1))
	assert.Equal(t, 4, weekday(0))
	assert.Equal(t, 3, weekday(-1))
}
