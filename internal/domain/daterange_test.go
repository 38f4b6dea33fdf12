package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDateRange_InvertedRangeFails(t *testing.T) {
	_, err := NewDateRange(date(2025, time.February, 1), date(2025, time.January, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNewDateRange_NormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("NPT", 5*3600+45*60)
	start := time.Date(2025, time.January, 1, 18, 30, 0, 0, loc)

	r, err := NewDateRange(start, date(2025, time.January, 31))
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.January, 1), r.Start)
}

func TestDateRange_Days(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "single day",
			start: date(2025, time.March, 15),
			end:   date(2025, time.March, 15),
			want:  1,
		},
		{
			name:  "january",
			start: date(2025, time.January, 1),
			end:   date(2025, time.January, 31),
			want:  31,
		},
		{
			name:  "non-leap year",
			start: date(2025, time.January, 1),
			end:   date(2025, time.December, 31),
			want:  365,
		},
		{
			name:  "leap year",
			start: date(2024, time.January, 1),
			end:   date(2024, time.December, 31),
			want:  366,
		},
		{
			name:  "across leap february",
			start: date(2024, time.February, 28),
			end:   date(2024, time.March, 1),
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewDateRange(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Days())
		})
	}
}

func TestDateRange_Each_NoSkipsNoRepeats(t *testing.T) {
	r, err := NewDateRange(date(2024, time.February, 25), date(2024, time.March, 3))
	require.NoError(t, err)

	var visited []time.Time
	err = r.Each(func(day time.Time) error {
		visited = append(visited, day)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, visited, r.Days())
	for i := 1; i < len(visited); i++ {
		assert.Equal(t, visited[i-1].AddDate(0, 0, 1), visited[i],
			"dates must ascend one day at a time")
	}
	// Leap day is visited
	assert.Contains(t, visited, date(2024, time.February, 29))
}

func TestDateRange_Each_Restartable(t *testing.T) {
	r, err := NewDateRange(date(2025, time.June, 1), date(2025, time.June, 3))
	require.NoError(t, err)

	count := func() int {
		n := 0
		_ = r.Each(func(time.Time) error { n++; return nil })
		return n
	}
	assert.Equal(t, 3, count())
	assert.Equal(t, 3, count(), "second walk starts over from the beginning")
}

func TestDateRange_Each_StopsOnError(t *testing.T) {
	r, err := NewDateRange(date(2025, time.June, 1), date(2025, time.June, 30))
	require.NoError(t, err)

	visited := 0
	wantErr := assert.AnError
	err = r.Each(func(time.Time) error {
		visited++
		if visited == 5 {
			return wantErr
		}
		return nil
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 5, visited)
}
