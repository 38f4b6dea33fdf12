package domain

import (
	"fmt"
	"time"
)

// DateRange is an inclusive range of calendar days. Both bounds are
// normalized to midnight UTC on construction.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange creates an inclusive date range.
// Returns ErrInvalidRange if start is after end.
func NewDateRange(start, end time.Time) (DateRange, error) {
	s := midnightUTC(start)
	e := midnightUTC(end)
	if s.After(e) {
		return DateRange{}, fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidRange, s.Format("2006-01-02"), e.Format("2006-01-02"))
	}
	return DateRange{Start: s, End: e}, nil
}

// Days returns the inclusive number of calendar days in the range.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Each walks the range one calendar day at a time in ascending order,
// calling fn with each day at midnight UTC. Walking stops at the first
// error returned by fn. The walk restarts from Start on every call.
func (r DateRange) Each(fn func(day time.Time) error) error {
	for day := r.Start; !day.After(r.End); day = day.AddDate(0, 0, 1) {
		if err := fn(day); err != nil {
			return err
		}
	}
	return nil
}

func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
