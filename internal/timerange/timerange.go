// Package timerange aggregates per-day hours over inclusive date ranges.
package timerange

import (
	"errors"
	"fmt"
	"time"
)

// ErrEndBeforeStart is returned when a range's end date precedes its start.
var ErrEndBeforeStart = errors.New("end date must be >= start date")

// Range is an inclusive pair of calendar dates.
type Range struct {
	Start time.Time
	End   time.Time
}

// New parses ISO (YYYY-MM-DD) start and end dates into a Range.
func New(start, end string) (Range, error) {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return Range{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return Range{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if e.Before(s) {
		return Range{}, ErrEndBeforeStart
	}
	return Range{Start: s, End: e}, nil
}

func isWorkday(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// Days counts the dates in the range, restricted to Mon-Fri when
// workdaysOnly is set.
func (r Range) Days(workdaysOnly bool) int {
	count := 0
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		if workdaysOnly && !isWorkday(d) {
			continue
		}
		count++
	}
	return count
}

// SumDaily totals the table's hours over the range's filtered day-set.
// Dates absent from the table contribute 0.
func (r Range) SumDaily(table map[time.Time]float64, workdaysOnly bool) float64 {
	total := 0.0
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		if workdaysOnly && !isWorkday(d) {
			continue
		}
		total += table[d]
	}
	return total
}

// Estimate is a three-point hours projection for a day count.
type Estimate struct {
	Low  float64
	Mid  float64
	High float64
}

// EstimateFor projects dayCount days at the given hours-per-day rates.
func EstimateFor(dayCount int, lowRate, midRate, highRate float64) Estimate {
	days := float64(dayCount)
	return Estimate{
		Low:  days * lowRate,
		Mid:  days * midRate,
		High: days * highRate,
	}
}
