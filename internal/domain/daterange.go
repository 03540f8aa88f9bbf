package domain

import (
	"fmt"
	"math"
	"time"
)

const day = 24 * time.Hour

// DateRange is a stay or a blocked period, from check-in to check-out.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if !end.After(start) {
		return DateRange{}, fmt.Errorf("%w: end date must be after start date", ErrInvalidDateRange)
	}
	return DateRange{Start: start, End: end}, nil
}

// Overlaps reports whether two ranges share at least one instant.
// Bounds are inclusive, so a range ending on the day another starts conflicts with it.
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.Start.After(o.End) && !r.End.Before(o.Start)
}

// Nights rounds the range length up to whole days.
func (r DateRange) Nights() int {
	return ceilDays(r.End.Sub(r.Start))
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(float64(d) / float64(day)))
}
