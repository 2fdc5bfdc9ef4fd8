package analytics

import (
	"fmt"
	"time"

	"github.com/grovemarket/marketplace-manager/internal/entity"
)

const monthYearLayout = "2006-01"

// defaultWindowMonths is how far back the window opens when the caller
// supplies no start month.
const defaultWindowMonths = 6

// resolveTimeRange turns the optional "YYYY-MM" pair into a concrete
// window. A given start month opens at its first day; a given end month
// closes at the first instant of the following month, so the last instant
// of that month is still inside the window. Omitted bounds default to
// now minus six months and now respectively.
func resolveTimeRange(startMonthYear, endMonthYear string, now time.Time) (entity.TimeRange, error) {
	tr := entity.TimeRange{
		From: now.AddDate(0, -defaultWindowMonths, 0),
		To:   now,
	}

	if startMonthYear != "" {
		t, err := time.ParseInLocation(monthYearLayout, startMonthYear, time.UTC)
		if err != nil {
			return entity.TimeRange{}, fmt.Errorf("start month %q: %w", startMonthYear, ErrInvalidDateFormat)
		}
		tr.From = t
	}

	if endMonthYear != "" {
		t, err := time.ParseInLocation(monthYearLayout, endMonthYear, time.UTC)
		if err != nil {
			return entity.TimeRange{}, fmt.Errorf("end month %q: %w", endMonthYear, ErrInvalidDateFormat)
		}
		tr.To = t.AddDate(0, 1, 0)
	}

	if tr.To.Before(tr.From) {
		return entity.TimeRange{}, fmt.Errorf("window ends before it starts: %w", ErrInvalidDateFormat)
	}

	return tr, nil
}

// monthsBetween counts the calendar-month difference between the window
// bounds. It is month based, not day based: a window inside a single
// month yields 1 rather than 0 so averages never divide by zero.
func monthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if months < 1 {
		return 1
	}
	return months
}

// shiftBackOneMonth moves both window bounds back one calendar month,
// producing the immediately preceding window of identical month span.
func shiftBackOneMonth(tr entity.TimeRange) entity.TimeRange {
	return entity.TimeRange{
		From: tr.From.AddDate(0, -1, 0),
		To:   tr.To.AddDate(0, -1, 0),
	}
}

// firstOfMonth truncates t to the first instant of its month in UTC.
// Monthly revenue buckets are keyed by this value.
func firstOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
