package domain

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire layout of window dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the wire layout of window clock times (24-hour).
	ClockLayout = "15:04"
)

// Window is one display interval of a campaign. Dates are kept at midnight
// UTC, clock times as offsets from midnight.
type Window struct {
	StartDate time.Time
	StartTime time.Duration
	EndDate   time.Time
	EndTime   time.Duration
}

// Contains applies the window predicate to now. Date and clock are compared
// as independent clauses: on every date within [StartDate, EndDate] the
// clock must also fall within [StartTime, EndTime]. This is deliberately not
// a single datetime interval check.
func (w Window) Contains(now time.Time) bool {
	date, clock := splitDateClock(now)
	return (!date.Before(w.StartDate) && clock >= w.StartTime) &&
		(!date.After(w.EndDate) && clock <= w.EndTime)
}

// WithinAnyWindow reports whether now falls inside at least one window. It
// stops at the first match and is false for an empty list.
func WithinAnyWindow(now time.Time, windows []Window) bool {
	for _, w := range windows {
		if w.Contains(now) {
			return true
		}
	}
	return false
}

// WindowArrays is the wire shape of a window list: four parallel arrays.
type WindowArrays struct {
	FromDates []string `json:"from_dates"`
	FromTimes []string `json:"from_times"`
	ToDates   []string `json:"to_dates"`
	ToTimes   []string `json:"to_times"`
}

// Empty reports whether no window component was supplied at all.
func (a WindowArrays) Empty() bool {
	return len(a.FromDates) == 0 && len(a.FromTimes) == 0 && len(a.ToDates) == 0 && len(a.ToTimes) == 0
}

// ParseWindows converts the four parallel arrays into windows. Arrays of
// unequal length or unparsable elements yield ErrInvalidCampaign.
func ParseWindows(a WindowArrays) ([]Window, error) {
	n := len(a.FromDates)
	if len(a.FromTimes) != n || len(a.ToDates) != n || len(a.ToTimes) != n {
		return nil, fmt.Errorf("%w: window arrays have unequal lengths (%d/%d/%d/%d)",
			ErrInvalidCampaign, len(a.FromDates), len(a.FromTimes), len(a.ToDates), len(a.ToTimes))
	}

	windows := make([]Window, 0, n)
	for i := 0; i < n; i++ {
		var (
			w   Window
			err error
		)
		if w.StartDate, err = time.Parse(DateLayout, a.FromDates[i]); err != nil {
			return nil, fmt.Errorf("%w: window %d start date: %v", ErrInvalidCampaign, i, err)
		}
		if w.StartTime, err = parseClock(a.FromTimes[i]); err != nil {
			return nil, fmt.Errorf("%w: window %d start time: %v", ErrInvalidCampaign, i, err)
		}
		if w.EndDate, err = time.Parse(DateLayout, a.ToDates[i]); err != nil {
			return nil, fmt.Errorf("%w: window %d end date: %v", ErrInvalidCampaign, i, err)
		}
		if w.EndTime, err = parseClock(a.ToTimes[i]); err != nil {
			return nil, fmt.Errorf("%w: window %d end time: %v", ErrInvalidCampaign, i, err)
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// FormatWindows is the inverse of ParseWindows.
func FormatWindows(windows []Window) WindowArrays {
	a := WindowArrays{
		FromDates: make([]string, 0, len(windows)),
		FromTimes: make([]string, 0, len(windows)),
		ToDates:   make([]string, 0, len(windows)),
		ToTimes:   make([]string, 0, len(windows)),
	}
	for _, w := range windows {
		a.FromDates = append(a.FromDates, w.StartDate.Format(DateLayout))
		a.FromTimes = append(a.FromTimes, formatClock(w.StartTime))
		a.ToDates = append(a.ToDates, w.EndDate.Format(DateLayout))
		a.ToTimes = append(a.ToTimes, formatClock(w.EndTime))
	}
	return a
}

// splitDateClock reads the wall clock of t in its own location.
func splitDateClock(t time.Time) (time.Time, time.Duration) {
	y, m, d := t.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	clock := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
	return date, clock
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func formatClock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}
