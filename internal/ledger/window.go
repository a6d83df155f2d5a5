package ledger

import "time"

// Window is a half-open calendar-month range [Start, End) used to scope all
// monthly computations.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// MonthWindow returns the window covering the given calendar month.
func MonthWindow(year int, month time.Month, loc *time.Location) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// CurrentMonth returns the window covering now's calendar month.
func CurrentMonth(now time.Time) Window {
	return MonthWindow(now.Year(), now.Month(), now.Location())
}

// Contains reports whether t falls inside the window. The start instant is
// included, the end instant is not.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
