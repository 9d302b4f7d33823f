package schedule

import (
	"errors"
	"sort"
)

var (
	ErrDuplicateDay  = errors.New("schedule has more than one window for a day")
	ErrInvalidDay    = errors.New("window day out of range")
	ErrInvalidWindow = errors.New("window start is after end")
)

// UnknownHours marks a window whose hours could not be determined from the
// vendor feed. Such a window is informational only and never matches as
// open by clock comparison.
const UnknownHours = -1

// Window is one weekday's opening hours. Day uses 0=Sunday..6=Saturday.
// Start and End are 24h times encoded as HHMM integers (900 = 09:00),
// or UnknownHours for both when the hours are not determinable.
type Window struct {
	Day     int    `json:"day"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Comment string `json:"comment,omitempty"`
}

// IsUnknown reports whether the window carries the unknown-hours sentinel.
func (w Window) IsUnknown() bool {
	return w.Start == UnknownHours && w.End == UnknownHours
}

// Schedule is a canonical weekly schedule: at most one window per weekday,
// sorted by day. Absence of a day means closed that day.
type Schedule []Window

// Unknown builds the seven-day unknown-hours schedule. The comment carries
// the original feed text when one exists (e.g. "24h avatud"), or is empty
// when nothing usable could be parsed.
func Unknown(comment string) Schedule {
	s := make(Schedule, 0, 7)
	for day := 0; day <= 6; day++ {
		s = append(s, Window{Day: day, Start: UnknownHours, End: UnknownHours, Comment: comment})
	}
	return s
}

// IsUnknown reports whether every window carries the sentinel.
func (s Schedule) IsUnknown() bool {
	if len(s) == 0 {
		return false
	}
	for _, w := range s {
		if !w.IsUnknown() {
			return false
		}
	}
	return true
}

// Validate checks the canonical-form invariants.
func (s Schedule) Validate() error {
	seen := make(map[int]bool, len(s))
	for _, w := range s {
		if w.Day < 0 || w.Day > 6 {
			return ErrInvalidDay
		}
		if seen[w.Day] {
			return ErrDuplicateDay
		}
		seen[w.Day] = true
		if w.IsUnknown() {
			continue
		}
		if w.Start > w.End && w.End != 0 {
			return ErrInvalidWindow
		}
	}
	return nil
}

func (s Schedule) Equal(other Schedule) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func sortByDay(s Schedule) Schedule {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Day < s[j].Day })
	return s
}
