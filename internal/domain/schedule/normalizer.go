package schedule

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnknownFormat is returned for a RawHours with a format this package
// does not recognize. The set of formats is closed; new vendor feeds must
// add a variant here instead of dispatching on a free-form name.
var ErrUnknownFormat = errors.New("unknown opening-hours format")

// Format tags the shape of vendor-supplied opening hours.
type Format int

const (
	// FormatFreeText is human-readable weekday/hour text, e.g.
	// "E-R 0900-1800 L 1000-1400".
	FormatFreeText Format = iota
	// FormatSlots is a structured list of weekday slots where weekday runs
	// 1..7 with 7=Sunday and times are "HH:MM" strings.
	FormatSlots
)

// Slot is one structured opening-hours entry as delivered by feeds that
// are already near-canonical.
type Slot struct {
	Weekday  int
	TimeFrom string
	TimeTo   string
}

// RawHours is vendor-supplied opening-hours data before normalization.
// Text is consulted by FormatSlots as a fallback when the slot list is
// empty (some feeds ship a free-text availability next to empty slots).
type RawHours struct {
	Format Format
	Text   string
	Slots  []Slot
}

var normalizers = map[Format]func(RawHours) Schedule{
	FormatFreeText: normalizeFreeText,
	FormatSlots:    normalizeSlots,
}

// Normalize converts raw opening hours into a canonical Schedule. Malformed
// input never fails: it degrades to the unknown-hours sentinel so that
// downstream evaluation can carry on. Only an unrecognized format is an
// error.
func Normalize(raw RawHours) (Schedule, error) {
	fn, ok := normalizers[raw.Format]
	if !ok {
		return nil, ErrUnknownFormat
	}
	return fn(raw), nil
}

var hourRangePattern = regexp.MustCompile(`^([0-9]{1,4})(-+)([0-9]{1,4})`)

// roundTheClock reports whether the text advertises 24h service ("24h" in
// most feeds, "24t" in Estonian ones). Hours like that carry no usable
// windows, so the whole text is kept as the sentinel comment instead.
func roundTheClock(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "24h") || strings.Contains(lower, "24t")
}

func normalizeFreeText(raw RawHours) Schedule {
	text := raw.Text
	if text == "" {
		return Unknown("")
	}
	if roundTheClock(text) {
		return Unknown(text)
	}

	replacer := strings.NewReplacer(".", "", ",", "", ":", "", ";", "")
	text = replacer.Replace(text)
	text = strings.ReplaceAll(text, " -", "-")
	text = strings.ReplaceAll(text, "- ", "-")

	// Scan tokens in reverse so each hour-range token can look back at the
	// weekday token immediately preceding it in the original text. A day
	// assigned by a later-appearing token is never overwritten.
	parts := strings.Split(text, " ")
	assigned := make(map[int]bool)
	var windows Schedule

	for i := len(parts) - 1; i >= 0; i-- {
		matches := hourRangePattern.FindStringSubmatch(parts[i])
		if matches == nil || i == 0 || parts[i-1] == "" {
			continue
		}
		wdays := parts[i-1]

		if len(wdays) == 3 && wdays[1] == '-' {
			if expanded := expandLetterRange(wdays[0], wdays[2]); len(expanded) > 0 {
				wdays = string(expanded)
			}
		}

		start, _ := strconv.Atoi(matches[1])
		end, _ := strconv.Atoi(matches[3])
		for j := 0; j < len(wdays); j++ {
			day, ok := WeekdayForLetter(wdays[j])
			if !ok || assigned[day] {
				continue
			}
			assigned[day] = true
			windows = append(windows, Window{Day: day, Start: start, End: end})
		}
	}

	if len(windows) == 0 {
		return Unknown("")
	}
	return sortByDay(windows)
}

func normalizeSlots(raw RawHours) Schedule {
	if len(raw.Slots) == 0 {
		if roundTheClock(raw.Text) {
			return Unknown(raw.Text)
		}
		return Unknown("")
	}

	assigned := make(map[int]bool, len(raw.Slots))
	windows := make(Schedule, 0, len(raw.Slots))
	for _, slot := range raw.Slots {
		day := slot.Weekday
		if day == 7 {
			day = 0
		}
		if day < 0 || day > 6 || assigned[day] {
			continue
		}
		assigned[day] = true
		start, _ := strconv.Atoi(strings.ReplaceAll(slot.TimeFrom, ":", ""))
		end, _ := strconv.Atoi(strings.ReplaceAll(slot.TimeTo, ":", ""))
		windows = append(windows, Window{Day: day, Start: start, End: end})
	}

	if len(windows) == 0 {
		return Unknown("")
	}
	return sortByDay(windows)
}
