package schedule

// Weekday letter codes used by vendor feeds (Estonian single-letter codes):
// E=Monday .. L=Saturday, P=Sunday. Day numbers follow time.Weekday
// (0=Sunday .. 6=Saturday). The same circular table drives both the
// free-text normalizer and range expansion so the Sunday wrap is handled
// in exactly one place.
var weekdayByLetter = map[byte]int{
	'P': 0,
	'E': 1,
	'T': 2,
	'K': 3,
	'N': 4,
	'R': 5,
	'L': 6,
}

var letterByWeekday = map[int]byte{
	0: 'P',
	1: 'E',
	2: 'T',
	3: 'K',
	4: 'N',
	5: 'R',
	6: 'L',
}

// WeekdayForLetter maps a single-letter weekday code to its day number.
func WeekdayForLetter(letter byte) (int, bool) {
	day, ok := weekdayByLetter[letter]
	return day, ok
}

// expandLetterRange expands an inclusive "X-Y" weekday range into the
// letters it covers. Sunday as the range end is treated as day 7 so that
// e.g. "E-P" covers Monday through Sunday; every emitted day is remapped
// back to 0..6. A reversed range counts downward, so "L-T" covers
// Saturday back through Tuesday. An unknown letter yields no expansion.
func expandLetterRange(from, to byte) []byte {
	start, okFrom := weekdayByLetter[from]
	end, okTo := weekdayByLetter[to]
	if !okFrom || !okTo {
		return nil
	}
	if end == 0 {
		end = 7
	}
	step := 1
	if start > end {
		step = -1
	}
	letters := make([]byte, 0, 7)
	for day := start; ; day += step {
		d := day
		if d == 7 {
			d = 0
		}
		letters = append(letters, letterByWeekday[d])
		if day == end {
			break
		}
	}
	return letters
}
