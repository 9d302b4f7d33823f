package schedule

import (
	"time"
)

// Policy controls which days make a pickup point count as open.
type Policy string

const (
	// PolicyDay matches only today's window against the clock.
	PolicyDay Policy = "day"
	// PolicyDayPlus matches today against the clock, plus any window
	// within the forward look-ahead regardless of clock time.
	PolicyDayPlus Policy = "day_plus"
	// PolicyNextDayPlus excludes today entirely; any window from tomorrow
	// through the look-ahead counts.
	PolicyNextDayPlus Policy = "next_day_plus"
)

func (p Policy) Valid() bool {
	switch p {
	case PolicyDay, PolicyDayPlus, PolicyNextDayPlus:
		return true
	}
	return false
}

type localRef struct {
	day  int
	hhmm int
}

// Batch evaluates open/closed decisions against one reference instant.
// The requester's local day/time is computed once at construction; each
// distinct point timezone is resolved at most once per batch, since large
// candidate sets usually share a handful of zones.
//
// Note: the look-ahead window is measured from the requester's weekday,
// not the point's. Only the clock comparison switches to the point's own
// timezone. This mirrors the legacy behaviour and is deliberately kept.
type Batch struct {
	now      time.Time
	zoneName string
	ref      localRef
	refs     map[string]localRef
}

// NewBatch fixes the reference instant in the requester's location.
func NewBatch(now time.Time, requester *time.Location) *Batch {
	if requester == nil {
		requester = time.UTC
	}
	local := now.In(requester)
	return &Batch{
		now:      now,
		zoneName: requester.String(),
		ref:      localRef{day: int(local.Weekday()), hhmm: hhmmOf(local)},
		refs:     make(map[string]localRef),
	}
}

func hhmmOf(t time.Time) int {
	return t.Hour()*100 + t.Minute()
}

// pointRef resolves "today/now" in the point's timezone, falling back to
// the requester's reference when the zone name is empty, equal to the
// requester's, or unknown to the tz database.
func (b *Batch) pointRef(zone string) localRef {
	if zone == "" || zone == b.zoneName {
		return b.ref
	}
	if ref, ok := b.refs[zone]; ok {
		return ref
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		b.refs[zone] = b.ref
		return b.ref
	}
	local := b.now.In(loc)
	ref := localRef{day: int(local.Weekday()), hhmm: hhmmOf(local)}
	b.refs[zone] = ref
	return ref
}

// Open decides whether a point with the given schedule and timezone is
// open under the policy. lookaheadDays is only consulted by the day-based
// look-ahead policies.
func (b *Batch) Open(s Schedule, zone string, policy Policy, lookaheadDays int) bool {
	for _, w := range s {
		if policy != PolicyDay {
			delta := (w.Day - b.ref.day + 7) % 7
			if delta >= 1 && delta <= lookaheadDays {
				return true
			}
		}
		if policy == PolicyNextDayPlus {
			continue
		}
		ref := b.pointRef(zone)
		if ref.day != w.Day {
			continue
		}
		// A 0/0 window means open all day. The unknown sentinel fails both
		// clauses and is never matched as open.
		if (ref.hhmm >= w.Start && (ref.hhmm <= w.End || w.End == 0)) || (w.Start == 0 && w.End == 0) {
			return true
		}
	}
	return false
}
