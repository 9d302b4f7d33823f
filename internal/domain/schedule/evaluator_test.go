//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"pickup-options-service/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wedNoonUTC is Wednesday 2025-06-11 12:00 UTC, the reference instant used
// by most cases below.
var wedNoonUTC = time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)

func TestBatchOpenByClock(t *testing.T) {
	batch := schedule.NewBatch(wedNoonUTC, time.UTC)

	t.Run("inside today's window", func(t *testing.T) {
		s := schedule.Schedule{{Day: 3, Start: 900, End: 1700}}
		assert.True(t, batch.Open(s, "UTC", schedule.PolicyDay, 1))
	})

	t.Run("outside today's window", func(t *testing.T) {
		s := schedule.Schedule{{Day: 3, Start: 1300, End: 1700}}
		assert.False(t, batch.Open(s, "UTC", schedule.PolicyDay, 1))
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		atStart := schedule.Schedule{{Day: 3, Start: 1200, End: 1700}}
		assert.True(t, batch.Open(atStart, "UTC", schedule.PolicyDay, 1))

		atEnd := schedule.Schedule{{Day: 3, Start: 900, End: 1200}}
		assert.True(t, batch.Open(atEnd, "UTC", schedule.PolicyDay, 1))
	})

	t.Run("no window for today", func(t *testing.T) {
		s := schedule.Schedule{{Day: 4, Start: 900, End: 1700}}
		assert.False(t, batch.Open(s, "UTC", schedule.PolicyDay, 1))
	})

	t.Run("zero end keeps the window open past start", func(t *testing.T) {
		s := schedule.Schedule{{Day: 3, Start: 900, End: 0}}
		assert.True(t, batch.Open(s, "UTC", schedule.PolicyDay, 1))

		beforeStart := schedule.Schedule{{Day: 3, Start: 1300, End: 0}}
		assert.False(t, batch.Open(beforeStart, "UTC", schedule.PolicyDay, 1))
	})

	t.Run("zero zero window is open all day", func(t *testing.T) {
		s := schedule.Schedule{{Day: 3, Start: 0, End: 0}}
		assert.True(t, batch.Open(s, "UTC", schedule.PolicyDay, 1))
	})

	t.Run("unknown hours never match", func(t *testing.T) {
		s := schedule.Unknown("24h")
		assert.False(t, batch.Open(s, "UTC", schedule.PolicyDay, 1))
		assert.False(t, batch.Open(s, "UTC", schedule.PolicyDayPlus, 0))
	})
}

func TestBatchOpenUsesPointTimezone(t *testing.T) {
	// Wednesday 23:30 UTC is already Thursday in Auckland.
	lateWed := time.Date(2025, 6, 11, 23, 30, 0, 0, time.UTC)
	batch := schedule.NewBatch(lateWed, time.UTC)

	thursday := schedule.Schedule{{Day: 4, Start: 900, End: 1700}}
	assert.True(t, batch.Open(thursday, "Pacific/Auckland", schedule.PolicyDay, 1))
	assert.False(t, batch.Open(thursday, "UTC", schedule.PolicyDay, 1))

	wednesday := schedule.Schedule{{Day: 3, Start: 2200, End: 2359}}
	assert.True(t, batch.Open(wednesday, "UTC", schedule.PolicyDay, 1))
	assert.False(t, batch.Open(wednesday, "Pacific/Auckland", schedule.PolicyDay, 1))
}

func TestBatchOpenFallsBackOnBadZone(t *testing.T) {
	batch := schedule.NewBatch(wedNoonUTC, time.UTC)
	s := schedule.Schedule{{Day: 3, Start: 900, End: 1700}}

	assert.True(t, batch.Open(s, "Not/AZone", schedule.PolicyDay, 1))
	assert.True(t, batch.Open(s, "", schedule.PolicyDay, 1))
	// Resolved again from the per-batch memo.
	assert.True(t, batch.Open(s, "Not/AZone", schedule.PolicyDay, 1))
}

func TestBatchOpenLookahead(t *testing.T) {
	batch := schedule.NewBatch(wedNoonUTC, time.UTC)

	t.Run("day_plus matches a future day regardless of clock", func(t *testing.T) {
		friday := schedule.Schedule{{Day: 5, Start: 900, End: 930}}
		assert.False(t, batch.Open(friday, "UTC", schedule.PolicyDayPlus, 1))
		assert.True(t, batch.Open(friday, "UTC", schedule.PolicyDayPlus, 2))
	})

	t.Run("day_plus still matches today by clock", func(t *testing.T) {
		today := schedule.Schedule{{Day: 3, Start: 900, End: 1700}}
		assert.True(t, batch.Open(today, "UTC", schedule.PolicyDayPlus, 1))
	})

	t.Run("next_day_plus excludes today entirely", func(t *testing.T) {
		today := schedule.Schedule{{Day: 3, Start: 900, End: 1700}}
		assert.False(t, batch.Open(today, "UTC", schedule.PolicyNextDayPlus, 1))

		tomorrow := schedule.Schedule{{Day: 4, Start: 900, End: 1700}}
		assert.True(t, batch.Open(tomorrow, "UTC", schedule.PolicyNextDayPlus, 1))
	})

	t.Run("look-ahead wraps across the week", func(t *testing.T) {
		// Wednesday + 6 days reaches Tuesday.
		tuesday := schedule.Schedule{{Day: 2, Start: 900, End: 1700}}
		assert.False(t, batch.Open(tuesday, "UTC", schedule.PolicyNextDayPlus, 5))
		assert.True(t, batch.Open(tuesday, "UTC", schedule.PolicyNextDayPlus, 6))
	})

	t.Run("look-ahead counts from the requester's weekday", func(t *testing.T) {
		// Wednesday 23:30 UTC: Auckland is already Thursday, but the
		// look-ahead still starts from Wednesday.
		lateWed := schedule.NewBatch(time.Date(2025, 6, 11, 23, 30, 0, 0, time.UTC), time.UTC)
		thursday := schedule.Schedule{{Day: 4, Start: 900, End: 1700}}
		assert.True(t, lateWed.Open(thursday, "Pacific/Auckland", schedule.PolicyNextDayPlus, 1))
	})
}

func TestBatchOpenIsStable(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Tallinn")
	require.NoError(t, err)
	batch := schedule.NewBatch(wedNoonUTC, loc)

	s := schedule.Schedule{
		{Day: 1, Start: 900, End: 1800},
		{Day: 3, Start: 900, End: 1800},
	}
	first := batch.Open(s, "Europe/Tallinn", schedule.PolicyDay, 1)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, batch.Open(s, "Europe/Tallinn", schedule.PolicyDay, 1))
	}
}

func TestPolicyValid(t *testing.T) {
	assert.True(t, schedule.PolicyDay.Valid())
	assert.True(t, schedule.PolicyDayPlus.Valid())
	assert.True(t, schedule.PolicyNextDayPlus.Valid())
	assert.False(t, schedule.Policy("weekend_only").Valid())
	assert.False(t, schedule.Policy("").Valid())
}
