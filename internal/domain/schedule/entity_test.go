package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestNormalizeEnd_SameDay(t *testing.T) {
	end := NormalizeEnd(at(9, 0), at(17, 0))
	assert.Equal(t, at(17, 0), end)
}

func TestNormalizeEnd_Overnight(t *testing.T) {
	// A 22:00-06:00 shift ends on the following day.
	end := NormalizeEnd(at(22, 0), at(6, 0))
	assert.Equal(t, at(6, 0).Add(24*time.Hour), end)
}

func TestNormalizeEnd_EndEqualsStart(t *testing.T) {
	end := NormalizeEnd(at(9, 0), at(9, 0))
	assert.Equal(t, at(9, 0).Add(24*time.Hour), end)
}

func TestOverlaps_BackToBackShiftsDoNotConflict(t *testing.T) {
	// 09:00-17:00 and 17:00-22:00 share only the boundary instant.
	assert.False(t, Overlaps(at(17, 0), at(22, 0), at(9, 0), at(17, 0)))
	assert.False(t, Overlaps(at(9, 0), at(17, 0), at(17, 0), at(22, 0)))
}

func TestOverlaps_PartialOverlap(t *testing.T) {
	assert.True(t, Overlaps(at(16, 0), at(20, 0), at(9, 0), at(17, 0)))
}

func TestOverlaps_Containment(t *testing.T) {
	assert.True(t, Overlaps(at(10, 0), at(12, 0), at(9, 0), at(17, 0)))
	assert.True(t, Overlaps(at(9, 0), at(17, 0), at(10, 0), at(12, 0)))
}

func TestOverlaps_OvernightWrap(t *testing.T) {
	// 22:00-06:00 runs into the next morning, so it conflicts with an
	// 05:00-09:00 shift on the following day expressed as 05:00-09:00
	// relative to that day.
	nextDay := func(hour int) time.Time { return at(hour, 0).Add(24 * time.Hour) }
	assert.True(t, Overlaps(nextDay(5), nextDay(9), at(22, 0), at(6, 0)))
	assert.False(t, Overlaps(nextDay(7), nextDay(9), at(22, 0), at(6, 0)))
}

func TestSelectRelevant_Empty(t *testing.T) {
	assert.Nil(t, SelectRelevant(nil, at(12, 0)))
}

func TestSelectRelevant_PrefersUnfinishedShift(t *testing.T) {
	morning := Schedule{ID: "morning", StartTime: at(6, 0), EndTime: at(12, 0)}
	evening := Schedule{ID: "evening", StartTime: at(14, 0), EndTime: at(22, 0)}

	// At 13:00 the morning shift is over; the evening one should win even
	// though it has not started yet.
	got := SelectRelevant([]Schedule{morning, evening}, at(13, 0))
	require.NotNil(t, got)
	assert.Equal(t, "evening", got.ID)
}

func TestSelectRelevant_LatestStartWinsAmongUnfinished(t *testing.T) {
	early := Schedule{ID: "early", StartTime: at(8, 0), EndTime: at(20, 0)}
	late := Schedule{ID: "late", StartTime: at(12, 0), EndTime: at(20, 0)}

	got := SelectRelevant([]Schedule{early, late}, at(13, 0))
	require.NotNil(t, got)
	assert.Equal(t, "late", got.ID)
}

func TestSelectRelevant_AllEndedReturnsLatestStart(t *testing.T) {
	first := Schedule{ID: "first", StartTime: at(6, 0), EndTime: at(10, 0)}
	second := Schedule{ID: "second", StartTime: at(10, 0), EndTime: at(14, 0)}

	got := SelectRelevant([]Schedule{first, second}, at(23, 0))
	require.NotNil(t, got)
	assert.Equal(t, "second", got.ID)
}
