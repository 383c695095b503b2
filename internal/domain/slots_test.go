package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbelleza/turnos-service/pkg/types"
)

func TestSlotsForDate_Weekday(t *testing.T) {
	// 2026-03-04 is a Wednesday.
	wednesday := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	slots := SlotsForDate(wednesday)
	assert.Equal(t, SlotCatalog, slots)
}

func TestSlotsForDate_Monday(t *testing.T) {
	// 2026-03-02 is a Monday.
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slots := SlotsForDate(monday)
	require.Len(t, slots, len(SlotCatalog)-len(MondayCarveOuts))

	for _, carved := range MondayCarveOuts {
		assert.NotContains(t, slots, carved)
	}
	assert.Contains(t, slots, types.TimeString("09:00"))
	assert.Contains(t, slots, types.TimeString("18:30"))
}

func TestSlotsForDate_Weekend(t *testing.T) {
	// 2026-03-07 is a Saturday, 2026-03-08 a Sunday.
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	expected := []types.TimeString{"10:00", "10:30", "11:00", "11:30", "12:00", "12:30"}

	assert.Equal(t, expected, SlotsForDate(saturday))
	assert.Equal(t, expected, SlotsForDate(sunday))
}

func TestSlotOfferedOn(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	assert.True(t, SlotOfferedOn("09:30", monday))
	assert.False(t, SlotOfferedOn("10:00", monday), "Monday carve-out must not be offered")
	assert.False(t, SlotOfferedOn("09:00", saturday), "weekend opens at 10:00")
	assert.True(t, SlotOfferedOn("12:30", saturday))
	assert.False(t, SlotOfferedOn("14:00", saturday), "weekend is capped at six slots")
	assert.False(t, SlotOfferedOn("13:00", monday), "not a catalog slot at all")
}
