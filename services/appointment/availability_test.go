package appointment

import (
	"testing"
	"time"

	"backmoney/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockToMinutes(t *testing.T) {
	m, err := clockToMinutes("08:30")
	require.NoError(t, err)
	assert.Equal(t, 510, m)

	// Past-midnight end times produced by the schedule migration are legal.
	m, err = clockToMinutes("24:30")
	require.NoError(t, err)
	assert.Equal(t, 1470, m)

	_, err = clockToMinutes("0830")
	assert.Error(t, err)
	_, err = clockToMinutes("ab:cd")
	assert.Error(t, err)
}

func TestAddMinutes(t *testing.T) {
	got, err := addMinutes("09:15", 45)
	require.NoError(t, err)
	assert.Equal(t, "10:00", got)

	got, err = addMinutes("23:30", 60)
	require.NoError(t, err)
	assert.Equal(t, "24:30", got)
}

func workingWeek() *models.WorkingHours {
	return &models.WorkingHours{
		TimeSlots: []models.TimeSlot{
			{ID: "slot_2_0800_0", DayOfWeek: 2, StartTime: "08:00", EndTime: "09:00", IsRecurring: true, IsActive: true},
			{ID: "slot_2_1000_1", DayOfWeek: 2, StartTime: "10:00", EndTime: "11:00", IsRecurring: true, IsActive: true},
			{ID: "slot_3_0800_0", DayOfWeek: 3, StartTime: "08:00", EndTime: "09:00", IsRecurring: true, IsActive: false},
		},
		TimeOffs: []models.TimeOff{},
	}
}

func TestWithinWorkingHours(t *testing.T) {
	tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC) // a Tuesday

	ok, err := withinWorkingHours(workingWeek(), tuesday, "08:00", "08:45")
	require.NoError(t, err)
	assert.True(t, ok)

	// Window crossing the slot boundary is rejected.
	ok, err = withinWorkingHours(workingWeek(), tuesday, "08:30", "09:30")
	require.NoError(t, err)
	assert.False(t, ok)

	// Wrong weekday.
	monday := tuesday.AddDate(0, 0, -1)
	ok, err = withinWorkingHours(workingWeek(), monday, "08:00", "08:45")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWithinWorkingHoursInactiveSlot(t *testing.T) {
	wednesday := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	ok, err := withinWorkingHours(workingWeek(), wednesday, "08:00", "08:30")
	require.NoError(t, err)
	assert.False(t, ok, "inactive slots must not admit bookings")
}

func TestWithinWorkingHoursTimeOff(t *testing.T) {
	wh := workingWeek()
	wh.TimeOffs = []models.TimeOff{{
		StartDate: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
	}}

	tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	ok, err := withinWorkingHours(wh, tuesday, "08:00", "08:30")
	require.NoError(t, err)
	assert.False(t, ok, "time off must block the whole day")
}

func TestSlotCoversPastMidnightEnd(t *testing.T) {
	slot := models.TimeSlot{DayOfWeek: 5, StartTime: "23:30", EndTime: "24:30", IsActive: true}
	start, _ := clockToMinutes("23:45")
	end, _ := clockToMinutes("24:15")
	assert.True(t, slotCovers(slot, 5, start, end))
}
