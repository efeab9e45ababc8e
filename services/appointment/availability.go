// File: services/appointment/availability.go
package appointment

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"backmoney/models"
)

// clockToMinutes converts "HH:MM" to minutes from midnight. Hours above 23
// are legal here: migrated slots ending past midnight carry a 24:xx end.
func clockToMinutes(clock string) (int, error) {
	hourPart, minutePart, found := strings.Cut(clock, ":")
	if !found {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	h, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	m, err := strconv.Atoi(minutePart)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	return h*60 + m, nil
}

// addMinutes advances a "HH:MM" clock by the given number of minutes.
func addMinutes(clock string, minutes int) (string, error) {
	total, err := clockToMinutes(clock)
	if err != nil {
		return "", err
	}
	total += minutes
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// slotCovers reports whether an active slot for the given weekday fully
// contains the [start, end) window.
func slotCovers(slot models.TimeSlot, dayOfWeek, start, end int) bool {
	if !slot.IsActive || slot.DayOfWeek != dayOfWeek {
		return false
	}
	slotStart, err := clockToMinutes(slot.StartTime)
	if err != nil {
		return false
	}
	slotEnd, err := clockToMinutes(slot.EndTime)
	if err != nil {
		return false
	}
	return slotStart <= start && end <= slotEnd
}

// withinWorkingHours reports whether the requested window falls inside the
// employee's schedule for the given date: some active slot must cover it and
// no time-off record may intersect the date.
func withinWorkingHours(wh *models.WorkingHours, date time.Time, startClock, endClock string) (bool, error) {
	start, err := clockToMinutes(startClock)
	if err != nil {
		return false, err
	}
	end, err := clockToMinutes(endClock)
	if err != nil {
		return false, err
	}

	for _, off := range wh.TimeOffs {
		if !date.Before(truncateToDay(off.StartDate)) && !date.After(truncateToDay(off.EndDate)) {
			return false, nil
		}
	}

	dayOfWeek := int(date.Weekday())
	for _, slot := range wh.TimeSlots {
		if slot.SpecificDate != nil && !truncateToDay(*slot.SpecificDate).Equal(date) {
			continue
		}
		if slotCovers(slot, dayOfWeek, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
