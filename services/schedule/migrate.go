// File: services/schedule/migrate.go
package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"backmoney/models"
	"backmoney/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Outcomes of migrating one schedule document.
const (
	StatusMigrated = "migrated"
	StatusSkipped  = "skipped"
)

// Migrate converts a legacy day-keyed schedule into normalized working
// hours. Days are processed in input order, so the output slot order is
// input-order-dependent; slot IDs are derived from (dayOfWeek, startTime,
// index) and therefore stable across repeated runs on the same input.
// Unrecognized day names are logged and skipped without aborting.
func Migrate(days []models.LegacyDay) models.WorkingHours {
	logger := utils.GetLogger()
	wh := models.WorkingHours{
		TimeSlots: []models.TimeSlot{},
		TimeOffs:  []models.TimeOff{},
	}
	for _, d := range days {
		dow, ok := ResolveWeekday(d.Day)
		if !ok {
			logger.Warn("Unrecognized weekday in legacy schedule", zap.String("day", d.Day))
			continue
		}
		for i, start := range d.Times {
			wh.TimeSlots = append(wh.TimeSlots, models.TimeSlot{
				ID:          fmt.Sprintf("slot_%d_%s_%d", dow, strings.ReplaceAll(start, ":", ""), i),
				DayOfWeek:   dow,
				StartTime:   start,
				EndTime:     addOneHour(start),
				IsRecurring: true,
				IsActive:    true,
			})
		}
	}
	return wh
}

// addOneHour advances the hour component by one WITHOUT wrapping at 24: a
// "23:30" start yields a "24:30" end. Downstream consumers treat hour >= 24
// as crossing midnight, so this must not be normalized here. Minutes pass
// through exactly as given.
func addOneHour(start string) string {
	hourPart, minutePart, found := strings.Cut(start, ":")
	if !found {
		minutePart = "00"
	}
	h, _ := strconv.Atoi(hourPart)
	return fmt.Sprintf("%02d:%s", h+1, minutePart)
}

// MigrateDocument applies Migrate to one raw schedule document read from an
// employee record. A document that already carries a "timeSlots" key is
// treated as migrated and returned unchanged; an empty document or one with
// no recognizable day entries is skipped.
func MigrateDocument(doc bson.D) (interface{}, string) {
	if len(doc) == 0 {
		return doc, StatusSkipped
	}
	for _, e := range doc {
		if e.Key == "timeSlots" {
			return doc, StatusSkipped
		}
	}
	days := LegacyDaysFromDocument(doc)
	if len(days) == 0 {
		return doc, StatusSkipped
	}
	return Migrate(days), StatusMigrated
}

// LegacyDaysFromDocument extracts the day entries of a legacy schedule
// document in document order. Only keys whose value is an array contribute;
// non-string array elements are dropped.
func LegacyDaysFromDocument(doc bson.D) []models.LegacyDay {
	var days []models.LegacyDay
	for _, e := range doc {
		arr, ok := e.Value.(bson.A)
		if !ok {
			continue
		}
		times := make([]string, 0, len(arr))
		for _, v := range arr {
			if s, ok := v.(string); ok {
				times = append(times, s)
			}
		}
		days = append(days, models.LegacyDay{Day: e.Key, Times: times})
	}
	return days
}
