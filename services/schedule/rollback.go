// File: services/schedule/rollback.go
package schedule

import (
	"backmoney/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Rollback reverses Migrate: recurring slots are grouped back into a
// day-name-keyed schedule with canonical Portuguese day names. Days appear
// in the order their first slot occurs in the timeSlots sequence, and start
// times keep their slot order, so a rollback of an untouched migration
// reproduces the legacy day/time ordering.
func Rollback(wh models.WorkingHours) []models.LegacyDay {
	index := make(map[int]int) // dayOfWeek -> position in days
	var days []models.LegacyDay
	for _, slot := range wh.TimeSlots {
		name := DayName(slot.DayOfWeek)
		if name == "" {
			continue
		}
		pos, ok := index[slot.DayOfWeek]
		if !ok {
			pos = len(days)
			index[slot.DayOfWeek] = pos
			days = append(days, models.LegacyDay{Day: name})
		}
		days[pos].Times = append(days[pos].Times, slot.StartTime)
	}
	return days
}

// RollbackDocument reverses one migrated schedule document. Documents
// without a "timeSlots" key are not migrated and are skipped unchanged.
func RollbackDocument(doc bson.D) (interface{}, string) {
	var slots bson.A
	found := false
	for _, e := range doc {
		if e.Key == "timeSlots" {
			slots, _ = e.Value.(bson.A)
			found = true
			break
		}
	}
	if !found {
		return doc, StatusSkipped
	}

	wh := models.WorkingHours{}
	for _, raw := range slots {
		entry, ok := raw.(bson.D)
		if !ok {
			continue
		}
		slot := models.TimeSlot{DayOfWeek: -1}
		for _, f := range entry {
			switch f.Key {
			case "dayOfWeek":
				slot.DayOfWeek = asInt(f.Value)
			case "startTime":
				slot.StartTime, _ = f.Value.(string)
			}
		}
		wh.TimeSlots = append(wh.TimeSlots, slot)
	}

	return LegacyDocument(Rollback(wh)), StatusMigrated
}

// LegacyDocument renders day entries as an ordered BSON document, the shape
// legacy schedules are stored in.
func LegacyDocument(days []models.LegacyDay) bson.D {
	doc := bson.D{}
	for _, d := range days {
		times := make(bson.A, len(d.Times))
		for i, t := range d.Times {
			times[i] = t
		}
		doc = append(doc, bson.E{Key: d.Day, Value: times})
	}
	return doc
}

// asInt tolerates the numeric types the BSON decoder may hand back.
func asInt(v interface{}) int {
	switch n := v.(type) {
	case int32:
		return int(n)
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	}
	return -1
}
