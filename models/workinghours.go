package models

import "time"

// TimeSlot is one discrete one-hour availability window on an employee's
// weekly schedule. The ID is derived from (dayOfWeek, startTime, index) so
// repeated migrations of the same legacy schedule produce identical slots.
type TimeSlot struct {
	ID           string     `bson:"id" json:"id"`
	DayOfWeek    int        `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime    string     `bson:"startTime" json:"startTime"` // "HH:MM", 24-hour
	EndTime      string     `bson:"endTime" json:"endTime"`     // startTime + 1h, hour not wrapped at 24
	IsRecurring  bool       `bson:"isRecurring" json:"isRecurring"`
	IsActive     bool       `bson:"isActive" json:"isActive"`
	SpecificDate *time.Time `bson:"specificDate,omitempty" json:"specificDate,omitempty"`
}

// TimeOff is an exception record overriding the recurring slots
// (vacation, holiday, sick leave). Empty at migration time.
type TimeOff struct {
	ID        string    `bson:"id" json:"id"`
	StartDate time.Time `bson:"startDate" json:"startDate"`
	EndDate   time.Time `bson:"endDate" json:"endDate"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
}

// WorkingHours is the normalized schedule stored on an employee record.
type WorkingHours struct {
	TimeSlots []TimeSlot `bson:"timeSlots" json:"timeSlots"`
	TimeOffs  []TimeOff  `bson:"timeOffs" json:"timeOffs"`
}

// LegacyDay is one entry of the pre-migration schedule representation:
// a weekday name (Portuguese or English, free-form case) mapped to the
// start times listed for that day. Order of days is preserved from the
// source document, so migration output order is input-order-dependent.
type LegacyDay struct {
	Day   string
	Times []string
}
