package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Employee represents a staff member of a tenant business. The WorkingHours
// field is stored as an opaque structured blob so that both legacy
// (day-name-keyed) and normalized (timeSlots/timeOffs) schedules can live in
// the same collection while the migration is in flight.
type Employee struct {
	ID           string      `bson:"id" json:"id"`
	TenantID     string      `bson:"tenantId" json:"tenantId"`
	Name         string      `bson:"name" json:"name"`
	Email        string      `bson:"email" json:"email"`
	Phone        string      `bson:"phone,omitempty" json:"phone,omitempty"`
	Position     string      `bson:"position,omitempty" json:"position,omitempty"`
	WorkingHours interface{} `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	ServiceIDs   []string    `bson:"serviceIds,omitempty" json:"serviceIds,omitempty"`
	IsActive     bool        `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// EmployeeScheduleRecord is the projection the working-hours migration
// batch reads: identifying fields plus the raw schedule document, decoded
// as bson.D so the legacy day order is preserved.
type EmployeeScheduleRecord struct {
	EmployeeID string `bson:"id"`
	Name       string `bson:"name"`
	Schedule   bson.D `bson:"workingHours"`
}

// EmployeeUpdate carries the mutable employee fields for PATCH updates.
type EmployeeUpdate struct {
	Name       *string   `json:"name,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Position   *string   `json:"position,omitempty"`
	ServiceIDs *[]string `json:"serviceIds,omitempty"`
	IsActive   *bool     `json:"isActive,omitempty"`
}

// SetupWorkingHoursRequest defines the payload for setting an employee's
// normalized schedule directly.
type SetupWorkingHoursRequest struct {
	TimeSlots []TimeSlot `json:"timeSlots" binding:"required"`
	TimeOffs  []TimeOff  `json:"timeOffs"`
}
