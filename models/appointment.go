package models

import "time"

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

// Appointment is a booked service window between a client and an employee.
type Appointment struct {
	ID         string    `bson:"id" json:"id"`
	TenantID   string    `bson:"tenantId" json:"tenantId"`
	ClientID   string    `bson:"clientId" json:"clientId"`
	EmployeeID string    `bson:"employeeId" json:"employeeId"`
	ServiceID  string    `bson:"serviceId" json:"serviceId"`
	Date       string    `bson:"date" json:"date"`           // "2006-01-02"
	StartTime  string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime    string    `bson:"endTime" json:"endTime"`
	Status     string    `bson:"status" json:"status"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookAppointmentRequest is the payload for creating an appointment.
type BookAppointmentRequest struct {
	ClientID   string `json:"clientId" binding:"required"`
	EmployeeID string `json:"employeeId" binding:"required"`
	ServiceID  string `json:"serviceId" binding:"required"`
	Date       string `json:"date" binding:"required"`      // "2006-01-02"
	StartTime  string `json:"startTime" binding:"required"` // "HH:MM"
	Notes      string `json:"notes"`
}
