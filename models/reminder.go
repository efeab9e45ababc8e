package models

// ReminderPayload is the asynq task body for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	TenantID      string `json:"tenantId"`
	ClientID      string `json:"clientId"`
	EmployeeID    string `json:"employeeId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
}
