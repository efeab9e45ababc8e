// File: cron/scheduler.go
package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"backmoney/models"

	"github.com/hibiken/asynq"
)

// Reminders fire this long before the appointment starts.
const reminderLeadTime = time.Hour

// ReminderScheduler enqueues delayed reminder tasks on the Redis-backed
// asynq queue.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler builds a scheduler on the configured reminder queue.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{client: asynq.NewClient(redisQueueOpts())}
}

// ScheduleForAppointment enqueues a reminder one hour before the
// appointment's start. Appointments starting too soon get no reminder.
func (s *ReminderScheduler) ScheduleForAppointment(appt *models.Appointment) error {
	startAt, err := time.Parse("2006-01-02 15:04", appt.Date+" "+appt.StartTime)
	if err != nil {
		return fmt.Errorf("invalid appointment start %q %q: %w", appt.Date, appt.StartTime, err)
	}

	fireAt := startAt.Add(-reminderLeadTime)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		TenantID:      appt.TenantID,
		ClientID:      appt.ClientID,
		EmployeeID:    appt.EmployeeID,
		Date:          appt.Date,
		StartTime:     appt.StartTime,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, raw)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}
