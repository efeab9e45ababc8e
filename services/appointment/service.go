// File: services/appointment/service.go
package appointment

import (
	"context"
	"fmt"
	"time"

	"backmoney/models"
	"backmoney/utils"

	"go.uber.org/zap"
)

// Book validates the requested window against the employee's working hours
// and existing appointments, then persists the appointment.
func (s *DefaultAppointmentService) Book(ctx context.Context, tenantID string, req models.BookAppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", req.Date)
	}

	svc, err := s.Catalog.GetServiceByID(ctx, tenantID, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("service lookup failed: %w", err)
	}
	if !svc.IsActive {
		return nil, fmt.Errorf("service %s is not bookable", svc.Name)
	}

	endTime, err := addMinutes(req.StartTime, svc.DurationMin)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q", req.StartTime)
	}

	wh, err := s.Employee.GetWorkingHours(ctx, tenantID, req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("employee lookup failed: %w", err)
	}
	ok, err := withinWorkingHours(wh, date, req.StartTime, endTime)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("employee is not available on %s at %s", req.Date, req.StartTime)
	}

	overlapping, err := s.Repo.CountOverlapping(ctx, tenantID, req.EmployeeID, req.Date, req.StartTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("conflict check failed: %w", err)
	}
	if overlapping > 0 {
		return nil, fmt.Errorf("time slot is already booked")
	}

	appt := &models.Appointment{
		TenantID:   tenantID,
		ClientID:   req.ClientID,
		EmployeeID: req.EmployeeID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    endTime,
		Status:     models.AppointmentScheduled,
		Notes:      req.Notes,
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	logger.Info("Appointment booked",
		zap.String("tenant", tenantID),
		zap.String("employee", req.EmployeeID),
		zap.String("date", req.Date),
		zap.String("start", req.StartTime))
	return appt, nil
}

func (s *DefaultAppointmentService) Cancel(ctx context.Context, tenantID, id string) error {
	return s.UpdateStatus(ctx, tenantID, id, models.AppointmentCancelled)
}

// UpdateStatus applies a status transition, rejecting moves out of a
// terminal state.
func (s *DefaultAppointmentService) UpdateStatus(ctx context.Context, tenantID, id, status string) error {
	switch status {
	case models.AppointmentScheduled, models.AppointmentConfirmed,
		models.AppointmentCompleted, models.AppointmentCancelled, models.AppointmentNoShow:
	default:
		return fmt.Errorf("unknown appointment status %q", status)
	}

	appt, err := s.Repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if appt.Status == models.AppointmentCancelled || appt.Status == models.AppointmentCompleted {
		return fmt.Errorf("appointment is already %s", appt.Status)
	}
	return s.Repo.UpdateStatus(ctx, tenantID, id, status)
}

func (s *DefaultAppointmentService) Get(ctx context.Context, tenantID, id string) (*models.Appointment, error) {
	return s.Repo.GetByID(ctx, tenantID, id)
}

func (s *DefaultAppointmentService) ListByDate(ctx context.Context, tenantID, date string) ([]models.Appointment, error) {
	return s.Repo.ListByTenantAndDate(ctx, tenantID, date)
}

func (s *DefaultAppointmentService) ListByClient(ctx context.Context, tenantID, clientID string) ([]models.Appointment, error) {
	return s.Repo.ListByClient(ctx, tenantID, clientID)
}
