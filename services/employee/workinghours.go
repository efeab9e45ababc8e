// File: services/employee/workinghours.go
package employee

import (
	"context"
	"fmt"

	"backmoney/models"
	"backmoney/services/schedule"
	"backmoney/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// SetupWorkingHours replaces an employee's schedule with an explicit set of
// normalized time slots, e.g. from the admin panel.
func (s *DefaultEmployeeService) SetupWorkingHours(ctx context.Context, tenantID, id string, req models.SetupWorkingHoursRequest) (*models.WorkingHours, error) {
	for i, slot := range req.TimeSlots {
		if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
			return nil, fmt.Errorf("slot %d: dayOfWeek must be between 0 and 6; got %d", i+1, slot.DayOfWeek)
		}
		if slot.StartTime == "" {
			return nil, fmt.Errorf("slot %d: startTime is required", i+1)
		}
	}

	wh := models.WorkingHours{TimeSlots: req.TimeSlots, TimeOffs: req.TimeOffs}
	if wh.TimeOffs == nil {
		wh.TimeOffs = []models.TimeOff{}
	}
	if err := s.Repo.SetWorkingHours(ctx, tenantID, id, wh); err != nil {
		return nil, fmt.Errorf("failed to set working hours: %w", err)
	}
	return &wh, nil
}

// GetWorkingHours returns the employee's normalized schedule. Legacy
// (pre-migration) schedules are converted on the fly but not persisted; the
// batch migration owns writes.
func (s *DefaultEmployeeService) GetWorkingHours(ctx context.Context, tenantID, id string) (*models.WorkingHours, error) {
	emp, err := s.Repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if emp.WorkingHours == nil {
		return &models.WorkingHours{TimeSlots: []models.TimeSlot{}, TimeOffs: []models.TimeOff{}}, nil
	}

	raw, err := bson.Marshal(emp.WorkingHours)
	if err != nil {
		return nil, fmt.Errorf("unreadable working hours on employee %s: %w", id, err)
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unreadable working hours on employee %s: %w", id, err)
	}

	out, status := schedule.MigrateDocument(doc)
	if status == schedule.StatusMigrated {
		wh := out.(models.WorkingHours)
		return &wh, nil
	}

	// Already normalized (or empty): decode the stored document directly.
	var wh models.WorkingHours
	if err := bson.Unmarshal(raw, &wh); err != nil {
		return nil, fmt.Errorf("unreadable working hours on employee %s: %w", id, err)
	}
	return &wh, nil
}

// ImportAvailability parses free-text availability lines (one per day, e.g.
// "2a - 8:00, 10:00 e 16:00"), normalizes them and persists the result.
// Malformed lines and unknown day tokens are logged and skipped.
func (s *DefaultEmployeeService) ImportAvailability(ctx context.Context, tenantID, id string, lines []string) (*models.WorkingHours, error) {
	logger := utils.GetLogger()

	var days []models.LegacyDay
	for _, line := range lines {
		day, times, ok := schedule.ParseAvailabilityLine(line)
		if !ok {
			logger.Warn("Skipping malformed availability line", zap.String("line", line))
			continue
		}
		days = append(days, models.LegacyDay{Day: day, Times: times})
	}

	wh := schedule.Migrate(days)
	if err := s.Repo.SetWorkingHours(ctx, tenantID, id, wh); err != nil {
		return nil, fmt.Errorf("failed to persist imported availability: %w", err)
	}
	return &wh, nil
}
