// File: services/schedule/batch.go
package schedule

import (
	"context"
	"fmt"

	"backmoney/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Store is the slice of the employee repository the batch runner needs.
type Store interface {
	ListEmployeeSchedules(ctx context.Context) ([]models.EmployeeScheduleRecord, error)
	ReplaceEmployeeSchedule(ctx context.Context, employeeID string, schedule interface{}) error
}

// Result accumulates the outcome of one batch run.
type Result struct {
	Total    int
	Migrated int
	Skipped  int
	Failed   int
}

// Runner applies the schedule migration (or its rollback) to every employee
// record carrying a non-null working-hours field. Records are processed
// sequentially in query order; a per-record failure is logged with the
// employee's name and the batch continues.
type Runner struct {
	Store  Store
	Logger *zap.Logger
}

// Migrate runs the forward migration. A failure to list the records is
// fatal and returned to the caller; everything past that point is isolated
// per record.
func (r *Runner) Migrate(ctx context.Context) (Result, error) {
	return r.run(ctx, MigrateDocument)
}

// Rollback reverses the migration for every migrated record.
func (r *Runner) Rollback(ctx context.Context) (Result, error) {
	return r.run(ctx, RollbackDocument)
}

func (r *Runner) run(ctx context.Context, transform func(doc bson.D) (interface{}, string)) (Result, error) {
	records, err := r.Store.ListEmployeeSchedules(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list employee schedules: %w", err)
	}

	res := Result{Total: len(records)}
	for _, rec := range records {
		out, status := transform(rec.Schedule)
		if status == StatusSkipped {
			res.Skipped++
			r.Logger.Info("Schedule left untouched",
				zap.String("employee", rec.Name))
			continue
		}
		if err := r.Store.ReplaceEmployeeSchedule(ctx, rec.EmployeeID, out); err != nil {
			res.Failed++
			r.Logger.Error("Failed to update employee schedule",
				zap.String("employee", rec.Name), zap.Error(err))
			continue
		}
		res.Migrated++
		r.Logger.Info("Schedule migrated",
			zap.String("employee", rec.Name))
	}
	return res, nil
}
