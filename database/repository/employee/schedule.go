// File: database/repository/employee/schedule.go
package employeeRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backmoney/models"
)

func (r *mongoEmployeeRepo) SetWorkingHours(ctx context.Context, tenantID, id string, wh models.WorkingHours) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "tenantId": tenantID}
	update := bson.M{"$set": bson.M{"workingHours": wh, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set working hours: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListEmployeeSchedules returns the raw schedule blob of every employee
// with a non-null working-hours field, across all tenants. The schedule is
// decoded as bson.D so legacy day order survives the round trip.
func (r *mongoEmployeeRepo) ListEmployeeSchedules(ctx context.Context) ([]models.EmployeeScheduleRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	filter := bson.M{"workingHours": bson.M{"$ne": nil}}
	opts := options.Find().SetProjection(bson.M{"id": 1, "name": 1, "workingHours": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.EmployeeScheduleRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding employee schedules: %w", err)
	}
	return records, nil
}

// ReplaceEmployeeSchedule overwrites the working-hours field with the given
// value as-is. Used by the migration batch, which writes either a normalized
// WorkingHours or a restored legacy document.
func (r *mongoEmployeeRepo) ReplaceEmployeeSchedule(ctx context.Context, employeeID string, schedule interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"workingHours": schedule, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": employeeID}, update)
	if err != nil {
		return fmt.Errorf("failed to replace schedule: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
