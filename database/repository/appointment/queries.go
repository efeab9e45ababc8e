// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"backmoney/models"
)

func (r *mongoAppointmentRepo) ListByTenantAndDate(ctx context.Context, tenantID, date string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"tenantId": tenantID, "date": date})
}

func (r *mongoAppointmentRepo) ListByEmployeeAndDate(ctx context.Context, tenantID, employeeID, date string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"tenantId": tenantID, "employeeId": employeeID, "date": date})
}

func (r *mongoAppointmentRepo) ListByClient(ctx context.Context, tenantID, clientID string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"tenantId": tenantID, "clientId": clientID})
}

func (r *mongoAppointmentRepo) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// CountOverlapping counts non-cancelled appointments of the employee on the
// given date whose [startTime, endTime) window intersects the candidate
// window. Times are "HH:MM" strings, so lexicographic comparison is safe.
func (r *mongoAppointmentRepo) CountOverlapping(ctx context.Context, tenantID, employeeID, date, startTime, endTime string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"tenantId":   tenantID,
		"employeeId": employeeID,
		"date":       date,
		"status":     bson.M{"$ne": models.AppointmentCancelled},
		"startTime":  bson.M{"$lt": endTime},
		"endTime":    bson.M{"$gt": startTime},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping appointments: %w", err)
	}
	return count, nil
}
