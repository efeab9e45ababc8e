// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"backmoney/database"
	"backmoney/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, tenantID, id string) (*models.Appointment, error)
	ListByTenantAndDate(ctx context.Context, tenantID, date string) ([]models.Appointment, error)
	ListByEmployeeAndDate(ctx context.Context, tenantID, employeeID, date string) ([]models.Appointment, error)
	ListByClient(ctx context.Context, tenantID, clientID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, tenantID, id, status string) error
	CountOverlapping(ctx context.Context, tenantID, employeeID, date, startTime, endTime string) (int64, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
