// File: services/appointment/interface.go
package appointment

import (
	"context"

	appointmentRepo "backmoney/database/repository/appointment"
	"backmoney/models"
	empsvc "backmoney/services/employee"
)

// CatalogLookup is the slice of the catalog repository the booking flow
// needs to resolve a service's duration.
type CatalogLookup interface {
	GetServiceByID(ctx context.Context, tenantID, id string) (*models.ServiceOffering, error)
}

// AppointmentService books and manages client appointments against employee
// working hours.
type AppointmentService interface {
	Book(ctx context.Context, tenantID string, req models.BookAppointmentRequest) (*models.Appointment, error)
	Cancel(ctx context.Context, tenantID, id string) error
	UpdateStatus(ctx context.Context, tenantID, id, status string) error
	Get(ctx context.Context, tenantID, id string) (*models.Appointment, error)
	ListByDate(ctx context.Context, tenantID, date string) ([]models.Appointment, error)
	ListByClient(ctx context.Context, tenantID, clientID string) ([]models.Appointment, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo     appointmentRepo.AppointmentRepository
	Employee empsvc.EmployeeService
	Catalog  CatalogLookup
}
