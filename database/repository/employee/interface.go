// File: database/repository/employee/interface.go
package employeeRepo

import (
	"context"

	"backmoney/database"
	"backmoney/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp *models.Employee) error
	GetByID(ctx context.Context, tenantID, id string) (*models.Employee, error)
	GetByEmail(ctx context.Context, tenantID, email string) (*models.Employee, error)
	ListByTenant(ctx context.Context, tenantID string) ([]models.Employee, error)
	Update(ctx context.Context, tenantID, id string, upd models.EmployeeUpdate) (*models.Employee, error)
	Delete(ctx context.Context, tenantID, id string) error

	// Working-hours surface.
	SetWorkingHours(ctx context.Context, tenantID, id string, wh models.WorkingHours) error

	// Migration batch surface (cross-tenant, used by admin tooling only).
	ListEmployeeSchedules(ctx context.Context) ([]models.EmployeeScheduleRecord, error)
	ReplaceEmployeeSchedule(ctx context.Context, employeeID string, schedule interface{}) error
}

type mongoEmployeeRepo struct {
	coll *mongo.Collection
}

// NewMongoEmployeeRepo constructs a new MongoDB EmployeeRepository.
func NewMongoEmployeeRepo() EmployeeRepository {
	return &mongoEmployeeRepo{
		coll: database.DB().Collection("employees"),
	}
}
