// File: services/employee/interface.go
package employee

import (
	"context"

	employeeRepo "backmoney/database/repository/employee"
	"backmoney/models"
)

// EmployeeService manages a tenant's staff and their working hours.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, tenantID string, emp *models.Employee) (*models.Employee, error)
	GetEmployee(ctx context.Context, tenantID, id string) (*models.Employee, error)
	ListEmployees(ctx context.Context, tenantID string) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, tenantID, id string, upd models.EmployeeUpdate) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, tenantID, id string) error

	SetupWorkingHours(ctx context.Context, tenantID, id string, req models.SetupWorkingHoursRequest) (*models.WorkingHours, error)
	GetWorkingHours(ctx context.Context, tenantID, id string) (*models.WorkingHours, error)
	ImportAvailability(ctx context.Context, tenantID, id string, lines []string) (*models.WorkingHours, error)
}

// DefaultEmployeeService is the production implementation.
type DefaultEmployeeService struct {
	Repo employeeRepo.EmployeeRepository
}
