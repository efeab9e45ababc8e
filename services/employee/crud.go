// File: services/employee/crud.go
package employee

import (
	"context"
	"fmt"
	"strings"

	"backmoney/models"
)

func (s *DefaultEmployeeService) CreateEmployee(ctx context.Context, tenantID string, emp *models.Employee) (*models.Employee, error) {
	emp.TenantID = tenantID
	emp.Email = strings.ToLower(strings.TrimSpace(emp.Email))
	if emp.Name == "" || emp.Email == "" {
		return nil, fmt.Errorf("employee name and email are required")
	}

	if existing, _ := s.Repo.GetByEmail(ctx, tenantID, emp.Email); existing != nil {
		return nil, fmt.Errorf("an employee with email %s already exists", emp.Email)
	}

	emp.IsActive = true
	if err := s.Repo.Create(ctx, emp); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return emp, nil
}

func (s *DefaultEmployeeService) GetEmployee(ctx context.Context, tenantID, id string) (*models.Employee, error) {
	return s.Repo.GetByID(ctx, tenantID, id)
}

func (s *DefaultEmployeeService) ListEmployees(ctx context.Context, tenantID string) ([]models.Employee, error) {
	return s.Repo.ListByTenant(ctx, tenantID)
}

func (s *DefaultEmployeeService) UpdateEmployee(ctx context.Context, tenantID, id string, upd models.EmployeeUpdate) (*models.Employee, error) {
	if upd.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*upd.Email))
		upd.Email = &normalized
	}
	emp, err := s.Repo.Update(ctx, tenantID, id, upd)
	if err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return emp, nil
}

func (s *DefaultEmployeeService) DeleteEmployee(ctx context.Context, tenantID, id string) error {
	if err := s.Repo.Delete(ctx, tenantID, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
