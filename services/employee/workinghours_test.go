// File: services/employee/workinghours_test.go
package employee

import (
	"context"
	"fmt"
	"testing"

	"backmoney/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeEmployeeRepo struct {
	employees map[string]*models.Employee
	saved     map[string]models.WorkingHours
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: map[string]*models.Employee{},
		saved:     map[string]models.WorkingHours{},
	}
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp *models.Employee) error {
	if emp.ID == "" {
		emp.ID = fmt.Sprintf("emp-%d", len(r.employees)+1)
	}
	r.employees[emp.ID] = emp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, tenantID, id string) (*models.Employee, error) {
	emp, ok := r.employees[id]
	if !ok || emp.TenantID != tenantID {
		return nil, fmt.Errorf("employee %s not found", id)
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmail(ctx context.Context, tenantID, email string) (*models.Employee, error) {
	for _, emp := range r.employees {
		if emp.TenantID == tenantID && emp.Email == email {
			return emp, nil
		}
	}
	return nil, fmt.Errorf("employee %s not found", email)
}

func (r *fakeEmployeeRepo) ListByTenant(ctx context.Context, tenantID string) ([]models.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, tenantID, id string, upd models.EmployeeUpdate) (*models.Employee, error) {
	return r.GetByID(ctx, tenantID, id)
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, tenantID, id string) error { return nil }

func (r *fakeEmployeeRepo) SetWorkingHours(ctx context.Context, tenantID, id string, wh models.WorkingHours) error {
	r.saved[id] = wh
	if emp, ok := r.employees[id]; ok {
		emp.WorkingHours = wh
	}
	return nil
}

func (r *fakeEmployeeRepo) ListEmployeeSchedules(ctx context.Context) ([]models.EmployeeScheduleRecord, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) ReplaceEmployeeSchedule(ctx context.Context, employeeID string, schedule interface{}) error {
	return nil
}

func TestSetupWorkingHoursRejectsBadDayOfWeek(t *testing.T) {
	svc := &DefaultEmployeeService{Repo: newFakeEmployeeRepo()}

	_, err := svc.SetupWorkingHours(context.Background(), "t1", "e1", models.SetupWorkingHoursRequest{
		TimeSlots: []models.TimeSlot{{ID: "s", DayOfWeek: 7, StartTime: "08:00", EndTime: "09:00"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dayOfWeek")
}

func TestSetupWorkingHoursPersistsSlots(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := &DefaultEmployeeService{Repo: repo}

	wh, err := svc.SetupWorkingHours(context.Background(), "t1", "e1", models.SetupWorkingHoursRequest{
		TimeSlots: []models.TimeSlot{
			{ID: "slot_1_0800_0", DayOfWeek: 1, StartTime: "08:00", EndTime: "09:00", IsRecurring: true, IsActive: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, wh.TimeSlots, 1)
	assert.NotNil(t, wh.TimeOffs)
	assert.Equal(t, *wh, repo.saved["e1"])
}

func TestImportAvailabilitySkipsMalformedLines(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := &DefaultEmployeeService{Repo: repo}

	wh, err := svc.ImportAvailability(context.Background(), "t1", "e1", []string{
		"Segunda - 08:00, 09:00 e 10:00",
		"linha sem horario",
		"Sexta - 14:00",
	})
	require.NoError(t, err)

	days := map[int]int{}
	for _, slot := range wh.TimeSlots {
		days[slot.DayOfWeek]++
	}
	assert.Equal(t, map[int]int{1: 3, 5: 1}, days)
}

func TestGetWorkingHoursConvertsLegacyOnTheFly(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := &DefaultEmployeeService{Repo: repo}

	repo.employees["e1"] = &models.Employee{
		ID:       "e1",
		TenantID: "t1",
		Name:     "Carlos",
		WorkingHours: bson.D{
			{Key: "segunda", Value: bson.A{"08:00", "09:00"}},
			{Key: "sexta", Value: bson.A{"14:00"}},
		},
	}

	wh, err := svc.GetWorkingHours(context.Background(), "t1", "e1")
	require.NoError(t, err)
	require.Len(t, wh.TimeSlots, 3)
	assert.Equal(t, "slot_1_0800_0", wh.TimeSlots[0].ID)
	assert.Equal(t, "09:00", wh.TimeSlots[0].EndTime)

	// The conversion is read-only; the stored blob keeps its legacy shape.
	_, isDoc := repo.employees["e1"].WorkingHours.(bson.D)
	assert.True(t, isDoc)
	assert.Empty(t, repo.saved)
}

func TestGetWorkingHoursReturnsNormalizedFormUnchanged(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := &DefaultEmployeeService{Repo: repo}

	stored := models.WorkingHours{
		TimeSlots: []models.TimeSlot{
			{ID: "slot_2_1000_0", DayOfWeek: 2, StartTime: "10:00", EndTime: "11:00", IsRecurring: true, IsActive: true},
		},
		TimeOffs: []models.TimeOff{},
	}
	repo.employees["e1"] = &models.Employee{ID: "e1", TenantID: "t1", WorkingHours: stored}

	wh, err := svc.GetWorkingHours(context.Background(), "t1", "e1")
	require.NoError(t, err)
	assert.Equal(t, stored.TimeSlots, wh.TimeSlots)
}
