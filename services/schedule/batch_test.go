package schedule

import (
	"context"
	"errors"
	"testing"

	"backmoney/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fakeStore struct {
	records  []models.EmployeeScheduleRecord
	listErr  error
	writeErr map[string]error
	written  map[string]interface{}
}

func (f *fakeStore) ListEmployeeSchedules(ctx context.Context) ([]models.EmployeeScheduleRecord, error) {
	return f.records, f.listErr
}

func (f *fakeStore) ReplaceEmployeeSchedule(ctx context.Context, employeeID string, schedule interface{}) error {
	if err := f.writeErr[employeeID]; err != nil {
		return err
	}
	if f.written == nil {
		f.written = make(map[string]interface{})
	}
	f.written[employeeID] = schedule
	return nil
}

func TestBatchMigrateCountsOutcomes(t *testing.T) {
	store := &fakeStore{records: []models.EmployeeScheduleRecord{
		{EmployeeID: "e1", Name: "Ana", Schedule: bson.D{
			{Key: "segunda", Value: bson.A{"08:00", "09:00"}},
		}},
		{EmployeeID: "e2", Name: "Bruno", Schedule: bson.D{
			{Key: "timeSlots", Value: bson.A{}},
		}},
		{EmployeeID: "e3", Name: "Clara", Schedule: bson.D{}},
	}}

	runner := &Runner{Store: store, Logger: zap.NewNop()}
	res, err := runner.Migrate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Result{Total: 3, Migrated: 1, Skipped: 2}, res)

	wh, ok := store.written["e1"].(models.WorkingHours)
	require.True(t, ok)
	assert.Len(t, wh.TimeSlots, 2)
	_, touched := store.written["e2"]
	assert.False(t, touched, "already-migrated record must not be rewritten")
}

func TestBatchMigrateIsolatesPerRecordFailures(t *testing.T) {
	store := &fakeStore{
		records: []models.EmployeeScheduleRecord{
			{EmployeeID: "e1", Name: "Ana", Schedule: bson.D{{Key: "segunda", Value: bson.A{"08:00"}}}},
			{EmployeeID: "e2", Name: "Bruno", Schedule: bson.D{{Key: "sexta", Value: bson.A{"10:00"}}}},
		},
		writeErr: map[string]error{"e1": errors.New("write timeout")},
	}

	runner := &Runner{Store: store, Logger: zap.NewNop()}
	res, err := runner.Migrate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Result{Total: 2, Migrated: 1, Failed: 1}, res)
	assert.Contains(t, store.written, "e2")
}

func TestBatchMigrateFatalOnListFailure(t *testing.T) {
	store := &fakeStore{listErr: errors.New("connection refused")}
	runner := &Runner{Store: store, Logger: zap.NewNop()}

	_, err := runner.Migrate(context.Background())
	assert.Error(t, err)
}

func TestBatchRollbackRestoresLegacyDocuments(t *testing.T) {
	wh := Migrate([]models.LegacyDay{{Day: "quarta", Times: []string{"09:00"}}})
	raw, err := bson.Marshal(wh)
	require.NoError(t, err)
	var stored bson.D
	require.NoError(t, bson.Unmarshal(raw, &stored))

	store := &fakeStore{records: []models.EmployeeScheduleRecord{
		{EmployeeID: "e1", Name: "Ana", Schedule: stored},
		{EmployeeID: "e2", Name: "Bruno", Schedule: bson.D{{Key: "quarta", Value: bson.A{"09:00"}}}},
	}}

	runner := &Runner{Store: store, Logger: zap.NewNop()}
	res, err := runner.Rollback(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Result{Total: 2, Migrated: 1, Skipped: 1}, res)
	assert.Equal(t, bson.D{{Key: "quarta", Value: bson.A{"09:00"}}}, store.written["e1"])
}
