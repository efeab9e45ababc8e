package schedule

import (
	"testing"

	"backmoney/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestRollbackReversesMigrate(t *testing.T) {
	days := []models.LegacyDay{
		{Day: "segunda", Times: []string{"08:00", "10:00"}},
		{Day: "sexta", Times: []string{"14:00"}},
	}
	restored := Rollback(Migrate(days))
	assert.Equal(t, days, restored)
}

func TestRollbackGroupsByFirstSlotOccurrence(t *testing.T) {
	wh := models.WorkingHours{TimeSlots: []models.TimeSlot{
		{DayOfWeek: 6, StartTime: "10:00"},
		{DayOfWeek: 1, StartTime: "08:00"},
		{DayOfWeek: 6, StartTime: "14:00"},
	}}
	days := Rollback(wh)
	require.Len(t, days, 2)
	assert.Equal(t, models.LegacyDay{Day: "sabado", Times: []string{"10:00", "14:00"}}, days[0])
	assert.Equal(t, models.LegacyDay{Day: "segunda", Times: []string{"08:00"}}, days[1])
}

func TestRollbackDropsOutOfRangeDays(t *testing.T) {
	wh := models.WorkingHours{TimeSlots: []models.TimeSlot{
		{DayOfWeek: 9, StartTime: "08:00"},
	}}
	assert.Empty(t, Rollback(wh))
}

func TestRollbackDocumentSkipsUnmigrated(t *testing.T) {
	doc := bson.D{{Key: "segunda", Value: bson.A{"08:00"}}}
	out, status := RollbackDocument(doc)
	assert.Equal(t, StatusSkipped, status)
	assert.Equal(t, doc, out)
}

func TestRollbackDocumentRestoresLegacyShape(t *testing.T) {
	wh := Migrate([]models.LegacyDay{
		{Day: "terca", Times: []string{"09:00", "11:00"}},
	})
	raw, err := bson.Marshal(wh)
	require.NoError(t, err)
	var stored bson.D
	require.NoError(t, bson.Unmarshal(raw, &stored))

	out, status := RollbackDocument(stored)
	require.Equal(t, StatusMigrated, status)
	assert.Equal(t, bson.D{{Key: "terca", Value: bson.A{"09:00", "11:00"}}}, out)
}
