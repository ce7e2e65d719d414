package services

import (
	"fmt"
	"testing"

	"healthtracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory sqlite database with the full schema.
// The DSN is keyed by test name so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.WeightRecord{},
		&models.FoodRecord{},
	))
	return db
}

func newWeightService(t *testing.T) (*WeightService, *ProfileService, *gorm.DB) {
	db := newTestDB(t)
	profiles := NewProfileService(db)
	return NewWeightService(db, profiles), profiles, db
}

// Logging twice on the same calendar day leaves exactly one record with the
// second entry's values.
func TestLogWeight_UpsertSameDay(t *testing.T) {
	weights, profiles, db := newWeightService(t)
	_, err := profiles.Put(1, ProfileInput{
		HeightCm: 170, WeightKg: 70, Age: 25,
		Gender: "Male", ActivityLevel: "Moderately active",
	})
	require.NoError(t, err)

	bmi, category, err := weights.LogWeight(1, 70)
	require.NoError(t, err)
	assert.Equal(t, "24.2", bmi)
	assert.Equal(t, "Normal", category)

	_, _, err = weights.LogWeight(1, 72)
	require.NoError(t, err)

	var records []models.WeightRecord
	require.NoError(t, db.Where("user_id = ?", 1).Find(&records).Error)
	require.Len(t, records, 1, "same-day log must overwrite, not append")
	assert.Equal(t, 72.0, records[0].WeightKg)
	// TDEE recomputed for 72kg: round((88.362 + 13.397*72 + 4.799*170 - 5.677*25) * 1.55)
	assert.Equal(t, 2677, records[0].TDEE)

	profile, err := profiles.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 72.0, profile.WeightKg, "latest weight lands on the profile")
}

func TestLogWeight_RejectsNonPositiveWeight(t *testing.T) {
	weights, _, _ := newWeightService(t)
	_, _, err := weights.LogWeight(1, 0)
	assert.Error(t, err)
	_, _, err = weights.LogWeight(1, -5)
	assert.Error(t, err)
}

// A user who logs a weight before ever saving a profile gets the default
// profile, carrying the logged weight.
func TestLogWeight_WithoutSavedProfile(t *testing.T) {
	weights, profiles, db := newWeightService(t)

	bmi, category, err := weights.LogWeight(7, 80)
	require.NoError(t, err)
	assert.Equal(t, "27.7", bmi) // 80 / 1.70^2
	assert.Equal(t, "Overweight", category)

	profile, err := profiles.Get(7)
	require.NoError(t, err)
	assert.Equal(t, 80.0, profile.WeightKg)

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Where("user_id = ?", 7).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnsureTodayEntry_Idempotent(t *testing.T) {
	weights, _, db := newWeightService(t)

	require.NoError(t, weights.EnsureTodayEntry(3))
	require.NoError(t, weights.EnsureTodayEntry(3))

	var records []models.WeightRecord
	require.NoError(t, db.Where("user_id = ?", 3).Find(&records).Error)
	require.Len(t, records, 1)
	// Default profile: 170cm / 70kg / 25 / Male / Moderately active
	assert.Equal(t, 24.2, records[0].BMI)
	assert.Equal(t, 2635, records[0].TDEE)
}

// EnsureTodayEntry must not clobber a weight the user already logged today.
func TestEnsureTodayEntry_KeepsExistingRow(t *testing.T) {
	weights, _, db := newWeightService(t)

	_, _, err := weights.LogWeight(4, 90)
	require.NoError(t, err)
	require.NoError(t, weights.EnsureTodayEntry(4))

	var records []models.WeightRecord
	require.NoError(t, db.Where("user_id = ?", 4).Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, 90.0, records[0].WeightKg)
}
