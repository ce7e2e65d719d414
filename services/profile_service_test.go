package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfileInput() ProfileInput {
	return ProfileInput{
		HeightCm: 170, WeightKg: 70, Age: 25,
		Gender: "Male", ActivityLevel: "Moderately active",
	}
}

func TestProfileGet_DefaultsWhenUnsaved(t *testing.T) {
	profiles := NewProfileService(newTestDB(t))

	p, err := profiles.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 170.0, p.HeightCm)
	assert.Equal(t, 70.0, p.WeightKg)
	assert.Equal(t, 25, p.Age)
	assert.Equal(t, "Male", p.Gender)
	assert.Equal(t, "Moderately active", p.ActivityLevel)
}

func TestProfilePutGet_Roundtrip(t *testing.T) {
	profiles := NewProfileService(newTestDB(t))

	input := ProfileInput{
		HeightCm: 165, WeightKg: 58, Age: 31,
		Gender: "Female", ActivityLevel: "Very active",
	}
	_, err := profiles.Put(2, input)
	require.NoError(t, err)

	p, err := profiles.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 165.0, p.HeightCm)
	assert.Equal(t, 58.0, p.WeightKg)
	assert.Equal(t, 31, p.Age)
	assert.Equal(t, "Female", p.Gender)
	assert.Equal(t, "Very active", p.ActivityLevel)
}

func TestProfilePut_Validation(t *testing.T) {
	profiles := NewProfileService(newTestDB(t))

	cases := []struct {
		name  string
		mutFn func(*ProfileInput)
	}{
		{"zero height", func(in *ProfileInput) { in.HeightCm = 0 }},
		{"negative weight", func(in *ProfileInput) { in.WeightKg = -1 }},
		{"age below range", func(in *ProfileInput) { in.Age = 9 }},
		{"age above range", func(in *ProfileInput) { in.Age = 101 }},
		{"unknown gender", func(in *ProfileInput) { in.Gender = "Other" }},
		{"unknown activity level", func(in *ProfileInput) { in.ActivityLevel = "couch potato" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validProfileInput()
			tc.mutFn(&input)
			_, err := profiles.Put(1, input)
			assert.Error(t, err)
		})
	}
}

// Saving twice keeps a single row per user.
func TestProfilePut_UpsertsSingleRow(t *testing.T) {
	db := newTestDB(t)
	profiles := NewProfileService(db)

	_, err := profiles.Put(1, validProfileInput())
	require.NoError(t, err)

	updated := validProfileInput()
	updated.Age = 26
	_, err = profiles.Put(1, updated)
	require.NoError(t, err)

	p, err := profiles.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 26, p.Age)

	var count int64
	require.NoError(t, db.Model(p).Where("user_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProfileSetWeight_CreatesDefaultRow(t *testing.T) {
	profiles := NewProfileService(newTestDB(t))

	require.NoError(t, profiles.SetWeight(9, 82))

	p, err := profiles.Get(9)
	require.NoError(t, err)
	assert.Equal(t, 82.0, p.WeightKg)
	assert.Equal(t, 170.0, p.HeightCm, "other fields fall back to defaults")
}
