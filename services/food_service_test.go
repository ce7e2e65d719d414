package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The food log is append-only: several entries on the same day coexist.
func TestFoodAdd_AppendOnly(t *testing.T) {
	foods := NewFoodService(newTestDB(t))

	for _, entry := range []struct {
		name     string
		calories int
	}{
		{"Banana", 100},
		{"Rice", 250},
		{"Apple", 50},
	} {
		_, err := foods.Add(1, entry.name, entry.calories)
		require.NoError(t, err)
	}

	log, err := foods.List(1)
	require.NoError(t, err)
	require.Len(t, log, 3)
	assert.Equal(t, "Banana", log[0].FoodName)
	assert.Equal(t, "Apple", log[2].FoodName)
}

func TestFoodAdd_Validation(t *testing.T) {
	foods := NewFoodService(newTestDB(t))

	_, err := foods.Add(1, "   ", 100)
	assert.Error(t, err, "blank food name")

	_, err = foods.Add(1, "Banana", -1)
	assert.Error(t, err, "negative calories")

	_, err = foods.Add(1, "Water", 0)
	assert.NoError(t, err, "zero calories is a valid entry")
}

func TestFoodList_ScopedToUser(t *testing.T) {
	foods := NewFoodService(newTestDB(t))

	_, err := foods.Add(1, "Banana", 100)
	require.NoError(t, err)
	_, err = foods.Add(2, "Rice", 250)
	require.NoError(t, err)

	log, err := foods.List(1)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, "Banana", log[0].FoodName)
}
