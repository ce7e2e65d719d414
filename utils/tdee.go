package utils

import (
	"math"

	"healthtracker/models"
)

// ActivityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels — also used
// for input validation when saving a profile.
var ActivityMultipliers = map[string]float64{
	"Sedentary":         1.2,
	"Lightly active":    1.375,
	"Moderately active": 1.55,
	"Very active":       1.725,
	"Extremely active":  1.9,
}

const defaultActivityMultiplier = 1.2

// CalculateBMRTDEE computes BMR (Harris-Benedict revised constants) and TDEE
// from the profile and a specific weight in kilograms. The weight argument is
// passed separately from the profile so a freshly logged weight can be used
// before the profile row is updated. Both values are rounded to the nearest
// whole calorie.
func CalculateBMRTDEE(profile models.Profile, weightKg float64) (bmr, tdee int) {
	var bmrF float64
	if profile.Gender == "Male" {
		bmrF = 88.362 + 13.397*weightKg + 4.799*profile.HeightCm - 5.677*float64(profile.Age)
	} else {
		bmrF = 447.593 + 9.247*weightKg + 3.098*profile.HeightCm - 4.330*float64(profile.Age)
	}

	mult, found := ActivityMultipliers[profile.ActivityLevel]
	if !found {
		mult = defaultActivityMultiplier
	}

	return int(math.Round(bmrF)), int(math.Round(bmrF * mult))
}

// CalorieTargets returns the daily calorie targets for weight loss,
// maintenance, and weight gain derived from a TDEE (±500 kcal).
func CalorieTargets(tdee int) (loss, maintenance, gain int) {
	return tdee - 500, tdee, tdee + 500
}
