package utils

import (
	"fmt"
	"math"
)

// CalculateBMI expects height in centimeters and weight in kilograms and
// returns the BMI formatted to one decimal plus its category. Invalid input
// (non-finite values, height <= 0) degrades to ("0.0", "N/A") rather than an
// error so callers can render the result directly.
func CalculateBMI(heightCm, weightKg float64) (string, string) {
	if heightCm <= 0 || math.IsNaN(heightCm) || math.IsInf(heightCm, 0) ||
		math.IsNaN(weightKg) || math.IsInf(weightKg, 0) {
		return "0.0", "N/A"
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return fmt.Sprintf("%.1f", bmi), BMICategory(bmi)
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}
