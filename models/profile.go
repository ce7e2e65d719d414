package models

import (
	"gorm.io/gorm"
)

// Profile holds each user's body measurements used for BMI and TDEE
// calculations. One row per user, mutated in place on profile save or
// weight log; no history is kept for the profile itself.
type Profile struct {
	gorm.Model
	UserID        uint    `gorm:"uniqueIndex;not null" json:"-"`
	HeightCm      float64 `json:"height_cm"`      // e.g. 170
	WeightKg      float64 `json:"weight_kg"`      // latest logged weight
	Age           int     `json:"age"`            // 10–100
	Gender        string  `json:"gender"`         // "Male" | "Female"
	ActivityLevel string  `json:"activity_level"` // "Sedentary" … "Extremely active"
}
