package models

import (
	"time"

	"gorm.io/gorm"
)

// WeightRecord is one day's weight/BMI/TDEE snapshot. At most one row per
// (user, date): logging twice on the same calendar day overwrites the
// earlier row (last-write-wins upsert).
type WeightRecord struct {
	gorm.Model
	UserID   uint      `gorm:"index:idx_weight_user_date,unique;not null" json:"-"`
	Date     time.Time `gorm:"index:idx_weight_user_date,unique;not null" json:"date"`
	BMI      float64   `json:"bmi"` // 1 decimal
	WeightKg float64   `json:"weight_kg"`
	TDEE     int       `json:"tdee"`
}
