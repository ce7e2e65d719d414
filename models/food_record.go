package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodRecord is a single logged food item. Append-only: any number of rows
// per (user, date).
type FoodRecord struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"-"`
	Date     time.Time `gorm:"index;not null" json:"date"`
	FoodName string    `gorm:"not null" json:"food_name"`
	Calories int       `json:"calories"` // non-negative
}
