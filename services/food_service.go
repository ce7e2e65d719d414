package services

import (
	"errors"
	"strings"
	"time"

	"healthtracker/models"

	"gorm.io/gorm"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

// Add appends a food entry to today's log. The log is append-only: multiple
// entries per day are expected.
func (s *FoodService) Add(userID uint, foodName string, calories int) (*models.FoodRecord, error) {
	foodName = strings.TrimSpace(foodName)
	if foodName == "" {
		return nil, errors.New("food name is required")
	}
	if calories < 0 {
		return nil, errors.New("calories must be non-negative")
	}

	rec := models.FoodRecord{
		UserID:   userID,
		Date:     dayStartLocal(time.Now()),
		FoodName: foodName,
		Calories: calories,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns the user's food log ordered by date, oldest first. Entries on
// the same day keep insertion order.
func (s *FoodService) List(userID uint) ([]models.FoodRecord, error) {
	var records []models.FoodRecord
	err := s.db.
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&records).Error
	return records, err
}
