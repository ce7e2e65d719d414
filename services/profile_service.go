package services

import (
	"errors"
	"fmt"

	"healthtracker/models"
	"healthtracker/utils"

	"gorm.io/gorm"
)

// defaultProfile is returned for users who have not saved a profile yet.
var defaultProfile = models.Profile{
	HeightCm:      170,
	WeightKg:      70,
	Age:           25,
	Gender:        "Male",
	ActivityLevel: "Moderately active",
}

type ProfileInput struct {
	HeightCm      float64 `json:"height_cm" binding:"required"`
	WeightKg      float64 `json:"weight_kg" binding:"required"`
	Age           int     `json:"age" binding:"required"`
	Gender        string  `json:"gender" binding:"required"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
}

type ProfileService struct{ db *gorm.DB }

func NewProfileService(db *gorm.DB) *ProfileService { return &ProfileService{db: db} }

// Get returns the stored profile, or the defaults if the user never saved one.
func (s *ProfileService) Get(userID uint) (*models.Profile, error) {
	var p models.Profile
	err := s.db.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = defaultProfile
		p.UserID = userID
		return &p, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Put validates and upserts the user's profile row.
func (s *ProfileService) Put(userID uint, input ProfileInput) (*models.Profile, error) {
	if input.HeightCm <= 0 {
		return nil, errors.New("height must be positive")
	}
	if input.WeightKg <= 0 {
		return nil, errors.New("weight must be positive")
	}
	if input.Age < 10 || input.Age > 100 {
		return nil, errors.New("age must be between 10 and 100")
	}
	if input.Gender != "Male" && input.Gender != "Female" {
		return nil, errors.New("gender must be Male or Female")
	}
	if _, ok := utils.ActivityMultipliers[input.ActivityLevel]; !ok {
		return nil, fmt.Errorf("unknown activity level %q", input.ActivityLevel)
	}

	p := models.Profile{
		UserID:        userID,
		HeightCm:      input.HeightCm,
		WeightKg:      input.WeightKg,
		Age:           input.Age,
		Gender:        input.Gender,
		ActivityLevel: input.ActivityLevel,
	}
	err := s.db.
		Where("user_id = ?", userID).
		Assign(p).
		FirstOrCreate(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SetWeight records the latest logged weight on the profile. Users who log a
// weight before saving a profile get the defaults with the new weight.
func (s *ProfileService) SetWeight(userID uint, weightKg float64) error {
	var p models.Profile
	err := s.db.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = defaultProfile
		p.UserID = userID
		p.WeightKg = weightKg
		return s.db.Create(&p).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&p).Update("weight_kg", weightKg).Error
}
