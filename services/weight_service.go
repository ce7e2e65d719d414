package services

import (
	"errors"
	"strconv"
	"time"

	"healthtracker/models"
	"healthtracker/utils"

	"gorm.io/gorm"
)

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

type WeightService struct {
	db       *gorm.DB
	profiles *ProfileService
}

func NewWeightService(db *gorm.DB, profiles *ProfileService) *WeightService {
	return &WeightService{db: db, profiles: profiles}
}

// LogWeight computes BMI and TDEE for the given weight, records it as the
// profile's latest weight, and upserts today's WeightRecord. A second log on
// the same calendar day overwrites the first (last write wins).
func (s *WeightService) LogWeight(userID uint, weightKg float64) (bmiValue, category string, err error) {
	if weightKg <= 0 {
		return "", "", errors.New("weight must be positive")
	}

	profile, err := s.profiles.Get(userID)
	if err != nil {
		return "", "", err
	}

	bmiValue, category = utils.CalculateBMI(profile.HeightCm, weightKg)
	_, tdee := utils.CalculateBMRTDEE(*profile, weightKg)
	bmi, _ := strconv.ParseFloat(bmiValue, 64)

	if err := s.profiles.SetWeight(userID, weightKg); err != nil {
		return "", "", err
	}

	start := dayStartLocal(time.Now())
	rec := models.WeightRecord{
		UserID:   userID,
		Date:     start,
		BMI:      bmi,
		WeightKg: weightKg,
		TDEE:     tdee,
	}

	// Upsert by (user_id, date @ local midnight)
	err = s.db.
		Where("user_id = ? AND date = ?", userID, start).
		Assign(rec).
		FirstOrCreate(&rec).Error
	return bmiValue, category, err
}

// EnsureTodayEntry inserts today's weight/BMI/TDEE snapshot from the stored
// profile if no record exists for today yet. Called on login so the goal
// series always has a row for the current day.
func (s *WeightService) EnsureTodayEntry(userID uint) error {
	start := dayStartLocal(time.Now())

	var count int64
	if err := s.db.
		Model(&models.WeightRecord{}).
		Where("user_id = ? AND date = ?", userID, start).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	profile, err := s.profiles.Get(userID)
	if err != nil {
		return err
	}

	bmiStr, _ := utils.CalculateBMI(profile.HeightCm, profile.WeightKg)
	bmi, _ := strconv.ParseFloat(bmiStr, 64)
	_, tdee := utils.CalculateBMRTDEE(*profile, profile.WeightKg)

	rec := models.WeightRecord{
		UserID:   userID,
		Date:     start,
		BMI:      bmi,
		WeightKg: profile.WeightKg,
		TDEE:     tdee,
	}
	return s.db.Create(&rec).Error
}

// History returns the user's weight records ordered by date ascending.
func (s *WeightService) History(userID uint) ([]models.WeightRecord, error) {
	var records []models.WeightRecord
	err := s.db.
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&records).Error
	return records, err
}
