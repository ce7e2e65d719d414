package services

import (
	"sort"
	"time"

	"healthtracker/models"

	"gorm.io/gorm"
)

// defaultGoalCalories is applied to days that fall before the user's first
// weight entry, when no TDEE has been computed yet.
const defaultGoalCalories = 2000

const (
	StatusOverGoal    = "Over Goal"
	StatusUnderOnGoal = "Under/On Goal"
)

// DailyComparison is one day in the calorie-intake-vs-goal series. Derived
// fresh from the weight and food logs on every read; never persisted.
type DailyComparison struct {
	Date                string `json:"date"`
	ActualCalorieIntake int    `json:"actual_calorie_intake"`
	Goal                int    `json:"goal"`
	Status              string `json:"status"`
}

type HistoryService struct{ db *gorm.DB }

func NewHistoryService(db *gorm.DB) *HistoryService { return &HistoryService{db: db} }

// ComparisonSeries loads the user's weight and food logs and merges them into
// the daily comparison series.
func (s *HistoryService) ComparisonSeries(userID uint) ([]DailyComparison, error) {
	var weights []models.WeightRecord
	if err := s.db.
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&weights).Error; err != nil {
		return nil, err
	}

	var foods []models.FoodRecord
	if err := s.db.
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&foods).Error; err != nil {
		return nil, err
	}

	return ReconcileHistory(weights, foods), nil
}

// ReconcileHistory merges a per-day weight series (carrying the TDEE goal for
// each logged day) with an append-only food log into the daily comparison
// series. Always a full recompute: forward-filling means a weight entry
// inserted for a past date can change the effective goal of later days, so
// incremental updates would produce stale rows.
//
// Days where nothing was eaten are omitted from the result, which is sorted
// ascending by date.
func ReconcileHistory(weights []models.WeightRecord, foods []models.FoodRecord) []DailyComparison {
	// Sum food calories per calendar day.
	intake := map[string]int{}
	for _, f := range foods {
		intake[dayKey(f.Date)] += f.Calories
	}

	// Goal per day from the weight log. One row per day, so plain assignment.
	goals := map[string]int{}
	for _, w := range weights {
		goals[dayKey(w.Date)] = w.TDEE
	}

	// Outer-join the two day axes.
	seen := map[string]bool{}
	days := make([]string, 0, len(goals)+len(intake))
	for d := range goals {
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	for d := range intake {
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Strings(days)

	// Forward-fill the goal chronologically; days before the first known
	// goal fall back to the default.
	out := make([]DailyComparison, 0, len(days))
	lastGoal := 0
	for _, d := range days {
		if g := goals[d]; g != 0 {
			lastGoal = g
		}
		goal := lastGoal
		if goal == 0 {
			goal = defaultGoalCalories
		}

		actual := intake[d]
		if actual <= 0 {
			continue
		}

		status := StatusUnderOnGoal
		if actual > goal && goal > 0 {
			status = StatusOverGoal
		}

		out = append(out, DailyComparison{
			Date:                d,
			ActualCalorieIntake: actual,
			Goal:                goal,
			Status:              status,
		})
	}
	return out
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }
