package services

import (
	"healthtracker/models"
)

// Session is the typed payload handed to the dashboard after login: the
// authenticated user's profile plus every series it renders. Built fresh per
// request and passed explicitly into engine calls; nothing here is shared
// mutable state.
type Session struct {
	UserID        uint                  `json:"user_id"`
	Profile       models.Profile        `json:"profile"`
	WeightHistory []models.WeightRecord `json:"weight_history"`
	FoodLog       []models.FoodRecord   `json:"food_log"`
	Comparison    []DailyComparison     `json:"comparison"`
}

type SessionService struct {
	profiles *ProfileService
	weights  *WeightService
	foods    *FoodService
}

func NewSessionService(profiles *ProfileService, weights *WeightService, foods *FoodService) *SessionService {
	return &SessionService{profiles: profiles, weights: weights, foods: foods}
}

// Build assembles the session payload. It first makes sure today has a
// weight/TDEE row so the comparison series carries a goal for the current
// day, then reconciles the two series.
func (s *SessionService) Build(userID uint) (*Session, error) {
	if err := s.weights.EnsureTodayEntry(userID); err != nil {
		return nil, err
	}

	profile, err := s.profiles.Get(userID)
	if err != nil {
		return nil, err
	}

	history, err := s.weights.History(userID)
	if err != nil {
		return nil, err
	}

	foods, err := s.foods.List(userID)
	if err != nil {
		return nil, err
	}

	return &Session{
		UserID:        userID,
		Profile:       *profile,
		WeightHistory: history,
		FoodLog:       foods,
		Comparison:    ReconcileHistory(history, foods),
	}, nil
}
