package controllers

import (
	"fmt"
	"net/http"

	"healthtracker/services"
	"healthtracker/utils"

	"github.com/gin-gonic/gin"
)

type MetricsController struct {
	Profiles *services.ProfileService
}

func NewMetricsController(profiles *services.ProfileService) *MetricsController {
	return &MetricsController{Profiles: profiles}
}

// GetMetabolism computes BMR, TDEE, and the loss/maintenance/gain calorie
// targets from the current profile.
func (h *MetricsController) GetMetabolism(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.Profiles.Get(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	bmr, tdee := utils.CalculateBMRTDEE(*profile, profile.WeightKg)
	loss, maintenance, gain := utils.CalorieTargets(tdee)

	c.JSON(http.StatusOK, gin.H{
		"bmr":  bmr,
		"tdee": tdee,
		"targets": gin.H{
			"loss":        loss,
			"maintenance": maintenance,
			"gain":        gain,
		},
		"based_on": fmt.Sprintf("Age %d, Height %.0f cm, Weight %.1f kg, Gender %s",
			profile.Age, profile.HeightCm, profile.WeightKg, profile.Gender),
	})
}
