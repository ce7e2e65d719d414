package controllers

import (
	"net/http"

	"healthtracker/services"

	"github.com/gin-gonic/gin"
)

type LogWeightInput struct {
	WeightKg float64 `json:"weight_kg" binding:"required"`
}

type WeightController struct {
	Weights *services.WeightService
	History *services.HistoryService
}

func NewWeightController(weights *services.WeightService, history *services.HistoryService) *WeightController {
	return &WeightController{Weights: weights, History: history}
}

// LogWeight upserts today's weight entry and returns the computed BMI along
// with the refreshed series the dashboard charts.
func (h *WeightController) LogWeight(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input LogWeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bmi, category, err := h.Weights.LogWeight(userID, input.WeightKg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	history, err := h.Weights.History(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	comparison, err := h.History.ComparisonSeries(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bmi":        bmi,
		"category":   category,
		"history":    history,
		"comparison": comparison,
	})
}

func (h *WeightController) GetHistory(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	history, err := h.Weights.History(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}
