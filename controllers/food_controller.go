package controllers

import (
	"net/http"

	"healthtracker/services"

	"github.com/gin-gonic/gin"
)

type AddFoodInput struct {
	FoodName string `json:"food_name" binding:"required"`
	Calories *int   `json:"calories" binding:"required"`
}

type FoodController struct {
	Foods   *services.FoodService
	History *services.HistoryService
}

func NewFoodController(foods *services.FoodService, history *services.HistoryService) *FoodController {
	return &FoodController{Foods: foods, History: history}
}

// AddFood appends a food entry for today and returns the updated log plus the
// refreshed comparison series.
func (h *FoodController) AddFood(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input AddFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Foods.Add(userID, input.FoodName, *input.Calories); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.Foods.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	comparison, err := h.History.ComparisonSeries(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"food_log": log, "comparison": comparison})
}

func (h *FoodController) GetFoodLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	log, err := h.Foods.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, log)
}
