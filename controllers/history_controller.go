package controllers

import (
	"net/http"

	"healthtracker/services"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	Svc *services.HistoryService
}

func NewHistoryController(svc *services.HistoryService) *HistoryController {
	return &HistoryController{Svc: svc}
}

// GetComparison returns the daily calorie-intake-vs-goal series.
func (h *HistoryController) GetComparison(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	series, err := h.Svc.ComparisonSeries(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, series)
}

// --- helpers ---

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}
