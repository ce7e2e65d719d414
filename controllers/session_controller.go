package controllers

import (
	"net/http"

	"healthtracker/services"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	Svc *services.SessionService
}

func NewSessionController(svc *services.SessionService) *SessionController {
	return &SessionController{Svc: svc}
}

// GetSession returns the full dashboard bootstrap payload: profile, weight
// history, food log, and the comparison series.
func (h *SessionController) GetSession(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	session, err := h.Svc.Build(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}
