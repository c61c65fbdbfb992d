package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/career-path-advisor/internal/dtos"
	"github.com/justsurfingit/career-path-advisor/internal/services"
)

type CareerHandler struct {
	Service *services.CareerService
	Log     logrus.FieldLogger
}

func NewCareerHandler(svc *services.CareerService, log logrus.FieldLogger) *CareerHandler {
	return &CareerHandler{Service: svc, Log: log}
}

// SuggestCareer is the POST /api/career-suggestion endpoint
func (h *CareerHandler) SuggestCareer(c *gin.Context) {
	var req dtos.CareerSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	// the work finishes even if the client goes away
	ctx := context.WithoutCancel(c.Request.Context())

	suggestion, err := h.Service.Suggest(ctx, req.ToProfile())
	if err != nil {
		_ = c.Error(err)
		h.Log.WithError(err).Error("career suggestion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, suggestion)
}
