package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/plushealth/plushealth-server/internal/logger"
	"github.com/plushealth/plushealth-server/internal/model"
)

// WeightService defines the weight journal operations.
type WeightService interface {
	RecordWeight(ctx context.Context, userID uuid.UUID, weight float64, recordDate time.Time) (model.WeightRecord, error)
	GetHistory(ctx context.Context, userID uuid.UUID) ([]model.WeightRecord, error)
}

// Weight handles HTTP endpoints for the weight journal.
type Weight struct {
	weightService WeightService
	logger        *logger.Logger
}

// NewWeight creates a new Weight handler.
func NewWeight(weightService WeightService, logger *logger.Logger) *Weight {
	return &Weight{
		weightService: weightService,
		logger:        logger,
	}
}

type recordWeightRequest struct {
	UserID string  `json:"user_id"`
	Weight float64 `json:"weight"`
	Date   string  `json:"date"`
}

// RecordWeight handles POST /dashboard/peso.
func (h *Weight) RecordWeight(c *gin.Context) {
	var req recordWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID, err := parseID(req.UserID)
	if err != nil {
		handleError(c, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		handleError(c, err)
		return
	}

	record, err := h.weightService.RecordWeight(c.Request.Context(), userID, req.Weight, date)
	if err != nil {
		h.logger.Error("Weight handler: failed to record weight",
			"user_id", userID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetHistory handles GET /dashboard/evolucao-peso/:userId and
// GET /dashboard/peso?user_id=. The response order is the rendering order of
// the time series.
func (h *Weight) GetHistory(c *gin.Context) {
	raw := c.Param("userId")
	if raw == "" {
		raw = c.Query("user_id")
	}
	userID, err := parseID(raw)
	if err != nil {
		handleError(c, err)
		return
	}

	records, err := h.weightService.GetHistory(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Weight handler: failed to get history",
			"user_id", userID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
