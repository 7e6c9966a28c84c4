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

// GoalService defines the weekly goal operations.
type GoalService interface {
	CreateGoal(ctx context.Context, userID uuid.UUID, description string, targetDate time.Time) (model.Goal, error)
	MarkGoalComplete(ctx context.Context, id uuid.UUID) (model.Goal, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]model.Goal, error)
}

// Goal handles HTTP endpoints for the goal tracker.
type Goal struct {
	goalService GoalService
	logger      *logger.Logger
}

// NewGoal creates a new Goal handler.
func NewGoal(goalService GoalService, logger *logger.Logger) *Goal {
	return &Goal{
		goalService: goalService,
		logger:      logger,
	}
}

type createGoalRequest struct {
	UserID      string `json:"user_id"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// CreateGoal handles POST /metas. The stored target date is the start of the
// submitted date's week.
func (h *Goal) CreateGoal(c *gin.Context) {
	var req createGoalRequest
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

	goal, err := h.goalService.CreateGoal(c.Request.Context(), userID, req.Description, date)
	if err != nil {
		h.logger.Error("Goal handler: failed to create goal",
			"user_id", userID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// MarkComplete handles PUT /metas/:id.
func (h *Goal) MarkComplete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	goal, err := h.goalService.MarkGoalComplete(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Goal handler: failed to mark goal complete",
			"goal_id", id,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// ListGoals handles GET /metas/:userId and GET /dashboard/metas/:userId.
func (h *Goal) ListGoals(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		handleError(c, err)
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Goal handler: failed to list goals",
			"user_id", userID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}
