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

// ActivityService defines the food and exercise log operations.
type ActivityService interface {
	LogEntry(ctx context.Context, kind model.ActivityKind, userID uuid.UUID, description string, scheduledDate time.Time) (model.ActivityEntry, error)
	ListEntries(ctx context.Context, kind model.ActivityKind, userID uuid.UUID) ([]model.ActivityEntry, error)
	MarkComplete(ctx context.Context, kind model.ActivityKind, id uuid.UUID) (model.ActivityEntry, error)
	LogCompletedExercise(ctx context.Context, userID uuid.UUID, name string, date time.Time) (model.ActivityEntry, error)
}

// Activity handles HTTP endpoints for the activity log. The same handler
// serves both kinds; the route binds the kind.
type Activity struct {
	activityService ActivityService
	logger          *logger.Logger
}

// NewActivity creates a new Activity handler.
func NewActivity(activityService ActivityService, logger *logger.Logger) *Activity {
	return &Activity{
		activityService: activityService,
		logger:          logger,
	}
}

type logEntryRequest struct {
	UserID      string `json:"user_id"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// LogEntry handles POST /alimentacao and POST /exercicios.
func (h *Activity) LogEntry(kind model.ActivityKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req logEntryRequest
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

		entry, err := h.activityService.LogEntry(c.Request.Context(), kind, userID, req.Description, date)
		if err != nil {
			h.logger.Error("Activity handler: failed to log entry",
				"user_id", userID,
				"kind", kind,
				"error", err.Error())
			handleError(c, err)
			return
		}

		c.JSON(http.StatusCreated, entry)
	}
}

// ListEntries handles GET /alimentacao/:userId and GET /exercicios/:userId.
func (h *Activity) ListEntries(kind model.ActivityKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := parseID(c.Param("userId"))
		if err != nil {
			handleError(c, err)
			return
		}

		entries, err := h.activityService.ListEntries(c.Request.Context(), kind, userID)
		if err != nil {
			h.logger.Error("Activity handler: failed to list entries",
				"user_id", userID,
				"kind", kind,
				"error", err.Error())
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, entries)
	}
}

// MarkComplete handles PUT /alimentacao/:id and PUT /exercicios/:id.
func (h *Activity) MarkComplete(kind model.ActivityKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			handleError(c, err)
			return
		}

		entry, err := h.activityService.MarkComplete(c.Request.Context(), kind, id)
		if err != nil {
			h.logger.Error("Activity handler: failed to mark entry complete",
				"entry_id", id,
				"kind", kind,
				"error", err.Error())
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, entry)
	}
}

type completedExerciseRequest struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Date   string `json:"date"`
}

// LogCompletedExercise handles POST /dashboard/exercicio/concluido, the
// dashboard quick-complete action.
func (h *Activity) LogCompletedExercise(c *gin.Context) {
	var req completedExerciseRequest
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

	entry, err := h.activityService.LogCompletedExercise(c.Request.Context(), userID, req.Name, date)
	if err != nil {
		h.logger.Error("Activity handler: failed to log completed exercise",
			"user_id", userID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}
