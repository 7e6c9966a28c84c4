package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plushealth/plushealth-server/internal/logger"
	"github.com/plushealth/plushealth-server/internal/model"
)

// LeaderboardService defines the scoring operations.
type LeaderboardService interface {
	ComputeLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
}

// Leaderboard handles HTTP endpoints for the points ranking.
type Leaderboard struct {
	leaderboardService LeaderboardService
	logger             *logger.Logger
}

// NewLeaderboard creates a new Leaderboard handler.
func NewLeaderboard(leaderboardService LeaderboardService, logger *logger.Logger) *Leaderboard {
	return &Leaderboard{
		leaderboardService: leaderboardService,
		logger:             logger,
	}
}

// GetRanking handles GET /dashboard/ranking.
func (h *Leaderboard) GetRanking(c *gin.Context) {
	entries, err := h.leaderboardService.ComputeLeaderboard(c.Request.Context())
	if err != nil {
		h.logger.Error("Leaderboard handler: failed to compute ranking",
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
