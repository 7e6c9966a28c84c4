package service

import (
	"context"
	"fmt"

	"github.com/plushealth/plushealth-server/internal/logger"
	"github.com/plushealth/plushealth-server/internal/model"
)

// leaderboardSize is the number of ranked users returned.
const leaderboardSize = 10

// Leaderboard derives the points ranking from completed exercises and weight
// records.
type Leaderboard struct {
	leaderboardStore model.LeaderboardStore
	logger           *logger.Logger
}

// NewLeaderboard creates a new Leaderboard service.
func NewLeaderboard(leaderboardStore model.LeaderboardStore, logger *logger.Logger) *Leaderboard {
	return &Leaderboard{
		leaderboardStore: leaderboardStore,
		logger:           logger,
	}
}

// ComputeLeaderboard returns the top users by total points, descending, ties
// broken by user id ascending.
func (l *Leaderboard) ComputeLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	entries, err := l.leaderboardStore.Top(ctx, leaderboardSize)
	if err != nil {
		l.logger.Error("Leaderboard service: failed to compute ranking",
			"error", err.Error())
		return nil, fmt.Errorf("failed to compute leaderboard: %w", err)
	}

	return entries, nil
}
