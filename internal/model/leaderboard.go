package model

import (
	"context"

	"github.com/google/uuid"
)

// LeaderboardStore defines the scoring aggregation over users, activity
// entries and weight records.
type LeaderboardStore interface {
	Top(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	PointsExercise int       `json:"points_exercise"`
	PointsWeight   int       `json:"points_weight"`
	TotalPoints    int       `json:"total_points"`
}
