package postgres

import (
	"context"
	"fmt"

	"github.com/plushealth/plushealth-server/internal/model"
)

var _ model.LeaderboardStore = (*LeaderboardRepository)(nil)

type LeaderboardRepository struct {
	db *Connection
}

func NewLeaderboardRepository(db *Connection) *LeaderboardRepository {
	return &LeaderboardRepository{
		db: db,
	}
}

// Top computes the point score per user. Every user appears in the join, so
// one with no completed exercises and no weight records scores zero. Ties are
// broken by user id ascending to keep the order deterministic.
func (r *LeaderboardRepository) Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	query := `SELECT u.id, u.name,
					 COALESCE(e.cnt, 0) * 10 AS points_exercise,
					 COALESCE(w.cnt, 0) * 5 AS points_weight,
					 COALESCE(e.cnt, 0) * 10 + COALESCE(w.cnt, 0) * 5 AS total_points
			  FROM users u
			  LEFT JOIN (
					SELECT user_id, COUNT(*) AS cnt
					FROM activity_entries
					WHERE kind = 'exercise' AND completed
					GROUP BY user_id
			  ) e ON e.user_id = u.id
			  LEFT JOIN (
					SELECT user_id, COUNT(*) AS cnt
					FROM weight_records
					GROUP BY user_id
			  ) w ON w.user_id = u.id
			  ORDER BY total_points DESC, u.id ASC
			  LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	entries := []model.LeaderboardEntry{}
	for rows.Next() {
		var entry model.LeaderboardEntry
		if err := rows.Scan(
			&entry.UserID, &entry.Name,
			&entry.PointsExercise, &entry.PointsWeight, &entry.TotalPoints,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	return entries, nil
}
