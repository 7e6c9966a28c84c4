package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/plushealth/plushealth-server/internal/model"
)

var _ model.ActivityStore = (*ActivityRepository)(nil)

type ActivityRepository struct {
	db *Connection
}

func NewActivityRepository(db *Connection) *ActivityRepository {
	return &ActivityRepository{
		db: db,
	}
}

const activityColumns = `id, user_id, kind, description, scheduled_date, completed`

func scanActivityEntry(row pgx.Row) (model.ActivityEntry, error) {
	var entry model.ActivityEntry
	err := row.Scan(
		&entry.ID, &entry.UserID, &entry.Kind,
		&entry.Description, &entry.ScheduledDate, &entry.Completed,
	)
	return entry, err
}

func (r *ActivityRepository) Create(ctx context.Context, entry model.ActivityEntry) (model.ActivityEntry, error) {
	query := `INSERT INTO activity_entries (id, user_id, kind, description, scheduled_date, completed)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + activityColumns

	savedEntry, err := scanActivityEntry(r.db.QueryRow(ctx, query,
		entry.ID, entry.UserID, entry.Kind, entry.Description, entry.ScheduledDate, entry.Completed,
	))
	if err != nil {
		return model.ActivityEntry{}, fmt.Errorf("failed to create activity entry: %w", err)
	}

	return savedEntry, nil
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID uuid.UUID, kind model.ActivityKind) ([]model.ActivityEntry, error) {
	query := `SELECT ` + activityColumns + `
			  FROM activity_entries WHERE user_id = $1 AND kind = $2`

	rows, err := r.db.Query(ctx, query, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity entries: %w", err)
	}
	defer rows.Close()

	entries := []model.ActivityEntry{}
	for rows.Next() {
		entry, err := scanActivityEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activity entries: %w", err)
	}

	return entries, nil
}

// MarkComplete sets completed unconditionally; marking an already completed
// entry is a no-op that still returns the row.
func (r *ActivityRepository) MarkComplete(ctx context.Context, id uuid.UUID, kind model.ActivityKind) (model.ActivityEntry, error) {
	query := `UPDATE activity_entries SET completed = TRUE
			  WHERE id = $1 AND kind = $2
			  RETURNING ` + activityColumns

	entry, err := scanActivityEntry(r.db.QueryRow(ctx, query, id, kind))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ActivityEntry{}, model.ErrNotFound
		}
		return model.ActivityEntry{}, fmt.Errorf("failed to mark activity entry complete: %w", err)
	}

	return entry, nil
}
