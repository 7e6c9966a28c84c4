package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/plushealth/plushealth-server/internal/model"
)

var _ model.GoalStore = (*GoalRepository)(nil)

type GoalRepository struct {
	db *Connection
}

func NewGoalRepository(db *Connection) *GoalRepository {
	return &GoalRepository{
		db: db,
	}
}

const goalColumns = `id, user_id, description, target_date, completed`

func scanGoal(row pgx.Row) (model.Goal, error) {
	var goal model.Goal
	err := row.Scan(&goal.ID, &goal.UserID, &goal.Description, &goal.TargetDate, &goal.Completed)
	return goal, err
}

func (r *GoalRepository) Create(ctx context.Context, goal model.Goal) (model.Goal, error) {
	query := `INSERT INTO goals (id, user_id, description, target_date, completed)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + goalColumns

	savedGoal, err := scanGoal(r.db.QueryRow(ctx, query,
		goal.ID, goal.UserID, goal.Description, goal.TargetDate, goal.Completed,
	))
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to create goal: %w", err)
	}

	return savedGoal, nil
}

func (r *GoalRepository) MarkComplete(ctx context.Context, id uuid.UUID) (model.Goal, error) {
	query := `UPDATE goals SET completed = TRUE
			  WHERE id = $1
			  RETURNING ` + goalColumns

	goal, err := scanGoal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Goal{}, model.ErrNotFound
		}
		return model.Goal{}, fmt.Errorf("failed to mark goal complete: %w", err)
	}

	return goal, nil
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Goal, error) {
	query := `SELECT ` + goalColumns + `
			  FROM goals WHERE user_id = $1
			  ORDER BY target_date ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	goals := []model.Goal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read goals: %w", err)
	}

	return goals, nil
}
