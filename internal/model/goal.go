package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GoalStore defines persistence operations for weekly goals.
type GoalStore interface {
	Create(ctx context.Context, goal Goal) (Goal, error)
	MarkComplete(ctx context.Context, id uuid.UUID) (Goal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Goal, error)
}

// Goal represents a weekly goal. TargetDate is always the start of the week
// the goal belongs to (the Sunday on or before the submitted date, midnight).
type Goal struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Description string    `json:"description"`
	TargetDate  time.Time `json:"target_date"`
	Completed   bool      `json:"completed"`
}
