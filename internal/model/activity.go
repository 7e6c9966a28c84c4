package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ActivityStore defines persistence operations for activity entries.
type ActivityStore interface {
	Create(ctx context.Context, entry ActivityEntry) (ActivityEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID, kind ActivityKind) ([]ActivityEntry, error)
	MarkComplete(ctx context.Context, id uuid.UUID, kind ActivityKind) (ActivityEntry, error)
}

// ActivityKind enumerates activity entry kinds.
type ActivityKind string

const (
	// ActivityKindFood is a food task entry.
	ActivityKindFood ActivityKind = "food"
	// ActivityKindExercise is an exercise task entry.
	ActivityKindExercise ActivityKind = "exercise"
)

// ActivityEntry represents a scheduled food or exercise task.
type ActivityEntry struct {
	ID            uuid.UUID    `json:"id"`
	UserID        uuid.UUID    `json:"user_id"`
	Kind          ActivityKind `json:"kind"`
	Description   string       `json:"description"`
	ScheduledDate time.Time    `json:"scheduled_date"`
	Completed     bool         `json:"completed"`
}
