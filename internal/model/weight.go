package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// WeightStore defines persistence operations for weight records.
type WeightStore interface {
	Create(ctx context.Context, record WeightRecord) (WeightRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]WeightRecord, error)
}

// WeightRecord represents a single weight measurement. Records are append-only:
// they are never mutated, only cascade-deleted with their user.
type WeightRecord struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Weight     float64   `json:"weight"`
	RecordDate time.Time `json:"record_date"`
}
