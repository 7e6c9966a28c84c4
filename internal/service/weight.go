package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plushealth/plushealth-server/internal/logger"
	"github.com/plushealth/plushealth-server/internal/model"
)

// Weight implements the append-only weight journal.
type Weight struct {
	weightStore model.WeightStore
	logger      *logger.Logger
}

// NewWeight creates a new Weight service.
func NewWeight(weightStore model.WeightStore, logger *logger.Logger) *Weight {
	return &Weight{
		weightStore: weightStore,
		logger:      logger,
	}
}

// RecordWeight appends a new measurement.
func (w *Weight) RecordWeight(ctx context.Context, userID uuid.UUID, weight float64, recordDate time.Time) (model.WeightRecord, error) {
	w.logger.Debug("Weight service: recording weight",
		"user_id", userID)

	if userID == uuid.Nil || weight <= 0 || recordDate.IsZero() {
		return model.WeightRecord{}, fmt.Errorf("%w: user id, weight and date are required", model.ErrValidation)
	}

	record := model.WeightRecord{
		ID:         uuid.New(),
		UserID:     userID,
		Weight:     weight,
		RecordDate: recordDate,
	}

	savedRecord, err := w.weightStore.Create(ctx, record)
	if err != nil {
		w.logger.Error("Weight service: failed to create record",
			"user_id", userID,
			"error", err.Error())
		return model.WeightRecord{}, fmt.Errorf("failed to create weight record: %w", err)
	}

	return savedRecord, nil
}

// GetHistory returns measurements ordered by date ascending.
func (w *Weight) GetHistory(ctx context.Context, userID uuid.UUID) ([]model.WeightRecord, error) {
	records, err := w.weightStore.ListByUser(ctx, userID)
	if err != nil {
		w.logger.Error("Weight service: failed to list records",
			"user_id", userID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list weight records: %w", err)
	}

	return records, nil
}
