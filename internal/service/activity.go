package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plushealth/plushealth-server/internal/logger"
	"github.com/plushealth/plushealth-server/internal/model"
)

// Activity implements the food and exercise task log.
type Activity struct {
	activityStore model.ActivityStore
	logger        *logger.Logger
}

// NewActivity creates a new Activity service.
func NewActivity(activityStore model.ActivityStore, logger *logger.Logger) *Activity {
	return &Activity{
		activityStore: activityStore,
		logger:        logger,
	}
}

// LogEntry records a new scheduled task, not yet completed.
func (a *Activity) LogEntry(ctx context.Context, kind model.ActivityKind, userID uuid.UUID, description string, scheduledDate time.Time) (model.ActivityEntry, error) {
	a.logger.Debug("Activity service: logging entry",
		"user_id", userID,
		"kind", kind)

	if userID == uuid.Nil || description == "" || scheduledDate.IsZero() {
		return model.ActivityEntry{}, fmt.Errorf("%w: user id, description and date are required", model.ErrValidation)
	}

	entry := model.ActivityEntry{
		ID:            uuid.New(),
		UserID:        userID,
		Kind:          kind,
		Description:   description,
		ScheduledDate: scheduledDate,
	}

	savedEntry, err := a.activityStore.Create(ctx, entry)
	if err != nil {
		a.logger.Error("Activity service: failed to create entry",
			"user_id", userID,
			"kind", kind,
			"error", err.Error())
		return model.ActivityEntry{}, fmt.Errorf("failed to create activity entry: %w", err)
	}

	return savedEntry, nil
}

// ListEntries returns all entries of a kind for a user.
func (a *Activity) ListEntries(ctx context.Context, kind model.ActivityKind, userID uuid.UUID) ([]model.ActivityEntry, error) {
	entries, err := a.activityStore.ListByUser(ctx, userID, kind)
	if err != nil {
		a.logger.Error("Activity service: failed to list entries",
			"user_id", userID,
			"kind", kind,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list activity entries: %w", err)
	}

	return entries, nil
}

// MarkComplete sets the completion flag. The flag is monotonic: repeating the
// call leaves the entry completed and succeeds.
func (a *Activity) MarkComplete(ctx context.Context, kind model.ActivityKind, id uuid.UUID) (model.ActivityEntry, error) {
	a.logger.Debug("Activity service: marking entry complete",
		"entry_id", id,
		"kind", kind)

	entry, err := a.activityStore.MarkComplete(ctx, id, kind)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ActivityEntry{}, err
		}
		a.logger.Error("Activity service: failed to mark entry complete",
			"entry_id", id,
			"kind", kind,
			"error", err.Error())
		return model.ActivityEntry{}, fmt.Errorf("failed to mark activity entry complete: %w", err)
	}

	return entry, nil
}

// LogCompletedExercise records an exercise already marked complete, used by
// the dashboard quick-complete action.
func (a *Activity) LogCompletedExercise(ctx context.Context, userID uuid.UUID, name string, date time.Time) (model.ActivityEntry, error) {
	a.logger.Debug("Activity service: logging completed exercise",
		"user_id", userID)

	if userID == uuid.Nil || name == "" || date.IsZero() {
		return model.ActivityEntry{}, fmt.Errorf("%w: user id, name and date are required", model.ErrValidation)
	}

	entry := model.ActivityEntry{
		ID:            uuid.New(),
		UserID:        userID,
		Kind:          model.ActivityKindExercise,
		Description:   name,
		ScheduledDate: date,
		Completed:     true,
	}

	savedEntry, err := a.activityStore.Create(ctx, entry)
	if err != nil {
		a.logger.Error("Activity service: failed to create completed exercise",
			"user_id", userID,
			"error", err.Error())
		return model.ActivityEntry{}, fmt.Errorf("failed to create activity entry: %w", err)
	}

	return savedEntry, nil
}
