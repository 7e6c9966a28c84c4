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

// Goal implements the weekly goal tracker.
type Goal struct {
	goalStore model.GoalStore
	logger    *logger.Logger
}

// NewGoal creates a new Goal service.
func NewGoal(goalStore model.GoalStore, logger *logger.Logger) *Goal {
	return &Goal{
		goalStore: goalStore,
		logger:    logger,
	}
}

// WeekStart returns the start of the week containing d: the Sunday on or
// before d, truncated to midnight UTC. A Sunday input is a fixed point.
func WeekStart(d time.Time) time.Time {
	day := d.UTC()
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// CreateGoal persists a goal with its target date normalized to the start of
// its week.
func (g *Goal) CreateGoal(ctx context.Context, userID uuid.UUID, description string, targetDate time.Time) (model.Goal, error) {
	g.logger.Debug("Goal service: creating goal",
		"user_id", userID)

	if userID == uuid.Nil || description == "" || targetDate.IsZero() {
		return model.Goal{}, fmt.Errorf("%w: user id, description and date are required", model.ErrValidation)
	}

	goal := model.Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		TargetDate:  WeekStart(targetDate),
	}

	savedGoal, err := g.goalStore.Create(ctx, goal)
	if err != nil {
		g.logger.Error("Goal service: failed to create goal",
			"user_id", userID,
			"error", err.Error())
		return model.Goal{}, fmt.Errorf("failed to create goal: %w", err)
	}

	return savedGoal, nil
}

// MarkGoalComplete sets the completion flag; repeating the call succeeds and
// keeps the goal completed.
func (g *Goal) MarkGoalComplete(ctx context.Context, id uuid.UUID) (model.Goal, error) {
	g.logger.Debug("Goal service: marking goal complete",
		"goal_id", id)

	goal, err := g.goalStore.MarkComplete(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Goal{}, err
		}
		g.logger.Error("Goal service: failed to mark goal complete",
			"goal_id", id,
			"error", err.Error())
		return model.Goal{}, fmt.Errorf("failed to mark goal complete: %w", err)
	}

	return goal, nil
}

// ListGoals returns goals ordered by target date ascending.
func (g *Goal) ListGoals(ctx context.Context, userID uuid.UUID) ([]model.Goal, error) {
	goals, err := g.goalStore.ListByUser(ctx, userID)
	if err != nil {
		g.logger.Error("Goal service: failed to list goals",
			"user_id", userID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	return goals, nil
}
