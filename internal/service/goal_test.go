package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plushealth/plushealth-server/internal/mocks"
	"github.com/plushealth/plushealth-server/internal/model"
	"github.com/plushealth/plushealth-server/internal/testutil"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  time.Time
	}{
		{
			name:  "wednesday maps to preceding sunday",
			input: time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "sunday is a fixed point",
			input: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "saturday maps to the sunday six days before",
			input: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "time of day is truncated",
			input: time.Date(2024, 3, 13, 18, 45, 12, 0, time.UTC),
			want:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "week start across a month boundary",
			input: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.input))
		})
	}
}

func TestWeekStart_Idempotent(t *testing.T) {
	d := time.Date(2024, 3, 13, 9, 30, 0, 0, time.UTC)
	once := WeekStart(d)
	assert.Equal(t, once, WeekStart(once))
}

func TestGoal_CreateGoal_NormalizesDate(t *testing.T) {
	userID := uuid.New()
	goalStore := &mocks.GoalStore{}

	var created model.Goal
	goalStore.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(model.Goal) }).
		Return(model.Goal{ID: uuid.New()}, nil)

	g := NewGoal(goalStore, testutil.MakeNoopLogger())

	_, err := g.CreateGoal(context.Background(), userID, "correr 3x", time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), created.TargetDate)
	assert.False(t, created.Completed)
}

func TestGoal_CreateGoal_MissingFields(t *testing.T) {
	g := NewGoal(&mocks.GoalStore{}, testutil.MakeNoopLogger())

	_, err := g.CreateGoal(context.Background(), uuid.Nil, "meta", time.Now())
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = g.CreateGoal(context.Background(), uuid.New(), "", time.Now())
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = g.CreateGoal(context.Background(), uuid.New(), "meta", time.Time{})
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestGoal_MarkGoalComplete(t *testing.T) {
	goalID := uuid.New()
	goalStore := &mocks.GoalStore{}
	goalStore.On("MarkComplete", mock.Anything, goalID).Return(model.Goal{ID: goalID, Completed: true}, nil)

	g := NewGoal(goalStore, testutil.MakeNoopLogger())

	goal, err := g.MarkGoalComplete(context.Background(), goalID)
	require.NoError(t, err)
	assert.True(t, goal.Completed)
}

func TestGoal_MarkGoalComplete_NotFound(t *testing.T) {
	goalID := uuid.New()
	goalStore := &mocks.GoalStore{}
	goalStore.On("MarkComplete", mock.Anything, goalID).Return(model.Goal{}, model.ErrNotFound)

	g := NewGoal(goalStore, testutil.MakeNoopLogger())

	_, err := g.MarkGoalComplete(context.Background(), goalID)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestGoal_ListGoals(t *testing.T) {
	userID := uuid.New()
	goalStore := &mocks.GoalStore{}
	goalStore.On("ListByUser", mock.Anything, userID).Return([]model.Goal{
		{TargetDate: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)},
		{TargetDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
	}, nil)

	g := NewGoal(goalStore, testutil.MakeNoopLogger())

	goals, err := g.ListGoals(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, goals, 2)
}
