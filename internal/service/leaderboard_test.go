package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plushealth/plushealth-server/internal/mocks"
	"github.com/plushealth/plushealth-server/internal/model"
	"github.com/plushealth/plushealth-server/internal/testutil"
)

func TestLeaderboard_ComputeLeaderboard(t *testing.T) {
	leaderboardStore := &mocks.LeaderboardStore{}
	leaderboardStore.On("Top", mock.Anything, 10).Return([]model.LeaderboardEntry{
		{UserID: uuid.New(), Name: "Ana", PointsExercise: 30, PointsWeight: 10, TotalPoints: 40},
		{UserID: uuid.New(), Name: "Bruno", PointsExercise: 0, PointsWeight: 5, TotalPoints: 5},
		{UserID: uuid.New(), Name: "Carla", PointsExercise: 0, PointsWeight: 0, TotalPoints: 0},
	}, nil)

	l := NewLeaderboard(leaderboardStore, testutil.MakeNoopLogger())

	entries, err := l.ComputeLeaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// 3 completed exercises and 2 weight records score 3×10 + 2×5
	assert.Equal(t, 40, entries[0].TotalPoints)
	// a user with no activity still appears with zero points
	assert.Equal(t, 0, entries[2].TotalPoints)

	leaderboardStore.AssertCalled(t, "Top", mock.Anything, 10)
}

func TestLeaderboard_ComputeLeaderboard_StoreError(t *testing.T) {
	leaderboardStore := &mocks.LeaderboardStore{}
	leaderboardStore.On("Top", mock.Anything, 10).Return([]model.LeaderboardEntry(nil), errors.New("boom"))

	l := NewLeaderboard(leaderboardStore, testutil.MakeNoopLogger())

	_, err := l.ComputeLeaderboard(context.Background())
	require.Error(t, err)
}
