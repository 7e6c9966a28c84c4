package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/plushealth/plushealth-server/internal/model"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) Register(ctx context.Context, name, email, password string) (model.User, error) {
	args := m.Called(ctx, name, email, password)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockAccountService) Login(ctx context.Context, email, password string) (model.User, string, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.User), args.String(1), args.Error(2)
}

func (m *mockAccountService) GetProfile(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockAccountService) UpdateProfile(ctx context.Context, params model.UpdateProfileParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockAccountService) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error {
	args := m.Called(ctx, id, currentPassword, newPassword)
	return args.Error(0)
}

func (m *mockAccountService) ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	args := m.Called(ctx, id, newPassword)
	return args.Error(0)
}

func (m *mockAccountService) LookupByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockAccountService) ConfirmVerification(ctx context.Context, token string) (model.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockAccountService) RequestDeletion(ctx context.Context, id uuid.UUID, email string) error {
	args := m.Called(ctx, id, email)
	return args.Error(0)
}

func (m *mockAccountService) ConfirmDeletion(ctx context.Context, token string) (model.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.User), args.Error(1)
}

type mockActivityService struct {
	mock.Mock
}

func (m *mockActivityService) LogEntry(ctx context.Context, kind model.ActivityKind, userID uuid.UUID, description string, scheduledDate time.Time) (model.ActivityEntry, error) {
	args := m.Called(ctx, kind, userID, description, scheduledDate)
	return args.Get(0).(model.ActivityEntry), args.Error(1)
}

func (m *mockActivityService) ListEntries(ctx context.Context, kind model.ActivityKind, userID uuid.UUID) ([]model.ActivityEntry, error) {
	args := m.Called(ctx, kind, userID)
	return args.Get(0).([]model.ActivityEntry), args.Error(1)
}

func (m *mockActivityService) MarkComplete(ctx context.Context, kind model.ActivityKind, id uuid.UUID) (model.ActivityEntry, error) {
	args := m.Called(ctx, kind, id)
	return args.Get(0).(model.ActivityEntry), args.Error(1)
}

func (m *mockActivityService) LogCompletedExercise(ctx context.Context, userID uuid.UUID, name string, date time.Time) (model.ActivityEntry, error) {
	args := m.Called(ctx, userID, name, date)
	return args.Get(0).(model.ActivityEntry), args.Error(1)
}

type mockWeightService struct {
	mock.Mock
}

func (m *mockWeightService) RecordWeight(ctx context.Context, userID uuid.UUID, weight float64, recordDate time.Time) (model.WeightRecord, error) {
	args := m.Called(ctx, userID, weight, recordDate)
	return args.Get(0).(model.WeightRecord), args.Error(1)
}

func (m *mockWeightService) GetHistory(ctx context.Context, userID uuid.UUID) ([]model.WeightRecord, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.WeightRecord), args.Error(1)
}

type mockGoalService struct {
	mock.Mock
}

func (m *mockGoalService) CreateGoal(ctx context.Context, userID uuid.UUID, description string, targetDate time.Time) (model.Goal, error) {
	args := m.Called(ctx, userID, description, targetDate)
	return args.Get(0).(model.Goal), args.Error(1)
}

func (m *mockGoalService) MarkGoalComplete(ctx context.Context, id uuid.UUID) (model.Goal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Goal), args.Error(1)
}

func (m *mockGoalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]model.Goal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Goal), args.Error(1)
}

type mockLeaderboardService struct {
	mock.Mock
}

func (m *mockLeaderboardService) ComputeLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.LeaderboardEntry), args.Error(1)
}

func performRequest(engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func init() {
	gin.SetMode(gin.TestMode)
}
