// Package mocks contains testify mocks for the store and mailer interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/plushealth/plushealth-server/internal/model"
)

// UserStore is a mock of model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByToken(ctx context.Context, token string) (model.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *UserStore) SetToken(ctx context.Context, id uuid.UUID, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func (m *UserStore) ConsumeToken(ctx context.Context, token string) (model.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ActivityStore is a mock of model.ActivityStore.
type ActivityStore struct {
	mock.Mock
}

func (m *ActivityStore) Create(ctx context.Context, entry model.ActivityEntry) (model.ActivityEntry, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(model.ActivityEntry), args.Error(1)
}

func (m *ActivityStore) ListByUser(ctx context.Context, userID uuid.UUID, kind model.ActivityKind) ([]model.ActivityEntry, error) {
	args := m.Called(ctx, userID, kind)
	return args.Get(0).([]model.ActivityEntry), args.Error(1)
}

func (m *ActivityStore) MarkComplete(ctx context.Context, id uuid.UUID, kind model.ActivityKind) (model.ActivityEntry, error) {
	args := m.Called(ctx, id, kind)
	return args.Get(0).(model.ActivityEntry), args.Error(1)
}

// WeightStore is a mock of model.WeightStore.
type WeightStore struct {
	mock.Mock
}

func (m *WeightStore) Create(ctx context.Context, record model.WeightRecord) (model.WeightRecord, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(model.WeightRecord), args.Error(1)
}

func (m *WeightStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.WeightRecord, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.WeightRecord), args.Error(1)
}

// GoalStore is a mock of model.GoalStore.
type GoalStore struct {
	mock.Mock
}

func (m *GoalStore) Create(ctx context.Context, goal model.Goal) (model.Goal, error) {
	args := m.Called(ctx, goal)
	return args.Get(0).(model.Goal), args.Error(1)
}

func (m *GoalStore) MarkComplete(ctx context.Context, id uuid.UUID) (model.Goal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Goal), args.Error(1)
}

func (m *GoalStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Goal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Goal), args.Error(1)
}

// LeaderboardStore is a mock of model.LeaderboardStore.
type LeaderboardStore struct {
	mock.Mock
}

func (m *LeaderboardStore) Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]model.LeaderboardEntry), args.Error(1)
}

// TokenManager is a mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) GenerateToken(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) ParseToken(tokenString string) (uuid.UUID, error) {
	args := m.Called(tokenString)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// Mailer is a mock of mail.Mailer.
type Mailer struct {
	mock.Mock
}

func (m *Mailer) SendVerification(ctx context.Context, to, name, token string) error {
	args := m.Called(ctx, to, name, token)
	return args.Error(0)
}

func (m *Mailer) SendDeletionConfirmation(ctx context.Context, to, name, token string) error {
	args := m.Called(ctx, to, name, token)
	return args.Error(0)
}
