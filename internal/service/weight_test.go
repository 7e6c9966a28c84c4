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

func TestWeight_RecordWeight(t *testing.T) {
	userID := uuid.New()
	weightStore := &mocks.WeightStore{}

	var created model.WeightRecord
	weightStore.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(model.WeightRecord) }).
		Return(model.WeightRecord{ID: uuid.New()}, nil)

	w := NewWeight(weightStore, testutil.MakeNoopLogger())

	_, err := w.RecordWeight(context.Background(), userID, 72.5, time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, 72.5, created.Weight)
}

func TestWeight_RecordWeight_MissingFields(t *testing.T) {
	w := NewWeight(&mocks.WeightStore{}, testutil.MakeNoopLogger())

	_, err := w.RecordWeight(context.Background(), uuid.Nil, 72.5, time.Now())
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = w.RecordWeight(context.Background(), uuid.New(), 0, time.Now())
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = w.RecordWeight(context.Background(), uuid.New(), 72.5, time.Time{})
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestWeight_GetHistory(t *testing.T) {
	userID := uuid.New()
	weightStore := &mocks.WeightStore{}
	weightStore.On("ListByUser", mock.Anything, userID).Return([]model.WeightRecord{
		{RecordDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{RecordDate: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
	}, nil)

	w := NewWeight(weightStore, testutil.MakeNoopLogger())

	records, err := w.GetHistory(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, records, 2)
}
