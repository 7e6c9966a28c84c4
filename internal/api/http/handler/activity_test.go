package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plushealth/plushealth-server/internal/model"
	"github.com/plushealth/plushealth-server/internal/testutil"
)

func newActivityEngine(svc *mockActivityService) *gin.Engine {
	h := NewActivity(svc, testutil.MakeNoopLogger())

	engine := gin.New()
	engine.POST("/alimentacao", h.LogEntry(model.ActivityKindFood))
	engine.GET("/alimentacao/:userId", h.ListEntries(model.ActivityKindFood))
	engine.PUT("/alimentacao/:id", h.MarkComplete(model.ActivityKindFood))
	engine.POST("/exercicios", h.LogEntry(model.ActivityKindExercise))
	engine.GET("/exercicios/:userId", h.ListEntries(model.ActivityKindExercise))
	engine.PUT("/exercicios/:id", h.MarkComplete(model.ActivityKindExercise))
	engine.POST("/dashboard/exercicio/concluido", h.LogCompletedExercise)
	return engine
}

func TestActivity_LogEntry(t *testing.T) {
	t.Run("food entry created", func(t *testing.T) {
		svc := &mockActivityService{}
		userID := uuid.New()
		date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
		entry := model.ActivityEntry{
			ID:            uuid.New(),
			UserID:        userID,
			Kind:          model.ActivityKindFood,
			Description:   "Salada no almoço",
			ScheduledDate: date,
		}
		svc.On("LogEntry", mock.Anything, model.ActivityKindFood, userID, "Salada no almoço", date).
			Return(entry, nil)

		rec := performRequest(newActivityEngine(svc), http.MethodPost, "/alimentacao",
			`{"user_id":"`+userID.String()+`","description":"Salada no almoço","date":"2024-03-11"}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var got model.ActivityEntry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, entry.ID, got.ID)
		assert.False(t, got.Completed)
		svc.AssertExpectations(t)
	})

	t.Run("exercise route binds exercise kind", func(t *testing.T) {
		svc := &mockActivityService{}
		userID := uuid.New()
		date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
		svc.On("LogEntry", mock.Anything, model.ActivityKindExercise, userID, "Corrida 5km", date).
			Return(model.ActivityEntry{Kind: model.ActivityKindExercise}, nil)

		rec := performRequest(newActivityEngine(svc), http.MethodPost, "/exercicios",
			`{"user_id":"`+userID.String()+`","description":"Corrida 5km","date":"2024-03-11"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("bad user id", func(t *testing.T) {
		svc := &mockActivityService{}

		rec := performRequest(newActivityEngine(svc), http.MethodPost, "/alimentacao",
			`{"user_id":"nope","description":"x","date":"2024-03-11"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "LogEntry")
	})

	t.Run("bad date", func(t *testing.T) {
		svc := &mockActivityService{}

		rec := performRequest(newActivityEngine(svc), http.MethodPost, "/alimentacao",
			`{"user_id":"`+uuid.NewString()+`","description":"x","date":"11/03/2024"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "LogEntry")
	})
}

func TestActivity_ListEntries(t *testing.T) {
	svc := &mockActivityService{}
	userID := uuid.New()
	entries := []model.ActivityEntry{
		{ID: uuid.New(), UserID: userID, Kind: model.ActivityKindFood},
		{ID: uuid.New(), UserID: userID, Kind: model.ActivityKindFood, Completed: true},
	}
	svc.On("ListEntries", mock.Anything, model.ActivityKindFood, userID).Return(entries, nil)

	rec := performRequest(newActivityEngine(svc), http.MethodGet, "/alimentacao/"+userID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []model.ActivityEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestActivity_MarkComplete(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &mockActivityService{}
		id := uuid.New()
		svc.On("MarkComplete", mock.Anything, model.ActivityKindExercise, id).
			Return(model.ActivityEntry{ID: id, Kind: model.ActivityKindExercise, Completed: true}, nil)

		rec := performRequest(newActivityEngine(svc), http.MethodPut, "/exercicios/"+id.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)

		var got model.ActivityEntry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.Completed)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mockActivityService{}
		id := uuid.New()
		svc.On("MarkComplete", mock.Anything, model.ActivityKindFood, id).
			Return(model.ActivityEntry{}, model.ErrNotFound)

		rec := performRequest(newActivityEngine(svc), http.MethodPut, "/alimentacao/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestActivity_LogCompletedExercise(t *testing.T) {
	svc := &mockActivityService{}
	userID := uuid.New()
	date := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	svc.On("LogCompletedExercise", mock.Anything, userID, "Natação", date).
		Return(model.ActivityEntry{Kind: model.ActivityKindExercise, Completed: true}, nil)

	rec := performRequest(newActivityEngine(svc), http.MethodPost, "/dashboard/exercicio/concluido",
		`{"user_id":"`+userID.String()+`","name":"Natação","date":"2024-03-12"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got model.ActivityEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Completed)
	svc.AssertExpectations(t)
}
