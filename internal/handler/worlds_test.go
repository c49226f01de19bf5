package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/game"
	"github.com/osse101/placecraft/internal/random"
)

// MockWorldSource mocks the WorldSource interface
type MockWorldSource struct {
	mock.Mock
}

func (m *MockWorldSource) List(ctx context.Context) ([]domain.WorldSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorldSummary), args.Error(1)
}

func (m *MockWorldSource) Snapshot(ctx context.Context, name string) (*domain.Game, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}

func (m *MockWorldSource) Loaded() int {
	return m.Called().Int(0)
}

func worldsRouter(src WorldSource) http.Handler {
	r := chi.NewRouter()
	r.Get("/worlds", HandleListWorlds(src))
	r.Get("/worlds/{name}", HandleGetWorld(src))
	return r
}

func TestHandleListWorlds(t *testing.T) {
	updated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		src := &MockWorldSource{}
		src.On("List", mock.Anything).Return([]domain.WorldSummary{
			{Name: "alpha", Moves: 3, Places: 4, UpdatedAt: updated},
		}, nil)
		src.On("Loaded").Return(1)

		w := httptest.NewRecorder()
		worldsRouter(src).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/worlds", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp WorldsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Worlds, 1)
		assert.Equal(t, "alpha", resp.Worlds[0].Name)
		assert.Equal(t, uint64(3), resp.Worlds[0].Moves)
		assert.Equal(t, 1, resp.Loaded)
		src.AssertExpectations(t)
	})

	t.Run("Empty Store Lists No Worlds", func(t *testing.T) {
		src := &MockWorldSource{}
		src.On("List", mock.Anything).Return(nil, nil)
		src.On("Loaded").Return(0)

		w := httptest.NewRecorder()
		worldsRouter(src).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/worlds", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"worlds":[],"loaded":0}`, w.Body.String())
	})

	t.Run("Store Failure Is Hidden", func(t *testing.T) {
		src := &MockWorldSource{}
		src.On("List", mock.Anything).Return(nil, fmt.Errorf("query worlds: %w", assert.AnError))

		w := httptest.NewRecorder()
		worldsRouter(src).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/worlds", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Something went wrong"}`, w.Body.String())
	})
}

func TestHandleGetWorld(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		g := game.NewGame(random.Seed{7}, game.DefaultRules())
		src := &MockWorldSource{}
		src.On("Snapshot", mock.Anything, "alpha").Return(g, nil)

		w := httptest.NewRecorder()
		worldsRouter(src).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/worlds/alpha", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data *domain.Game `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Data)
		assert.Equal(t, g.Seed, resp.Data.Seed)
		assert.Len(t, resp.Data.Places, len(g.Places))
		src.AssertExpectations(t)
	})

	t.Run("Unknown World", func(t *testing.T) {
		src := &MockWorldSource{}
		src.On("Snapshot", mock.Anything, "ghost").Return(nil, domain.ErrWorldNotFound)

		w := httptest.NewRecorder()
		worldsRouter(src).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/worlds/ghost", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"World not found"}`, w.Body.String())
	})

	t.Run("Invalid Name", func(t *testing.T) {
		src := &MockWorldSource{}
		src.On("Snapshot", mock.Anything, "bad.name").
			Return(nil, fmt.Errorf("%w: world name", domain.ErrInvalidInput))

		w := httptest.NewRecorder()
		worldsRouter(src).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/worlds/bad.name", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid input")
	})
}
