package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/logger"
)

// WorldSource is the read side of the world registry
type WorldSource interface {
	List(ctx context.Context) ([]domain.WorldSummary, error)
	Snapshot(ctx context.Context, name string) (*domain.Game, error)
	Loaded() int
}

// WorldsResponse lists stored worlds
type WorldsResponse struct {
	Worlds []domain.WorldSummary `json:"worlds"`
	Loaded int                   `json:"loaded"`
}

// HandleListWorlds returns a summary of every stored world
func HandleListWorlds(worlds WorldSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := worlds.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgListWorldsFailed, "error", err)
			status, msg := statusForError(err)
			respondError(w, status, msg)
			return
		}
		if summaries == nil {
			summaries = []domain.WorldSummary{}
		}
		respondJSON(w, http.StatusOK, WorldsResponse{Worlds: summaries, Loaded: worlds.Loaded()})
	}
}

// HandleGetWorld returns the full snapshot of one world. It never creates
// the world.
func HandleGetWorld(worlds WorldSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, ParamWorldName)
		log := logger.FromContext(logger.WithWorld(r.Context(), name))

		snap, err := worlds.Snapshot(r.Context(), name)
		if err != nil {
			status, msg := statusForError(err)
			if status == http.StatusInternalServerError {
				log.Error(LogMsgGetWorldFailed, "error", err)
			}
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: snap})
	}
}
