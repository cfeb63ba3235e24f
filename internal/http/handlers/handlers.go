package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strconv"

	"github.com/gorilla/mux"

	"league-postseason-service/internal/domain"
	"league-postseason-service/internal/logging"
	"league-postseason-service/internal/snapshots"
	"league-postseason-service/internal/store"
	"league-postseason-service/internal/worker"
)

// Handler wires HTTP routes to the resolved-season store.
type Handler struct {
	store    *store.MemoryStore
	snaps    snapshots.Store
	logger   *slog.Logger
	statusFn func() worker.Status
}

// NewHandler constructs a Handler. snaps and statusFn are optional.
func NewHandler(st *store.MemoryStore, snaps snapshots.Store, logger *slog.Logger, statusFn func() worker.Status) *Handler {
	return &Handler{
		store:    st,
		snaps:    snaps,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Seasons lists the seasons that have been resolved.
func (h *Handler) Seasons(w nethttp.ResponseWriter, r *nethttp.Request) {
	seasons := h.store.Seasons()
	payload := map[string]any{
		"seasons": seasons,
		"count":   len(seasons),
	}
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// SeasonStandings returns the final 1..N table for a season.
func (h *Handler) SeasonStandings(w nethttp.ResponseWriter, r *nethttp.Request) {
	result, ok := h.resolve(w, r)
	if !ok {
		return
	}
	payload := map[string]any{
		"season":    result.Season,
		"standings": result.Standings,
	}
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// SeasonRecords returns the regular-season records in seed order.
func (h *Handler) SeasonRecords(w nethttp.ResponseWriter, r *nethttp.Request) {
	result, ok := h.resolve(w, r)
	if !ok {
		return
	}
	payload := map[string]any{
		"season":  result.Season,
		"records": result.Records,
	}
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// SeasonBracket returns the resolved bracket nodes plus any synthetic games.
func (h *Handler) SeasonBracket(w nethttp.ResponseWriter, r *nethttp.Request) {
	result, ok := h.resolve(w, r)
	if !ok {
		return
	}
	payload := map[string]any{
		"season":         result.Season,
		"bracket":        result.Bracket,
		"syntheticGames": result.SyntheticGames,
	}
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// resolve parses the season path variable and loads the season, falling back
// to a snapshot when the in-memory store misses.
func (h *Handler) resolve(w nethttp.ResponseWriter, r *nethttp.Request) (domain.SeasonResult, bool) {
	season, err := seasonVar(r)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid season", h.logger)
		return domain.SeasonResult{}, false
	}

	if result, ok := h.store.Result(season); ok {
		return result, true
	}

	if h.snaps != nil {
		if result, err := h.snaps.LoadSeason(season); err == nil {
			logger := loggerFromContext(r, h.logger)
			logging.Info(logger, "served season from snapshot", slog.Int(logging.FieldSeason, season))
			return result, true
		}
	}

	writeError(w, r, nethttp.StatusNotFound, "season not resolved", h.logger)
	return domain.SeasonResult{}, false
}

func seasonVar(r *nethttp.Request) (int, error) {
	raw := mux.Vars(r)["season"]
	return strconv.Atoi(raw)
}
