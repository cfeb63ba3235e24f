package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"league-postseason-service/internal/http/requestutil"
	"league-postseason-service/internal/logging"
)

// SeasonResolver re-resolves a single season on demand.
type SeasonResolver interface {
	ResolveSeason(ctx context.Context, season int) error
}

// AdminHandler exposes admin-only endpoints (e.g., forced re-resolution).
type AdminHandler struct {
	resolver SeasonResolver
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(resolver SeasonResolver, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		resolver: resolver,
		token:    token,
		logger:   logger,
	}
}

// ResolveSeason forces an immediate re-resolution of one season.
// Guarded by ADMIN_TOKEN env; returns 401 if missing/invalid.
func (h *AdminHandler) ResolveSeason(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String("path", r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.resolver == nil {
		writeError(w, r, http.StatusServiceUnavailable, "resolver not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	season, err := strconv.Atoi(mux.Vars(r)["season"])
	if err != nil {
		logging.Warn(logger, "admin resolve invalid season", slog.String("season", mux.Vars(r)["season"]))
		writeError(w, r, http.StatusBadRequest, "invalid season", logger)
		return
	}

	if err := h.resolver.ResolveSeason(r.Context(), season); err != nil {
		logging.Warn(logger, "admin resolve failed",
			slog.Int(logging.FieldSeason, season),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusBadGateway, "failed to resolve season", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"season": season,
		"status": "ok",
	}, logger)
	logging.Info(logger, "admin season resolved", slog.Int(logging.FieldSeason, season))
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
