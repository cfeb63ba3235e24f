package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"league-postseason-service/internal/http/handlers"
)

// NewRouter registers HTTP routes. admin may be nil when no token is configured.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	r.HandleFunc("/seasons", handler.Seasons).Methods(nethttp.MethodGet)
	r.HandleFunc("/seasons/{season}/standings", handler.SeasonStandings).Methods(nethttp.MethodGet)
	r.HandleFunc("/seasons/{season}/records", handler.SeasonRecords).Methods(nethttp.MethodGet)
	r.HandleFunc("/seasons/{season}/bracket", handler.SeasonBracket).Methods(nethttp.MethodGet)
	if admin != nil {
		r.HandleFunc("/admin/seasons/{season}/resolve", admin.ResolveSeason).Methods(nethttp.MethodPost)
	}
	return r
}
