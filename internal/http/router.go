package http

import nethttp "net/http"

// NewRouter registers the fragment and API routes on a ServeMux.
func NewRouter(handler *Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/calendar", handler.Calendar)
	mux.HandleFunc("/matches/table", handler.Table)
	mux.HandleFunc("/matches/upcoming", handler.Upcoming)
	mux.HandleFunc("/api/matches", handler.APIMatches)
	return mux
}
