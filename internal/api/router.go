// Package api - Router setup
package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SetupRouter creates and configures the HTTP router.
func (h *Handler) SetupRouter() *mux.Router {
	r := mux.NewRouter()

	// Apply global middleware
	r.Use(RecoveryMiddleware)
	r.Use(CORSMiddleware)
	r.Use(LoggingMiddleware)

	// Public routes
	r.HandleFunc("/", h.ServerInfo).Methods("GET")
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")

	// API v1 routes
	api := r.PathPrefix("/api/v1").Subrouter()

	// Generators
	api.HandleFunc("/generators/{kind}", h.Generate).Methods("POST")
	api.HandleFunc("/generators/{kind}/batch", h.BatchGenerate).Methods("POST")

	// Statistics
	api.HandleFunc("/statistics", h.Statistics).Methods("POST")
	api.HandleFunc("/statistics/histogram", h.Histogram).Methods("POST")

	// Hypothesis tests
	api.HandleFunc("/tests/uniformity", h.TestUniformity).Methods("POST")
	api.HandleFunc("/tests/chisquare", h.TestChiSquare).Methods("POST")
	api.HandleFunc("/tests/serial", h.TestSerial).Methods("POST")
	api.HandleFunc("/tests/runs", h.TestRuns).Methods("POST")

	// Validation dry-run
	api.HandleFunc("/validate/{kind}", h.Validate).Methods("POST")

	// Upload
	api.HandleFunc("/upload", h.Upload).Methods("POST")

	// Results
	api.HandleFunc("/results", h.ListResults).Methods("GET")
	api.HandleFunc("/results/{kind}", h.GetResult).Methods("GET")
	api.HandleFunc("/results/{kind}/export", h.ExportResult).Methods("GET")

	// WebSocket for live generation streaming
	r.HandleFunc("/ws/generate", h.GenerateStream).Methods("GET")

	return r
}

// NotFoundHandler handles 404 errors.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
}
