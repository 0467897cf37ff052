// Package api provides the HTTP handlers for the simulation
// statistics dashboard: generator runs, descriptive statistics,
// goodness-of-fit tests, parameter validation, file upload analysis
// and result export.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/gorilla/mux"

	"github.com/dparker/statlab/internal/config"
	"github.com/dparker/statlab/internal/generator"
	"github.com/dparker/statlab/internal/results"
	"github.com/dparker/statlab/internal/stats"
	"github.com/dparker/statlab/internal/stattest"
	"github.com/dparker/statlab/internal/validate"
)

// Handler contains all HTTP handlers.
type Handler struct {
	cfg   *config.Config
	store *results.Store
	tests *stattest.Suite
}

// New creates a new API handler.
func New(cfg *config.Config, store *results.Store, tests *stattest.Suite) *Handler {
	return &Handler{
		cfg:   cfg,
		store: store,
		tests: tests,
	}
}

// Response helpers

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondInvalid reports a failed validation with the complete error
// list so the form can show every problem at once.
func respondInvalid(w http.ResponseWriter, report validate.Report) {
	respondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"validation": report,
	})
}

// === Health & Info ===

// ServerInfo handles GET /
func (h *Handler) ServerInfo(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"name":        "statlab",
		"version":     "1.0.0",
		"description": "Computational statistics dashboard service",
	})
}

// HealthCheck handles GET /health. It runs a quick generator
// self-check: a known-good linear generator must stay in [0,1) and
// pass the chi-square uniformity test.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	seq := generator.Linear(1, 1103515245, 12345, 1<<31, 1000)
	inRange := true
	for _, v := range seq {
		if v < 0 || v >= 1 {
			inRange = false
			break
		}
	}
	gof := h.tests.ChiSquareGoF(seq, stattest.TargetUniform)

	status := http.StatusOK
	healthy := inRange && gof.Err == "" && gof.Passed
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, map[string]interface{}{
		"healthy":    healthy,
		"in_range":   inRange,
		"chi_square": gof,
	})
}

// === Generators ===

type generateRequest struct {
	validate.GeneratorParams
	Batches *int `json:"batches"`
}

// Generate handles POST /api/v1/generators/{kind}. Parameters are
// validated first; the generator itself runs unchecked on the
// validated input.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	kind := generator.Kind(mux.Vars(r)["kind"])

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	report := validate.Generator(kind, req.GeneratorParams)
	if !report.Valid {
		respondInvalid(w, report)
		return
	}

	seq, err := generator.Generate(kind, req.Params())
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_GENERATOR", err.Error())
		return
	}

	full := stats.Full(seq)
	entry := h.store.Put(string(kind), seq, full)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"result_id": entry.ID,
		"sequence":  seq,
		"stats":     full,
		"histogram": stats.Compute(seq, h.cfg.Simulation.DefaultBins),
	})
}

// BatchGenerate handles POST /api/v1/generators/{kind}/batch.
func (h *Handler) BatchGenerate(w http.ResponseWriter, r *http.Request) {
	kind := generator.Kind(mux.Vars(r)["kind"])

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	report := validate.Generator(kind, req.GeneratorParams)
	if !report.Valid {
		respondInvalid(w, report)
		return
	}

	batches := h.cfg.Simulation.DefaultBatches
	if req.Batches != nil && *req.Batches > 0 {
		batches = *req.Batches
	}

	res, err := generator.Batch(kind, req.Params(), batches)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_GENERATOR", err.Error())
		return
	}

	pooled := make([]float64, 0, len(res.Batches)*len(res.Batches[0]))
	for _, b := range res.Batches {
		pooled = append(pooled, b...)
	}
	entry := h.store.Put(string(kind)+"-batch", pooled, res.GlobalStats)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"result_id": entry.ID,
		"batches":   res,
	})
}

// === Statistics ===

type sequenceRequest struct {
	Numbers []float64 `json:"numbers"`
	Bins    int       `json:"bins"`
	Alpha   float64   `json:"alpha"`
	Lag     int       `json:"lag"`
	Target  string    `json:"target"`
}

func decodeSequence(w http.ResponseWriter, r *http.Request) (*sequenceRequest, bool) {
	var req sequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return nil, false
	}
	return &req, true
}

// Statistics handles POST /api/v1/statistics.
func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSequence(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, stats.Full(req.Numbers))
}

// Histogram handles POST /api/v1/statistics/histogram.
func (h *Handler) Histogram(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSequence(w, r)
	if !ok {
		return
	}
	bins := req.Bins
	if bins < 1 {
		bins = h.cfg.Simulation.DefaultBins
	}
	respondJSON(w, http.StatusOK, stats.Compute(req.Numbers, bins))
}

// === Hypothesis tests ===

// TestUniformity handles POST /api/v1/tests/uniformity.
func (h *Handler) TestUniformity(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSequence(w, r)
	if !ok {
		return
	}
	alpha := req.Alpha
	if alpha <= 0 {
		alpha = h.cfg.Simulation.Alpha
	}
	respondJSON(w, http.StatusOK, h.tests.Uniformity(req.Numbers, alpha))
}

// TestChiSquare handles POST /api/v1/tests/chisquare.
func (h *Handler) TestChiSquare(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSequence(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.tests.ChiSquareGoF(req.Numbers, req.Target))
}

// TestSerial handles POST /api/v1/tests/serial.
func (h *Handler) TestSerial(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSequence(w, r)
	if !ok {
		return
	}
	lag := req.Lag
	if lag < 1 {
		lag = 1
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"lag":         lag,
		"correlation": stattest.SerialCorrelation(req.Numbers, lag),
	})
}

// TestRuns handles POST /api/v1/tests/runs.
func (h *Handler) TestRuns(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSequence(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.tests.Runs(req.Numbers))
}

// === Validation ===

// Validate handles POST /api/v1/validate/{kind}: a dry-run of the
// parameter gate. Always 200, the report carries the verdict.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	kind := generator.Kind(mux.Vars(r)["kind"])

	var params validate.GeneratorParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	respondJSON(w, http.StatusOK, validate.Generator(kind, params))
}

// === Results ===

// GetResult handles GET /api/v1/results/{kind}.
func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]

	entry, err := h.store.Get(kind)
	if err != nil {
		if errors.Is(err, results.ErrNotFound) {
			respondError(w, http.StatusNotFound, "RESULT_NOT_FOUND", "No result stored for this kind")
			return
		}
		respondError(w, http.StatusInternalServerError, "RESULT_ERROR", "Failed to load result")
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// ListResults handles GET /api/v1/results.
func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"kinds": h.store.Kinds(),
	})
}

// ExportResult handles GET /api/v1/results/{kind}/export, streaming
// the stored sequence as a CSV download.
func (h *Handler) ExportResult(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]

	if _, err := h.store.Get(kind); err != nil {
		respondError(w, http.StatusNotFound, "RESULT_NOT_FOUND", "No result stored for this kind")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+sanitizeFilename(kind)+".csv")
	if err := h.store.ExportCSV(kind, w); err != nil {
		// Headers are gone at this point, the client sees a truncated file.
		return
	}
}

var unsafeFilenameChars = regexp.MustCompile(`[^\w\-.]`)

// sanitizeFilename strips path and shell hazards from a user-supplied
// name and caps its length.
func sanitizeFilename(name string) string {
	safe := unsafeFilenameChars.ReplaceAllString(name, "")
	if len(safe) > 255 {
		safe = safe[:255]
	}
	return safe
}
