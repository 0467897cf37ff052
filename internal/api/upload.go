// Package api - data file upload and analysis
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dparker/statlab/internal/dataset"
	"github.com/dparker/statlab/internal/validate"
)

// Upload handles POST /api/v1/upload. It accepts a multipart "file"
// field (csv, tsv, txt or json, capped at the configured size), parses
// it into a table, validates it, and returns the per-column analysis.
// Required columns may be passed as a comma-separated "required" form
// field.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Upload.MaxBytes)
	if err := r.ParseMultipartForm(h.cfg.Upload.MaxBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "The file exceeds the upload size limit")
			return
		}
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "NO_FILE", "No file was selected")
		return
	}
	defer file.Close()

	if header.Filename == "" || !dataset.Allowed(header.Filename) {
		respondError(w, http.StatusBadRequest, "INVALID_FILE_TYPE",
			"File type not allowed. Valid extensions: .csv, .tsv, .txt, .json")
		return
	}

	table, err := dataset.Parse(header.Filename, file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "PARSE_FAILED", err.Error())
		return
	}

	var required []string
	if raw := strings.TrimSpace(r.FormValue("required")); raw != "" {
		for _, col := range strings.Split(raw, ",") {
			required = append(required, strings.TrimSpace(col))
		}
	}

	report := validate.Dataset(table, required)
	resp := map[string]interface{}{
		"filename":   sanitizeFilename(header.Filename),
		"validation": report,
	}
	if report.Valid {
		resp["analysis"] = dataset.Analyze(table)
	}
	respondJSON(w, http.StatusOK, resp)
}
