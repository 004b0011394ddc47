package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ytinfo/backend/internal/logging"
	"github.com/ytinfo/backend/internal/models"
)

const maxRequestBody = 16 << 10

// DownloadHandler serves the JSON lookup endpoint.
type DownloadHandler struct {
	Metadata MetadataService
}

type downloadRequest struct {
	URL string `json:"url"`
}

// Handle implements POST /api/download.
func (h DownloadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		respondJSON(ctx, w, http.StatusMethodNotAllowed, models.ErrorResult{Error: "Method not allowed"})
		return
	}

	if h.Metadata == nil {
		logger.Error("metadata service unavailable")
		respondJSON(ctx, w, http.StatusInternalServerError, models.ErrorResult{
			Error: "metadata service unavailable",
			Kind:  models.ErrorKindUnexpectedFailure,
		})
		return
	}

	// An unreadable body carries no URL and is reported as missing input.
	var req downloadRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		logger.Warn("invalid download payload", "error", err)
		req.URL = ""
	}

	result, err := h.Metadata.FetchMetadata(ctx, req.URL)
	if err != nil {
		res, status := errorResult(err)
		respondJSON(ctx, w, status, res)
		return
	}

	respondJSON(ctx, w, http.StatusOK, result)
}
