package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ytinfo/backend/internal/logging"
	"github.com/ytinfo/backend/internal/models"
	"github.com/ytinfo/backend/internal/videos"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.FromContext(ctx).Error("encode response body", "status", status, "error", err)
		return
	}

	logger := logging.FromContext(ctx)
	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("request failed", "status", status, "response", payload)
	case status >= http.StatusBadRequest:
		logger.Warn("request returned client error", "status", status, "response", payload)
	}
}

// errorResult converts a lookup failure into its response shape and status.
func errorResult(err error) (models.ErrorResult, int) {
	res := videos.ResultFor(err)
	return res, statusForKind(res.Kind)
}

func statusForKind(kind models.ErrorKind) int {
	switch kind {
	case models.ErrorKindMissingInput, models.ErrorKindInvalidURL:
		return http.StatusBadRequest
	case models.ErrorKindFetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
