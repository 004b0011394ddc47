package handlers

import "net/http"

// HealthHandler responds with service health information.
type HealthHandler struct {
	Metadata MetadataService
}

type healthResponse struct {
	Status   string `json:"status"`
	Metadata string `json:"metadata"`
}

// Handle implements GET /healthz. The outbound provider is never probed.
func (h HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	resp := healthResponse{Status: "ok", Metadata: "configured"}
	status := http.StatusOK
	if h.Metadata == nil {
		resp = healthResponse{Status: "degraded", Metadata: "missing"}
		status = http.StatusServiceUnavailable
	}

	respondJSON(r.Context(), w, status, resp)
}
