package handlers

import "net/http"

// RegisterRoutes wires HTTP handlers into the provided ServeMux.
func RegisterRoutes(mux *http.ServeMux, deps Dependencies) {
	health := HealthHandler{Metadata: deps.Metadata}
	download := DownloadHandler{Metadata: deps.Metadata}
	page := PageHandler{Metadata: deps.Metadata}

	mux.HandleFunc("/healthz", health.Handle)
	mux.HandleFunc("/api/download", download.Handle)
	mux.HandleFunc("/", page.Handle)
}

// Dependencies aggregates collaborators required by HTTP handlers.
type Dependencies struct {
	Metadata MetadataService
}
