package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/ytinfo/backend/internal/logging"
	"github.com/ytinfo/backend/internal/models"
	"github.com/ytinfo/backend/internal/videos"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

type viewPhase string

const (
	phaseIdle    viewPhase = "idle"
	phaseSuccess viewPhase = "success"
	phaseFailure viewPhase = "failure"
)

// viewState is exactly one of idle, success(result) or failure(error).
// The constructors below are the only way to build one, so a page can never
// show a result and an error at the same time.
type viewState struct {
	phase   viewPhase
	result  models.VideoMetadataResult
	failure models.ErrorResult
}

func idleState() viewState { return viewState{phase: phaseIdle} }

func successState(result models.VideoMetadataResult) viewState {
	return viewState{phase: phaseSuccess, result: result}
}

func failureState(failure models.ErrorResult) viewState {
	return viewState{phase: phaseFailure, failure: failure}
}

// Phase is used by the template and the client script.
func (s viewState) Phase() string { return string(s.phase) }

// Result returns the metadata when the state is success, nil otherwise.
func (s viewState) Result() *models.VideoMetadataResult {
	if s.phase != phaseSuccess {
		return nil
	}
	return &s.result
}

// Failure returns the error when the state is failure, nil otherwise.
func (s viewState) Failure() *models.ErrorResult {
	if s.phase != phaseFailure {
		return nil
	}
	return &s.failure
}

type pageData struct {
	URL   string
	State viewState
}

// PageHandler renders the lookup form and its result.
type PageHandler struct {
	Metadata MetadataService
}

// Handle implements GET / and POST /.
func (h PageHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.render(w, r, http.StatusOK, pageData{State: idleState()})
	case http.MethodPost:
		h.submit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h PageHandler) submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := r.ParseForm(); err != nil {
		logger.Warn("invalid form submission", "error", err)
	}
	rawURL := r.PostFormValue("url")

	if h.Metadata == nil {
		logger.Error("metadata service unavailable")
		res, status := errorResult(videos.ErrProviderUnavailable)
		h.render(w, r, status, pageData{URL: rawURL, State: failureState(res)})
		return
	}

	result, err := h.Metadata.FetchMetadata(ctx, rawURL)
	if err != nil {
		res, status := errorResult(err)
		h.render(w, r, status, pageData{URL: rawURL, State: failureState(res)})
		return
	}

	h.render(w, r, http.StatusOK, pageData{URL: rawURL, State: successState(result)})
}

func (h PageHandler) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		logging.FromContext(r.Context()).Error("render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
