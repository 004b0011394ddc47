package videos

import (
	"errors"
	"fmt"

	"github.com/ytinfo/backend/internal/models"
)

var (
	// ErrProviderUnavailable indicates the metadata provider is not configured.
	ErrProviderUnavailable = errors.New("video metadata provider unavailable")
	// ErrMissingInput indicates no URL was supplied.
	ErrMissingInput = errors.New("url is required")
	// ErrInvalidURL indicates the input is not a recognised YouTube video URL.
	ErrInvalidURL = errors.New("invalid youtube url")
	// ErrFetchFailed indicates the metadata request failed or returned a non-2xx status.
	ErrFetchFailed = errors.New("metadata fetch failed")
	// ErrUnexpectedResponse indicates the provider answered with a body that could not be used.
	ErrUnexpectedResponse = errors.New("unexpected metadata response")
)

// StatusError records a non-2xx answer from the metadata provider.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("metadata provider returned status %d", e.StatusCode)
}

// Is reports StatusError as a fetch failure.
func (e *StatusError) Is(target error) bool {
	return target == ErrFetchFailed
}

// LookupError is returned by Service.FetchMetadata for every failed lookup.
type LookupError struct {
	Kind    models.ErrorKind
	VideoID string
	Err     error
}

func (e *LookupError) Error() string {
	if e.VideoID != "" {
		return fmt.Sprintf("lookup %s (%s): %v", e.VideoID, e.Kind, e.Err)
	}
	return fmt.Sprintf("lookup (%s): %v", e.Kind, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// Result converts the error into the response shape shown to callers.
// Failures that happened after extraction keep the video id and carry
// fallback instructions pointing at the video itself.
func (e *LookupError) Result() models.ErrorResult {
	res := models.ErrorResult{Kind: e.Kind}
	switch e.Kind {
	case models.ErrorKindMissingInput:
		res.Error = "URL is required"
	case models.ErrorKindInvalidURL:
		res.Error = "Invalid YouTube URL"
	default:
		res.Error = "Failed to process video. Please try again or use alternative download methods."
	}

	if e.VideoID != "" {
		res.VideoID = e.VideoID
		res.Instructions = FallbackInstructions(e.VideoID)
	}
	return res
}

// ResultFor converts an error returned by FetchMetadata into its response
// shape. Errors that are not a *LookupError are reported as unexpected failures.
func ResultFor(err error) models.ErrorResult {
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		lookupErr = &LookupError{Kind: models.ErrorKindUnexpectedFailure, Err: err}
	}
	return lookupErr.Result()
}

// classify maps a provider error to the kind reported to callers.
func classify(err error) models.ErrorKind {
	switch {
	case errors.Is(err, ErrFetchFailed):
		return models.ErrorKindFetchFailed
	default:
		return models.ErrorKindUnexpectedFailure
	}
}
