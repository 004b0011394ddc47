package videos

import (
	"context"
	"strings"

	"github.com/ytinfo/backend/internal/logging"
	"github.com/ytinfo/backend/internal/models"
)

// Service turns a raw URL into a metadata result. Each call is independent
// and makes at most one provider lookup.
type Service struct {
	provider Provider
}

// NewService returns a Service backed by provider.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// FetchMetadata extracts the video id from raw and looks up its metadata.
// Every failure is a *LookupError.
func (s *Service) FetchMetadata(ctx context.Context, raw string) (models.VideoMetadataResult, error) {
	logger := logging.FromContext(ctx)

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.VideoMetadataResult{}, &LookupError{Kind: models.ErrorKindMissingInput, Err: ErrMissingInput}
	}

	ref, err := ExtractVideoID(raw)
	if err != nil {
		logger.Info("rejected video url", "url", raw)
		return models.VideoMetadataResult{}, &LookupError{Kind: models.ErrorKindInvalidURL, Err: err}
	}

	if s == nil || s.provider == nil {
		return models.VideoMetadataResult{}, &LookupError{Kind: models.ErrorKindUnexpectedFailure, VideoID: ref.ID(), Err: ErrProviderUnavailable}
	}

	meta, err := s.provider.Lookup(ctx, ref)
	if err != nil {
		kind := classify(err)
		logger.Error("video metadata lookup failed", "videoId", ref.ID(), "kind", kind, "error", err)
		return models.VideoMetadataResult{}, &LookupError{Kind: kind, VideoID: ref.ID(), Err: err}
	}

	return models.VideoMetadataResult{
		Title:        meta.Title,
		Author:       meta.Author,
		Duration:     models.UnknownDuration,
		Thumbnail:    meta.Thumbnail,
		VideoID:      ref.ID(),
		Formats:      []models.FormatDescriptor{PlaceholderFormat(ref)},
		Instructions: DownloadInstructions(),
	}, nil
}
