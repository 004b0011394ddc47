package handlers

import (
	"context"

	"github.com/ytinfo/backend/internal/models"
)

// MetadataService resolves a pasted URL into video metadata. Failures are
// expected to be *videos.LookupError; anything else is reported as an
// unexpected failure.
type MetadataService interface {
	FetchMetadata(ctx context.Context, rawURL string) (models.VideoMetadataResult, error)
}
