package videos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytinfo/backend/internal/models"
)

func lookupError(t *testing.T, err error) *LookupError {
	t.Helper()
	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr), "expected *LookupError got %T", err)
	return lookupErr
}

func TestServiceFetchMetadataSuccess(t *testing.T) {
	var seen []string
	provider := ProviderFunc(func(_ context.Context, ref Reference) (Metadata, error) {
		seen = append(seen, ref.ID())
		return Metadata{Title: "Title", Author: "Author", Thumbnail: "thumb.jpg"}, nil
	})
	svc := NewService(provider)

	res, err := svc.FetchMetadata(context.Background(), "https://youtube.com/shorts/XMWLfDv0dXs?si=9juKdwSXAdGXF4-5")
	require.NoError(t, err)

	assert.Equal(t, []string{"XMWLfDv0dXs"}, seen)
	assert.Equal(t, "Title", res.Title)
	assert.Equal(t, "Author", res.Author)
	assert.Equal(t, "thumb.jpg", res.Thumbnail)
	assert.Equal(t, "XMWLfDv0dXs", res.VideoID)
	assert.Equal(t, models.UnknownDuration, res.Duration)
	require.Len(t, res.Formats, 1)
	assert.True(t, res.Formats[0].Placeholder)
	assert.Equal(t, "https://www.youtube.com/watch?v=XMWLfDv0dXs", res.Formats[0].URL)
	assert.Equal(t, DownloadInstructions(), res.Instructions)
}

func TestServiceFetchMetadataIsIdempotent(t *testing.T) {
	provider := ProviderFunc(func(context.Context, Reference) (Metadata, error) {
		return Metadata{Title: "Stable", Author: "Channel"}, nil
	})
	svc := NewService(provider)

	first, err := svc.FetchMetadata(context.Background(), "https://youtu.be/XMWLfDv0dXs")
	require.NoError(t, err)
	second, err := svc.FetchMetadata(context.Background(), "https://youtu.be/XMWLfDv0dXs")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	first.Instructions[0] = "mutated"
	assert.NotEqual(t, first.Instructions[0], second.Instructions[0])
}

func TestServiceFetchMetadataRejectsWithoutCallingProvider(t *testing.T) {
	cases := []struct {
		name string
		in   string
		kind models.ErrorKind
		msg  string
	}{
		{"empty", "", models.ErrorKindMissingInput, "URL is required"},
		{"blank", "   ", models.ErrorKindMissingInput, "URL is required"},
		{"notURL", "not a url", models.ErrorKindInvalidURL, "Invalid YouTube URL"},
		{"otherHost", "https://vimeo.com/123456", models.ErrorKindInvalidURL, "Invalid YouTube URL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			svc := NewService(ProviderFunc(func(context.Context, Reference) (Metadata, error) {
				calls++
				return Metadata{}, nil
			}))

			_, err := svc.FetchMetadata(context.Background(), tc.in)
			lookupErr := lookupError(t, err)

			assert.Equal(t, tc.kind, lookupErr.Kind)
			assert.Zero(t, calls)

			res := lookupErr.Result()
			assert.Equal(t, tc.msg, res.Error)
			assert.Empty(t, res.VideoID)
			assert.Empty(t, res.Instructions)
		})
	}
}

func TestServiceFetchMetadataProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc := NewService(NewOEmbedProvider(srv.URL, srv.Client(), 0))

	_, err := svc.FetchMetadata(context.Background(), "https://youtu.be/XMWLfDv0dXs")
	lookupErr := lookupError(t, err)
	assert.Equal(t, models.ErrorKindFetchFailed, lookupErr.Kind)
	assert.ErrorIs(t, err, ErrFetchFailed)

	res := lookupErr.Result()
	assert.Equal(t, "XMWLfDv0dXs", res.VideoID)
	require.NotEmpty(t, res.Instructions)
	assert.Equal(t, "Video URL: https://www.youtube.com/watch?v=XMWLfDv0dXs", res.Instructions[len(res.Instructions)-1])
}

func TestServiceFetchMetadataUnexpectedFailure(t *testing.T) {
	svc := NewService(ProviderFunc(func(context.Context, Reference) (Metadata, error) {
		return Metadata{}, fmt.Errorf("%w: bad json", ErrUnexpectedResponse)
	}))

	_, err := svc.FetchMetadata(context.Background(), "https://www.youtube.com/watch?v=XMWLfDv0dXs")
	lookupErr := lookupError(t, err)
	assert.Equal(t, models.ErrorKindUnexpectedFailure, lookupErr.Kind)
	assert.Equal(t, "XMWLfDv0dXs", lookupErr.Result().VideoID)
	assert.NotEmpty(t, lookupErr.Result().Instructions)
}

func TestServiceWithoutProvider(t *testing.T) {
	_, err := NewService(nil).FetchMetadata(context.Background(), "https://youtu.be/XMWLfDv0dXs")
	lookupErr := lookupError(t, err)
	assert.Equal(t, models.ErrorKindUnexpectedFailure, lookupErr.Kind)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}
