package videos

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOEmbed = `{"title":"Me at the zoo","author_name":"jawed","author_url":"https://www.youtube.com/@jawed","type":"video","version":"1.0","provider_name":"YouTube","thumbnail_url":"https://i.ytimg.com/vi/XMWLfDv0dXs/hqdefault.jpg"}`

func mustRef(t *testing.T, raw string) Reference {
	t.Helper()
	ref, err := ExtractVideoID(raw)
	require.NoError(t, err)
	return ref
}

func TestOEmbedProviderLookup(t *testing.T) {
	var gotURL, gotFormat, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.Query().Get("url")
		gotFormat = r.URL.Query().Get("format")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleOEmbed))
	}))
	defer srv.Close()

	provider := NewOEmbedProvider(srv.URL, srv.Client(), 0)
	meta, err := provider.Lookup(context.Background(), mustRef(t, "https://youtu.be/XMWLfDv0dXs"))
	require.NoError(t, err)

	assert.Equal(t, "https://www.youtube.com/watch?v=XMWLfDv0dXs", gotURL)
	assert.Equal(t, "json", gotFormat)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, Metadata{
		Title:     "Me at the zoo",
		Author:    "jawed",
		Thumbnail: "https://i.ytimg.com/vi/XMWLfDv0dXs/hqdefault.jpg",
	}, meta)
}

func TestOEmbedProviderNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer srv.Close()

	provider := NewOEmbedProvider(srv.URL, srv.Client(), 0)
	_, err := provider.Lookup(context.Background(), mustRef(t, "https://youtu.be/XMWLfDv0dXs"))
	require.ErrorIs(t, err, ErrFetchFailed)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestOEmbedProviderNetworkFailure(t *testing.T) {
	client := doerFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	provider := NewOEmbedProvider("https://oembed.invalid/oembed", client, 0)
	_, err := provider.Lookup(context.Background(), mustRef(t, "https://youtu.be/XMWLfDv0dXs"))
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestOEmbedProviderMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":`))
	}))
	defer srv.Close()

	provider := NewOEmbedProvider(srv.URL, srv.Client(), 0)
	_, err := provider.Lookup(context.Background(), mustRef(t, "https://youtu.be/XMWLfDv0dXs"))
	require.ErrorIs(t, err, ErrUnexpectedResponse)
	assert.NotErrorIs(t, err, ErrFetchFailed)
}

func TestOEmbedProviderRejectsZeroReference(t *testing.T) {
	calls := 0
	client := doerFunc(func(*http.Request) (*http.Response, error) {
		calls++
		return nil, errors.New("unexpected call")
	})

	provider := NewOEmbedProvider("", client, 0)
	_, err := provider.Lookup(context.Background(), Reference{})
	assert.ErrorIs(t, err, ErrInvalidURL)
	assert.Zero(t, calls)
	assert.Equal(t, DefaultOEmbedEndpoint, provider.Endpoint)
}

func TestOEmbedProviderNil(t *testing.T) {
	var provider *OEmbedProvider
	_, err := provider.Lookup(context.Background(), Reference{id: "XMWLfDv0dXs"})
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }
