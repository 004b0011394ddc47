package videos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ytinfo/backend/internal/logging"
)

// DefaultOEmbedEndpoint is YouTube's public oEmbed endpoint.
const DefaultOEmbedEndpoint = "https://www.youtube.com/oembed"

// maxOEmbedBody caps how much of the provider response is read.
const maxOEmbedBody = 1 << 20

// HTTPDoer is the subset of *http.Client used by OEmbedProvider.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// OEmbedProvider fetches metadata from an oEmbed endpoint with a single GET.
type OEmbedProvider struct {
	Endpoint string
	Client   HTTPDoer
	// Timeout bounds the request when positive. Zero leaves it to the transport.
	Timeout time.Duration
}

// NewOEmbedProvider constructs a Provider for the given endpoint.
func NewOEmbedProvider(endpoint string, client HTTPDoer, timeout time.Duration) *OEmbedProvider {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultOEmbedEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OEmbedProvider{
		Endpoint: endpoint,
		Client:   client,
		Timeout:  timeout,
	}
}

type oembedPayload struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Lookup requests metadata for the canonical watch URL of ref.
func (p *OEmbedProvider) Lookup(ctx context.Context, ref Reference) (Metadata, error) {
	if p == nil || p.Client == nil {
		return Metadata{}, ErrProviderUnavailable
	}
	if ref.IsZero() {
		return Metadata{}, ErrInvalidURL
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	ctx, span := logging.StartSpan(ctx, "oembed.lookup")
	defer span.End()
	logger := logging.FromContext(ctx)

	endpoint, err := p.requestURL(ref)
	if err != nil {
		return Metadata{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Metadata{}, fmt.Errorf("build oembed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		logger.Warn("oembed request failed", "videoId", ref.ID(), "error", err)
		return Metadata{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("close oembed response body", "error", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("oembed returned non-success status", "videoId", ref.ID(), "status", resp.StatusCode)
		return Metadata{}, &StatusError{StatusCode: resp.StatusCode}
	}

	var payload oembedPayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxOEmbedBody)).Decode(&payload); err != nil {
		logger.Error("decode oembed response", "videoId", ref.ID(), "error", err)
		return Metadata{}, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	logger.Debug("oembed metadata fetched", slog.String("videoId", ref.ID()), slog.String("title", payload.Title))

	return Metadata{
		Title:     payload.Title,
		Author:    payload.AuthorName,
		Thumbnail: payload.ThumbnailURL,
	}, nil
}

func (p *OEmbedProvider) requestURL(ref Reference) (string, error) {
	u, err := url.Parse(p.Endpoint)
	if err != nil {
		return "", fmt.Errorf("parse oembed endpoint: %w", err)
	}
	q := u.Query()
	q.Set("url", ref.WatchURL())
	q.Set("format", "json")
	u.RawQuery = q.Encode()
	return u.String(), nil
}
