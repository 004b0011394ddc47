package app

import (
	"net/http"

	"github.com/ytinfo/backend/internal/config"
	"github.com/ytinfo/backend/internal/handlers"
	"github.com/ytinfo/backend/internal/videos"
)

// buildMetadataService wires the oEmbed provider, and the cache in front of it
// when a TTL is configured, into the lookup service.
func buildMetadataService(cfg config.Config, client videos.HTTPDoer) *videos.Service {
	var provider videos.Provider = videos.NewOEmbedProvider(cfg.OEmbedEndpoint, client, cfg.OEmbedTimeout)
	if cfg.MetadataCacheTTL > 0 {
		provider = videos.NewCachingProvider(provider, cfg.MetadataCacheTTL)
	}
	return videos.NewService(provider)
}

// buildDependencies wires together concrete implementations used by the HTTP handlers.
func buildDependencies(cfg config.Config) handlers.Dependencies {
	return handlers.Dependencies{
		Metadata: buildMetadataService(cfg, http.DefaultClient),
	}
}
