package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ytinfo/backend/internal/config"
)

func TestBuildDependencies(t *testing.T) {
	deps := buildDependencies(config.Config{OEmbedEndpoint: "http://127.0.0.1:0/oembed"})
	if deps.Metadata == nil {
		t.Fatal("expected metadata service to be configured")
	}
}

func TestBuildMetadataServiceCaches(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Me at the zoo","author_name":"jawed"}`))
	}))
	defer srv.Close()

	cases := []struct {
		name     string
		ttl      time.Duration
		wantHits int32
	}{
		{"noCache", 0, 2},
		{"cached", time.Minute, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hits.Store(0)
			service := buildMetadataService(config.Config{OEmbedEndpoint: srv.URL, MetadataCacheTTL: tc.ttl}, srv.Client())

			for i := 0; i < 2; i++ {
				res, err := service.FetchMetadata(context.Background(), "https://youtu.be/XMWLfDv0dXs")
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if res.Title != "Me at the zoo" {
					t.Fatalf("unexpected title %q", res.Title)
				}
			}

			if got := hits.Load(); got != tc.wantHits {
				t.Fatalf("expected %d provider hits got %d", tc.wantHits, got)
			}
		})
	}
}
