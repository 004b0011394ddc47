package videos

import "context"

// Metadata captures the public video details returned by the metadata provider.
type Metadata struct {
	Title     string
	Author    string
	Thumbnail string
}

// Provider returns metadata for an extracted video reference.
type Provider interface {
	Lookup(ctx context.Context, ref Reference) (Metadata, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, ref Reference) (Metadata, error)

// Lookup implements Provider.
func (f ProviderFunc) Lookup(ctx context.Context, ref Reference) (Metadata, error) {
	return f(ctx, ref)
}
