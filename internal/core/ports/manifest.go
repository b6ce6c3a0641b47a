package ports

import (
	"context"

	"go.trai.ch/kitfetch/internal/core/domain"
)

// ManifestSource resolves a fully specified kit to its package manifest.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestSource interface {
	// Resolve fetches the metadata document under baseURL (a version
	// directory URL ending in a slash) and returns the manifest of the first
	// package entry matching the requested toolchain.
	Resolve(ctx context.Context, baseURL string, v domain.Version, toolchain string) (*domain.Manifest, error)
}
