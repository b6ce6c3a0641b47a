package ports

import (
	"context"

	"go.trai.ch/kitfetch/internal/core/domain"
)

// CatalogResolver enumerates the kits matching a selection.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type CatalogResolver interface {
	// Resolve crawls the repository and returns the catalog of matching
	// kits. A failed crawl returns an error; a successful crawl with no
	// matches returns an empty catalog.
	Resolve(ctx context.Context, sel domain.Selection) (domain.Catalog, error)
}
