package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kitfetch/internal/adapters/archive"
	"go.trai.ch/kitfetch/internal/adapters/config"
	"go.trai.ch/kitfetch/internal/adapters/display"
	"go.trai.ch/kitfetch/internal/adapters/logger"
	"go.trai.ch/kitfetch/internal/adapters/repo"
	"go.trai.ch/kitfetch/internal/core/domain"
	"go.trai.ch/kitfetch/internal/core/ports"
	"go.trai.ch/kitfetch/internal/engine/catalog"
)

const (
	// AppNodeID is the unique identifier for the application Graft node.
	AppNodeID graft.ID = "app"
	// ComponentsNodeID is the unique identifier for the components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			catalog.NodeID,
			repo.ManifestNodeID,
			archive.FetcherNodeID,
			archive.ExtractorNodeID,
			display.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			resolver, err := graft.Dep[ports.CatalogResolver](ctx)
			if err != nil {
				return nil, err
			}
			manifests, err := graft.Dep[ports.ManifestSource](ctx)
			if err != nil {
				return nil, err
			}
			fetcher, err := graft.Dep[ports.ArchiveFetcher](ctx)
			if err != nil {
				return nil, err
			}
			extractor, err := graft.Dep[ports.Extractor](ctx)
			if err != nil {
				return nil, err
			}
			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(resolver, manifests, fetcher, extractor, renderer, log, settings), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}
