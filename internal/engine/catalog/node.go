package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kitfetch/internal/adapters/config"
	"go.trai.ch/kitfetch/internal/adapters/logger"
	"go.trai.ch/kitfetch/internal/adapters/repo"
	"go.trai.ch/kitfetch/internal/core/domain"
	"go.trai.ch/kitfetch/internal/core/ports"
)

// NodeID is the unique identifier for the catalog resolver Graft node.
const NodeID graft.ID = "engine.catalog"

func init() {
	graft.Register(graft.Node[ports.CatalogResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{repo.CrawlerNodeID, logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.CatalogResolver, error) {
			lister, err := graft.Dep[ports.DirectoryLister](ctx)
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
			return NewBuilder(lister, log, settings), nil
		},
	})
}
