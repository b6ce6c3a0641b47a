package repo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kitfetch/internal/adapters/config"
	"go.trai.ch/kitfetch/internal/core/domain"
	"go.trai.ch/kitfetch/internal/core/ports"
)

const (
	// CrawlerNodeID is the unique identifier for the directory lister Graft node.
	CrawlerNodeID graft.ID = "adapter.repo.crawler"
	// ManifestNodeID is the unique identifier for the manifest source Graft node.
	ManifestNodeID graft.ID = "adapter.repo.manifest"
)

func init() {
	graft.Register(graft.Node[ports.DirectoryLister]{
		ID:        CrawlerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.DirectoryLister, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewCrawler(settings), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestSource]{
		ID:        ManifestNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ManifestSource, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(settings), nil
		},
	})
}
