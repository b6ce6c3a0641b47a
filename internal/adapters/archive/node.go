package archive

import (
	"context"
	"io"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/kitfetch/internal/adapters/config"
	"go.trai.ch/kitfetch/internal/core/domain"
	"go.trai.ch/kitfetch/internal/core/ports"
	"go.trai.ch/kitfetch/internal/ui/output"
)

const (
	// FetcherNodeID is the unique identifier for the archive fetcher Graft node.
	FetcherNodeID graft.ID = "adapter.archive.fetcher"
	// ExtractorNodeID is the unique identifier for the extractor Graft node.
	ExtractorNodeID graft.ID = "adapter.archive.extractor"
)

func init() {
	graft.Register(graft.Node[ports.ArchiveFetcher]{
		ID:        FetcherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArchiveFetcher, error) {
			progress := io.Writer(io.Discard)
			if output.Interactive(os.Stderr) {
				progress = os.Stderr
			}
			return NewFetcher(progress), nil
		},
	})

	graft.Register(graft.Node[ports.Extractor]{
		ID:        ExtractorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Extractor, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewExtractor(settings), nil
		},
	})
}
