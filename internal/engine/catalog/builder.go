// Package catalog resolves the repository's directory tree into the catalog
// of available kits.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/kitfetch/internal/core/domain"
	"go.trai.ch/kitfetch/internal/core/ports"
	"go.trai.ch/zerr"
)

// rootTarget is the per-platform bookkeeping directory that holds no kits.
const rootTarget = "root"

// Builder implements ports.CatalogResolver by crawling the repository's
// nested directory listings: platforms, then targets, then version
// directories, then the package entries inside each version.
type Builder struct {
	lister ports.DirectoryLister
	logger ports.Logger
	mirror string
}

// NewBuilder creates a Builder crawling the configured mirror.
func NewBuilder(lister ports.DirectoryLister, logger ports.Logger, settings *domain.Settings) *Builder {
	return &Builder{
		lister: lister,
		logger: logger,
		mirror: strings.TrimRight(settings.Mirror, "/"),
	}
}

// Resolve crawls the repository and returns the catalog of kits matching the
// selection. Crawl failures propagate; they are never folded into an empty
// catalog.
func (b *Builder) Resolve(ctx context.Context, sel domain.Selection) (domain.Catalog, error) {
	cat := domain.NewCatalog()
	root := b.mirror + "/"

	entries, err := b.lister.List(ctx, root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to crawl repository root")
	}

	for _, entry := range entries {
		platform, ok := domain.PlatformFromToken(entry)
		if !ok {
			// The repository hosts directories for other products; not ours.
			continue
		}
		if !sel.All && platform != sel.Platform {
			continue
		}
		if err := b.resolvePlatform(ctx, cat, sel, platform, subdirURL(root, entry)); err != nil {
			return nil, err
		}
	}

	return cat, nil
}

func (b *Builder) resolvePlatform(
	ctx context.Context,
	cat domain.Catalog,
	sel domain.Selection,
	platform domain.Platform,
	platformURL string,
) error {
	entries, err := b.lister.List(ctx, platformURL)
	if err != nil {
		return zerr.Wrap(err, "failed to crawl platform "+string(platform))
	}

	for _, entry := range entries {
		target := strings.TrimSuffix(entry, "/")
		if target == rootTarget {
			continue
		}
		if sel.Target != "" && target != sel.Target {
			continue
		}
		if err := b.resolveTarget(ctx, cat, sel, platform, target, subdirURL(platformURL, entry)); err != nil {
			return err
		}
	}

	return nil
}

func (b *Builder) resolveTarget(
	ctx context.Context,
	cat domain.Catalog,
	sel domain.Selection,
	platform domain.Platform,
	target string,
	targetURL string,
) error {
	entries, err := b.lister.List(ctx, targetURL)
	if err != nil {
		return zerr.Wrap(err, "failed to crawl target "+target)
	}

	for _, entry := range entries {
		token, ok := domain.KitVersionToken(entry)
		if !ok {
			continue
		}
		v, err := domain.DecodeVersionToken(token)
		if err != nil {
			b.logger.Warn(fmt.Sprintf("skipping undecodable version directory %q under %s", entry, targetURL))
			continue
		}
		if !sel.All && sel.Version != nil && v != *sel.Version {
			continue
		}
		if err := b.resolveVersion(ctx, cat, platform, target, v, token, subdirURL(targetURL, entry)); err != nil {
			return err
		}
	}

	return nil
}

func (b *Builder) resolveVersion(
	ctx context.Context,
	cat domain.Catalog,
	platform domain.Platform,
	target string,
	v domain.Version,
	token string,
	versionURL string,
) error {
	entries, err := b.lister.List(ctx, versionURL)
	if err != nil {
		return zerr.Wrap(err, "failed to crawl version "+v.String())
	}

	// Recording the version before scanning its packages keeps a kit with no
	// toolchain entries distinct from a kit that does not exist.
	set := cat.Ensure(platform, target, v)
	for _, entry := range entries {
		if frag, ok := domain.ToolchainFragment(entry, token); ok {
			set.Add(frag)
		}
	}

	return nil
}

// subdirURL joins a listing URL with one of its subdirectory entries.
func subdirURL(base, entry string) string {
	return base + strings.TrimSuffix(entry, "/") + "/"
}
