// Package app implements the application layer for kitfetch.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/kitfetch/internal/core/domain"
	"go.trai.ch/kitfetch/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	resolver  ports.CatalogResolver
	manifests ports.ManifestSource
	fetcher   ports.ArchiveFetcher
	extractor ports.Extractor
	renderer  ports.Renderer
	logger    ports.Logger
	settings  *domain.Settings
	stdout    io.Writer
}

// New creates a new App instance.
func New(
	resolver ports.CatalogResolver,
	manifests ports.ManifestSource,
	fetcher ports.ArchiveFetcher,
	extractor ports.Extractor,
	renderer ports.Renderer,
	log ports.Logger,
	settings *domain.Settings,
) *App {
	return &App{
		resolver:  resolver,
		manifests: manifests,
		fetcher:   fetcher,
		extractor: extractor,
		renderer:  renderer,
		logger:    log,
		settings:  settings,
		stdout:    os.Stdout,
	}
}

// WithStdout redirects listing output. This is primarily used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// List resolves the kits matching the selection and renders them. A crawl
// that succeeds but matches nothing is reported as an error so the operator
// can tell a miss from an empty repository page.
func (a *App) List(ctx context.Context, sel domain.Selection) error {
	cat, err := a.resolver.Resolve(ctx, sel)
	if err != nil {
		if ctx.Err() != nil {
			return errors.Join(domain.ErrInterrupted, err)
		}
		return zerr.Wrap(err, "failed to enumerate kits")
	}

	if cat.Empty() {
		return errors.Join(domain.ErrNoKitsMatch, selectionError(sel))
	}

	return a.renderer.RenderCatalog(a.stdout, cat)
}

// Install resolves a fully specified kit to its manifest and downloads and
// extracts each archive in order, one at a time. Every downloaded archive is
// deleted after its extraction attempt, whatever the outcome.
func (a *App) Install(ctx context.Context, sel domain.Selection) error {
	if !sel.Complete() {
		return errors.Join(domain.ErrIncompleteSelection, selectionError(sel))
	}

	baseURL := a.settings.Mirror + "/" + sel.Platform.Token() + "/" + sel.Target +
		"/qt5_" + sel.Version.Token() + "/"

	manifest, err := a.manifests.Resolve(ctx, baseURL, *sel.Version, sel.Toolchain)
	if err != nil {
		if ctx.Err() != nil {
			return errors.Join(domain.ErrInterrupted, err)
		}
		return zerr.Wrap(err, "failed to resolve the kit manifest")
	}

	a.logger.Info(fmt.Sprintf("installing %s (%d archives)", manifest.Name, len(manifest.Archives)))

	for _, archive := range manifest.Archives {
		if err := a.installArchive(ctx, manifest, archive); err != nil {
			return err
		}
	}

	a.logger.Info(fmt.Sprintf("installed %s %s", manifest.Name, sel.Version))
	return nil
}

// installArchive downloads one archive into the working directory, extracts
// it, and removes the local archive file. The removal is deferred so an
// extraction failure or an interrupt cannot leave the archive behind.
func (a *App) installArchive(ctx context.Context, manifest *domain.Manifest, archive string) error {
	name := domain.ArchiveDisplayName(archive)

	defer func() {
		if err := os.Remove(archive); err != nil && !errors.Is(err, fs.ErrNotExist) {
			a.logger.Warn(fmt.Sprintf("could not remove %s: %v", archive, err))
		}
	}()

	a.logger.Info("fetching " + name)
	if err := a.fetcher.Fetch(ctx, manifest.BaseURL+archive, archive); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to download archive"), "module", name)
	}

	a.logger.Info("extracting " + name)
	if err := a.extractor.Extract(ctx, archive); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to extract archive"), "module", name)
	}

	return nil
}

// selectionError describes the selection as error metadata.
func selectionError(sel domain.Selection) error {
	err := zerr.New("requested selection")
	if sel.All {
		return zerr.With(err, "platform", "all")
	}
	err = zerr.With(err, "platform", string(sel.Platform))
	if sel.Version != nil {
		err = zerr.With(err, "version", sel.Version.String())
	}
	if sel.Target != "" {
		err = zerr.With(err, "target", sel.Target)
	}
	if sel.Toolchain != "" {
		err = zerr.With(err, "toolchain", sel.Toolchain)
	}
	return err
}
