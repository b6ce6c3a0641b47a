// Package archive implements downloading and extracting kit archives.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.trai.ch/kitfetch/internal/core/domain"
	"go.trai.ch/zerr"
)

// Fetcher implements ports.ArchiveFetcher over HTTP, streaming each archive
// to a file in the working directory with a progress bar on out.
type Fetcher struct {
	httpClient *http.Client
	out        io.Writer
}

// NewFetcher creates an ArchiveFetcher reporting progress to out. The client
// carries no request timeout; archives can be large and slow, so only the
// operation context bounds a download.
func NewFetcher(out io.Writer) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{},
		out:        out,
	}
}

// newFetcherWithClient creates a Fetcher with a custom http client (used for testing).
func newFetcherWithClient(client *http.Client, out io.Writer) *Fetcher {
	return &Fetcher{httpClient: client, out: out}
}

// Fetch downloads url into filename. A partially written file is left on
// disk on failure; the caller owns its removal.
func (f *Fetcher) Fetch(ctx context.Context, url, filename string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.Join(domain.ErrInterrupted, err)
		}
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(domain.ErrDownloadFailed, "status_code", resp.StatusCode)
		return zerr.With(statusErr, "url", url)
	}

	// #nosec G304 -- filename comes from the repository manifest the user selected
	out, err := os.Create(filename)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "file", filename)
	}
	defer func() {
		_ = out.Close()
	}()

	bar := progressbar.NewOptions64(
		resp.ContentLength,
		progressbar.OptionSetWriter(f.out),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetDescription(domain.ArchiveDisplayName(filename)),
		progressbar.OptionThrottle(80*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(f.out)
		}),
	)

	if _, err := io.Copy(io.MultiWriter(out, bar), resp.Body); err != nil {
		if ctx.Err() != nil {
			return errors.Join(domain.ErrInterrupted, err)
		}
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", url)
	}

	return nil
}
