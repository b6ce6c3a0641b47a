package repo

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"strings"

	"go.trai.ch/kitfetch/internal/core/domain"
	"go.trai.ch/zerr"
)

// metadataFilename is the metadata document every version directory serves.
const metadataFilename = "Updates.xml"

// Resolver implements ports.ManifestSource against the repository's
// per-version metadata documents.
type Resolver struct {
	httpClient *http.Client
}

// NewResolver creates a ManifestSource with the configured per-request timeout.
func NewResolver(settings *domain.Settings) *Resolver {
	return &Resolver{
		httpClient: &http.Client{
			Timeout: settings.HTTPTimeout,
		},
	}
}

// newResolverWithClient creates a Resolver with a custom http client (used for testing).
func newResolverWithClient(client *http.Client) *Resolver {
	return &Resolver{httpClient: client}
}

// updatesDocument mirrors the subset of the metadata schema this tool reads.
type updatesDocument struct {
	XMLName  xml.Name        `xml:"Updates"`
	Packages []packageUpdate `xml:"PackageUpdate"`
}

type packageUpdate struct {
	Name                 string `xml:"Name"`
	Version              string `xml:"Version"`
	DownloadableArchives string `xml:"DownloadableArchives"`
}

// Resolve fetches baseURL's metadata document and returns the manifest of
// the first package whose name ends in the version token and toolchain.
func (r *Resolver) Resolve(
	ctx context.Context,
	baseURL string,
	v domain.Version,
	toolchain string,
) (*domain.Manifest, error) {
	url := baseURL + metadataFilename

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRepoUnreachable.Error())
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepoUnreachable.Error()), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(domain.ErrRepoUnreachable, "status_code", resp.StatusCode)
		return nil, zerr.With(statusErr, "url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepoUnreachable.Error()), "url", url)
	}

	var doc updatesDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataParse.Error()), "url", url)
	}

	// Package names follow "qt.<family>.<token>.<toolchain>"; older repository
	// generations used "qt.<token>.<toolchain>". Matching on prefix and suffix
	// covers both.
	suffix := "." + v.Token() + "." + toolchain
	for _, p := range doc.Packages {
		if !strings.HasPrefix(p.Name, "qt.") || !strings.HasSuffix(p.Name, suffix) {
			continue
		}
		return &domain.Manifest{
			Name:     p.Name,
			Version:  p.Version,
			Archives: splitArchives(p.DownloadableArchives),
			BaseURL:  baseURL + p.Name + "/" + p.Version,
		}, nil
	}

	notFoundErr := zerr.With(domain.ErrPackageNotFound, "toolchain", toolchain)
	return nil, zerr.With(notFoundErr, "version", v.String())
}

// splitArchives parses the comma separated archive list of a package entry.
func splitArchives(s string) []string {
	var archives []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			archives = append(archives, part)
		}
	}
	return archives
}
