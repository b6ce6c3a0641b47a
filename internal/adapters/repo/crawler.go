// Package repo implements the repository-facing ports against the HTML
// directory listings and metadata documents served by a qtsdkrepository
// mirror.
package repo

import (
	"context"
	"net/http"
	"strings"

	"go.trai.ch/kitfetch/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/net/html"
)

// Crawler implements ports.DirectoryLister over HTTP.
type Crawler struct {
	httpClient *http.Client
}

// NewCrawler creates a DirectoryLister with the configured per-request timeout.
func NewCrawler(settings *domain.Settings) *Crawler {
	return &Crawler{
		httpClient: &http.Client{
			Timeout: settings.HTTPTimeout,
		},
	}
}

// newCrawlerWithClient creates a Crawler with a custom http client (used for testing).
func newCrawlerWithClient(client *http.Client) *Crawler {
	return &Crawler{httpClient: client}
}

// List fetches the directory listing at url and returns the subdirectory
// hyperlinks in document order. Links that navigate away from the listing
// (absolute paths, other hosts, query strings, parent references) and links
// to plain files are skipped.
func (c *Crawler) List(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRepoUnreachable.Error())
	}

	resp, err := c.httpClient.Do(req)
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

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrListingParse.Error()), "url", url)
	}

	return collectSubdirectories(doc), nil
}

// collectSubdirectories walks the document tree and gathers the href targets
// of anchor elements that point at subdirectories.
func collectSubdirectories(doc *html.Node) []string {
	var entries []string
	for n := range doc.Descendants() {
		if n.Type != html.ElementNode || n.Data != "a" {
			continue
		}
		for _, attr := range n.Attr {
			if attr.Key != "href" {
				continue
			}
			if isSubdirectory(attr.Val) {
				entries = append(entries, attr.Val)
			}
			break
		}
	}
	return entries
}

// isSubdirectory reports whether an anchor target is a relative link to an
// immediate subdirectory of the listing page.
func isSubdirectory(href string) bool {
	if href == "" || href == "/" {
		return false
	}
	if strings.HasPrefix(href, "/") || strings.Contains(href, "://") {
		return false
	}
	if strings.HasPrefix(href, "?") || strings.HasPrefix(href, "..") {
		return false
	}
	return strings.HasSuffix(href, "/")
}
