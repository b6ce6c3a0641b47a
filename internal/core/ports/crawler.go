// Package ports defines the core interfaces for the application.
package ports

import "context"

// DirectoryLister crawls one remote directory-listing page.
//
//go:generate mockgen -source=crawler.go -destination=mocks/mock_crawler.go -package=mocks
type DirectoryLister interface {
	// List fetches url and returns the subdirectory names referenced as
	// hyperlinks, in document order. Absolute-path links (navigation to
	// parent listings) and non-directory entries are excluded.
	List(ctx context.Context, url string) ([]string, error)
}
