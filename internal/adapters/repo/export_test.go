package repo

import "net/http"

// NewCrawlerWithClient exports the private constructor for testing purposes.
func NewCrawlerWithClient(client *http.Client) *Crawler {
	return newCrawlerWithClient(client)
}

// NewResolverWithClient exports the private constructor for testing purposes.
func NewResolverWithClient(client *http.Client) *Resolver {
	return newResolverWithClient(client)
}
