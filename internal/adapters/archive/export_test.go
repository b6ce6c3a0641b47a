package archive

import (
	"io"
	"net/http"
)

// NewFetcherWithClient exports the private constructor for testing purposes.
func NewFetcherWithClient(client *http.Client, out io.Writer) *Fetcher {
	return newFetcherWithClient(client, out)
}
