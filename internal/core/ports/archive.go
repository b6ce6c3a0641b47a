package ports

import "context"

// ArchiveFetcher streams one remote archive to a local file.
//
//go:generate mockgen -source=archive.go -destination=mocks/mock_archive.go -package=mocks
type ArchiveFetcher interface {
	// Fetch downloads url into filename in the current working directory.
	// The file may be left partially written on error; removal is the
	// caller's responsibility.
	Fetch(ctx context.Context, url, filename string) error
}

// Extractor invokes the external archive-extraction tool.
type Extractor interface {
	// Extract runs the tool against the local archive at path, synchronously,
	// with its output captured. Exit success means the contents were
	// extracted into the current directory.
	Extract(ctx context.Context, path string) error
}
