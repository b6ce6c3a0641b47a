package domain

import "strings"

// Manifest is the concrete payload description for a resolved kit, extracted
// from the repository's metadata document.
type Manifest struct {
	// Name is the canonical package name, e.g. "qt.qt5.5124.win64_msvc2017_64".
	Name string
	// Version is the precise version string declared by the package, which
	// may carry build metadata, e.g. "5.12.4-0-201911111405".
	Version string
	// Archives lists the archive filenames in declaration order.
	Archives []string
	// BaseURL is the joined download base; an archive's URL is BaseURL
	// directly concatenated with its filename.
	BaseURL string
}

// ArchiveDisplayName returns the short module name shown for an archive:
// the text before the first '-' in its filename.
func ArchiveDisplayName(archive string) string {
	if i := strings.Index(archive, "-"); i >= 0 {
		return archive[:i]
	}
	return archive
}
