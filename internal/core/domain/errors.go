package domain

import "go.trai.ch/zerr"

var (
	// ErrRepoUnreachable is returned when the package repository cannot be reached.
	ErrRepoUnreachable = zerr.New("failed to reach the package repository")

	// ErrListingParse is returned when a directory listing page is not a well-formed document.
	ErrListingParse = zerr.New("directory listing is not well-formed")

	// ErrMetadataParse is returned when the package metadata document cannot be parsed.
	ErrMetadataParse = zerr.New("package metadata document is not well-formed")

	// ErrPackageNotFound is returned when no package in the metadata document matches the requested toolchain.
	ErrPackageNotFound = zerr.New("no package matches the requested toolchain")

	// ErrExtractionFailed is returned when the external extraction tool reports a non-zero exit.
	ErrExtractionFailed = zerr.New("archive extraction failed")

	// ErrInterrupted is returned when the operator cancels an in-flight operation.
	ErrInterrupted = zerr.New("interrupted")

	// ErrNoKitsMatch is returned when a crawl succeeds but no kit matches the selection.
	ErrNoKitsMatch = zerr.New("no kits match the requested selection")

	// ErrBadVersionToken is returned when a compact version token cannot be decoded.
	ErrBadVersionToken = zerr.New("malformed version token")

	// ErrBadVersion is returned when a dotted version string cannot be parsed.
	ErrBadVersion = zerr.New("invalid version, expected major.minor.patch")

	// ErrUnknownPlatform is returned when a platform name is not one of the supported set.
	ErrUnknownPlatform = zerr.New("unknown platform")

	// ErrIncompleteSelection is returned when an install is requested for a selection that does not pin a single kit.
	ErrIncompleteSelection = zerr.New("selection does not pin a single kit")

	// ErrDownloadFailed is returned when an archive cannot be streamed to local storage.
	ErrDownloadFailed = zerr.New("archive download failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
