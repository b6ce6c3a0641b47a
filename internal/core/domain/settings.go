package domain

import "time"

// DefaultMirror is the repository root crawled when no mirror is configured.
const DefaultMirror = "https://download.qt.io/online/qtsdkrepository"

// Settings carries the runtime configuration of the tool. A zero config file
// (or none at all) yields DefaultSettings.
type Settings struct {
	// Mirror is the repository root URL, without a trailing slash.
	Mirror string
	// HTTPTimeout bounds each catalog/metadata fetch. Archive downloads are
	// not bounded by it; they are governed by the operation context only.
	HTTPTimeout time.Duration
	// ExtractTool is the external extraction command.
	ExtractTool string
	// ExtractArgs are the arguments passed before the archive path.
	ExtractArgs []string
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() *Settings {
	return &Settings{
		Mirror:      DefaultMirror,
		HTTPTimeout: 30 * time.Second,
		ExtractTool: "7z",
		ExtractArgs: []string{"x", "-y"},
	}
}
