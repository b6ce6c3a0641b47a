// Package domain contains the core types for kit resolution.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Platform identifies a host operating system supported by the repository.
type Platform string

const (
	// PlatformLinux is the Linux desktop platform.
	PlatformLinux Platform = "linux"
	// PlatformMac is the macOS desktop platform.
	PlatformMac Platform = "macos"
	// PlatformWindows is the Windows desktop platform.
	PlatformWindows Platform = "windows"
)

// Platforms returns every supported platform in listing order.
func Platforms() []Platform {
	return []Platform{PlatformLinux, PlatformMac, PlatformWindows}
}

// Token returns the repository directory token for the platform.
// Token and PlatformFromToken form a bijection over the supported set.
func (p Platform) Token() string {
	switch p {
	case PlatformLinux:
		return "linux_x64"
	case PlatformMac:
		return "mac_x64"
	case PlatformWindows:
		return "windows_x86"
	}
	return ""
}

// PlatformFromToken maps a repository directory token back to a Platform.
// A trailing slash from a listing entry is tolerated. Unrecognised tokens
// report ok=false; the repository hosts directories for products this tool
// does not handle, so an unknown token is not an error.
func PlatformFromToken(token string) (Platform, bool) {
	switch strings.TrimSuffix(token, "/") {
	case "linux_x64":
		return PlatformLinux, true
	case "mac_x64":
		return PlatformMac, true
	case "windows_x86":
		return PlatformWindows, true
	}
	return "", false
}

// ParsePlatform parses a user-facing platform name.
func ParsePlatform(name string) (Platform, error) {
	switch Platform(name) {
	case PlatformLinux, PlatformMac, PlatformWindows:
		return Platform(name), nil
	}
	return "", zerr.With(ErrUnknownPlatform, "platform", name)
}
