package domain

import (
	"regexp"
	"strings"
)

// kitDirPattern matches version directories following the major-version-5
// kit naming convention, e.g. "qt5_5124". Tool, preview, WebAssembly and
// source-only entries carry extra name fragments and do not match.
var kitDirPattern = regexp.MustCompile(`^qt5_(\d+)$`)

// KitVersionToken extracts the compact version token from a crawled
// version-directory entry. Entries that do not follow the kit naming
// convention report ok=false.
func KitVersionToken(entry string) (string, bool) {
	m := kitDirPattern.FindStringSubmatch(strings.TrimSuffix(entry, "/"))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ToolchainFragment extracts the toolchain identifier from a package
// directory name such as "qt.qt5.5124.win64_msvc2017_64".
//
// The last dot-segment names the toolchain unless it is a package-kind
// qualifier ("qt*" or "debug*" denote content kind, not toolchain), in which
// case the preceding segment is consulted. A consulted segment equal to the
// version token means the entry is a content package with no toolchain
// suffix at all. This is a best-effort reading of the repository's naming
// convention; keep the observed shapes in the tests in sync with the live
// repository.
func ToolchainFragment(entry, versionToken string) (string, bool) {
	name := strings.TrimSuffix(entry, "/")
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return "", false
	}

	frag := parts[len(parts)-1]
	if isKindFragment(frag) && len(parts) >= 3 {
		frag = parts[len(parts)-2]
	}
	if isKindFragment(frag) || frag == versionToken {
		return "", false
	}
	return frag, true
}

func isKindFragment(s string) bool {
	return strings.HasPrefix(s, "qt") || strings.HasPrefix(s, "debug")
}
