package domain

// Selection describes which kits the caller is interested in. A partially
// specified selection enumerates matching kits; a complete selection pins a
// single kit for installation.
type Selection struct {
	// All enumerates every platform regardless of Platform.
	All bool
	// Platform is the exact platform to match; required when All is false.
	Platform Platform
	// Version is the exact version to match; nil matches any version.
	// Ignored when All is true.
	Version *Version
	// Target is the exact target to match; empty matches any target.
	Target string
	// Toolchain names the compiler/ABI build to install. Only consulted by
	// manifest resolution, never by catalog filtering.
	Toolchain string
}

// Complete reports whether the selection pins a single kit.
func (s Selection) Complete() bool {
	return !s.All &&
		s.Platform != "" &&
		s.Version != nil &&
		s.Target != "" &&
		s.Toolchain != ""
}
