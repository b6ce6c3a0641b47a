package domain

import "sort"

// ToolchainSet is the set of toolchain identifiers available for one kit
// version. An empty set is a valid state: the version exists but none of its
// package entries carried a toolchain fragment.
type ToolchainSet map[string]struct{}

// Add inserts a toolchain identifier into the set.
func (s ToolchainSet) Add(name string) {
	s[name] = struct{}{}
}

// Sorted returns the toolchain identifiers in lexical order.
func (s ToolchainSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Catalog enumerates the kits available for a selection:
// platform -> target -> version -> toolchains. It is built fresh for every
// resolution call and never persisted.
type Catalog map[Platform]map[string]map[Version]ToolchainSet

// NewCatalog returns an empty catalog.
func NewCatalog() Catalog {
	return Catalog{}
}

// Ensure records the given version under platform/target and returns its
// toolchain set, creating intermediate levels as needed. Recording a version
// with an empty set is how "version exists, no toolchains matched" is kept
// distinct from "version absent".
func (c Catalog) Ensure(platform Platform, target string, v Version) ToolchainSet {
	targets, ok := c[platform]
	if !ok {
		targets = map[string]map[Version]ToolchainSet{}
		c[platform] = targets
	}
	versions, ok := targets[target]
	if !ok {
		versions = map[Version]ToolchainSet{}
		targets[target] = versions
	}
	set, ok := versions[v]
	if !ok {
		set = ToolchainSet{}
		versions[v] = set
	}
	return set
}

// Empty reports whether the catalog records no versions at all.
func (c Catalog) Empty() bool {
	for _, targets := range c {
		for _, versions := range targets {
			if len(versions) > 0 {
				return false
			}
		}
	}
	return true
}

// SortedPlatforms returns the recorded platforms in listing order.
func (c Catalog) SortedPlatforms() []Platform {
	var platforms []Platform
	for _, p := range Platforms() {
		if _, ok := c[p]; ok {
			platforms = append(platforms, p)
		}
	}
	return platforms
}

// SortedTargets returns the recorded targets for a platform in lexical order.
func (c Catalog) SortedTargets(p Platform) []string {
	targets := make([]string, 0, len(c[p]))
	for target := range c[p] {
		targets = append(targets, target)
	}
	sort.Strings(targets)
	return targets
}

// SortedVersions returns the recorded versions for a platform/target in
// ascending version order.
func (c Catalog) SortedVersions(p Platform, target string) []Version {
	versions := make([]Version, 0, len(c[p][target]))
	for v := range c[p][target] {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i].Less(versions[j]) })
	return versions
}
