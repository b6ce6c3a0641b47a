// Package display renders resolved catalogs for terminal output.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/kitfetch/internal/core/domain"
	"go.trai.ch/kitfetch/internal/ui/style"
)

var (
	platformStyle = lipgloss.NewStyle().Foreground(style.Teal).Bold(true)
	targetStyle   = lipgloss.NewStyle().Foreground(style.Green)
	versionStyle  = lipgloss.NewStyle().Foreground(style.Slate)
)

// Renderer implements ports.Renderer as an indented terminal listing.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderCatalog writes the catalog as platform headers with indented targets
// and version lines. A version whose kit carries no toolchain entries is
// still listed; it marks a kit that exists but offers nothing to select.
func (r *Renderer) RenderCatalog(w io.Writer, c domain.Catalog) error {
	for _, platform := range c.SortedPlatforms() {
		if _, err := fmt.Fprintln(w, platformStyle.Render(string(platform))); err != nil {
			return err
		}
		for _, target := range c.SortedTargets(platform) {
			if _, err := fmt.Fprintln(w, "  "+targetStyle.Render(style.Dot+" "+target)); err != nil {
				return err
			}
			for _, v := range c.SortedVersions(platform, target) {
				line := "    " + versionStyle.Render(v.String()+":") + " " + toolchainList(c[platform][target][v])
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func toolchainList(set domain.ToolchainSet) string {
	if len(set) == 0 {
		return "(no toolchains)"
	}
	return strings.Join(set.Sorted(), ", ")
}
