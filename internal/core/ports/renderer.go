package ports

import (
	"io"

	"go.trai.ch/kitfetch/internal/core/domain"
)

// Renderer presents a resolved catalog to the user.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderCatalog writes the nested platform/target/version/toolchain
	// listing to w.
	RenderCatalog(w io.Writer, c domain.Catalog) error
}
