package ports

import "go.trai.ch/kitfetch/internal/core/domain"

// ConfigLoader loads the tool settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from the given working
	// directory. A missing config file is not an error; defaults apply.
	Load(cwd string) (*domain.Settings, error)
}
