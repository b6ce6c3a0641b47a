// Package config provides the configuration loader for kitfetch.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/kitfetch/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file searched for from the working directory
// upwards.
const FileName = "kitfetch.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load searches for a configuration file from cwd up to the filesystem root
// and merges it onto the built-in defaults. No file at all yields the
// defaults unchanged.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	configPath, found := findConfiguration(cwd)
	if !found {
		return settings, nil
	}

	// #nosec G304 -- configPath is discovered under the caller's working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file File
	if parseErr := yaml.Unmarshal(configFile, &file); parseErr != nil {
		return nil, zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	if err := applyFile(settings, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return settings, nil
}

// findConfiguration walks from cwd towards the filesystem root and returns
// the first configuration file found.
func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true
		} else if !errors.Is(err, fs.ErrNotExist) {
			// Unreadable directories end the walk; the defaults apply.
			return "", false
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}
	return "", false
}

// applyFile merges the set fields of a parsed file onto the settings.
func applyFile(settings *domain.Settings, file *File) error {
	if file.Mirror != "" {
		settings.Mirror = strings.TrimRight(file.Mirror, "/")
	}
	if file.HTTPTimeout != "" {
		timeout, err := time.ParseDuration(file.HTTPTimeout)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "http_timeout", file.HTTPTimeout)
		}
		settings.HTTPTimeout = timeout
	}
	if file.ExtractTool != "" {
		settings.ExtractTool = file.ExtractTool
	}
	if len(file.ExtractArgs) > 0 {
		settings.ExtractArgs = file.ExtractArgs
	}
	return nil
}
