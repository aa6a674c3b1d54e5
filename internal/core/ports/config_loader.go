package ports

import "go.whl.build/whl/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given path, either a working
	// directory or a configuration file, and returns the resolved project.
	// A missing configuration file yields a project with defaults.
	Load(path string) (*domain.Project, error)
}
