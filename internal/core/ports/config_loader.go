// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/elfgen/internal/core/domain"

// ConfigLoader defines the interface for loading the discovery configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the discovery configuration for the project rooted at the
	// given directory. A project without a metadata section gets MagicConfig.
	Load(root string) (domain.Config, error)
}
