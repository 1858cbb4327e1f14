// Package config loads the elfgen discovery configuration from the root
// Cargo.toml metadata section, or from a standalone elfgen.yaml override.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/elfgen/internal/core/domain"
	"go.trai.ch/elfgen/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// OverrideFilename is an optional standalone config file. When it exists
// next to the root manifest it wins over the manifest metadata section.
const OverrideFilename = "elfgen.yaml"

// ManifestLoader implements ports.ConfigLoader against the filesystem.
type ManifestLoader struct {
	log ports.Logger
}

// NewManifestLoader creates a loader that reports fallbacks through log.
func NewManifestLoader(log ports.Logger) *ManifestLoader {
	return &ManifestLoader{log: log}
}

// Load reads the configuration for the project rooted at root. A missing
// metadata section means magic mode.
func (l *ManifestLoader) Load(root string) (domain.Config, error) {
	dto, err := l.readSettings(root)
	if err != nil {
		return nil, err
	}
	if dto == nil {
		l.log.Info("no elfgen configuration found, defaulting to magic mode")
		return domain.MagicConfig{}, nil
	}
	return resolve(dto, root)
}

// readSettings returns the raw settings from the override file when present,
// otherwise from the manifest metadata section. A nil result with nil error
// means no configuration exists at all.
func (l *ManifestLoader) readSettings(root string) (*settingsDTO, error) {
	overridePath := filepath.Join(root, OverrideFilename)
	if data, err := os.ReadFile(overridePath); err == nil { //nolint:gosec // path is provided by user
		l.log.Info(fmt.Sprintf("using configuration override %s", overridePath))
		var dto settingsDTO
		if err := yaml.Unmarshal(data, &dto); err != nil {
			return nil, zerr.With(errors.Join(domain.ErrManifestSyntax, err), "path", overridePath)
		}
		return &dto, nil
	}

	manifestPath := filepath.Join(root, "Cargo.toml")
	data, err := os.ReadFile(manifestPath) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrManifestUnreadable, err), "path", manifestPath)
	}

	var manifest manifestFile
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrManifestSyntax, err), "path", manifestPath)
	}
	return manifest.Package.Metadata.Elfgen, nil
}

func resolve(dto *settingsDTO, root string) (domain.Config, error) {
	if dto.Mode == nil {
		return nil, domain.ErrMissingModeField
	}

	switch domain.Mode(*dto.Mode) {
	case domain.ModeMagic:
		return domain.MagicConfig{}, nil

	case domain.ModePermissive:
		if len(dto.Workspaces) == 0 {
			return nil, zerr.With(domain.ErrMissingModeField, "field", "workspaces")
		}
		workspaces := make([]domain.PermissiveWorkspace, 0, len(dto.Workspaces))
		for _, w := range dto.Workspaces {
			if w.ManifestPath == nil {
				return nil, zerr.With(domain.ErrMissingModeField, "field", "manifest_path")
			}
			workspaces = append(workspaces, domain.PermissiveWorkspace{
				ManifestPath: filepath.Join(root, *w.ManifestPath),
				Deny:         w.denyPatterns(),
			})
		}
		return domain.PermissiveConfig{
			Workspaces: workspaces,
			GlobalDeny: dto.GlobalDeny,
			Names:      resolveOverrides(dto, root),
		}, nil

	case domain.ModeExclusive:
		if len(dto.Workspaces) == 0 {
			return nil, zerr.With(domain.ErrMissingModeField, "field", "workspaces")
		}
		workspaces := make([]domain.ExclusiveWorkspace, 0, len(dto.Workspaces))
		for _, w := range dto.Workspaces {
			if w.ManifestPath == nil {
				return nil, zerr.With(domain.ErrMissingModeField, "field", "manifest_path")
			}
			if w.Only == nil {
				return nil, zerr.With(domain.ErrMissingModeField, "field", "only")
			}
			workspaces = append(workspaces, domain.ExclusiveWorkspace{
				ManifestPath: filepath.Join(root, *w.ManifestPath),
				Only:         *w.Only,
			})
		}
		return domain.ExclusiveConfig{
			Workspaces: workspaces,
			Names:      resolveOverrides(dto, root),
		}, nil

	default:
		return nil, zerr.With(domain.ErrUnknownMode, "mode", *dto.Mode)
	}
}

// resolveOverrides rebases override keys, given relative to the config file,
// onto absolute program directories.
func resolveOverrides(dto *settingsDTO, root string) domain.Overrides {
	return domain.Overrides{
		Constants: rebaseKeys(dto.Constants, root),
		Targets:   rebaseKeys(dto.Targets, root),
	}
}

func rebaseKeys(m map[string]string, root string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	resolved := make(map[string]string, len(m))
	for dir, name := range m {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(root, dir)
		}
		resolved[filepath.Clean(dir)] = name
	}
	return resolved
}
