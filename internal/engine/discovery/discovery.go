// Package discovery resolves workspace plans from the configuration and
// classifies each workspace's catalog into included and excluded programs.
package discovery

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"go.trai.ch/elfgen/internal/core/domain"
	"go.trai.ch/elfgen/internal/core/ports"
)

// Engine walks configured workspaces and applies the active mode's policy.
type Engine struct {
	metadata ports.MetadataReader
	log      ports.Logger
}

// NewEngine creates a discovery engine.
func NewEngine(metadata ports.MetadataReader, log ports.Logger) *Engine {
	return &Engine{metadata: metadata, log: log}
}

// plan pairs a workspace manifest with the policy resolved for it.
type plan struct {
	manifestPath string
	policy       domain.Policy
}

// Discover loads every workspace named by cfg and classifies its artifact
// targets. Magic mode discovers the workspace rooted at root; the other modes
// carry their own manifest paths. A workspace that fails to load fails the
// whole call; there are no partial results.
func (e *Engine) Discover(ctx context.Context, root string, cfg domain.Config) ([]domain.DiscoveredSet, error) {
	plans := resolvePlans(root, cfg)

	sets := make([]domain.DiscoveredSet, 0, len(plans))
	for _, p := range plans {
		e.warnDeadPatterns(p.policy)

		catalog, err := e.metadata.Read(ctx, p.manifestPath)
		if err != nil {
			return nil, err
		}
		sets = append(sets, classify(catalog, p))
	}
	return sets, nil
}

// resolvePlans maps the configuration onto per-workspace plans: the workspace
// rooted at root under magic, one plan per rule otherwise. Never the ambient
// working directory.
func resolvePlans(root string, cfg domain.Config) []plan {
	switch c := cfg.(type) {
	case domain.PermissiveConfig:
		plans := make([]plan, 0, len(c.Workspaces))
		for _, w := range c.Workspaces {
			plans = append(plans, plan{
				manifestPath: w.ManifestPath,
				policy:       domain.DenyPolicy(c.GlobalDeny, w.Deny),
			})
		}
		return plans
	case domain.ExclusiveConfig:
		plans := make([]plan, 0, len(c.Workspaces))
		for _, w := range c.Workspaces {
			plans = append(plans, plan{
				manifestPath: w.ManifestPath,
				policy:       domain.OnlyPolicy(w.Only),
			})
		}
		return plans
	default:
		return []plan{{
			manifestPath: filepath.Join(root, "Cargo.toml"),
			policy:       domain.AcceptAll(),
		}}
	}
}

// classify splits the catalog's artifact targets into included and excluded
// under the plan's policy. Both lists come out sorted by target name.
func classify(catalog domain.Catalog, p plan) domain.DiscoveredSet {
	set := domain.DiscoveredSet{Workspace: p.manifestPath}
	for _, entry := range catalog.Entries {
		if !entry.IsArtifact {
			continue
		}
		program := domain.Program{
			PackageName:  entry.PackageName,
			TargetName:   entry.TargetName,
			ManifestPath: entry.ManifestPath,
		}
		if p.policy.Includes(program) {
			set.Included = append(set.Included, program)
		} else {
			set.Excluded = append(set.Excluded, program)
		}
	}

	sortByTarget(set.Included)
	sortByTarget(set.Excluded)
	return set
}

// warnDeadPatterns reports configured patterns that can never match because
// they carry no recognized namespace prefix.
func (e *Engine) warnDeadPatterns(pol domain.Policy) {
	warn := func(pattern string) {
		if _, _, ok := domain.SplitPattern(pattern); !ok {
			e.log.Warn(fmt.Sprintf("pattern %q has no target:/package:/path: prefix and will never match", pattern))
		}
	}
	for _, pattern := range pol.Deny {
		warn(pattern)
	}
	for _, pattern := range pol.Only {
		warn(pattern)
	}
}

func sortByTarget(programs []domain.Program) {
	sort.Slice(programs, func(i, j int) bool {
		return programs[i].TargetName < programs[j].TargetName
	})
}
