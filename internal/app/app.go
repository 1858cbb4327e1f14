// Package app implements the application layer for elfgen.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/elfgen/internal/codegen"
	"go.trai.ch/elfgen/internal/core/domain"
	"go.trai.ch/elfgen/internal/core/ports"
	"go.trai.ch/elfgen/internal/engine/builder"
	"go.trai.ch/elfgen/internal/engine/discovery"
	"go.trai.ch/zerr"
)

const (
	// GeneratedFile is the path of the bindings file, relative to the
	// project root.
	GeneratedFile = "src/lib.rs"

	// outSubdir is where built artifacts are deposited, relative to the
	// project root.
	outSubdir = "target/elfgen"
)

// App drives the discovery-filter-build-codegen pipeline.
type App struct {
	configLoader ports.ConfigLoader
	discovery    *discovery.Engine
	orchestrator *builder.Orchestrator
	writer       ports.SourceWriter
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	disc *discovery.Engine,
	orchestrator *builder.Orchestrator,
	writer ports.SourceWriter,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		discovery:    disc,
		orchestrator: orchestrator,
		writer:       writer,
		logger:       log,
	}
}

// Generate runs the full pipeline for the project rooted at root: load the
// configuration, discover and classify programs across all workspaces, build
// the deduplicated candidates, and atomically replace the generated bindings
// file. A partial build report with failures is a valid outcome; the caller
// decides whether failures fail the outer build.
func (a *App) Generate(ctx context.Context, root string) (domain.GenerationResult, error) {
	cfg, sets, err := a.discover(ctx, root)
	if err != nil {
		return domain.GenerationResult{}, err
	}

	programs := dedupeIncluded(sets)
	a.logger.Info(fmt.Sprintf("building %d program(s)", len(programs)))

	report, err := a.orchestrator.Build(ctx, programs, filepath.Join(root, outSubdir), cfg.Overrides())
	if err != nil {
		return domain.GenerationResult{}, zerr.Wrap(err, "build orchestration failed")
	}

	source, err := codegen.Render(report.Successes, cfg.Overrides())
	if err != nil {
		return domain.GenerationResult{}, zerr.Wrap(err, "failed to render bindings")
	}

	if err := a.writer.Write(ctx, root, GeneratedFile, source); err != nil {
		return domain.GenerationResult{}, zerr.Wrap(err, "failed to write bindings")
	}

	return domain.GenerationResult{
		Mode:       cfg.Mode(),
		Workspaces: sets,
		Report:     report,
	}, nil
}

// Discover runs the pipeline up to classification, without building anything
// or touching the generated file.
func (a *App) Discover(ctx context.Context, root string) (domain.GenerationResult, error) {
	cfg, sets, err := a.discover(ctx, root)
	if err != nil {
		return domain.GenerationResult{}, err
	}
	return domain.GenerationResult{
		Mode:       cfg.Mode(),
		Workspaces: sets,
	}, nil
}

func (a *App) discover(ctx context.Context, root string) (domain.Config, []domain.DiscoveredSet, error) {
	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}
	a.logger.Info(fmt.Sprintf("discovering programs in %s mode", cfg.Mode()))

	sets, err := a.discovery.Discover(ctx, root, cfg)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to discover programs")
	}
	return cfg, sets, nil
}

// dedupeIncluded flattens per-workspace included lists in workspace order and
// collapses duplicates to one canonical candidate list.
func dedupeIncluded(sets []domain.DiscoveredSet) []domain.Program {
	var all []domain.Program
	for _, set := range sets {
		all = append(all, set.Included...)
	}
	return domain.Dedupe(all)
}

// BuildScriptDirectives renders the cargo build-script lines for a completed
// run: watch paths for every included program, and the artifact path variable
// for every success.
func BuildScriptDirectives(result domain.GenerationResult) []string {
	var out []string
	for _, p := range domain.Dedupe(result.Programs()) {
		out = append(out, "cargo:rerun-if-changed="+p.ManifestPath)
		// Watching a path that does not exist makes cargo rerun the build
		// script on every build.
		srcDir := filepath.Join(p.Dir(), "src")
		if info, err := os.Stat(srcDir); err == nil && info.IsDir() {
			out = append(out, "cargo:rerun-if-changed="+srcDir)
		}
	}
	for _, s := range result.Report.Successes {
		out = append(out, fmt.Sprintf("cargo:rustc-env=%s=%s", s.Program.EnvVarName(), s.ArtifactPath))
	}
	return out
}
