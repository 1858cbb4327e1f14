package builder_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/elfgen/internal/adapters/telemetry"
	"go.trai.ch/elfgen/internal/core/domain"
	"go.trai.ch/elfgen/internal/core/ports/mocks"
	"go.trai.ch/elfgen/internal/engine/builder"
	"go.uber.org/mock/gomock"
)

func newOrchestrator(t *testing.T) (*builder.Orchestrator, *mocks.MockProgramBuilder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	programBuilder := mocks.NewMockProgramBuilder(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return builder.NewOrchestrator(programBuilder, telemetry.NewNoop(), log), programBuilder
}

func program(target, pkg string) domain.Program {
	return domain.Program{
		PackageName:  pkg,
		TargetName:   target,
		ManifestPath: filepath.Join("/ws/programs", pkg, "Cargo.toml"),
	}
}

// depositArtifact mimics the build collaborator dropping the artifact file.
func depositArtifact(name string) func(context.Context, string, string) error {
	return func(_ context.Context, _ string, outDir string) error {
		return os.WriteFile(filepath.Join(outDir, name), []byte{0x7f, 'E', 'L', 'F'}, 0o600)
	}
}

func TestBuild_AllSucceed(t *testing.T) {
	orchestrator, programBuilder := newOrchestrator(t)
	outRoot := t.TempDir()

	programBuilder.EXPECT().
		Build(gomock.Any(), "/ws/programs/token-manager/Cargo.toml", gomock.Any()).
		DoAndReturn(depositArtifact("token_manager.so"))
	programBuilder.EXPECT().
		Build(gomock.Any(), "/ws/programs/governance/Cargo.toml", gomock.Any()).
		DoAndReturn(depositArtifact("governance.so"))

	programs := []domain.Program{
		program("governance", "governance"),
		program("token_manager", "token-manager"),
	}

	report, err := orchestrator.Build(context.Background(), programs, outRoot, domain.Overrides{})
	require.NoError(t, err)
	require.Len(t, report.Successes, 2)
	assert.Empty(t, report.Failures)

	assert.Equal(t, "governance", report.Successes[0].Program.TargetName)
	assert.Equal(t, filepath.Join(outRoot, "governance", "governance.so"), report.Successes[0].ArtifactPath)
	assert.FileExists(t, report.Successes[1].ArtifactPath)
}

func TestBuild_PartialFailureContinuesLoop(t *testing.T) {
	orchestrator, programBuilder := newOrchestrator(t)
	outRoot := t.TempDir()

	programBuilder.EXPECT().
		Build(gomock.Any(), "/ws/programs/a/Cargo.toml", gomock.Any()).
		DoAndReturn(depositArtifact("a.so"))
	programBuilder.EXPECT().
		Build(gomock.Any(), "/ws/programs/b/Cargo.toml", gomock.Any()).
		Return(errors.New("build command failed"))
	programBuilder.EXPECT().
		Build(gomock.Any(), "/ws/programs/c/Cargo.toml", gomock.Any()).
		DoAndReturn(depositArtifact("c.so"))

	programs := []domain.Program{
		program("a", "a"),
		program("b", "b"),
		program("c", "c"),
	}

	report, err := orchestrator.Build(context.Background(), programs, outRoot, domain.Overrides{})
	require.NoError(t, err)
	require.Len(t, report.Successes, 2)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "b", report.Failures[0].Program.TargetName)
	assert.Contains(t, report.Failures[0].Detail, "build command failed")
}

func TestBuild_MissingArtifactIsFailure(t *testing.T) {
	orchestrator, programBuilder := newOrchestrator(t)

	// The collaborator exits zero but deposits nothing.
	programBuilder.EXPECT().
		Build(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	report, err := orchestrator.Build(context.Background(),
		[]domain.Program{program("ghost", "ghost")}, t.TempDir(), domain.Overrides{})
	require.NoError(t, err)
	assert.Empty(t, report.Successes)
	require.Len(t, report.Failures, 1)
	assert.Contains(t, report.Failures[0].Detail, "not found after build")
}

func TestBuild_RemovesStaleArtifact(t *testing.T) {
	orchestrator, programBuilder := newOrchestrator(t)
	outRoot := t.TempDir()

	stale := filepath.Join(outRoot, "a", "a.so")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o750))
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0o600))

	programBuilder.EXPECT().
		Build(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("boom"))

	report, err := orchestrator.Build(context.Background(),
		[]domain.Program{program("a", "a")}, outRoot, domain.Overrides{})
	require.NoError(t, err)
	require.Len(t, report.Failures, 1)
	assert.NoFileExists(t, stale)
}

func TestBuild_TargetOverrideRenamesArtifact(t *testing.T) {
	orchestrator, programBuilder := newOrchestrator(t)
	outRoot := t.TempDir()

	p := program("token_manager", "token-manager")
	overrides := domain.Overrides{
		Targets: map[string]string{p.Dir(): "legacy_token"},
	}

	programBuilder.EXPECT().
		Build(gomock.Any(), p.ManifestPath, gomock.Any()).
		DoAndReturn(depositArtifact("legacy_token.so"))

	report, err := orchestrator.Build(context.Background(), []domain.Program{p}, outRoot, overrides)
	require.NoError(t, err)
	require.Len(t, report.Successes, 1)
	assert.Equal(t, filepath.Join(outRoot, "token-manager", "legacy_token.so"), report.Successes[0].ArtifactPath)
}
