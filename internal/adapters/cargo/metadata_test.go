package cargo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/elfgen/internal/adapters/cargo"
	"go.trai.ch/elfgen/internal/core/domain"
	"go.trai.ch/elfgen/internal/core/ports"
	"go.trai.ch/elfgen/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) ports.Logger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func TestParseCatalog(t *testing.T) {
	data := []byte(`{
		"packages": [
			{
				"name": "token-manager",
				"manifest_path": "/ws/programs/token-manager/Cargo.toml",
				"targets": [
					{"name": "token_manager", "kind": ["cdylib", "lib"], "crate_types": ["cdylib", "lib"]},
					{"name": "cli", "kind": ["bin"], "crate_types": ["bin"]}
				]
			},
			{
				"name": "helpers",
				"manifest_path": "/ws/helpers/Cargo.toml",
				"targets": [
					{"name": "helpers", "kind": ["lib"], "crate_types": ["lib"]}
				]
			}
		],
		"workspace_root": "/ws"
	}`)

	catalog, err := cargo.ParseCatalog(data)
	require.NoError(t, err)

	assert.Equal(t, "/ws", catalog.WorkspaceRoot)
	require.Len(t, catalog.Entries, 3)

	assert.Equal(t, domain.CatalogEntry{
		PackageName:  "token-manager",
		TargetName:   "token_manager",
		ManifestPath: "/ws/programs/token-manager/Cargo.toml",
		IsArtifact:   true,
	}, catalog.Entries[0])
	assert.False(t, catalog.Entries[1].IsArtifact)
	assert.False(t, catalog.Entries[2].IsArtifact)
}

func TestParseCatalog_MalformedJSON(t *testing.T) {
	_, err := cargo.ParseCatalog([]byte(`{"packages": [`))
	require.Error(t, err)
}

func TestReader_Read_CommandFailure(t *testing.T) {
	reader := cargo.NewReaderWithCommand(quietLogger(t), "false")

	_, err := reader.Read(context.Background(), "/nope/Cargo.toml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrWorkspaceMetadata))
}

func TestReader_Read_LogsManifestPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("reading workspace metadata for /ws/Cargo.toml")

	reader := cargo.NewReaderWithCommand(log, "false")
	_, err := reader.Read(context.Background(), "/ws/Cargo.toml")
	require.Error(t, err)
}

func TestReader_Read_CommandMissing(t *testing.T) {
	reader := cargo.NewReaderWithCommand(quietLogger(t), "definitely-not-a-command")

	_, err := reader.Read(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrWorkspaceMetadata))
}
