package cargo_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/elfgen/internal/adapters/cargo"
	"go.trai.ch/elfgen/internal/core/ports"
	"go.trai.ch/elfgen/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type captureSpan struct {
	bytes.Buffer
	endErr error
	ended  bool
}

func (s *captureSpan) End(err error) {
	s.ended = true
	s.endErr = err
}

func TestBuilder_Build_Success(t *testing.T) {
	builder := cargo.NewBuilderWithCommand(quietLogger(t), "true")

	err := builder.Build(context.Background(), "/ws/Cargo.toml", t.TempDir())
	require.NoError(t, err)
}

func TestBuilder_Build_NonZeroExit(t *testing.T) {
	builder := cargo.NewBuilderWithCommand(quietLogger(t), "false")

	err := builder.Build(context.Background(), "/ws/Cargo.toml", t.TempDir())
	require.Error(t, err)
}

func TestBuilder_Build_StreamsOutputToSpan(t *testing.T) {
	builder := cargo.NewBuilderWithCommand(quietLogger(t), "echo")

	span := &captureSpan{}
	ctx := ports.ContextWithSpan(context.Background(), span)

	err := builder.Build(ctx, "/ws/Cargo.toml", "/ws/out")
	require.NoError(t, err)
	assert.Contains(t, span.String(), "--manifest-path /ws/Cargo.toml")
}

func TestFormatter_Format(t *testing.T) {
	ok := cargo.NewFormatterWithCommand(quietLogger(t), "true")
	require.NoError(t, ok.Format(context.Background(), "/tmp/lib.rs"))

	failing := cargo.NewFormatterWithCommand(quietLogger(t), "false")
	require.Error(t, failing.Format(context.Background(), "/tmp/lib.rs"))
}

func TestFormatter_Format_LogsPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("formatting /tmp/lib.rs")

	formatter := cargo.NewFormatterWithCommand(log, "true")
	require.NoError(t, formatter.Format(context.Background(), "/tmp/lib.rs"))
}
