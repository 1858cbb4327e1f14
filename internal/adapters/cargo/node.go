package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/elfgen/internal/adapters/logger"
	"go.trai.ch/elfgen/internal/core/ports"
)

const (
	MetadataNodeID  graft.ID = "adapter.cargo_metadata"
	BuilderNodeID   graft.ID = "adapter.cargo_builder"
	FormatterNodeID graft.ID = "adapter.cargo_formatter"
)

func init() {
	graft.Register(graft.Node[ports.MetadataReader]{
		ID:        MetadataNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.MetadataReader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewReader(log), nil
		},
	})

	graft.Register(graft.Node[ports.ProgramBuilder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProgramBuilder, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(log), nil
		},
	})

	graft.Register(graft.Node[ports.Formatter]{
		ID:        FormatterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Formatter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFormatter(log), nil
		},
	})
}
