package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/elfgen/internal/adapters/cargo"
	"go.trai.ch/elfgen/internal/adapters/logger"
	"go.trai.ch/elfgen/internal/core/ports"
)

const NodeID graft.ID = "adapter.source_writer"

func init() {
	graft.Register(graft.Node[ports.SourceWriter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cargo.FormatterNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SourceWriter, error) {
			formatter, err := graft.Dep[ports.Formatter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(formatter, log), nil
		},
	})
}
