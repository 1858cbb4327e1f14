package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/elfgen/internal/adapters/cargo"
	"go.trai.ch/elfgen/internal/adapters/logger"
	"go.trai.ch/elfgen/internal/adapters/telemetry/progrock"
	"go.trai.ch/elfgen/internal/core/ports"
)

const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cargo.BuilderNodeID, progrock.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			programBuilder, err := graft.Dep[ports.ProgramBuilder](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOrchestrator(programBuilder, tracer, log), nil
		},
	})
}
