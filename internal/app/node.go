package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/elfgen/internal/adapters/config"
	"go.trai.ch/elfgen/internal/adapters/fs"
	"go.trai.ch/elfgen/internal/adapters/logger"
	"go.trai.ch/elfgen/internal/adapters/telemetry/progrock"
	"go.trai.ch/elfgen/internal/core/ports"
	"go.trai.ch/elfgen/internal/engine/builder"
	"go.trai.ch/elfgen/internal/engine/discovery"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			discovery.NodeID,
			builder.NodeID,
			fs.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			disc, err := graft.Dep[*discovery.Engine](ctx)
			if err != nil {
				return nil, err
			}
			orchestrator, err := graft.Dep[*builder.Orchestrator](ctx)
			if err != nil {
				return nil, err
			}
			writer, err := graft.Dep[ports.SourceWriter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, disc, orchestrator, writer, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    application,
				Logger: log,
				Tracer: tracer,
			}, nil
		},
	})
}
