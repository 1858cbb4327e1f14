package discovery

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/elfgen/internal/adapters/cargo"
	"go.trai.ch/elfgen/internal/adapters/logger"
	"go.trai.ch/elfgen/internal/core/ports"
)

const NodeID graft.ID = "engine.discovery"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cargo.MetadataNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			metadata, err := graft.Dep[ports.MetadataReader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(metadata, log), nil
		},
	})
}
