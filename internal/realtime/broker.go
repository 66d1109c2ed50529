package realtime

import (
	"context"

	"github.com/google/uuid"
)

// Broker publishes an encoded outbound message to every subscriber of a
// board, wherever the subscriber's connection lives.
type Broker interface {
	Publish(ctx context.Context, boardID uuid.UUID, msg []byte) error
}

// MemoryBroker delivers straight to the local Group. It is enough for a
// single instance.
type MemoryBroker struct {
	group *Group
}

// NewMemoryBroker creates a MemoryBroker.
func NewMemoryBroker(group *Group) *MemoryBroker {
	return &MemoryBroker{group: group}
}

func (b *MemoryBroker) Publish(_ context.Context, boardID uuid.UUID, msg []byte) error {
	b.group.Deliver(boardID, msg)
	return nil
}
