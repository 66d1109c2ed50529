package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const channelPrefix = "boardly:board:"

// ChannelName returns the pub/sub channel for a board.
func ChannelName(boardID uuid.UUID) string {
	return channelPrefix + boardID.String()
}

type deliverer interface {
	Deliver(boardID uuid.UUID, msg []byte) int
}

// Broker fans board messages out through Redis so that every instance
// delivers them to its own local subscribers.
type Broker struct {
	client *goredis.Client
	local  deliverer
	log    *slog.Logger
	ready  chan struct{}
}

// NewBroker creates a Broker. Run must be started for deliveries to happen.
func NewBroker(log *slog.Logger, client *goredis.Client, local deliverer) *Broker {
	return &Broker{
		client: client,
		local:  local,
		log:    log.With("component", "redis_broker"),
		ready:  make(chan struct{}),
	}
}

func (b *Broker) Publish(ctx context.Context, boardID uuid.UUID, msg []byte) error {
	if err := b.client.Publish(ctx, ChannelName(boardID), msg).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Ready is closed once the pattern subscription is confirmed.
func (b *Broker) Ready() <-chan struct{} { return b.ready }

// Run listens on every board channel until ctx is cancelled.
func (b *Broker) Run(ctx context.Context) error {
	pubsub := b.client.PSubscribe(ctx, channelPrefix+"*")
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("redis psubscribe: %w", err)
	}
	close(b.ready)
	b.log.Info("redis broker subscribed")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			boardID, err := uuid.Parse(strings.TrimPrefix(m.Channel, channelPrefix))
			if err != nil {
				b.log.Warn("redis broker: unexpected channel", slog.String("channel", m.Channel))
				continue
			}
			b.local.Deliver(boardID, []byte(m.Payload))
		}
	}
}
