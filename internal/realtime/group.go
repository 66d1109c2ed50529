package realtime

import (
	"sync"

	"github.com/google/uuid"
)

// Subscription is one connection's membership in a board group.
// C is closed when the subscription ends, by Unsubscribe or by eviction.
type Subscription struct {
	boardID uuid.UUID
	ch      chan []byte
	evicted bool
}

// C returns the channel of encoded outbound messages.
func (s *Subscription) C() <-chan []byte { return s.ch }

// BoardID returns the board the subscription is bound to.
func (s *Subscription) BoardID() uuid.UUID { return s.boardID }

// Group is the in-process registry of per-board subscribers.
//
// Delivery holds the read lock while sending and Unsubscribe holds the write
// lock while removing and closing, so nothing is delivered to a subscription
// after Unsubscribe returns.
type Group struct {
	mu     sync.RWMutex
	boards map[uuid.UUID]map[*Subscription]struct{}
	buffer int
}

// NewGroup creates a Group whose subscriptions buffer up to buffer messages.
func NewGroup(buffer int) *Group {
	if buffer <= 0 {
		buffer = 1
	}
	return &Group{
		boards: make(map[uuid.UUID]map[*Subscription]struct{}),
		buffer: buffer,
	}
}

// Subscribe adds a subscriber to the board's group.
func (g *Group) Subscribe(boardID uuid.UUID) *Subscription {
	sub := &Subscription{boardID: boardID, ch: make(chan []byte, g.buffer)}

	g.mu.Lock()
	defer g.mu.Unlock()

	subs, ok := g.boards[boardID]
	if !ok {
		subs = make(map[*Subscription]struct{})
		g.boards[boardID] = subs
	}
	subs[sub] = struct{}{}
	connectionsGauge.Inc()

	return sub
}

// Unsubscribe removes sub and closes its channel. Safe to call repeatedly.
func (g *Group) Unsubscribe(sub *Subscription) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.removeLocked(sub)
}

func (g *Group) removeLocked(sub *Subscription) bool {
	subs, ok := g.boards[sub.boardID]
	if !ok {
		return false
	}
	if _, ok := subs[sub]; !ok {
		return false
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(g.boards, sub.boardID)
	}
	close(sub.ch)
	connectionsGauge.Dec()
	return true
}

// Deliver fans msg out to every current subscriber of the board and returns
// how many received it. A subscriber whose buffer is full is evicted instead
// of silently missing the message.
func (g *Group) Deliver(boardID uuid.UUID, msg []byte) int {
	var (
		delivered int
		slow      []*Subscription
	)

	g.mu.RLock()
	for sub := range g.boards[boardID] {
		select {
		case sub.ch <- msg:
			delivered++
		default:
			slow = append(slow, sub)
		}
	}
	g.mu.RUnlock()

	if len(slow) > 0 {
		g.mu.Lock()
		for _, sub := range slow {
			if g.removeLocked(sub) {
				sub.evicted = true
				evictionsTotal.Inc()
			}
		}
		g.mu.Unlock()
	}

	return delivered
}

// Evicted reports whether the subscription was dropped for falling behind.
func (g *Group) Evicted(sub *Subscription) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return sub.evicted
}

// Count returns the number of subscribers on a board.
func (g *Group) Count(boardID uuid.UUID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.boards[boardID])
}
