// Package events is a small in-process pub/sub bus used to fan
// selection changes and data refreshes out to dashboard panels.
package events

import (
	"context"
	"sync"
)

// Well-known topics
const (
	TopicSelection = "graph.selection"
	TopicData      = "graph.data"
)

// Bus routes published messages to topic subscribers
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string]map[*Subscription]struct{}
	closed      bool
}

// Subscription is one subscriber's handle on a topic
type Subscription struct {
	topic  string
	ch     chan any
	bus    *Bus
	cancel context.CancelFunc
	once   sync.Once
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{subscribers: make(map[string]map[*Subscription]struct{})}
}

// Subscribe registers for a topic. The subscription is dropped when the
// context is canceled or Cancel is called.
func (b *Bus) Subscribe(ctx context.Context, topic string) *Subscription {
	subCtx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		topic:  topic,
		ch:     make(chan any, 16),
		bus:    b,
		cancel: cancel,
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		sub.close()
		return sub
	}
	if b.subscribers[topic] == nil {
		b.subscribers[topic] = make(map[*Subscription]struct{})
	}
	b.subscribers[topic][sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-subCtx.Done()
		sub.Cancel()
	}()
	return sub
}

// Publish delivers a message to every subscriber of the topic. Slow
// subscribers whose buffer is full miss the message rather than block
// the frame loop.
func (b *Bus) Publish(topic string, message any) {
	b.mu.RLock()
	subs := make([]*Subscription, 0, len(b.subscribers[topic]))
	for sub := range b.subscribers[topic] {
		subs = append(subs, sub)
	}
	b.mu.RUnlock()

	for _, sub := range subs {
		select {
		case sub.ch <- message:
		default:
		}
	}
}

// Close drops all subscriptions and closes their channels
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	var all []*Subscription
	for _, subs := range b.subscribers {
		for sub := range subs {
			all = append(all, sub)
		}
	}
	b.subscribers = make(map[string]map[*Subscription]struct{})
	b.mu.Unlock()

	for _, sub := range all {
		sub.close()
	}
}

// C is the subscriber's receive channel. It closes when the
// subscription ends.
func (s *Subscription) C() <-chan any {
	return s.ch
}

// Cancel removes the subscription from the bus and closes its channel
func (s *Subscription) Cancel() {
	s.bus.mu.Lock()
	if subs, ok := s.bus.subscribers[s.topic]; ok {
		delete(subs, s)
		if len(subs) == 0 {
			delete(s.bus.subscribers, s.topic)
		}
	}
	s.bus.mu.Unlock()
	s.close()
}

func (s *Subscription) close() {
	s.once.Do(func() {
		s.cancel()
		close(s.ch)
	})
}
