// Package events carries gesture transitions from the input managers to
// application code. The Dispatcher turns snapshot edge pulses into named
// topics on a Bus; anything interested subscribes to those topics.
package events

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Harpita-P/Kiro-InteractionKit/pkg/metrics"
)

// Payload is the data delivered with an event. Publishers and subscribers
// share the same map, so subscribers must treat it as read-only.
type Payload map[string]any

// Handler receives the payload of a published event.
type Handler func(data Payload)

// Subscription is the handle returned by Subscribe. Handlers are not
// comparable, so the handle is what identifies a registration for removal.
type Subscription struct {
	ID    uuid.UUID
	Topic string

	fn Handler
}

// Bus is a topic-keyed publish/subscribe registry. Dispatch is synchronous:
// Publish runs every handler to completion, in registration order, before
// returning. One Bus instance is shared by the dispatcher and every mapping
// rule for the life of the process.
type Bus struct {
	mu    sync.Mutex
	subs  map[string][]*Subscription
	total int
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]*Subscription)}
}

// Subscribe registers fn for topic and returns its handle. The same handler
// may be registered any number of times; each registration is invoked
// separately.
func (b *Bus) Subscribe(topic string, fn Handler) *Subscription {
	sub := &Subscription{ID: uuid.New(), Topic: topic, fn: fn}

	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], sub)
	b.total++
	metrics.UpdateBusSubscribers(b.total)
	b.mu.Unlock()

	return sub
}

// Unsubscribe removes a registration. Removing a nil handle, or one that
// was already removed, is a no-op.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.subs[sub.Topic]
	for i, s := range list {
		if s.ID == sub.ID {
			b.subs[sub.Topic] = append(list[:i], list[i+1:]...)
			b.total--
			metrics.UpdateBusSubscribers(b.total)
			return
		}
	}
}

// Publish delivers data to every handler registered for topic, in
// registration order. A nil payload is delivered as an empty one. Handlers
// are invoked from a snapshot of the subscriber list, so a handler may
// subscribe or unsubscribe during its own invocation without disturbing the
// dispatch in progress. A handler that panics aborts the remaining handlers
// of that publish and the panic reaches the publisher.
func (b *Bus) Publish(topic string, data Payload) {
	if data == nil {
		data = Payload{}
	}

	b.mu.Lock()
	snapshot := make([]*Subscription, len(b.subs[topic]))
	copy(snapshot, b.subs[topic])
	b.mu.Unlock()

	metrics.RecordEventPublished(topic)

	for _, sub := range snapshot {
		sub.fn(data)
	}
}

// SubscriberCount reports how many registrations topic currently has.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[topic])
}
