// Package notify provides a small in-process publish/subscribe bus used to
// announce error construction to interested observers (alerting hooks, audit
// sinks, test probes).
//
// A process-wide default bus is available through the package-level
// [Subscribe] and [Publish] functions. Callers that want isolation (tests,
// per-component wiring) construct their own [Bus] with [NewBus].
//
// # Thread Safety
//
// The subscriber list is guarded by a [sync.RWMutex]: subscriptions and
// unsubscriptions may race freely with publishes from other goroutines.
// Publish snapshots the subscriber list at call time, so handlers registered
// during a publish do not receive that event.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TopicCreate is the topic on which newly constructed error instances are
// published.
const TopicCreate = "create"

// Event is the envelope delivered to subscribed handlers.
type Event struct {
	// ID uniquely identifies this event (a random UUID).
	ID string

	// Topic is the topic the event was published on.
	Topic string

	// Time is the UTC timestamp at which the event was published.
	Time time.Time

	// Payload is the published value. For TopicCreate events this is the
	// constructed error instance.
	Payload any
}

// Handler consumes a published event. Handlers run synchronously on the
// publishing goroutine, in subscription order. A panicking handler is
// recovered and logged without affecting the publish or later handlers.
type Handler func(Event)

type subscription struct {
	id uint64
	fn Handler
}

// Bus is an in-process publish/subscribe hub. The zero value is not usable;
// construct with [NewBus].
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string][]subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[string][]subscription),
	}
}

// Subscribe registers a handler for the given topic and returns a function
// that removes the subscription. The returned function is idempotent and
// safe for concurrent use.
func (b *Bus) Subscribe(topic string, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, fn: h})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.subs[topic]
		for i, s := range subs {
			if s.id == id {
				b.subs[topic] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers payload to every handler subscribed to topic, wrapped in
// an [Event] envelope, and returns the envelope. Handlers run synchronously
// in subscription order; each is called in a deferred-recover wrapper so a
// panicking handler cannot crash the publisher or starve later handlers.
func (b *Bus) Publish(topic string, payload any) Event {
	ev := Event{
		ID:      uuid.NewString(),
		Topic:   topic,
		Time:    time.Now().UTC(),
		Payload: payload,
	}

	b.mu.RLock()
	subs := make([]subscription, len(b.subs[topic]))
	copy(subs, b.subs[topic])
	b.mu.RUnlock()

	for _, s := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("notify: handler panicked",
						"panic", r,
						"topic", topic,
						"event_id", ev.ID,
					)
				}
			}()
			s.fn(ev)
		}()
	}

	return ev
}

// defaultBus is the process-wide bus used by the package-level functions.
var defaultBus = NewBus()

// Default returns the process-wide bus.
func Default() *Bus {
	return defaultBus
}

// Subscribe registers a handler on the process-wide bus.
// See [Bus.Subscribe].
func Subscribe(topic string, h Handler) (unsubscribe func()) {
	return defaultBus.Subscribe(topic, h)
}

// Publish publishes on the process-wide bus. See [Bus.Publish].
func Publish(topic string, payload any) Event {
	return defaultBus.Publish(topic, payload)
}
