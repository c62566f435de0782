package event

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// wildcardTopic is the topic used by SubscribeAll.
const wildcardTopic = "*"

// Handler is a function that handles an event.
type Handler func(Event)

// PanicHandler receives a recovered handler panic along with its stack.
type PanicHandler func(topic string, recovered any, stack []byte)

type subscription struct {
	id      string
	topic   string
	handler Handler
}

// Bus is a synchronous pub-sub event bus. Handlers run on the publisher's
// goroutine in registration order.
type Bus struct {
	mu            sync.RWMutex
	subscriptions map[string][]subscription // topic -> subscriptions
	nextID        atomic.Uint64
	onPanic       PanicHandler
}

// NewBus creates a new event bus.
func NewBus() *Bus {
	return &Bus{
		subscriptions: make(map[string][]subscription),
	}
}

// OnPanic installs a hook that is called when a handler panics. Without a
// hook, panics are recovered and dropped.
func (b *Bus) OnPanic(fn PanicHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onPanic = fn
}

// Subscribe registers a handler for a specific topic and returns a
// subscription ID that can be passed to Unsubscribe.
func (b *Bus) Subscribe(topic string, handler Handler) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := fmt.Sprintf("sub-%d", b.nextID.Add(1))
	b.subscriptions[topic] = append(b.subscriptions[topic], subscription{
		id:      id,
		topic:   topic,
		handler: handler,
	})
	return id
}

// SubscribeAll registers a handler for every topic.
func (b *Bus) SubscribeAll(handler Handler) string {
	return b.Subscribe(wildcardTopic, handler)
}

// Unsubscribe removes a subscription by ID.
// Returns true if the subscription was found and removed.
func (b *Bus) Unsubscribe(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for topic, subs := range b.subscriptions {
		for i, sub := range subs {
			if sub.id == id {
				b.subscriptions[topic] = append(subs[:i], subs[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Publish dispatches an event to all registered handlers. Topic handlers
// run first, then wildcard handlers. A panicking handler does not stop
// delivery to the remaining handlers.
func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}

	b.mu.RLock()
	topic := e.Topic()
	specific := append([]subscription(nil), b.subscriptions[topic]...)
	wildcard := append([]subscription(nil), b.subscriptions[wildcardTopic]...)
	onPanic := b.onPanic
	b.mu.RUnlock()

	for _, sub := range specific {
		safeCall(sub.handler, e, onPanic)
	}
	for _, sub := range wildcard {
		safeCall(sub.handler, e, onPanic)
	}
}

func safeCall(handler Handler, e Event, onPanic PanicHandler) {
	defer func() {
		if r := recover(); r != nil && onPanic != nil {
			onPanic(e.Topic(), r, debug.Stack())
		}
	}()
	handler(e)
}

// SubscriptionCount returns the total number of active subscriptions.
func (b *Bus) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0
	for _, subs := range b.subscriptions {
		count += len(subs)
	}
	return count
}
