// Package hub fans out "collection changed" notifications to the push
// streams watching a restaurant's documents.
//
// Notifications carry no payload. Each subscriber has a one-slot channel, so
// a burst of writes collapses into a single wake-up and the stream re-reads
// the latest state.
package hub

import (
	"context"
	"sync"

	"github.com/FBurak/Restaurant-Web/internal/logging"
	"github.com/google/uuid"
)

// Collections a topic can name.
const (
	CollectionProfile   = "profile"
	CollectionGallery   = "gallery"
	CollectionPasswords = "passwords"
)

// Topic returns the key a tenant's collection is published under.
func Topic(tenant, collection string) string {
	return tenant + "/" + collection
}

type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[string]chan struct{} // topic -> subID -> ch
	done        chan struct{}
	closeOnce   sync.Once
	logger      logging.Logger
}

func New(logger logging.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string]map[string]chan struct{}),
		done:        make(chan struct{}),
		logger:      logger.With("module", "hub"),
	}
}

// Subscribe registers interest in topic. The returned channel receives a
// value after every Publish to the topic that the subscriber has not yet
// consumed. The subscription is removed when ctx ends.
func (h *Hub) Subscribe(ctx context.Context, topic string) (<-chan struct{}, string) {
	subID := uuid.NewString()
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	if _, ok := h.subscribers[topic]; !ok {
		h.subscribers[topic] = make(map[string]chan struct{})
	}
	h.subscribers[topic][subID] = ch
	h.mu.Unlock()

	h.logger.Debug(ctx, "subscriber added", "topic", topic, "sub_id", subID)

	go func() {
		select {
		case <-ctx.Done():
		case <-h.done:
		}
		h.Unsubscribe(topic, subID)
	}()

	return ch, subID
}

// Publish wakes every subscriber of topic without blocking.
func (h *Hub) Publish(topic string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers[topic] {
		select {
		case ch <- struct{}{}:
		default:
			// a wake-up is already pending
		}
	}
}

// Unsubscribe removes a subscription. Channels are never closed, so a
// concurrent Publish cannot panic.
func (h *Hub) Unsubscribe(topic, subID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subscribers[topic]
	if !ok {
		return
	}
	delete(subs, subID)
	if len(subs) == 0 {
		delete(h.subscribers, topic)
	}
}

// Done is closed by Close. Streams use it to end on shutdown.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Close ends all subscriptions.
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// SubscriberCount reports how many subscribers watch topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[topic])
}
