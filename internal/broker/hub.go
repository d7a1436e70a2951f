// Package broker is the in-process fan-out hub for domain events.
// Delivery is best-effort to currently connected subscribers only;
// durable state always lives in Postgres and is re-fetched on
// reconnect.
package broker

import (
	"log/slog"
	"sync"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
)

const DefaultQueueSize = 64

type Hub struct {
	logger    *slog.Logger
	queueSize int

	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

func NewHub(logger *slog.Logger, queueSize int) *Hub {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Hub{
		logger:    logger,
		queueSize: queueSize,
		subs:      make(map[*Subscription]struct{}),
	}
}

// Subscribe registers a session for the given topics; no topics means
// all of them. The returned subscription's channel closes when the
// session is unsubscribed.
func (h *Hub) Subscribe(topics ...domain.Topic) *Subscription {
	if len(topics) == 0 {
		topics = domain.AllTopics()
	}

	s := &Subscription{
		hub:    h,
		ch:     make(chan domain.Event, h.queueSize),
		topics: make(map[domain.Topic]struct{}, len(topics)),
	}
	for _, t := range topics {
		s.topics[t] = struct{}{}
	}

	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	return s
}

// Publish delivers the payload to every current subscriber of the
// topic. It never blocks: a subscriber whose queue is full loses its
// oldest pending event instead of stalling the publisher.
func (h *Hub) Publish(topic domain.Topic, payload any) {
	ev := domain.Event{Topic: topic, Payload: payload}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.subs {
		if _, ok := s.topics[topic]; !ok {
			continue
		}
		if dropped := s.send(ev); dropped {
			h.logger.Warn("slow subscriber, dropped oldest event",
				slog.String("topic", string(topic)))
		}
	}
}

// SubscriberCount is used by health reporting and tests.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

type Subscription struct {
	hub    *Hub
	topics map[domain.Topic]struct{}

	mu     sync.Mutex
	ch     chan domain.Event
	closed bool
}

// C is the session-scoped event stream. It ends (is closed) when the
// subscription is closed; a closed channel, not an error, models
// disconnection.
func (s *Subscription) C() <-chan domain.Event {
	return s.ch
}

// Close detaches the subscription from the hub and closes the stream.
// Safe to call more than once.
func (s *Subscription) Close() {
	s.hub.mu.Lock()
	delete(s.hub.subs, s)
	s.hub.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// send enqueues one event, evicting the oldest pending one on
// overflow. The per-subscription mutex serializes senders so events
// published to one topic stay in publish order.
func (s *Subscription) send(ev domain.Event) (dropped bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- ev:
		return false
	default:
	}

	select {
	case <-s.ch:
		dropped = true
	default:
	}

	select {
	case s.ch <- ev:
	default:
	}
	return dropped
}
