// Package events is the in-process pub/sub used to tell open views that the cart, the wishlist
// or an option draft changed. Payloads are hints: receivers re-fetch from the backend.
package events

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gradwear/storefront/internal/models"
)

type Topic string

const (
	TopicCart     Topic = "cart.changed"
	TopicWishlist Topic = "wishlist.changed"
	TopicOptions  Topic = "options.changed"
)

type Payload struct {
	ProductID   int64                  `json:"productId,omitempty"`
	ProductName string                 `json:"productName,omitempty"`
	Selection   models.OptionSelection `json:"selection,omitempty"`
}

type Event struct {
	ID     string `json:"id"`
	Topic  Topic  `json:"topic"`
	UserID int64  `json:"userId"`
	// Origin names the view that caused the change so it can ignore its own echo.
	Origin  string    `json:"origin,omitempty"`
	Payload Payload   `json:"payload"`
	At      time.Time `json:"at"`
}

// Publisher is what services depend on.
type Publisher interface {
	Publish(ctx context.Context, e Event)
}

// Forwarder carries events beyond this process.
type Forwarder interface {
	Forward(ctx context.Context, e Event) error
}

type Filter func(Event) bool

// ForUser matches events of one user, optionally restricted to some topics.
func ForUser(userID int64, topics ...Topic) Filter {
	return func(e Event) bool {
		if e.UserID != userID {
			return false
		}
		if len(topics) == 0 {
			return true
		}
		for _, t := range topics {
			if e.Topic == t {
				return true
			}
		}
		return false
	}
}

type Subscription struct {
	C      <-chan Event
	ch     chan Event
	filter Filter
	bus    *Bus
	id     uint64
	once   sync.Once
}

// Close detaches the subscription and closes C.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		delete(s.bus.subs, s.id)
		s.bus.mu.Unlock()
		close(s.ch)
	})
}

type Bus struct {
	mu         sync.RWMutex
	subs       map[uint64]*Subscription
	nextID     uint64
	forwarders []Forwarder
	observers  []func(Event)
	now        func() time.Time
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[uint64]*Subscription),
		now:  time.Now,
	}
}

func (b *Bus) AddForwarder(f Forwarder) {
	b.mu.Lock()
	b.forwarders = append(b.forwarders, f)
	b.mu.Unlock()
}

// Observe registers a callback run for every locally published event.
func (b *Bus) Observe(fn func(Event)) {
	b.mu.Lock()
	b.observers = append(b.observers, fn)
	b.mu.Unlock()
}

// Subscribe returns a buffered subscription. A slow subscriber loses events rather than
// blocking publishers; it re-fetches on the next one it does get.
func (b *Bus) Subscribe(filter Filter, buffer int) *Subscription {
	if buffer <= 0 {
		buffer = 16
	}

	ch := make(chan Event, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{C: ch, ch: ch, filter: filter, bus: b, id: b.nextID}
	b.subs[sub.id] = sub

	return sub
}

// Publish stamps the event, delivers it locally and hands it to every forwarder.
func (b *Bus) Publish(ctx context.Context, e Event) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.At.IsZero() {
		e.At = b.now()
	}

	b.Deliver(e)

	b.mu.RLock()
	forwarders := slices.Clone(b.forwarders)
	observers := slices.Clone(b.observers)
	b.mu.RUnlock()

	for _, fn := range observers {
		fn(e)
	}

	for _, f := range forwarders {
		if err := f.Forward(ctx, e); err != nil {
			slog.Warn("Failed to forward event",
				slog.String("topic", string(e.Topic)),
				slog.String("eventId", e.ID),
				slog.String("error", err.Error()))
		}
	}
}

// Deliver fans an event out to local subscribers only.
func (b *Bus) Deliver(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if sub.filter != nil && !sub.filter(e) {
			continue
		}

		select {
		case sub.ch <- e:
		default:
			slog.Warn("Dropping event for slow subscriber", slog.String("topic", string(e.Topic)), slog.Int64("userId", e.UserID))
		}
	}
}
