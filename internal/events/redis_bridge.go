package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const markerTTL = 24 * time.Hour

var markerKeys = map[Topic]string{
	TopicCart:     "cartUpdated",
	TopicWishlist: "wishlistUpdated",
	TopicOptions:  "optionsUpdated",
}

// MarkerKey is the Redis key holding the unix-ms time of the user's last change on topic.
func MarkerKey(topic Topic, userID int64) string {
	name, ok := markerKeys[topic]
	if !ok {
		name = string(topic)
	}

	return fmt.Sprintf("%s:%d", name, userID)
}

type envelope struct {
	Instance string `json:"instance"`
	Event    Event  `json:"event"`
}

// RedisBridge shares events between storefront instances over a Redis channel.
type RedisBridge struct {
	client   *redis.Client
	channel  string
	instance string
	bus      *Bus
}

func NewRedisBridge(client *redis.Client, channel, instance string, bus *Bus) *RedisBridge {
	return &RedisBridge{client: client, channel: channel, instance: instance, bus: bus}
}

// Forward stamps the change marker and publishes the event for other instances.
func (b *RedisBridge) Forward(ctx context.Context, e Event) error {
	if err := b.client.Set(ctx, MarkerKey(e.Topic, e.UserID), e.At.UnixMilli(), markerTTL).Err(); err != nil {
		return fmt.Errorf("failed to set change marker: %w", err)
	}

	data, err := json.Marshal(envelope{Instance: b.instance, Event: e})
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", e.ID, err)
	}

	if err := b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event on %s: %w", b.channel, err)
	}

	return nil
}

// LastChanged reads the change marker. ok is false when nothing changed within the marker TTL.
func (b *RedisBridge) LastChanged(ctx context.Context, topic Topic, userID int64) (time.Time, bool, error) {
	ms, err := b.client.Get(ctx, MarkerKey(topic, userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to read change marker: %w", err)
	}

	return time.UnixMilli(ms), true, nil
}

// Run relays events published by other instances into the local bus until ctx ends.
func (b *RedisBridge) Run(ctx context.Context) error {
	pubsub := b.client.Subscribe(ctx, b.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", b.channel, err)
	}

	slog.Info("Event bridge subscribed", slog.String("channel", b.channel), slog.String("instance", b.instance))

	msgs := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			b.relay(msg.Payload)
		}
	}
}

func (b *RedisBridge) relay(payload string) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		slog.Warn("Discarding malformed bridged event", slog.String("error", err.Error()))
		return
	}

	if env.Instance == b.instance {
		return
	}

	b.bus.Deliver(env.Event)
}
