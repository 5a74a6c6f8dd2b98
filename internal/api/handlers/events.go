package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gradwear/storefront/internal/api/middleware"
	"github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/events"
	"github.com/gradwear/storefront/internal/models"
	service "github.com/gradwear/storefront/internal/services"
	"github.com/gradwear/storefront/internal/utils/response"
)

const (
	eventBadges     = "badges.changed"
	subscribeBuffer = 32
)

var replayTopics = []events.Topic{events.TopicCart, events.TopicWishlist, events.TopicOptions}

// ChangeMarker reports when a topic last changed for a user on any instance.
type ChangeMarker interface {
	LastChanged(ctx context.Context, topic events.Topic, userID int64) (time.Time, bool, error)
}

// EventsHandler streams change notifications to open views over server-sent events.
type EventsHandler struct {
	subscriber   service.Subscriber
	badgeService service.BadgeService
	markers      ChangeMarker
	heartbeat    time.Duration
}

// NewEventsHandler takes a nil markers when no cross-instance bridge is running; ?since= is then ignored.
func NewEventsHandler(subscriber service.Subscriber, badgeService service.BadgeService, markers ChangeMarker, heartbeat time.Duration) *EventsHandler {
	if heartbeat <= 0 {
		heartbeat = 25 * time.Second
	}

	return &EventsHandler{subscriber: subscriber, badgeService: badgeService, markers: markers, heartbeat: heartbeat}
}

// Stream godoc
//	@Summary		Change notifications
//	@Description	Server-sent events for cart.changed, wishlist.changed, options.changed and badges.changed. Pass view to skip events the same view caused. Payloads are hints; re-fetch on receipt.
//	@Tags			Events
//	@Produce		text/event-stream
//	@Param			view	query	string	false	"Calling view"
//	@Param			since	query	int		false	"Unix ms of the last event seen; topics changed after it are sent first"
//	@Success		200
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/events [get]
func (h *EventsHandler) Stream() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			response.Error(w, errors.AuthRequiredError("Authentication required"))
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			response.Error(w, errors.InternalError("Streaming unsupported"))
			return
		}

		view := r.URL.Query().Get("view")
		ctx := r.Context()

		sub := h.subscriber.Subscribe(events.ForUser(claims.UserID), subscribeBuffer)
		defer sub.Close()

		// Latest badge value wins; the stream never needs stale counts.
		badges := make(chan models.Badges, 1)
		stop := h.badgeService.Watch(ctx, claims.UserID, func(b models.Badges) {
			select {
			case <-badges:
			default:
			}
			select {
			case badges <- b:
			default:
			}
		})
		defer stop()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, ": connected\n\n")
		flusher.Flush()

		logger.Info("Event stream opened", slog.String("view", view))

		if err := h.replay(ctx, w, claims.UserID, r.URL.Query().Get("since")); err != nil {
			logger.Warn("Failed to replay missed changes", slog.Any("error", err))
		}
		flusher.Flush()

		ticker := time.NewTicker(h.heartbeat)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("Event stream closed", slog.String("view", view))
				return

			case e, ok := <-sub.C:
				if !ok {
					return
				}
				if view != "" && e.Origin == view {
					continue
				}
				if err := writeEvent(w, e.ID, string(e.Topic), e); err != nil {
					logger.Warn("Failed to write event", slog.Any("error", err))
					return
				}

			case b := <-badges:
				if err := writeEvent(w, "", eventBadges, b); err != nil {
					logger.Warn("Failed to write badges", slog.Any("error", err))
					return
				}

			case <-ticker.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
			}

			flusher.Flush()
		}
	}
}

func writeEvent(w io.Writer, id, name string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if id != "" {
		if _, err := fmt.Fprintf(w, "id: %s\n", id); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, payload)
	return err
}

// replay sends one synthetic event per topic that changed after since, so a reconnecting
// view re-fetches what it missed while disconnected.
func (h *EventsHandler) replay(ctx context.Context, w io.Writer, userID int64, since string) error {
	if h.markers == nil || since == "" {
		return nil
	}

	ms, err := strconv.ParseInt(since, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid since %q: %w", since, err)
	}
	cutoff := time.UnixMilli(ms)

	for _, topic := range replayTopics {
		at, ok, err := h.markers.LastChanged(ctx, topic, userID)
		if err != nil {
			return err
		}
		if !ok || !at.After(cutoff) {
			continue
		}

		e := events.Event{Topic: topic, UserID: userID, At: at}
		if err := writeEvent(w, "", string(topic), e); err != nil {
			return err
		}
	}

	return nil
}
