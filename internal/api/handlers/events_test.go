package handlers_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gradwear/storefront/internal/api/handlers"
	"github.com/gradwear/storefront/internal/api/middleware"
	"github.com/gradwear/storefront/internal/events"
	"github.com/gradwear/storefront/internal/models"
	"github.com/gradwear/storefront/internal/services/mocks"
	"github.com/gradwear/storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type frame struct {
	id   string
	name string
	data string
}

// readFrame returns the next named event, skipping comments.
func readFrame(t *testing.T, r *bufio.Reader) frame {
	t.Helper()

	var f frame
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")

		switch {
		case line == "":
			if f.name != "" {
				return f
			}
		case strings.HasPrefix(line, ":"):
		case strings.HasPrefix(line, "id: "):
			f.id = strings.TrimPrefix(line, "id: ")
		case strings.HasPrefix(line, "event: "):
			f.name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			f.data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func withUser(userID int64, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.UserContextKey, &models.Claims{UserID: userID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func openStream(t *testing.T, url string) *bufio.Reader {
	t.Helper()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	r := bufio.NewReader(resp.Body)

	// the handler subscribes before it writes the opening comment
	line, err := r.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, ": connected\n", line)

	return r
}

func TestEventStream(t *testing.T) {
	bus := events.NewBus()
	mockBadgeService := new(mocks.BadgeService)

	var mu sync.Mutex
	var onChange func(models.Badges)
	mockBadgeService.On("Watch", mock.Anything, int64(7), mock.Anything).Run(func(args mock.Arguments) {
		mu.Lock()
		onChange = args.Get(2).(func(models.Badges))
		mu.Unlock()
	}).Return(func() {}).Once()

	eventsHandler := handlers.NewEventsHandler(bus, mockBadgeService, nil, time.Hour)
	srv := httptest.NewServer(withUser(7, eventsHandler.Stream()))
	t.Cleanup(srv.Close)

	r := openStream(t, srv.URL+"/api/v1/events?view=view-1")

	// Act
	bus.Publish(context.Background(), events.Event{Topic: events.TopicCart, UserID: 7, Origin: "view-1"})
	bus.Publish(context.Background(), events.Event{Topic: events.TopicCart, UserID: 8, Origin: "cart"})
	bus.Publish(context.Background(), events.Event{Topic: events.TopicWishlist, UserID: 7, Origin: "card", Payload: events.Payload{ProductID: 4}})

	mu.Lock()
	notify := onChange
	mu.Unlock()
	require.NotNil(t, notify)
	notify(models.Badges{CartCount: 2, WishlistCount: 1})

	// Assert
	got := map[string]frame{}
	for len(got) < 2 {
		f := readFrame(t, r)
		got[f.name] = f
	}

	require.Contains(t, got, string(events.TopicWishlist))
	wishlist := got[string(events.TopicWishlist)]
	assert.NotEmpty(t, wishlist.id)

	var e events.Event
	require.NoError(t, json.Unmarshal([]byte(wishlist.data), &e))
	assert.Equal(t, int64(4), e.Payload.ProductID)

	require.Contains(t, got, "badges.changed")
	var badges models.Badges
	require.NoError(t, json.Unmarshal([]byte(got["badges.changed"].data), &badges))
	assert.Equal(t, models.Badges{CartCount: 2, WishlistCount: 1}, badges)

	assert.NotContains(t, got, string(events.TopicCart))
	mockBadgeService.AssertExpectations(t)
}

func TestEventStream_Heartbeat(t *testing.T) {
	bus := events.NewBus()
	mockBadgeService := new(mocks.BadgeService)
	mockBadgeService.On("Watch", mock.Anything, int64(7), mock.Anything).Return(func() {}).Once()

	eventsHandler := handlers.NewEventsHandler(bus, mockBadgeService, nil, 10*time.Millisecond)
	srv := httptest.NewServer(withUser(7, eventsHandler.Stream()))
	t.Cleanup(srv.Close)

	r := openStream(t, srv.URL+"/api/v1/events")

	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		if line == ": ping\n" {
			break
		}
	}
}

type fixedMarkers map[events.Topic]time.Time

func (m fixedMarkers) LastChanged(_ context.Context, topic events.Topic, _ int64) (time.Time, bool, error) {
	at, ok := m[topic]
	return at, ok, nil
}

func TestEventStream_ReplaysMissedChanges(t *testing.T) {
	mockBadgeService := new(mocks.BadgeService)
	mockBadgeService.On("Watch", mock.Anything, int64(7), mock.Anything).Return(func() {}).Once()

	since := time.UnixMilli(1_700_000_000_000)
	markers := fixedMarkers{
		events.TopicCart:     since.Add(time.Minute),
		events.TopicWishlist: since.Add(-time.Minute),
	}

	eventsHandler := handlers.NewEventsHandler(events.NewBus(), mockBadgeService, markers, time.Hour)
	srv := httptest.NewServer(withUser(7, eventsHandler.Stream()))
	t.Cleanup(srv.Close)

	r := openStream(t, srv.URL+"/api/v1/events?since=1700000000000")

	f := readFrame(t, r)

	assert.Equal(t, string(events.TopicCart), f.name)
	var e events.Event
	require.NoError(t, json.Unmarshal([]byte(f.data), &e))
	assert.Equal(t, int64(7), e.UserID)
	assert.True(t, e.At.Equal(since.Add(time.Minute)))
}

func TestEventStream_Unauthorized(t *testing.T) {
	eventsHandler := handlers.NewEventsHandler(events.NewBus(), new(mocks.BadgeService), nil, time.Second)

	req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/events", nil, nil)
	rr := httptest.NewRecorder()

	eventsHandler.Stream().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetBadges(t *testing.T) {
	mockBadgeService := new(mocks.BadgeService)
	badgeHandler := handlers.NewBadgeHandler(mockBadgeService)

	mockBadgeService.On("Badges", mock.Anything, int64(7)).Return(&models.Badges{CartCount: 3, WishlistCount: 2}, nil).Once()

	req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/badges", nil, 7, nil)
	rr := httptest.NewRecorder()

	badgeHandler.GetBadges().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got models.Badges
	testutils.DecodeResponse(t, rr, &got)
	assert.Equal(t, 3, got.CartCount)
	mockBadgeService.AssertExpectations(t)
}
