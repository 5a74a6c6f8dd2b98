package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gradwear/storefront/internal/events"
	"github.com/gradwear/storefront/internal/models"
	"github.com/gradwear/storefront/internal/options"
	repository "github.com/gradwear/storefront/internal/repositories"
)

// Subscriber is the receiving side of the event bus.
type Subscriber interface {
	Subscribe(filter events.Filter, buffer int) *events.Subscription
}

// BadgeService computes the navigation badges and keeps watchers current.
type BadgeService interface {
	Badges(ctx context.Context, userID int64) (*models.Badges, error)
	Watch(ctx context.Context, userID int64, onChange func(models.Badges)) (stop func())
}

type badgeService struct {
	cartRepo     repository.CartRepository
	wishlistRepo repository.WishlistRepository
	subscriber   Subscriber
	debounce     time.Duration
}

func NewBadgeService(cartRepo repository.CartRepository, wishlistRepo repository.WishlistRepository, subscriber Subscriber, debounce time.Duration) BadgeService {
	return &badgeService{cartRepo: cartRepo, wishlistRepo: wishlistRepo, subscriber: subscriber, debounce: debounce}
}

func (s *badgeService) Badges(ctx context.Context, userID int64) (*models.Badges, error) {

	if err := requireUser(userID); err != nil {
		return nil, err
	}

	lines, err := s.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, backendError(err, "Failed to fetch cart")
	}

	wishlist, err := s.wishlistRepo.ListWishlist(ctx, userID)
	if err != nil {
		return nil, backendError(err, "Failed to fetch wishlist")
	}

	return &models.Badges{
		CartCount:     options.ItemCount(lines),
		WishlistCount: len(wishlist),
	}, nil
}

// Watch re-fetches the badges after a burst of cart or wishlist events settles and
// hands the fresh counts to onChange. Event payloads are never trusted for the counts.
func (s *badgeService) Watch(ctx context.Context, userID int64, onChange func(models.Badges)) func() {

	sub := s.subscriber.Subscribe(events.ForUser(userID, events.TopicCart, events.TopicWishlist), 16)

	debouncer := events.NewDebouncer(s.debounce, func() {
		badges, err := s.Badges(ctx, userID)
		if err != nil {
			slog.Warn("Failed to refresh badges", slog.Int64("userId", userID), slog.String("error", err.Error()))
			return
		}
		onChange(*badges)
	})

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case _, ok := <-sub.C:
				if !ok {
					return
				}
				debouncer.Trigger()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			sub.Close()
			debouncer.Stop()
		})
	}
}
