package service

import (
	"context"
	"log/slog"

	"github.com/gradwear/storefront/internal/config"
	"github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/events"
	"github.com/gradwear/storefront/internal/models"
	"github.com/gradwear/storefront/internal/options"
	repository "github.com/gradwear/storefront/internal/repositories"
	"github.com/gradwear/storefront/internal/store"
)

// OptionsService owns the per-product option drafts.
type OptionsService interface {
	Selection(ctx context.Context, userID int64, product *models.Product) models.OptionSelection
	Draft(ctx context.Context, userID, productID int64) models.OptionSelection
	UpdateSelection(ctx context.Context, userID, productID int64, name, value, origin string) (models.OptionSelection, error)
	Sync(ctx context.Context, userID int64, product *models.Product, selection models.OptionSelection, origin string) error
}

type optionsService struct {
	productRepo repository.ProductRepository
	drafts      store.Store
	publisher   events.Publisher
	cfg         config.Drafts
}

func NewOptionsService(productRepo repository.ProductRepository, drafts store.Store, publisher events.Publisher, cfg config.Drafts) OptionsService {
	return &optionsService{productRepo: productRepo, drafts: drafts, publisher: publisher, cfg: cfg}
}

// key picks the draft key for the configured scope; user scope falls back to the
// device-wide key for anonymous visitors.
func (s *optionsService) key(userID, productID int64) string {
	if s.cfg.Scope == config.DraftScopeUser && userID > 0 {
		return store.UserDraftKey(userID, productID)
	}

	return store.DraftKey(productID)
}

// Draft returns the stored draft, or nil. A broken store degrades to "no draft".
func (s *optionsService) Draft(ctx context.Context, userID, productID int64) models.OptionSelection {
	var draft models.OptionSelection

	found, err := s.drafts.Get(ctx, s.key(userID, productID), &draft)
	if err != nil {
		slog.Warn("Failed to read option draft", slog.Int64("productId", productID), slog.String("error", err.Error()))
		return nil
	}
	if !found {
		return nil
	}

	return draft
}

func (s *optionsService) Selection(ctx context.Context, userID int64, product *models.Product) models.OptionSelection {
	return options.Initialize(product.DynamicOptions, s.Draft(ctx, userID, product.ID))
}

func (s *optionsService) UpdateSelection(ctx context.Context, userID, productID int64, name, value, origin string) (models.OptionSelection, error) {

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, backendError(err, "Failed to fetch product")
	}

	def, ok := options.Lookup(product.DynamicOptions, name)
	if !ok {
		return nil, errors.ValidationError("Unknown option").WithDetail(name)
	}

	if err := options.CheckValue(def, value); err != nil {
		return nil, err
	}

	selection := options.Apply(s.Selection(ctx, userID, product), name, value)

	if err := s.Sync(ctx, userID, product, selection, origin); err != nil {
		return nil, err
	}

	return selection, nil
}

// Sync stores selection as the product's draft and tells other views about it.
func (s *optionsService) Sync(ctx context.Context, userID int64, product *models.Product, selection models.OptionSelection, origin string) error {

	if err := s.drafts.Set(ctx, s.key(userID, product.ID), selection, s.cfg.TTL); err != nil {
		return errors.InternalError("Failed to save option draft").WithError(err)
	}

	s.publisher.Publish(ctx, events.Event{
		Topic:  events.TopicOptions,
		UserID: userID,
		Origin: origin,
		Payload: events.Payload{
			ProductID:   product.ID,
			ProductName: product.Name,
			Selection:   selection,
		},
	})

	return nil
}
