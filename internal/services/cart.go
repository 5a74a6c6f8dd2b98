package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/events"
	"github.com/gradwear/storefront/internal/metrics"
	"github.com/gradwear/storefront/internal/models"
	"github.com/gradwear/storefront/internal/options"
	repository "github.com/gradwear/storefront/internal/repositories"
)

// CartService forwards cart writes to the backend. After every write the cart is
// fetched again and that answer is returned, never the write's own response.
type CartService interface {
	GetCart(ctx context.Context, userID int64) (*models.Cart, error)
	AddToCart(ctx context.Context, userID int64, req *models.AddItemRequest, origin string) (*models.CartLine, error)
	UpdateLine(ctx context.Context, userID, productID int64, req *models.UpdateLineRequest, origin string) (*models.CartLine, error)
	RemoveLine(ctx context.Context, userID, productID int64, origin string) (*models.Cart, error)
	ClearCart(ctx context.Context, userID int64, confirmed bool, origin string) error
	ValidateCart(ctx context.Context, userID int64) (*models.CartValidation, error)
	Checkout(ctx context.Context, userID int64) (*models.CartValidation, error)
}

type cartService struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
	options     OptionsService
	publisher   events.Publisher
}

func NewCartService(repo repository.CartRepository, productRepo repository.ProductRepository, optionsService OptionsService, publisher events.Publisher) CartService {
	return &cartService{repo: repo, productRepo: productRepo, options: optionsService, publisher: publisher}
}

func (s *cartService) GetCart(ctx context.Context, userID int64) (*models.Cart, error) {

	if err := requireUser(userID); err != nil {
		return nil, err
	}

	lines, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		return nil, backendError(err, "Failed to fetch cart")
	}

	if lines == nil {
		lines = []models.CartLine{}
	}

	return &models.Cart{
		UserID:  userID,
		Items:   lines,
		Summary: options.Summarize(lines),
	}, nil
}

func (s *cartService) AddToCart(ctx context.Context, userID int64, req *models.AddItemRequest, origin string) (*models.CartLine, error) {

	if err := requireUser(userID); err != nil {
		return nil, err
	}

	if req.Quantity < 1 {
		return nil, errors.AddValidationError("quantity", "must be at least 1")
	}

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeNotFound) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}
		return nil, backendError(err, "Failed to fetch product")
	}

	if req.Quantity > product.Stock {
		metrics.RecordCartMutation("add", metrics.OutcomeRejected)
		return nil, errors.ValidationError("Not enough stock").
			WithDetail(fmt.Sprintf("requested %d, only %d left", req.Quantity, product.Stock))
	}

	if err := checkValues(product.DynamicOptions, req.SelectedOptions); err != nil {
		metrics.RecordCartMutation("add", metrics.OutcomeRejected)
		return nil, err
	}

	base := req.SelectedOptions
	if base == nil {
		base = s.options.Draft(ctx, userID, product.ID)
	}
	selection := options.Initialize(product.DynamicOptions, base)

	if missing := options.Missing(product.DynamicOptions, selection); len(missing) > 0 {
		metrics.RecordCartMutation("add", metrics.OutcomeRejected)
		return nil, errors.ValidationError("Please choose all required options").WithDetails(missing...)
	}

	item := &models.AddItemRequest{
		ProductID:       product.ID,
		Quantity:        req.Quantity,
		SelectedOptions: selection,
		Attachments:     sanitizeAttachments(req.Attachments),
	}

	if err := s.repo.AddItem(ctx, userID, item); err != nil {
		metrics.RecordCartMutation("add", metrics.OutcomeFailed)
		return nil, backendError(err, "Failed to add item to cart")
	}
	metrics.RecordCartMutation("add", metrics.OutcomeSuccess)

	s.notify(ctx, userID, origin, product.ID, product.Name)

	fallback := &models.CartLine{
		ProductID:       product.ID,
		Quantity:        item.Quantity,
		SelectedOptions: selection,
		Attachments:     item.Attachments,
		Product:         *product,
	}

	return s.refetchLine(ctx, userID, product.ID, fallback), nil
}

func (s *cartService) UpdateLine(ctx context.Context, userID, productID int64, req *models.UpdateLineRequest, origin string) (*models.CartLine, error) {

	if err := requireUser(userID); err != nil {
		return nil, err
	}

	if req.Empty() {
		return nil, errors.ValidationError("Nothing to update")
	}

	lines, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		return nil, backendError(err, "Failed to fetch cart")
	}

	cart := models.Cart{Items: lines}
	current, ok := cart.Line(productID)
	if !ok {
		return nil, errors.NotFoundError("Cart item not found")
	}
	line := *current

	quantity := req.Quantity
	if quantity == nil && req.Step != "" {
		q := line.Quantity
		switch req.Step {
		case models.StepIncrement:
			q = options.Increment(q, line.Product.Stock)
		case models.StepDecrement:
			q = options.Decrement(q)
		default:
			return nil, errors.AddValidationError("step", "must be increment or decrement")
		}
		quantity = &q
	}

	// validate the whole patch before writing any part of it
	if quantity != nil {
		if *quantity < 1 {
			return nil, errors.AddValidationError("quantity", "must be at least 1")
		}
		if *quantity > line.Product.Stock {
			metrics.RecordCartMutation("update", metrics.OutcomeRejected)
			return nil, errors.ValidationError("Not enough stock").
				WithDetail(fmt.Sprintf("requested %d, only %d left", *quantity, line.Product.Stock))
		}
	}

	if err := checkValues(line.Product.DynamicOptions, req.SelectedOptions); err != nil {
		metrics.RecordCartMutation("update", metrics.OutcomeRejected)
		return nil, err
	}

	previous := line.Quantity
	quantityWritten := false

	if quantity != nil && *quantity != line.Quantity {
		if err := s.repo.UpdateQuantity(ctx, userID, productID, *quantity); err != nil {
			metrics.RecordCartMutation("update", metrics.OutcomeFailed)
			return nil, backendError(err, "Failed to update quantity")
		}
		line.Quantity = *quantity
		quantityWritten = true
	}

	optionsWritten := false

	if req.SelectedOptions != nil || req.Attachments != nil {
		// incomplete selections are saved; completeness is only enforced at checkout
		selection := line.SelectedOptions.Clone()
		for name, value := range req.SelectedOptions {
			selection[name] = value
		}

		attachments := line.Attachments
		if req.Attachments != nil {
			attachments = sanitizeAttachments(req.Attachments)
		}

		if err := s.repo.UpdateOptions(ctx, userID, productID, selection, attachments); err != nil {
			metrics.RecordCartMutation("update", metrics.OutcomeFailed)
			if quantityWritten {
				s.restoreQuantity(ctx, userID, productID, previous, origin, line.Product.Name)
			}
			return nil, backendError(err, "Failed to update options")
		}
		line.SelectedOptions = selection
		line.Attachments = attachments
		optionsWritten = true

		if req.SelectedOptions != nil {
			if err := s.options.Sync(ctx, userID, &line.Product, selection, origin); err != nil {
				slog.Warn("Failed to sync option draft from cart",
					slog.Int64("productId", productID),
					slog.String("error", err.Error()))
			}
		}
	}

	// nothing reached the backend, so there is nothing to announce
	if !quantityWritten && !optionsWritten {
		return &line, nil
	}
	metrics.RecordCartMutation("update", metrics.OutcomeSuccess)

	s.notify(ctx, userID, origin, productID, line.Product.Name)

	return s.refetchLine(ctx, userID, productID, &line), nil
}

func (s *cartService) RemoveLine(ctx context.Context, userID, productID int64, origin string) (*models.Cart, error) {

	if err := requireUser(userID); err != nil {
		return nil, err
	}

	// the name is only needed for the event; a failed lookup does not block removal
	var productName string
	if lines, err := s.repo.GetCart(ctx, userID); err == nil {
		if line, ok := (&models.Cart{Items: lines}).Line(productID); ok {
			productName = line.Product.Name
		}
	} else {
		slog.Warn("Failed to look up cart line before removal",
			slog.Int64("productId", productID),
			slog.String("error", err.Error()))
	}

	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		metrics.RecordCartMutation("remove", metrics.OutcomeFailed)
		return nil, backendError(err, "Failed to remove item from cart")
	}
	metrics.RecordCartMutation("remove", metrics.OutcomeSuccess)

	s.notify(ctx, userID, origin, productID, productName)

	return s.GetCart(ctx, userID)
}

func (s *cartService) ClearCart(ctx context.Context, userID int64, confirmed bool, origin string) error {

	if err := requireUser(userID); err != nil {
		return err
	}

	if !confirmed {
		return errors.ValidationError("Confirm clearing the cart")
	}

	if err := s.repo.ClearCart(ctx, userID); err != nil {
		metrics.RecordCartMutation("clear", metrics.OutcomeFailed)
		return backendError(err, "Failed to clear cart")
	}
	metrics.RecordCartMutation("clear", metrics.OutcomeSuccess)

	s.notify(ctx, userID, origin, 0, "")

	return nil
}

func (s *cartService) ValidateCart(ctx context.Context, userID int64) (*models.CartValidation, error) {

	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	validation := options.ValidateCart(cart.Items)

	return &validation, nil
}

// Checkout is the gate in front of the order step: every line must be Complete.
func (s *cartService) Checkout(ctx context.Context, userID int64) (*models.CartValidation, error) {

	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return nil, errors.ValidationError("Cart is empty")
	}

	validation := options.ValidateCart(cart.Items)
	if !validation.Valid {
		details := make([]string, 0, len(validation.InvalidLines))
		for _, line := range validation.InvalidLines {
			details = append(details, fmt.Sprintf("%s: %s", line.ProductName, strings.Join(line.Missing, "، ")))
		}

		return &validation, errors.ValidationError("Some items are missing required options").WithDetails(details...)
	}

	return &validation, nil
}

// restoreQuantity undoes a quantity write whose follow-up options write failed. If the
// undo fails too, the backend has changed and open views are told to re-fetch.
func (s *cartService) restoreQuantity(ctx context.Context, userID, productID int64, quantity int, origin, productName string) {
	err := s.repo.UpdateQuantity(ctx, userID, productID, quantity)
	if err == nil {
		return
	}

	slog.Error("Failed to restore cart quantity",
		slog.Int64("productId", productID),
		slog.Int("quantity", quantity),
		slog.String("error", err.Error()))

	s.notify(ctx, userID, origin, productID, productName)
}

func (s *cartService) notify(ctx context.Context, userID int64, origin string, productID int64, productName string) {
	s.publisher.Publish(ctx, events.Event{
		Topic:   events.TopicCart,
		UserID:  userID,
		Origin:  origin,
		Payload: events.Payload{ProductID: productID, ProductName: productName},
	})
}

// refetchLine reads the line back from the backend, falling back to what was sent.
func (s *cartService) refetchLine(ctx context.Context, userID, productID int64, fallback *models.CartLine) *models.CartLine {

	lines, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		slog.Warn("Failed to re-fetch cart after write",
			slog.Int64("userId", userID),
			slog.String("error", err.Error()))
		return fallback
	}

	cart := models.Cart{Items: lines}
	if line, ok := cart.Line(productID); ok {
		return line
	}

	return fallback
}

// checkValues rejects unknown option names and values an option can never hold.
func checkValues(defs []models.OptionDefinition, selection models.OptionSelection) error {
	for name, value := range selection {
		def, ok := options.Lookup(defs, name)
		if !ok {
			return errors.ValidationError("Unknown option").WithDetail(name)
		}
		if err := options.CheckValue(def, value); err != nil {
			return err
		}
	}

	return nil
}

func sanitizeAttachments(a *models.Attachments) *models.Attachments {
	if a == nil {
		return nil
	}

	return &models.Attachments{
		Text:   strings.TrimSpace(strictPolicy.Sanitize(a.Text)),
		Images: a.Images,
	}
}
