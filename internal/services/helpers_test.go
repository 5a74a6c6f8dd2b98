package service_test

import (
	"context"
	"sync"

	"github.com/gradwear/storefront/internal/events"
	"github.com/gradwear/storefront/internal/models"
	"github.com/shopspring/decimal"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) published() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Event(nil), p.events...)
}

func intPtr(v int) *int { return &v }

// gown is a product with one required size option, priced 100 and reduced from 150.
func gown() *models.Product {
	return &models.Product{
		ID:            1,
		Name:          "عباية تخرج",
		Price:         decimal.NewFromInt(100),
		OriginalPrice: decimal.NewNullDecimal(decimal.NewFromInt(150)),
		Stock:         5,
		ProductType:   "عباية تخرج",
		DynamicOptions: []models.OptionDefinition{
			{Name: "size", Required: true, Kind: models.SelectOption{Values: []string{"S", "M", "L"}}},
			{Name: "nameOnSash", Required: false, Kind: models.TextOption{MaxLength: intPtr(20)}},
		},
	}
}

func gownLine(selection models.OptionSelection, quantity int) models.CartLine {
	return models.CartLine{
		ID:              10,
		ProductID:       1,
		Quantity:        quantity,
		SelectedOptions: selection,
		Product:         *gown(),
	}
}
