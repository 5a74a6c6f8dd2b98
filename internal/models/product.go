package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// the backend and the storefront UI exchange prices as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

type Product struct {
	ID             int64               `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Price          decimal.Decimal     `json:"price"`
	OriginalPrice  decimal.NullDecimal `json:"originalPrice"`
	Stock          int                 `json:"stock"`
	CategoryID     *int64              `json:"categoryId,omitempty"`
	ProductType    string              `json:"productType,omitempty"`
	DynamicOptions []OptionDefinition  `json:"dynamicOptions,omitempty"`
	MainImage      string              `json:"mainImage,omitempty"`
	DetailedImages []string            `json:"detailedImages,omitempty"`
	SizeGuideImage string              `json:"sizeGuideImage,omitempty"`
	CreatedAt      time.Time           `json:"createdAt,omitzero"`
	UpdatedAt      time.Time           `json:"updatedAt,omitzero"`
}

var hundred = decimal.NewFromInt(100)

// DiscountPercent is the rounded "% off" badge shown when the original price is above the price.
func (p *Product) DiscountPercent() int {
	if !p.OriginalPrice.Valid || !p.OriginalPrice.Decimal.GreaterThan(p.Price) {
		return 0
	}

	original := p.OriginalPrice.Decimal
	percent := original.Sub(p.Price).Div(original).Mul(hundred).Round(0)

	return int(percent.IntPart())
}

// RequiredOptions returns the definitions a line must fill before checkout.
func (p *Product) RequiredOptions() []OptionDefinition {
	var required []OptionDefinition
	for _, def := range p.DynamicOptions {
		if def.Required {
			required = append(required, def)
		}
	}

	return required
}

// ProductView is what the product detail page renders.
type ProductView struct {
	Product         *Product          `json:"product"`
	Slug            string            `json:"slug"`
	DiscountPercent int               `json:"discountPercent"`
	Selection       OptionSelection   `json:"selection"`
	// Labels maps option names and listed values to their display text.
	Labels          map[string]string `json:"labels"`
	Category        *Category         `json:"category,omitempty"`
}

// ProductSummary is a product card in listings.
type ProductSummary struct {
	*Product
	Slug            string `json:"slug"`
	DiscountPercent int    `json:"discountPercent"`
}

const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
)

type ProductFilter struct {
	CategoryID *int64
	Search     string
	SortBy     string
	Page       int
	PageSize   int
}

// UpsertProductRequest carries the admin form fields. Images are forwarded untouched.
type UpsertProductRequest struct {
	Name           string             `validate:"required,min=2,max=200"`
	Description    string             `validate:"max=5000"`
	Price          decimal.Decimal    `validate:"-"`
	OriginalPrice  decimal.Decimal    `validate:"-"`
	Stock          int                `validate:"gte=0"`
	ProductType    string             `validate:"required"`
	CategoryID     *int64             `validate:"omitempty,gt=0"`
	DynamicOptions []OptionDefinition `validate:"-"`
	Files          []FilePart         `validate:"-"`
}

type UpsertCategoryRequest struct {
	Name        string     `validate:"required,min=2,max=100"`
	Description string     `validate:"max=2000"`
	Files       []FilePart `validate:"-"`
}

// FilePart is an uploaded image passed through to the backend as an opaque attachment.
type FilePart struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

type CategorySummary struct {
	*Category
	Slug string `json:"slug"`
}
