package models

import (
	"github.com/shopspring/decimal"
)

type Attachments struct {
	Text   string   `json:"text,omitempty"`
	Images []string `json:"images,omitempty"`
}

type CartLine struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"productId"`
	Quantity        int             `json:"quantity"`
	SelectedOptions OptionSelection `json:"selectedOptions,omitempty"`
	Attachments     *Attachments    `json:"attachments,omitempty"`
	Product         Product         `json:"product"`
}

// LineTotal is quantity x unit price. Options are flat-priced.
func (l *CartLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type CartSummary struct {
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type Cart struct {
	UserID  int64       `json:"userId"`
	Items   []CartLine  `json:"items"`
	Summary CartSummary `json:"summary"`
}

// Line returns the line for productID, if present.
func (c *Cart) Line(productID int64) (*CartLine, bool) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i], true
		}
	}

	return nil, false
}

type AddItemRequest struct {
	ProductID       int64           `json:"productId" validate:"required,gt=0"`
	Quantity        int             `json:"quantity" validate:"required,min=1"`
	SelectedOptions OptionSelection `json:"selectedOptions,omitempty"`
	Attachments     *Attachments    `json:"attachments,omitempty"`
}

const (
	StepIncrement = "increment"
	StepDecrement = "decrement"
)

// UpdateLineRequest is a partial edit; nil fields are left untouched. Step nudges the
// quantity by one within [1, stock] and is ignored when Quantity is set.
type UpdateLineRequest struct {
	Quantity        *int            `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Step            string          `json:"step,omitempty" validate:"omitempty,oneof=increment decrement"`
	SelectedOptions OptionSelection `json:"selectedOptions,omitempty"`
	Attachments     *Attachments    `json:"attachments,omitempty"`
}

func (r *UpdateLineRequest) Empty() bool {
	return r.Quantity == nil && r.Step == "" && r.SelectedOptions == nil && r.Attachments == nil
}

// InvalidLine names a cart line that blocks checkout and the display names of its missing options.
type InvalidLine struct {
	ProductID   int64    `json:"productId"`
	ProductName string   `json:"productName"`
	Missing     []string `json:"missing"`
}

type LineValidation struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing"`
}

type CartValidation struct {
	Valid        bool          `json:"valid"`
	InvalidLines []InvalidLine `json:"invalidLines"`
}

type Badges struct {
	CartCount     int `json:"cartCount"`
	WishlistCount int `json:"wishlistCount"`
}
