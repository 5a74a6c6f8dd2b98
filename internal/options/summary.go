package options

import (
	"github.com/gradwear/storefront/internal/models"
	"github.com/shopspring/decimal"
)

func ItemCount(lines []models.CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}

	return count
}

// Subtotal sums quantity x unit price. No tax or shipping.
func Subtotal(lines []models.CartLine) decimal.Decimal {
	total := decimal.Zero
	for i := range lines {
		total = total.Add(lines[i].LineTotal())
	}

	return total
}

func Summarize(lines []models.CartLine) models.CartSummary {
	return models.CartSummary{
		ItemCount: ItemCount(lines),
		Subtotal:  Subtotal(lines),
	}
}

// Increment bumps a quantity by one without passing stock.
func Increment(quantity, stock int) int {
	if quantity >= stock {
		return quantity
	}

	return quantity + 1
}

// Decrement lowers a quantity by one, never below one.
func Decrement(quantity int) int {
	if quantity <= 1 {
		return 1
	}

	return quantity - 1
}
