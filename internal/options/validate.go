package options

import (
	"strings"

	"github.com/gradwear/storefront/internal/models"
)

// Missing lists the display names of required options that are absent or blank in selection.
func Missing(defs []models.OptionDefinition, selection models.OptionSelection) []string {
	missing := []string{}

	for _, def := range defs {
		if !def.Required {
			continue
		}

		if strings.TrimSpace(selection[def.Name]) == "" {
			missing = append(missing, DisplayName(def.Name))
		}
	}

	return missing
}

func ValidateLine(line models.CartLine) models.LineValidation {
	missing := Missing(line.Product.DynamicOptions, line.SelectedOptions)

	return models.LineValidation{
		Valid:   len(missing) == 0,
		Missing: missing,
	}
}

// ValidateCart is the checkout gate. Every line must be complete.
func ValidateCart(lines []models.CartLine) models.CartValidation {
	result := models.CartValidation{
		Valid:        true,
		InvalidLines: []models.InvalidLine{},
	}

	for _, line := range lines {
		v := ValidateLine(line)
		if v.Valid {
			continue
		}

		result.Valid = false
		result.InvalidLines = append(result.InvalidLines, models.InvalidLine{
			ProductID:   line.ProductID,
			ProductName: line.Product.Name,
			Missing:     v.Missing,
		})
	}

	return result
}
