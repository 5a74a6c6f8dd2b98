package options

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/models"
)

// Initialize builds the selection shown when a product view opens.
// List options get the draft value when it is still permitted, else the first listed value.
// Free-form options get the draft value or the empty string.
func Initialize(defs []models.OptionDefinition, draft models.OptionSelection) models.OptionSelection {
	selection := make(models.OptionSelection, len(defs))

	for _, def := range defs {
		prior, hasPrior := draft[def.Name]

		if def.HasValueList() {
			switch {
			case hasPrior && prior != "" && def.Permits(prior):
				selection[def.Name] = prior
			case len(def.Values()) > 0:
				selection[def.Name] = def.Values()[0]
			}

			continue
		}

		selection[def.Name] = prior
	}

	return selection
}

// Apply returns a copy of selection with name set to value. The input is not modified.
func Apply(selection models.OptionSelection, name, value string) models.OptionSelection {
	next := selection.Clone()
	next[name] = value

	return next
}

// Lookup finds the definition for name.
func Lookup(defs []models.OptionDefinition, name string) (models.OptionDefinition, bool) {
	for _, def := range defs {
		if def.Name == name {
			return def, true
		}
	}

	return models.OptionDefinition{}, false
}

// CheckValue rejects values the option can never hold. An empty value is always accepted
// so a field can be cleared while editing; completeness is checked at checkout.
func CheckValue(def models.OptionDefinition, value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	switch k := def.Kind.(type) {
	case models.SelectOption, models.RadioOption:
		if !def.Permits(value) {
			return errors.ValidationError(fmt.Sprintf("Value not offered for %s", DisplayName(def.Name))).
				WithDetail(fmt.Sprintf("value %q is not offered for option %q", value, def.Name))
		}
	case models.TextOption:
		if k.MinLength != nil && utf8.RuneCountInString(strings.TrimSpace(value)) < *k.MinLength {
			return errors.ValidationError(fmt.Sprintf("Text too short for %s", DisplayName(def.Name))).
				WithDetail(fmt.Sprintf("option %q needs at least %d characters", def.Name, *k.MinLength))
		}
		if k.MaxLength != nil && utf8.RuneCountInString(value) > *k.MaxLength {
			return errors.ValidationError(fmt.Sprintf("Text too long for %s", DisplayName(def.Name))).
				WithDetail(fmt.Sprintf("option %q allows at most %d characters", def.Name, *k.MaxLength))
		}
	case models.NumericOption:
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return errors.ValidationError(fmt.Sprintf("%s must be a number", DisplayName(def.Name))).WithError(err)
		}
		if (k.Min != nil && n < *k.Min) || (k.Max != nil && n > *k.Max) {
			return errors.ValidationError(fmt.Sprintf("%s is out of range", DisplayName(def.Name)))
		}
	}

	return nil
}
