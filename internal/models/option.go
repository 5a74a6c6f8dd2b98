package models

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

type OptionType string

const (
	OptionTypeSelect OptionType = "select"
	OptionTypeText   OptionType = "text"
	OptionTypeNumber OptionType = "number"
	OptionTypeRadio  OptionType = "radio"
)

// OptionKind is the closed set of option shapes. Only the types in this file implement it.
type OptionKind interface {
	Type() OptionType
	sealed()
}

type SelectOption struct {
	Values []string
}

type RadioOption struct {
	Values []string
}

type TextOption struct {
	Placeholder string
	MinLength   *int
	MaxLength   *int
	Pattern     string
}

type NumericOption struct {
	Min *float64
	Max *float64
}

func (SelectOption) Type() OptionType  { return OptionTypeSelect }
func (RadioOption) Type() OptionType   { return OptionTypeRadio }
func (TextOption) Type() OptionType    { return OptionTypeText }
func (NumericOption) Type() OptionType { return OptionTypeNumber }

func (SelectOption) sealed()  {}
func (RadioOption) sealed()   {}
func (TextOption) sealed()    {}
func (NumericOption) sealed() {}

// OptionDefinition is one configurable attribute of a product (size, embroidery colour, name on sash...).
type OptionDefinition struct {
	Name     string
	Required bool
	Kind     OptionKind
}

// Values returns the permitted values for select and radio options, nil otherwise.
func (d OptionDefinition) Values() []string {
	switch k := d.Kind.(type) {
	case SelectOption:
		return k.Values
	case RadioOption:
		return k.Values
	default:
		return nil
	}
}

// HasValueList reports whether the option is chosen from a fixed list.
func (d OptionDefinition) HasValueList() bool {
	switch d.Kind.(type) {
	case SelectOption, RadioOption:
		return true
	default:
		return false
	}
}

// Usable is false for list options that declare no values.
func (d OptionDefinition) Usable() bool {
	if d.HasValueList() {
		return len(d.Values()) > 0
	}

	return d.Kind != nil
}

// Permits reports whether value is one of the listed values. Free-form kinds permit anything.
func (d OptionDefinition) Permits(value string) bool {
	if !d.HasValueList() {
		return true
	}

	return slices.Contains(d.Values(), value)
}

type optionValueWire struct {
	Value string `json:"value"`
}

type optionValidationWire struct {
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
}

// backend shape of a dynamic option
type optionDefinitionWire struct {
	OptionName  string                `json:"optionName"`
	OptionType  OptionType            `json:"optionType"`
	Required    bool                  `json:"required"`
	Options     []optionValueWire     `json:"options,omitempty"`
	Placeholder string                `json:"placeholder,omitempty"`
	Validation  *optionValidationWire `json:"validation,omitempty"`
}

func (d OptionDefinition) MarshalJSON() ([]byte, error) {
	wire := optionDefinitionWire{
		OptionName: d.Name,
		Required:   d.Required,
	}

	switch k := d.Kind.(type) {
	case SelectOption:
		wire.OptionType = OptionTypeSelect
		wire.Options = toValueWire(k.Values)
	case RadioOption:
		wire.OptionType = OptionTypeRadio
		wire.Options = toValueWire(k.Values)
	case TextOption:
		wire.OptionType = OptionTypeText
		wire.Placeholder = k.Placeholder
		if k.MinLength != nil || k.MaxLength != nil || k.Pattern != "" {
			wire.Validation = &optionValidationWire{MinLength: k.MinLength, MaxLength: k.MaxLength, Pattern: k.Pattern}
		}
	case NumericOption:
		wire.OptionType = OptionTypeNumber
		if k.Min != nil || k.Max != nil {
			wire.Validation = &optionValidationWire{Min: k.Min, Max: k.Max}
		}
	default:
		return nil, fmt.Errorf("option %q has no kind", d.Name)
	}

	return json.Marshal(wire)
}

func (d *OptionDefinition) UnmarshalJSON(data []byte) error {
	var wire optionDefinitionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	d.Name = wire.OptionName
	d.Required = wire.Required

	validation := wire.Validation
	if validation == nil {
		validation = &optionValidationWire{}
	}

	switch wire.OptionType {
	case OptionTypeSelect:
		d.Kind = SelectOption{Values: fromValueWire(wire.Options)}
	case OptionTypeRadio:
		d.Kind = RadioOption{Values: fromValueWire(wire.Options)}
	case OptionTypeText:
		d.Kind = TextOption{
			Placeholder: wire.Placeholder,
			MinLength:   validation.MinLength,
			MaxLength:   validation.MaxLength,
			Pattern:     validation.Pattern,
		}
	case OptionTypeNumber:
		d.Kind = NumericOption{Min: validation.Min, Max: validation.Max}
	default:
		return fmt.Errorf("option %q: unknown option type %q", wire.OptionName, wire.OptionType)
	}

	return nil
}

func toValueWire(values []string) []optionValueWire {
	out := make([]optionValueWire, 0, len(values))
	for _, v := range values {
		out = append(out, optionValueWire{Value: v})
	}

	return out
}

func fromValueWire(values []optionValueWire) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.Value)
	}

	return out
}

// OptionSelection maps an option name to the chosen value for one product.
type OptionSelection map[string]string

func (s OptionSelection) Clone() OptionSelection {
	if s == nil {
		return OptionSelection{}
	}

	return maps.Clone(s)
}

type UpdateSelectionRequest struct {
	Option string `json:"option" validate:"required"`
	Value  string `json:"value"`
}
