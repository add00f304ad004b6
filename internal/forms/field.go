// Package forms describes entry form layouts served to clients.
// Every field descriptor is a tagged variant: the Kind discriminates
// which configuration block applies, and constructors reject invalid
// combinations so a registered form can always be rendered.
package forms

import (
	"fmt"

	"taller/internal/core/types"
)

// Kind discriminates field descriptor variants.
type Kind string

const (
	KindText      Kind = "text"
	KindTextarea  Kind = "textarea"
	KindNumber    Kind = "number"
	KindSelect    Kind = "select"
	KindDate      Kind = "date"
	KindCheckbox  Kind = "checkbox"
	KindReference Kind = "reference"
)

// IsValid reports whether the kind is a known value.
func (k Kind) IsValid() bool {
	switch k {
	case KindText, KindTextarea, KindNumber, KindSelect, KindDate, KindCheckbox, KindReference:
		return true
	}
	return false
}

// Field is one form field descriptor. Exactly one of the configuration
// blocks is set, matching Kind.
type Field struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Kind     Kind   `json:"kind"`
	Required bool   `json:"required,omitempty"`
	ReadOnly bool   `json:"readOnly,omitempty"`

	Text      *TextConfig      `json:"text,omitempty"`
	Number    *NumberConfig    `json:"number,omitempty"`
	Select    *SelectConfig    `json:"select,omitempty"`
	Reference *ReferenceConfig `json:"reference,omitempty"`
}

// TextConfig configures text and textarea fields.
type TextConfig struct {
	MaxLength   int    `json:"maxLength,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Rows        int    `json:"rows,omitempty"`
}

// NumberConfig configures numeric fields.
type NumberConfig struct {
	Min   *types.Money `json:"min,omitempty"`
	Max   *types.Money `json:"max,omitempty"`
	Scale int          `json:"scale"`
}

// SelectConfig configures select fields.
type SelectConfig struct {
	Options []Option `json:"options"`
}

// Option is one selectable value.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ReferenceConfig configures catalog reference fields.
type ReferenceConfig struct {
	// Entity is the referenced catalog, e.g. "clientes"
	Entity string `json:"entity"`
}

// FieldOption mutates a field during construction.
type FieldOption func(*Field)

// Required marks a field as mandatory.
func Required() FieldOption {
	return func(f *Field) { f.Required = true }
}

// ReadOnly marks a field as display-only.
func ReadOnly() FieldOption {
	return func(f *Field) { f.ReadOnly = true }
}

// Text creates a single-line text field.
func Text(name, label string, maxLength int, opts ...FieldOption) (Field, error) {
	if maxLength < 0 {
		return Field{}, fmt.Errorf("field %s: negative max length", name)
	}
	f := Field{Name: name, Label: label, Kind: KindText, Text: &TextConfig{MaxLength: maxLength}}
	return finish(f, opts)
}

// Textarea creates a multi-line text field.
func Textarea(name, label string, rows int, opts ...FieldOption) (Field, error) {
	if rows <= 0 {
		rows = 3
	}
	f := Field{Name: name, Label: label, Kind: KindTextarea, Text: &TextConfig{Rows: rows}}
	return finish(f, opts)
}

// Number creates a numeric field.
func Number(name, label string, cfg NumberConfig, opts ...FieldOption) (Field, error) {
	if cfg.Scale < 0 || cfg.Scale > 6 {
		return Field{}, fmt.Errorf("field %s: scale %d out of range", name, cfg.Scale)
	}
	if cfg.Min != nil && cfg.Max != nil && cfg.Min.GreaterThan(*cfg.Max) {
		return Field{}, fmt.Errorf("field %s: min exceeds max", name)
	}
	f := Field{Name: name, Label: label, Kind: KindNumber, Number: &cfg}
	return finish(f, opts)
}

// Select creates a fixed-options field.
func Select(name, label string, options []Option, opts ...FieldOption) (Field, error) {
	if len(options) == 0 {
		return Field{}, fmt.Errorf("field %s: select requires options", name)
	}
	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		if opt.Value == "" {
			return Field{}, fmt.Errorf("field %s: empty option value", name)
		}
		if _, dup := seen[opt.Value]; dup {
			return Field{}, fmt.Errorf("field %s: duplicate option %q", name, opt.Value)
		}
		seen[opt.Value] = struct{}{}
	}
	f := Field{Name: name, Label: label, Kind: KindSelect, Select: &SelectConfig{Options: options}}
	return finish(f, opts)
}

// Date creates a date field.
func Date(name, label string, opts ...FieldOption) (Field, error) {
	return finish(Field{Name: name, Label: label, Kind: KindDate}, opts)
}

// Checkbox creates a boolean field.
func Checkbox(name, label string, opts ...FieldOption) (Field, error) {
	return finish(Field{Name: name, Label: label, Kind: KindCheckbox}, opts)
}

// Reference creates a catalog reference field.
func Reference(name, label, entity string, opts ...FieldOption) (Field, error) {
	if entity == "" {
		return Field{}, fmt.Errorf("field %s: reference requires an entity", name)
	}
	f := Field{Name: name, Label: label, Kind: KindReference, Reference: &ReferenceConfig{Entity: entity}}
	return finish(f, opts)
}

func finish(f Field, opts []FieldOption) (Field, error) {
	if f.Name == "" {
		return Field{}, fmt.Errorf("field name is required")
	}
	if f.Label == "" {
		f.Label = f.Name
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f, nil
}

// MustField panics on a construction error. Use for static definitions.
func MustField(f Field, err error) Field {
	if err != nil {
		panic(err)
	}
	return f
}
