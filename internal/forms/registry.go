package forms

import (
	"fmt"
	"sort"
)

// Form is a named, ordered set of field descriptors for one entity.
type Form struct {
	Entity string  `json:"entity"`
	Label  string  `json:"label"`
	Fields []Field `json:"fields"`

	// Lines describes the embedded line items table, when the entity has one
	Lines []Field `json:"lines,omitempty"`
}

// NewForm validates and builds a form definition.
func NewForm(entity, label string, fields []Field, lines []Field) (Form, error) {
	if entity == "" {
		return Form{}, fmt.Errorf("form entity is required")
	}
	if len(fields) == 0 {
		return Form{}, fmt.Errorf("form %s: at least one field is required", entity)
	}
	if err := uniqueNames(entity, fields); err != nil {
		return Form{}, err
	}
	if err := uniqueNames(entity, lines); err != nil {
		return Form{}, err
	}
	if label == "" {
		label = entity
	}
	return Form{Entity: entity, Label: label, Fields: fields, Lines: lines}, nil
}

func uniqueNames(entity string, fields []Field) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if !f.Kind.IsValid() {
			return fmt.Errorf("form %s: field %s has unknown kind %q", entity, f.Name, f.Kind)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("form %s: duplicate field %q", entity, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// Registry stores form definitions by entity name.
type Registry struct {
	forms map[string]Form
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{forms: make(map[string]Form)}
}

// Register adds a form, rejecting duplicates.
func (r *Registry) Register(form Form) error {
	if _, exists := r.forms[form.Entity]; exists {
		return fmt.Errorf("form %s already registered", form.Entity)
	}
	r.forms[form.Entity] = form
	return nil
}

// Get returns the form for an entity.
func (r *Registry) Get(entity string) (Form, bool) {
	f, ok := r.forms[entity]
	return f, ok
}

// List returns all forms sorted by entity name.
func (r *Registry) List() []Form {
	list := make([]Form, 0, len(r.forms))
	for _, f := range r.forms {
		list = append(list, f)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Entity < list[j].Entity })
	return list
}
