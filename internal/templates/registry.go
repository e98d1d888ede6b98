// Package templates holds the static, read-only collection of
// per-manufacturer extraction templates. The registry is built once at
// startup and never mutated afterwards, so lookups are safe for concurrent
// use without locking.
package templates

import (
	"fmt"

	"github.com/attriflow/backend/internal/domain"
)

// Registry is an immutable lookup over the registered manufacturer templates
type Registry struct {
	ordered    []*domain.ManufacturerTemplate
	byName     map[string]*domain.ManufacturerTemplate
	byCategory map[domain.TemplateCategory][]*domain.ManufacturerTemplate
	fallback   *domain.ManufacturerTemplate
}

// NewRegistry builds the registry from the built-in template set, validating
// every template at load time.
func NewRegistry() (*Registry, error) {
	return buildRegistry(builtinTemplates())
}

func buildRegistry(list []*domain.ManufacturerTemplate) (*Registry, error) {
	r := &Registry{
		byName:     make(map[string]*domain.ManufacturerTemplate, len(list)),
		byCategory: make(map[domain.TemplateCategory][]*domain.ManufacturerTemplate),
		fallback:   defaultTemplate(),
	}

	if err := r.fallback.Validate(); err != nil {
		return nil, fmt.Errorf("invalid default template: %w", err)
	}

	for _, tmpl := range list {
		if err := tmpl.Validate(); err != nil {
			return nil, fmt.Errorf("invalid template: %w", err)
		}
		if _, exists := r.byName[tmpl.ManufacturerName]; exists {
			return nil, fmt.Errorf("duplicate template for %q", tmpl.ManufacturerName)
		}
		r.ordered = append(r.ordered, tmpl)
		r.byName[tmpl.ManufacturerName] = tmpl
		r.byCategory[tmpl.Category] = append(r.byCategory[tmpl.Category], tmpl)
	}

	return r, nil
}

// Get returns the template registered for the given manufacturer name
func (r *Registry) Get(manufacturerName string) (*domain.ManufacturerTemplate, bool) {
	tmpl, ok := r.byName[manufacturerName]
	return tmpl, ok
}

// DefaultForCategory returns the first registered template whose category
// matches, falling back to the fixed default template.
func (r *Registry) DefaultForCategory(category domain.TemplateCategory) *domain.ManufacturerTemplate {
	if list := r.byCategory[category]; len(list) > 0 {
		return list[0]
	}
	return r.fallback
}

// Default returns the fixed fallback template
func (r *Registry) Default() *domain.ManufacturerTemplate {
	return r.fallback
}

// Names returns the manufacturer names in registry order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ordered))
	for _, tmpl := range r.ordered {
		names = append(names, tmpl.ManufacturerName)
	}
	return names
}

// Size returns the number of registered templates
func (r *Registry) Size() int {
	return len(r.ordered)
}
