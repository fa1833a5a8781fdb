package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/journey/pkg/catalog"
)

// ResolverFunc turns the active page into a locator handle for one
// labeled element.
type ResolverFunc func(active *Page) (playwright.Locator, error)

// ElementResolver maps (category, human label) to resolver functions.
// Built once at startup from the validated category bindings; immutable
// at runtime apart from explicit Register calls during setup.
type ElementResolver struct {
	resolvers map[catalog.Category]map[string]ResolverFunc
	keys      map[catalog.Category]map[string]string
	file      string
}

// NewElementResolver builds the category resolver map from bindings. The
// bindings file name is kept for error messages, so an unknown label
// points the author at the exact file to edit.
func NewElementResolver(b catalog.Bindings, bindingsFile string) *ElementResolver {
	r := &ElementResolver{
		resolvers: make(map[catalog.Category]map[string]ResolverFunc),
		keys:      make(map[catalog.Category]map[string]string),
		file:      bindingsFile,
	}

	for cat, labels := range b {
		for label, key := range labels {
			r.register(cat, label, key, func(key string) ResolverFunc {
				return func(active *Page) (playwright.Locator, error) {
					return active.Locator(key)
				}
			}(key))
		}
	}

	return r
}

func (r *ElementResolver) register(cat catalog.Category, label, key string, fn ResolverFunc) {
	if r.resolvers[cat] == nil {
		r.resolvers[cat] = make(map[string]ResolverFunc)
		r.keys[cat] = make(map[string]string)
	}
	r.resolvers[cat][label] = fn
	if key != "" {
		r.keys[cat][label] = key
	}
}

// Register adds a custom resolver for a label, for elements that need
// more than a catalog lookup. Call during setup only.
func (r *ElementResolver) Register(cat catalog.Category, label string, fn ResolverFunc) {
	r.register(cat, label, "", fn)
}

// Resolve returns the locator for a labeled element on the active page.
// An unregistered label always fails with UnknownLabelError; it never
// silently resolves to nothing.
func (r *ElementResolver) Resolve(cat catalog.Category, label string, active *Page) (playwright.Locator, error) {
	fn, ok := r.resolvers[cat][label]
	if !ok {
		return nil, &UnknownLabelError{Category: cat, Label: label, File: r.file}
	}
	return fn(active)
}

// ResolveWithin returns the locator for a labeled element scoped to a
// root locator, e.g. a button inside a modal. Only binding-backed labels
// can be scoped; a custom resolver has no descriptor to rebuild.
func (r *ElementResolver) ResolveWithin(cat catalog.Category, label string, active *Page, root playwright.Locator) (playwright.Locator, error) {
	if _, ok := r.resolvers[cat][label]; !ok {
		return nil, &UnknownLabelError{Category: cat, Label: label, File: r.file}
	}
	key, ok := r.keys[cat][label]
	if !ok {
		return nil, fmt.Errorf("%s %q uses a custom resolver and cannot be scoped to another element", cat, label)
	}
	return active.LocatorWithin(root, key)
}

// Key returns the element key bound to a label, if the label came from
// the bindings file.
func (r *ElementResolver) Key(cat catalog.Category, label string) (string, bool) {
	key, ok := r.keys[cat][label]
	return key, ok
}
