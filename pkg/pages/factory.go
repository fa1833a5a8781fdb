package pages

import (
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/journey/pkg/catalog"
)

// Factory constructs and caches page objects for one test session. Every
// page it builds shares the same browser page handle but keeps its own
// locator state. One factory per session; the cache dies with it.
type Factory struct {
	registry *Registry
	catalog  *catalog.Catalog
	pw       playwright.Page
	cache    map[string]*Page
}

// NewFactory creates a factory over a registry and catalog, bound to one
// browser page handle.
func NewFactory(registry *Registry, cat *catalog.Catalog, pw playwright.Page) *Factory {
	return &Factory{
		registry: registry,
		catalog:  cat,
		pw:       pw,
		cache:    make(map[string]*Page),
	}
}

// Get returns the page object for a key, constructing it on first use.
// Repeated calls with the same key return the identical object until
// Reset. Key lookup is case-insensitive.
func (f *Factory) Get(key string) (*Page, error) {
	key = strings.ToLower(key)
	if p, ok := f.cache[key]; ok {
		return p, nil
	}

	def, ok := f.registry.Definition(key)
	if !ok {
		return nil, &UnknownPageKeyError{Key: key, Known: f.registry.Keys()}
	}

	p := newPage(key, def, f.pw, f.catalog)
	f.cache[key] = p
	return p, nil
}

// All returns every registered page object in registry scan order,
// constructing any that are not yet cached.
func (f *Factory) All() ([]*Page, error) {
	all := make([]*Page, 0, f.registry.Len())
	for _, key := range f.registry.Keys() {
		p, err := f.Get(key)
		if err != nil {
			return nil, err
		}
		all = append(all, p)
	}
	return all, nil
}

// ByExport returns every page object keyed by its export name
// (pageKey + "Page"), e.g. "loginPage".
func (f *Factory) ByExport() (map[string]*Page, error) {
	all, err := f.All()
	if err != nil {
		return nil, err
	}
	byExport := make(map[string]*Page, len(all))
	for _, p := range all {
		byExport[p.Key()+"Page"] = p
	}
	return byExport, nil
}

// Reset discards all cached page objects. Used when the session's page
// handle changes, e.g. after switching tabs.
func (f *Factory) Reset() {
	f.cache = make(map[string]*Page)
}

// SetPage rebinds the factory to a different browser page handle and
// clears the cache, so subsequent page objects target the new tab.
func (f *Factory) SetPage(pw playwright.Page) {
	f.pw = pw
	f.Reset()
}
