package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/journey/pkg/catalog"
	"github.com/entrhq/journey/pkg/locator"
)

// Page is a runtime page object: a browser page handle, the page's
// declarative definition, and the element descriptors for its catalog
// scope plus the shared common scope. Locator handles are built lazily
// and cached; building one performs no DOM query.
type Page struct {
	key    string
	def    Definition
	pw     playwright.Page
	scoped map[string]locator.Descriptor
	common map[string]locator.Descriptor
	built  map[string]playwright.Locator

	// currentURL reads the browser's current location. Split out from
	// the playwright handle so the predicate can be exercised without a
	// live browser.
	currentURL func() string
}

func newPage(key string, def Definition, pw playwright.Page, cat *catalog.Catalog) *Page {
	p := &Page{
		key:   key,
		def:   def,
		pw:    pw,
		built: make(map[string]playwright.Locator),
	}
	if cat != nil {
		p.scoped = cat.Scope(key)
		p.common = cat.Scope(catalog.CommonScope)
	}
	if pw != nil {
		p.currentURL = pw.URL
	}
	return p
}

// Key returns the page key, e.g. "login".
func (p *Page) Key() string {
	return p.key
}

// BaseURL returns the configured base URL, or "" if the page has none.
func (p *Page) BaseURL() string {
	return p.def.URL
}

// IsAt reports whether the browser is currently on this page. A page
// with no configured URL never matches.
func (p *Page) IsAt() bool {
	if p.def.URL == "" || p.currentURL == nil {
		return false
	}
	return MatchesURL(p.currentURL(), p.def.URL)
}

// Navigate drives the browser to the page's base URL.
func (p *Page) Navigate() error {
	if p.def.URL == "" {
		return fmt.Errorf("page %q has no configured URL to navigate to", p.key)
	}
	if _, err := p.pw.Goto(p.def.URL); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", p.def.URL, err)
	}
	return nil
}

// Descriptor returns the element descriptor for a key, preferring the
// page's own scope over the common scope.
func (p *Page) Descriptor(key string) (locator.Descriptor, bool) {
	if d, ok := p.scoped[key]; ok {
		return d, true
	}
	d, ok := p.common[key]
	return d, ok
}

// Locator returns the locator handle for an element key, building and
// caching it on first use.
func (p *Page) Locator(key string) (playwright.Locator, error) {
	if loc, ok := p.built[key]; ok {
		return loc, nil
	}

	desc, ok := p.Descriptor(key)
	if !ok {
		return nil, fmt.Errorf("page %q has no element %q (checked its scope and the common scope)", p.key, key)
	}

	loc, err := locator.Build(p.pw, desc)
	if err != nil {
		return nil, err
	}
	p.built[key] = loc
	return loc, nil
}

// LocatorWithin returns the locator for an element key scoped to another
// locator, e.g. a button inside a modal. Scoped locators are not cached;
// the root differs per call.
func (p *Page) LocatorWithin(root playwright.Locator, key string) (playwright.Locator, error) {
	desc, ok := p.Descriptor(key)
	if !ok {
		return nil, fmt.Errorf("page %q has no element %q (checked its scope and the common scope)", p.key, key)
	}
	return locator.BuildWithin(root, desc)
}

// MatchesURL reports whether current is on the page identified by base:
// both are lowercased and stripped of one trailing slash, then compared
// for equality or base-prefix (so deep links under a page's route still
// match). An empty base never matches.
func MatchesURL(current, base string) bool {
	if base == "" {
		return false
	}
	current = normalizeURL(current)
	base = normalizeURL(base)
	return current == base || strings.HasPrefix(current, base)
}

func normalizeURL(u string) string {
	u = strings.ToLower(strings.TrimSpace(u))
	return strings.TrimSuffix(u, "/")
}
