package steps

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/journey/pkg/browser"
	"github.com/entrhq/journey/pkg/config"
	"github.com/entrhq/journey/pkg/pages"
)

// assertionTimeout bounds every expect-style assertion, in milliseconds.
const assertionTimeout = 10000.0

// newTabTimeout bounds how long a scenario waits for a new tab to open.
const newTabTimeout = 10 * time.Second

// World is the per-scenario state: one browser session, one page factory,
// and the tab bookkeeping for that scenario. A World is never shared
// between scenarios.
type World struct {
	settings *config.Settings
	session  *browser.Session
	factory  *pages.Factory
	resolver *pages.ElementResolver
	expect   playwright.PlaywrightAssertions
	resolve  pages.ResolveOptions

	mu      sync.Mutex
	opened  []playwright.Page
	current playwright.Page
	history []playwright.Page
}

// NewWorld wires a World onto a browser session. The new-page listener is
// registered here, before any step acts on the page, so a tab opened by a
// later click can never be missed.
func NewWorld(session *browser.Session, settings *config.Settings, resolver *pages.ElementResolver, factory *pages.Factory) *World {
	w := &World{}
	w.bind(session, settings, resolver, factory)
	return w
}

// bind attaches a World to a session's resources. Steps are registered
// against the World pointer before the scenario's session exists, so the
// scenario hook fills it in here.
func (w *World) bind(session *browser.Session, settings *config.Settings, resolver *pages.ElementResolver, factory *pages.Factory) {
	w.settings = settings
	w.session = session
	w.factory = factory
	w.resolver = resolver
	w.expect = playwright.NewPlaywrightAssertions(assertionTimeout)
	w.resolve = pages.DefaultResolveOptions()
	w.current = session.Page
	w.opened = nil
	w.history = nil

	session.Context.OnPage(func(p playwright.Page) {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.opened = append(w.opened, p)
	})
}

// Active resolves the page object the browser is currently on.
func (w *World) Active() (*pages.Page, error) {
	all, err := w.factory.All()
	if err != nil {
		return nil, err
	}
	active, err := pages.ResolveActive(all, w.resolve)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, fmt.Errorf("could not determine the active page")
	}
	return active, nil
}

// CurrentPage returns the browser page the scenario is driving.
func (w *World) CurrentPage() playwright.Page {
	return w.current
}

// WaitForNewPage returns a page opened since the World was created that
// the scenario has not switched to yet. The listener registered in
// NewWorld has usually captured the tab already; otherwise this polls
// until the timeout.
func (w *World) WaitForNewPage() (playwright.Page, error) {
	deadline := time.Now().Add(newTabTimeout)
	for {
		if p := w.takeOpenedPage(); p != nil {
			if err := p.WaitForLoadState(); err != nil {
				return nil, fmt.Errorf("new tab did not finish loading: %w", err)
			}
			return p, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("no new tab opened within %s", newTabTimeout)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func (w *World) takeOpenedPage() playwright.Page {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.opened) == 0 {
		return nil
	}
	p := w.opened[0]
	w.opened = w.opened[1:]
	return p
}

// SwitchTo makes a page the scenario's current tab, remembering the one
// it came from. The factory is rebound so page objects target the new
// tab.
func (w *World) SwitchTo(p playwright.Page) error {
	w.mu.Lock()
	w.history = append(w.history, w.current)
	w.current = p
	w.mu.Unlock()

	w.factory.SetPage(p)
	if err := p.BringToFront(); err != nil {
		return fmt.Errorf("failed to focus tab: %w", err)
	}
	return nil
}

// SwitchBack returns to the tab the scenario most recently switched away
// from.
func (w *World) SwitchBack() error {
	w.mu.Lock()
	if len(w.history) == 0 {
		w.mu.Unlock()
		return fmt.Errorf("no previous tab to switch to")
	}
	prev := w.history[len(w.history)-1]
	w.history = w.history[:len(w.history)-1]
	w.current = prev
	w.mu.Unlock()

	w.factory.SetPage(prev)
	if err := prev.BringToFront(); err != nil {
		return fmt.Errorf("failed to focus tab: %w", err)
	}
	return nil
}

// ResolveURL turns a step's URL argument into an absolute URL, joining
// relative paths onto the configured base URL.
func (w *World) ResolveURL(arg string) string {
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return arg
	}
	base := strings.TrimSuffix(w.settings.BaseURL, "/")
	if !strings.HasPrefix(arg, "/") {
		arg = "/" + arg
	}
	return base + arg
}

// pageKey converts a page name from a feature file into a registry key:
// lowercased, spaces removed, so "Checkout Summary" maps to the
// CheckoutSummaryPage definition.
func pageKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}
