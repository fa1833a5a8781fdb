package steps

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cucumber/godog"

	"github.com/entrhq/journey/pkg/browser"
	"github.com/entrhq/journey/pkg/catalog"
	"github.com/entrhq/journey/pkg/config"
	"github.com/entrhq/journey/pkg/logging"
	"github.com/entrhq/journey/pkg/pages"
)

// Config locates the suite's inputs and controls how it runs.
type Config struct {
	// FeaturesDir holds the .feature files.
	FeaturesDir string

	// PagesDir holds the <Name>Page.yaml definitions.
	PagesDir string

	// ElementsDir holds the per-scope element descriptor files.
	ElementsDir string

	// BindingsFile is the category bindings YAML file.
	BindingsFile string

	// Headless controls the browser mode for every scenario session.
	Headless bool

	// Tags optionally filters scenarios, godog tag expression syntax.
	Tags string

	// Format is the godog output format (default "pretty").
	Format string

	// Concurrency is the number of scenarios run in parallel; each gets
	// its own browser session (default 1).
	Concurrency int
}

// Suite owns the shared, read-only startup state (settings, registry,
// catalog, resolver) and runs scenarios against it. Everything mutable
// is created per scenario.
type Suite struct {
	cfg      Config
	settings *config.Settings
	registry *pages.Registry
	catalog  *catalog.Catalog
	resolver *pages.ElementResolver
	manager  *browser.SessionManager
	log      *logging.Logger
}

// NewSuite loads and validates everything the run needs: environment
// settings, the page registry, the element catalog, and the category
// bindings. Any failure here aborts the whole run before a single
// scenario executes; a broken mapping is a framework bug, not a test
// result.
func NewSuite(cfg Config) (*Suite, error) {
	log, _ := logging.NewLogger("suite")

	settings, err := config.Load()
	if err != nil {
		log.Errorf("settings: %v", err)
		return nil, err
	}

	registry, err := pages.BuildRegistry(cfg.PagesDir)
	if err != nil {
		log.Errorf("page registry: %v", err)
		return nil, err
	}
	registry.ApplyBaseURL(settings.BaseURL)
	log.Infof("registered %d pages from %s: %v", registry.Len(), cfg.PagesDir, registry.Keys())

	cat, err := catalog.Load(cfg.ElementsDir)
	if err != nil {
		log.Errorf("element catalog: %v", err)
		return nil, err
	}
	log.Infof("loaded element scopes from %s: %v", cfg.ElementsDir, cat.Scopes())

	bindingsName := filepath.Base(cfg.BindingsFile)
	bindings, err := catalog.LoadBindings(cfg.BindingsFile)
	if err != nil {
		log.Errorf("category bindings: %v", err)
		return nil, err
	}
	if err := catalog.Validate(cat, bindings, bindingsName); err != nil {
		log.Errorf("catalog validation: %v", err)
		return nil, err
	}

	manager := browser.NewSessionManager()
	if err := manager.Initialize(); err != nil {
		log.Errorf("browser: %v", err)
		return nil, err
	}

	return &Suite{
		cfg:      cfg,
		settings: settings,
		registry: registry,
		catalog:  cat,
		resolver: pages.NewElementResolver(bindings, bindingsName),
		manager:  manager,
		log:      log,
	}, nil
}

// Run executes the suite and returns the godog exit status.
func (s *Suite) Run() int {
	format := s.cfg.Format
	if format == "" {
		format = "pretty"
	}
	concurrency := s.cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > browser.DefaultMaxSessions {
		s.manager.SetMaxSessions(concurrency)
	}

	ts := godog.TestSuite{
		Name:                "journey",
		ScenarioInitializer: s.InitializeScenario,
		Options: &godog.Options{
			Format:      format,
			Paths:       []string{s.cfg.FeaturesDir},
			Tags:        s.cfg.Tags,
			Concurrency: concurrency,
			Strict:      true,
		},
	}

	status := ts.Run()
	s.log.Infof("suite finished with status %d", status)
	return status
}

// Shutdown releases the browser resources.
func (s *Suite) Shutdown() {
	if err := s.manager.Shutdown(); err != nil {
		s.log.Errorf("shutdown: %v", err)
	}
	s.log.Close()
}

// InitializeScenario gives each scenario its own browser session, page
// factory, and World. Nothing mutable is shared between scenarios, so
// they can run concurrently.
func (s *Suite) InitializeScenario(sc *godog.ScenarioContext) {
	w := &World{}
	Register(sc, w)

	sc.Before(func(ctx context.Context, scn *godog.Scenario) (context.Context, error) {
		session, err := s.manager.StartSession(browser.Options{Headless: s.cfg.Headless})
		if err != nil {
			return ctx, fmt.Errorf("failed to start browser session for %q: %w", scn.Name, err)
		}
		s.log.Debugf("scenario %q using session %s", scn.Name, session.ID)

		factory := pages.NewFactory(s.registry, s.catalog, session.Page)
		w.bind(session, s.settings, s.resolver, factory)
		return ctx, nil
	})

	sc.After(func(ctx context.Context, scn *godog.Scenario, err error) (context.Context, error) {
		if err != nil {
			s.log.Warnf("scenario %q failed: %v", scn.Name, err)
		}
		if w.session != nil {
			if cerr := s.manager.CloseSession(w.session.ID); cerr != nil {
				s.log.Errorf("failed to close session %s: %v", w.session.ID, cerr)
			}
		}
		return ctx, err
	})
}
