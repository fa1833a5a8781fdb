package pages

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is the declarative part of a page: its base URL. A page with
// no URL can still hold elements but never matches the active-page
// predicate.
type Definition struct {
	URL string `yaml:"url,omitempty"`
}

// pageFilePattern matches page definition file names: an upper-cased name
// followed by the literal Page suffix, e.g. LoginPage.yaml.
var pageFilePattern = regexp.MustCompile(`^([A-Z][A-Za-z0-9]*)Page\.(yaml|yml)$`)

// Registry maps page keys to their definitions, in directory scan order.
// Built once per process by BuildRegistry; immutable afterwards.
type Registry struct {
	keys  []string
	defs  map[string]Definition
	files map[string]string
}

// BuildRegistry scans dir for page definition files. For each file
// <Name>Page.yaml the page key is the lowercased <Name> and the file must
// contain exactly one top-level key, <Name>Page, holding the definition.
// BasePage files are skipped; any other malformed file is fatal. The scan
// is synchronous and happens once at startup, never on the step hot path.
func BuildRegistry(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages directory %s: %w", dir, err)
	}

	r := &Registry{
		defs:  make(map[string]Definition),
		files: make(map[string]string),
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		match := pageFilePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}

		name := match[1]
		if name == "Base" {
			continue
		}

		export := name + "Page"
		key := strings.ToLower(name)
		if prev, exists := r.files[key]; exists {
			return nil, fmt.Errorf("duplicate page key %q: %s and %s", key, prev, entry.Name())
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read page definition %s: %w", path, err)
		}

		var doc map[string]Definition
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse page definition %s: %w", path, err)
		}

		def, ok := doc[export]
		if !ok || len(doc) != 1 {
			return nil, &MissingExportError{File: entry.Name(), Export: export}
		}

		r.keys = append(r.keys, key)
		r.defs[key] = def
		r.files[key] = entry.Name()
	}

	return r, nil
}

// ApplyBaseURL resolves relative page URLs (starting with "/") against
// the application base URL. Must be called once at startup, before the
// registry is shared with any session.
func (r *Registry) ApplyBaseURL(base string) {
	base = strings.TrimSuffix(base, "/")
	for key, def := range r.defs {
		if strings.HasPrefix(def.URL, "/") {
			def.URL = base + def.URL
			r.defs[key] = def
		}
	}
}

// Keys returns the page keys in scan order. The returned slice is shared
// and must not be modified.
func (r *Registry) Keys() []string {
	return r.keys
}

// Definition returns the definition for a page key.
func (r *Registry) Definition(key string) (Definition, bool) {
	def, ok := r.defs[strings.ToLower(key)]
	return def, ok
}

// Has reports whether the registry contains the page key.
func (r *Registry) Has(key string) bool {
	_, ok := r.defs[strings.ToLower(key)]
	return ok
}

// Len returns the number of registered pages.
func (r *Registry) Len() int {
	return len(r.keys)
}
