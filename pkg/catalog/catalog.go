package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/journey/pkg/locator"
)

// CommonScope is the shared element scope merged into every page.
const CommonScope = "common"

// Catalog is the immutable element catalog: page scope -> element key ->
// descriptor. Built once by Load; read-only afterwards.
type Catalog struct {
	scopes map[string]map[string]locator.Descriptor
	files  map[string]string
}

// Load reads every YAML file in dir as one element scope. The scope name
// is the lowercased file name without extension; each file holds a flat
// mapping of element key to descriptor. Every descriptor is validated on
// load, so an ambiguous or empty descriptor fails here rather than in the
// middle of a scenario.
func Load(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read element catalog directory %s: %w", dir, err)
	}

	c := &Catalog{
		scopes: make(map[string]map[string]locator.Descriptor),
		files:  make(map[string]string),
	}

	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}

		scope := strings.ToLower(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
		if _, exists := c.scopes[scope]; exists {
			return nil, fmt.Errorf("duplicate element scope %q: %s and %s", scope, c.files[scope], entry.Name())
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read element file %s: %w", path, err)
		}

		var elements map[string]locator.Descriptor
		if err := yaml.Unmarshal(data, &elements); err != nil {
			return nil, fmt.Errorf("failed to parse element file %s: %w", path, err)
		}

		for key, desc := range elements {
			if err := desc.Validate(key, entry.Name()); err != nil {
				return nil, err
			}
		}

		c.scopes[scope] = elements
		c.files[scope] = entry.Name()
	}

	return c, nil
}

// Scope returns the descriptors for one page scope. The returned map is
// shared and must not be modified. Returns nil if the scope does not exist.
func (c *Catalog) Scope(name string) map[string]locator.Descriptor {
	return c.scopes[strings.ToLower(name)]
}

// HasScope reports whether the catalog defines the named scope.
func (c *Catalog) HasScope(name string) bool {
	_, ok := c.scopes[strings.ToLower(name)]
	return ok
}

// Scopes returns all scope names in sorted order.
func (c *Catalog) Scopes() []string {
	names := make([]string, 0, len(c.scopes))
	for name := range c.scopes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// File returns the file name a scope was loaded from, for error messages.
func (c *Catalog) File(scope string) string {
	return c.files[strings.ToLower(scope)]
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
