package catalog

import (
	"fmt"
	"sort"
)

// UnregisteredElementError reports a catalog element that no category
// binding references. Such an element could never be reached from a
// Gherkin step, so it is treated as a broken mapping rather than dead
// weight.
type UnregisteredElementError struct {
	Key   string
	Scope string
	File  string
}

func (e *UnregisteredElementError) Error() string {
	return fmt.Sprintf("catalog element %q in %s is not referenced by any category binding; register it in the category bindings file or remove it",
		e.Key, e.File)
}

// Validate cross-checks the catalog against the category bindings:
// every binding must target an element key that exists in at least one
// scope, and every catalog element must be referenced by at least one
// binding. Both directions fail fast at startup; nothing here runs on
// the step hot path.
func Validate(c *Catalog, b Bindings, bindingsFile string) error {
	referenced := make(map[string]bool)

	for _, cat := range Categories {
		labels := b[cat]

		// Deterministic error order for reproducible failures.
		sorted := make([]string, 0, len(labels))
		for label := range labels {
			sorted = append(sorted, label)
		}
		sort.Strings(sorted)

		for _, label := range sorted {
			key := labels[label]
			if !c.hasKey(key) {
				return fmt.Errorf("category binding %s/%q in %s targets element %q, which is not defined in any catalog scope",
					cat, label, bindingsFile, key)
			}
			referenced[key] = true
		}
	}

	for _, scope := range c.Scopes() {
		keys := make([]string, 0, len(c.scopes[scope]))
		for key := range c.scopes[scope] {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			if !referenced[key] {
				return &UnregisteredElementError{Key: key, Scope: scope, File: c.files[scope]}
			}
		}
	}

	return nil
}

// hasKey reports whether any scope defines the element key.
func (c *Catalog) hasKey(key string) bool {
	for _, elements := range c.scopes {
		if _, ok := elements[key]; ok {
			return true
		}
	}
	return false
}
