package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category is the semantic role of an element, used to namespace the
// human-readable labels that Gherkin steps refer to.
type Category string

const (
	CategoryButton       Category = "button"
	CategoryField        Category = "field"
	CategoryDropdown     Category = "dropdown"
	CategoryCheckbox     Category = "checkbox"
	CategoryRadio        Category = "radio"
	CategoryLink         Category = "link"
	CategoryModal        Category = "modal"
	CategoryErrorMessage Category = "error-message"
)

// Categories lists every recognized category.
var Categories = []Category{
	CategoryButton,
	CategoryField,
	CategoryDropdown,
	CategoryCheckbox,
	CategoryRadio,
	CategoryLink,
	CategoryModal,
	CategoryErrorMessage,
}

// Bindings maps a category to its label -> element key entries, e.g.
// button -> "Sign In" -> signInButton. Loaded once at startup; immutable.
type Bindings map[Category]map[string]string

// LoadBindings reads the category bindings YAML file. Unknown category
// names are rejected so a typo in the file surfaces immediately.
func LoadBindings(path string) (Bindings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read category bindings %s: %w", path, err)
	}

	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse category bindings %s: %w", path, err)
	}

	known := make(map[Category]bool, len(Categories))
	for _, cat := range Categories {
		known[cat] = true
	}

	bindings := make(Bindings, len(raw))
	for name, labels := range raw {
		cat := Category(name)
		if !known[cat] {
			return nil, fmt.Errorf("unknown category %q in %s (recognized: %v)", name, path, Categories)
		}
		bindings[cat] = labels
	}

	return bindings, nil
}

// Labels returns the label -> key entries for one category. Returns nil
// if the category has no bindings.
func (b Bindings) Labels(cat Category) map[string]string {
	return b[cat]
}
