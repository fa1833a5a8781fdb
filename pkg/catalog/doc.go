// Package catalog loads and validates the element catalog: the YAML files
// that map page-scoped element keys to declarative locator descriptors,
// and the category bindings file that maps human-readable labels (as used
// in Gherkin steps) to those keys.
//
// The catalog is loaded once at startup and is immutable afterwards.
// Validation is deliberately fail-fast: a descriptor key that no category
// binding references, a binding that targets a missing key, or a malformed
// descriptor all abort the run before any scenario executes, so broken
// mappings never reach a live browser session.
package catalog
