// Package locator translates declarative element descriptors into
// Playwright locator handles.
//
// A Descriptor is a tagged record naming exactly one way to find an
// element: by ARIA role, test id, visible text, placeholder, label,
// alt text, title, frame, or raw CSS/XPath selector. Descriptors are
// authored in the element catalog YAML files and validated eagerly at
// startup; building a locator from a valid descriptor is a pure,
// deferred operation that performs no DOM query.
package locator
