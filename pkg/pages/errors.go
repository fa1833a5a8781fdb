package pages

import (
	"fmt"
	"strings"

	"github.com/entrhq/journey/pkg/catalog"
)

// MissingExportError reports a page definition file that does not define
// the top-level key its file name promises.
type MissingExportError struct {
	File   string
	Export string
}

func (e *MissingExportError) Error() string {
	return fmt.Sprintf("page definition %s must define exactly one top-level key %q", e.File, e.Export)
}

// UnknownPageKeyError reports a step referencing a page that the registry
// scan never discovered.
type UnknownPageKeyError struct {
	Key   string
	Known []string
}

func (e *UnknownPageKeyError) Error() string {
	return fmt.Sprintf("unknown page %q (registered pages: %s)", e.Key, strings.Join(e.Known, ", "))
}

// UnknownLabelError reports an element label with no resolver in the
// requested category. The message names the bindings file so the author
// knows exactly where to register the label.
type UnknownLabelError struct {
	Category catalog.Category
	Label    string
	File     string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("no %s registered under label %q; add it to the %s section of %s",
		e.Category, e.Label, e.Category, e.File)
}

// NoActivePageError reports that no page predicate matched the current
// browser location while strict resolution was requested.
type NoActivePageError struct {
	Candidates []string
}

func (e *NoActivePageError) Error() string {
	return fmt.Sprintf("no page matches the current browser location (candidates: %s)",
		strings.Join(e.Candidates, ", "))
}
