// Package pages implements the page-object core: discovery of page
// definitions from a directory scan, a per-session factory that caches
// one page object per key, resolution of whichever page the browser is
// currently on, and translation of human-readable element labels into
// locator handles on the active page.
//
// # Discovery
//
// A page definition is a YAML file named <Name>Page.yaml whose single
// top-level key is <Name>Page. The registry scans the pages directory
// once at startup; the page key is the lowercased <Name> prefix, and the
// key also names the element catalog scope the page draws its locators
// from. BasePage files are excluded. A file that matches the naming
// pattern but does not define its expected top-level key aborts the run:
// a malformed page file is a framework bug, never something to skip.
//
// # Sessions
//
// The registry and catalog are read-only after startup and safe to share.
// Everything else (factory cache, page objects) is scoped to one test
// session and must not be shared across concurrently running sessions.
package pages
