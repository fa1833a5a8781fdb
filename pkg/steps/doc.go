// Package steps binds the Gherkin vocabulary to the page-object core.
//
// Each step resolves the active page from the browser's current location,
// translates the human-readable element label through the category
// resolver map, and performs one Playwright action or assertion. All
// per-scenario state, including the stack of opened tabs, lives on the
// World created for that scenario; nothing is stashed globally, so
// scenarios can run concurrently each with their own browser session.
package steps
