// Package browser bootstraps Playwright and manages browser sessions for
// test runs.
//
// A Session bundles one browser, context, and page. Each test session
// (one logical sequence of Gherkin steps) drives exactly one Session; a
// runner executing scenarios in parallel must give each its own, since
// nothing here is shared apart from the read-only Playwright instance.
package browser
