package locator

import (
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Build constructs a Playwright locator for the descriptor, scoped to the
// page. The result is a deferred query: no DOM access happens until an
// action or assertion uses the locator.
func Build(page playwright.Page, d Descriptor) (playwright.Locator, error) {
	if err := d.Validate("", ""); err != nil {
		return nil, err
	}

	switch {
	case d.Role != "":
		opts := playwright.PageGetByRoleOptions{}
		if d.Name != "" {
			opts.Name = d.Name
		}
		if d.Exact {
			opts.Exact = playwright.Bool(true)
		}
		return page.GetByRole(ariaRole(d.Role), opts), nil
	case d.TestID != "":
		return page.GetByTestId(d.TestID), nil
	case d.Text != "":
		return page.GetByText(d.Text, playwright.PageGetByTextOptions{Exact: exactFlag(d)}), nil
	case d.Placeholder != "":
		return page.GetByPlaceholder(d.Placeholder, playwright.PageGetByPlaceholderOptions{Exact: exactFlag(d)}), nil
	case d.Label != "":
		return page.GetByLabel(d.Label, playwright.PageGetByLabelOptions{Exact: exactFlag(d)}), nil
	case d.AltText != "":
		return page.GetByAltText(d.AltText, playwright.PageGetByAltTextOptions{Exact: exactFlag(d)}), nil
	case d.Title != "":
		return page.GetByTitle(d.Title, playwright.PageGetByTitleOptions{Exact: exactFlag(d)}), nil
	case d.Frame != nil:
		return page.FrameLocator(d.Frame.Selector).Locator(d.Frame.Locator), nil
	default:
		return page.Locator(d.Selector), nil
	}
}

// BuildWithin constructs a locator for the descriptor scoped to another
// locator, e.g. a control inside a modal.
func BuildWithin(root playwright.Locator, d Descriptor) (playwright.Locator, error) {
	if err := d.Validate("", ""); err != nil {
		return nil, err
	}

	switch {
	case d.Role != "":
		opts := playwright.LocatorGetByRoleOptions{}
		if d.Name != "" {
			opts.Name = d.Name
		}
		if d.Exact {
			opts.Exact = playwright.Bool(true)
		}
		return root.GetByRole(ariaRole(d.Role), opts), nil
	case d.TestID != "":
		return root.GetByTestId(d.TestID), nil
	case d.Text != "":
		return root.GetByText(d.Text, playwright.LocatorGetByTextOptions{Exact: exactFlag(d)}), nil
	case d.Placeholder != "":
		return root.GetByPlaceholder(d.Placeholder, playwright.LocatorGetByPlaceholderOptions{Exact: exactFlag(d)}), nil
	case d.Label != "":
		return root.GetByLabel(d.Label, playwright.LocatorGetByLabelOptions{Exact: exactFlag(d)}), nil
	case d.AltText != "":
		return root.GetByAltText(d.AltText, playwright.LocatorGetByAltTextOptions{Exact: exactFlag(d)}), nil
	case d.Title != "":
		return root.GetByTitle(d.Title, playwright.LocatorGetByTitleOptions{Exact: exactFlag(d)}), nil
	case d.Frame != nil:
		return root.FrameLocator(d.Frame.Selector).Locator(d.Frame.Locator), nil
	default:
		return root.Locator(d.Selector), nil
	}
}

func ariaRole(role string) playwright.AriaRole {
	return playwright.AriaRole(strings.ToLower(role))
}

func exactFlag(d Descriptor) *bool {
	if d.Exact {
		return playwright.Bool(true)
	}
	return nil
}
