package steps

import (
	"fmt"

	"github.com/cucumber/godog"
	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/journey/pkg/catalog"
)

// Fixed labels used by the composite login step and the error-message
// assertion. Register these in the category bindings file.
const (
	usernameFieldLabel = "Username"
	passwordFieldLabel = "Password"
	signInButtonLabel  = "Sign In"
	errorMessageLabel  = "Error Message"
)

// Register binds the step vocabulary to a World.
func Register(sc *godog.ScenarioContext, w *World) {
	sc.Step(`^the user navigates to the "([^"]*)" page$`, w.navigatesToPage)
	sc.Step(`^the user clicks on the "([^"]*)" button$`, w.clicksButton)
	sc.Step(`^the user clicks on the "([^"]*)" button in the "([^"]*)" modal$`, w.clicksButtonInModal)
	sc.Step(`^the user enters "([^"]*)" in the "([^"]*)" field$`, w.entersField)
	sc.Step(`^the user selects "([^"]*)" from the "([^"]*)" dropdown$`, w.selectsFromDropdown)
	sc.Step(`^the user checks the "([^"]*)" checkbox$`, w.checksCheckbox)
	sc.Step(`^the user selects the "([^"]*)" radio button$`, w.selectsRadio)
	sc.Step(`^the "([^"]*)" radio button is selected$`, w.radioIsSelected)
	sc.Step(`^the user clicks on the link "([^"]*)"$`, w.clicksLink)
	sc.Step(`^the "([^"]*)" modal appears$`, w.modalAppears)
	sc.Step(`^the "([^"]*)" modal disappears$`, w.modalDisappears)
	sc.Step(`^an error message is displayed with text "([^"]*)"$`, w.errorMessageDisplayed)
	sc.Step(`^the current URL is "([^"]*)"$`, w.currentURLIs)
	sc.Step(`^the user logs in successfully and navigates to url "([^"]*)"$`, w.logsInAndNavigates)
	sc.Step(`^a new tab opens with URL "([^"]*)"$`, w.newTabOpens)
	sc.Step(`^the user switches to the previous tab$`, w.switchesToPreviousTab)
}

// locate resolves a labeled element against the active page.
func (w *World) locate(cat catalog.Category, label string) (playwright.Locator, error) {
	active, err := w.Active()
	if err != nil {
		return nil, err
	}
	return w.resolver.Resolve(cat, label, active)
}

func (w *World) navigatesToPage(name string) error {
	page, err := w.factory.Get(pageKey(name))
	if err != nil {
		return err
	}
	return page.Navigate()
}

func (w *World) clicksButton(label string) error {
	loc, err := w.locate(catalog.CategoryButton, label)
	if err != nil {
		return err
	}
	return loc.Click()
}

func (w *World) clicksButtonInModal(label, modalLabel string) error {
	active, err := w.Active()
	if err != nil {
		return err
	}
	modal, err := w.resolver.Resolve(catalog.CategoryModal, modalLabel, active)
	if err != nil {
		return err
	}
	button, err := w.resolver.ResolveWithin(catalog.CategoryButton, label, active, modal)
	if err != nil {
		return err
	}
	return button.Click()
}

func (w *World) entersField(value, label string) error {
	loc, err := w.locate(catalog.CategoryField, label)
	if err != nil {
		return err
	}
	return loc.Fill(w.settings.ResolveValue(value))
}

func (w *World) selectsFromDropdown(option, label string) error {
	loc, err := w.locate(catalog.CategoryDropdown, label)
	if err != nil {
		return err
	}
	_, err = loc.SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{option},
	})
	return err
}

func (w *World) checksCheckbox(label string) error {
	loc, err := w.locate(catalog.CategoryCheckbox, label)
	if err != nil {
		return err
	}
	return loc.Check()
}

func (w *World) selectsRadio(label string) error {
	loc, err := w.locate(catalog.CategoryRadio, label)
	if err != nil {
		return err
	}
	return loc.Check()
}

func (w *World) radioIsSelected(label string) error {
	loc, err := w.locate(catalog.CategoryRadio, label)
	if err != nil {
		return err
	}
	return w.expect.Locator(loc).ToBeChecked()
}

func (w *World) clicksLink(label string) error {
	loc, err := w.locate(catalog.CategoryLink, label)
	if err != nil {
		return err
	}
	return loc.Click()
}

func (w *World) modalAppears(label string) error {
	loc, err := w.locate(catalog.CategoryModal, label)
	if err != nil {
		return err
	}
	return w.expect.Locator(loc).ToBeVisible()
}

func (w *World) modalDisappears(label string) error {
	loc, err := w.locate(catalog.CategoryModal, label)
	if err != nil {
		return err
	}
	return w.expect.Locator(loc).ToBeHidden()
}

func (w *World) errorMessageDisplayed(text string) error {
	loc, err := w.locate(catalog.CategoryErrorMessage, errorMessageLabel)
	if err != nil {
		return err
	}
	if err := w.expect.Locator(loc).ToBeVisible(); err != nil {
		return err
	}
	return w.expect.Locator(loc).ToContainText(text)
}

func (w *World) currentURLIs(url string) error {
	return w.expect.Page(w.CurrentPage()).ToHaveURL(w.ResolveURL(url))
}

func (w *World) logsInAndNavigates(url string) error {
	if err := w.entersField(w.settings.Username, usernameFieldLabel); err != nil {
		return fmt.Errorf("failed to enter username: %w", err)
	}
	if err := w.entersField(w.settings.Password, passwordFieldLabel); err != nil {
		return fmt.Errorf("failed to enter password: %w", err)
	}
	if err := w.clicksButton(signInButtonLabel); err != nil {
		return fmt.Errorf("failed to submit login: %w", err)
	}
	return w.currentURLIs(url)
}

func (w *World) newTabOpens(url string) error {
	p, err := w.WaitForNewPage()
	if err != nil {
		return err
	}
	if err := w.expect.Page(p).ToHaveURL(w.ResolveURL(url)); err != nil {
		return err
	}
	return w.SwitchTo(p)
}

func (w *World) switchesToPreviousTab() error {
	return w.SwitchBack()
}
