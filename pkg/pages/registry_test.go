package pages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePageFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestBuildRegistry(t *testing.T) {
	dir := t.TempDir()
	writePageFile(t, dir, "LoginPage.yaml", "LoginPage:\n  url: https://x.test/login\n")
	writePageFile(t, dir, "ShopPage.yaml", "ShopPage:\n  url: https://x.test/shop\n")
	writePageFile(t, dir, "BasePage.yaml", "BasePage:\n  url: https://x.test\n")
	writePageFile(t, dir, "helpers.yaml", "not: a page\n")
	writePageFile(t, dir, "readme.md", "docs\n")

	r, err := BuildRegistry(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"login", "shop"}, r.Keys(), "scan order, base page and non-matching files excluded")
	assert.Equal(t, 2, r.Len())

	def, ok := r.Definition("login")
	require.True(t, ok)
	assert.Equal(t, "https://x.test/login", def.URL)

	assert.True(t, r.Has("Shop"), "key lookup is case-insensitive")
	assert.False(t, r.Has("checkout"))
}

func TestBuildRegistryKeyDerivation(t *testing.T) {
	dir := t.TempDir()
	writePageFile(t, dir, "CheckoutSummaryPage.yaml", "CheckoutSummaryPage:\n  url: https://x.test/checkout\n")

	r, err := BuildRegistry(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"checkoutsummary"}, r.Keys())
}

func TestBuildRegistryIgnoresLowercasePrefix(t *testing.T) {
	dir := t.TempDir()
	writePageFile(t, dir, "loginPage.yaml", "loginPage:\n  url: https://x.test/login\n")

	r, err := BuildRegistry(dir)
	require.NoError(t, err)
	assert.Empty(t, r.Keys(), "Page suffix convention requires an upper-cased name")
}

func TestBuildRegistryMissingExport(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "wrong top-level key",
			content: "loginPage:\n  url: https://x.test/login\n",
		},
		{
			name:    "two top-level keys",
			content: "LoginPage:\n  url: https://x.test/login\nExtraPage:\n  url: https://x.test/extra\n",
		},
		{
			name:    "empty file",
			content: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writePageFile(t, dir, "LoginPage.yaml", tt.content)

			_, err := BuildRegistry(dir)
			require.Error(t, err)

			var missing *MissingExportError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, "LoginPage.yaml", missing.File)
			assert.Equal(t, "LoginPage", missing.Export)
			assert.Contains(t, err.Error(), "LoginPage.yaml")
			assert.Contains(t, err.Error(), `"LoginPage"`)
		})
	}
}

func TestApplyBaseURL(t *testing.T) {
	dir := t.TempDir()
	writePageFile(t, dir, "LoginPage.yaml", "LoginPage:\n  url: /login\n")
	writePageFile(t, dir, "ShopPage.yaml", "ShopPage:\n  url: https://other.test/shop\n")
	writePageFile(t, dir, "MenuPage.yaml", "MenuPage: {}\n")

	r, err := BuildRegistry(dir)
	require.NoError(t, err)
	r.ApplyBaseURL("https://x.test/")

	login, _ := r.Definition("login")
	assert.Equal(t, "https://x.test/login", login.URL, "relative urls join the base")

	shop, _ := r.Definition("shop")
	assert.Equal(t, "https://other.test/shop", shop.URL, "absolute urls are untouched")

	menu, _ := r.Definition("menu")
	assert.Empty(t, menu.URL)
}

func TestBuildRegistryDuplicateKey(t *testing.T) {
	dir := t.TempDir()
	writePageFile(t, dir, "LoginPage.yaml", "LoginPage:\n  url: https://x.test/login\n")
	writePageFile(t, dir, "LoginPage.yml", "LoginPage:\n  url: https://x.test/login\n")

	_, err := BuildRegistry(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate page key")
}

func TestBuildRegistryMissingDirectory(t *testing.T) {
	_, err := BuildRegistry(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
