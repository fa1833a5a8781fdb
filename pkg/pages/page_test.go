package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testPage builds a page object with a fixed current-URL reading, no
// browser attached.
func testPage(key, baseURL, currentURL string) *Page {
	p := newPage(key, Definition{URL: baseURL}, nil, nil)
	p.currentURL = func() string { return currentURL }
	return p
}

func TestMatchesURL(t *testing.T) {
	tests := []struct {
		name    string
		current string
		base    string
		want    bool
	}{
		{
			name:    "exact match",
			current: "https://x.test/shop",
			base:    "https://x.test/shop",
			want:    true,
		},
		{
			name:    "case and trailing slash insensitive",
			current: "https://x.test/SHOP",
			base:    "https://x.test/shop/",
			want:    true,
		},
		{
			name:    "deep link under the base route",
			current: "https://x.test/shop/items/42",
			base:    "https://x.test/shop",
			want:    true,
		},
		{
			name:    "different route",
			current: "https://x.test/login",
			base:    "https://x.test/shop",
			want:    false,
		},
		{
			name:    "base is not a prefix of current",
			current: "https://x.test",
			base:    "https://x.test/shop",
			want:    false,
		},
		{
			name:    "empty base never matches",
			current: "https://x.test/shop",
			base:    "",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesURL(tt.current, tt.base))
		})
	}
}

func TestPageIsAt(t *testing.T) {
	t.Run("matches configured url", func(t *testing.T) {
		p := testPage("shop", "https://x.test/shop/", "https://x.test/SHOP")
		assert.True(t, p.IsAt())
	})

	t.Run("page without url never matches", func(t *testing.T) {
		p := testPage("menu", "", "https://x.test/menu")
		assert.False(t, p.IsAt())
	})

	t.Run("page without browser handle never matches", func(t *testing.T) {
		p := newPage("shop", Definition{URL: "https://x.test/shop"}, nil, nil)
		assert.False(t, p.IsAt())
	})
}

func TestPageAccessors(t *testing.T) {
	p := testPage("shop", "https://x.test/shop", "https://x.test/shop")
	assert.Equal(t, "shop", p.Key())
	assert.Equal(t, "https://x.test/shop", p.BaseURL())
}

func TestPageLocatorUnknownKey(t *testing.T) {
	p := testPage("shop", "https://x.test/shop", "https://x.test/shop")

	_, err := p.Locator("cartBadge")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"shop"`)
	assert.Contains(t, err.Error(), `"cartBadge"`)
}

func TestPageNavigateWithoutURL(t *testing.T) {
	p := testPage("menu", "", "about:blank")
	assert.Error(t, p.Navigate())
}
