package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveActiveReturnsMatchingPage(t *testing.T) {
	current := "https://x.test/shop"
	candidates := []*Page{
		testPage("login", "https://x.test/login", current),
		testPage("shop", "https://x.test/shop", current),
		testPage("checkout", "https://x.test/checkout", current),
	}

	// The matching page wins regardless of its position.
	for i := range candidates {
		rotated := append(append([]*Page{}, candidates[i:]...), candidates[:i]...)

		active, err := ResolveActive(rotated, DefaultResolveOptions())
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, "shop", active.Key())
	}
}

func TestResolveActiveRegistrationOrderDoesNotMask(t *testing.T) {
	// Login is registered first; after navigating to /shop the shop page
	// must still win.
	current := "https://x.test/shop"
	candidates := []*Page{
		testPage("login", "https://x.test/login", current),
		testPage("shop", "https://x.test/shop", current),
	}

	active, err := ResolveActive(candidates, DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, "shop", active.Key())
}

func TestResolveActiveNoMatch(t *testing.T) {
	current := "https://x.test/elsewhere"
	candidates := []*Page{
		testPage("login", "https://x.test/login", current),
		testPage("shop", "https://x.test/shop", current),
	}

	t.Run("falls back to first by default", func(t *testing.T) {
		active, err := ResolveActive(candidates, DefaultResolveOptions())
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, "login", active.Key())
	})

	t.Run("returns nil when both flags are off", func(t *testing.T) {
		active, err := ResolveActive(candidates, ResolveOptions{})
		require.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("fails in strict mode listing candidates", func(t *testing.T) {
		_, err := ResolveActive(candidates, ResolveOptions{ThrowOnNotFound: true})
		require.Error(t, err)

		var noActive *NoActivePageError
		require.ErrorAs(t, err, &noActive)
		assert.Equal(t, []string{"login", "shop"}, noActive.Candidates)
		assert.Contains(t, err.Error(), "login")
		assert.Contains(t, err.Error(), "shop")
	})
}

func TestResolveActiveFirstMatchWins(t *testing.T) {
	// Both /shop and /shop/items match a prefix; iteration order decides.
	current := "https://x.test/shop/items"
	candidates := []*Page{
		testPage("shop", "https://x.test/shop", current),
		testPage("items", "https://x.test/shop/items", current),
	}

	active, err := ResolveActive(candidates, DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, "shop", active.Key())
}

func TestResolveActiveEmptyCandidates(t *testing.T) {
	active, err := ResolveActive(nil, DefaultResolveOptions())
	require.NoError(t, err)
	assert.Nil(t, active)

	_, err = ResolveActive(nil, ResolveOptions{ThrowOnNotFound: true})
	assert.Error(t, err)
}
