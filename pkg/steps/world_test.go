package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/entrhq/journey/pkg/config"
)

func TestPageKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"login", "login"},
		{"Login", "login"},
		{"Checkout Summary", "checkoutsummary"},
		{"SHOP", "shop"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pageKey(tt.name))
	}
}

func TestResolveURL(t *testing.T) {
	w := &World{settings: &config.Settings{BaseURL: "https://x.test/"}}

	tests := []struct {
		arg  string
		want string
	}{
		{"/shop", "https://x.test/shop"},
		{"shop", "https://x.test/shop"},
		{"https://other.test/page", "https://other.test/page"},
		{"http://other.test/page", "http://other.test/page"},
		{"/", "https://x.test/"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, w.ResolveURL(tt.arg))
	}
}

func TestSwitchBackWithoutHistory(t *testing.T) {
	w := &World{}
	assert.Error(t, w.SwitchBack())
}
