package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorValidate(t *testing.T) {
	tests := []struct {
		name       string
		descriptor Descriptor
		wantErr    bool
	}{
		{
			name:       "role only",
			descriptor: Descriptor{Role: "button"},
		},
		{
			name:       "role with accessible name",
			descriptor: Descriptor{Role: "button", Name: "Sign In"},
		},
		{
			name:       "test id",
			descriptor: Descriptor{TestID: "submit"},
		},
		{
			name:       "visible text with exact modifier",
			descriptor: Descriptor{Text: "Welcome back", Exact: true},
		},
		{
			name:       "placeholder",
			descriptor: Descriptor{Placeholder: "Username"},
		},
		{
			name:       "label",
			descriptor: Descriptor{Label: "Password"},
		},
		{
			name:       "alt text",
			descriptor: Descriptor{AltText: "Company logo"},
		},
		{
			name:       "title",
			descriptor: Descriptor{Title: "Remove item"},
		},
		{
			name:       "frame",
			descriptor: Descriptor{Frame: &FrameDescriptor{Selector: "#payment", Locator: "input.card"}},
		},
		{
			name:       "raw selector",
			descriptor: Descriptor{Selector: "#login-btn"},
		},
		{
			name:       "empty descriptor",
			descriptor: Descriptor{},
			wantErr:    true,
		},
		{
			name:       "two strategies set",
			descriptor: Descriptor{Role: "button", TestID: "submit"},
			wantErr:    true,
		},
		{
			name:       "three strategies set",
			descriptor: Descriptor{Text: "Go", Placeholder: "Go", Selector: ".go"},
			wantErr:    true,
		},
		{
			name:       "frame missing inner locator",
			descriptor: Descriptor{Frame: &FrameDescriptor{Selector: "#payment"}},
			wantErr:    true,
		},
		{
			name:       "name without role is not a strategy",
			descriptor: Descriptor{Name: "Sign In"},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.descriptor.Validate("someKey", "login.yaml")
			if tt.wantErr {
				require.Error(t, err)
				var invalid *InvalidDescriptorError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, "someKey", invalid.Key)
				assert.Equal(t, "login.yaml", invalid.File)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInvalidDescriptorErrorMessage(t *testing.T) {
	t.Run("names the key and file", func(t *testing.T) {
		err := Descriptor{}.Validate("usernameInput", "login.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usernameInput")
		assert.Contains(t, err.Error(), "login.yaml")
	})

	t.Run("lists the conflicting strategies", func(t *testing.T) {
		err := Descriptor{Role: "button", Selector: "#x"}.Validate("loginButton", "login.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "role")
		assert.Contains(t, err.Error(), "selector")
	})
}
