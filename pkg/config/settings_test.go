package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://x.test")
	t.Setenv(EnvUsername, "standard_user")
	t.Setenv(EnvPassword, "hunter2")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://x.test", s.BaseURL)
	assert.Equal(t, "standard_user", s.Username)
	assert.Equal(t, "hunter2", s.Password)
}

func TestLoadRequiresBaseURL(t *testing.T) {
	t.Setenv(EnvBaseURL, "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvBaseURL)
}

func TestResolveValue(t *testing.T) {
	s := &Settings{Username: "standard_user", Password: "hunter2"}

	assert.Equal(t, "standard_user", s.ResolveValue(TokenUsername))
	assert.Equal(t, "hunter2", s.ResolveValue(TokenPassword))
	assert.Equal(t, "anything else", s.ResolveValue("anything else"))
	assert.Equal(t, "", s.ResolveValue(""))
}
