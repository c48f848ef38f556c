package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	s, err := LoadFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, Settings{}, s)
}

func TestLoadFromOverrides(t *testing.T) {
	s, err := LoadFrom(map[string]string{
		"BOARDGAME_LANG":  "ko",
		"BOARDGAME_DEBUG": "true",
	})
	require.NoError(t, err)
	assert.Equal(t, "ko", s.Lang)
	assert.True(t, s.Debug)
}

func TestLoadFromRejectsBadBool(t *testing.T) {
	_, err := LoadFrom(map[string]string{"BOARDGAME_DEBUG": "maybe"})
	require.Error(t, err)
}

func TestLoadReadsProcessEnv(t *testing.T) {
	t.Setenv("BOARDGAME_LANG", "es")
	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "es", s.Lang)
}
