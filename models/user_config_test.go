package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserConfig_SplitsReservedKey(t *testing.T) {
	raw := Tree{
		"src": "./app/",
		"_": map[string]any{
			"test":     map[string]any{"src": "./testsrc/"},
			"optimise": "not an object",
		},
	}

	cfg := NewUserConfig(raw)

	assert.Equal(t, Tree{"src": "./app/"}, cfg.Settings)
	require.Len(t, cfg.Contexts, 2)
	assert.Equal(t, Tree{"src": "./testsrc/"}, cfg.Contexts["test"])
	assert.Equal(t, Tree{}, cfg.Contexts["optimise"])

	// input untouched
	assert.Contains(t, raw, ReservedKey)
}

func TestNewUserConfig_NonObjectReserved(t *testing.T) {
	cfg := NewUserConfig(Tree{"_": []any{"test"}})

	assert.Empty(t, cfg.Settings)
	assert.Empty(t, cfg.Contexts)
}

func TestNewUserConfig_Nil(t *testing.T) {
	cfg := NewUserConfig(nil)

	assert.NotNil(t, cfg.Settings)
	assert.NotNil(t, cfg.Contexts)
}

func TestUserConfig_ContextIsCopy(t *testing.T) {
	cfg := NewUserConfig(Tree{"_": map[string]any{"test": map[string]any{"plugins": []any{"a"}}}})

	fragment, ok := cfg.Context("test")
	require.True(t, ok)
	fragment["plugins"].([]any)[0] = "changed"

	again, _ := cfg.Context("test")
	assert.Equal(t, []any{"a"}, again["plugins"])

	missing, ok := cfg.Context("nope")
	assert.False(t, ok)
	assert.Empty(t, missing)
}

func TestUserConfig_TreeRoundTrip(t *testing.T) {
	raw := Tree{
		"dest": "./out/",
		"_":    map[string]any{"test": map[string]any{"dest": "./t/"}},
	}

	assert.Equal(t, raw, NewUserConfig(raw).Tree())
}
