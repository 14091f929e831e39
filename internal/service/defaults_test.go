package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/tradie-config/models"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "./src/", cfg.Settings[models.KeySrc])
	assert.Equal(t, "./dist/", cfg.Settings[models.KeyDest])
	assert.Equal(t, "./tmp", cfg.Settings[models.KeyTmp])
	assert.Equal(t, []any{"./index.js"}, cfg.Settings[models.KeyScripts].(map[string]any)["bundles"])
	assert.Equal(t, []any{".scss", ".css"}, cfg.Settings[models.KeyStyles].(map[string]any)["extensions"])
	assert.Equal(t, []any{}, cfg.Settings[models.KeyPlugins])
	assert.Equal(t, map[string]any{}, cfg.Settings[models.KeyWebpack])
	assert.NotContains(t, cfg.Settings, models.ReservedKey)

	require.Contains(t, cfg.Contexts, ContextTest)
	require.Contains(t, cfg.Contexts, ContextOptimise)
}

// TestDefaultConfig_FreshValue verifies that modifying one result does not
// leak into the next call.
func TestDefaultConfig_FreshValue(t *testing.T) {
	first := DefaultConfig()
	first.Settings[models.KeySrc] = "./other/"
	first.Settings[models.KeyScripts].(map[string]any)["bundles"] = []any{"x"}

	second := DefaultConfig()
	assert.Equal(t, "./src/", second.Settings[models.KeySrc])
	assert.Equal(t, []any{"./index.js"}, second.Settings[models.KeyScripts].(map[string]any)["bundles"])
}
