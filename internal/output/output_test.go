package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/tradie-config/models"
)

func sampleResolved() models.ResolvedConfig {
	return models.NewResolvedConfig("/p/src", "/p/src", "/p/dist", "/p/tmp", models.Tree{
		"scripts": map[string]any{"bundles": []any{"./index.js"}},
		"webpack": map[string]any{},
	})
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "json", sampleResolved()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "/p/dist", got["dest"])
	assert.Equal(t, "/p/src", got["root"])
	assert.Equal(t, map[string]any{"bundles": []any{"./index.js"}}, got["scripts"])
	assert.Contains(t, buf.String(), "\n  \"dest\"")
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "yaml", sampleResolved()))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "/p/tmp", got["tmp"])
	assert.Equal(t, map[string]any{"bundles": []any{"./index.js"}}, got["scripts"])
}

func TestWrite_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Write(&a, "yaml", sampleResolved()))
	require.NoError(t, Write(&b, "yaml", sampleResolved()))
	assert.Equal(t, a.String(), b.String())
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "toml", sampleResolved())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
