package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/tradie-config/models"
)

func TestResolvePaths_RelativeFields(t *testing.T) {
	cfg := models.Tree{"src": "./src/", "dest": "./dist/", "tmp": "./tmp", "plugins": []any{"p"}}

	got, err := ResolvePaths(cfg, "/proj")

	require.NoError(t, err)
	assert.Equal(t, "/proj/src", got.Root)
	assert.Equal(t, "/proj/src", got.Src)
	assert.Equal(t, "/proj/dist", got.Dest)
	assert.Equal(t, "/proj/tmp", got.Tmp)
	assert.Equal(t, []any{"p"}, got.Plugins())
}

func TestResolvePaths_AbsoluteFieldsKept(t *testing.T) {
	cfg := models.Tree{"src": "/abs/src/", "dest": "/abs/../out", "tmp": "rel"}

	got, err := ResolvePaths(cfg, "/proj")

	require.NoError(t, err)
	assert.Equal(t, "/abs/src", got.Src)
	assert.Equal(t, "/out", got.Dest)
	assert.Equal(t, "/proj/rel", got.Tmp)
}

func TestResolvePaths_RelativeRootUsesWorkingDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := ResolvePaths(models.Tree{"src": "./src/", "dest": "./dist/", "tmp": "./tmp"}, "proj")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "proj", "src"), got.Src)
	for _, p := range []string{got.Root, got.Src, got.Dest, got.Tmp} {
		assert.True(t, filepath.IsAbs(p), p)
	}
}

func TestResolvePaths_EmptyRootIsWorkingDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := ResolvePaths(models.Tree{"src": "s", "dest": "d", "tmp": "t"}, "")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "d"), got.Dest)
}

// TestResolvePaths_RootKeyOverwritten verifies that a user-provided root
// setting is replaced by the resolved src.
func TestResolvePaths_RootKeyOverwritten(t *testing.T) {
	got, err := ResolvePaths(models.Tree{"root": "/elsewhere", "src": "./app", "dest": "d", "tmp": "t"}, "/proj")

	require.NoError(t, err)
	assert.Equal(t, "/proj/app", got.Root)
	v, ok := got.Get("root")
	require.True(t, ok)
	assert.Equal(t, "/proj/app", v)
}

func TestResolvePaths_InvalidField(t *testing.T) {
	tests := []struct {
		name string
		cfg  models.Tree
	}{
		{name: "missing dest", cfg: models.Tree{"src": "s", "tmp": "t"}},
		{name: "numeric src", cfg: models.Tree{"src": 1.0, "dest": "d", "tmp": "t"}},
		{name: "null tmp", cfg: models.Tree{"src": "s", "dest": "d", "tmp": nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePaths(tt.cfg, "/proj")
			assert.ErrorIs(t, err, ErrInvalidPathField)
		})
	}
}
