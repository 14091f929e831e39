// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/tradie-config/models"
)

// ConfigFileName is the conventional name of the project config file.
const ConfigFileName = ".tradierc"

// fileConfigLoader is the default [ConfigLoader]. It reads a single file from
// the project root and hands its bytes to a [Decoder].
type fileConfigLoader struct {
	fileName string
	decoder  Decoder
}

// FileConfigLoaderOption customises [NewFileConfigLoader].
type FileConfigLoaderOption func(*fileConfigLoader)

// WithFileName overrides [ConfigFileName]. An empty name is ignored.
func WithFileName(name string) FileConfigLoaderOption {
	return func(l *fileConfigLoader) {
		if name != "" {
			l.fileName = name
		}
	}
}

// WithDecoder replaces the JSON5 decoder. A nil decoder is ignored.
func WithDecoder(d Decoder) FileConfigLoaderOption {
	return func(l *fileConfigLoader) {
		if d != nil {
			l.decoder = d
		}
	}
}

// NewFileConfigLoader constructs a [ConfigLoader] reading [ConfigFileName]
// with the JSON5 decoder unless overridden.
func NewFileConfigLoader(opts ...FileConfigLoaderOption) ConfigLoader {
	l := &fileConfigLoader{
		fileName: ConfigFileName,
		decoder:  NewJSON5Decoder(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path joins root with the config file name. An absolute file name is
// returned as is.
func (l *fileConfigLoader) Path(root string) string {
	if filepath.IsAbs(l.fileName) {
		return l.fileName
	}
	return filepath.Join(root, l.fileName)
}

// Load reads and decodes the config file at root.
//
// Returns an empty [models.UserConfig] and nil when the file does not exist,
// a [*ConfigParseError] when it cannot be decoded, and a wrapped error for any
// other read failure.
func (l *fileConfigLoader) Load(root string) (models.UserConfig, error) {
	path := l.Path(root)

	data, err := readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.NewUserConfig(nil), nil
		}
		return models.UserConfig{}, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	raw, err := l.decoder.Decode(data)
	if err != nil {
		return models.UserConfig{}, &ConfigParseError{Path: path, Err: err}
	}

	return models.NewUserConfig(raw), nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
