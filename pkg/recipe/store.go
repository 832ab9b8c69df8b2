// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recipe

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Store persists the full recipe set. Load returns (nil, nil) when no
// data has ever been saved; the registry seeds the built-in recipes in
// that case.
type Store interface {
	Load(ctx context.Context) ([]Recipe, error)
	Save(ctx context.Context, recipes []Recipe) error
}

// FileStore is a Store backed by a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store at the given path. Parent directories are
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the recipes file under the user config dir
// (<config>/ninepaste/recipes.json).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Errorf("finding user config dir: %w", err)
	}
	return filepath.Join(dir, "ninepaste", "recipes.json"), nil
}

// Load reads the recipe file. A missing file is not an error.
func (s *FileStore) Load(ctx context.Context) ([]Recipe, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", s.path).Msg("loading recipes")

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Errorf("reading recipes file: %w", err)
	}

	var recipes []Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, errors.Errorf("parsing recipes file: %w", err)
	}
	return recipes, nil
}

// Save writes the full recipe set atomically: temp file in the same
// directory, then rename over the target.
func (s *FileStore) Save(ctx context.Context, recipes []Recipe) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", s.path).Int("recipes", len(recipes)).Msg("saving recipes")

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Errorf("creating recipes dir: %w", err)
	}

	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return errors.Errorf("serializing recipes: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".recipes-*.json")
	if err != nil {
		return errors.Errorf("creating temp recipes file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Errorf("writing temp recipes file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Errorf("closing temp recipes file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Errorf("replacing recipes file: %w", err)
	}
	return nil
}
