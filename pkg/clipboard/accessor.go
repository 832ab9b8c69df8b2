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

// Package clipboard provides plain-text access to the system clipboard
// and the polling monitor that watches it for changes.
package clipboard

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// 🔌 Accessor is the interface for clipboard backends. Only plain text
// is modeled; other clipboard content types are out of scope.
type Accessor interface {
	// 📋 ReadText returns the current clipboard text
	ReadText(ctx context.Context) (string, error)

	// 📝 WriteText replaces the clipboard text. It may block until a
	// system clipboard manager takes ownership of the data.
	WriteText(ctx context.Context, text string) error

	// ⚡ WriteTextBackground replaces the clipboard text and returns
	// immediately, handing the ownership wait to an independent
	// short-lived process. Falls back to WriteText when no hand-off
	// mechanism is available.
	WriteTextBackground(ctx context.Context, text string) error
}

// 🏭 Factory creates a new accessor
type Factory func(ctx context.Context) (Accessor, error)

var (
	// 🗺️ accessors is a map of accessor names to factories
	accessors = make(map[string]Factory)
)

// 📝 Register registers an accessor factory
func Register(name string, factory Factory) {
	accessors[name] = factory
}

// 🎯 New creates an accessor by name
func New(ctx context.Context, name string) (Accessor, error) {
	factory, ok := accessors[name]
	if !ok {
		return nil, errors.Errorf("unknown clipboard accessor: %s", name)
	}
	accessor, err := factory(ctx)
	if err != nil {
		return nil, errors.Errorf("creating %s accessor: %w", name, err)
	}
	return accessor, nil
}
