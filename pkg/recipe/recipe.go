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

// Package recipe models named, ordered transformation pipelines and the
// registry that keeps at most one of them active.
package recipe

import (
	"time"

	"github.com/google/uuid"
	"github.com/walteh/ninepaste/pkg/transform"
)

// Recipe is a named, ordered list of transformation steps. Applying a
// recipe is a left-to-right fold of its steps over the input text.
type Recipe struct {
	ID          uuid.UUID        `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string           `json:"icon,omitempty" yaml:"icon,omitempty"`
	Hotkey      string           `json:"hotkey,omitempty" yaml:"hotkey,omitempty"`
	Steps       []transform.Step `json:"steps" yaml:"steps"`
	Active      bool             `json:"active" yaml:"active"`
	CreatedAt   time.Time        `json:"created_at" yaml:"created_at"`
	ModifiedAt  time.Time        `json:"modified_at" yaml:"modified_at"`
}

// New creates an empty recipe with a fresh id and current timestamps.
func New(name string) Recipe {
	now := time.Now().UTC()
	return Recipe{
		ID:         uuid.New(),
		Name:       name,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// Apply runs every step in order. The empty recipe is the identity
// function. Steps never fail; bad parameters degrade to no-ops inside
// the transform package.
func (r Recipe) Apply(text string) string {
	for _, step := range r.Steps {
		text = transform.Apply(step, text)
	}
	return text
}

// AddStep appends a step and stamps the modification time.
func (r *Recipe) AddStep(step transform.Step) {
	r.Steps = append(r.Steps, step)
	r.ModifiedAt = time.Now().UTC()
}

// IsEmpty reports whether the recipe has no steps.
func (r Recipe) IsEmpty() bool {
	return len(r.Steps) == 0
}

// Clone returns a deep copy. The monitor clones the active recipe under
// its lock and applies the copy outside of it, so the copy must not
// share the step slice.
func (r Recipe) Clone() Recipe {
	out := r
	if r.Steps != nil {
		out.Steps = make([]transform.Step, len(r.Steps))
		copy(out.Steps, r.Steps)
	}
	return out
}
