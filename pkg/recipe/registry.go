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
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Registry is the in-memory recipe collection. It enforces the single
// invariant that matters: at most one recipe is active at a time. Every
// mutation persists the full set through the store before returning; a
// store failure is surfaced to the caller but never rolls back the
// in-memory change.
type Registry struct {
	mu      sync.Mutex
	recipes []Recipe
	store   Store
}

// NewRegistry loads recipes from the store, falling back to the built-in
// seed recipes when the store has never been written.
func NewRegistry(ctx context.Context, store Store) (*Registry, error) {
	logger := zerolog.Ctx(ctx)

	recipes, err := store.Load(ctx)
	if err != nil {
		return nil, errors.Errorf("loading recipes: %w", err)
	}
	if recipes == nil {
		logger.Debug().Msg("no saved recipes, seeding built-ins")
		recipes = SeedRecipes()
		if err := store.Save(ctx, recipes); err != nil {
			return nil, errors.Errorf("saving seed recipes: %w", err)
		}
	}

	logger.Debug().Int("recipes", len(recipes)).Msg("recipe registry ready")
	return &Registry{recipes: recipes, store: store}, nil
}

// Create adds a new empty recipe with the given name.
func (g *Registry) Create(ctx context.Context, name string) (Recipe, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	r := New(name)
	g.recipes = append(g.recipes, r)
	return r, g.persist(ctx)
}

// Update replaces the stored recipe with the same id and stamps its
// modification time.
func (g *Registry) Update(ctx context.Context, updated Recipe) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, r := range g.recipes {
		if r.ID == updated.ID {
			updated.ModifiedAt = time.Now().UTC()
			g.recipes[i] = updated
			return g.persist(ctx)
		}
	}
	return errors.Errorf("recipe %s not found", updated.ID)
}

// Delete removes a recipe by id.
func (g *Registry) Delete(ctx context.Context, id uuid.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, r := range g.recipes {
		if r.ID == id {
			g.recipes = append(g.recipes[:i], g.recipes[i+1:]...)
			return g.persist(ctx)
		}
	}
	return errors.Errorf("recipe %s not found", id)
}

// Get returns a recipe by id.
func (g *Registry) Get(id uuid.UUID) (Recipe, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, r := range g.recipes {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return Recipe{}, false
}

// FindByName returns the first recipe whose name matches
// case-insensitively, or whose id string matches exactly.
func (g *Registry) FindByName(name string) (Recipe, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, r := range g.recipes {
		if strings.EqualFold(r.Name, name) || r.ID.String() == name {
			return r.Clone(), true
		}
	}
	return Recipe{}, false
}

// List returns every recipe in stored order.
func (g *Registry) List() []Recipe {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]Recipe, len(g.recipes))
	for i, r := range g.recipes {
		out[i] = r.Clone()
	}
	return out
}

// Active returns the currently active recipe, if any.
func (g *Registry) Active() (Recipe, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, r := range g.recipes {
		if r.Active {
			return r.Clone(), true
		}
	}
	return Recipe{}, false
}

// SetActive marks exactly the recipe with the given id active and every
// other recipe inactive, as one logical transaction.
func (g *Registry) SetActive(ctx context.Context, id uuid.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	found := false
	for i := range g.recipes {
		g.recipes[i].Active = g.recipes[i].ID == id
		found = found || g.recipes[i].Active
	}
	if !found {
		return errors.Errorf("recipe %s not found", id)
	}
	return g.persist(ctx)
}

// DeactivateAll clears the active flag on every recipe.
func (g *Registry) DeactivateAll(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.recipes {
		g.recipes[i].Active = false
	}
	return g.persist(ctx)
}

// Reload replaces the in-memory set with the store's current contents.
// A store that has never been written leaves the registry unchanged.
func (g *Registry) Reload(ctx context.Context) error {
	recipes, err := g.store.Load(ctx)
	if err != nil {
		return errors.Errorf("reloading recipes: %w", err)
	}
	if recipes == nil {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.recipes = recipes

	zerolog.Ctx(ctx).Debug().Int("recipes", len(recipes)).Msg("recipe registry reloaded")
	return nil
}

// persist saves the full set. Callers hold g.mu.
func (g *Registry) persist(ctx context.Context) error {
	if err := g.store.Save(ctx, g.recipes); err != nil {
		return errors.Errorf("persisting recipes: %w", err)
	}
	return nil
}
