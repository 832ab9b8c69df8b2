package commands

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/ninepaste/pkg/recipe"
	"github.com/walteh/ninepaste/pkg/transform"
)

// 🧪 memStore is an in-memory recipe store
type memStore struct {
	mu      sync.Mutex
	recipes []recipe.Recipe
	saved   bool
}

func (s *memStore) Load(ctx context.Context) ([]recipe.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		return nil, nil
	}
	out := make([]recipe.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out, nil
}

func (s *memStore) Save(ctx context.Context, recipes []recipe.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = make([]recipe.Recipe, len(recipes))
	copy(s.recipes, recipes)
	s.saved = true
	return nil
}

func seededRegistry(t *testing.T) *recipe.Registry {
	t.Helper()
	registry, err := recipe.NewRegistry(context.Background(), &memStore{})
	require.NoError(t, err)
	return registry
}

func TestFindRecipe(t *testing.T) {
	registry := seededRegistry(t)

	tests := []struct {
		name        string
		query       string
		wantName    string
		errContains string
	}{
		{name: "exact_name", query: "Plain Text", wantName: "Plain Text"},
		{name: "case_insensitive_name", query: "plain text", wantName: "Plain Text"},
		{name: "glob_single_match", query: "plain*", wantName: "Plain Text"},
		{name: "glob_ambiguous", query: "*lines", errContains: "ambiguous"},
		{name: "no_match", query: "does-not-exist", errContains: "no recipe matches"},
		{name: "bad_pattern", query: "plain[", errContains: "invalid recipe pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := findRecipe(registry, tt.query)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestFindRecipeByID(t *testing.T) {
	registry := seededRegistry(t)

	want := registry.List()[0]
	got, err := findRecipe(registry, want.ID.String())
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
}

func TestMatchDefinitions(t *testing.T) {
	defs := transform.Definitions()

	tests := []struct {
		name        string
		match       string
		check       func(t *testing.T, got []transform.Definition)
		errContains string
	}{
		{
			name:  "empty_match_returns_all",
			match: "",
			check: func(t *testing.T, got []transform.Definition) {
				assert.Len(t, got, len(defs))
			},
		},
		{
			name:  "prefix_glob",
			match: "remove_*",
			check: func(t *testing.T, got []transform.Definition) {
				require.NotEmpty(t, got)
				for _, def := range got {
					assert.Contains(t, string(def.Kind), "remove_")
				}
			},
		},
		{
			name:  "exact_kind",
			match: "slugify",
			check: func(t *testing.T, got []transform.Definition) {
				require.Len(t, got, 1)
				assert.Equal(t, transform.Kind("slugify"), got[0].Kind)
			},
		},
		{
			name:        "no_match",
			match:       "quantum_*",
			errContains: "no transformation matches",
		},
		{
			name:        "bad_pattern",
			match:       "remove_[",
			errContains: "invalid match pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matchDefinitions(defs, tt.match)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestStepParams(t *testing.T) {
	tests := []struct {
		name string
		step transform.Step
		want string
	}{
		{
			name: "no_params",
			step: transform.Step{Kind: transform.KindUppercase},
			want: "",
		},
		{
			name: "width_only",
			step: transform.Step{Kind: "wrap_lines", Width: 80},
			want: "width=80",
		},
		{
			name: "find_replace",
			step: transform.Step{Kind: "find_replace", Find: "a", Replace: "b"},
			want: `find="a" replace="b"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stepParams(tt.step))
		})
	}
}
