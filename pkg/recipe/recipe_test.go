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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/ninepaste/pkg/transform"
)

func TestEmptyRecipeIsIdentity(t *testing.T) {
	r := New("Empty")
	for _, text := range []string{"", "hello", "  mixed \r\n content\n", "emoji 🎉"} {
		assert.Equal(t, text, r.Apply(text))
	}
}

func TestApplyIsLeftFold(t *testing.T) {
	r := New("Test")
	r.AddStep(transform.Step{Kind: transform.KindUppercase})
	r.AddStep(transform.Step{Kind: transform.KindTrimLines})

	assert.Equal(t, "HELLO WORLD", r.Apply("  hello world  "))
}

func TestApplyOrderIsSignificant(t *testing.T) {
	prefixThenUpper := New("A")
	prefixThenUpper.AddStep(transform.Step{Kind: transform.KindAddPrefix, Prefix: "x "})
	prefixThenUpper.AddStep(transform.Step{Kind: transform.KindUppercase})

	upperThenPrefix := New("B")
	upperThenPrefix.AddStep(transform.Step{Kind: transform.KindUppercase})
	upperThenPrefix.AddStep(transform.Step{Kind: transform.KindAddPrefix, Prefix: "x "})

	assert.Equal(t, "X HI", prefixThenUpper.Apply("hi"))
	assert.Equal(t, "x HI", upperThenPrefix.Apply("hi"))
}

func TestTransformationChain(t *testing.T) {
	r := New("Chain")
	r.AddStep(transform.Step{Kind: transform.KindFixSmartQuotes})
	r.AddStep(transform.Step{Kind: transform.KindNormalizeWhitespace})
	r.AddStep(transform.Step{Kind: transform.KindTitleCase})

	// The quote is the word's first character, so title-casing lowercases
	// the following letter.
	input := "  “hello”   world  "
	assert.Equal(t, `"hello" World`, r.Apply(input))
}

func TestCloneDoesNotShareSteps(t *testing.T) {
	r := New("Original")
	r.AddStep(transform.Step{Kind: transform.KindLowercase})

	clone := r.Clone()
	clone.Steps[0] = transform.Step{Kind: transform.KindUppercase}

	require.Equal(t, transform.KindLowercase, r.Steps[0].Kind, "clone must not alias the original step slice")
	assert.Equal(t, r.ID, clone.ID)
}

func TestSeedRecipes(t *testing.T) {
	seeds := SeedRecipes()
	require.Len(t, seeds, 7)

	names := make([]string, len(seeds))
	for i, r := range seeds {
		names[i] = r.Name
		assert.False(t, r.Active, "seed %q must not start active", r.Name)
		assert.NotEmpty(t, r.Steps, "seed %q needs steps", r.Name)
		assert.NotEqual(t, [16]byte{}, [16]byte(r.ID), "seed %q needs an id", r.Name)
	}
	assert.Equal(t, []string{
		"Plain Text", "Clean Code", "Unique Lines", "Sort Lines",
		"Privacy Mode", "Academic", "No Emoji",
	}, names)

	// Seeds must produce fresh ids per call; two loads must not collide.
	again := SeedRecipes()
	assert.NotEqual(t, seeds[0].ID, again[0].ID)
}
