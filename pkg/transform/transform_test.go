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

package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestRegistry checks the kind registry and dispatch behavior
func TestRegistry(t *testing.T) {
	defs := Definitions()
	require.NotEmpty(t, defs, "kinds should self-register at init")
	assert.Len(t, defs, 45, "all transformation kinds should be registered")

	seen := map[Kind]bool{}
	for _, def := range defs {
		assert.False(t, seen[def.Kind], "kind %q registered twice", def.Kind)
		seen[def.Kind] = true
		assert.NotEmpty(t, def.Name, "kind %q needs a display name", def.Kind)
		assert.NotEmpty(t, def.Category, "kind %q needs a category", def.Kind)
		require.NotNil(t, def.Build, "kind %q needs a build function", def.Kind)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Kind
		found bool
	}{
		{name: "exact_kind", input: "lowercase", want: KindLowercase, found: true},
		{name: "alias", input: "lower", want: KindLowercase, found: true},
		{name: "alias_dedup", input: "dedup", want: KindRemoveDuplicateLines, found: true},
		{name: "alias_crlf", input: "crlf", want: KindWindowsLineEndings, found: true},
		{name: "case_insensitive", input: "LOWER", want: KindLowercase, found: true},
		{name: "surrounding_space", input: "  slug  ", want: KindSlugify, found: true},
		{name: "unknown", input: "frobnicate", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := Resolve(tt.input)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, kind)
			}
		})
	}
}

func TestApplyUnknownKindIsIdentity(t *testing.T) {
	out := Apply(Step{Kind: Kind("does_not_exist")}, "unchanged")
	assert.Equal(t, "unchanged", out)
}

func TestInvalidParametersDegradeToIdentity(t *testing.T) {
	tests := []struct {
		name string
		step Step
	}{
		{name: "bad_regex", step: Step{Kind: KindRegexReplace, Pattern: "[unclosed", Replacement: "x"}},
		{name: "zero_wrap_width", step: Step{Kind: KindWrapLines, Width: 0}},
		{name: "zero_tab_width", step: Step{Kind: KindTabsToSpaces, Spaces: 0}},
		{name: "empty_find", step: Step{Kind: KindFindReplace, Find: "", Replace: "x"}},
		{name: "empty_split_delimiter", step: Step{Kind: KindSplitToLines, Delimiter: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "some input text", Apply(tt.step, "some input text"))
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Normalize Whitespace", DisplayName(KindNormalizeWhitespace))
	assert.Equal(t, "mystery", DisplayName(Kind("mystery")))
}

func TestMismatchedPrefixSuffixIsNoOp(t *testing.T) {
	assert.Equal(t, "hello", Apply(Step{Kind: KindRemovePrefix, Prefix: "xyz"}, "hello"))
	assert.Equal(t, "hello", Apply(Step{Kind: KindRemoveSuffix, Suffix: "xyz"}, "hello"))
}
