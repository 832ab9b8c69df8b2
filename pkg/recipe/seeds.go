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
	"github.com/walteh/ninepaste/pkg/transform"
)

// SeedRecipes returns the built-in recipe set used when no recipes have
// ever been saved. Every call returns fresh ids.
func SeedRecipes() []Recipe {
	seed := func(name, description, icon string, steps ...transform.Step) Recipe {
		r := New(name)
		r.Description = description
		r.Icon = icon
		r.Steps = steps
		return r
	}

	return []Recipe{
		seed("Plain Text", "Strip all formatting and normalize whitespace", "📝",
			transform.Step{Kind: transform.KindStripFormatting},
			transform.Step{Kind: transform.KindFixSmartQuotes},
			transform.Step{Kind: transform.KindNormalizeWhitespace},
		),
		seed("Clean Code", "Clean up code snippets", "💻",
			transform.Step{Kind: transform.KindFixSmartQuotes},
			transform.Step{Kind: transform.KindTrimLines},
			transform.Step{Kind: transform.KindUnixLineEndings},
			transform.Step{Kind: transform.KindTabsToSpaces, Spaces: 4},
		),
		seed("Unique Lines", "Remove duplicate lines", "🔢",
			transform.Step{Kind: transform.KindTrimLines},
			transform.Step{Kind: transform.KindRemoveDuplicateLines},
			transform.Step{Kind: transform.KindRemoveEmptyLines},
		),
		seed("Sort Lines", "Sort lines alphabetically", "📊",
			transform.Step{Kind: transform.KindTrimLines},
			transform.Step{Kind: transform.KindSortLines},
		),
		seed("Privacy Mode", "Remove personal info like emails and phone numbers", "🔒",
			transform.Step{Kind: transform.KindRemoveEmails},
			transform.Step{Kind: transform.KindRemovePhoneNumbers},
			transform.Step{Kind: transform.KindRemoveURLs},
		),
		seed("Academic", "Clean up academic text for citations", "📚",
			transform.Step{Kind: transform.KindFixSmartQuotes},
			transform.Step{Kind: transform.KindNormalizeWhitespace},
			transform.Step{Kind: transform.KindTrimLines},
		),
		seed("No Emoji", "Remove all emojis from text", "🚫",
			transform.Step{Kind: transform.KindRemoveEmojis},
		),
	}
}
