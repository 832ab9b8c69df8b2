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
	"regexp"
	"strings"
)

const (
	KindNormalizeWhitespace Kind = "normalize_whitespace"
	KindTrimLines           Kind = "trim_lines"
	KindRemoveEmptyLines    Kind = "remove_empty_lines"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

func init() {
	Register(Definition{
		Kind:     KindNormalizeWhitespace,
		Name:     "Normalize Whitespace",
		Category: "Whitespace",
		Aliases:  []string{"normalize", "whitespace"},
		Build:    static(normalizeWhitespace),
	})
	Register(Definition{
		Kind:     KindTrimLines,
		Name:     "Trim Lines",
		Category: "Whitespace",
		Aliases:  []string{"trim"},
		Build:    static(trimLines),
	})
	Register(Definition{
		Kind:     KindRemoveEmptyLines,
		Name:     "Remove Empty Lines",
		Category: "Whitespace",
		Aliases:  []string{"remove-empty", "no-empty"},
		Build:    static(removeEmptyLines),
	})
}

// normalizeWhitespace trims both ends and collapses every run of
// whitespace, newlines included, to a single space.
func normalizeWhitespace(text string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
}

func trimLines(text string) string {
	lines := splitLines(text)
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

func removeEmptyLines(text string) string {
	var kept []string
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
