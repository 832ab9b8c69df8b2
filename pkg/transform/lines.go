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
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	KindRemoveDuplicateLines   Kind = "remove_duplicate_lines"
	KindSortLines              Kind = "sort_lines"
	KindSortLinesReverse       Kind = "sort_lines_reverse"
	KindReverseLines           Kind = "reverse_lines"
	KindAddLineNumbers         Kind = "add_line_numbers"
	KindRemoveLineNumbers      Kind = "remove_line_numbers"
	KindRemoveLineNumbersStuck Kind = "remove_line_numbers_stuck"
	KindJoinLines              Kind = "join_lines"
	KindSplitToLines           Kind = "split_to_lines"
	KindWrapLines              Kind = "wrap_lines"
)

var (
	lineNumberPrefix = regexp.MustCompile(`^\s*\d+[.:]\s*`)

	// stuckLineNumber matches a line number glued to the content with no
	// separator ("1import React", "93\t\tconst"). Indentation before the
	// number is kept.
	stuckLineNumber = regexp.MustCompile(`^(\s*)\d+`)
)

func init() {
	Register(Definition{
		Kind:     KindRemoveDuplicateLines,
		Name:     "Remove Duplicate Lines",
		Category: "Line Operations",
		Aliases:  []string{"remove-duplicates", "unique", "dedup"},
		Build:    static(removeDuplicateLines),
	})
	Register(Definition{
		Kind:     KindSortLines,
		Name:     "Sort Lines (A-Z)",
		Category: "Line Operations",
		Aliases:  []string{"sort"},
		Build:    static(sortLines),
	})
	Register(Definition{
		Kind:     KindSortLinesReverse,
		Name:     "Sort Lines (Z-A)",
		Category: "Line Operations",
		Aliases:  []string{"sort-reverse"},
		Build:    static(sortLinesReverse),
	})
	Register(Definition{
		Kind:     KindReverseLines,
		Name:     "Reverse Line Order",
		Category: "Line Operations",
		Aliases:  []string{"reverse"},
		Build:    static(reverseLines),
	})
	Register(Definition{
		Kind:     KindAddLineNumbers,
		Name:     "Add Line Numbers",
		Category: "Line Operations",
		Aliases:  []string{"number"},
		Build:    static(addLineNumbers),
	})
	Register(Definition{
		Kind:     KindRemoveLineNumbers,
		Name:     "Remove Line Numbers",
		Category: "Line Operations",
		Aliases:  []string{"unnumber"},
		Build:    static(removeLineNumbers),
	})
	Register(Definition{
		Kind:     KindRemoveLineNumbersStuck,
		Name:     "Remove Stuck Line Numbers",
		Category: "Line Operations",
		Aliases:  []string{"unnumber-stuck"},
		Build:    static(removeLineNumbersStuck),
	})
	Register(Definition{
		Kind:     KindJoinLines,
		Name:     "Join Lines",
		Category: "Line Operations",
		Aliases:  []string{"join"},
		Build: func(step Step) Func {
			sep := step.Separator
			return func(text string) string {
				return strings.Join(splitLines(text), sep)
			}
		},
	})
	Register(Definition{
		Kind:     KindSplitToLines,
		Name:     "Split to Lines",
		Category: "Line Operations",
		Aliases:  []string{"split"},
		Build: func(step Step) Func {
			delim := step.Delimiter
			if delim == "" {
				return Identity
			}
			return func(text string) string {
				return strings.Join(strings.Split(text, delim), "\n")
			}
		},
	})
	Register(Definition{
		Kind:     KindWrapLines,
		Name:     "Wrap Lines",
		Category: "Line Operations",
		Aliases:  []string{"wrap"},
		Build: func(step Step) Func {
			width := step.Width
			if width <= 0 {
				return Identity
			}
			return func(text string) string {
				return wrapLines(text, width)
			}
		},
	})
}

// removeDuplicateLines keeps the first occurrence of each line, by exact
// value, preserving order.
func removeDuplicateLines(text string) string {
	seen := make(map[string]struct{})
	var kept []string
	for _, line := range splitLines(text) {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func sortLines(text string) string {
	lines := splitLines(text)
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

func sortLinesReverse(text string) string {
	lines := splitLines(text)
	sort.Sort(sort.Reverse(sort.StringSlice(lines)))
	return strings.Join(lines, "\n")
}

func reverseLines(text string) string {
	lines := splitLines(text)
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return strings.Join(lines, "\n")
}

func addLineNumbers(text string) string {
	lines := splitLines(text)
	for i, line := range lines {
		lines[i] = fmt.Sprintf("%4d: %s", i+1, line)
	}
	return strings.Join(lines, "\n")
}

func removeLineNumbers(text string) string {
	lines := splitLines(text)
	for i, line := range lines {
		lines[i] = lineNumberPrefix.ReplaceAllString(line, "")
	}
	return strings.Join(lines, "\n")
}

func removeLineNumbersStuck(text string) string {
	lines := splitLines(text)
	for i, line := range lines {
		lines[i] = stuckLineNumber.ReplaceAllString(line, "${1}")
	}
	return strings.Join(lines, "\n")
}

// wrapLines wraps each line at width columns, breaking on words. Lines at
// or under the width pass through untouched, so existing short lines keep
// their exact spacing.
func wrapLines(text string, width int) string {
	lines := splitLines(text)
	for i, line := range lines {
		if len(line) <= width {
			continue
		}
		var wrapped strings.Builder
		var current string
		for _, word := range strings.Fields(line) {
			switch {
			case current == "":
				current = word
			case len(current)+1+len(word) <= width:
				current += " " + word
			default:
				if wrapped.Len() > 0 {
					wrapped.WriteByte('\n')
				}
				wrapped.WriteString(current)
				current = word
			}
		}
		if current != "" {
			if wrapped.Len() > 0 {
				wrapped.WriteByte('\n')
			}
			wrapped.WriteString(current)
		}
		lines[i] = wrapped.String()
	}
	return strings.Join(lines, "\n")
}
