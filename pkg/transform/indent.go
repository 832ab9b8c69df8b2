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
	"strings"
)

const (
	KindTabsToSpaces       Kind = "tabs_to_spaces"
	KindSpacesToTabs       Kind = "spaces_to_tabs"
	KindUnixLineEndings    Kind = "unix_line_endings"
	KindWindowsLineEndings Kind = "windows_line_endings"
)

func init() {
	Register(Definition{
		Kind:     KindTabsToSpaces,
		Name:     "Tabs → Spaces",
		Category: "Indentation",
		Aliases:  []string{"detab"},
		Build: func(step Step) Func {
			spaces := step.Spaces
			if spaces <= 0 {
				return Identity
			}
			return func(text string) string {
				return strings.ReplaceAll(text, "\t", strings.Repeat(" ", spaces))
			}
		},
	})
	Register(Definition{
		Kind:     KindSpacesToTabs,
		Name:     "Spaces → Tabs",
		Category: "Indentation",
		Aliases:  []string{"entab"},
		Build: func(step Step) Func {
			spaces := step.Spaces
			if spaces <= 0 {
				return Identity
			}
			return func(text string) string {
				return spacesToTabs(text, spaces)
			}
		},
	})
	Register(Definition{
		Kind:     KindUnixLineEndings,
		Name:     "Unix Line Endings (LF)",
		Category: "Line Endings",
		Aliases:  []string{"unix", "lf"},
		Build:    static(toUnixLineEndings),
	})
	Register(Definition{
		Kind:     KindWindowsLineEndings,
		Name:     "Windows Line Endings (CRLF)",
		Category: "Line Endings",
		Aliases:  []string{"windows", "crlf"},
		Build:    static(toWindowsLineEndings),
	})
}

// spacesToTabs folds only the leading run of spaces on each line into
// tabs. Leftover spaces below one tab width stay as spaces; interior and
// trailing spaces are untouched.
func spacesToTabs(text string, spacesPerTab int) string {
	lines := splitLines(text)
	for i, line := range lines {
		leading := 0
		for leading < len(line) && line[leading] == ' ' {
			leading++
		}
		if leading == 0 {
			continue
		}
		tabs := leading / spacesPerTab
		rest := leading % spacesPerTab
		lines[i] = strings.Repeat("\t", tabs) + strings.Repeat(" ", rest) + line[leading:]
	}
	return strings.Join(lines, "\n")
}

func toUnixLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// toWindowsLineEndings normalizes to LF first so existing CRLF pairs are
// not doubled.
func toWindowsLineEndings(text string) string {
	return strings.ReplaceAll(toUnixLineEndings(text), "\n", "\r\n")
}
