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
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	KindRegexReplace Kind = "regex_replace"
	KindFindReplace  Kind = "find_replace"
	KindAddPrefix    Kind = "add_prefix"
	KindAddSuffix    Kind = "add_suffix"
	KindRemovePrefix Kind = "remove_prefix"
	KindRemoveSuffix Kind = "remove_suffix"
)

// regexCache holds compiled user patterns. The monitor re-applies the
// same recipe on every clipboard change, so compiling once per pattern
// instead of once per tick is worth the small cache.
var regexCache = gocache.New(30*time.Minute, 10*time.Minute)

func init() {
	Register(Definition{
		Kind:     KindRegexReplace,
		Name:     "Regex Replace",
		Category: "Search & Replace",
		Aliases:  []string{"regex"},
		Build: func(step Step) Func {
			re, err := compilePattern(step.Pattern)
			if err != nil {
				return Identity
			}
			replacement := step.Replacement
			return func(text string) string {
				return re.ReplaceAllString(text, replacement)
			}
		},
	})
	Register(Definition{
		Kind:     KindFindReplace,
		Name:     "Find & Replace",
		Category: "Search & Replace",
		Aliases:  []string{"replace"},
		Build: func(step Step) Func {
			find, replace := step.Find, step.Replace
			if find == "" {
				return Identity
			}
			return func(text string) string {
				return strings.ReplaceAll(text, find, replace)
			}
		},
	})
	Register(Definition{
		Kind:     KindAddPrefix,
		Name:     "Add Prefix",
		Category: "Prefix/Suffix",
		Build: func(step Step) Func {
			prefix := step.Prefix
			return func(text string) string {
				return prefix + text
			}
		},
	})
	Register(Definition{
		Kind:     KindAddSuffix,
		Name:     "Add Suffix",
		Category: "Prefix/Suffix",
		Build: func(step Step) Func {
			suffix := step.Suffix
			return func(text string) string {
				return text + suffix
			}
		},
	})
	Register(Definition{
		Kind:     KindRemovePrefix,
		Name:     "Remove Prefix",
		Category: "Prefix/Suffix",
		Build: func(step Step) Func {
			prefix := step.Prefix
			return func(text string) string {
				return strings.TrimPrefix(text, prefix)
			}
		},
	})
	Register(Definition{
		Kind:     KindRemoveSuffix,
		Name:     "Remove Suffix",
		Category: "Prefix/Suffix",
		Build: func(step Step) Func {
			suffix := step.Suffix
			return func(text string) string {
				return strings.TrimSuffix(text, suffix)
			}
		},
	})
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if cached, ok := regexCache.Get(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	regexCache.SetDefault(pattern, re)
	return re, nil
}
