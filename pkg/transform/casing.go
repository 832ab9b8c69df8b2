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
	"unicode"
)

const (
	KindLowercase          Kind = "lowercase"
	KindUppercase          Kind = "uppercase"
	KindTitleCase          Kind = "title_case"
	KindSentenceCase       Kind = "sentence_case"
	KindCamelCase          Kind = "camel_case"
	KindPascalCase         Kind = "pascal_case"
	KindSnakeCase          Kind = "snake_case"
	KindScreamingSnakeCase Kind = "screaming_snake_case"
	KindKebabCase          Kind = "kebab_case"
)

func init() {
	Register(Definition{
		Kind:     KindLowercase,
		Name:     "lowercase",
		Category: "Case Conversion",
		Aliases:  []string{"lower"},
		Build:    static(strings.ToLower),
	})
	Register(Definition{
		Kind:     KindUppercase,
		Name:     "UPPERCASE",
		Category: "Case Conversion",
		Aliases:  []string{"upper"},
		Build:    static(strings.ToUpper),
	})
	Register(Definition{
		Kind:     KindTitleCase,
		Name:     "Title Case",
		Category: "Case Conversion",
		Aliases:  []string{"title", "titlecase"},
		Build:    static(toTitleCase),
	})
	Register(Definition{
		Kind:     KindSentenceCase,
		Name:     "Sentence case",
		Category: "Case Conversion",
		Aliases:  []string{"sentence", "sentencecase"},
		Build:    static(toSentenceCase),
	})
	Register(Definition{
		Kind:     KindCamelCase,
		Name:     "camelCase",
		Category: "Case Conversion",
		Aliases:  []string{"camel", "camelcase"},
		Build:    static(toCamelCase),
	})
	Register(Definition{
		Kind:     KindPascalCase,
		Name:     "PascalCase",
		Category: "Case Conversion",
		Aliases:  []string{"pascal", "pascalcase"},
		Build:    static(toPascalCase),
	})
	Register(Definition{
		Kind:     KindSnakeCase,
		Name:     "snake_case",
		Category: "Case Conversion",
		Aliases:  []string{"snake", "snakecase"},
		Build:    static(toSnakeCase),
	})
	Register(Definition{
		Kind:     KindScreamingSnakeCase,
		Name:     "SCREAMING_SNAKE_CASE",
		Category: "Case Conversion",
		Aliases:  []string{"screaming-snake", "screamingsnakecase"},
		Build:    static(toScreamingSnakeCase),
	})
	Register(Definition{
		Kind:     KindKebabCase,
		Name:     "kebab-case",
		Category: "Case Conversion",
		Aliases:  []string{"kebab", "kebabcase"},
		Build:    static(toKebabCase),
	})
}

// capitalizeWord uppercases the first rune of a word and lowercases the
// remainder.
func capitalizeWord(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return ""
	}
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}

func toTitleCase(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		words[i] = capitalizeWord(word)
	}
	return strings.Join(words, " ")
}

// toSentenceCase lowercases everything except the first alphabetic
// character after a sentence terminator (".", "!" or "?"), which is
// uppercased. Non-alphabetic characters do not consume the pending
// capitalization.
func toSentenceCase(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	capitalizeNext := true
	for _, r := range text {
		if capitalizeNext && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
			continue
		}
		b.WriteRune(unicode.ToLower(r))
		if r == '.' || r == '!' || r == '?' {
			capitalizeNext = true
		}
	}
	return b.String()
}

func toCamelCase(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		b.WriteString(capitalizeWord(word))
	}
	return b.String()
}

func toPascalCase(text string) string {
	var b strings.Builder
	for _, word := range strings.Fields(text) {
		b.WriteString(capitalizeWord(word))
	}
	return b.String()
}

func toSnakeCase(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

func toScreamingSnakeCase(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		words[i] = strings.ToUpper(word)
	}
	return strings.Join(words, "_")
}

func toKebabCase(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "-")
}
