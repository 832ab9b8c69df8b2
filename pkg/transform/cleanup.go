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

	"golang.org/x/text/unicode/norm"
)

const (
	KindFixSmartQuotes   Kind = "fix_smart_quotes"
	KindRemoveNonASCII   Kind = "remove_non_ascii"
	KindNormalizeUnicode Kind = "normalize_unicode"
	KindRemoveEmojis     Kind = "remove_emojis"
	KindStripFormatting  Kind = "strip_formatting"
)

// smartQuoteReplacer maps typographic punctuation to its plain ASCII
// equivalent.
var smartQuoteReplacer = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"…", "...", // ellipsis
	"–", "-", // en dash
	"—", "--", // em dash
)

var htmlTag = regexp.MustCompile(`<[^>]+>`)

// emojiRanges is a fixed table of Unicode block ranges treated as emoji.
// Characters outside these blocks are never removed, even if they render
// as emoji on some platforms.
var emojiRanges = [][2]rune{
	{0x1F600, 0x1F64F}, // Emoticons
	{0x1F300, 0x1F5FF}, // Misc Symbols and Pictographs
	{0x1F680, 0x1F6FF}, // Transport and Map
	{0x1F1E0, 0x1F1FF}, // Flags
	{0x2600, 0x26FF},   // Misc symbols
	{0x2700, 0x27BF},   // Dingbats
	{0xFE00, 0xFE0F},   // Variation Selectors
	{0x1F900, 0x1F9FF}, // Supplemental Symbols and Pictographs
	{0x1FA00, 0x1FA6F}, // Chess Symbols
	{0x1FA70, 0x1FAFF}, // Symbols and Pictographs Extended-A
}

func init() {
	Register(Definition{
		Kind:     KindFixSmartQuotes,
		Name:     "Fix Smart Quotes",
		Category: "Character Cleanup",
		Aliases:  []string{"smartquotes", "fix-quotes", "quotes"},
		Build:    static(fixSmartQuotes),
	})
	Register(Definition{
		Kind:     KindRemoveNonASCII,
		Name:     "Remove Non-ASCII",
		Category: "Character Cleanup",
		Aliases:  []string{"ascii"},
		Build:    static(removeNonASCII),
	})
	Register(Definition{
		Kind:     KindNormalizeUnicode,
		Name:     "Normalize Unicode",
		Category: "Character Cleanup",
		Aliases:  []string{"nfc"},
		Build:    static(normalizeUnicode),
	})
	Register(Definition{
		Kind:     KindRemoveEmojis,
		Name:     "Remove Emojis",
		Category: "Character Cleanup",
		Aliases:  []string{"remove-emojis", "no-emoji"},
		Build:    static(removeEmojis),
	})
	Register(Definition{
		Kind:     KindStripFormatting,
		Name:     "Strip All Formatting",
		Category: "Character Cleanup",
		Aliases:  []string{"strip", "plain"},
		Build:    static(stripFormatting),
	})
}

func fixSmartQuotes(text string) string {
	return smartQuoteReplacer.Replace(text)
}

func removeNonASCII(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func normalizeUnicode(text string) string {
	return norm.NFC.String(text)
}

func isEmoji(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

func removeEmojis(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !isEmoji(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripFormatting removes anything that looks like a markup tag, then
// normalizes whitespace.
func stripFormatting(text string) string {
	return normalizeWhitespace(htmlTag.ReplaceAllString(text, ""))
}
