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
	KindRemoveURLs         Kind = "remove_urls"
	KindRemoveEmails       Kind = "remove_emails"
	KindRemovePhoneNumbers Kind = "remove_phone_numbers"
	KindRemoveMarkdown     Kind = "remove_markdown"
)

var (
	urlPattern   = regexp.MustCompile(`https?://\S+`)
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	markdownHeader = regexp.MustCompile(`^#{1,6}\s+`)
	markdownBold   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	markdownItalic = regexp.MustCompile(`\*([^*]+)\*`)
	markdownBoldU  = regexp.MustCompile(`__([^_]+)__`)
	markdownItalU  = regexp.MustCompile(`_([^_]+)_`)
	markdownLink   = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	markdownCode   = regexp.MustCompile("`([^`]+)`")
	markdownBullet = regexp.MustCompile(`^\s*[-*+]\s+`)
)

func init() {
	Register(Definition{
		Kind:     KindRemoveURLs,
		Name:     "Remove URLs",
		Category: "Content Removal",
		Aliases:  []string{"no-urls"},
		Build:    static(removeURLs),
	})
	Register(Definition{
		Kind:     KindRemoveEmails,
		Name:     "Remove Emails",
		Category: "Content Removal",
		Aliases:  []string{"no-emails"},
		Build:    static(removeEmails),
	})
	Register(Definition{
		Kind:     KindRemovePhoneNumbers,
		Name:     "Remove Phone Numbers",
		Category: "Content Removal",
		Aliases:  []string{"no-phones"},
		Build:    static(removePhoneNumbers),
	})
	Register(Definition{
		Kind:     KindRemoveMarkdown,
		Name:     "Remove Markdown",
		Category: "Content Removal",
		Aliases:  []string{"no-markdown", "unmarkdown"},
		Build:    static(removeMarkdown),
	})
}

func removeURLs(text string) string {
	return urlPattern.ReplaceAllString(text, "")
}

func removeEmails(text string) string {
	return emailPattern.ReplaceAllString(text, "")
}

func removePhoneNumbers(text string) string {
	return phonePattern.ReplaceAllString(text, "")
}

// removeMarkdown strips common markdown syntax in a fixed pass order:
// headers, bold, italic, links, inline code, bullets. The order matters;
// bold markers must go before italic markers or "**x**" degrades to "*x*".
func removeMarkdown(text string) string {
	lines := splitLines(text)
	for i, line := range lines {
		lines[i] = markdownHeader.ReplaceAllString(line, "")
	}
	text = strings.Join(lines, "\n")

	text = markdownBold.ReplaceAllString(text, "${1}")
	text = markdownItalic.ReplaceAllString(text, "${1}")
	text = markdownBoldU.ReplaceAllString(text, "${1}")
	text = markdownItalU.ReplaceAllString(text, "${1}")
	text = markdownLink.ReplaceAllString(text, "${1}")
	text = markdownCode.ReplaceAllString(text, "${1}")

	lines = splitLines(text)
	for i, line := range lines {
		lines[i] = markdownBullet.ReplaceAllString(line, "")
	}
	return strings.Join(lines, "\n")
}
