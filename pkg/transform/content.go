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
	"strconv"
	"strings"
)

const (
	KindExtractNumbers     Kind = "extract_numbers"
	KindEncodeHTMLEntities Kind = "encode_html_entities"
	KindDecodeHTMLEntities Kind = "decode_html_entities"
	KindSlugify            Kind = "slugify"
)

var (
	htmlEncoder = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	slugInvalid = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSep     = regexp.MustCompile(`[\s_]+`)
)

func init() {
	Register(Definition{
		Kind:     KindExtractNumbers,
		Name:     "Extract Numbers",
		Category: "Extraction",
		Aliases:  []string{"numbers"},
		Build:    static(extractNumbers),
	})
	Register(Definition{
		Kind:     KindEncodeHTMLEntities,
		Name:     "Encode HTML Entities",
		Category: "HTML",
		Aliases:  []string{"html-encode"},
		Build:    static(encodeHTMLEntities),
	})
	Register(Definition{
		Kind:     KindDecodeHTMLEntities,
		Name:     "Decode HTML Entities",
		Category: "HTML",
		Aliases:  []string{"html-decode"},
		Build:    static(decodeHTMLEntities),
	})
	Register(Definition{
		Kind:     KindSlugify,
		Name:     "Slugify (URL-safe)",
		Category: "URL",
		Aliases:  []string{"slug"},
		Build:    static(slugify),
	})
}

// extractNumbers keeps only digits, ".", "-" and whitespace, then keeps
// the tokens that parse as real numbers, one per line.
func extractNumbers(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == ' ' || r == '\n' {
			b.WriteRune(r)
		}
	}
	var numbers []string
	for _, token := range strings.Fields(b.String()) {
		if _, err := strconv.ParseFloat(token, 64); err == nil {
			numbers = append(numbers, token)
		}
	}
	return strings.Join(numbers, "\n")
}

func encodeHTMLEntities(text string) string {
	return htmlEncoder.Replace(text)
}

// decodeHTMLEntities substitutes each entity in a fixed sequence. Nested
// entities like "&amp;lt;" therefore decode order-dependently; this
// matches the behavior callers already rely on.
func decodeHTMLEntities(text string) string {
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&quot;", `"`)
	text = strings.ReplaceAll(text, "&#39;", "'")
	return strings.ReplaceAll(text, "&nbsp;", " ")
}

func slugify(text string) string {
	text = strings.ToLower(text)
	text = slugInvalid.ReplaceAllString(text, "")
	text = slugSep.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}
