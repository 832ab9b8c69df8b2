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
)

// 🧪 TestKindSemantics pins the exact text contract of each kind
func TestKindSemantics(t *testing.T) {
	tests := []struct {
		name  string
		step  Step
		input string
		want  string
	}{
		{
			name:  "normalize_whitespace",
			step:  Step{Kind: KindNormalizeWhitespace},
			input: "  hello   world  ",
			want:  "hello world",
		},
		{
			name:  "normalize_whitespace_newlines",
			step:  Step{Kind: KindNormalizeWhitespace},
			input: "a\n\n b\t\tc",
			want:  "a b c",
		},
		{
			name:  "trim_lines",
			step:  Step{Kind: KindTrimLines},
			input: "  a  \n\tb\t\nc",
			want:  "a\nb\nc",
		},
		{
			name:  "remove_empty_lines",
			step:  Step{Kind: KindRemoveEmptyLines},
			input: "a\n\n  \nb",
			want:  "a\nb",
		},
		{
			name:  "title_case",
			step:  Step{Kind: KindTitleCase},
			input: "hello WORLD",
			want:  "Hello World",
		},
		{
			name:  "sentence_case",
			step:  Step{Kind: KindSentenceCase},
			input: "hello. HOW are you? fine! ok",
			want:  "Hello. How are you? Fine! Ok",
		},
		{
			name:  "sentence_case_punctuation_keeps_flag",
			step:  Step{Kind: KindSentenceCase},
			input: `"hello there"`,
			want:  `"Hello there"`,
		},
		{
			name:  "camel_case",
			step:  Step{Kind: KindCamelCase},
			input: "Hello beautiful World",
			want:  "helloBeautifulWorld",
		},
		{
			name:  "pascal_case",
			step:  Step{Kind: KindPascalCase},
			input: "hello beautiful world",
			want:  "HelloBeautifulWorld",
		},
		{
			name:  "snake_case",
			step:  Step{Kind: KindSnakeCase},
			input: "Hello World",
			want:  "hello_world",
		},
		{
			name:  "screaming_snake_case",
			step:  Step{Kind: KindScreamingSnakeCase},
			input: "hello world",
			want:  "HELLO_WORLD",
		},
		{
			name:  "kebab_case",
			step:  Step{Kind: KindKebabCase},
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "remove_duplicate_lines",
			step:  Step{Kind: KindRemoveDuplicateLines},
			input: "a\nb\na\nc\nb",
			want:  "a\nb\nc",
		},
		{
			name:  "sort_lines",
			step:  Step{Kind: KindSortLines},
			input: "banana\napple\ncherry",
			want:  "apple\nbanana\ncherry",
		},
		{
			name:  "sort_lines_reverse",
			step:  Step{Kind: KindSortLinesReverse},
			input: "banana\napple\ncherry",
			want:  "cherry\nbanana\napple",
		},
		{
			name:  "reverse_lines",
			step:  Step{Kind: KindReverseLines},
			input: "a\nb\nc",
			want:  "c\nb\na",
		},
		{
			name:  "add_line_numbers",
			step:  Step{Kind: KindAddLineNumbers},
			input: "alpha\nbeta",
			want:  "   1: alpha\n   2: beta",
		},
		{
			name:  "remove_line_numbers",
			step:  Step{Kind: KindRemoveLineNumbers},
			input: "  1: alpha\n2. beta\ngamma",
			want:  "alpha\nbeta\ngamma",
		},
		{
			name:  "remove_line_numbers_stuck",
			step:  Step{Kind: KindRemoveLineNumbersStuck},
			input: "1import React\n93\t\tconst foo = 42;",
			want:  "import React\n\t\tconst foo = 42;",
		},
		{
			name:  "join_lines",
			step:  Step{Kind: KindJoinLines, Separator: ", "},
			input: "a\nb\nc",
			want:  "a, b, c",
		},
		{
			name:  "split_to_lines",
			step:  Step{Kind: KindSplitToLines, Delimiter: ","},
			input: "a,b,c",
			want:  "a\nb\nc",
		},
		{
			name:  "wrap_lines",
			step:  Step{Kind: KindWrapLines, Width: 10},
			input: "a long line of words\nshort",
			want:  "a long\nline of\nwords\nshort",
		},
		{
			name:  "fix_smart_quotes",
			step:  Step{Kind: KindFixSmartQuotes},
			input: "‘hello’ “world”",
			want:  `'hello' "world"`,
		},
		{
			name:  "fix_smart_quotes_dashes",
			step:  Step{Kind: KindFixSmartQuotes},
			input: "a–b—c…",
			want:  "a-b--c...",
		},
		{
			name:  "remove_non_ascii",
			step:  Step{Kind: KindRemoveNonASCII},
			input: "café résumé",
			want:  "caf rsum",
		},
		{
			name:  "normalize_unicode_nfc",
			step:  Step{Kind: KindNormalizeUnicode},
			input: "é",
			want:  "é",
		},
		{
			name:  "remove_emojis",
			step:  Step{Kind: KindRemoveEmojis},
			input: "hi \U0001F600 there ❤️",
			want:  "hi  there ",
		},
		{
			name:  "remove_emojis_keeps_plain_symbols",
			step:  Step{Kind: KindRemoveEmojis},
			input: "1 + 1 = 2 ©",
			want:  "1 + 1 = 2 ©",
		},
		{
			name:  "strip_formatting",
			step:  Step{Kind: KindStripFormatting},
			input: "<b>bold</b>  and   <i>italic</i>",
			want:  "bold and italic",
		},
		{
			name:  "tabs_to_spaces",
			step:  Step{Kind: KindTabsToSpaces, Spaces: 4},
			input: "\ta\tb",
			want:  "    a    b",
		},
		{
			name:  "spaces_to_tabs_leading_only",
			step:  Step{Kind: KindSpacesToTabs, Spaces: 4},
			input: "        x  y\n   short",
			want:  "\t\tx  y\n   short",
		},
		{
			name:  "remove_urls",
			step:  Step{Kind: KindRemoveURLs},
			input: "see https://example.com/page now",
			want:  "see  now",
		},
		{
			name:  "remove_emails",
			step:  Step{Kind: KindRemoveEmails},
			input: "mail me at bob@example.com today",
			want:  "mail me at  today",
		},
		{
			name:  "remove_phone_numbers",
			step:  Step{Kind: KindRemovePhoneNumbers},
			input: "call (555) 123-4567 or +1 555.987.6543",
			want:  "call  or ",
		},
		{
			name:  "remove_markdown",
			step:  Step{Kind: KindRemoveMarkdown},
			input: "# Title\n**bold** and *italic*\n[link](https://x.dev)\n`code`\n- item",
			want:  "Title\nbold and italic\nlink\ncode\nitem",
		},
		{
			name:  "unix_line_endings",
			step:  Step{Kind: KindUnixLineEndings},
			input: "a\r\nb\rc\nd",
			want:  "a\nb\nc\nd",
		},
		{
			name:  "windows_line_endings",
			step:  Step{Kind: KindWindowsLineEndings},
			input: "a\r\nb\nc",
			want:  "a\r\nb\r\nc",
		},
		{
			name:  "extract_numbers",
			step:  Step{Kind: KindExtractNumbers},
			input: "pay $42.50 or -7 units, order #19",
			want:  "42.50\n-7\n19",
		},
		{
			name:  "encode_html_entities",
			step:  Step{Kind: KindEncodeHTMLEntities},
			input: `<a href="x">it's & that</a>`,
			want:  "&lt;a href=&quot;x&quot;&gt;it&#39;s &amp; that&lt;/a&gt;",
		},
		{
			name:  "decode_html_entities",
			step:  Step{Kind: KindDecodeHTMLEntities},
			input: "&lt;b&gt;&amp;&nbsp;&quot;&#39;",
			want:  `<b>& "'`,
		},
		{
			name:  "slugify",
			step:  Step{Kind: KindSlugify},
			input: "Hello World! 2024",
			want:  "hello-world-2024",
		},
		{
			name:  "regex_replace",
			step:  Step{Kind: KindRegexReplace, Pattern: `\d+`, Replacement: "N"},
			input: "a1b22c333",
			want:  "aNbNcN",
		},
		{
			name:  "find_replace",
			step:  Step{Kind: KindFindReplace, Find: "foo", Replace: "bar"},
			input: "foo foo",
			want:  "bar bar",
		},
		{
			name:  "add_prefix",
			step:  Step{Kind: KindAddPrefix, Prefix: "> "},
			input: "quoted",
			want:  "> quoted",
		},
		{
			name:  "add_suffix",
			step:  Step{Kind: KindAddSuffix, Suffix: "!"},
			input: "done",
			want:  "done!",
		},
		{
			name:  "remove_prefix",
			step:  Step{Kind: KindRemovePrefix, Prefix: "> "},
			input: "> quoted",
			want:  "quoted",
		},
		{
			name:  "remove_suffix",
			step:  Step{Kind: KindRemoveSuffix, Suffix: "!"},
			input: "done!",
			want:  "done",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.step, tt.input))
		})
	}
}

func TestRemoveDuplicateLinesIdempotent(t *testing.T) {
	input := "a\nb\na\nc\nb\nc\na"
	once := Apply(Step{Kind: KindRemoveDuplicateLines}, input)
	twice := Apply(Step{Kind: KindRemoveDuplicateLines}, once)
	assert.Equal(t, once, twice)
}

func TestLineEndingsRoundTrip(t *testing.T) {
	input := "a\r\nb\rc\nd"
	unix := Apply(Step{Kind: KindUnixLineEndings}, input)
	windows := Apply(Step{Kind: KindWindowsLineEndings}, unix)
	assert.Equal(t, unix, Apply(Step{Kind: KindUnixLineEndings}, windows))
}

func TestRegexReplaceCachesCompiledPatterns(t *testing.T) {
	step := Step{Kind: KindRegexReplace, Pattern: `cache-me-\d+`, Replacement: "x"}
	assert.Equal(t, "x", Apply(step, "cache-me-1"))

	cached, ok := regexCache.Get(step.Pattern)
	assert.True(t, ok, "compiled pattern should be cached")
	assert.NotNil(t, cached)

	// Second compile must come from the cache and behave identically.
	assert.Equal(t, "x x", Apply(step, "cache-me-1 cache-me-2"))
}
