/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package highlight

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

type span struct {
	start, end int
}

// Match marks every occurrence of phrases in line. Phrases must be given
// longest first: a region claimed by one phrase is never matched again, so a
// long phrase is not fragmented by a shorter phrase it contains.
//
// Matching is case insensitive and literal, and an occurrence may not start or
// end inside a run of word characters. Marked text keeps its original casing.
func Match(line string, phrases []string, label string) (string, int) {
	var spans []span
	for _, phrase := range phrases {
		if phrase == "" {
			continue
		}
		spans = findAll(line, phrase, spans)
	}
	if len(spans) == 0 {
		return line, 0
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].start < spans[j].start
	})

	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(line[last:s.start])
		b.WriteString(Span(label, line[s.start:s.end]))
		last = s.end
	}
	b.WriteString(line[last:])

	return b.String(), len(spans)
}

// findAll appends the non-overlapping occurrences of phrase to spans.
func findAll(line, phrase string, spans []span) []span {
	for i := 0; i < len(line); {
		if end, ok := matchAt(line, i, phrase); ok && atBoundary(line, i, end) && !overlaps(spans, i, end) {
			spans = append(spans, span{start: i, end: end})
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(line[i:])
		i += size
	}
	return spans
}

// matchAt reports whether phrase occurs at byte offset i of s, ignoring case,
// and returns the offset just past the occurrence.
func matchAt(s string, i int, phrase string) (int, bool) {
	for _, want := range phrase {
		if i >= len(s) {
			return 0, false
		}
		got, size := utf8.DecodeRuneInString(s[i:])
		if !equalFold(got, want) {
			return 0, false
		}
		i += size
	}
	return i, true
}

func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}

// atBoundary reports whether s[start:end] neither starts nor ends in the middle
// of a word.
func atBoundary(s string, start, end int) bool {
	if start > 0 {
		before, _ := utf8.DecodeLastRuneInString(s[:start])
		first, _ := utf8.DecodeRuneInString(s[start:])
		if isWordRune(before) && isWordRune(first) {
			return false
		}
	}
	if end < len(s) {
		after, _ := utf8.DecodeRuneInString(s[end:])
		final, _ := utf8.DecodeLastRuneInString(s[:end])
		if isWordRune(after) && isWordRune(final) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func overlaps(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}
