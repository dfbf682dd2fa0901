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

package phrases

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Set is a normalized, deduplicated collection of lower case words and phrases.
type Set struct {
	entries map[string]struct{}
}

// New normalizes raw candidates into a Set. Candidates are trimmed, runs of
// whitespace inside a phrase are collapsed to a single space and the result is
// lower cased using Swedish casing rules. Empty candidates are dropped.
func New(raw ...string) Set {
	lower := cases.Lower(language.Swedish)
	set := Set{entries: make(map[string]struct{}, len(raw))}
	for _, candidate := range raw {
		phrase := normalize(lower, candidate)
		if phrase == "" {
			continue
		}
		set.entries[phrase] = struct{}{}
	}
	return set
}

func normalize(lower cases.Caser, candidate string) string {
	fields := strings.Fields(candidate)
	if len(fields) == 0 {
		return ""
	}
	return norm.NFC.String(lower.String(strings.Join(fields, " ")))
}

// ParseFile normalizes the content of an uploaded file, one phrase per line.
func ParseFile(content string) Set {
	content = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(content)
	return New(strings.Split(content, "\n")...)
}

// ParseInline normalizes the comma separated value of the inline form field.
func ParseInline(content string) Set {
	return New(strings.Split(content, ",")...)
}

func (s Set) Len() int {
	return len(s.entries)
}

func (s Set) Contains(phrase string) bool {
	_, ok := s.entries[phrase]
	return ok
}

// Display returns the phrases in natural ascending order.
func (s Set) Display() []string {
	res := make([]string, 0, len(s.entries))
	for phrase := range s.entries {
		res = append(res, phrase)
	}
	sortNatural(res)
	return res
}

// String joins the display order so it can be edited and sent back as the inline field.
func (s Set) String() string {
	return strings.Join(s.Display(), ", ")
}

// MatchOrder returns the phrases longest first. Phrases of equal length keep
// their display order.
func (s Set) MatchOrder() []string {
	res := s.Display()
	sort.SliceStable(res, func(i, j int) bool {
		return utf8.RuneCountInString(res[i]) > utf8.RuneCountInString(res[j])
	})
	return res
}
