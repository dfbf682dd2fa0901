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
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortNatural sorts in human order: digit runs compare by numeric value and
// everything else by Swedish collation, so "ord2" < "ord10" and "zon" < "år".
func sortNatural(s []string) {
	// collators keep internal buffers and are not safe for concurrent use.
	c := collate.New(language.Swedish)
	sort.SliceStable(s, func(i, j int) bool {
		return compareNatural(c, s[i], s[j]) < 0
	})
}

func compareNatural(c *collate.Collator, a, b string) int {
	ac, bc := chunks(a), chunks(b)
	for i := 0; i < len(ac) && i < len(bc); i++ {
		var cmp int
		if isDigits(ac[i]) && isDigits(bc[i]) {
			cmp = compareNumeric(ac[i], bc[i])
		} else {
			cmp = c.CompareString(ac[i], bc[i])
		}
		if cmp != 0 {
			return cmp
		}
	}
	switch {
	case len(ac) < len(bc):
		return -1
	case len(ac) > len(bc):
		return 1
	}
	return strings.Compare(a, b)
}

// chunks splits s into alternating runs of digits and non-digits.
func chunks(s string) []string {
	var res []string
	start := 0
	for i, r := range s {
		if i == 0 {
			continue
		}
		prev, _ := utf8.DecodeLastRuneInString(s[:i])
		if unicode.IsDigit(prev) != unicode.IsDigit(r) {
			res = append(res, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		res = append(res, s[start:])
	}
	return res
}

func isDigits(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsDigit(r)
}

func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
