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

package stats

import (
	"strconv"

	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pos"
)

// LongWordLength is the rune count a word has to exceed to count as long.
const LongWordLength = 6

// Document holds the statistics of one analysed text.
type Document struct {
	Count       int     `json:"count"`
	Total       int     `json:"total"`
	Percentage  float64 `json:"percentage"`
	Readability int     `json:"readability"`
	Sentences   int     `json:"sentences"`
	Words       int     `json:"words"`
	LongWords   int     `json:"long_words"`
}

// Aggregator folds per line counts into document totals.
type Aggregator struct {
	count int
	total int
}

// AddLine adds the word total and match count of one line.
func (a *Aggregator) AddLine(total, count int) {
	a.total += total
	a.count += count
}

// Document returns the totals along with the readability of the whole text.
func (a *Aggregator) Document(readability Readability) Document {
	return Document{
		Count:       a.count,
		Total:       a.total,
		Percentage:  Percentage(a.count, a.total),
		Readability: readability.Index,
		Sentences:   readability.Sentences,
		Words:       readability.Words,
		LongWords:   readability.LongWords,
	}
}

// Percentage returns count as a percentage of total, rounded to one decimal.
// Ties round to even on the exact binary value, so 6.25 gives 6.2.
func Percentage(count, total int) float64 {
	if total <= 0 {
		return 0.0
	}
	p := float64(count) / float64(total) * 100
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(p, 'f', 1, 64), 64)
	if err != nil {
		return p
	}
	return rounded
}

// CountWords returns the number of tokens that are not punctuation.
func CountWords(sentences []pos.Sentence) int {
	var n int
	for _, sentence := range sentences {
		for _, token := range sentence.Tokens {
			if !token.Tag.IsPunct() {
				n++
			}
		}
	}
	return n
}
