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
	"math"
	"unicode/utf8"

	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pos"
)

// Readability is the LIX index of a text and the counts it was computed from.
type Readability struct {
	Index     int
	Sentences int
	Words     int
	LongWords int
}

// NewReadability computes the LIX index over the sentences of a whole text.
// Punctuation is not a word; a long word has more than LongWordLength runes.
func NewReadability(sentences []pos.Sentence) Readability {
	r := Readability{Sentences: len(sentences)}
	for _, sentence := range sentences {
		for _, token := range sentence.Tokens {
			if token.Tag.IsPunct() {
				continue
			}
			r.Words++
			if utf8.RuneCountInString(token.Text) > LongWordLength {
				r.LongWords++
			}
		}
	}
	r.Index = LIX(r.Sentences, r.Words, r.LongWords)
	return r
}

// LIX returns round(words/sentences + 100*longWords/words), or 0 when there
// are no sentences or no words. Ties round to even.
func LIX(sentences, words, longWords int) int {
	if sentences <= 0 || words <= 0 {
		return 0
	}
	lix := float64(words)/float64(sentences) + 100*float64(longWords)/float64(words)
	return int(math.RoundToEven(lix))
}
