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

package pos

import "strings"

// Tag is a universal part-of-speech tag as produced by the tagger.
type Tag string

const (
	ADJ   Tag = "ADJ"
	ADP   Tag = "ADP"
	ADV   Tag = "ADV"
	AUX   Tag = "AUX"
	CCONJ Tag = "CCONJ"
	DET   Tag = "DET"
	INTJ  Tag = "INTJ"
	NOUN  Tag = "NOUN"
	NUM   Tag = "NUM"
	PART  Tag = "PART"
	PRON  Tag = "PRON"
	PROPN Tag = "PROPN"
	PUNCT Tag = "PUNCT"
	SCONJ Tag = "SCONJ"
	SYM   Tag = "SYM"
	VERB  Tag = "VERB"
	X     Tag = "X"
)

var tags = map[string]Tag{
	"ADJ":   ADJ,
	"ADP":   ADP,
	"ADV":   ADV,
	"AUX":   AUX,
	"CCONJ": CCONJ,
	"DET":   DET,
	"INTJ":  INTJ,
	"NOUN":  NOUN,
	"NUM":   NUM,
	"PART":  PART,
	"PRON":  PRON,
	"PROPN": PROPN,
	"PUNCT": PUNCT,
	"SCONJ": SCONJ,
	"SYM":   SYM,
	"VERB":  VERB,
	"X":     X,
}

// ParseTag returns the Tag for s. Anything outside the UPOS tag set is X.
func ParseTag(s string) Tag {
	if tag, ok := tags[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return tag
	}
	return X
}

func (t Tag) IsPunct() bool {
	return t == PUNCT
}

// Token is a single tagged word of a sentence.
type Token struct {
	Text string `json:"text"`
	Tag  Tag    `json:"upos"`
}

// Sentence is an ordered run of tokens, as segmented by the tagger.
type Sentence struct {
	Tokens []Token `json:"words"`
}

// Texts returns the text of every token in every sentence, in order.
func Texts(sentences []Sentence) []string {
	var res []string
	for _, sentence := range sentences {
		for _, token := range sentence.Tokens {
			res = append(res, token.Text)
		}
	}
	return res
}
