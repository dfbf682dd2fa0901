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

package annotator

import (
	"context"
	"errors"
	"unicode/utf8"

	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pos"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidEncoding is returned for text that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("text is not valid utf-8")

// Annotator splits text into sentences of part-of-speech tagged tokens.
type Annotator interface {
	Annotate(ctx context.Context, text string) ([]pos.Sentence, error)
}

// Document is the wire format shared by the HTTP and gRPC taggers:
//
//	{"sentences": [{"words": [{"text": "Han", "upos": "PRON"}]}]}
type Document struct {
	Sentences []pos.Sentence `json:"sentences"`
}

// normalize rejects invalid UTF-8 and composes the text to NFC so that "å" is a
// single rune whichever way it was typed.
func normalize(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", ErrInvalidEncoding
	}
	return norm.NFC.String(text), nil
}

// canonical maps every tag of the document onto the UPOS tag set.
func canonical(doc Document) []pos.Sentence {
	for i := range doc.Sentences {
		for j := range doc.Sentences[i].Tokens {
			token := &doc.Sentences[i].Tokens[j]
			token.Tag = pos.ParseTag(string(token.Tag))
		}
	}
	return doc.Sentences
}
