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

package testhelpers

import (
	"context"
	"strings"
	"sync"

	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pos"
)

// Sent builds a sentence from "text/TAG" pairs, e.g. Sent("Han/PRON", "log/VERB", "./PUNCT").
func Sent(pairs ...string) pos.Sentence {
	tokens := make([]pos.Token, len(pairs))
	for i, pair := range pairs {
		sep := strings.LastIndex(pair, "/")
		tokens[i] = pos.Token{Text: pair[:sep], Tag: pos.ParseTag(pair[sep+1:])}
	}
	return pos.Sentence{Tokens: tokens}
}

// FakeAnnotator splits text on whitespace, splits trailing punctuation into its
// own PUNCT token and ends a sentence after ".", "!" or "?". Words are tagged
// from Tags by their lower case form; anything else is NOUN.
type FakeAnnotator struct {
	Tags map[string]pos.Tag
	// Err is returned for any text containing FailOn.
	Err    error
	FailOn string

	mut   sync.Mutex
	calls []string
}

func (f *FakeAnnotator) Annotate(_ context.Context, text string) ([]pos.Sentence, error) {
	f.mut.Lock()
	f.calls = append(f.calls, text)
	f.mut.Unlock()

	if f.Err != nil && strings.Contains(text, f.FailOn) {
		return nil, f.Err
	}

	var sentences []pos.Sentence
	var current []pos.Token
	for _, field := range strings.Fields(text) {
		word := strings.TrimRight(field, ".,!?")
		if word != "" {
			tag, ok := f.Tags[strings.ToLower(word)]
			if !ok {
				tag = pos.NOUN
			}
			current = append(current, pos.Token{Text: word, Tag: tag})
		}
		for _, r := range field[len(word):] {
			current = append(current, pos.Token{Text: string(r), Tag: pos.PUNCT})
			if r != ',' {
				sentences = append(sentences, pos.Sentence{Tokens: current})
				current = nil
			}
		}
	}
	if len(current) > 0 {
		sentences = append(sentences, pos.Sentence{Tokens: current})
	}
	return sentences, nil
}

// Calls returns the texts the annotator was called with.
func (f *FakeAnnotator) Calls() []string {
	f.mut.Lock()
	defer f.mut.Unlock()
	return append([]string(nil), f.calls...)
}
