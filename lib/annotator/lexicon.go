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
	"fmt"
	"io/ioutil"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/blevesearch/segment"
	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pos"
	"gopkg.in/yaml.v2"
)

// Lexicon maps lower case word forms onto their tag.
type Lexicon map[string]pos.Tag

var sentenceEnds = map[string]struct{}{
	".": {},
	"!": {},
	"?": {},
	"…": {},
}

// LoadLexicon reads a YAML file of tag names to word forms, e.g.
//
//	ADJ: [trött, glad]
//	PRON: [han, hon]
func LoadLexicon(path string) (Lexicon, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		log.Error().Msg(fmt.Sprintf("could not find lexicon at %v", path))
		return nil, err
	}

	var words map[string][]string
	if err := yaml.Unmarshal(b, &words); err != nil {
		log.Error().Msg(fmt.Sprintf("could not load lexicon from %v", path))
		return nil, err
	}

	lex := make(Lexicon)
	for name, forms := range words {
		tag := pos.ParseTag(name)
		if tag == pos.X && strings.ToUpper(name) != string(pos.X) {
			return nil, fmt.Errorf("lexicon %v: unknown tag %q", path, name)
		}
		for _, form := range forms {
			lex[strings.ToLower(strings.TrimSpace(form))] = tag
		}
	}

	log.Info().Int("words", len(lex)).Msg(fmt.Sprintf("lexicon set from %v", path))
	return lex, nil
}

// NewLexicon returns an in-process annotator. Text is split into words with
// unicode word segmentation, words are tagged by lexicon lookup and a sentence
// ends after ".", "!", "?" or "…". Words missing from the lexicon are X.
func NewLexicon(lex Lexicon) Annotator {
	return lexiconAnnotator{lexicon: lex}
}

type lexiconAnnotator struct {
	lexicon Lexicon
}

func (l lexiconAnnotator) Annotate(_ context.Context, text string) ([]pos.Sentence, error) {
	text, err := normalize(text)
	if err != nil {
		return nil, err
	}

	var sentences []pos.Sentence
	var current []pos.Token

	segmenter := segment.NewWordSegmenterDirect([]byte(text))
	for segmenter.Segment() {
		word := string(segmenter.Bytes())
		if strings.TrimSpace(word) == "" {
			continue
		}

		current = append(current, pos.Token{Text: word, Tag: l.tag(word, segmenter.Type())})

		if _, ok := sentenceEnds[word]; ok {
			sentences = append(sentences, pos.Sentence{Tokens: current})
			current = nil
		}
	}
	if err := segmenter.Err(); err != nil {
		return nil, err
	}
	if len(current) > 0 {
		sentences = append(sentences, pos.Sentence{Tokens: current})
	}

	return sentences, nil
}

func (l lexiconAnnotator) tag(word string, segmentType int) pos.Tag {
	switch segmentType {
	case segment.Number:
		return pos.NUM
	case segment.None:
		r, _ := utf8.DecodeRuneInString(word)
		if unicode.IsPunct(r) {
			return pos.PUNCT
		}
		return pos.SYM
	}
	if tag, ok := l.lexicon[strings.ToLower(word)]; ok {
		return tag
	}
	return pos.X
}
