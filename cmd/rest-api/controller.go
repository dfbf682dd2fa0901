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

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"unicode/utf8"

	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/annotator"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/phrases"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pipeline"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pos"
	snippet_reader "gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/snippet-reader"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/snippet-reader/html"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/snippet-reader/text"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/stats"
)

type contentType int

const (
	contentTypeText contentType = iota
	contentTypeHTML
)

var allowedContentTypeEnumMap = map[string]contentType{
	"text/plain": contentTypeText,
	"text/html":  contentTypeHTML,
}

var lineReaders = map[contentType]snippet_reader.Client{
	contentTypeText: text.SnippetReader{},
	contentTypeHTML: html.SnippetReader{},
}

type AnalyseResponse struct {
	Result         string          `json:"result"`
	Lines          []pipeline.Line `json:"lines"`
	Stats          stats.Document  `json:"stats"`
	ForbiddenWords string          `json:"forbidden_words"`
}

type controller struct {
	pipeline *pipeline.Pipeline
	defaults phrases.Set
	// cache backs the annotator, nil when annotations are not cached.
	cache cache.Client
}

// phraseSet parses the inline list, falling back to the defaults when it is empty.
func (c controller) phraseSet(inline string) phrases.Set {
	if strings.TrimSpace(inline) == "" {
		return c.defaults
	}
	return phrases.ParseInline(inline)
}

func parseClass(raw string) (pos.Class, error) {
	class, err := pos.ParseClass(raw)
	if err != nil {
		return pos.None, NewHttpError(400, err)
	}
	return class, nil
}

func (c controller) Analyse(ctx context.Context, req lib.AnalyseRequest) (AnalyseResponse, error) {
	class, err := parseClass(req.ShowClass)
	if err != nil {
		return AnalyseResponse{}, err
	}
	if !utf8.ValidString(req.InputText) {
		return AnalyseResponse{}, NewHttpError(400, errors.New("input text must be valid utf-8"))
	}

	set := c.phraseSet(req.ForbiddenWords)
	return c.run(ctx, pipeline.Request{
		Text:    req.InputText,
		Class:   class,
		Phrases: set,
	})
}

// AnalyseRaw analyses a request body, split into lines by the reader registered for its content type.
func (c controller) AnalyseRaw(ctx context.Context, body io.Reader, ct contentType, showClass, forbiddenWords string) (AnalyseResponse, error) {
	class, err := parseClass(showClass)
	if err != nil {
		return AnalyseResponse{}, err
	}
	reader, ok := lineReaders[ct]
	if !ok {
		return AnalyseResponse{}, NewHttpError(400, errors.New("invalid content type - must be text/html or text/plain"))
	}

	b, err := ioutil.ReadAll(body)
	if err != nil {
		return AnalyseResponse{}, NewHttpError(400, fmt.Errorf("could not read request body: %w", err))
	}
	if !utf8.Valid(b) {
		return AnalyseResponse{}, NewHttpError(400, errors.New("input text must be valid utf-8"))
	}

	return c.run(ctx, pipeline.Request{
		Lines:   reader.ReadLines(bytes.NewReader(b)),
		Class:   class,
		Phrases: c.phraseSet(forbiddenWords),
	})
}

func (c controller) run(ctx context.Context, req pipeline.Request) (AnalyseResponse, error) {
	res, err := c.pipeline.Run(ctx, req)
	if errors.Is(err, pipeline.ErrUnknownClass) || errors.Is(err, annotator.ErrInvalidEncoding) {
		return AnalyseResponse{}, NewHttpError(400, err)
	} else if err != nil {
		return AnalyseResponse{}, err
	}

	return AnalyseResponse{
		Result:         res.HTML,
		Lines:          res.Lines,
		Stats:          res.Stats,
		ForbiddenWords: req.Phrases.String(),
	}, nil
}

// Upload parses a newline separated phrase list. A nil reader returns the defaults.
func (c controller) Upload(file io.Reader) (lib.PhraseList, error) {
	if file == nil {
		return phraseList(c.defaults), nil
	}

	b, err := ioutil.ReadAll(file)
	if err != nil {
		return lib.PhraseList{}, NewHttpError(400, fmt.Errorf("could not read uploaded file: %w", err))
	}
	if !utf8.Valid(b) {
		return lib.PhraseList{}, NewHttpError(400, errors.New("uploaded file must be valid utf-8"))
	}
	return phraseList(phrases.ParseFile(string(b))), nil
}

func (c controller) ForbiddenWords() lib.PhraseList {
	return phraseList(c.defaults)
}

func (c controller) Classes() lib.ClassList {
	labels := make([]string, len(pos.Classes))
	for i, class := range pos.Classes {
		labels[i] = class.Label()
	}
	return lib.ClassList{Classes: labels}
}

// Health reports whether the annotation cache can be reached.
func (c controller) Health() (lib.Health, bool) {
	switch {
	case c.cache == nil:
		return lib.Health{Status: "ok", Cache: string(cache.None)}, true
	case c.cache.Ready():
		return lib.Health{Status: "ok", Cache: "ready"}, true
	default:
		return lib.Health{Status: "degraded", Cache: "unavailable"}, false
	}
}

func phraseList(set phrases.Set) lib.PhraseList {
	return lib.PhraseList{
		ForbiddenWords: set.String(),
		Entries:        set.Display(),
		Count:          set.Len(),
	}
}
