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

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/annotator"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/highlight"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/phrases"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pos"
	snippet_reader "gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/snippet-reader"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/snippet-reader/text"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/stats"
)

const (
	DefaultBreak   = "<br>"
	DefaultWorkers = 4
)

var ErrUnknownClass = errors.New("unknown highlight class")

type Option func(*Pipeline)

// WithWorkers sets how many lines are annotated at once.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithBreak sets the marker standing in for line breaks in the output.
func WithBreak(marker string) Option {
	return func(p *Pipeline) {
		p.breakMarker = marker
	}
}

// Pipeline marks up a text line by line and computes its statistics.
type Pipeline struct {
	annotator   annotator.Annotator
	workers     int
	breakMarker string
}

func New(a annotator.Annotator, opts ...Option) *Pipeline {
	p := &Pipeline{
		annotator:   a,
		workers:     DefaultWorkers,
		breakMarker: DefaultBreak,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type Request struct {
	Text string
	// Lines replaces splitting Text on line breaks, e.g. with the lines of an
	// HTML document. Text is ignored when Lines is set.
	Lines   <-chan snippet_reader.Value
	Class   pos.Class
	Phrases phrases.Set
}

// Line is the outcome for one input line. Blank lines carry no text and no counts.
type Line struct {
	Index int    `json:"index"`
	Blank bool   `json:"blank"`
	Text  string `json:"text"`
	Count int    `json:"count"`
	Total int    `json:"total"`
}

type Result struct {
	HTML  string         `json:"result"`
	Lines []Line         `json:"lines"`
	Stats stats.Document `json:"stats"`
}

func validClass(class pos.Class) bool {
	for _, c := range pos.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Run analyses a text. Non-blank lines are annotated concurrently, and the
// whole text is annotated once more for readability so that sentences spanning
// line breaks are counted once. Any annotator error fails the whole run.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	if !validClass(req.Class) {
		return Result{}, ErrUnknownClass
	}
	start := time.Now()

	values := req.Lines
	if values == nil {
		values = text.ReadLines(strings.NewReader(req.Text))
	}
	lines, err := snippet_reader.ReadAll(values)
	if err != nil {
		return Result{}, err
	}

	document := req.Text
	if req.Lines != nil {
		texts := make([]string, len(lines))
		for i, line := range lines {
			texts[i] = line.Text
		}
		document = strings.Join(texts, "\n")
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]Line, len(lines))
	matchOrder := req.Phrases.MatchOrder()
	jobs := make(chan int)
	errChan := make(chan error, len(lines)+1)
	var wg sync.WaitGroup

	var readability stats.Readability
	if strings.TrimSpace(document) != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sentences, err := p.annotator.Annotate(runCtx, document)
			if err != nil {
				errChan <- fmt.Errorf("annotate document: %w", err)
				cancel()
				return
			}
			readability = stats.NewReadability(sentences)
		}()
	}

	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if runCtx.Err() != nil {
					continue
				}
				line, err := p.annotateLine(runCtx, lines[i], req.Class, matchOrder)
				if err != nil {
					errChan <- err
					cancel()
					continue
				}
				results[i] = line
			}
		}()
	}

feed:
	for i, line := range lines {
		if strings.TrimSpace(line.Text) == "" {
			results[i] = Line{Index: line.Index, Blank: true}
			continue
		}
		select {
		case jobs <- i:
		case <-runCtx.Done():
			break feed
		}
	}
	close(jobs)

	// Block until the document pass and every worker has finished, then
	// report the first error if any.
	wg.Wait()
	close(errChan)
	if err := <-errChan; err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := p.assemble(results, readability)
	log.Debug().
		Str("class", req.Class.String()).
		Int("lines", len(lines)).
		Int("count", res.Stats.Count).
		Dur("took", time.Since(start)).
		Msg("text analysed")
	return res, nil
}

func (p *Pipeline) annotateLine(ctx context.Context, line *snippet_reader.Line, class pos.Class, matchOrder []string) (Line, error) {
	sentences, err := p.annotator.Annotate(ctx, line.Text)
	if err != nil {
		return Line{}, fmt.Errorf("annotate line %d: %w", line.Index+1, err)
	}

	res := Line{
		Index: line.Index,
		Total: stats.CountWords(sentences),
	}
	if class == pos.Forbidden {
		joined := strings.Join(pos.Texts(sentences), " ")
		res.Text, res.Count = highlight.Match(joined, matchOrder, pos.Forbidden.Label())
	} else {
		res.Text, res.Count = highlight.Classify(sentences, class)
	}
	return res, nil
}

func (p *Pipeline) assemble(lines []Line, readability stats.Readability) Result {
	var agg stats.Aggregator
	pieces := make([]string, len(lines))
	for i, line := range lines {
		if line.Blank {
			pieces[i] = p.breakMarker
			continue
		}
		pieces[i] = line.Text
		agg.AddLine(line.Total, line.Count)
	}

	if lines == nil {
		lines = []Line{}
	}
	return Result{
		HTML:  strings.Join(pieces, p.breakMarker),
		Lines: lines,
		Stats: agg.Document(readability),
	}
}
