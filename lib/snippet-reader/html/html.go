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

package html

import (
	"io"
	"strings"

	snippet_reader "gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/snippet-reader"
	"golang.org/x/net/html"
)

var disallowedNodes = map[string]struct{}{
	"audio":    {},
	"head":     {},
	"noscript": {},
	"script":   {},
	"style":    {},
	"template": {},
	"textarea": {},
	"title":    {},
	"video":    {},
}

var nonBreakingNodes = map[string]struct{}{
	"span":   {},
	"sub":    {},
	"sup":    {},
	"b":      {},
	"del":    {},
	"em":     {},
	"i":      {},
	"ins":    {},
	"mark":   {},
	"q":      {},
	"s":      {},
	"strike": {},
	"strong": {},
	"u":      {},
	"big":    {},
	"small":  {},
	"a":      {},
	"abbr":   {},
	"cite":   {},
	"code":   {},
	"font":   {},
}

// voidNodes never have an end tag.
var voidNodes = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"link":   {},
	"meta":   {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

type SnippetReader struct{}

func (SnippetReader) ReadLines(r io.Reader) <-chan snippet_reader.Value {
	return ReadLines(r)
}

// ReadLines converts an HTML document into lines of plain text. Block elements
// end the current line, every <br> ends a line even when it is empty, and text
// under disallowed nodes (scripts, styles...) is dropped.
func ReadLines(r io.Reader) <-chan snippet_reader.Value {
	values := make(chan snippet_reader.Value)
	go htmlToLines(r, values)
	return values
}

func htmlToLines(r io.Reader, values chan snippet_reader.Value) {
	defer close(values)

	tokenizer := html.NewTokenizer(r)
	var stack htmlStack
	var line strings.Builder
	index := 0

	emit := func(force bool) {
		text := strings.TrimSpace(line.String())
		line.Reset()
		if text == "" && !force {
			return
		}
		values <- snippet_reader.Value{Line: &snippet_reader.Line{Index: index, Text: text}}
		index++
	}

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// The tokenizer returns io.EOF when finished.
			emit(false)
			values <- snippet_reader.Value{Err: tokenizer.Err()}
			return
		case html.TextToken:
			if !stack.disallowed() {
				writeCollapsed(&line, string(tokenizer.Text()))
			}
		case html.StartTagToken:
			tn, _ := tokenizer.TagName()
			name := string(tn)
			if name == "br" {
				if !stack.disallowed() {
					emit(true)
				}
				continue
			}
			if _, ok := nonBreakingNodes[name]; !ok && !stack.disallowed() {
				emit(false)
			}
			if _, ok := voidNodes[name]; !ok {
				stack.push(name)
			}
		case html.EndTagToken:
			tn, _ := tokenizer.TagName()
			name := string(tn)
			if _, ok := nonBreakingNodes[name]; !ok && !stack.disallowed() {
				emit(false)
			}
			stack.pop(name)
		case html.SelfClosingTagToken:
			tn, _ := tokenizer.TagName()
			if string(tn) == "br" && !stack.disallowed() {
				emit(true)
			}
		}
	}
}

// writeCollapsed writes text with every run of whitespace reduced to one space,
// as a browser would render it.
func writeCollapsed(b *strings.Builder, text string) {
	space := func() {
		if b.Len() > 0 && !strings.HasSuffix(b.String(), " ") {
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		if text != "" {
			space()
		}
		return
	}
	if startsWithSpace(text) {
		space()
	}
	b.WriteString(strings.Join(fields, " "))
	if endsWithSpace(text) {
		b.WriteByte(' ')
	}
}

func startsWithSpace(s string) bool {
	return strings.TrimLeftFunc(s, isSpace) != s
}

func endsWithSpace(s string) bool {
	return strings.TrimRightFunc(s, isSpace) != s
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}
