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

package text

import (
	"bufio"
	"bytes"
	"io"

	snippet_reader "gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/snippet-reader"
)

// MaxLineLength is the longest line the reader accepts.
const MaxLineLength = 1 << 20

type SnippetReader struct{}

func (SnippetReader) ReadLines(r io.Reader) <-chan snippet_reader.Value {
	return ReadLines(r)
}

// ReadLines splits r on line breaks ("\n", "\r\n" or a lone "\r"). A final line break does
// not produce an extra empty line.
func ReadLines(r io.Reader) <-chan snippet_reader.Value {
	values := make(chan snippet_reader.Value)
	go readLines(r, values)
	return values
}

func readLines(r io.Reader, values chan snippet_reader.Value) {
	defer close(values)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	scanner.Split(scanLines)
	index := 0
	for scanner.Scan() {
		values <- snippet_reader.Value{
			Line: &snippet_reader.Line{
				Index: index,
				Text:  scanner.Text(),
			},
		}
		index++
	}
	if err := scanner.Err(); err != nil {
		values <- snippet_reader.Value{Err: err}
		return
	}
	values <- snippet_reader.Value{Err: io.EOF}
}

// scanLines is bufio.ScanLines that also ends a line at a lone "\r".
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		switch {
		case data[i] == '\n':
			return i + 1, data[:i], nil
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}
		// a "\n" may still follow the "\r"
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
