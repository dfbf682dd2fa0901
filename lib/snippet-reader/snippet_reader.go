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

package snippet_reader

import (
	"io"
)

// Line is one line of input text. Index is its position in the input, starting at 0.
type Line struct {
	Index int
	Text  string
}

type Client interface {
	ReadLines(r io.Reader) <-chan Value
}

// Value is sent on a line channel. The last value of every channel carries io.EOF
// or the error that stopped the reader.
type Value struct {
	Line *Line
	Err  error
}

func ReadChannelWithCallback(values <-chan Value, callback func(line *Line) error) error {
	for value := range values {
		if value.Err == io.EOF {
			break
		} else if value.Err != nil {
			drain(values)
			return value.Err
		}
		if err := callback(value.Line); err != nil {
			drain(values)
			return err
		}
	}
	return nil
}

// ReadAll collects every line of the channel.
func ReadAll(values <-chan Value) ([]*Line, error) {
	var lines []*Line
	err := ReadChannelWithCallback(values, func(line *Line) error {
		lines = append(lines, line)
		return nil
	})
	return lines, err
}

// drain unblocks the reader goroutine when the consumer stops early.
func drain(values <-chan Value) {
	go func() {
		for range values {
		}
	}()
}
