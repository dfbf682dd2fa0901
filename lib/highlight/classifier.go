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

package highlight

import (
	"fmt"
	"strings"

	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pos"
)

// Span wraps text in a span carrying label as its class.
func Span(label, text string) string {
	return fmt.Sprintf(`<span class="%s">%s</span>`, label, text)
}

// Classify joins the tokens of a line with single spaces, marking every token
// whose class is the selected one. It returns the marked line and the number of
// marked tokens.
func Classify(sentences []pos.Sentence, selected pos.Class) (string, int) {
	var count int
	words := make([]string, 0, len(sentences)*8)
	for _, sentence := range sentences {
		for _, token := range sentence.Tokens {
			text := token.Text
			if selected != pos.None && pos.ClassOf(token.Tag) == selected {
				text = Span(selected.Label(), text)
				count++
			}
			words = append(words, text)
		}
	}
	return strings.Join(words, " "), count
}
