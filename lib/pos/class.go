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

import (
	"fmt"
	"strings"
)

// Class is a highlight category. The zero value means "no class".
type Class int

const (
	None Class = iota
	Adjective
	Adverb
	Verb
	Pronoun
	Forbidden
)

// Classes lists every selectable class in display order.
var Classes = []Class{Adjective, Adverb, Verb, Pronoun, Forbidden}

// Label is the mark-up label of a class. None has no label.
func (c Class) Label() string {
	switch c {
	case Adjective:
		return "adjektiv"
	case Adverb:
		return "adverb"
	case Verb:
		return "verb"
	case Pronoun:
		return "pronomen"
	case Forbidden:
		return "forbidden"
	default:
		return ""
	}
}

func (c Class) String() string {
	if c == None {
		return "none"
	}
	return c.Label()
}

// ClassOf maps a tag onto its highlight class.
func ClassOf(tag Tag) Class {
	switch tag {
	case ADJ:
		return Adjective
	case ADV:
		return Adverb
	case VERB:
		return Verb
	case PRON:
		return Pronoun
	case ADP, AUX, CCONJ, DET, INTJ, NOUN, NUM, PART, PROPN, PUNCT, SCONJ, SYM, X:
		return None
	default:
		return None
	}
}

// ParseClass accepts either a label ("adjektiv") or the upper case tag name ("ADJ", "FORBIDDEN").
func ParseClass(s string) (Class, error) {
	switch strings.TrimSpace(s) {
	case "adjektiv", "ADJ":
		return Adjective, nil
	case "adverb", "ADV":
		return Adverb, nil
	case "verb", "VERB":
		return Verb, nil
	case "pronomen", "PRON":
		return Pronoun, nil
	case "forbidden", "FORBIDDEN":
		return Forbidden, nil
	}
	return None, fmt.Errorf("unknown class %q", s)
}
