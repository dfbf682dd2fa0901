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

type htmlStack struct {
	names           []string
	disallowedDepth int
}

func (s *htmlStack) push(name string) {
	s.names = append(s.names, name)
	if s.disallowedDepth == 0 {
		if _, ok := disallowedNodes[name]; ok {
			s.disallowedDepth = len(s.names)
		}
	}
}

// pop removes name and everything opened after it. An end tag that was never
// opened is ignored.
func (s *htmlStack) pop(name string) {
	for i := len(s.names) - 1; i >= 0; i-- {
		if s.names[i] != name {
			continue
		}
		s.names = s.names[:i]
		if s.disallowedDepth > len(s.names) {
			s.disallowedDepth = 0
		}
		return
	}
}

func (s *htmlStack) disallowed() bool {
	return s.disallowedDepth > 0
}
