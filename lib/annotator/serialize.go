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
	"sync"

	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pos"
)

// Serialize guards an annotator which is not safe for concurrent use, so that
// only one call runs at a time.
func Serialize(a Annotator) Annotator {
	return &serialized{annotator: a}
}

type serialized struct {
	annotator Annotator
	mut       sync.Mutex
}

func (s *serialized) Annotate(ctx context.Context, text string) ([]pos.Sentence, error) {
	s.mut.Lock()
	defer s.mut.Unlock()

	return s.annotator.Annotate(ctx, text)
}
