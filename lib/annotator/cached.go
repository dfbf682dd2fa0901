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
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pos"
)

const cacheKeyPrefix = "annotation:"

// Cache wraps an annotator with a cache of its results. A failing cache is
// logged and bypassed; it never fails an annotation.
func Cache(a Annotator, c cache.Client) Annotator {
	return &cached{annotator: a, cache: c}
}

type cached struct {
	annotator Annotator
	cache     cache.Client
}

func (c *cached) Annotate(ctx context.Context, text string) ([]pos.Sentence, error) {
	text, err := normalize(text)
	if err != nil {
		return nil, err
	}
	key := CacheKey(text)

	b, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("annotation cache lookup failed")
	} else if ok {
		var sentences []pos.Sentence
		if err := json.Unmarshal(b, &sentences); err == nil {
			return sentences, nil
		}
		log.Warn().Str("key", key).Msg("discarding malformed cached annotation")
	}

	sentences, err := c.annotator.Annotate(ctx, text)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(sentences); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("could not serialize annotation")
	} else if err := c.cache.Set(ctx, key, b); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("annotation cache store failed")
	}

	return sentences, nil
}

// CacheKey is the cache key of an NFC normalized text.
func CacheKey(text string) string {
	sum := sha1.Sum([]byte(text))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
