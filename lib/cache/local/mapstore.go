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

package local

import (
	"context"
	"sync"

	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/cache"
)

func New() cache.Client {
	return &local{
		store: make(map[string][]byte),
		mut:   &sync.RWMutex{},
	}
}

type local struct {
	store map[string][]byte
	mut   *sync.RWMutex
}

func (l *local) Get(_ context.Context, key string) ([]byte, bool, error) {
	l.mut.RLock()
	defer l.mut.RUnlock()

	value, ok := l.store[key]
	return value, ok, nil
}

func (l *local) Set(_ context.Context, key string, value []byte) error {
	l.mut.Lock()
	defer l.mut.Unlock()

	l.store[key] = value
	return nil
}

func (l *local) Ready() bool {
	return true
}
