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

package testhelpers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pos"
)

// MockAnnotator is a mock type for the annotator.Annotator type.
type MockAnnotator struct {
	mock.Mock
}

// Annotate provides a mock function with given fields: ctx, text
func (_m *MockAnnotator) Annotate(ctx context.Context, text string) ([]pos.Sentence, error) {
	ret := _m.Called(ctx, text)

	var r0 []pos.Sentence
	if rf, ok := ret.Get(0).(func(context.Context, string) []pos.Sentence); ok {
		r0 = rf(ctx, text)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]pos.Sentence)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, text)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCache is a mock type for the cache.Client type.
type MockCache struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, key
func (_m *MockCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ret := _m.Called(ctx, key)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Bool(1), ret.Error(2)
}

// Set provides a mock function with given fields: ctx, key, value
func (_m *MockCache) Set(ctx context.Context, key string, value []byte) error {
	ret := _m.Called(ctx, key, value)
	return ret.Error(0)
}

// Ready provides a mock function with given fields:
func (_m *MockCache) Ready() bool {
	ret := _m.Called()
	return ret.Bool(0)
}
