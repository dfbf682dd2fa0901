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

package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/cache"
)

type RedisConfig struct {
	Host string
	Port int
	// TTL of cached annotations. Zero keeps them forever.
	TTL time.Duration
}

func NewRedisClient(conf RedisConfig) cache.Client {
	return &redisClient{
		Client: redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%d", conf.Host, conf.Port)}),
		ttl: conf.TTL,
	}
}

type redisClient struct {
	*redis.Client
	ttl time.Duration
}

func (r *redisClient) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.WithContext(ctx).Get(key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (r *redisClient) Set(ctx context.Context, key string, value []byte) error {
	return r.WithContext(ctx).Set(key, value, r.ttl).Err()
}

func (r *redisClient) Ready() bool {
	return r.Ping().Err() == nil
}
