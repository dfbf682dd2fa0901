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
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v7"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/cache"
)

type ElasticsearchConfig struct {
	Host  string
	Port  int
	Index string
}

// esDocument is the stored document; the key is the document id.
type esDocument struct {
	Value []byte `json:"value"`
}

type esGetResponse struct {
	Found  bool       `json:"found"`
	Source esDocument `json:"_source"`
}

func NewElasticsearchClient(conf ElasticsearchConfig) (cache.Client, error) {
	return newElasticsearchClient(elasticsearch.Config{
		Addresses: []string{fmt.Sprintf("http://%s:%d", conf.Host, conf.Port)},
	}, conf.Index)
}

func newElasticsearchClient(conf elasticsearch.Config, index string) (cache.Client, error) {
	c, err := elasticsearch.NewClient(conf)
	if err != nil {
		return nil, err
	}
	return &esClient{
		Client: c,
		index:  index,
	}, nil
}

type esClient struct {
	*elasticsearch.Client
	index string
}

func (e *esClient) Get(ctx context.Context, key string) ([]byte, bool, error) {
	res, err := e.Client.Get(e.index, key, e.Client.Get.WithContext(ctx))
	if err != nil {
		return nil, false, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, false, nil
	} else if res.StatusCode != http.StatusOK {
		return nil, false, errors.New(res.String())
	}

	b, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, false, err
	}
	var doc esGetResponse
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, false, err
	}
	if !doc.Found {
		return nil, false, nil
	}
	return doc.Source.Value, true, nil
}

func (e *esClient) Set(ctx context.Context, key string, value []byte) error {
	b, err := json.Marshal(esDocument{Value: value})
	if err != nil {
		return err
	}
	res, err := e.Index(
		e.index,
		strings.NewReader(string(b)),
		e.Index.WithDocumentID(key),
		e.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.New(res.String())
	}
	return nil
}

func (e *esClient) Ready() bool {
	res, err := e.Info()
	if err != nil {
		return false
	}
	defer res.Body.Close()
	return res.StatusCode == http.StatusOK
}
