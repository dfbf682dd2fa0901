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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pos"
)

// NewHTTP returns an annotator which posts {"text": ...} to url and expects a
// Document in return.
func NewHTTP(url string, timeout time.Duration) Annotator {
	return &httpAnnotator{
		Url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type httpAnnotator struct {
	Url        string
	httpClient lib.HttpClient
}

type httpRequest struct {
	Text string `json:"text"`
}

func (h *httpAnnotator) Annotate(ctx context.Context, text string) ([]pos.Sentence, error) {
	text, err := normalize(text)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(httpRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.Url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tagger request: %w", err)
	}
	defer resp.Body.Close()

	b, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tagger responded %d: %s", resp.StatusCode, string(b))
	}

	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("tagger response: %w", err)
	}

	return canonical(doc), nil
}
