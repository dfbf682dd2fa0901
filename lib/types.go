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

package lib

// AnalyseRequest is the body of an analysis. ForbiddenWords is a comma separated list;
// when empty the default list is used.
type AnalyseRequest struct {
	InputText      string `json:"input_text" form:"input_text"`
	ShowClass      string `json:"show_class" form:"show_class" binding:"required"`
	ForbiddenWords string `json:"forbidden_words" form:"forbidden_words"`
}

// PhraseList describes a forbidden phrase set. ForbiddenWords is the display string.
type PhraseList struct {
	ForbiddenWords string   `json:"forbidden_words"`
	Entries        []string `json:"entries"`
	Count          int      `json:"count"`
}

type ClassList struct {
	Classes []string `json:"classes"`
}

type Health struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}
