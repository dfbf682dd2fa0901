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

package phrases

import (
	"fmt"
	"io/ioutil"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

var defaultForbidden = []string{
	"aldrig", "alldeles", "allra", "alltid", "andades", "aningen", "att", "bara", "blick", "borde", "bra",
	"båda", "både", "bör", "började", "börjar", "definitivt", "dessutom", "direkt", "dock", "då", "där",
	"egentligen", "enormt", "ens", "faktiskt", "fantastiskt", "fast", "fastän", "fortfarande", "fram",
	"förmodligen", "försiktigt", "förstås", "försöker", "försökte", "förvisso", "ganska", "gjorde", "grimasera",
	"gråt", "grät", "gärna", "gör", "hade", "handen", "hans", "har", "hela", "heller", "helt", "hennes", "håller",
	"på", "här", "inombords", "intill", "ju", "just", "kan", "kanske", "knappt", "kom", "kunde", "kände",
	"kändes", "känner", "känns", "liksom", "lite", "log", "man", "med", "medan", "men", "mycket", "måste",
	"märker", "märkte", "möjligen", "ner", "nickade", "nog", "nu", "någon", "någonsin", "nämligen", "när",
	"närmast", "nästan", "oavsett", "också", "oerhört", "ofta", "om", "otroligt", "plötsligt", "precis", "redan",
	"riktigt", "samtidigt", "satte", "sedan", "ser", "sin", "själv", "ska", "skrattade", "till", "skulle",
	"kunna", "slutade", "slutar", "snart", "som", "startade", "startar", "ställde", "ställer", "ständigt",
	"stönade", "suckade", "så", "sådan", "såg", "såsom", "säkert", "sällan", "sätter", "tillsynes", "tittade",
	"tittar", "troligen", "troligtvis", "trots", "tvingade", "tårar", "ungefär", "upp", "uppenbarligen", "ut",
	"utan", "utav", "varsin", "varsitt", "verkade", "verkar", "verkligen", "viktigt", "väl", "väldigt",
}

// Default returns the built in forbidden word list.
func Default() Set {
	return New(defaultForbidden...)
}

// Load returns the forbidden word list from a YAML file at the given path.
func Load(path string) (Set, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		log.Error().Msg(fmt.Sprintf("could not find forbidden word list at %v", path))
		return Set{}, err
	}

	type yamlList struct {
		ForbiddenWords []string `yaml:"forbidden_words"`
	}

	var list yamlList
	if err := yaml.Unmarshal(b, &list); err != nil {
		log.Error().Msg(fmt.Sprintf("could not load forbidden word list from %v", path))
		return Set{}, err
	}

	set := New(list.ForbiddenWords...)
	log.Info().Int("phrases", set.Len()).Msg(fmt.Sprintf("forbidden word list set from %v", path))
	return set, nil
}
