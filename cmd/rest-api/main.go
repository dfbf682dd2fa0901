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

package main

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/annotator"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/cache/local"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/cache/remote"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/phrases"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pipeline"
	"google.golang.org/grpc"
)

const (
	annotatorHTTP    = "http"
	annotatorGRPC    = "grpc"
	annotatorLexicon = "lexicon"
)

// config structure
type restAPIConfig struct {
	lib.BaseConfig `mapstructure:",squash"`
	Server         struct {
		HttpPort int `mapstructure:"http_port"`
	}
	Pipeline struct {
		Workers int
	}
	ForbiddenWordsFile string `mapstructure:"forbidden_words_file"`
	Annotator          struct {
		Type        string
		Url         string
		Host        string
		GrpcPort    int    `mapstructure:"grpc_port"`
		LexiconFile string `mapstructure:"lexicon_file"`
		Concurrent  bool
		Timeout     time.Duration
	}
	Cache struct {
		Type cache.Type
		Ttl  time.Duration
	}
	Redis struct {
		Host string
		Port int
	}
	Elasticsearch struct {
		Host  string
		Port  int
		Index string
	}
	Cors struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	}
}

var config restAPIConfig

func initConfig() {
	err := lib.InitializeConfig("./config/rest-api.yml", map[string]interface{}{
		"log_level": "info",
		"server": map[string]interface{}{
			"http_port": 8080,
		},
		"pipeline": map[string]interface{}{
			"workers": pipeline.DefaultWorkers,
		},
		"forbidden_words_file": "",
		"annotator": map[string]interface{}{
			"type":         annotatorLexicon,
			"url":          "http://localhost:5000/tag",
			"host":         "localhost",
			"grpc_port":    50051,
			"lexicon_file": "./config/lexicon.yml",
			"concurrent":   true,
			"timeout":      "30s",
		},
		"cache": map[string]interface{}{
			"type": string(cache.None),
			"ttl":  "24h",
		},
		"redis": map[string]interface{}{
			"host": "localhost",
			"port": 6379,
		},
		"elasticsearch": map[string]interface{}{
			"host":  "localhost",
			"port":  9200,
			"index": "prose-feedback-annotations",
		},
		"cors": map[string]interface{}{
			"allowed_origins": []string{"*"},
		},
	}, &config)
	if err != nil {
		panic(err)
	}
}

func main() {
	initConfig()

	cacheClient, err := newCache()
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	a, closeAnnotator, err := newAnnotator(cacheClient)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	defer closeAnnotator()

	defaults := phrases.Default()
	if config.ForbiddenWordsFile != "" {
		if defaults, err = phrases.Load(config.ForbiddenWordsFile); err != nil {
			log.Fatal().Err(err).Send()
		}
	}

	c := controller{
		pipeline: pipeline.New(a, pipeline.WithWorkers(config.Pipeline.Workers)),
		defaults: defaults,
		cache:    cacheClient,
	}
	s := server{controller: c}

	r := gin.New()
	r.Use(gin.LoggerWithFormatter(lib.JsonLogFormatter), gin.Recovery())
	r.Use(cors.New(corsConfig()))
	s.RegisterRoutes(r)

	log.Info().Int("port", config.Server.HttpPort).Str("annotator", config.Annotator.Type).Msg("starting rest api")
	if err := r.Run(fmt.Sprintf(":%d", config.Server.HttpPort)); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func corsConfig() cors.Config {
	conf := cors.DefaultConfig()
	if len(config.Cors.AllowedOrigins) == 0 || config.Cors.AllowedOrigins[0] == "*" {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = config.Cors.AllowedOrigins
	}
	return conf
}

func newCache() (cache.Client, error) {
	switch config.Cache.Type {
	case cache.None, "":
		return nil, nil
	case cache.Local:
		return local.New(), nil
	case cache.Redis:
		return remote.NewRedisClient(remote.RedisConfig{
			Host: config.Redis.Host,
			Port: config.Redis.Port,
			TTL:  config.Cache.Ttl,
		}), nil
	case cache.Elasticsearch:
		return remote.NewElasticsearchClient(remote.ElasticsearchConfig{
			Host:  config.Elasticsearch.Host,
			Port:  config.Elasticsearch.Port,
			Index: config.Elasticsearch.Index,
		})
	default:
		return nil, fmt.Errorf("unknown cache type %q", config.Cache.Type)
	}
}

// newAnnotator builds the configured annotator and a func releasing its connection.
func newAnnotator(cacheClient cache.Client) (annotator.Annotator, func(), error) {
	var a annotator.Annotator
	closer := func() {}

	switch config.Annotator.Type {
	case annotatorHTTP:
		a = annotator.NewHTTP(config.Annotator.Url, config.Annotator.Timeout)
	case annotatorGRPC:
		conn, err := grpc.Dial(fmt.Sprintf("%s:%d", config.Annotator.Host, config.Annotator.GrpcPort), grpc.WithInsecure())
		if err != nil {
			return nil, nil, err
		}
		closer = func() {
			if err := conn.Close(); err != nil {
				log.Error().Err(err).Msg("could not close tagger connection")
			}
		}
		a = annotator.NewGRPC(conn)
	case annotatorLexicon:
		lex, err := annotator.LoadLexicon(config.Annotator.LexiconFile)
		if err != nil {
			return nil, nil, err
		}
		a = annotator.NewLexicon(lex)
	default:
		return nil, nil, fmt.Errorf("unknown annotator type %q", config.Annotator.Type)
	}

	if !config.Annotator.Concurrent {
		a = annotator.Serialize(a)
	}
	if cacheClient != nil {
		a = annotator.Cache(a, cacheClient)
	}
	return a, closer, nil
}
