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
	"net"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/annotator"
	"google.golang.org/grpc"
)

// config structure
type taggerConfig struct {
	lib.BaseConfig `mapstructure:",squash"`
	Server         struct {
		GrpcPort int `mapstructure:"grpc_port"`
	}
	LexiconFile string `mapstructure:"lexicon_file"`
}

var config taggerConfig

func initConfig() {
	err := lib.InitializeConfig("./config/tagger.yml", map[string]interface{}{
		"log_level": "info",
		"server": map[string]interface{}{
			"grpc_port": 50051,
		},
		"lexicon_file": "./config/lexicon.yml",
	}, &config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

func newServer(lex annotator.Lexicon) *grpc.Server {
	var opts []grpc.ServerOption
	grpcServer := grpc.NewServer(opts...)
	annotator.RegisterTaggerServer(grpcServer, annotator.NewLexicon(lex))
	return grpcServer
}

func main() {
	initConfig()

	lex, err := annotator.LoadLexicon(config.LexiconFile)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.Server.GrpcPort))
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	grpcServer := newServer(lex)
	go lib.HandleInterrupt(grpcServer.GracefulStop)

	log.Info().Int("port", config.Server.GrpcPort).Msg("ready to accept requests")
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatal().Err(err).Send()
	}
}
