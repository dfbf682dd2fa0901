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

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFlag = "config"

// BaseConfig holds the keys every app reads.
type BaseConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

/**
	InitializeConfig loads the config of an app into target.

	The yml file lives at defaultPath unless the --config flag names another file, so a k8s config map
	mounted to $(pwd)/config can replace the local development file. Keys missing from the file fall back
	to defaultConfig. Env vars override keys that are known to viper, with "." replaced by "_", so
	SERVER_HTTP_PORT sets server.http_port.

	A missing config file is not an error; the defaults are used and a warning is logged.
	The global zerolog level is set from log_level before target is unmarshalled.
**/
func InitializeConfig(defaultPath string, defaultConfig map[string]interface{}, target interface{}) error {
	pflag.String(configFlag, defaultPath, "The config file path.")
	pflag.Parse()

	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		return err
	}

	configFile, err := absConfigPath(viper.GetString(configFlag))
	if err != nil {
		return err
	}

	for k, v := range defaultConfig {
		viper.SetDefault(k, v)
	}

	viper.SetConfigName(strings.TrimSuffix(filepath.Base(configFile), filepath.Ext(configFile)))
	viper.AddConfigPath(filepath.Dir(configFile))

	// env vars are only read for keys viper already knows about
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		log.Warn().Err(err).Str("path", configFile).Msg("default settings applied")
	} else if err != nil {
		return err
	}

	if err := setLogLevel(); err != nil {
		return err
	}

	return viper.Unmarshal(target)
}

func absConfigPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Abs(path)
}

func setLogLevel() error {
	var bc BaseConfig
	if err := viper.Unmarshal(&bc); err != nil {
		return err
	}

	lvl, err := zerolog.ParseLevel(bc.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
