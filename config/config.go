// SPDX-License-Identifier: ice License 1.0

package config

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

//nolint:gochecknoinits // Because we load the configs once, for the whole runtime
func init() {
	loadFirstApplicationConfigFile()
	loadDotEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// LoadFromKey decodes the application.yaml subtree found under key into cfg.
func LoadFromKey(key string, cfg any) error {
	if !viper.IsSet(key) {
		return errors.Wrapf(ErrKeyNotFound, "key %q", key)
	}

	return errors.Wrapf(viper.UnmarshalKey(key, cfg), "failed to load config by key %q", key)
}

func MustLoadFromKey(key string, cfg any) {
	if err := LoadFromKey(key, cfg); err != nil {
		log.Panic(err)
	}
}

func loadDotEnv() {
	dotEnvPath := `.env`
	for range maxDotEnvLookupDepth {
		if err := godotenv.Load(dotEnvPath); err == nil {
			return
		}
		dotEnvPath = fmt.Sprintf(`../%v`, dotEnvPath)
	}
}

func loadFirstApplicationConfigFile() {
	for _, f := range findAllApplicationConfigFiles() {
		viper.SetConfigFile(f)
		if err := viper.ReadInConfig(); err == nil {
			return
		} else if !errors.Is(err, os.ErrNotExist) {
			log.Panic(err)
		}
	}

	log.Panic(errors.Errorf("could not find any %v files", applicationYAML))
}

func findAllApplicationConfigFiles() []string {
	var hints []string
	if p, err := os.Getwd(); err == nil {
		hints = append(hints, filepath.Join(p, ".testdata"), p)
	}
	if p, err := os.Executable(); err == nil {
		hints = append(hints, path.Dir(filepath.Join(p, "..")))
	}
	//nolint:dogsled // Because those 3 blank identifiers are useless
	_, callerFile, _, _ := runtime.Caller(0)
	hints = append(hints, filepath.Join(filepath.Dir(callerFile), ".."))

	files := make([]string, 0, len(hints))
	for _, dir := range hints {
		pattern := filepath.Join(dir, applicationYAML)
		if found, err := filepath.Glob(pattern); err != nil {
			log.Println(errors.Wrapf(err, "glob failed for [%v]", pattern))
		} else {
			files = append(files, found...)
		}
	}

	return files
}
