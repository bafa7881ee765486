// SPDX-License-Identifier: ice License 1.0

package config

import (
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const configFileName = "application.yaml"

//nolint:gochecknoinits // Configs are loaded once, for the whole runtime.
func init() {
	mustReadFirstConfigFile()
	loadDotEnv()
}

// MustLoadFromKey unmarshalls the provided application.yaml key into cfg, panicking if the key cannot be bound.
func MustLoadFromKey(key string, cfg any) {
	if err := viper.UnmarshalKey(key, cfg); err != nil {
		log.Panic(errors.Wrapf(err, "failed to load config by key %q", key))
	}
}

func mustReadFirstConfigFile() {
	for _, candidate := range configFileCandidates() {
		viper.SetConfigFile(candidate)
		if err := viper.ReadInConfig(); err == nil {
			return
		} else if !errors.Is(err, os.ErrNotExist) {
			log.Panic(errors.Wrapf(err, "corrupted %v", candidate))
		}
	}

	log.Panic(errors.Errorf("could not find any %v files", configFileName))
}

func configFileCandidates() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if bin, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(bin))
	}
	dirs = append(dirs, moduleRootDirs()...)

	candidates := make([]string, 0, 2*len(dirs)) //nolint:gomnd // Each dir is probed twice, see below.
	for _, dir := range dirs {
		candidates = append(candidates, filepath.Join(dir, ".testdata", configFileName), filepath.Join(dir, configFileName))
	}

	return candidates
}

// moduleRootDirs resolves the directories 1 and 2 levels above this source file, so that
// a single top level application.yaml serves every package of the module during tests.
func moduleRootDirs() []string {
	//nolint:dogsled // Because those 3 blank identifiers are useless.
	_, callerFile, _, _ := runtime.Caller(0)

	return []string{
		filepath.Join(filepath.Dir(callerFile), ".."),
		filepath.Join(filepath.Dir(callerFile), "..", ".."),
	}
}

func loadDotEnv() {
	dotEnvPath := ".env"
	for range 5 {
		if err := godotenv.Load(dotEnvPath); err == nil {
			return
		}
		dotEnvPath = filepath.Join("..", dotEnvPath)
	}
}
