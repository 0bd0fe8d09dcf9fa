// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	footyfate "laptudirm.com/x/footyfate/pkg/common"
	"laptudirm.com/x/footyfate/pkg/partition"
)

// FileName is the name of the config file inside the footyfate directory.
const FileName = "config.yaml"

// Config holds the defaults used when a flag is not given.
type Config struct {
	// How the team parameter is interpreted.
	Mode partition.Mode `yaml:"mode"`

	// Seed for every draw. Zero picks a new seed every time.
	Seed int64 `yaml:"seed"`

	// How long the spinner runs before the teams are revealed.
	Reveal time.Duration `yaml:"reveal"`

	// Whether output is colored.
	Color bool `yaml:"color"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Mode:   partition.ByTeamCount,
		Seed:   0,
		Reveal: 0,
		Color:  true,
	}
}

// DefaultPath returns the path of the config file in the footyfate directory.
func DefaultPath() string {
	return footyfate.Path(FileName)
}

// Validate checks the values of the Config.
func (config Config) Validate() error {
	switch {
	case config.Mode != partition.ByTeamCount && config.Mode != partition.ByTeamSize:
		return fmt.Errorf("config: unknown mode %d", int(config.Mode))
	case config.Reveal < 0:
		return fmt.Errorf("config: reveal must not be negative, got %s", config.Reveal)
	}

	return nil
}

// Load reads the Config at the given path, writing the defaults there first
// if the file doesn't exist.
func Load(path string) (Config, error) {
	config := Default()

	defaults, err := yaml.Marshal(config)
	if err != nil {
		return config, err
	}

	if err := footyfate.TryCreate(path, defaults); err != nil {
		// Not being able to persist the defaults is not fatal.
		logrus.WithField("file", path).Debug(err)
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return config, nil
	case err != nil:
		return config, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"file":   path,
		"mode":   config.Mode,
		"seed":   config.Seed,
		"reveal": config.Reveal,
	}).Debug("Loaded configuration")

	return config, config.Validate()
}

// Save writes the Config to the given path.
func (config Config) Save(path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, footyfate.FilePermissions)
}
