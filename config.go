// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type DisplayConfig struct {
	Color       bool   `yaml:"color"`
	Prompt      string `yaml:"prompt"`
	MenuOnStart bool   `yaml:"menu_on_start"`
}

type Config struct {
	Display DisplayConfig `yaml:"display"`
}

var defaultConfig = Config{
	Display: DisplayConfig{
		Color:       true,
		Prompt:      "treelab> ",
		MenuOnStart: true,
	},
}

// LoadConfig reads ~/.treelab.yaml. Any failure (missing home, missing
// file, unreadable file, bad YAML) silently falls back to the defaults.
func LoadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return loadConfigFrom(filepath.Join(homeDir, ".treelab.yaml"))
}

func loadConfigFrom(configPath string) (*Config, error) {
	cfg := defaultConfig

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		cfg = defaultConfig
		return &cfg, nil
	}

	if cfg.Display.Prompt == "" {
		cfg.Display.Prompt = defaultConfig.Display.Prompt
	}

	return &cfg, nil
}
