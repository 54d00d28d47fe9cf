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
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfigFrom(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if *cfg != defaultConfig {
		t.Errorf("missing file config = %+v, want defaults %+v", cfg, defaultConfig)
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "treelab.yaml")
	content := "display:\n  color: false\n  prompt: \"tree$ \"\n  menu_on_start: false\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if cfg.Display.Color {
		t.Errorf("Color = true, want false")
	}
	if cfg.Display.Prompt != "tree$ " {
		t.Errorf("Prompt = %q, want %q", cfg.Display.Prompt, "tree$ ")
	}
	if cfg.Display.MenuOnStart {
		t.Errorf("MenuOnStart = true, want false")
	}
}

func TestLoadConfigBadYAMLFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "treelab.yaml")
	if err := os.WriteFile(path, []byte("display: [not a mapping"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if *cfg != defaultConfig {
		t.Errorf("bad YAML config = %+v, want defaults", cfg)
	}
}

func TestLoadConfigEmptyPromptGetsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "treelab.yaml")
	if err := os.WriteFile(path, []byte("display:\n  color: true\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if cfg.Display.Prompt != defaultConfig.Display.Prompt {
		t.Errorf("Prompt = %q, want default %q", cfg.Display.Prompt, defaultConfig.Display.Prompt)
	}
}
