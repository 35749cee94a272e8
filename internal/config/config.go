// seehuhn.de/go/sigil - name sigils on a 26-letter wheel
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config provides configuration loading for the sigil tools.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration of the sigil binary.
type Config struct {
	Preview PreviewConfig `yaml:"preview"`
	Export  ExportConfig  `yaml:"export"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// PreviewConfig configures the interactive wheel diagram.
type PreviewConfig struct {
	// ShowLetters draws the letter labels around the wheel.
	ShowLetters bool `yaml:"show_letters"`
}

// ExportConfig configures the exported image.
type ExportConfig struct {
	// Size is the side length of the PNG image in pixels.
	Size int `yaml:"size"`
	// Dir is the directory exported files are written to.
	Dir string `yaml:"dir"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr        string        `yaml:"addr"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level"`
}

// maxExportSize bounds the exported image to keep memory use reasonable.
const maxExportSize = 8192

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Preview: PreviewConfig{ShowLetters: true},
		Export: ExportConfig{
			Size: 500,
			Dir:  ".",
		},
		Server: ServerConfig{
			Addr:        ":8080",
			ReadTimeout: 5 * time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Export.Size <= 0 {
		return fmt.Errorf("export.size must be positive")
	}
	if c.Export.Size > maxExportSize {
		return fmt.Errorf("export.size must be at most %d", maxExportSize)
	}
	if c.Export.Dir == "" {
		return fmt.Errorf("export.dir is required")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.ReadTimeout < 0 {
		return fmt.Errorf("server.read_timeout must not be negative")
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file.
// Settings missing from the file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
