// Copyright 2025 Arion Yau
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

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Device is one named TV entry in the config file.
type Device struct {
	Name string `yaml:"name"`
	Host string `yaml:"host"`
	PSK  string `yaml:"psk,omitempty"`
}

// Config is the on-disk device configuration.
type Config struct {
	Default string   `yaml:"default,omitempty"`
	Devices []Device `yaml:"devices"`
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".bravia.yaml"), nil
}

// Load reads the config at path. A missing file yields an empty config
// rather than an error, so first use needs no setup step.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config to path with owner-only permissions, since it
// may contain pre-shared keys.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Device returns the named entry. An empty name selects the configured
// default, or the only entry when exactly one exists.
func (c *Config) Device(name string) (*Device, error) {
	if name == "" {
		name = c.Default
	}
	if name == "" {
		if len(c.Devices) == 1 {
			return &c.Devices[0], nil
		}
		return nil, fmt.Errorf("no device selected and no default configured")
	}
	for i := range c.Devices {
		if c.Devices[i].Name == name {
			return &c.Devices[i], nil
		}
	}
	return nil, fmt.Errorf("device %q not found in config", name)
}

// Add appends a device entry, rejecting duplicate names.
func (c *Config) Add(d Device) error {
	for _, existing := range c.Devices {
		if existing.Name == d.Name {
			return fmt.Errorf("device %q already exists", d.Name)
		}
	}
	c.Devices = append(c.Devices, d)
	return nil
}

// Remove deletes a device entry by name.
func (c *Config) Remove(name string) error {
	for i, d := range c.Devices {
		if d.Name == name {
			c.Devices = append(c.Devices[:i], c.Devices[i+1:]...)
			if c.Default == name {
				c.Default = ""
			}
			return nil
		}
	}
	return fmt.Errorf("device %q not found in config", name)
}
