// Package config loads device grid topologies from YAML. Files are decoded
// into generic maps first and then into typed specs with mapstructure, so the
// same spec structs also accept pre-parsed maps from other frontends.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/netgrid/pkg/grid"
	"github.com/aretw0/netgrid/pkg/network"
)

// DeviceSpec declares one device in the topology file.
type DeviceSpec struct {
	ID      string `yaml:"id" json:"id" mapstructure:"id"`
	Kind    string `yaml:"kind" json:"kind" mapstructure:"kind"`
	Parent  string `yaml:"parent" json:"parent" mapstructure:"parent"`
	Address uint16 `yaml:"address" json:"address" mapstructure:"address"`
}

// ConsoleSpec configures the console surface bounds.
type ConsoleSpec struct {
	Width int `yaml:"width" json:"width" mapstructure:"width"`
	Lines int `yaml:"lines" json:"lines" mapstructure:"lines"`
}

// Config is the root of a topology file.
type Config struct {
	Devices []DeviceSpec `yaml:"devices" json:"devices" mapstructure:"devices"`
	Console ConsoleSpec  `yaml:"console" json:"console" mapstructure:"console"`
}

// Load reads and parses a topology file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read topology config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML topology data.
func Parse(data []byte) (*Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse topology yaml: %w", err)
	}

	var cfg Config
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode topology config: %w", err)
	}

	for i, dev := range cfg.Devices {
		if dev.ID == "" {
			return nil, fmt.Errorf("device %d: missing id", i)
		}
	}
	return &cfg, nil
}

// Build connects the declared devices into a System, in file order.
func (c *Config) Build() (*grid.System, error) {
	b := grid.NewBuilder()
	for _, dev := range c.Devices {
		db := b.Add(dev.Kind, dev.ID)
		if dev.Parent != "" {
			db.Under(dev.Parent)
		}
		if dev.Address != 0 {
			db.At(network.Address(dev.Address))
		}
	}
	return b.Build()
}

// Default returns the built-in configuration matching grid.NewSystem plus the
// standard console bounds.
func Default() *Config {
	return &Config{
		Devices: []DeviceSpec{
			{ID: "main", Kind: "mainframe", Address: 1},
			{ID: "net3", Kind: "relay"},
			{ID: "term1", Kind: "terminal", Address: 2, Parent: "net3"},
		},
		Console: ConsoleSpec{Width: 80, Lines: 24},
	}
}
