// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package topo builds simulation experiments: hosts behind PCI switches with deterministic addressing,
// either programmatically or from a recipe YAML file, and saves them as experiment descriptor files.
package topo

import (
	"os"
	"path/filepath"

	"github.com/onosproject/onos-lib-go/pkg/logging"
	"github.com/spf13/viper"
)

var log = logging.GetLogger("topo")

// Recipe is a container for an experiment recipe
type Recipe struct {
	Experiment *ExperimentRecipe `mapstructure:"experiment" yaml:"experiment"`
}

// ExperimentRecipe is a description of an experiment built from groups of hosts sharing one network
type ExperimentRecipe struct {
	Name    string        `mapstructure:"name" yaml:"name"`
	Network NetworkRecipe `mapstructure:"network" yaml:"network"`
	Groups  []HostGroup   `mapstructure:"groups" yaml:"groups"`
}

// NetworkRecipe is a description of the shared simulated network
type NetworkRecipe struct {
	Name string `mapstructure:"name" yaml:"name"`
	Kind string `mapstructure:"kind" yaml:"kind"`
	Sync *bool  `mapstructure:"sync" yaml:"sync"`
}

// HostGroup is a description of a group of identically configured hosts behind PCI switches
type HostGroup struct {
	Prefix       string `mapstructure:"prefix" yaml:"prefix"`
	Count        int    `mapstructure:"count" yaml:"count"`
	NIC          string `mapstructure:"nic" yaml:"nic"`
	PCISwitch    string `mapstructure:"pci_switch" yaml:"pci_switch"`
	Host         string `mapstructure:"host" yaml:"host"`
	Node         string `mapstructure:"node" yaml:"node"`
	LocalEnsoDir string `mapstructure:"local_enso_dir" yaml:"local_enso_dir"`
	App          string `mapstructure:"app" yaml:"app"`
	Packets      int    `mapstructure:"packets" yaml:"packets"`
	IPStart      *int   `mapstructure:"ip_start" yaml:"ip_start"`
	IPPrefix     *int   `mapstructure:"ip_prefix" yaml:"ip_prefix"`
	Wait         bool   `mapstructure:"wait" yaml:"wait"`
}

// Reads configuration from the specified path (- for stdin) via viper; ready to Unmarshal
func readConfig(path string) (*viper.Viper, error) {
	cfg := viper.New()
	cfg.SetConfigType("yaml")
	if path == "-" {
		if err := cfg.ReadConfig(os.Stdin); err != nil {
			return cfg, err
		}
	} else {
		cfg.SetConfigFile(filepath.Clean(path))
		if err := cfg.ReadInConfig(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
