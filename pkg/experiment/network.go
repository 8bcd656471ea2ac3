// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

// Package experiment contains the descriptors of a simulation experiment: the simulated network,
// NICs, PCI switches, hosts and their node configurations, and the experiment aggregate itself.
package experiment

import "github.com/onosproject/onos-lib-go/pkg/logging"

var log = logging.GetLogger("experiment")

// NetworkKind identifies the network simulator variant
type NetworkKind string

const (
	// SwitchNetwork is the behavioral Ethernet switch network simulator
	SwitchNetwork NetworkKind = "switch"
)

// Network is a handle to a simulated network fabric shared by all NICs attached to it
type Network struct {
	Name string
	Kind NetworkKind
	// Sync enables synchronized simulation with the attached NICs
	Sync bool
}

// NewSwitchNet creates a switch network descriptor; synchronization is on by default
func NewSwitchNet() *Network {
	return &Network{
		Name: "net",
		Kind: SwitchNetwork,
		Sync: true,
	}
}
