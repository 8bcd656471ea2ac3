// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package experiment

// DefaultIPPrefix is the subnet length used when none is given
const DefaultIPPrefix = 24

// AppKind identifies the workload run on a node
type AppKind string

const (
	// EnsoEchoServerApp echoes every received packet back to its sender
	EnsoEchoServerApp AppKind = "enso_echo_server"
	// EnsoGenApp is the EnsoGen packet generator
	EnsoGenApp AppKind = "enso_gen"
)

// AppConfig describes the workload run on a node
type AppConfig struct {
	Kind AppKind
	// Count is the number of packets to send; generator only, zero means run until stopped
	Count int
}

// NodeKind identifies the node configuration variant
type NodeKind string

const (
	// EnsoNodeKind is a node image prepared with the Enso driver and tools
	EnsoNodeKind NodeKind = "enso"
)

// NodeConfig is the per-host runtime configuration handed to the host simulator
type NodeConfig struct {
	Kind   NodeKind
	IP     string
	Prefix int
	App    *AppConfig
	// LocalEnsoDir is a local Enso checkout copied to the node; empty uses the one in the image
	LocalEnsoDir string
}
