// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package experiment

// NICKind identifies the NIC simulator variant
type NICKind string

const (
	// EnsoBM is the Enso behavioral model NIC
	EnsoBM NICKind = "enso_bm"
	// I40eBM is the Intel X710 (i40e) behavioral model NIC
	I40eBM NICKind = "i40e_bm"
	// CorundumBM is the Corundum behavioral model NIC
	CorundumBM NICKind = "corundum_bm"
)

// NIC is a description of a simulated network interface card
type NIC struct {
	Name    string
	Kind    NICKind
	Network *Network
}

// SetNetwork attaches the NIC to the given network
func (n *NIC) SetNetwork(net *Network) {
	n.Network = net
}

// DeviceName returns the name of the NIC as a PCI device
func (n *NIC) DeviceName() string {
	return n.Name
}
