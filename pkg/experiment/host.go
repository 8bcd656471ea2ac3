// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package experiment

// HostKind identifies the host simulator variant
type HostKind string

const (
	// QemuHostKind is a QEMU-based host simulator
	QemuHostKind HostKind = "qemu"
	// Gem5HostKind is a gem5-based host simulator
	Gem5HostKind HostKind = "gem5"
)

// Host is a description of a simulated machine
type Host struct {
	Name       string
	Kind       HostKind
	Config     *NodeConfig
	PCIDevices []PCIDevice
	// Wait makes the orchestrator block until the host's workload finishes
	Wait bool
}

// NewHost creates a host of the given kind bound to the node configuration
func NewHost(kind HostKind, config *NodeConfig) *Host {
	return &Host{
		Kind:   kind,
		Config: config,
	}
}

// AddPCIDevice plugs the device into the host's PCI bus
func (h *Host) AddPCIDevice(dev PCIDevice) {
	h.PCIDevices = append(h.PCIDevices, dev)
}

// PCISwitches returns the PCI switches plugged into the host
func (h *Host) PCISwitches() []*PCISwitch {
	switches := make([]*PCISwitch, 0, len(h.PCIDevices))
	for _, dev := range h.PCIDevices {
		if sw, ok := dev.(*PCISwitch); ok {
			switches = append(switches, sw)
		}
	}
	return switches
}

// NICs returns all NICs reachable from the host's PCI bus, in enumeration order
func (h *Host) NICs() []*NIC {
	nics := make([]*NIC, 0)
	for _, dev := range h.PCIDevices {
		switch d := dev.(type) {
		case *NIC:
			nics = append(nics, d)
		case *PCISwitch:
			nics = append(nics, d.NICs()...)
		}
	}
	return nics
}
