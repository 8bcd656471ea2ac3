// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package experiment

// PCIDevice is anything that can be plugged into a host's PCI bus
type PCIDevice interface {
	DeviceName() string
}

// PCISwitchKind identifies the PCI switch simulator variant
type PCISwitchKind string

const (
	// PCISwitchSimulator is the stock PCIe switch simulator
	PCISwitchSimulator PCISwitchKind = "pci_switch"
)

// PCISwitch is a description of a simulated PCIe switch fanning one host slot out to several NICs
type PCISwitch struct {
	Name string
	Kind PCISwitchKind
	nics []*NIC
}

// AddNIC attaches the NIC to the next downstream port of the switch
func (s *PCISwitch) AddNIC(nic *NIC) {
	s.nics = append(s.nics, nic)
}

// NICs returns the attached NICs in PCI enumeration order
func (s *PCISwitch) NICs() []*NIC {
	nics := make([]*NIC, len(s.nics))
	copy(nics, s.nics)
	return nics
}

// DeviceName returns the name of the switch as a PCI device
func (s *PCISwitch) DeviceName() string {
	return s.Name
}
