// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package topo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/onosproject/enso-sim/pkg/experiment"
	"gopkg.in/yaml.v3"
)

const generatedHeader = "# Generated by enso-sim; do not edit\n"

// Descriptor is the serialized form of an experiment handed to the simulation orchestrator
type Descriptor struct {
	Name     string              `json:"name" yaml:"name"`
	ID       string              `json:"id" yaml:"id"`
	Networks []NetworkDescriptor `json:"networks" yaml:"networks"`
	Hosts    []HostDescriptor    `json:"hosts" yaml:"hosts"`
	// NICs lists registered NICs as host/device/.../nic paths
	NICs []string `json:"nics" yaml:"nics"`
}

// NetworkDescriptor is the serialized form of a simulated network
type NetworkDescriptor struct {
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"`
	Sync bool   `json:"sync" yaml:"sync"`
}

// HostDescriptor is the serialized form of a simulated host
type HostDescriptor struct {
	Name       string                `json:"name" yaml:"name"`
	Kind       string                `json:"kind" yaml:"kind"`
	Wait       bool                  `json:"wait" yaml:"wait"`
	Node       NodeDescriptor        `json:"node" yaml:"node"`
	PCIDevices []PCIDeviceDescriptor `json:"pci_devices" yaml:"pci_devices"`
}

// NodeDescriptor is the serialized form of a node configuration
type NodeDescriptor struct {
	Kind         string         `json:"kind" yaml:"kind"`
	IP           string         `json:"ip" yaml:"ip"`
	Prefix       int            `json:"prefix" yaml:"prefix"`
	LocalEnsoDir string         `json:"local_enso_dir,omitempty" yaml:"local_enso_dir,omitempty"`
	App          *AppDescriptor `json:"app,omitempty" yaml:"app,omitempty"`
}

// AppDescriptor is the serialized form of a workload
type AppDescriptor struct {
	Kind  string `json:"kind" yaml:"kind"`
	Count int    `json:"count,omitempty" yaml:"count,omitempty"`
}

// PCIDeviceDescriptor is the serialized form of a device on a host's PCI bus: either a NIC or a PCI switch
type PCIDeviceDescriptor struct {
	Name    string                `json:"name" yaml:"name"`
	Type    string                `json:"type" yaml:"type"`
	Kind    string                `json:"kind" yaml:"kind"`
	Network string                `json:"network,omitempty" yaml:"network,omitempty"`
	NICs    []PCIDeviceDescriptor `json:"nics,omitempty" yaml:"nics,omitempty"`
}

const (
	nicDeviceType       = "nic"
	pciSwitchDeviceType = "pci_switch"
)

// NewDescriptor produces the serialized form of the given experiment
func NewDescriptor(e *experiment.Experiment) *Descriptor {
	d := &Descriptor{
		Name:     e.Name,
		ID:       e.ID,
		Networks: make([]NetworkDescriptor, 0),
		Hosts:    make([]HostDescriptor, 0),
		NICs:     make([]string, 0),
	}
	for _, net := range e.Networks() {
		d.Networks = append(d.Networks, NetworkDescriptor{Name: net.Name, Kind: string(net.Kind), Sync: net.Sync})
	}

	nicPaths := make(map[*experiment.NIC]string)
	for _, host := range e.Hosts() {
		d.Hosts = append(d.Hosts, newHostDescriptor(host, nicPaths))
	}
	for _, nic := range e.NICs() {
		if path, ok := nicPaths[nic]; ok {
			d.NICs = append(d.NICs, path)
		} else {
			d.NICs = append(d.NICs, nic.Name)
		}
	}
	return d
}

func newHostDescriptor(host *experiment.Host, nicPaths map[*experiment.NIC]string) HostDescriptor {
	hd := HostDescriptor{
		Name:       host.Name,
		Kind:       string(host.Kind),
		Wait:       host.Wait,
		PCIDevices: make([]PCIDeviceDescriptor, 0, len(host.PCIDevices)),
	}
	if nc := host.Config; nc != nil {
		hd.Node = NodeDescriptor{Kind: string(nc.Kind), IP: nc.IP, Prefix: nc.Prefix, LocalEnsoDir: nc.LocalEnsoDir}
		if nc.App != nil {
			hd.Node.App = &AppDescriptor{Kind: string(nc.App.Kind), Count: nc.App.Count}
		}
	}
	for _, dev := range host.PCIDevices {
		hd.PCIDevices = append(hd.PCIDevices, newPCIDeviceDescriptor(dev, host.Name, nicPaths))
	}
	return hd
}

func newPCIDeviceDescriptor(dev experiment.PCIDevice, parent string, nicPaths map[*experiment.NIC]string) PCIDeviceDescriptor {
	path := fmt.Sprintf("%s/%s", parent, dev.DeviceName())
	switch d := dev.(type) {
	case *experiment.NIC:
		nicPaths[d] = path
		return PCIDeviceDescriptor{Name: d.Name, Type: nicDeviceType, Kind: string(d.Kind), Network: networkName(d.Network)}
	case *experiment.PCISwitch:
		pd := PCIDeviceDescriptor{Name: d.Name, Type: pciSwitchDeviceType, Kind: string(d.Kind)}
		for _, nic := range d.NICs() {
			pd.NICs = append(pd.NICs, newPCIDeviceDescriptor(nic, path, nicPaths))
		}
		return pd
	}
	return PCIDeviceDescriptor{Name: dev.DeviceName()}
}

func networkName(net *experiment.Network) string {
	if net == nil {
		return ""
	}
	return net.Name
}

// SaveExperimentFile saves the given experiment as a descriptor file in the specified path; stdout if -.
// Files ending in .json are written as JSON, anything else as YAML.
func SaveExperimentFile(e *experiment.Experiment, path string) error {
	log.Infof("Saving experiment %s to %s", e.Name, path)
	d := NewDescriptor(e)
	if path == "-" {
		return writeDescriptor(os.Stdout, d, false)
	}

	output, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer output.Close()
	return writeDescriptor(output, d, isJSON(path))
}

func writeDescriptor(w io.Writer, d *Descriptor, asJSON bool) error {
	if asJSON {
		bytes, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(bytes))
		return err
	}

	bytes, err := yaml.Marshal(d)
	if err != nil {
		return err
	}
	// Write the header comment first, then the YAML content
	if _, err = fmt.Fprint(w, generatedHeader); err != nil {
		return err
	}
	_, err = w.Write(bytes)
	return err
}

// LoadDescriptorFile loads the specified experiment descriptor file
func LoadDescriptorFile(path string) (*Descriptor, error) {
	bytes, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	d := &Descriptor{}
	if isJSON(path) {
		err = json.Unmarshal(bytes, d)
	} else {
		err = yaml.Unmarshal(bytes, d)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
