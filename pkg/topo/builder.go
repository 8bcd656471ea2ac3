// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package topo

import (
	"fmt"

	"github.com/onosproject/enso-sim/pkg/experiment"
)

const (
	// DefaultIPStart is the host part of the first IP address handed out by a host group
	DefaultIPStart = 1

	ensoNICName = "enso_nic"
	i40eNICName = "i40e_nic"
)

// Factories selects the simulator variants instantiated for each role in a host group
type Factories struct {
	NIC        experiment.NICFactory
	PCISwitch  experiment.PCISwitchFactory
	Host       experiment.HostFactory
	NodeConfig experiment.NodeConfigFactory
	App        experiment.AppConfigFactory
}

type options struct {
	ipStart  int
	ipPrefix int
}

// Option tunes addressing of a host group
type Option func(*options)

// WithIPStart sets the address offset of the first host; default is 1
func WithIPStart(ipStart int) Option {
	return func(o *options) {
		o.ipStart = ipStart
	}
}

// WithIPPrefix sets the subnet length of every host; default is 24. The value is not validated.
func WithIPPrefix(ipPrefix int) Option {
	return func(o *options) {
		o.ipPrefix = ipPrefix
	}
}

// CreateHostsWithPCISwitch creates count hosts, each with a PCI switch carrying a primary NIC of the
// requested variant and a secondary i40e NIC, both attached to net. Hosts and NICs are registered with
// the experiment; the switches are reachable only through their hosts. Any factory or registration
// error aborts the construction and is returned as is; nothing registered before it is rolled back.
func CreateHostsWithPCISwitch(e *experiment.Experiment, count int, namePrefix string, net *experiment.Network,
	factories Factories, opts ...Option) ([]*experiment.Host, error) {
	o := &options{ipStart: DefaultIPStart, ipPrefix: experiment.DefaultIPPrefix}
	for _, opt := range opts {
		opt(o)
	}

	hosts := make([]*experiment.Host, 0, max(count, 0))
	for i := 0; i < count; i++ {
		host, err := createHostWithPCISwitch(e, i, namePrefix, net, factories, o)
		if err != nil {
			return nil, err
		}
		hosts = append(hosts, host)
	}
	log.Infof("Created %d %s host(s) with PCI switch", len(hosts), namePrefix)
	return hosts, nil
}

func createHostWithPCISwitch(e *experiment.Experiment, i int, namePrefix string, net *experiment.Network,
	factories Factories, o *options) (*experiment.Host, error) {
	nic, err := factories.NIC.NewNIC()
	if err != nil {
		return nil, err
	}
	nic.SetNetwork(net)
	nic.Name = ensoNICName

	nic2, err := experiment.I40eNIC.NewNIC()
	if err != nil {
		return nil, err
	}
	nic2.SetNetwork(net)
	nic2.Name = i40eNICName

	nodeConfig, err := factories.NodeConfig.NewNodeConfig()
	if err != nil {
		return nil, err
	}
	nodeConfig.Prefix = o.ipPrefix
	nodeConfig.IP = NodeIP(o.ipStart + i)
	if nodeConfig.App, err = factories.App.NewAppConfig(); err != nil {
		return nil, err
	}

	host, err := factories.Host.NewHost(nodeConfig)
	if err != nil {
		return nil, err
	}
	host.Name = fmt.Sprintf("%s.%d", namePrefix, i)

	pciSwitch, err := factories.PCISwitch.NewPCISwitch()
	if err != nil {
		return nil, err
	}
	pciSwitch.Name = fmt.Sprintf("%s.%d.pci_sw", namePrefix, i)
	pciSwitch.AddNIC(nic)
	pciSwitch.AddNIC(nic2)

	host.AddPCIDevice(pciSwitch)
	if err = e.AddNIC(nic); err != nil {
		return nil, err
	}
	if err = e.AddNIC(nic2); err != nil {
		return nil, err
	}
	if err = e.AddHost(host); err != nil {
		return nil, err
	}
	log.Debugf("Host %s: IP %s/%d, switch %s", host.Name, nodeConfig.IP, nodeConfig.Prefix, pciSwitch.Name)
	return host, nil
}
