// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package experiments

import (
	"github.com/onosproject/enso-sim/pkg/experiment"
	"github.com/onosproject/enso-sim/pkg/topo"
)

// EnsoPCIeSwitchEchoName is the name of the Enso echo experiment with PCI switches
const EnsoPCIeSwitchEchoName = "echo-qemu-switch-enso_bm"

// EnsoPCIeSwitchEcho simulates two QEMU hosts with Enso, one running an echo server and the other EnsoGen.
// Both hosts carry a PCI switch connecting an Enso NIC and an i40e NIC to the host.
func EnsoPCIeSwitchEcho() (*experiment.Experiment, error) {
	e := experiment.NewExperiment(EnsoPCIeSwitchEchoName)

	net := experiment.NewSwitchNet()
	net.Sync = false
	if err := e.AddNetwork(net); err != nil {
		return nil, err
	}

	_, err := topo.CreateHostsWithPCISwitch(e, 1, "server", net, topo.Factories{
		NIC:        experiment.EnsoBMNIC,
		PCISwitch:  experiment.PCISwitchSim,
		Host:       experiment.QemuHost,
		NodeConfig: experiment.EnsoNode,
		App:        experiment.EnsoEchoServer,
	})
	if err != nil {
		return nil, err
	}

	clients, err := topo.CreateHostsWithPCISwitch(e, 1, "client", net, topo.Factories{
		NIC:        experiment.EnsoBMNIC,
		PCISwitch:  experiment.PCISwitchSim,
		Host:       experiment.QemuHost,
		NodeConfig: experiment.EnsoNode,
		App:        experiment.ConfiguredEnsoGen,
	}, topo.WithIPStart(2))
	if err != nil {
		return nil, err
	}

	for _, c := range clients {
		c.Wait = true
	}
	return e, nil
}
