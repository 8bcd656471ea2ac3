// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package topo

import (
	"fmt"
	"testing"

	"github.com/onosproject/enso-sim/pkg/experiment"
	"github.com/onosproject/onos-lib-go/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoServerFactories() Factories {
	return Factories{
		NIC:        experiment.EnsoBMNIC,
		PCISwitch:  experiment.PCISwitchSim,
		Host:       experiment.QemuHost,
		NodeConfig: experiment.EnsoNode,
		App:        experiment.EnsoEchoServer,
	}
}

func newTestExperiment(t *testing.T) (*experiment.Experiment, *experiment.Network) {
	e := experiment.NewExperiment("test")
	net := experiment.NewSwitchNet()
	require.NoError(t, e.AddNetwork(net))
	return e, net
}

func TestCreateHostsWithPCISwitch(t *testing.T) {
	e, net := newTestExperiment(t)
	hosts, err := CreateHostsWithPCISwitch(e, 2, "server", net, echoServerFactories(), WithIPStart(1))
	require.NoError(t, err)
	require.Len(t, hosts, 2)

	for i, host := range hosts {
		assert.Equal(t, fmt.Sprintf("server.%d", i), host.Name)
		assert.Equal(t, experiment.QemuHostKind, host.Kind)
		assert.Equal(t, fmt.Sprintf("10.0.0.%d", i+1), host.Config.IP)
		assert.Equal(t, 24, host.Config.Prefix)
		assert.Equal(t, experiment.EnsoEchoServerApp, host.Config.App.Kind)
		assert.False(t, host.Wait)

		require.Len(t, host.PCIDevices, 1)
		sw, ok := host.PCIDevices[0].(*experiment.PCISwitch)
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("server.%d.pci_sw", i), sw.Name)

		nics := sw.NICs()
		require.Len(t, nics, 2)
		assert.Equal(t, "enso_nic", nics[0].Name)
		assert.Equal(t, experiment.EnsoBM, nics[0].Kind)
		assert.Equal(t, "i40e_nic", nics[1].Name)
		assert.Equal(t, experiment.I40eBM, nics[1].Kind)
		assert.Same(t, net, nics[0].Network)
		assert.Same(t, net, nics[1].Network)
	}

	assert.Len(t, e.Hosts(), 2)
	assert.Len(t, e.NICs(), 4)
	assert.NotSame(t, hosts[0].Config, hosts[1].Config)
	assert.NotSame(t, hosts[0].Config.App, hosts[1].Config.App)
}

func TestRegisteredNICsMatchSwitchNICs(t *testing.T) {
	e, net := newTestExperiment(t)
	hosts, err := CreateHostsWithPCISwitch(e, 5, "node", net, echoServerFactories())
	require.NoError(t, err)

	attached := make(map[*experiment.NIC]bool)
	for _, host := range hosts {
		assert.True(t, e.HasHost(host))
		for _, sw := range host.PCISwitches() {
			for _, nic := range sw.NICs() {
				attached[nic] = true
			}
		}
	}
	registered := make(map[*experiment.NIC]bool)
	for _, nic := range e.NICs() {
		registered[nic] = true
	}
	assert.Equal(t, attached, registered)
	assert.Len(t, registered, 10)
}

func TestCreateNoHosts(t *testing.T) {
	e, net := newTestExperiment(t)
	hosts, err := CreateHostsWithPCISwitch(e, 0, "server", net, echoServerFactories())
	assert.NoError(t, err)
	assert.Empty(t, hosts)
	assert.Empty(t, e.Hosts())
	assert.Empty(t, e.NICs())

	hosts, err = CreateHostsWithPCISwitch(e, -3, "server", net, echoServerFactories())
	assert.NoError(t, err)
	assert.Empty(t, hosts)
}

func TestAddressing(t *testing.T) {
	e, net := newTestExperiment(t)
	hosts, err := CreateHostsWithPCISwitch(e, 300, "gen", net, echoServerFactories(), WithIPStart(250), WithIPPrefix(16))
	require.NoError(t, err)

	previous := -1
	for i, host := range hosts {
		value, err := DecodeNodeIP(host.Config.IP)
		require.NoError(t, err)
		assert.Equal(t, 250+i, value)
		assert.Greater(t, value, previous)
		previous = value
		assert.Equal(t, 16, host.Config.Prefix)
	}
	assert.Equal(t, "10.0.0.255", hosts[5].Config.IP)
	assert.Equal(t, "10.0.1.0", hosts[6].Config.IP)
}

func TestPrefixIsNotValidated(t *testing.T) {
	e, net := newTestExperiment(t)
	hosts, err := CreateHostsWithPCISwitch(e, 1, "x", net, echoServerFactories(), WithIPPrefix(99), WithIPStart(0))
	require.NoError(t, err)
	assert.Equal(t, 99, hosts[0].Config.Prefix)
	assert.Equal(t, "10.0.0.0", hosts[0].Config.IP)
}

func TestSeparateGroupsShareNetwork(t *testing.T) {
	e, net := newTestExperiment(t)
	servers, err := CreateHostsWithPCISwitch(e, 1, "server", net, echoServerFactories())
	require.NoError(t, err)
	factories := echoServerFactories()
	factories.App = experiment.ConfiguredEnsoGen
	clients, err := CreateHostsWithPCISwitch(e, 1, "client", net, factories, WithIPStart(2))
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.1", servers[0].Config.IP)
	assert.Equal(t, "10.0.0.2", clients[0].Config.IP)
	assert.Equal(t, 1000, clients[0].Config.App.Count)
	assert.Len(t, e.Hosts(), 2)
	assert.Len(t, e.NICs(), 4)
	for _, nic := range e.NICs() {
		assert.Same(t, net, nic.Network)
	}
}

func TestFactoryErrorIsPropagated(t *testing.T) {
	failure := errors.NewUnavailable("no gem5 image")
	factories := echoServerFactories()
	calls := 0
	factories.Host = experiment.HostFactoryFunc(func(config *experiment.NodeConfig) (*experiment.Host, error) {
		calls++
		if calls == 2 {
			return nil, failure
		}
		return experiment.NewHost(experiment.Gem5HostKind, config), nil
	})

	e, net := newTestExperiment(t)
	hosts, err := CreateHostsWithPCISwitch(e, 3, "server", net, factories)
	assert.Nil(t, hosts)
	assert.Equal(t, failure, err)
	assert.Equal(t, 2, calls)
	// The first host stays registered; nothing is rolled back
	assert.Len(t, e.Hosts(), 1)
}

func TestRegistrationErrorIsPropagated(t *testing.T) {
	shared := &experiment.NIC{Kind: experiment.EnsoBM}
	factories := echoServerFactories()
	factories.NIC = experiment.NICFactoryFunc(func() (*experiment.NIC, error) {
		return shared, nil
	})

	e, net := newTestExperiment(t)
	_, err := CreateHostsWithPCISwitch(e, 2, "server", net, factories)
	assert.True(t, errors.IsAlreadyExists(err))
}
