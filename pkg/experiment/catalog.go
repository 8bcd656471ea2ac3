// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package experiment

import (
	"github.com/onosproject/onos-lib-go/pkg/errors"
	"golang.org/x/exp/slices"
)

var nicFactories = map[NICKind]NICFactory{
	EnsoBM:     EnsoBMNIC,
	I40eBM:     I40eNIC,
	CorundumBM: CorundumBMNIC,
}

var pciSwitchFactories = map[PCISwitchKind]PCISwitchFactory{
	PCISwitchSimulator: PCISwitchSim,
}

var hostFactories = map[HostKind]HostFactory{
	QemuHostKind: QemuHost,
	Gem5HostKind: Gem5Host,
}

// LookupNICFactory returns the factory for the named NIC variant
func LookupNICFactory(name string) (NICFactory, error) {
	if f, ok := nicFactories[NICKind(name)]; ok {
		return f, nil
	}
	return nil, errors.NewInvalid("Unknown NIC variant %q; expected one of %v", name, sortedKeys(nicFactories))
}

// LookupPCISwitchFactory returns the factory for the named PCI switch variant
func LookupPCISwitchFactory(name string) (PCISwitchFactory, error) {
	if f, ok := pciSwitchFactories[PCISwitchKind(name)]; ok {
		return f, nil
	}
	return nil, errors.NewInvalid("Unknown PCI switch variant %q; expected one of %v", name, sortedKeys(pciSwitchFactories))
}

// LookupHostFactory returns the factory for the named host variant
func LookupHostFactory(name string) (HostFactory, error) {
	if f, ok := hostFactories[HostKind(name)]; ok {
		return f, nil
	}
	return nil, errors.NewInvalid("Unknown host variant %q; expected one of %v", name, sortedKeys(hostFactories))
}

// LookupNodeConfigFactory returns the factory for the named node configuration variant
func LookupNodeConfigFactory(name string, localEnsoDir string) (NodeConfigFactory, error) {
	if NodeKind(name) == EnsoNodeKind {
		return EnsoLocal(localEnsoDir), nil
	}
	return nil, errors.NewInvalid("Unknown node config variant %q; expected %s", name, EnsoNodeKind)
}

// LookupAppConfigFactory returns the factory for the named workload; count only applies to generators
func LookupAppConfigFactory(name string, count int) (AppConfigFactory, error) {
	switch AppKind(name) {
	case EnsoEchoServerApp:
		return EnsoEchoServer, nil
	case EnsoGenApp:
		return EnsoGen(count), nil
	}
	return nil, errors.NewInvalid("Unknown app variant %q; expected %s or %s", name, EnsoEchoServerApp, EnsoGenApp)
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
