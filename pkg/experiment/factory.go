// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package experiment

// NICFactory creates NIC descriptors of one variant
type NICFactory interface {
	NewNIC() (*NIC, error)
}

// NICFactoryFunc is an adapter allowing use of ordinary functions as NIC factories
type NICFactoryFunc func() (*NIC, error)

// NewNIC calls f()
func (f NICFactoryFunc) NewNIC() (*NIC, error) {
	return f()
}

// PCISwitchFactory creates PCI switch descriptors of one variant
type PCISwitchFactory interface {
	NewPCISwitch() (*PCISwitch, error)
}

// PCISwitchFactoryFunc is an adapter allowing use of ordinary functions as PCI switch factories
type PCISwitchFactoryFunc func() (*PCISwitch, error)

// NewPCISwitch calls f()
func (f PCISwitchFactoryFunc) NewPCISwitch() (*PCISwitch, error) {
	return f()
}

// HostFactory creates host descriptors of one variant bound to the given node configuration
type HostFactory interface {
	NewHost(config *NodeConfig) (*Host, error)
}

// HostFactoryFunc is an adapter allowing use of ordinary functions as host factories
type HostFactoryFunc func(config *NodeConfig) (*Host, error)

// NewHost calls f(config)
func (f HostFactoryFunc) NewHost(config *NodeConfig) (*Host, error) {
	return f(config)
}

// NodeConfigFactory creates node configurations of one variant
type NodeConfigFactory interface {
	NewNodeConfig() (*NodeConfig, error)
}

// NodeConfigFactoryFunc is an adapter allowing use of ordinary functions as node config factories
type NodeConfigFactoryFunc func() (*NodeConfig, error)

// NewNodeConfig calls f()
func (f NodeConfigFactoryFunc) NewNodeConfig() (*NodeConfig, error) {
	return f()
}

// AppConfigFactory creates workload descriptors of one variant
type AppConfigFactory interface {
	NewAppConfig() (*AppConfig, error)
}

// AppConfigFactoryFunc is an adapter allowing use of ordinary functions as app config factories
type AppConfigFactoryFunc func() (*AppConfig, error)

// NewAppConfig calls f()
func (f AppConfigFactoryFunc) NewAppConfig() (*AppConfig, error) {
	return f()
}

func nicOfKind(kind NICKind) NICFactory {
	return NICFactoryFunc(func() (*NIC, error) {
		return &NIC{Kind: kind}, nil
	})
}

func hostOfKind(kind HostKind) HostFactory {
	return HostFactoryFunc(func(config *NodeConfig) (*Host, error) {
		return NewHost(kind, config), nil
	})
}

// Stock simulator variants
var (
	// EnsoBMNIC creates Enso behavioral model NICs
	EnsoBMNIC = nicOfKind(EnsoBM)
	// I40eNIC creates Intel i40e behavioral model NICs
	I40eNIC = nicOfKind(I40eBM)
	// CorundumBMNIC creates Corundum behavioral model NICs
	CorundumBMNIC = nicOfKind(CorundumBM)

	// PCISwitchSim creates stock PCIe switches
	PCISwitchSim PCISwitchFactory = PCISwitchFactoryFunc(func() (*PCISwitch, error) {
		return &PCISwitch{Kind: PCISwitchSimulator}, nil
	})

	// QemuHost creates QEMU hosts
	QemuHost = hostOfKind(QemuHostKind)
	// Gem5Host creates gem5 hosts
	Gem5Host = hostOfKind(Gem5HostKind)

	// EnsoNode creates Enso node configurations using the Enso tree from the disk image
	EnsoNode = EnsoLocal("")

	// EnsoEchoServer creates echo server workloads
	EnsoEchoServer AppConfigFactory = AppConfigFactoryFunc(func() (*AppConfig, error) {
		return &AppConfig{Kind: EnsoEchoServerApp}, nil
	})

	// ConfiguredEnsoGen creates generator workloads sending 1000 packets
	ConfiguredEnsoGen = EnsoGen(1000)
)

// EnsoLocal returns a factory of Enso node configurations copying the given local Enso directory to the node
func EnsoLocal(localEnsoDir string) NodeConfigFactory {
	return NodeConfigFactoryFunc(func() (*NodeConfig, error) {
		return &NodeConfig{
			Kind:         EnsoNodeKind,
			Prefix:       DefaultIPPrefix,
			LocalEnsoDir: localEnsoDir,
		}, nil
	})
}

// EnsoGen returns a factory of EnsoGen workloads sending the given number of packets
func EnsoGen(count int) AppConfigFactory {
	return AppConfigFactoryFunc(func() (*AppConfig, error) {
		return &AppConfig{Kind: EnsoGenApp, Count: count}, nil
	})
}
