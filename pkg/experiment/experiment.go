// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package experiment

import (
	"sync"

	"github.com/onosproject/onos-lib-go/pkg/errors"
	"github.com/rs/xid"
)

// Experiment is the root aggregate describing an entire simulation run
type Experiment struct {
	Name string
	ID   string

	lock     sync.RWMutex
	networks []*Network
	hosts    []*Host
	nics     []*NIC

	// Auxiliary structures
	knownNetworks map[*Network]struct{}
	knownHosts    map[*Host]struct{}
	knownNICs     map[*NIC]struct{}
}

// NewExperiment creates a new empty experiment with a unique run identifier
func NewExperiment(name string) *Experiment {
	return &Experiment{
		Name:          name,
		ID:            xid.New().String(),
		knownNetworks: make(map[*Network]struct{}),
		knownHosts:    make(map[*Host]struct{}),
		knownNICs:     make(map[*NIC]struct{}),
	}
}

// AddNetwork registers the network with the experiment
func (e *Experiment) AddNetwork(net *Network) error {
	if net == nil {
		return errors.NewInvalid("Experiment %s: network must not be nil", e.Name)
	}
	e.lock.Lock()
	defer e.lock.Unlock()
	if _, ok := e.knownNetworks[net]; ok {
		return errors.NewAlreadyExists("Experiment %s: network %s already registered", e.Name, net.Name)
	}
	e.knownNetworks[net] = struct{}{}
	e.networks = append(e.networks, net)
	log.Debugf("Experiment %s: added network %s", e.Name, net.Name)
	return nil
}

// AddHost registers the host with the experiment
func (e *Experiment) AddHost(host *Host) error {
	if host == nil {
		return errors.NewInvalid("Experiment %s: host must not be nil", e.Name)
	}
	e.lock.Lock()
	defer e.lock.Unlock()
	if _, ok := e.knownHosts[host]; ok {
		return errors.NewAlreadyExists("Experiment %s: host %s already registered", e.Name, host.Name)
	}
	e.knownHosts[host] = struct{}{}
	e.hosts = append(e.hosts, host)
	log.Debugf("Experiment %s: added host %s", e.Name, host.Name)
	return nil
}

// AddNIC registers the NIC with the experiment; NICs are told apart by identity, not by name
func (e *Experiment) AddNIC(nic *NIC) error {
	if nic == nil {
		return errors.NewInvalid("Experiment %s: NIC must not be nil", e.Name)
	}
	e.lock.Lock()
	defer e.lock.Unlock()
	if _, ok := e.knownNICs[nic]; ok {
		return errors.NewAlreadyExists("Experiment %s: NIC %s already registered", e.Name, nic.Name)
	}
	e.knownNICs[nic] = struct{}{}
	e.nics = append(e.nics, nic)
	log.Debugf("Experiment %s: added NIC %s", e.Name, nic.Name)
	return nil
}

// Networks returns the registered networks in registration order
func (e *Experiment) Networks() []*Network {
	e.lock.RLock()
	defer e.lock.RUnlock()
	networks := make([]*Network, len(e.networks))
	copy(networks, e.networks)
	return networks
}

// Hosts returns the registered hosts in registration order
func (e *Experiment) Hosts() []*Host {
	e.lock.RLock()
	defer e.lock.RUnlock()
	hosts := make([]*Host, len(e.hosts))
	copy(hosts, e.hosts)
	return hosts
}

// NICs returns the registered NICs in registration order
func (e *Experiment) NICs() []*NIC {
	e.lock.RLock()
	defer e.lock.RUnlock()
	nics := make([]*NIC, len(e.nics))
	copy(nics, e.nics)
	return nics
}

// HasNetwork returns true if the network is registered with the experiment
func (e *Experiment) HasNetwork(net *Network) bool {
	e.lock.RLock()
	defer e.lock.RUnlock()
	_, ok := e.knownNetworks[net]
	return ok
}

// HasNIC returns true if the NIC is registered with the experiment
func (e *Experiment) HasNIC(nic *NIC) bool {
	e.lock.RLock()
	defer e.lock.RUnlock()
	_, ok := e.knownNICs[nic]
	return ok
}

// HasHost returns true if the host is registered with the experiment
func (e *Experiment) HasHost(host *Host) bool {
	e.lock.RLock()
	defer e.lock.RUnlock()
	_, ok := e.knownHosts[host]
	return ok
}
