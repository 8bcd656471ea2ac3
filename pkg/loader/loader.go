// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

// Package loader mirrors a built experiment into a running fabric simulator using its gRPC API:
// each simulated network becomes a device and hosts attach their NICs to its ports.
package loader

import (
	"context"
	"fmt"
	"io"

	"github.com/gogo/protobuf/jsonpb"
	"github.com/gogo/protobuf/proto"
	"github.com/onosproject/enso-sim/pkg/experiment"
	simapi "github.com/onosproject/onos-api/go/onos/fabricsim"
	"github.com/onosproject/onos-lib-go/pkg/errors"
	"github.com/onosproject/onos-lib-go/pkg/logging"
	"google.golang.org/grpc"
)

var log = logging.GetLogger("loader")

const (
	agentPortOffset = 20000
	sdnPortOffset   = 1023
	portSpeed       = "100Gbps"
)

// LoadExperiment creates the simulated devices and hosts of the experiment using the fabric simulator
// API client and starts the device agents
func LoadExperiment(ctx context.Context, conn *grpc.ClientConn, e *experiment.Experiment) error {
	log.Infof("Loading experiment %s (%s)", e.Name, e.ID)
	devices := ConstructDevices(e)
	hosts := ConstructHosts(e)
	log.Debugf("Devices: %d; hosts: %d", len(devices), len(hosts))

	deviceClient := simapi.NewDeviceServiceClient(conn)
	for _, device := range devices {
		if _, err := deviceClient.AddDevice(ctx, &simapi.AddDeviceRequest{Device: device}); err != nil {
			log.Errorf("Unable to create simulated device: %+v", err)
			return err
		}
		if _, err := deviceClient.StartDevice(ctx, &simapi.StartDeviceRequest{ID: device.ID}); err != nil {
			log.Errorf("Unable to start agent for simulated device: %+v", err)
			return err
		}
	}

	hostClient := simapi.NewHostServiceClient(conn)
	for _, host := range hosts {
		if _, err := hostClient.AddHost(ctx, &simapi.AddHostRequest{Host: host}); err != nil {
			log.Errorf("Unable to create simulated host: %+v", err)
			return err
		}
	}
	return nil
}

// ClearExperiment removes the simulated hosts and devices of the experiment; entities already gone are skipped
func ClearExperiment(ctx context.Context, conn *grpc.ClientConn, e *experiment.Experiment) error {
	log.Infof("Clearing experiment %s", e.Name)
	hostClient := simapi.NewHostServiceClient(conn)
	for _, host := range ConstructHosts(e) {
		if _, err := hostClient.RemoveHost(ctx, &simapi.RemoveHostRequest{ID: host.ID}); err != nil && !isNotFound(err) {
			return err
		}
	}

	deviceClient := simapi.NewDeviceServiceClient(conn)
	for _, device := range ConstructDevices(e) {
		if _, err := deviceClient.RemoveDevice(ctx, &simapi.RemoveDeviceRequest{ID: device.ID}); err != nil && !isNotFound(err) {
			return err
		}
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.IsNotFound(errors.FromGRPC(err))
}

// ConstructDevices creates a simulated device for every network of the experiment, with one port per
// registered NIC attached to that network, in NIC registration order. PCI switches live inside their
// hosts and have no device of their own.
func ConstructDevices(e *experiment.Experiment) []*simapi.Device {
	devices := make([]*simapi.Device, 0)
	for _, net := range e.Networks() {
		devices = append(devices, ConstructDevice(net, nicsOn(e, net), int32(len(devices))))
	}
	return devices
}

// ConstructDevice creates a simulated device from the specified network and the NICs attached to it
func ConstructDevice(net *experiment.Network, nics []*experiment.NIC, index int32) *simapi.Device {
	ports := make([]*simapi.Port, 0, len(nics))
	for i, nic := range nics {
		number := uint32(i + 1)
		ports = append(ports, &simapi.Port{
			ID:             portID(net, number),
			Name:           nic.Name,
			Number:         number,
			InternalNumber: number + sdnPortOffset,
			Speed:          portSpeed,
			Enabled:        true,
		})
	}
	return &simapi.Device{
		ID:          simapi.DeviceID(net.Name),
		Type:        simapi.DeviceType_SWITCH,
		Ports:       ports,
		ControlPort: agentPortOffset + index,
	}
}

// ConstructHosts creates a simulated host for every host of the experiment
func ConstructHosts(e *experiment.Experiment) []*simapi.Host {
	ports := networkPorts(e)
	hosts := make([]*simapi.Host, 0)
	for i, host := range e.Hosts() {
		hosts = append(hosts, ConstructHost(host, i+1, ports))
	}
	return hosts
}

// ConstructHost creates a simulated host whose interfaces sit on the network device ports of its NICs.
// Only the primary NIC, the first one on the host's PCI bus, carries the node address. NICs without
// a port, e.g. not registered or not attached to a registered network, are left out.
func ConstructHost(host *experiment.Host, index int, ports map[*experiment.NIC]simapi.PortID) *simapi.Host {
	nics := make([]*simapi.NetworkInterface, 0)
	for i, nic := range host.NICs() {
		id, ok := ports[nic]
		if !ok {
			continue
		}
		ni := &simapi.NetworkInterface{
			ID:         id,
			MacAddress: mac(index, i+1),
		}
		if i == 0 && host.Config != nil {
			ni.IpAddress = host.Config.IP
		}
		nics = append(nics, ni)
	}
	return &simapi.Host{
		ID:         simapi.HostID(host.Name),
		Interfaces: nics,
	}
}

// Returns the registered NICs attached to the network, in registration order
func nicsOn(e *experiment.Experiment, net *experiment.Network) []*experiment.NIC {
	nics := make([]*experiment.NIC, 0)
	for _, nic := range e.NICs() {
		if nic.Network == net {
			nics = append(nics, nic)
		}
	}
	return nics
}

// Maps every registered NIC attached to a registered network onto its network device port
func networkPorts(e *experiment.Experiment) map[*experiment.NIC]simapi.PortID {
	ports := make(map[*experiment.NIC]simapi.PortID)
	for _, net := range e.Networks() {
		for i, nic := range nicsOn(e, net) {
			ports[nic] = portID(net, uint32(i+1))
		}
	}
	return ports
}

func portID(net *experiment.Network, number uint32) simapi.PortID {
	return simapi.PortID(fmt.Sprintf("%s/%d", net.Name, number))
}

func mac(hostIndex int, nicIndex int) string {
	return fmt.Sprintf("00:ca:fe:%02x:%02x:%02x", (hostIndex>>8)&0xff, hostIndex&0xff, nicIndex&0xff)
}

// DumpExperiment writes the devices and hosts LoadExperiment would create as JSON, one entity per line
func DumpExperiment(w io.Writer, e *experiment.Experiment) error {
	marshaler := &jsonpb.Marshaler{}
	entities := make([]proto.Message, 0)
	for _, device := range ConstructDevices(e) {
		entities = append(entities, device)
	}
	for _, host := range ConstructHosts(e) {
		entities = append(entities, host)
	}
	for _, entity := range entities {
		if err := marshaler.Marshal(w, entity); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
