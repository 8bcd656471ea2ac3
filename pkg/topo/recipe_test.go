// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package topo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/onosproject/enso-sim/pkg/experiment"
	"github.com/onosproject/onos-lib-go/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const echoRecipe = `experiment:
  name: echo-qemu-switch-enso_bm
  network:
    sync: false
  groups:
    - prefix: server
      count: 1
      nic: enso_bm
      pci_switch: pci_switch
      host: qemu
      node: enso
      app: enso_echo_server
    - prefix: client
      count: 1
      app: enso_gen
      packets: 1000
      ip_start: 2
      wait: true
`

func writeRecipe(t *testing.T, recipe string) string {
	path := filepath.Join(t.TempDir(), "recipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(recipe), 0600))
	return path
}

func TestLoadRecipe(t *testing.T) {
	e, err := LoadRecipe(writeRecipe(t, echoRecipe))
	require.NoError(t, err)
	assert.Equal(t, "echo-qemu-switch-enso_bm", e.Name)

	networks := e.Networks()
	require.Len(t, networks, 1)
	assert.False(t, networks[0].Sync)

	hosts := e.Hosts()
	require.Len(t, hosts, 2)
	assert.Len(t, e.NICs(), 4)

	server, client := hosts[0], hosts[1]
	assert.Equal(t, "server.0", server.Name)
	assert.Equal(t, "10.0.0.1", server.Config.IP)
	assert.Equal(t, experiment.EnsoEchoServerApp, server.Config.App.Kind)
	assert.False(t, server.Wait)

	assert.Equal(t, "client.0", client.Name)
	assert.Equal(t, "10.0.0.2", client.Config.IP)
	assert.Equal(t, experiment.EnsoGenApp, client.Config.App.Kind)
	assert.Equal(t, 1000, client.Config.App.Count)
	assert.Equal(t, experiment.QemuHostKind, client.Kind)
	assert.True(t, client.Wait)
}

func TestRecipeVariants(t *testing.T) {
	e, err := LoadRecipe(writeRecipe(t, `experiment:
  name: gem5-corundum
  network:
    name: fabric
  groups:
    - prefix: node
      count: 3
      nic: corundum_bm
      host: gem5
      local_enso_dir: /enso
      ip_start: 10
      ip_prefix: 16
`))
	require.NoError(t, err)
	assert.Equal(t, "fabric", e.Networks()[0].Name)
	assert.True(t, e.Networks()[0].Sync)

	hosts := e.Hosts()
	require.Len(t, hosts, 3)
	for i, host := range hosts {
		assert.Equal(t, experiment.Gem5HostKind, host.Kind)
		assert.Equal(t, NodeIP(10+i), host.Config.IP)
		assert.Equal(t, 16, host.Config.Prefix)
		assert.Equal(t, "/enso", host.Config.LocalEnsoDir)
		assert.Equal(t, experiment.CorundumBM, host.NICs()[0].Kind)
		assert.Equal(t, experiment.I40eBM, host.NICs()[1].Kind)
	}
}

func TestRecipeErrors(t *testing.T) {
	_, err := LoadRecipe(writeRecipe(t, "hosts: 2\n"))
	assert.True(t, errors.IsInvalid(err))

	_, err = LoadRecipe(writeRecipe(t, "experiment:\n  groups: []\n"))
	assert.True(t, errors.IsInvalid(err))

	_, err = LoadRecipe(writeRecipe(t, `experiment:
  name: bad
  groups:
    - prefix: node
      count: 1
      nic: e1000
`))
	assert.True(t, errors.IsInvalid(err))

	_, err = LoadRecipe(writeRecipe(t, `experiment:
  name: bad
  network:
    kind: ns3
`))
	assert.True(t, errors.IsInvalid(err))

	_, err = LoadRecipe(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGenerateExperimentFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, GenerateExperimentFile(writeRecipe(t, echoRecipe), output))

	d, err := LoadDescriptorFile(output)
	require.NoError(t, err)
	assert.Equal(t, "echo-qemu-switch-enso_bm", d.Name)
	assert.Len(t, d.Hosts, 2)
	assert.Len(t, d.NICs, 4)
}

func TestShippedRecipeMatchesBuiltIn(t *testing.T) {
	e, err := LoadRecipe("../../recipes/echo-qemu-switch-enso_bm.yaml")
	require.NoError(t, err)

	d := NewDescriptor(e)
	assert.Equal(t, "echo-qemu-switch-enso_bm", d.Name)
	require.Len(t, d.Hosts, 2)
	assert.Equal(t, "server.0", d.Hosts[0].Name)
	assert.Equal(t, "client.0", d.Hosts[1].Name)
	assert.True(t, d.Hosts[1].Wait)
	assert.Equal(t, 1000, d.Hosts[1].Node.App.Count)
	assert.Equal(t, []string{
		"server.0/server.0.pci_sw/enso_nic",
		"server.0/server.0.pci_sw/i40e_nic",
		"client.0/client.0.pci_sw/enso_nic",
		"client.0/client.0.pci_sw/i40e_nic",
	}, d.NICs)
}
