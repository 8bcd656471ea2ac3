// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package topo

import (
	"github.com/onosproject/enso-sim/pkg/experiment"
	"github.com/onosproject/onos-lib-go/pkg/errors"
)

// GenerateExperimentFile loads the specified recipe YAML file, builds the experiment it prescribes and
// saves the result as an experiment descriptor file
func GenerateExperimentFile(recipePath string, outputPath string) error {
	e, err := LoadRecipe(recipePath)
	if err != nil {
		return err
	}
	return SaveExperimentFile(e, outputPath)
}

// LoadRecipe loads the specified recipe YAML file and builds the experiment it prescribes
func LoadRecipe(recipePath string) (*experiment.Experiment, error) {
	log.Infof("Loading experiment recipe from %s", recipePath)
	recipe := &Recipe{}
	if err := loadRecipeFile(recipePath, recipe); err != nil {
		return nil, err
	}
	if recipe.Experiment == nil {
		return nil, errors.NewInvalid("No experiment recipe found in %s", recipePath)
	}
	return GenerateExperiment(recipe.Experiment)
}

// Loads the specified recipe YAML file
func loadRecipeFile(path string, recipe *Recipe) error {
	cfg, err := readConfig(path)
	if err != nil {
		return err
	}
	return cfg.Unmarshal(recipe)
}

// GenerateExperiment builds the experiment prescribed by the recipe, creating host groups in order
func GenerateExperiment(recipe *ExperimentRecipe) (*experiment.Experiment, error) {
	if recipe.Name == "" {
		return nil, errors.NewInvalid("Experiment recipe must have a name")
	}
	log.Infof("Generating experiment %s", recipe.Name)

	e := experiment.NewExperiment(recipe.Name)
	net := experiment.NewSwitchNet()
	if recipe.Network.Name != "" {
		net.Name = recipe.Network.Name
	}
	if recipe.Network.Kind != "" && experiment.NetworkKind(recipe.Network.Kind) != experiment.SwitchNetwork {
		return nil, errors.NewInvalid("Unknown network variant %q", recipe.Network.Kind)
	}
	if recipe.Network.Sync != nil {
		net.Sync = *recipe.Network.Sync
	}
	if err := e.AddNetwork(net); err != nil {
		return nil, err
	}

	for _, group := range recipe.Groups {
		if err := createHostGroup(e, net, group); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func createHostGroup(e *experiment.Experiment, net *experiment.Network, group HostGroup) error {
	factories, err := groupFactories(group)
	if err != nil {
		return err
	}

	var opts []Option
	if group.IPStart != nil {
		opts = append(opts, WithIPStart(*group.IPStart))
	}
	if group.IPPrefix != nil {
		opts = append(opts, WithIPPrefix(*group.IPPrefix))
	}

	hosts, err := CreateHostsWithPCISwitch(e, group.Count, group.Prefix, net, factories, opts...)
	if err != nil {
		return err
	}
	for _, host := range hosts {
		host.Wait = group.Wait
	}
	return nil
}

// Resolves the variant names of the group into factories; empty names select the Enso echo server setup
func groupFactories(group HostGroup) (Factories, error) {
	var err error
	factories := Factories{}
	if factories.NIC, err = experiment.LookupNICFactory(orDefault(group.NIC, string(experiment.EnsoBM))); err != nil {
		return factories, err
	}
	if factories.PCISwitch, err = experiment.LookupPCISwitchFactory(orDefault(group.PCISwitch, string(experiment.PCISwitchSimulator))); err != nil {
		return factories, err
	}
	if factories.Host, err = experiment.LookupHostFactory(orDefault(group.Host, string(experiment.QemuHostKind))); err != nil {
		return factories, err
	}
	if factories.NodeConfig, err = experiment.LookupNodeConfigFactory(orDefault(group.Node, string(experiment.EnsoNodeKind)), group.LocalEnsoDir); err != nil {
		return factories, err
	}
	if factories.App, err = experiment.LookupAppConfigFactory(orDefault(group.App, string(experiment.EnsoEchoServerApp)), group.Packets); err != nil {
		return factories, err
	}
	return factories, nil
}

func orDefault(value string, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
