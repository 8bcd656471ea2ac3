// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for listing, generating and loading simulation experiments
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/onosproject/enso-sim/pkg/experiment"
	"github.com/onosproject/enso-sim/pkg/experiments"
	"github.com/onosproject/enso-sim/pkg/loader"
	"github.com/onosproject/enso-sim/pkg/topo"
	"github.com/onosproject/onos-lib-go/pkg/cli"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

const (
	serviceAddress = "fabric-sim:5150"

	experimentFlag = "experiment"
	recipeFlag     = "recipe"
	outputFlag     = "output"
	dryRunFlag     = "dry-run"
)

// The main entry point
func main() {
	if err := getRootCommand().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, err)
}

func getRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enso-sim {list, generate, load, clear}",
		Short: "List, generate or load simulation experiments",
	}
	cmd.AddCommand(getListCommand())
	cmd.AddCommand(getGenerateCommand())
	cmd.AddCommand(getLoadCommand())
	cmd.AddCommand(getClearCommand())
	return cmd
}

func addExperimentFlags(cmd *cobra.Command) {
	cmd.Flags().String(experimentFlag, experiments.EnsoPCIeSwitchEchoName, "name of a built-in experiment")
	cmd.Flags().String(recipeFlag, "", "experiment recipe YAML file; use - for stdin; overrides --experiment")
}

// Resolves the experiment from either the recipe file or the built-in registry
func getExperiment(cmd *cobra.Command) (*experiment.Experiment, error) {
	recipePath, _ := cmd.Flags().GetString(recipeFlag)
	if recipePath != "" {
		return topo.LoadRecipe(recipePath)
	}
	name, _ := cmd.Flags().GetString(experimentFlag)
	registry, err := experiments.Default()
	if err != nil {
		return nil, err
	}
	return registry.Get(name)
}

func getListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the built-in experiments",
		Args:    cobra.NoArgs,
		RunE:    runListCommand,
	}
}

func runListCommand(cmd *cobra.Command, args []string) error {
	registry, err := experiments.Default()
	if err != nil {
		return err
	}
	for _, name := range registry.Names() {
		e, _ := registry.Get(name)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\thosts: %d\tnics: %d\n", e.Name, len(e.Hosts()), len(e.NICs()))
	}
	return nil
}

func getGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate an experiment descriptor file for the simulation orchestrator",
		Args:    cobra.NoArgs,
		RunE:    runGenerateCommand,
	}
	addExperimentFlags(cmd)
	cmd.Flags().String(outputFlag, "-", "output descriptor file, YAML or .json; use - for stdout (default)")
	return cmd
}

func runGenerateCommand(cmd *cobra.Command, args []string) error {
	e, err := getExperiment(cmd)
	if err != nil {
		return err
	}
	outputPath, _ := cmd.Flags().GetString(outputFlag)
	return topo.SaveExperimentFile(e, outputPath)
}

func getLoadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "load",
		Aliases: []string{"start"},
		Short:   "Load the experiment's switches and hosts into a running fabric simulator",
		Args:    cobra.NoArgs,
		RunE:    runLoadCommand,
	}
	cli.AddEndpointFlags(cmd, serviceAddress)
	addExperimentFlags(cmd)
	cmd.Flags().Bool(dryRunFlag, false, "print the simulator entities as JSON instead of loading them")
	return cmd
}

func runLoadCommand(cmd *cobra.Command, args []string) error {
	e, err := getExperiment(cmd)
	if err != nil {
		return err
	}
	if dryRun, _ := cmd.Flags().GetBool(dryRunFlag); dryRun {
		return loader.DumpExperiment(cmd.OutOrStdout(), e)
	}

	conn, err := cli.GetConnection(cmd)
	if err != nil {
		return err
	}
	defer closeConnection(conn)
	return loader.LoadExperiment(context.Background(), conn, e)
}

func getClearCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clear",
		Aliases: []string{"stop"},
		Short:   "Remove the experiment's switches and hosts from a running fabric simulator",
		Args:    cobra.NoArgs,
		RunE:    runClearCommand,
	}
	cli.AddEndpointFlags(cmd, serviceAddress)
	addExperimentFlags(cmd)
	return cmd
}

func runClearCommand(cmd *cobra.Command, args []string) error {
	e, err := getExperiment(cmd)
	if err != nil {
		return err
	}
	conn, err := cli.GetConnection(cmd)
	if err != nil {
		return err
	}
	defer closeConnection(conn)
	return loader.ClearExperiment(context.Background(), conn, e)
}

func closeConnection(conn *grpc.ClientConn) {
	_ = conn.Close()
}
