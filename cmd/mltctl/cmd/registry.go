/*
 *     Copyright 2024 The Mltemplate Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mltemplate/mltemplate/client/config"
	gatewayclient "github.com/mltemplate/mltemplate/client/gateway"
	"github.com/mltemplate/mltemplate/pkg/format"
	"github.com/mltemplate/mltemplate/pkg/types"
)

var runsExperiment string

var commandsCmd = &cobra.Command{
	Use:          "commands",
	Short:        "list the commands known by the gateway",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommands(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg.Output), gateway)
	},
}

var modelsCmd = &cobra.Command{
	Use:          "models",
	Short:        "list every model of the registry",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runModels(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg.Output), gateway)
	},
}

var experimentsCmd = &cobra.Command{
	Use:          "experiments",
	Short:        "list the experiments of the registry",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExperiments(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg.Output), gateway)
	},
}

var runsCmd = &cobra.Command{
	Use:          "runs",
	Short:        "list the runs of one experiment or of all experiments",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRuns(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg.Output), gateway, runsExperiment)
	},
}

var versionsCmd = &cobra.Command{
	Use:          "versions",
	Short:        "list the registered model versions",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersions(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg.Output), gateway)
	},
}

var bestModelCmd = &cobra.Command{
	Use:          "best-model <experiment>",
	Short:        "show the model with the best test accuracy of an experiment",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBestModel(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg.Output), gateway, args[0])
	},
}

var summaryCmd = &cobra.Command{
	Use:          "summary",
	Short:        "show every model and the best model of each experiment",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSummary(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg.Output), gateway)
	},
}

var statsCmd = &cobra.Command{
	Use:          "stats",
	Short:        "show test accuracy statistics of each experiment",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg.Output), gateway)
	},
}

func init() {
	runsCmd.Flags().StringVarP(&runsExperiment, "experiment", "e", "", "name of the experiment, all experiments when empty")
}

func runCommands(ctx context.Context, p *printer, gateway gatewayclient.Client) error {
	commands, err := gateway.Commands(ctx)
	if err != nil {
		return err
	}

	return p.print(commands, func() string {
		return strings.Join(commands, "\n")
	})
}

func runModels(ctx context.Context, p *printer, gateway gatewayclient.Client) error {
	models, err := gateway.Models(ctx)
	if err != nil {
		return err
	}

	return p.printRecords(models, func() string {
		return format.ModelTable(models, "Test Accuracy")
	})
}

func runExperiments(ctx context.Context, p *printer, gateway gatewayclient.Client) error {
	experiments, err := gateway.ListExperiments(ctx)
	if err != nil {
		return err
	}

	return p.print(experiments, func() string {
		return format.ExperimentsTable(experiments)
	})
}

func runRuns(ctx context.Context, p *printer, gateway gatewayclient.Client, experimentName string) error {
	runs, err := gateway.ListRuns(ctx, experimentName)
	if err != nil {
		return err
	}

	return p.print(runs, func() string {
		return format.RunsTable(runs)
	})
}

func runVersions(ctx context.Context, p *printer, gateway gatewayclient.Client) error {
	versions, err := gateway.ListModels(ctx)
	if err != nil {
		return err
	}

	return p.print(versions, func() string {
		return format.ModelVersionsTable(versions)
	})
}

func runBestModel(ctx context.Context, p *printer, gateway gatewayclient.Client, experimentName string) error {
	model, err := gateway.BestModelForExperiment(ctx, experimentName)
	if err != nil {
		return err
	}

	return p.print(model, func() string {
		if model == nil {
			return "No model found for experiment " + experimentName + "."
		}

		return format.ModelTable([]types.ModelRecord{*model}, "Test Accuracy")
	})
}

func runSummary(ctx context.Context, p *printer, gateway gatewayclient.Client) error {
	summary, err := gateway.Summary(ctx)
	if err != nil {
		return err
	}

	if p.output != config.OutputTable {
		return p.print(summary, nil)
	}

	return p.printText(summary.Chunks...)
}

func runStats(ctx context.Context, p *printer, gateway gatewayclient.Client) error {
	models, err := gateway.Models(ctx)
	if err != nil {
		return err
	}

	experiments, err := gateway.ListExperiments(ctx)
	if err != nil {
		return err
	}

	experimentStats, err := format.ExperimentStats(models)
	if err != nil {
		return err
	}

	names := make(map[string]string, len(experiments))
	for _, experiment := range experiments {
		names[experiment.ID] = experiment.Name
	}

	return p.print(experimentStats, func() string {
		return format.StatsTable(experimentStats, names)
	})
}
