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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mltemplate/mltemplate/client/config"
	gatewayclient "github.com/mltemplate/mltemplate/client/gateway"
	"github.com/mltemplate/mltemplate/cmd/dependency"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
)

var (
	// Initialize default mltctl config.
	cfg = config.New()

	// Gateway client shared by sub commands.
	gateway gatewayclient.Client
)

var mltctlDescription = `
mltctl is the command line client of mltemplate. It lists models, experiments and runs
of the registry, loads models and classifies samples through the deployment server,
and submits training runs, optionally waiting until the registry holds their results.
`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:               "mltctl <command> [flags]",
	Short:             "command line client of mltemplate",
	Long:              mltctlDescription,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Validate config.
		if err := cfg.Validate(); err != nil {
			return err
		}

		// Initialize logger.
		dir := cfg.Paths.Logs
		if !cfg.Console {
			d, err := cfg.Paths.Init()
			if err != nil {
				return err
			}
			dir = d.LogDir()
		}

		if err := logger.InitCLI(cfg.Verbose, cfg.Console, dir); err != nil {
			return fmt.Errorf("init mltctl logger: %w", err)
		}

		gateway = gatewayclient.New(cfg.Gateway)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, true, cfg)

	// Bind more mltctl specific persistent flags.
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfg.Gateway, "gateway", "g", cfg.Gateway, "base url of the gateway server")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output format, one of table, json, csv")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}

	// Add sub command.
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(experimentsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(bestModelCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(loadModelCmd)
	rootCmd.AddCommand(classifyIDCmd)
	rootCmd.AddCommand(classifyImageCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(watchCmd)
}
