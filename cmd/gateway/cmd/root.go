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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mltemplate/mltemplate/cmd/dependency"
	"github.com/mltemplate/mltemplate/gateway"
	"github.com/mltemplate/mltemplate/gateway/config"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/mlpath"
	"github.com/mltemplate/mltemplate/version"
)

var (
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gateway",
	Short: "the entry point of mltemplate",
	Long: `Gateway is a long-running process and is mainly responsible for answering front-ends from the model registry,
forwarding model and classification requests to the deployment server and training requests to the trainer.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate config.
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Initialize mlpath.
		d, err := cfg.Paths.Init()
		if err != nil {
			return err
		}

		// Initialize logger.
		if err := logger.InitGateway(cfg.Verbose, cfg.Console, d.LogDir(), cfg.Server.LogRotate); err != nil {
			return fmt.Errorf("init gateway logger: %w", err)
		}

		return runGateway(ctx, d)
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
	// Initialize default gateway config.
	cfg = config.New()
	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, true, cfg)
}

func runGateway(ctx context.Context, d mlpath.Mlpath) error {
	logger.Infof("version:\n%s", version.Version())

	ff := dependency.InitMonitor(cfg.PProfPort, cfg.Telemetry)
	defer ff()

	svr, err := gateway.New(ctx, cfg, d)
	if err != nil {
		return err
	}

	dependency.SetupQuitSignalHandler(func() { svr.Stop() })
	return svr.Serve()
}
