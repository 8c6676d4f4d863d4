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
	"github.com/mltemplate/mltemplate/deployment"
	"github.com/mltemplate/mltemplate/deployment/config"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/mlpath"
	"github.com/mltemplate/mltemplate/version"
)

var (
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "deployment",
	Short: "the inference server of mltemplate",
	Long: `Deployment is a long-running process and is mainly responsible for loading models from the registry
into the inference backend and classifying dataset samples and uploaded images with the default model.`,
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
		if err := logger.InitDeployment(cfg.Verbose, cfg.Console, d.LogDir(), cfg.Server.LogRotate); err != nil {
			return fmt.Errorf("init deployment logger: %w", err)
		}

		return runDeployment(ctx, d)
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
	// Initialize default deployment config.
	cfg = config.New()
	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, true, cfg)
}

func runDeployment(ctx context.Context, d mlpath.Mlpath) error {
	logger.Infof("version:\n%s", version.Version())

	ff := dependency.InitMonitor(cfg.PProfPort, cfg.Telemetry)
	defer ff()

	svr, err := deployment.New(ctx, cfg, d)
	if err != nil {
		return err
	}

	dependency.SetupQuitSignalHandler(func() { svr.Stop() })
	return svr.Serve()
}
