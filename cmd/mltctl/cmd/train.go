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
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mltemplate/mltemplate/client/config"
	gatewayclient "github.com/mltemplate/mltemplate/client/gateway"
	logger "github.com/mltemplate/mltemplate/internal/mllog"
	"github.com/mltemplate/mltemplate/pkg/format"
	"github.com/mltemplate/mltemplate/pkg/types"
	"github.com/mltemplate/mltemplate/pkg/watch"
)

const (
	// spinInterval is the refresh interval of the wait spinner.
	spinInterval = 100 * time.Millisecond

	// trainingFinishedMessage precedes the summary of a finished training run.
	trainingFinishedMessage = "Training has finished. The registry has been updated with the training results.\n\n"
)

var (
	trainRequestID string
	trainWatch     bool
)

var trainCmd = &cobra.Command{
	Use:   "train [-- arguments]",
	Short: "submit a training run",
	Long: `Submit a training run to the trainer through the gateway. Arguments after -- are passed to the
training entry point, the default is "` + types.DefaultCommandLineArguments + `".`,
	Example: `
$ mltctl train
$ mltctl train --watch -- --config-name train.yaml model=cnn dataset=mnist
$ mltctl train -- --multirun model=mlp,cnn`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		requestID := trainRequestID
		if requestID == "" {
			requestID = uuid.NewString()
		}

		p := newPrinter(cmd.OutOrStdout(), cfg.Output)
		if err := runTrain(cmd.Context(), p, gateway, requestID, strings.Join(args, " ")); err != nil {
			return err
		}

		if !trainWatch {
			return nil
		}

		return runWatch(cmd.Context(), p, cmd.ErrOrStderr(), gateway, requestID, cfg.Watch)
	},
}

var statusCmd = &cobra.Command{
	Use:          "status <request-id>",
	Short:        "show the registry state of a training request",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg.Output), gateway, args[0])
	},
}

var watchCmd = &cobra.Command{
	Use:          "watch <request-id>",
	Short:        "wait until the registry holds the run of a training request",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg.Output), cmd.ErrOrStderr(), gateway, args[0], cfg.Watch)
	},
}

func init() {
	flags := trainCmd.Flags()
	flags.StringVarP(&trainRequestID, "request-id", "r", "", "id of the training request, a random uuid when empty")
	flags.BoolVarP(&trainWatch, "watch", "w", false, "wait until the registry holds the run of the training request")

	flags = watchCmd.Flags()
	flags.DurationVar(&cfg.Watch.Interval, "interval", cfg.Watch.Interval, "interval between two training status lookups")
	flags.DurationVar(&cfg.Watch.Timeout, "timeout", cfg.Watch.Timeout, "time to wait for the training run")

	for key, flag := range map[string]string{
		"watch.interval": "interval",
		"watch.timeout":  "timeout",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func runTrain(ctx context.Context, p *printer, gateway gatewayclient.Client, requestID, arguments string) error {
	req := types.TrainRequest{
		RequestID:            requestID,
		CommandLineArguments: arguments,
	}

	ack, err := gateway.Train(ctx, req)
	if err != nil {
		return err
	}

	logger.WithRequestID(requestID).Infof("training request submitted: %s", ack)
	return p.print(map[string]string{"request_id": requestID, "message": ack}, func() string {
		return fmt.Sprintf("%s\nrequest_id: %s", ack, requestID)
	})
}

func runStatus(ctx context.Context, p *printer, gateway gatewayclient.Client, requestID string) error {
	lookup, err := gateway.TrainingStatus(ctx, requestID)
	if err != nil {
		return err
	}

	return p.print(lookup, func() string {
		if lookup.RunID == "" {
			return fmt.Sprintf("Training request %s is %s.", requestID, lookup.State)
		}

		return fmt.Sprintf("Training request %s is %s with run %s.", requestID, lookup.State, lookup.RunID)
	})
}

// runWatch waits for the run of the request, showing a spinner on progress.
func runWatch(ctx context.Context, p *printer, progress io.Writer, gateway gatewayclient.Client, requestID string, watchConfig config.WatchConfig) error {
	ctx, cancel := context.WithTimeout(ctx, watchConfig.Timeout)
	defer cancel()

	finished := make(chan *types.RunLookup, 1)
	watcher := watch.New(gateway, watch.WithInterval(watchConfig.Interval))
	watcher.Add(watch.Request{
		RequestID: requestID,
		Notify: func(ctx context.Context, requestID string, lookup *types.RunLookup) {
			finished <- lookup
		},
	})

	go func() {
		watcher.Check(ctx)
		watcher.Serve(ctx)
	}()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("waiting for training request "+requestID),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	spin := time.NewTicker(spinInterval)
	defer spin.Stop()

	for {
		select {
		case lookup := <-finished:
			bar.Finish() // nolint: errcheck
			return reportTraining(ctx, p, gateway, requestID, lookup)
		case <-spin.C:
			bar.Add(1) // nolint: errcheck
		case <-ctx.Done():
			bar.Finish() // nolint: errcheck
			return fmt.Errorf("wait for training request %s: %w", requestID, ctx.Err())
		}
	}
}

// reportTraining prints the summary of the registry after a finished run.
func reportTraining(ctx context.Context, p *printer, gateway gatewayclient.Client, requestID string, lookup *types.RunLookup) error {
	if lookup.State == types.RunStateFailed {
		return fmt.Errorf("training request %s failed with run %s", requestID, lookup.RunID)
	}

	if p.output != config.OutputTable {
		return p.print(lookup, nil)
	}

	summary, err := gateway.Summary(ctx)
	if err != nil {
		return err
	}

	return p.printText(format.Chunk(trainingFinishedMessage+summary.Text, format.MaxMessageLength)...)
}
