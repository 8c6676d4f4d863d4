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

	gatewayclient "github.com/mltemplate/mltemplate/client/gateway"
	"github.com/mltemplate/mltemplate/pkg/format"
	"github.com/mltemplate/mltemplate/pkg/types"
	"github.com/mltemplate/mltemplate/pkg/util/imageutils"
)

var (
	loadModelRequest types.LoadModelRequest

	classifyIDRequest = types.NewClassifyIDRequest()
	classifyIDSave    string

	classifyImageModel string
)

var loadModelCmd = &cobra.Command{
	Use:   "load-model",
	Short: "load a model on the deployment server and make it the default",
	Example: `
$ mltctl load-model --model MLP --version 1
$ mltctl load-model --run-id 0b7fd1c6e5a44b9e8e1f0b6d5a4c3b2a`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoadModel(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg.Output), gateway, loadModelRequest)
	},
}

var classifyIDCmd = &cobra.Command{
	Use:          "classify-id",
	Short:        "classify a sample of a dataset",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClassifyID(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg.Output), gateway, classifyIDRequest, classifyIDSave)
	},
}

var classifyImageCmd = &cobra.Command{
	Use:          "classify-image <png>",
	Short:        "classify a png image",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClassifyImage(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg.Output), gateway, args[0], classifyImageModel)
	},
}

func init() {
	flags := loadModelCmd.Flags()
	flags.StringVarP(&loadModelRequest.Model, "model", "m", "", "name of the model")
	flags.StringVarP(&loadModelRequest.Version, "version", "v", "", "version of the model")
	flags.StringVarP(&loadModelRequest.RunID, "run-id", "r", "", "run id of the model, instead of name and version")

	flags = classifyIDCmd.Flags()
	flags.StringVarP(&classifyIDRequest.Dataset, "dataset", "d", classifyIDRequest.Dataset, "name of the dataset")
	flags.StringVarP(&classifyIDRequest.Stage, "stage", "s", classifyIDRequest.Stage, "split of the dataset, train or test")
	flags.IntVarP(&classifyIDRequest.Idx, "idx", "i", classifyIDRequest.Idx, "index of the sample")
	flags.StringVarP(&classifyIDRequest.Model, "model", "m", "", "name/version of the model, the default model when empty")
	flags.StringVar(&classifyIDSave, "save", "", "write the sample image to this png file")

	classifyImageCmd.Flags().StringVarP(&classifyImageModel, "model", "m", "", "name/version of the model, the default model when empty")
}

func runLoadModel(ctx context.Context, p *printer, gateway gatewayclient.Client, req types.LoadModelRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := gateway.LoadModel(ctx, req); err != nil {
		return err
	}

	loaded := req.RunID
	if loaded == "" {
		loaded = req.Model + "/" + req.Version
	}

	return p.print(true, func() string {
		return fmt.Sprintf("Model %s is loaded.", loaded)
	})
}

func runClassifyID(ctx context.Context, p *printer, gateway gatewayclient.Client, req types.ClassifyIDRequest, save string) error {
	result, err := gateway.ClassifyID(ctx, req)
	if err != nil {
		return err
	}

	if save != "" {
		b, err := imageutils.ToBytes(result.Image)
		if err != nil {
			return err
		}

		if err := os.WriteFile(save, b, 0644); err != nil {
			return err
		}
	}

	view := types.ClassifyIDResponse{
		Label:      result.Label,
		Prediction: result.Prediction,
		Logits:     result.Logits,
	}
	return p.print(view, func() string {
		return format.Classification(&result.Label, result.Prediction, result.Logits)
	})
}

func runClassifyImage(ctx context.Context, p *printer, gateway gatewayclient.Client, path, model string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	img, err := imageutils.FromBytes(b)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	resp, err := gateway.ClassifyImage(ctx, img, model)
	if err != nil {
		return err
	}

	return p.print(resp, func() string {
		return format.Classification(nil, resp.Prediction, resp.Logits)
	})
}
