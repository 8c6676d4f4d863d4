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

	gatewayclient "github.com/mltemplate/mltemplate/client/gateway"
)

var chatCmd = &cobra.Command{
	Use:          "chat <text>",
	Short:        "chat with the gateway",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg.Output), gateway, strings.Join(args, " "))
	},
}

var debugCmd = &cobra.Command{
	Use:          "debug [text]",
	Short:        "show the tail of the server logs and host diagnostics",
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDebug(cmd.Context(), newPrinter(cmd.OutOrStdout(), cfg.Output), gateway, strings.Join(args, " "))
	},
}

func runChat(ctx context.Context, p *printer, gateway gatewayclient.Client, text string) error {
	msg, err := gateway.Chat(ctx, text)
	if err != nil {
		return err
	}

	return p.print(msg, func() string {
		return msg.Sender + ": " + msg.Text
	})
}

func runDebug(ctx context.Context, p *printer, gateway gatewayclient.Client, text string) error {
	msg, err := gateway.Debug(ctx, text)
	if err != nil {
		return err
	}

	return p.print(msg, func() string {
		return msg.Text
	})
}
