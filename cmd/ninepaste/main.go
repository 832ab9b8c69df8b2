// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/ninepaste/cmd/ninepaste/commands"
	"github.com/walteh/ninepaste/cmd/ninepaste/opts"
	"github.com/walteh/ninepaste/cmd/ninepaste/userlog"
)

func main() {
	ctx := log.Logger.WithContext(context.Background())

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "ninepaste",
		Short: "A clipboard watcher that applies text transformation recipes",
		Long: `ninepaste watches the system clipboard and applies the active recipe
(an ordered pipeline of text transformations) to everything you copy.
Recipes can also be applied one-shot without the background service.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupContext(cmd)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Shared options, populated by setupContext once flags are parsed
	shared := &opts.RootOpts{}
	bindRootOpts(shared)

	// Add commands
	rootCmd.AddCommand(
		commands.NewStartCmd(shared),
		commands.NewApplyCmd(shared),
		commands.NewListCmd(shared),
		commands.NewShowCmd(shared),
		commands.NewTransformCmd(shared),
		commands.NewTransformsCmd(shared),
		commands.NewToggleCmd(shared),
		commands.NewStatusCmd(shared),
		commands.NewRecipeCmd(shared),
		commands.NewHistoryCmd(shared),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userlog.New(ctx).LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
