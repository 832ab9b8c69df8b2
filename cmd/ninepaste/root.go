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

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/ninepaste/cmd/ninepaste/opts"
	"github.com/walteh/ninepaste/cmd/ninepaste/userlog"
	"github.com/walteh/ninepaste/pkg/config"
	"github.com/walteh/ninepaste/pkg/ipc"
	"github.com/walteh/ninepaste/pkg/recipe"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool

	// shared is populated by setupContext after flag parsing
	shared *opts.RootOpts
)

// bindRootOpts registers the options struct setupContext fills in
func bindRootOpts(ro *opts.RootOpts) {
	shared = ro
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (defaults to the user config dir)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}

// setupContext configures logging and initializes shared dependencies
// once cobra has parsed the persistent flags.
func setupContext(cmd *cobra.Command) error {
	setupLogging()

	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(zerolog.GlobalLevel())
	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	return initRootOpts(ctx, shared)
}

// initRootOpts loads the config and recipe registry into the shared opts
func initRootOpts(ctx context.Context, ro *opts.RootOpts) error {
	// Resolve config path
	path := configFile
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return errors.Errorf("resolving config path: %w", err)
		}
		path = defaultPath
	}

	// Load config
	cfg, err := config.Load(ctx, path)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	// Open recipe registry
	storePath, err := recipe.DefaultPath()
	if err != nil {
		return errors.Errorf("resolving recipes path: %w", err)
	}
	registry, err := recipe.NewRegistry(ctx, recipe.NewFileStore(storePath))
	if err != nil {
		return errors.Errorf("opening recipe registry: %w", err)
	}

	ro.Config = cfg
	ro.ConfigPath = path
	ro.Registry = registry
	ro.Client = ipc.NewClient(cfg.IPCPort)
	ro.UserLogger = userlog.New(ctx)
	return nil
}
