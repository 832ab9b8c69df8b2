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

// Package daemon wires the clipboard monitor, the IPC command channel,
// the history log and the console feed into the long-running watch
// service.
package daemon

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/ninepaste/pkg/clipboard"
	"github.com/walteh/ninepaste/pkg/config"
	"github.com/walteh/ninepaste/pkg/history"
	"github.com/walteh/ninepaste/pkg/ipc"
	"github.com/walteh/ninepaste/pkg/log"
	"github.com/walteh/ninepaste/pkg/recipe"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// Options configures a Service. History is optional; everything else is
// required.
type Options struct {
	Config   *config.Config
	Accessor clipboard.Accessor
	Registry *recipe.Registry
	History  *history.Log
	Console  *log.Logger
}

// Service is the background watch service.
type Service struct {
	cfg      *config.Config
	accessor clipboard.Accessor
	registry *recipe.Registry
	history  *history.Log
	console  *log.Logger

	active  *clipboard.ActiveRecipe
	monitor *clipboard.Monitor
}

// New validates the options and assembles a service.
func New(opts Options) (*Service, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Accessor == nil {
		return nil, errors.Errorf("clipboard accessor is required")
	}
	if opts.Registry == nil {
		return nil, errors.Errorf("recipe registry is required")
	}
	if opts.Console == nil {
		return nil, errors.Errorf("console logger is required")
	}

	return &Service{
		cfg:      opts.Config,
		accessor: opts.Accessor,
		registry: opts.Registry,
		history:  opts.History,
		console:  opts.Console,
		active:   clipboard.NewActiveRecipe(nil),
	}, nil
}

// Run starts the monitor and IPC server and blocks until ctx is
// cancelled or a component fails.
func (s *Service) Run(ctx context.Context) error {
	s.refreshActive()

	s.monitor = clipboard.NewMonitor(s.accessor, s.active, s.cfg.PollInterval())
	s.monitor.SetTransformEnabled(s.cfg.AutoTransform)

	events, err := s.monitor.Start(ctx)
	if err != nil {
		return errors.Errorf("starting clipboard monitor: %w", err)
	}

	server, err := ipc.Listen(ctx, s.cfg.IPCPort)
	if err != nil {
		s.monitor.Stop()
		// Most likely another instance already holds the port.
		return errors.Errorf("starting ipc server: %w", err)
	}

	sessionName := ""
	if active, ok := s.registry.Active(); ok {
		sessionName = active.Name
	}
	s.console.StartSession(ctx, log.SessionInfo{
		RecipeName: sessionName,
		Interval:   s.cfg.PollInterval(),
	})

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return s.consumeEvents(groupCtx, events)
	})
	group.Go(func() error {
		s.handleCommands(groupCtx, server.Commands())
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		s.monitor.Stop()
		_ = server.Close()
		return nil
	})

	err = group.Wait()
	s.console.EndSession(ctx)

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// refreshActive mirrors the registry's active recipe into the monitor's
// shared slot.
func (s *Service) refreshActive() {
	if active, ok := s.registry.Active(); ok {
		s.active.Swap(&active)
	} else {
		s.active.Swap(nil)
	}
}

// consumeEvents drains the monitor stream: console feed, notifications
// and history recording. Returns an error when the stream dies while
// the service is supposed to keep running.
func (s *Service) consumeEvents(ctx context.Context, events <-chan clipboard.Event) error {
	logger := zerolog.Ctx(ctx)

	for event := range events {
		switch event.Type {
		case clipboard.EventChanged:
			logger.Debug().Int("chars", len(event.Text)).Msg("clipboard change observed")

		case clipboard.EventTransformed:
			recipeName, recipeID := "", ""
			if active, ok := s.registry.Active(); ok {
				recipeName = active.Name
				recipeID = active.ID.String()
			}

			if s.cfg.ShowNotifications {
				s.console.LogTransformOperation(ctx, log.TransformOperation{
					RecipeName:    recipeName,
					OriginalChars: len(event.Original),
					ResultChars:   len(event.Result),
				})
			} else {
				logger.Info().
					Str("recipe", recipeName).
					Int("original_chars", len(event.Original)).
					Int("result_chars", len(event.Result)).
					Msg("clipboard transformed")
			}

			s.record(ctx, event, recipeID, recipeName)

		case clipboard.EventError:
			s.console.Errorf("clipboard write failed: %v", event.Err)
		}
	}

	if ctx.Err() == nil {
		return errors.Errorf("monitor event stream ended unexpectedly")
	}
	return nil
}

// record appends a transformation to the history log when enabled.
func (s *Service) record(ctx context.Context, event clipboard.Event, recipeID, recipeName string) {
	if s.history == nil || !s.cfg.KeepHistory {
		return
	}
	err := s.history.Append(ctx, &history.Entry{
		Original:    event.Original,
		Transformed: event.Result,
		RecipeID:    recipeID,
		RecipeName:  recipeName,
	})
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("recording history entry failed")
	}
}

// handleCommands reacts to the IPC channel until it closes.
func (s *Service) handleCommands(ctx context.Context, commands <-chan ipc.Command) {
	logger := zerolog.Ctx(ctx)

	for command := range commands {
		switch command {
		case ipc.CommandReload:
			if err := s.registry.Reload(ctx); err != nil {
				s.console.Errorf("reloading recipes failed: %v", err)
				continue
			}
			s.refreshActive()
			if active, ok := s.registry.Active(); ok {
				s.console.Infof("recipes reloaded, active: %s", active.Name)
			} else {
				s.console.Info("recipes reloaded, no active recipe")
			}

		case ipc.CommandToggleTransform:
			if s.monitor.Toggle() {
				s.console.Info("transformations enabled")
			} else {
				s.console.Info("transformations paused")
			}

		case ipc.CommandPing:
			// Liveness probe, already answered by the server.
			logger.Debug().Msg("ping received")
		}
	}
}
