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

package clipboard

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	xclipboard "golang.design/x/clipboard"
)

func init() {
	Register("system", func(ctx context.Context) (Accessor, error) {
		return NewSystemAccessor(ctx)
	})
}

var (
	initOnce sync.Once
	initErr  error
)

// SystemAccessor talks to the real OS clipboard via golang.design/x/clipboard.
type SystemAccessor struct{}

// NewSystemAccessor initializes the clipboard backend once per process.
func NewSystemAccessor(ctx context.Context) (*SystemAccessor, error) {
	initOnce.Do(func() {
		initErr = xclipboard.Init()
	})
	if initErr != nil {
		return nil, errors.Errorf("initializing clipboard: %w", initErr)
	}
	return &SystemAccessor{}, nil
}

// ReadText returns the current clipboard text.
func (a *SystemAccessor) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Errorf("reading clipboard: %w", err)
	}
	return string(xclipboard.Read(xclipboard.FmtText)), nil
}

// WriteText replaces the clipboard text and keeps this process available
// as the selection owner until something else takes the clipboard over.
func (a *SystemAccessor) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return errors.Errorf("writing clipboard: %w", err)
	}
	xclipboard.Write(xclipboard.FmtText, []byte(text))
	return nil
}

// WriteTextBackground hands the write to an external helper (xclip, then
// xsel) that stays alive as selection owner, so the caller is free to
// move on immediately. Without a helper it degrades to WriteText.
//
// X11 is the reason this exists: a clipboard write is only as durable as
// its owner process, and the monitor loop must not stall between ticks
// waiting for a clipboard manager to claim the data.
func (a *SystemAccessor) WriteTextBackground(ctx context.Context, text string) error {
	logger := zerolog.Ctx(ctx)

	if runtime.GOOS == "linux" {
		for _, helper := range [][]string{
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		} {
			if err := spawnWriter(helper[0], helper[1:], text); err == nil {
				logger.Debug().Str("helper", helper[0]).Int("chars", len(text)).Msg("clipboard write handed off")
				return nil
			}
		}
		logger.Debug().Msg("no clipboard helper available, falling back to blocking write")
	}

	return a.WriteText(ctx, text)
}

// spawnWriter starts the helper, feeds it the text and leaves it running.
// The helper process owns the selection from here on.
func spawnWriter(name string, args []string, text string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Start(); err != nil {
		return errors.Errorf("starting %s: %w", name, err)
	}
	// Reap the helper once it exits so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}
