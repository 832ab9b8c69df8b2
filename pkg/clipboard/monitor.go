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
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/ninepaste/pkg/recipe"
	"gitlab.com/tozd/go/errors"
)

// EventType discriminates monitor events.
type EventType string

const (
	EventChanged     EventType = "changed"
	EventTransformed EventType = "transformed"
	EventError       EventType = "error"
)

// Event is one observation from the monitor loop. For a single tick the
// order is Changed first, then optionally Transformed or Error.
type Event struct {
	Type EventType

	// Text is the observed clipboard text (Changed).
	Text string

	// Original and Result carry the before/after of a write-back
	// (Transformed).
	Original string
	Result   string

	// Err is set for Error events.
	Err error
}

// eventBuffer bounds the event channel. A consumer that stops draining
// terminates the loop instead of blocking it.
const eventBuffer = 100

// ActiveRecipe is the single-slot shared reference to the recipe the
// monitor applies. The daemon swaps it on reload signals; the monitor
// clones it under the lock and applies the clone, so the lock is never
// held across clipboard I/O.
type ActiveRecipe struct {
	mu     sync.Mutex
	recipe *recipe.Recipe
}

// NewActiveRecipe creates the slot, optionally pre-filled.
func NewActiveRecipe(r *recipe.Recipe) *ActiveRecipe {
	return &ActiveRecipe{recipe: r}
}

// Swap replaces the current recipe. Pass nil to deactivate.
func (a *ActiveRecipe) Swap(r *recipe.Recipe) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.recipe = r
}

// Clone returns a deep copy of the current recipe, if one is set.
func (a *ActiveRecipe) Clone() (recipe.Recipe, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.recipe == nil {
		return recipe.Recipe{}, false
	}
	return a.recipe.Clone(), true
}

// Monitor polls the clipboard, detects changes by exact value equality
// against the last observed (or written) snapshot and applies the active
// recipe to changed text.
type Monitor struct {
	accessor Accessor
	active   *ActiveRecipe
	interval time.Duration

	events           chan Event
	running          atomic.Bool
	transformEnabled atomic.Bool

	// snapshot is owned by the loop goroutine; nothing else touches it.
	snapshot string
}

// NewMonitor creates a monitor. Transformation starts enabled; the
// daemon lowers the gate when auto_transform is off.
func NewMonitor(accessor Accessor, active *ActiveRecipe, interval time.Duration) *Monitor {
	m := &Monitor{
		accessor: accessor,
		active:   active,
		interval: interval,
		events:   make(chan Event, eventBuffer),
	}
	m.transformEnabled.Store(true)
	return m
}

// SetTransformEnabled gates recipe application. Change detection keeps
// running either way.
func (m *Monitor) SetTransformEnabled(enabled bool) {
	m.transformEnabled.Store(enabled)
}

// TransformEnabled reports the gate state.
func (m *Monitor) TransformEnabled() bool {
	return m.transformEnabled.Load()
}

// Toggle flips the gate and returns the new state.
func (m *Monitor) Toggle() bool {
	return !m.transformEnabled.Swap(!m.transformEnabled.Load())
}

// IsRunning reports whether the loop goroutine is alive.
func (m *Monitor) IsRunning() bool {
	return m.running.Load()
}

// Start begins the poll loop and returns the event stream. The first
// snapshot comes from one best-effort read; a failed read leaves it
// empty. The stream is closed when the loop exits.
func (m *Monitor) Start(ctx context.Context) (<-chan Event, error) {
	if !m.running.CompareAndSwap(false, true) {
		return nil, errors.Errorf("monitor already running")
	}

	logger := zerolog.Ctx(ctx)
	if text, err := m.accessor.ReadText(ctx); err == nil {
		m.snapshot = text
	} else {
		logger.Debug().Err(err).Msg("initial clipboard read failed, starting from empty snapshot")
	}

	logger.Info().Dur("interval", m.interval).Msg("clipboard monitor started")
	go m.loop(ctx)

	return m.events, nil
}

// Stop requests termination. It is idempotent and cooperative: the loop
// notices within one poll interval. An in-flight clipboard read or write
// is never pre-empted.
func (m *Monitor) Stop() {
	m.running.Store(false)
}

func (m *Monitor) loop(ctx context.Context) {
	logger := zerolog.Ctx(ctx)
	defer func() {
		m.running.Store(false)
		close(m.events)
		logger.Info().Msg("clipboard monitor stopped")
	}()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for m.running.Load() {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !m.tick(ctx) {
				return
			}
		}
	}
}

// tick processes one poll. It returns false when the loop must stop
// because the event consumer went away.
func (m *Monitor) tick(ctx context.Context) bool {
	logger := zerolog.Ctx(ctx)

	current, err := m.accessor.ReadText(ctx)
	if err != nil {
		// Transient; skip this tick, no event.
		logger.Debug().Err(err).Msg("clipboard read failed")
		return true
	}

	if current == m.snapshot {
		return true
	}

	logger.Info().Int("chars", len(current)).Msg("clipboard changed")
	if !m.send(Event{Type: EventChanged, Text: current}) {
		return false
	}

	if m.transformEnabled.Load() {
		// Clone under the lock, apply outside of it: Apply and the
		// write below may take arbitrarily long.
		if active, ok := m.active.Clone(); ok {
			transformed := active.Apply(current)
			if transformed != current {
				if err := m.accessor.WriteTextBackground(ctx, transformed); err != nil {
					logger.Error().Err(err).Msg("writing transformed clipboard failed")
					if !m.send(Event{Type: EventError, Err: err}) {
						return false
					}
				} else {
					logger.Info().
						Int("original_chars", len(current)).
						Int("result_chars", len(transformed)).
						Msg("clipboard transformed")

					// Snapshot the written-back value so the next tick
					// does not see our own write as a fresh change.
					m.snapshot = transformed
					return m.send(Event{Type: EventTransformed, Original: current, Result: transformed})
				}
			}
		}
	}

	m.snapshot = current
	return true
}

// send delivers an event without ever blocking the loop.
func (m *Monitor) send(event Event) bool {
	select {
	case m.events <- event:
		return true
	default:
		return false
	}
}

// ApplyOnce reads the clipboard, applies the recipe and writes the
// result back with a blocking write, for one-shot CLI callers that may
// legitimately wait for the hand-over.
//
// It shares no state with a running monitor: invoking both against the
// real clipboard at the same time can interleave unpredictably. That
// race is accepted and documented, not solved.
func ApplyOnce(ctx context.Context, accessor Accessor, r recipe.Recipe) (string, error) {
	original, err := accessor.ReadText(ctx)
	if err != nil {
		return "", errors.Errorf("reading clipboard: %w", err)
	}
	transformed := r.Apply(original)
	if err := accessor.WriteText(ctx, transformed); err != nil {
		return "", errors.Errorf("writing clipboard: %w", err)
	}
	return transformed, nil
}
