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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/ninepaste/pkg/recipe"
	"github.com/walteh/ninepaste/pkg/transform"
	"gitlab.com/tozd/go/errors"
)

// 🧪 fakeAccessor is an in-memory clipboard for tests
type fakeAccessor struct {
	mu       sync.Mutex
	text     string
	readErr  error
	writeErr error
	writes   []string
}

func (f *fakeAccessor) ReadText(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.text, nil
}

func (f *fakeAccessor) WriteText(ctx context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.text = text
	f.writes = append(f.writes, text)
	return nil
}

func (f *fakeAccessor) WriteTextBackground(ctx context.Context, text string) error {
	return f.WriteText(ctx, text)
}

func (f *fakeAccessor) set(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = text
}

func uppercaseRecipe(t *testing.T) *recipe.Recipe {
	t.Helper()
	r := recipe.New("Shouty")
	r.AddStep(transform.Step{Kind: transform.KindUppercase})
	return &r
}

func drainEvents(t *testing.T, events chan Event) []Event {
	t.Helper()
	var got []Event
	for {
		select {
		case e := <-events:
			got = append(got, e)
		default:
			return got
		}
	}
}

func TestTickEmitsChangedAndTransformed(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAccessor{text: "hello"}
	m := NewMonitor(fake, NewActiveRecipe(uppercaseRecipe(t)), time.Millisecond)
	m.snapshot = "hello"

	fake.set("new text")
	require.True(t, m.tick(ctx))

	events := drainEvents(t, m.events)
	require.Len(t, events, 2, "should emit Changed then Transformed")
	assert.Equal(t, EventChanged, events[0].Type)
	assert.Equal(t, "new text", events[0].Text)
	assert.Equal(t, EventTransformed, events[1].Type)
	assert.Equal(t, "new text", events[1].Original)
	assert.Equal(t, "NEW TEXT", events[1].Result)

	assert.Equal(t, []string{"NEW TEXT"}, fake.writes, "should write transformed text back")
}

// 🧪 TestTickEchoAvoidance verifies the monitor does not treat its own
// write-back as a fresh clipboard change on the next tick.
func TestTickEchoAvoidance(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAccessor{text: "old"}
	m := NewMonitor(fake, NewActiveRecipe(uppercaseRecipe(t)), time.Millisecond)
	m.snapshot = "old"

	fake.set("changed")
	require.True(t, m.tick(ctx))
	require.Len(t, drainEvents(t, m.events), 2)

	// Clipboard now holds the transformed value written by the monitor.
	assert.Equal(t, "CHANGED", fake.text)

	require.True(t, m.tick(ctx))
	assert.Empty(t, drainEvents(t, m.events), "own write-back must not look like a new change")
	assert.Len(t, fake.writes, 1, "must not re-transform its own output")
}

func TestTickNoActiveRecipe(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAccessor{text: "hello"}
	m := NewMonitor(fake, NewActiveRecipe(nil), time.Millisecond)

	fake.set("changed")
	require.True(t, m.tick(ctx))

	events := drainEvents(t, m.events)
	require.Len(t, events, 1)
	assert.Equal(t, EventChanged, events[0].Type)
	assert.Empty(t, fake.writes)

	// Snapshot advanced anyway, no repeat event next tick.
	require.True(t, m.tick(ctx))
	assert.Empty(t, drainEvents(t, m.events))
}

func TestTickTransformDisabled(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAccessor{}
	m := NewMonitor(fake, NewActiveRecipe(uppercaseRecipe(t)), time.Millisecond)
	m.SetTransformEnabled(false)

	fake.set("changed")
	require.True(t, m.tick(ctx))

	events := drainEvents(t, m.events)
	require.Len(t, events, 1, "change detection keeps running when transform is off")
	assert.Equal(t, EventChanged, events[0].Type)
	assert.Empty(t, fake.writes)
}

func TestTickIdentityResultSkipsWrite(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAccessor{}
	m := NewMonitor(fake, NewActiveRecipe(uppercaseRecipe(t)), time.Millisecond)

	fake.set("ALREADY UPPER")
	require.True(t, m.tick(ctx))

	events := drainEvents(t, m.events)
	require.Len(t, events, 1)
	assert.Equal(t, EventChanged, events[0].Type)
	assert.Empty(t, fake.writes, "unchanged output must not be written back")
}

func TestTickReadErrorSkips(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAccessor{readErr: errors.New("clipboard busy")}
	m := NewMonitor(fake, NewActiveRecipe(nil), time.Millisecond)

	require.True(t, m.tick(ctx))
	assert.Empty(t, drainEvents(t, m.events), "read failure is silent")
}

func TestTickWriteErrorEmitsError(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAccessor{writeErr: errors.New("no clipboard owner")}
	m := NewMonitor(fake, NewActiveRecipe(uppercaseRecipe(t)), time.Millisecond)

	fake.set("changed")
	require.True(t, m.tick(ctx))

	events := drainEvents(t, m.events)
	require.Len(t, events, 2)
	assert.Equal(t, EventChanged, events[0].Type)
	assert.Equal(t, EventError, events[1].Type)
	require.Error(t, events[1].Err)

	// Snapshot still advanced to the observed value, so a failed write
	// does not cause a transform storm on following ticks.
	require.True(t, m.tick(ctx))
	assert.Empty(t, drainEvents(t, m.events))
}

func TestSendRefusesWhenBufferFull(t *testing.T) {
	fake := &fakeAccessor{}
	m := NewMonitor(fake, NewActiveRecipe(nil), time.Millisecond)

	for i := 0; i < eventBuffer; i++ {
		require.True(t, m.send(Event{Type: EventChanged}))
	}
	assert.False(t, m.send(Event{Type: EventChanged}), "full buffer must not block")
}

func TestStartStop(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAccessor{text: "initial"}
	m := NewMonitor(fake, NewActiveRecipe(uppercaseRecipe(t)), 2*time.Millisecond)

	events, err := m.Start(ctx)
	require.NoError(t, err)
	assert.True(t, m.IsRunning())

	_, err = m.Start(ctx)
	require.Error(t, err, "second Start must fail while running")

	fake.set("fresh paste")

	var got []Event
	deadline := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case e := <-events:
			got = append(got, e)
		case <-deadline:
			t.Fatal("timed out waiting for monitor events")
		}
	}
	assert.Equal(t, EventChanged, got[0].Type)
	assert.Equal(t, EventTransformed, got[1].Type)
	assert.Equal(t, "FRESH PASTE", got[1].Result)

	m.Stop()
	m.Stop() // idempotent

	select {
	case _, open := <-events:
		for open {
			select {
			case _, open = <-events:
			case <-time.After(time.Second):
				t.Fatal("event stream not closed after Stop")
			}
		}
	case <-time.After(time.Second):
		t.Fatal("event stream not closed after Stop")
	}
	assert.False(t, m.IsRunning())
}

func TestStopViaContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fake := &fakeAccessor{}
	m := NewMonitor(fake, NewActiveRecipe(nil), 2*time.Millisecond)

	events, err := m.Start(ctx)
	require.NoError(t, err)

	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, open := <-events:
			if !open {
				assert.False(t, m.IsRunning())
				return
			}
		case <-deadline:
			t.Fatal("event stream not closed after context cancel")
		}
	}
}

func TestActiveRecipeSwap(t *testing.T) {
	slot := NewActiveRecipe(nil)

	_, ok := slot.Clone()
	assert.False(t, ok)

	r := recipe.New("Lower")
	r.AddStep(transform.Step{Kind: transform.KindLowercase})
	slot.Swap(&r)

	clone, ok := slot.Clone()
	require.True(t, ok)
	assert.Equal(t, "Lower", clone.Name)

	// The clone is detached from later mutations of the slot's recipe.
	r.AddStep(transform.Step{Kind: transform.KindTrimLines})
	assert.Len(t, clone.Steps, 1)

	slot.Swap(nil)
	_, ok = slot.Clone()
	assert.False(t, ok)
}

func TestAccessorRegistry(t *testing.T) {
	Register("test-fake", func(ctx context.Context) (Accessor, error) {
		return &fakeAccessor{}, nil
	})

	accessor, err := New(context.Background(), "test-fake")
	require.NoError(t, err)
	assert.NotNil(t, accessor)

	_, err = New(context.Background(), "holographic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown clipboard accessor")
}

func TestApplyOnce(t *testing.T) {
	ctx := context.Background()
	fake := &fakeAccessor{text: "  hello world  "}

	r := recipe.New("Cleanup")
	r.AddStep(transform.Step{Kind: transform.KindNormalizeWhitespace})
	r.AddStep(transform.Step{Kind: transform.KindUppercase})

	result, err := ApplyOnce(ctx, fake, r)
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD", result)
	assert.Equal(t, "HELLO WORLD", fake.text)

	fake.readErr = errors.New("unavailable")
	_, err = ApplyOnce(ctx, fake, r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading clipboard")
}
