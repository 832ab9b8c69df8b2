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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	feedIndent = 4  // spaces to indent feed entries
	nameWidth  = 25 // Base width for recipe name
)

// 🎯 TransformOperation represents one applied transformation for logging
type TransformOperation struct {
	RecipeName    string // Recipe that was applied
	OriginalChars int    // Size of the observed clipboard text
	ResultChars   int    // Size of the written-back text
}

// 📦 SessionInfo describes the watch session being started
type SessionInfo struct {
	RecipeName string        // Active recipe name, empty when none
	Interval   time.Duration // Poll interval
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	transforms int
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatTransformOperation formats a transformation for display
func (l *Logger) formatTransformOperation(op TransformOperation) string {
	return fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", feedIndent, ""),
		color.New(color.FgBlue).Sprint("⟳"),
		fmt.Sprintf("%-*s", nameWidth, op.RecipeName),
		color.New(color.Faint).Sprint(fmt.Sprintf("%d → %d chars", op.OriginalChars, op.ResultChars)))
}

// 📝 LogTransformOperation logs an applied transformation
func (l *Logger) LogTransformOperation(ctx context.Context, op TransformOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.transforms++

	// Format and print
	fmt.Fprintln(l.console, l.formatTransformOperation(op))

	// Log to zerolog
	l.zlog.Info().
		Str("recipe", op.RecipeName).
		Int("original_chars", op.OriginalChars).
		Int("result_chars", op.ResultChars).
		Msg("clipboard transformed")
}

// 📝 StartSession prints the watch-session banner
func (l *Logger) StartSession(ctx context.Context, info SessionInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.transforms = 0

	recipeName := info.RecipeName
	if recipeName == "" {
		recipeName = "no active recipe"
	}

	// Print session header
	fmt.Fprintf(l.console, "[watching clipboard]\n")

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(recipeName),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(info.Interval.String()))

	// Log to zerolog
	l.zlog.Info().
		Str("recipe", info.RecipeName).
		Dur("interval", info.Interval).
		Msg("starting watch session")
}

// 📝 EndSession ends the current watch session
func (l *Logger) EndSession(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.zlog.Info().
		Int("transforms", l.transforms).
		Msg("watch session complete")

	l.transforms = 0
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	brandText := color.New(color.Bold, color.FgCyan).Sprint("ninepaste")
	fmt.Fprintf(l.console, "\n%s %s\n\n", brandText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
