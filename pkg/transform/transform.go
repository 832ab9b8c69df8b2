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

package transform

import (
	"strings"
)

// Kind identifies a single text transformation.
type Kind string

// Func is a pure text transformation. It must be total: any input string
// produces an output string, never an error.
type Func func(text string) string

// Step is one entry in a recipe pipeline: a kind plus whatever parameters
// that kind consumes. Parameter fields not used by the kind are ignored.
type Step struct {
	Kind Kind `json:"kind" yaml:"kind"`

	Separator   string `json:"separator,omitempty" yaml:"separator,omitempty"`
	Delimiter   string `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
	Width       int    `json:"width,omitempty" yaml:"width,omitempty"`
	Spaces      int    `json:"spaces,omitempty" yaml:"spaces,omitempty"`
	Pattern     string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Replacement string `json:"replacement,omitempty" yaml:"replacement,omitempty"`
	Find        string `json:"find,omitempty" yaml:"find,omitempty"`
	Replace     string `json:"replace,omitempty" yaml:"replace,omitempty"`
	Prefix      string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix      string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

// Definition describes a registered transformation kind.
type Definition struct {
	Kind Kind

	// Name is the human-readable display name ("Normalize Whitespace").
	Name string

	// Category groups related kinds for listing ("Whitespace", "HTML", ...).
	Category string

	// Aliases are accepted CLI shorthands ("lower", "dedup", ...).
	Aliases []string

	// Build resolves the step's parameters into a concrete Func. A build
	// with invalid parameters must return the identity function, never nil:
	// a bad step degrades to a no-op, it does not break the pipeline.
	Build func(step Step) Func
}

var (
	// definitions holds every registered kind in registration order.
	definitions []Definition

	// byKind indexes definitions for dispatch.
	byKind = map[Kind]int{}

	// byAlias maps lowercased kind strings and aliases to kinds.
	byAlias = map[string]Kind{}
)

// Register adds a transformation kind to the registry. Kinds register
// themselves from init functions; registering the same kind twice panics
// since that is always a programming error.
func Register(def Definition) {
	if _, ok := byKind[def.Kind]; ok {
		panic("transform: duplicate kind " + string(def.Kind))
	}
	byKind[def.Kind] = len(definitions)
	definitions = append(definitions, def)

	byAlias[strings.ToLower(string(def.Kind))] = def.Kind
	for _, alias := range def.Aliases {
		byAlias[strings.ToLower(alias)] = def.Kind
	}
}

// Lookup returns the definition for a kind.
func Lookup(kind Kind) (Definition, bool) {
	i, ok := byKind[kind]
	if !ok {
		return Definition{}, false
	}
	return definitions[i], true
}

// Resolve maps a kind string or CLI alias to its Kind, case-insensitively.
func Resolve(name string) (Kind, bool) {
	kind, ok := byAlias[strings.ToLower(strings.TrimSpace(name))]
	return kind, ok
}

// Definitions returns every registered kind in registration order. The
// returned slice is a copy.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Identity returns its input unchanged. Unknown kinds and invalid
// parameters dispatch here.
func Identity(text string) string {
	return text
}

// Compile resolves a step to its Func. Unknown kinds compile to Identity.
func Compile(step Step) Func {
	def, ok := Lookup(step.Kind)
	if !ok {
		return Identity
	}
	fn := def.Build(step)
	if fn == nil {
		return Identity
	}
	return fn
}

// Apply runs a single step on text. It never fails: unknown kinds and
// invalid parameters leave the text unchanged.
func Apply(step Step, text string) string {
	return Compile(step)(text)
}

// DisplayName returns the display name for a kind, or the raw kind string
// when the kind is not registered.
func DisplayName(kind Kind) string {
	if def, ok := Lookup(kind); ok {
		return def.Name
	}
	return string(kind)
}

// static wraps a parameterless Func as a Build function.
func static(fn Func) func(Step) Func {
	return func(Step) Func { return fn }
}

// splitLines splits text on newlines the way a line-oriented tool does:
// terminators are stripped, a trailing "\r" per line is dropped, and a
// trailing newline does not produce a final empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
