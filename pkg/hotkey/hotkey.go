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

// Package hotkey parses hotkey chord strings like "Ctrl+Shift+T" into a
// structured form. It only validates and normalizes; registering chords
// with the operating system is a presentation-layer concern.
package hotkey

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Modifier is a single modifier key in a chord.
type Modifier string

const (
	ModCtrl  Modifier = "Ctrl"
	ModShift Modifier = "Shift"
	ModAlt   Modifier = "Alt"
	ModMeta  Modifier = "Meta"
)

// Chord is a parsed hotkey: zero or more modifiers plus exactly one key.
type Chord struct {
	Modifiers []Modifier
	Key       string
}

// modifierNames maps accepted modifier spellings to their canonical form.
var modifierNames = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"shift":   ModShift,
	"alt":     ModAlt,
	"super":   ModMeta,
	"win":     ModMeta,
	"cmd":     ModMeta,
	"meta":    ModMeta,
}

// keyNames maps accepted key spellings to their canonical form. Letters,
// digits and function keys are handled separately.
var keyNames = map[string]string{
	"space":     "Space",
	"enter":     "Enter",
	"return":    "Enter",
	"tab":       "Tab",
	"escape":    "Escape",
	"esc":       "Escape",
	"backspace": "Backspace",
	"delete":    "Delete",
	"home":      "Home",
	"end":       "End",
	"pageup":    "PageUp",
	"pagedown":  "PageDown",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
}

// Parse parses a chord string like "Ctrl+Shift+T". Parts are separated by
// "+" and matched case-insensitively. Exactly one non-modifier key is
// required; a second one is an error.
func Parse(chord string) (Chord, error) {
	if strings.TrimSpace(chord) == "" {
		return Chord{}, errors.Errorf("empty hotkey")
	}

	var out Chord
	for _, part := range strings.Split(chord, "+") {
		part = strings.TrimSpace(part)
		lower := strings.ToLower(part)

		if mod, ok := modifierNames[lower]; ok {
			out.Modifiers = append(out.Modifiers, mod)
			continue
		}

		key, err := parseKey(lower)
		if err != nil {
			return Chord{}, errors.Errorf("parsing hotkey %q: %w", chord, err)
		}
		if out.Key != "" {
			return Chord{}, errors.Errorf("parsing hotkey %q: more than one key", chord)
		}
		out.Key = key
	}

	if out.Key == "" {
		return Chord{}, errors.Errorf("parsing hotkey %q: no key", chord)
	}
	return out, nil
}

func parseKey(lower string) (string, error) {
	switch {
	case len(lower) == 1 && lower[0] >= 'a' && lower[0] <= 'z':
		return strings.ToUpper(lower), nil
	case len(lower) == 1 && lower[0] >= '0' && lower[0] <= '9':
		return lower, nil
	}
	if name, ok := keyNames[lower]; ok {
		return name, nil
	}
	// Function keys F1..F12.
	if strings.HasPrefix(lower, "f") && len(lower) <= 3 {
		switch lower {
		case "f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12":
			return strings.ToUpper(lower), nil
		}
	}
	return "", errors.Errorf("unknown key %q", lower)
}

// Validate reports whether chord parses. The empty string is valid: it
// means "no hotkey assigned".
func Validate(chord string) error {
	if chord == "" {
		return nil
	}
	_, err := Parse(chord)
	return err
}

// String renders the chord back in canonical "Ctrl+Shift+T" form.
func (c Chord) String() string {
	parts := make([]string, 0, len(c.Modifiers)+1)
	for _, mod := range c.Modifiers {
		parts = append(parts, string(mod))
	}
	parts = append(parts, c.Key)
	return strings.Join(parts, "+")
}
