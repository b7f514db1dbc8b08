// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the core data structures used throughout the TabPal
// application: custom color palettes, their persisted type codes, and the
// canonical hex color form shared by the preferences store, the session
// engine, and the TUI.
package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// PaletteKind is the type code of a custom color palette as it is written
// into the preferences file (e.g. "regular", "ordered-sequential").
type PaletteKind string

// The three palette kinds Tableau understands.
const (
	KindCategorical PaletteKind = "regular"
	KindSequential  PaletteKind = "ordered-sequential"
	KindDiverging   PaletteKind = "ordered-diverging"
)

// kindLabels maps persisted type codes to the names Tableau shows in its
// color dialogs.
var kindLabels = map[PaletteKind]string{
	KindCategorical: "Categorical",
	KindSequential:  "Sequential",
	KindDiverging:   "Diverging",
}

// AllKinds returns the known palette kinds in display order.
func AllKinds() []PaletteKind {
	return []PaletteKind{KindCategorical, KindSequential, KindDiverging}
}

// Label returns the user-facing name for the kind. Unknown codes (from a
// hand-edited preferences file) are returned verbatim so they still render.
func (k PaletteKind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return string(k)
}

// KindFromLabel resolves a user-facing label or a raw type code back to the
// persisted code. The match is case-insensitive; ok is false when the value
// matches neither.
func KindFromLabel(s string) (PaletteKind, bool) {
	for kind, label := range kindLabels {
		if strings.EqualFold(s, label) || strings.EqualFold(s, string(kind)) {
			return kind, true
		}
	}
	return "", false
}

// Palette is a named, typed, ordered collection of colors from the
// preferences file. Colors holds the stored text of each color element
// verbatim; slice order is document order and therefore display order.
type Palette struct {
	Name   string
	Kind   PaletteKind
	Colors []string
}

// String returns a one-line representation for lists and log output.
func (p Palette) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Kind.Label())
}

// ErrInvalidHex is returned when a color value is not a 6-digit hex code.
var ErrInvalidHex = errors.New("invalid hex color")

// hexPattern matches a 6-digit hex color with an optional leading '#'.
var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// ValidHex reports whether s is a 6-digit hex color, with or without the
// leading '#'.
func ValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// CanonicalHex normalizes s to the form colors are stored in: a leading '#'
// followed by six uppercase hex digits. It returns ErrInvalidHex when s is
// not a 6-digit hex code.
func CanonicalHex(s string) (string, error) {
	if !hexPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return "#" + strings.ToUpper(strings.TrimPrefix(s, "#")), nil
}

// SameColor reports whether two stored color values name the same color,
// ignoring case and the optional '#'. Values that are not valid hex codes
// only match themselves exactly.
func SameColor(a, b string) bool {
	ca, errA := CanonicalHex(a)
	cb, errB := CanonicalHex(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ca == cb
}
