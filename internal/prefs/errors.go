// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package prefs reads and edits Tableau's Preferences.tps file. It is the
// persistence layer of TabPal: every mutation re-reads the file, applies a
// single change to the parsed tree, and writes the whole tree back, so the
// file on disk is always the source of truth. Content outside the custom
// color palettes (comments, processing instructions, other settings
// sections) is carried through untouched.
package prefs

import "errors"

// Sentinel errors returned by the store. Callers match them with errors.Is.
var (
	// ErrNotFound is returned when no preferences file exists at the
	// resolved path, or when no path could be resolved at all.
	ErrNotFound = errors.New("preferences file not found")

	// ErrMalformed is returned when the preferences file cannot be parsed,
	// or parses but lacks the preferences container element.
	ErrMalformed = errors.New("malformed preferences file")

	// ErrDuplicatePalette is returned when adding a palette whose name is
	// already taken.
	ErrDuplicatePalette = errors.New("palette already exists")

	// ErrPaletteNotFound is returned when the named palette does not exist.
	ErrPaletteNotFound = errors.New("palette not found")

	// ErrColorNotFound is returned when the named color is not present in
	// the palette.
	ErrColorNotFound = errors.New("color not found in palette")
)
