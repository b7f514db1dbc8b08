// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

package prefs

import (
	"github.com/toeirei/tabpal/internal/logging"
	"github.com/toeirei/tabpal/internal/model"
)

// FileStore edits the preferences file at a fixed path. It keeps no state
// between calls: every operation re-reads the file, so edits made by other
// programs between two operations are picked up. Two programs writing at
// the same instant still race (last writer wins); TabPal accepts that, as
// Tableau itself only reads the file at startup.
type FileStore struct {
	path string
}

// NewFileStore returns a store for the preferences file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the path this store reads and writes.
func (s *FileStore) Path() string {
	return s.path
}

// Palettes re-reads the file and returns all custom color palettes.
func (s *FileStore) Palettes() ([]model.Palette, error) {
	doc, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	return doc.Palettes(), nil
}

// mutate runs one load-edit-save cycle. When the edit fails nothing is
// written, leaving the file byte-identical.
func (s *FileStore) mutate(edit func(*Document) error) error {
	doc, err := Load(s.path)
	if err != nil {
		return err
	}
	if err := edit(doc); err != nil {
		return err
	}
	return doc.Save(s.path)
}

// AddPalette creates a new empty palette. It fails with ErrDuplicatePalette
// when the name is taken in the file as it exists right now, not as it was
// when the caller last looked.
func (s *FileStore) AddPalette(name string, kind model.PaletteKind) error {
	logging.Debugf("prefs: add palette %q (%s)", name, kind)
	return s.mutate(func(d *Document) error {
		return d.AddPalette(name, kind)
	})
}

// RemovePalette deletes the named palette and all its colors.
func (s *FileStore) RemovePalette(name string) error {
	logging.Debugf("prefs: remove palette %q", name)
	return s.mutate(func(d *Document) error {
		return d.RemovePalette(name)
	})
}

// AddColor appends a color to the named palette.
func (s *FileStore) AddColor(paletteName, value string) error {
	logging.Debugf("prefs: add color %s to %q", value, paletteName)
	return s.mutate(func(d *Document) error {
		return d.AddColor(paletteName, value)
	})
}

// RemoveColor deletes the first exact occurrence of value from the named
// palette.
func (s *FileStore) RemoveColor(paletteName, value string) error {
	logging.Debugf("prefs: remove color %s from %q", value, paletteName)
	return s.mutate(func(d *Document) error {
		return d.RemoveColor(paletteName, value)
	})
}
