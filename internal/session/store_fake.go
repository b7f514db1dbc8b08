// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

package session

import (
	"fmt"

	"github.com/toeirei/tabpal/internal/model"
)

// FakeStore is a minimal, configurable in-memory Store used by tests. Its
// mutators edit Result in place so a following Palettes call observes them,
// and each operation can be made to fail through its Err field.
type FakeStore struct {
	// Result is the palette list Palettes returns and the mutators edit.
	Result []model.Palette

	PalettesErr      error
	AddPaletteErr    error
	RemovePaletteErr error
	AddColorErr      error
	RemoveColorErr   error

	// Calls records the operations invoked, for asserting that an operation
	// never reached the store.
	Calls []string
}

// Palettes implements Store.
func (f *FakeStore) Palettes() ([]model.Palette, error) {
	f.Calls = append(f.Calls, "Palettes")
	if f.PalettesErr != nil {
		return nil, f.PalettesErr
	}
	out := make([]model.Palette, len(f.Result))
	copy(out, f.Result)
	return out, nil
}

// AddPalette implements Store.
func (f *FakeStore) AddPalette(name string, kind model.PaletteKind) error {
	f.Calls = append(f.Calls, "AddPalette")
	if f.AddPaletteErr != nil {
		return f.AddPaletteErr
	}
	f.Result = append(f.Result, model.Palette{Name: name, Kind: kind})
	return nil
}

// RemovePalette implements Store.
func (f *FakeStore) RemovePalette(name string) error {
	f.Calls = append(f.Calls, "RemovePalette")
	if f.RemovePaletteErr != nil {
		return f.RemovePaletteErr
	}
	for i := range f.Result {
		if f.Result[i].Name == name {
			f.Result = append(f.Result[:i], f.Result[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("fake store: no palette %q", name)
}

// AddColor implements Store.
func (f *FakeStore) AddColor(paletteName, value string) error {
	f.Calls = append(f.Calls, "AddColor")
	if f.AddColorErr != nil {
		return f.AddColorErr
	}
	for i := range f.Result {
		if f.Result[i].Name == paletteName {
			f.Result[i].Colors = append(f.Result[i].Colors, value)
			return nil
		}
	}
	return fmt.Errorf("fake store: no palette %q", paletteName)
}

// RemoveColor implements Store.
func (f *FakeStore) RemoveColor(paletteName, value string) error {
	f.Calls = append(f.Calls, "RemoveColor")
	if f.RemoveColorErr != nil {
		return f.RemoveColorErr
	}
	for i := range f.Result {
		if f.Result[i].Name != paletteName {
			continue
		}
		for j, c := range f.Result[i].Colors {
			if c == value {
				f.Result[i].Colors = append(f.Result[i].Colors[:j], f.Result[i].Colors[j+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("fake store: no color %s in %q", value, paletteName)
}
