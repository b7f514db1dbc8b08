// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package session keeps the running TUI consistent with the preferences
// file. The Engine mirrors the stored palettes in memory, tracks which
// palette and color are highlighted, and rebuilds the derived color views
// after every change, so the panes on screen can never drift apart from
// each other or from the file.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/toeirei/tabpal/internal/model"
)

// Errors reported by Engine operations before the store is ever touched.
var (
	// ErrNoSelection is returned when an operation needs a highlighted
	// palette and there is none.
	ErrNoSelection = errors.New("no palette selected")

	// ErrEmptyName is returned when creating a palette with a blank name.
	ErrEmptyName = errors.New("palette name must not be empty")

	// ErrDuplicateName is returned when creating a palette whose name is
	// already in the cache.
	ErrDuplicateName = errors.New("a palette with this name already exists")

	// ErrDuplicateColor is returned when adding a color the highlighted
	// palette already contains.
	ErrDuplicateColor = errors.New("color is already in the palette")
)

// Store is the slice of the preferences store the engine drives. It is
// satisfied by *prefs.FileStore; tests substitute a FakeStore.
type Store interface {
	Palettes() ([]model.Palette, error)
	AddPalette(name string, kind model.PaletteKind) error
	RemovePalette(name string) error
	AddColor(paletteName, value string) error
	RemoveColor(paletteName, value string) error
}

// PaletteEntry is one row of the palette list: the stored name plus the
// user-facing kind label shown next to it.
type PaletteEntry struct {
	Name      string
	KindLabel string
}

// Swatch is one entry of the visualization view: a stored color value plus
// its renderable form. A hand-edited file can hold values that are not hex
// at all; those keep Valid false and are shown as placeholders instead of
// color blocks.
type Swatch struct {
	Value     string // stored text, exactly as in the file
	Canonical string // #RRGGBB form, set only when Valid
	Valid     bool
}

// Engine holds the in-memory mirror of the persisted palettes and the
// current selection. All mutating operations go through the store and then
// reload the mirror from it, so the cache never claims anything the file
// does not have. A failed operation leaves cache and selection exactly as
// they were.
type Engine struct {
	store Store

	palettes []model.Palette

	// Selection. Empty strings mean nothing is highlighted. A highlighted
	// color always belongs to the highlighted palette.
	selectedPalette string
	selectedColor   string

	// The two derived views, rebuilt from scratch whenever the cache or
	// the selection changes: the color list and the swatch projection.
	colors   []string
	swatches []Swatch
}

// New returns an engine over store. Call Init before use.
func New(store Store) *Engine {
	return &Engine{store: store}
}

// Init loads the palette cache for the first time. Nothing is highlighted
// afterwards.
func (e *Engine) Init() error {
	palettes, err := e.store.Palettes()
	if err != nil {
		return err
	}
	e.palettes = palettes
	e.selectedPalette = ""
	e.selectedColor = ""
	e.recompute()
	return nil
}

// refresh reloads the cache after a successful mutation. The highlighted
// palette survives when it still exists; a highlight that no longer points
// at anything is cleared rather than left dangling.
func (e *Engine) refresh() error {
	palettes, err := e.store.Palettes()
	if err != nil {
		return err
	}
	e.palettes = palettes
	if e.selectedPalette != "" && e.findPalette(e.selectedPalette) == nil {
		e.selectedPalette = ""
		e.selectedColor = ""
	}
	if e.selectedColor != "" && !e.hasColor(e.selectedPalette, e.selectedColor) {
		e.selectedColor = ""
	}
	e.recompute()
	return nil
}

func (e *Engine) findPalette(name string) *model.Palette {
	for i := range e.palettes {
		if e.palettes[i].Name == name {
			return &e.palettes[i]
		}
	}
	return nil
}

func (e *Engine) hasColor(paletteName, value string) bool {
	p := e.findPalette(paletteName)
	if p == nil {
		return false
	}
	for _, c := range p.Colors {
		if c == value {
			return true
		}
	}
	return false
}

// recompute rebuilds both derived views from the cache and the current
// selection. It always starts from empty slices; nothing is patched in
// place.
func (e *Engine) recompute() {
	e.colors = nil
	e.swatches = nil
	p := e.findPalette(e.selectedPalette)
	if p == nil {
		return
	}
	e.colors = append([]string(nil), p.Colors...)
	e.swatches = make([]Swatch, 0, len(p.Colors))
	for _, c := range p.Colors {
		sw := Swatch{Value: c}
		if canonical, err := model.CanonicalHex(c); err == nil {
			sw.Canonical = canonical
			sw.Valid = true
		}
		e.swatches = append(e.swatches, sw)
	}
}

// Entries returns one row per cached palette, in document order.
func (e *Engine) Entries() []PaletteEntry {
	entries := make([]PaletteEntry, 0, len(e.palettes))
	for _, p := range e.palettes {
		entries = append(entries, PaletteEntry{Name: p.Name, KindLabel: p.Kind.Label()})
	}
	return entries
}

// Colors returns the colors of the highlighted palette in stored order,
// exactly as they appear in the file. It is empty when nothing is
// highlighted.
func (e *Engine) Colors() []string {
	return e.colors
}

// Swatches returns the visualization view of the highlighted palette: one
// swatch per color, in the same order as Colors.
func (e *Engine) Swatches() []Swatch {
	return e.swatches
}

// SelectedPalette returns the name of the highlighted palette, or "".
func (e *Engine) SelectedPalette() string {
	return e.selectedPalette
}

// SelectedColor returns the highlighted color, or "".
func (e *Engine) SelectedColor() string {
	return e.selectedColor
}

// SelectPalette highlights the named palette and drops any color highlight.
// A name that is not in the cache clears the selection instead; the
// highlight never points at a palette that does not exist.
func (e *Engine) SelectPalette(name string) {
	if name != "" && e.findPalette(name) == nil {
		name = ""
	}
	e.selectedPalette = name
	e.selectedColor = ""
	e.recompute()
}

// SelectColor highlights a color of the highlighted palette. Values the
// palette does not contain are ignored, so the color highlight can never
// name a color outside the palette.
func (e *Engine) SelectColor(value string) {
	if e.selectedPalette == "" || !e.hasColor(e.selectedPalette, value) {
		return
	}
	e.selectedColor = value
}

// ClearColor drops the color highlight, keeping the palette highlight.
func (e *Engine) ClearColor() {
	e.selectedColor = ""
}

// CreatePalette adds a new empty palette and reloads the cache. The
// highlight does not move to the new palette; callers that want it
// highlighted select it afterwards.
func (e *Engine) CreatePalette(name string, kind model.PaletteKind) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if e.findPalette(name) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	if err := e.store.AddPalette(name, kind); err != nil {
		return err
	}
	return e.refresh()
}

// DeleteSelected removes whatever is highlighted: the color when one is
// highlighted, otherwise the whole palette. With nothing highlighted it
// does nothing.
func (e *Engine) DeleteSelected() error {
	switch {
	case e.selectedColor != "":
		if err := e.store.RemoveColor(e.selectedPalette, e.selectedColor); err != nil {
			return err
		}
		e.selectedColor = ""
		return e.refresh()
	case e.selectedPalette != "":
		if err := e.store.RemovePalette(e.selectedPalette); err != nil {
			return err
		}
		e.selectedPalette = ""
		e.selectedColor = ""
		return e.refresh()
	default:
		return nil
	}
}

// AddColorToSelected canonicalizes the input ('#' optional, any case) and
// appends it to the highlighted palette. The duplicate check is canonical
// too: "aabbcc" and "#AABBCC" are the same color.
func (e *Engine) AddColorToSelected(raw string) error {
	if e.selectedPalette == "" {
		return ErrNoSelection
	}
	value, err := model.CanonicalHex(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	for _, c := range e.colors {
		if model.SameColor(c, value) {
			return fmt.Errorf("%w: %s", ErrDuplicateColor, value)
		}
	}
	if err := e.store.AddColor(e.selectedPalette, value); err != nil {
		return err
	}
	return e.refresh()
}
