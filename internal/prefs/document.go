// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

package prefs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/beevik/etree"

	"github.com/toeirei/tabpal/internal/model"
)

// XML vocabulary of the preferences file. Palettes are <color-palette>
// elements with name and type attributes; each color is the text of a
// <color> child element.
const (
	containerTag = "preferences"
	paletteTag   = "color-palette"
	colorTag     = "color"

	nameAttr = "name"
	typeAttr = "type"
)

// Document is a parsed preferences file. It wraps the full XML tree, not
// just the palette section, so saving reproduces everything the file
// contained.
type Document struct {
	tree      *etree.Document
	container *etree.Element
}

// Load parses the preferences file at path. It returns ErrNotFound when the
// file does not exist and ErrMalformed when it cannot be parsed or has no
// preferences container under the root element.
func Load(path string) (*Document, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no path configured", ErrNotFound)
	}
	tree := etree.NewDocument()
	if err := tree.ReadFromFile(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	root := tree.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: %s has no root element", ErrMalformed, path)
	}
	container := root.SelectElement(containerTag)
	if container == nil {
		return nil, fmt.Errorf("%w: %s has no <%s> element", ErrMalformed, path, containerTag)
	}
	return &Document{tree: tree, container: container}, nil
}

// Palettes returns every custom color palette in the document, in document
// order. Color values are returned exactly as stored, including entries
// that are not valid hex codes.
func (d *Document) Palettes() []model.Palette {
	elements := d.tree.FindElements("//" + paletteTag)
	palettes := make([]model.Palette, 0, len(elements))
	for _, el := range elements {
		palettes = append(palettes, paletteFromElement(el))
	}
	return palettes
}

// paletteFromElement converts a <color-palette> element into a model value.
func paletteFromElement(el *etree.Element) model.Palette {
	p := model.Palette{
		Name: el.SelectAttrValue(nameAttr, ""),
		Kind: model.PaletteKind(el.SelectAttrValue(typeAttr, "")),
	}
	for _, c := range el.SelectElements(colorTag) {
		p.Colors = append(p.Colors, c.Text())
	}
	return p
}

// findPalette returns the first <color-palette> element with the given name
// attribute, or nil. Matching iterates the elements rather than splicing the
// name into a query path, so names containing quotes or path syntax behave
// like any other.
func (d *Document) findPalette(name string) *etree.Element {
	for _, el := range d.tree.FindElements("//" + paletteTag) {
		if el.SelectAttrValue(nameAttr, "") == name {
			return el
		}
	}
	return nil
}

// AddPalette appends a new empty palette as the last child of the
// preferences container. The name must not already be taken.
func (d *Document) AddPalette(name string, kind model.PaletteKind) error {
	if d.findPalette(name) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicatePalette, name)
	}
	el := d.container.CreateElement(paletteTag)
	el.CreateAttr(nameAttr, name)
	el.CreateAttr(typeAttr, string(kind))
	return nil
}

// RemovePalette deletes the named palette and all its colors.
func (d *Document) RemovePalette(name string) error {
	el := d.findPalette(name)
	if el == nil {
		return fmt.Errorf("%w: %q", ErrPaletteNotFound, name)
	}
	el.Parent().RemoveChild(el)
	return nil
}

// AddColor appends a color element to the named palette. The value is
// written exactly as given; callers canonicalize first.
func (d *Document) AddColor(paletteName, value string) error {
	el := d.findPalette(paletteName)
	if el == nil {
		return fmt.Errorf("%w: %q", ErrPaletteNotFound, paletteName)
	}
	c := el.CreateElement(colorTag)
	c.SetText(value)
	return nil
}

// RemoveColor deletes the first color element of the named palette whose
// stored text equals value exactly.
func (d *Document) RemoveColor(paletteName, value string) error {
	el := d.findPalette(paletteName)
	if el == nil {
		return fmt.Errorf("%w: %q", ErrPaletteNotFound, paletteName)
	}
	for _, c := range el.SelectElements(colorTag) {
		if c.Text() == value {
			el.RemoveChild(c)
			return nil
		}
	}
	return fmt.Errorf("%w: %q in palette %q", ErrColorNotFound, value, paletteName)
}

// Save writes the complete tree to path. A declaration header is added when
// the source file had none; an existing header is written back unchanged.
func (d *Document) Save(path string) error {
	ensureDeclaration(d.tree)
	if err := d.tree.WriteToFile(path); err != nil {
		return fmt.Errorf("write preferences file: %w", err)
	}
	return nil
}

// ensureDeclaration makes sure the document starts with an XML declaration.
// Tableau writes one, but hand-created files may not.
func ensureDeclaration(tree *etree.Document) {
	for _, tok := range tree.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			return
		}
	}
	pi := tree.CreateProcInst("xml", `version='1.0' encoding='utf-8'`)
	tree.RemoveChild(pi)
	tree.InsertChildAt(0, pi)
}
