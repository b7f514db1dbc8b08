// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/toeirei/tabpal/internal/session"
)

// renderSwatch renders one swatch as a colored chip showing its hex code.
// The label is drawn in black or white, whichever contrasts better against
// the background. Values that are not valid hex colors (they can appear in
// hand-edited preferences files) are shown as plain text in the error color
// instead of a chip.
func renderSwatch(sw session.Swatch) string {
	if !sw.Valid {
		return errorStyle.Render(sw.Value)
	}

	fg := lipgloss.Color("231") // white
	if useDarkLabel(sw.Canonical) {
		fg = lipgloss.Color("16") // black
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(sw.Canonical)).
		Foreground(fg).
		Padding(0, 1).
		Render(sw.Canonical)
}

// renderSwatchStrip renders a compact strip of color blocks for a palette,
// used to preview all colors at once. Invalid values render as a mid-gray
// block so the strip keeps its shape.
func renderSwatchStrip(swatches []session.Swatch) string {
	if len(swatches) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(swatches))
	for _, sw := range swatches {
		if !sw.Valid {
			blocks = append(blocks, helpStyle.Render("▒▒"))
			continue
		}
		blocks = append(blocks, lipgloss.NewStyle().
			Foreground(lipgloss.Color(sw.Canonical)).
			Render("██"))
	}
	return strings.Join(blocks, "")
}

// useDarkLabel reports whether black text reads better than white on the
// given background color. It compares the color's relative luminance in
// linear RGB against the common W3C threshold.
func useDarkLabel(hex string) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		return false
	}
	r, g, b := c.LinearRgb()
	luminance := 0.2126*r + 0.7152*g + 0.0722*b
	return luminance > 0.179
}
