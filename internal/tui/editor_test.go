// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/tabpal/internal/i18n"
	"github.com/toeirei/tabpal/internal/model"
	"github.com/toeirei/tabpal/internal/session"
)

// newTestEngine builds a session engine over an in-memory fake store.
func newTestEngine(t *testing.T, palettes ...model.Palette) *session.Engine {
	t.Helper()
	fake := &session.FakeStore{Result: palettes}
	e := session.New(fake)
	if err := e.Init(); err != nil {
		t.Fatalf("engine init: %v", err)
	}
	return e
}

func newTestEditor(t *testing.T, palettes ...model.Palette) *editorModel {
	t.Helper()
	i18n.Init("en")
	e := newTestEngine(t, palettes...)
	m := newEditorModel(e, "/tmp/Preferences.tps")
	mi, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return mi.(*editorModel)
}

func testPalettes() []model.Palette {
	return []model.Palette{
		{Name: "Ocean", Kind: model.KindCategorical, Colors: []string{"#112233", "#AABBCC"}},
		{Name: "Heat", Kind: model.KindSequential, Colors: []string{"#FFEE00"}},
		{Name: "Spread", Kind: model.KindDiverging},
	}
}

func TestEditor_Update_Navigation(t *testing.T) {
	m := newTestEditor(t, testPalettes()...)

	if got := m.engine.SelectedPalette(); got != "Ocean" {
		t.Fatalf("expected first palette selected initially, got %q", got)
	}

	// Press down
	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m1 := mi.(*editorModel)
	if m1.cursor != 1 {
		t.Fatalf("expected cursor 1 after down, got %d", m1.cursor)
	}
	if got := m1.engine.SelectedPalette(); got != "Heat" {
		t.Fatalf("expected selection to follow cursor, got %q", got)
	}

	// Press up
	mi, _ = m1.Update(tea.KeyMsg{Type: tea.KeyUp})
	m2 := mi.(*editorModel)
	if m2.cursor != 0 {
		t.Fatalf("expected cursor 0 after up, got %d", m2.cursor)
	}
	if got := m2.engine.SelectedPalette(); got != "Ocean" {
		t.Fatalf("expected selection back on first palette, got %q", got)
	}

	// Up at the top stays put.
	mi, _ = m2.Update(tea.KeyMsg{Type: tea.KeyUp})
	m3 := mi.(*editorModel)
	if m3.cursor != 0 {
		t.Fatalf("expected cursor pinned at 0, got %d", m3.cursor)
	}
}

func TestEditor_Update_TabMovesFocusToColors(t *testing.T) {
	m := newTestEditor(t, testPalettes()...)

	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m1 := mi.(*editorModel)
	if m1.focus != focusColors {
		t.Fatalf("expected color pane focus after tab")
	}
	if got := m1.engine.SelectedColor(); got != "#112233" {
		t.Fatalf("expected first color selected, got %q", got)
	}

	// Down moves to the next color.
	mi, _ = m1.Update(tea.KeyMsg{Type: tea.KeyDown})
	m2 := mi.(*editorModel)
	if got := m2.engine.SelectedColor(); got != "#AABBCC" {
		t.Fatalf("expected second color selected, got %q", got)
	}

	// Tab again returns to the palette pane and clears the color highlight.
	mi, _ = m2.Update(tea.KeyMsg{Type: tea.KeyTab})
	m3 := mi.(*editorModel)
	if m3.focus != focusPalettes {
		t.Fatalf("expected palette pane focus after second tab")
	}
	if got := m3.engine.SelectedColor(); got != "" {
		t.Fatalf("expected color highlight cleared, got %q", got)
	}
}

func TestEditor_Update_TabIgnoredWithoutColors(t *testing.T) {
	m := newTestEditor(t, model.Palette{Name: "Empty", Kind: model.KindCategorical})

	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m1 := mi.(*editorModel)
	if m1.focus != focusPalettes {
		t.Fatalf("expected focus to stay on palettes when there are no colors")
	}
}

func TestEditor_Update_AddColorFlow(t *testing.T) {
	m := newTestEditor(t, testPalettes()...)

	// Move into the colors pane and open the input.
	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	mi, _ = mi.(*editorModel).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m1 := mi.(*editorModel)
	if !m1.isAddingColor {
		t.Fatalf("expected color input open after 'a' in colors pane")
	}

	// Type a bare lowercase hex code and confirm.
	for _, r := range "ff8800" {
		mi, _ = m1.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m1 = mi.(*editorModel)
	}
	mi, _ = m1.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m2 := mi.(*editorModel)

	if m2.isAddingColor {
		t.Fatalf("expected color input closed after enter")
	}
	colors := m2.engine.Colors()
	if len(colors) != 3 || colors[2] != "#FF8800" {
		t.Fatalf("expected canonical #FF8800 appended, got %v", colors)
	}
	if got := m2.engine.SelectedColor(); got != "#FF8800" {
		t.Fatalf("expected new color highlighted, got %q", got)
	}
	if m2.status == "" {
		t.Fatalf("expected a status message after adding a color")
	}
}

func TestEditor_Update_AddColorRejectsBadHex(t *testing.T) {
	m := newTestEditor(t, testPalettes()...)

	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	mi, _ = mi.(*editorModel).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m1 := mi.(*editorModel)
	for _, r := range "red" {
		mi, _ = m1.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m1 = mi.(*editorModel)
	}
	mi, _ = m1.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m2 := mi.(*editorModel)

	if !m2.isAddingColor {
		t.Fatalf("expected input to stay open on invalid color")
	}
	if m2.err == nil {
		t.Fatalf("expected an error for invalid hex input")
	}
	if len(m2.engine.Colors()) != 2 {
		t.Fatalf("expected palette unchanged, got %v", m2.engine.Colors())
	}

	// Esc abandons the input without touching anything.
	mi, _ = m2.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m3 := mi.(*editorModel)
	if m3.isAddingColor {
		t.Fatalf("expected input closed after esc")
	}
}

func TestEditor_Update_DeletePaletteConfirmFlow(t *testing.T) {
	m := newTestEditor(t, testPalettes()...)

	// 'd' opens the confirmation dialog with No preselected.
	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m1 := mi.(*editorModel)
	if !m1.isConfirmingDelete || m1.deleteIsColor {
		t.Fatalf("expected palette delete confirmation after 'd'")
	}
	if m1.confirmCursor != 0 {
		t.Fatalf("expected No preselected, got cursor %d", m1.confirmCursor)
	}

	// Enter on No cancels.
	mi, _ = m1.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m2 := mi.(*editorModel)
	if m2.isConfirmingDelete {
		t.Fatalf("expected dialog closed after enter on No")
	}
	if len(m2.engine.Entries()) != 3 {
		t.Fatalf("expected nothing deleted, got %d palettes", len(m2.engine.Entries()))
	}

	// Open again, move to Yes, confirm.
	mi, _ = m2.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	mi, _ = mi.(*editorModel).Update(tea.KeyMsg{Type: tea.KeyRight})
	mi, _ = mi.(*editorModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	m3 := mi.(*editorModel)
	if m3.isConfirmingDelete {
		t.Fatalf("expected dialog closed after confirming")
	}
	entries := m3.engine.Entries()
	if len(entries) != 2 || entries[0].Name != "Heat" {
		t.Fatalf("expected Ocean gone, got %v", entries)
	}
	if got := m3.engine.SelectedPalette(); got != "Heat" {
		t.Fatalf("expected selection moved to next palette, got %q", got)
	}
}

func TestEditor_Update_DeleteColorConfirmFlow(t *testing.T) {
	m := newTestEditor(t, testPalettes()...)

	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	mi, _ = mi.(*editorModel).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m1 := mi.(*editorModel)
	if !m1.isConfirmingDelete || !m1.deleteIsColor {
		t.Fatalf("expected color delete confirmation")
	}

	// 'y' is a shortcut for Yes.
	mi, _ = m1.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m2 := mi.(*editorModel)
	colors := m2.engine.Colors()
	if len(colors) != 1 || colors[0] != "#AABBCC" {
		t.Fatalf("expected #112233 removed, got %v", colors)
	}
	if m2.focus != focusColors {
		t.Fatalf("expected to stay in colors pane while colors remain")
	}
	if got := m2.engine.SelectedColor(); got != "#AABBCC" {
		t.Fatalf("expected remaining color highlighted, got %q", got)
	}

	// Deleting the last color drops focus back to the palette pane.
	mi, _ = m2.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	mi, _ = mi.(*editorModel).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m3 := mi.(*editorModel)
	if len(m3.engine.Colors()) != 0 {
		t.Fatalf("expected no colors left, got %v", m3.engine.Colors())
	}
	if m3.focus != focusPalettes {
		t.Fatalf("expected focus back on palettes after last color removed")
	}
}

func TestEditor_Update_FilterFlow(t *testing.T) {
	m := newTestEditor(t, testPalettes()...)

	// Enter filter mode with '/'
	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m1 := mi.(*editorModel)
	if !m1.isFiltering {
		t.Fatalf("expected isFiltering true after '/' key")
	}

	// Type "hea" - only Heat should remain.
	for _, r := range "hea" {
		mi, _ = m1.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m1 = mi.(*editorModel)
	}
	if len(m1.displayed) != 1 || m1.displayed[0].Name != "Heat" {
		t.Fatalf("expected only Heat displayed, got %v", m1.displayed)
	}
	if got := m1.engine.SelectedPalette(); got != "Heat" {
		t.Fatalf("expected selection clamped onto visible row, got %q", got)
	}

	// Esc leaves filter mode but keeps the filter.
	mi, _ = m1.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m2 := mi.(*editorModel)
	if m2.isFiltering {
		t.Fatalf("expected isFiltering false after esc")
	}
	if m2.filter != "hea" {
		t.Fatalf("expected filter kept, got %q", m2.filter)
	}

	// 'q' clears the filter first instead of quitting.
	mi, cmd := m2.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m3 := mi.(*editorModel)
	if m3.filter != "" {
		t.Fatalf("expected filter cleared by q, got %q", m3.filter)
	}
	if cmd != nil {
		t.Fatalf("expected no quit while clearing the filter")
	}
	if len(m3.displayed) != 3 {
		t.Fatalf("expected full list restored, got %d", len(m3.displayed))
	}

	// Now q quits.
	_, cmd = m3.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestEditor_Update_FilterMatchingNothing(t *testing.T) {
	m := newTestEditor(t, testPalettes()...)

	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m1 := mi.(*editorModel)
	for _, r := range "zzz" {
		mi, _ = m1.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m1 = mi.(*editorModel)
	}
	if len(m1.displayed) != 0 {
		t.Fatalf("expected empty display list, got %v", m1.displayed)
	}
	if got := m1.engine.SelectedPalette(); got != "" {
		t.Fatalf("expected no selection with nothing visible, got %q", got)
	}
}

func TestEditor_Update_OpenPaletteForm(t *testing.T) {
	m := newTestEditor(t, testPalettes()...)

	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m1 := mi.(*editorModel)
	if m1.state != editorFormView {
		t.Fatalf("expected form view after 'a', got %v", m1.state)
	}

	// backToListMsg returns to the list.
	mi, _ = m1.Update(backToListMsg{})
	m2 := mi.(*editorModel)
	if m2.state != editorListView {
		t.Fatalf("expected list view after backToListMsg, got %v", m2.state)
	}
}

func TestEditor_Update_PaletteCreatedSelectsNewPalette(t *testing.T) {
	m := newTestEditor(t, testPalettes()...)

	// Simulate a creation that happened through the form.
	if err := m.engine.CreatePalette("Night", model.KindCategorical); err != nil {
		t.Fatalf("CreatePalette: %v", err)
	}
	m.state = editorFormView
	mi, _ := m.Update(paletteCreatedMsg{name: "Night"})
	m1 := mi.(*editorModel)

	if m1.state != editorListView {
		t.Fatalf("expected list view after creation, got %v", m1.state)
	}
	if got := m1.engine.SelectedPalette(); got != "Night" {
		t.Fatalf("expected new palette selected, got %q", got)
	}
	if m1.displayed[m1.cursor].Name != "Night" {
		t.Fatalf("expected cursor on new palette, got %q", m1.displayed[m1.cursor].Name)
	}
	if m1.status == "" {
		t.Fatalf("expected a status message after creation")
	}
}

func TestEditor_View_ListAndColors(t *testing.T) {
	m := newTestEditor(t, testPalettes()...)

	out := m.View()
	for _, want := range []string{"Ocean", "Heat", "Spread", "Categorical", "#112233"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}
	if !strings.Contains(out, "/tmp/Preferences.tps") {
		t.Fatalf("expected footer to show the preferences path")
	}
}

func TestEditor_View_ConfirmDialog(t *testing.T) {
	m := newTestEditor(t, testPalettes()...)

	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m1 := mi.(*editorModel)
	out := m1.View()
	if !strings.Contains(out, "Ocean") {
		t.Fatalf("expected dialog to name the palette")
	}
	if !strings.Contains(out, "Yes") || !strings.Contains(out, "No") {
		t.Fatalf("expected Yes/No buttons in dialog")
	}
}

func TestEditor_View_EmptyState(t *testing.T) {
	m := newTestEditor(t)

	out := m.View()
	if !strings.Contains(out, i18n.T("editor.no_palettes")) {
		t.Fatalf("expected empty-state hint in view")
	}
}
