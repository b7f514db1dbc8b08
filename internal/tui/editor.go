// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/tabpal/internal/i18n"
	"github.com/toeirei/tabpal/internal/model"
	"github.com/toeirei/tabpal/internal/session"
)

// A message to signal that a sub-view wants to return to the editor.
type backToListMsg struct{}

type editorViewState int

const (
	editorListView editorViewState = iota
	editorFormView
)

// focusZone says which pane reacts to movement keys.
type focusZone int

const (
	focusPalettes focusZone = iota
	focusColors
)

// editorModel is the model for the palette editor view. The left pane
// lists the palettes of the preferences file, the right pane shows the
// colors of the highlighted palette. All edits go through the session
// engine so the file and the screen stay in sync.
type editorModel struct {
	state  editorViewState
	form   paletteFormModel
	engine *session.Engine
	path   string // shown in the footer so users know which file they edit

	viewport  viewport.Model
	displayed []session.PaletteEntry // The filtered list for display
	cursor    int

	focus       focusZone
	colorCursor int

	colorInput    textinput.Model
	isAddingColor bool

	filter      string
	isFiltering bool

	// For delete confirmation
	isConfirmingDelete bool
	deleteIsColor      bool
	confirmCursor      int // 0 for No, 1 for Yes

	status string
	err    error

	width, height int
}

func newEditorModel(engine *session.Engine, path string) editorModel {
	t := textinput.New()
	t.Cursor.Style = focusedStyle
	t.CharLimit = 32
	t.Width = 20
	t.Prompt = "+ "
	t.Placeholder = i18n.T("editor.input_placeholder")

	m := editorModel{
		engine:     engine,
		path:       path,
		viewport:   viewport.New(0, 0),
		colorInput: t,
	}
	m.rebuildDisplayed()
	m.viewport.SetContent(m.listContentView())
	return m
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

// rebuildDisplayed refreshes the filtered palette list from the engine
// and keeps the cursor and the engine's palette highlight on the same
// row.
func (m *editorModel) rebuildDisplayed() {
	m.displayed = session.FilterEntriesByTokens(m.engine.Entries(), strings.Fields(m.filter))

	// Reset cursor if it's out of bounds
	if m.cursor >= len(m.displayed) {
		if len(m.displayed) > 0 {
			m.cursor = len(m.displayed) - 1
		} else {
			m.cursor = 0
		}
	}

	if len(m.displayed) > 0 {
		m.engine.SelectPalette(m.displayed[m.cursor].Name)
	} else {
		m.engine.SelectPalette("")
	}
	m.colorCursor = 0
	if m.focus == focusColors && len(m.engine.Colors()) == 0 {
		m.focus = focusPalettes
	}
}

// syncColorSelection points the engine's color highlight at the color
// under the cursor, or clears it when the color pane has no focus.
func (m *editorModel) syncColorSelection() {
	colors := m.engine.Colors()
	if m.focus != focusColors || len(colors) == 0 {
		m.engine.ClearColor()
		return
	}
	if m.colorCursor >= len(colors) {
		m.colorCursor = len(colors) - 1
	}
	m.engine.SelectColor(colors[m.colorCursor])
}

func (m *editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size messages first, as they affect layout.
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height

		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		// The space for the panes is the total height minus header, footer, and the newlines around the main area.
		mainAreaHeight := m.height - headerHeight - footerHeight - 2

		// The viewport's height is the available area minus chrome for the pane itself (borders, padding, title).
		m.viewport.Height = mainAreaHeight - 6
		m.viewport.Width = m.width/2 - 4
	}

	// Delegate updates to the form if it's active.
	if m.state == editorFormView {
		// If the form signals a palette was created, switch back and put
		// the cursor on the new palette.
		if pm, ok := msg.(paletteCreatedMsg); ok {
			m.state = editorListView
			m.status = i18n.T("editor.status_palette_created", pm.name)
			m.err = nil
			// A filter could hide the new palette; drop it so the cursor
			// can land on the new row.
			m.filter = ""
			m.rebuildDisplayed()
			for i, entry := range m.displayed {
				if entry.Name == pm.name {
					m.cursor = i
					break
				}
			}
			m.engine.SelectPalette(pm.name)
			m.colorCursor = 0
			m.viewport.SetContent(m.listContentView())
			m.ensureCursorInView()
			return m, nil
		}
		// If the form signals to go back, just switch the view.
		if _, ok := msg.(backToListMsg); ok {
			m.state = editorListView
			m.status = ""
			return m, nil
		}

		var newFormModel tea.Model
		newFormModel, cmd = m.form.Update(msg)
		m.form = newFormModel.(paletteFormModel)
		return m, cmd
	}

	// Handle delete confirmation
	if m.isConfirmingDelete {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "n", "q", "esc":
				m.isConfirmingDelete = false
				m.status = i18n.T("editor.status_cancelled")
				return m, nil
			case "right", "tab", "down", "left", "shift+tab", "up":
				m.confirmCursor = (m.confirmCursor + 1) % 2
				return m, nil
			case "y":
				return m.performDelete()
			case "enter":
				if m.confirmCursor == 1 {
					return m.performDelete()
				}
				m.isConfirmingDelete = false
				m.status = i18n.T("editor.status_cancelled")
				return m, nil
			}
		}
		return m, nil
	}

	// While the color input is open it captures everything except its
	// control keys.
	if m.isAddingColor {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				m.isAddingColor = false
				m.colorInput.Reset()
				m.colorInput.Blur()
				return m, nil
			case "enter":
				value := m.colorInput.Value()
				if err := m.engine.AddColorToSelected(value); err != nil {
					m.err = err
					return m, nil
				}
				m.err = nil
				m.isAddingColor = false
				m.colorInput.Reset()
				m.colorInput.Blur()
				// New colors land at the end of the palette.
				colors := m.engine.Colors()
				m.colorCursor = len(colors) - 1
				m.focus = focusColors
				m.syncColorSelection()
				m.status = i18n.T("editor.status_color_added", colors[m.colorCursor], m.engine.SelectedPalette())
				return m, nil
			}
		}
		m.colorInput, cmd = m.colorInput.Update(msg)
		return m, cmd
	}

	// --- This is the list view update logic ---
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// If we are in filtering mode, capture all input for the filter.
		if m.isFiltering {
			switch msg.Type {
			case tea.KeyEsc:
				m.isFiltering = false // Exit filter mode, but keep filter
			case tea.KeyEnter:
				m.isFiltering = false
			case tea.KeyBackspace:
				if len(m.filter) > 0 {
					m.filter = m.filter[:len(m.filter)-1]
					m.rebuildDisplayed()
					m.viewport.SetContent(m.listContentView())
				}
			case tea.KeyRunes:
				m.filter += string(msg.Runes)
				m.rebuildDisplayed()
				m.viewport.SetContent(m.listContentView())
			}
			return m, nil
		}

		// Not in filtering mode, handle commands.
		switch msg.String() {
		case "/":
			m.isFiltering = true
			m.focus = focusPalettes
			m.engine.ClearColor()
			m.rebuildDisplayed()
			return m, nil

		case "q":
			if m.filter != "" {
				m.filter = ""
				m.rebuildDisplayed()
				m.viewport.SetContent(m.listContentView())
				return m, nil
			}
			return m, tea.Quit

		case "esc":
			if m.filter != "" {
				m.filter = ""
				m.rebuildDisplayed()
				m.viewport.SetContent(m.listContentView())
				return m, nil
			}
			if m.focus == focusColors {
				m.focus = focusPalettes
				m.engine.ClearColor()
				return m, nil
			}
			return m, tea.Quit

		// Navigate up.
		case "up", "k":
			if m.focus == focusColors {
				if m.colorCursor > 0 {
					m.colorCursor--
					m.syncColorSelection()
				}
				return m, nil
			}
			if m.cursor > 0 {
				m.cursor--
				m.rebuildDisplayed()
				// SetContent must be called to redraw the cursor.
				// This resets the viewport's YOffset, so ensureCursorInView must be called *after*.
				m.viewport.SetContent(m.listContentView())
				m.ensureCursorInView()
			}

		// Navigate down.
		case "down", "j":
			if m.focus == focusColors {
				if m.colorCursor < len(m.engine.Colors())-1 {
					m.colorCursor++
					m.syncColorSelection()
				}
				return m, nil
			}
			if m.cursor < len(m.displayed)-1 {
				m.cursor++
				m.rebuildDisplayed()
				m.viewport.SetContent(m.listContentView())
				m.ensureCursorInView()
			}

		// Switch between the palette and color panes.
		case "tab":
			if m.focus == focusPalettes {
				if len(m.engine.Colors()) > 0 {
					m.focus = focusColors
					m.colorCursor = 0
					m.syncColorSelection()
				}
			} else {
				m.focus = focusPalettes
				m.engine.ClearColor()
			}
			return m, nil

		case "enter":
			if m.focus == focusPalettes && len(m.engine.Colors()) > 0 {
				m.focus = focusColors
				m.colorCursor = 0
				m.syncColorSelection()
			}
			return m, nil

		// Create a palette, or add a color when the color pane has focus.
		case "a":
			if m.focus == focusColors {
				m.isAddingColor = true
				m.err = nil
				m.status = ""
				m.colorInput.Reset()
				return m, m.colorInput.Focus()
			}
			m.state = editorFormView
			m.form = newPaletteFormModel(m.engine)
			m.status = ""
			m.err = nil
			return m, m.form.Init()

		// Ask before deleting whatever is highlighted.
		case "d", "delete":
			if m.focus == focusColors && m.engine.SelectedColor() != "" {
				m.isConfirmingDelete = true
				m.deleteIsColor = true
				m.confirmCursor = 0 // Default to No
			} else if m.focus == focusPalettes && m.engine.SelectedPalette() != "" {
				m.isConfirmingDelete = true
				m.deleteIsColor = false
				m.confirmCursor = 0
			}
			return m, nil

		// Copy the highlighted color (or palette name) to the clipboard.
		case "c":
			return m.copySelection()
		}
	}

	return m, nil
}

// performDelete runs the confirmed deletion through the engine and moves
// the cursors off the removed row.
func (m *editorModel) performDelete() (tea.Model, tea.Cmd) {
	m.isConfirmingDelete = false
	paletteName := m.engine.SelectedPalette()
	colorValue := m.engine.SelectedColor()

	if err := m.engine.DeleteSelected(); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil

	if m.deleteIsColor {
		m.status = i18n.T("editor.status_color_deleted", colorValue, paletteName)
		colors := m.engine.Colors()
		if len(colors) == 0 {
			m.focus = focusPalettes
			m.colorCursor = 0
		} else {
			if m.colorCursor >= len(colors) {
				m.colorCursor = len(colors) - 1
			}
			m.syncColorSelection()
		}
		return m, nil
	}

	m.status = i18n.T("editor.status_palette_deleted", paletteName)
	m.focus = focusPalettes
	m.rebuildDisplayed()
	m.viewport.SetContent(m.listContentView())
	m.ensureCursorInView()
	return m, nil
}

// copySelection puts the highlighted color (canonical form) or palette
// name on the system clipboard.
func (m *editorModel) copySelection() (tea.Model, tea.Cmd) {
	var value string
	if m.focus == focusColors {
		value = m.engine.SelectedColor()
		if canonical, err := model.CanonicalHex(value); err == nil {
			value = canonical
		}
	} else {
		value = m.engine.SelectedPalette()
	}
	if value == "" {
		return m, nil
	}
	if err := clipboard.WriteAll(value); err != nil {
		m.status = i18n.T("editor.error_copy", err)
		return m, nil
	}
	m.status = i18n.T("editor.status_copied", value)
	return m, nil
}

// ensureCursorInView adjusts the viewport's YOffset to keep the cursor visible.
// It implements "edge scrolling," where the list only scrolls when the cursor
// hits the top or bottom of the visible area.
func (m *editorModel) ensureCursorInView() {
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1
	if m.cursor < top {
		m.viewport.YOffset = m.cursor
	} else if m.cursor > bottom {
		m.viewport.YOffset = m.cursor - m.viewport.Height + 1
	}
}

// headerView renders the main title of the page.
func (m *editorModel) headerView() string {
	return mainTitleStyle.Render(i18n.T("app.title"))
}

// listContentView builds the string content for the palette list viewport.
func (m *editorModel) listContentView() string {
	var b strings.Builder
	for i, entry := range m.displayed {
		line := "  " + entry.Name + " (" + entry.KindLabel + ")"
		var styledLine string
		if m.cursor == i {
			line = "▸ " + entry.Name + " (" + entry.KindLabel + ")"
			if m.focus == focusPalettes {
				styledLine = selectedItemStyle.Render(line)
			} else {
				styledLine = inactiveItemStyle.Render(line)
			}
		} else {
			styledLine = itemStyle.Render(line)
		}
		b.WriteString(styledLine + "\n")
	}
	return b.String()
}

// colorsContentView builds the string content for the right pane: status
// or error first, then the preview strip and one row per color.
func (m *editorModel) colorsContentView() string {
	var items []string

	if m.err != nil {
		items = append(items, errorStyle.Render(errorText(m.err)))
	} else if m.status != "" {
		items = append(items, statusMessageStyle.Render(m.status))
	}

	if m.engine.SelectedPalette() == "" {
		items = append(items, "", helpStyle.Render(i18n.T("editor.no_selection")))
		return lipgloss.JoinVertical(lipgloss.Left, items...)
	}

	swatches := m.engine.Swatches()
	if len(swatches) == 0 {
		items = append(items, "", helpStyle.Render(i18n.T("editor.no_colors")))
	} else {
		items = append(items, "", renderSwatchStrip(swatches), "")
		for i, sw := range swatches {
			prefix := "  "
			if m.focus == focusColors && i == m.colorCursor {
				prefix = "▸ "
			}
			items = append(items, prefix+renderSwatch(sw))
		}
	}

	if m.isAddingColor {
		items = append(items, "", m.colorInput.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// footerView renders the help text at the bottom of the page.
func (m *editorModel) footerView() string {
	var help string
	switch {
	case m.isConfirmingDelete:
		help = i18n.T("editor.footer_confirm")
	case m.isAddingColor:
		help = i18n.T("editor.footer_input")
	case m.isFiltering:
		help = i18n.T("editor.footer_filter")
	default:
		filterStatus := getFilterStatusLine(m.isFiltering, m.filter, FilterI18nKeys{
			Filtering:    "editor.filtering",
			FilterActive: "editor.filter_active",
			FilterHint:   "editor.filter_hint",
		})
		if m.focus == focusColors {
			help = i18n.T("editor.footer_colors")
		} else {
			help = i18n.T("editor.footer_list") + "  " + filterStatus
		}
	}
	return footerStyle.Render(AlignFooter(help, m.path, m.width))
}

// viewConfirmation renders the centered delete dialog.
func (m *editorModel) viewConfirmation() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("app.title")))
	b.WriteString("\n\n")

	var question string
	if m.deleteIsColor {
		question = i18n.T("editor.confirm_delete_color", m.engine.SelectedColor(), m.engine.SelectedPalette())
	} else {
		question = i18n.T("editor.confirm_delete_palette", m.engine.SelectedPalette(), len(m.engine.Colors()))
	}
	b.WriteString(specialStyle.Render(question))
	b.WriteString("\n")

	var yesButton, noButton string
	if m.confirmCursor == 1 {
		yesButton = activeButtonStyle.Render(i18n.T("common.yes"))
		noButton = buttonStyle.Render(i18n.T("common.no"))
	} else {
		yesButton = buttonStyle.Render(i18n.T("common.yes"))
		noButton = activeButtonStyle.Render(i18n.T("common.no"))
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, noButton, "  ", yesButton)
	b.WriteString(buttons)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		dialogBoxStyle.Render(b.String()),
	)
}

func (m *editorModel) View() string {
	// Handle full-screen views first.
	if m.state == editorFormView {
		return m.form.View()
	}

	if m.isConfirmingDelete {
		return m.viewConfirmation()
	}

	header := m.headerView()

	// --- Palette Pane (Left) ---
	listPaneTitle := lipgloss.NewStyle().Bold(true).Render(i18n.T("editor.palettes_title"))
	var listContent string
	if len(m.displayed) == 0 {
		if m.filter == "" {
			listContent = helpStyle.Render(i18n.T("editor.no_palettes"))
		} else {
			listContent = helpStyle.Render(i18n.T("editor.no_filter_match"))
		}
	} else {
		listContent = m.viewport.View()
	}
	if m.isFiltering {
		listPaneTitle += "  " + helpStyle.Render(i18n.T("editor.filter_prompt")+m.filter+"▌")
	}
	listPaneBody := lipgloss.JoinVertical(lipgloss.Left, listPaneTitle, "", listContent)

	// --- Colors Pane (Right) ---
	colorsPaneTitle := lipgloss.NewStyle().Bold(true).Render(i18n.T("editor.colors_title"))
	colorsPaneBody := lipgloss.JoinVertical(lipgloss.Left, colorsPaneTitle, "", m.colorsContentView())

	// --- Layout ---
	// Use the viewport's calculated height to drive the pane height.
	// The pane height is the viewport height plus the vertical padding, borders, and title space.
	paneHeight := m.viewport.Height + 6
	menuWidth := m.width/2 - 4
	detailWidth := m.width - menuWidth - 8

	leftStyle, rightStyle := activePaneStyle, paneStyle
	if m.focus == focusColors {
		leftStyle, rightStyle = paneStyle, activePaneStyle
	}
	leftPane := leftStyle.Width(menuWidth).Height(paneHeight).Render(listPaneBody)
	rightPane := rightStyle.Width(detailWidth).Height(paneHeight).Render(colorsPaneBody)
	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	return lipgloss.JoinVertical(lipgloss.Top, header, mainArea, m.footerView())
}
