package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/tabpal/internal/i18n"
	"github.com/toeirei/tabpal/internal/model"
	"github.com/toeirei/tabpal/internal/session"
)

// A simple style for focused text inputs.
var focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))

// A message to signal that a new palette was created.
type paletteCreatedMsg struct {
	name string
}

// Focus points of the form, top to bottom.
const (
	formFocusName = iota
	formFocusKind
	formFocusSubmit
)

type paletteFormModel struct {
	engine     *session.Engine
	focusIndex int
	nameInput  textinput.Model
	kinds      []model.PaletteKind
	kindCursor int
	err        error
}

func newPaletteFormModel(engine *session.Engine) paletteFormModel {
	t := textinput.New()
	t.Cursor.Style = focusedStyle
	t.CharLimit = 64
	t.Width = 40
	t.Prompt = i18n.T("form.name_label") + ": "
	t.Placeholder = i18n.T("form.name_placeholder")
	t.Focus()
	t.TextStyle = focusedStyle

	return paletteFormModel{
		engine:    engine,
		nameInput: t,
		kinds:     model.AllKinds(),
	}
}

func (m paletteFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m paletteFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		// Go back to the editor without creating anything.
		case "esc":
			return m, func() tea.Msg { return backToListMsg{} }

		case "left", "right":
			if m.focusIndex == formFocusKind {
				if msg.String() == "left" {
					m.kindCursor--
					if m.kindCursor < 0 {
						m.kindCursor = len(m.kinds) - 1
					}
				} else {
					m.kindCursor++
					if m.kindCursor >= len(m.kinds) {
						m.kindCursor = 0
					}
				}
				return m, nil
			}
			// Otherwise let the text input move its cursor.

		// Set focus to next element
		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Did the user press enter while the create button was focused?
			// If so, create the palette.
			if s == "enter" && m.focusIndex == formFocusSubmit {
				name := strings.TrimSpace(m.nameInput.Value())
				if err := m.engine.CreatePalette(name, m.kinds[m.kindCursor]); err != nil {
					m.err = err
					return m, nil
				}
				return m, func() tea.Msg { return paletteCreatedMsg{name: name} }
			}

			// Cycle focus
			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}
			if m.focusIndex > formFocusSubmit {
				m.focusIndex = formFocusName
			} else if m.focusIndex < formFocusName {
				m.focusIndex = formFocusSubmit
			}

			var cmd tea.Cmd
			if m.focusIndex == formFocusName {
				cmd = m.nameInput.Focus()
				m.nameInput.TextStyle = focusedStyle
			} else {
				m.nameInput.Blur()
				m.nameInput.TextStyle = lipgloss.NewStyle()
			}
			return m, cmd
		}
	}

	// Handle character input and blinking
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m paletteFormModel) View() string {
	var viewItems []string

	viewItems = append(viewItems, titleStyle.Render(i18n.T("form.title")))

	// The title's padding adds a newline, so we add one more for a blank line.
	viewItems = append(viewItems, "")
	viewItems = append(viewItems, m.nameInput.View())

	kindLine := i18n.T("form.kind_label") + ": "
	if m.focusIndex == formFocusKind {
		kindLine += formSelectedItemStyle.Render("◂ " + m.kinds[m.kindCursor].Label() + " ▸")
	} else {
		kindLine += formItemStyle.Render(m.kinds[m.kindCursor].Label())
	}
	viewItems = append(viewItems, "", kindLine)

	button := formItemStyle.Render("[ " + i18n.T("form.create_button") + " ]")
	if m.focusIndex == formFocusSubmit {
		button = formSelectedItemStyle.Render("[ " + i18n.T("form.create_button") + " ]")
	}
	viewItems = append(viewItems, "", button)

	if m.err != nil {
		viewItems = append(viewItems, "", errorStyle.Render(errorText(m.err)))
	}

	viewItems = append(viewItems, "", helpStyle.Render("("+i18n.T("form.footer")+")"))

	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}
