// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/tabpal/internal/i18n"
	"github.com/toeirei/tabpal/internal/prefs"
)

// A message to signal that the user picked a valid preferences file.
type setupDoneMsg struct {
	path string
}

// setupModel asks for the path to Preferences.tps when none of the usual
// locations holds one.
type setupModel struct {
	input textinput.Model
	err   string
}

func newSetupModel() setupModel {
	t := textinput.New()
	t.Cursor.Style = focusedStyle
	t.CharLimit = 512
	t.Width = 60
	t.Placeholder = i18n.T("setup.placeholder")
	t.Focus()
	t.TextStyle = focusedStyle

	return setupModel{input: t}
}

func (m setupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			path := expandTilde(strings.TrimSpace(m.input.Value()))
			if !prefs.IsPreferencesFile(path) {
				m.err = i18n.T("setup.not_found", prefs.DefaultFileName)
				return m, nil
			}
			return m, func() tea.Msg { return setupDoneMsg{path: path} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m setupModel) View() string {
	var viewItems []string

	viewItems = append(viewItems, mainTitleStyle.Render(i18n.T("app.title")))
	viewItems = append(viewItems, titleStyle.Render(i18n.T("setup.title")))
	viewItems = append(viewItems, i18n.T("setup.intro", prefs.EnvVar))
	viewItems = append(viewItems, "", m.input.View())

	if m.err != "" {
		viewItems = append(viewItems, "", errorStyle.Render(m.err))
	}

	viewItems = append(viewItems, "", helpStyle.Render("("+i18n.T("setup.footer")+")"))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, viewItems...))
}

// expandTilde resolves a leading ~ to the user's home directory so pasted
// shell-style paths work as-is.
func expandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
