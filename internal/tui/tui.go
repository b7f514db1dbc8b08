// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for TabPal.
// This file, tui.go, is the main entry point for the TUI, containing the
// top-level model that acts as a router to the setup and editor views.
package tui // import "github.com/toeirei/tabpal/internal/tui"

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/tabpal/internal/logging"
	"github.com/toeirei/tabpal/internal/prefs"
	"github.com/toeirei/tabpal/internal/session"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	// setupView asks for the preferences file path on first run.
	setupView viewState = iota
	editorView
)

// mainModel is the top-level model for the TUI. It acts as a state machine
// and router, delegating updates and view rendering to the currently active sub-model.
type mainModel struct {
	state  viewState
	setup  setupModel
	editor *editorModel

	// saveConfig remembers a freshly chosen preferences path. It may be
	// nil, in which case the choice only lasts for this run.
	saveConfig func(path string) error

	width  int
	height int
}

// initialModel creates the starting state of the TUI. With a usable
// preferences path the editor opens directly; otherwise the setup view
// asks for one.
func initialModel(engine *session.Engine, path string, saveConfig func(string) error) mainModel {
	m := mainModel{saveConfig: saveConfig}
	if engine != nil {
		editor := newEditorModel(engine, path)
		m.editor = &editor
		m.state = editorView
	} else {
		m.setup = newSetupModel()
		m.state = setupView
	}
	return m
}

// Init is the first function that will be called by the Bubble Tea runtime.
func (m mainModel) Init() tea.Cmd {
	if m.state == setupView {
		return m.setup.Init()
	}
	return m.editor.Init()
}

// Update is the main message loop. It handles all events (like key presses and
// window size changes) and delegates them to the active sub-model.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings that work everywhere.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case setupDoneMsg:
		// The user picked a file; open it and switch to the editor.
		store := prefs.NewFileStore(msg.path)
		engine := session.New(store)
		if err := engine.Init(); err != nil {
			// Stay in setup and show why the file was rejected.
			m.setup.err = errorText(err)
			return m, nil
		}
		if m.saveConfig != nil {
			if err := m.saveConfig(msg.path); err != nil {
				logging.Warnf("could not save preferences path: %v", err)
			}
		}
		m.state = editorView
		editor := newEditorModel(engine, msg.path)
		m.editor = &editor
		// Manually update the new sub-model with the current window size
		// to ensure the viewport is initialized correctly.
		var updatedModel tea.Model
		updatedModel, cmd = m.editor.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.editor = updatedModel.(*editorModel)
		return m, cmd
	}

	// Delegate updates to the currently active view.
	switch m.state {
	case editorView:
		var newEditor tea.Model
		newEditor, cmd = m.editor.Update(msg)
		m.editor = newEditor.(*editorModel)

	default: // setupView
		var newSetup tea.Model
		newSetup, cmd = m.setup.Update(msg)
		m.setup = newSetup.(setupModel)
	}

	return m, cmd
}

// View delegates rendering to the currently active sub-model.
func (m mainModel) View() string {
	if m.state == editorView {
		return m.editor.View()
	}
	return m.setup.View()
}

// Run is the main entrypoint for the TUI. It initializes and runs the
// Bubble Tea program. An empty path starts with the setup view; saveConfig
// (optional) persists a path chosen there.
func Run(path string, saveConfig func(string) error) error {
	var engine *session.Engine
	if path != "" {
		engine = session.New(prefs.NewFileStore(path))
		if err := engine.Init(); err != nil {
			// A present but unreadable file is an error worth stopping
			// for; the setup view is only for the file-not-found case.
			return err
		}
	}

	if _, err := tea.NewProgram(initialModel(engine, path, saveConfig)).Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		return err
	}
	return nil
}
