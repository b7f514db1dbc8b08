// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"

	"github.com/toeirei/tabpal/internal/i18n"
	"github.com/toeirei/tabpal/internal/model"
	"github.com/toeirei/tabpal/internal/prefs"
	"github.com/toeirei/tabpal/internal/session"
)

// FilterI18nKeys holds the translation keys for filter status messages.
type FilterI18nKeys struct {
	Filtering    string // e.g., "editor.filtering"
	FilterActive string // e.g., "editor.filter_active"
	FilterHint   string // e.g., "editor.filter_hint"
}

// getFilterStatusLine generates the standard filter status string for footers.
// It takes the filtering state, the filter text, a struct of i18n keys,
// and optional arguments for the format strings.
func getFilterStatusLine(isFiltering bool, filterText string, keys FilterI18nKeys, formatArgs ...interface{}) string {
	allArgs := append(formatArgs, filterText)
	if isFiltering {
		return i18n.T(keys.Filtering, allArgs...)
	}
	if filterText != "" {
		return i18n.T(keys.FilterActive, allArgs...)
	}
	return i18n.T(keys.FilterHint)
}

// errorText translates the well-known palette errors into localized
// messages. Anything unexpected falls back to the raw error string so it
// is never swallowed.
func errorText(err error) string {
	switch {
	case errors.Is(err, session.ErrEmptyName):
		return i18n.T("errors.empty_name")
	case errors.Is(err, session.ErrDuplicateName), errors.Is(err, prefs.ErrDuplicatePalette):
		return i18n.T("errors.duplicate_palette")
	case errors.Is(err, session.ErrDuplicateColor):
		return i18n.T("errors.duplicate_color")
	case errors.Is(err, session.ErrNoSelection):
		return i18n.T("errors.no_selection")
	case errors.Is(err, model.ErrInvalidHex):
		return i18n.T("errors.invalid_hex")
	case errors.Is(err, prefs.ErrPaletteNotFound):
		return i18n.T("errors.palette_not_found")
	case errors.Is(err, prefs.ErrColorNotFound):
		return i18n.T("errors.color_not_found")
	case errors.Is(err, prefs.ErrNotFound):
		return i18n.T("errors.file_not_found")
	case errors.Is(err, prefs.ErrMalformed):
		return i18n.T("errors.malformed")
	default:
		return err.Error()
	}
}
