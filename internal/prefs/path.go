// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

package prefs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/toeirei/tabpal/internal/logging"
)

// DefaultFileName is the file name Tableau uses for its preferences.
const DefaultFileName = "Preferences.tps"

// EnvVar points TabPal at a preferences file, overriding configuration and
// the default repository locations.
const EnvVar = "TAB_PAL_FILE"

// ResolvePath returns the preferences file TabPal should edit, trying the
// TAB_PAL_FILE environment variable, then the configured path, then the
// usual Tableau repository locations. It returns "" when nothing usable was
// found and the UI should ask the user.
//
// A set but unusable TAB_PAL_FILE does not fall through to the defaults:
// when the user points at a specific file, editing some other file instead
// would be worse than asking.
func ResolvePath(configured string) string {
	if env := os.Getenv(EnvVar); env != "" {
		if IsPreferencesFile(env) {
			return env
		}
		logging.Warnf("%s is set to %q but that is not a usable %s", EnvVar, env, DefaultFileName)
		return ""
	}
	if configured != "" && IsPreferencesFile(configured) {
		return configured
	}
	for _, candidate := range DefaultPaths() {
		if IsPreferencesFile(candidate) {
			return candidate
		}
	}
	return ""
}

// IsPreferencesFile reports whether path names an existing file called
// Preferences.tps. The name check keeps a stray path from pointing TabPal
// at an arbitrary XML file.
func IsPreferencesFile(path string) bool {
	if filepath.Base(path) != DefaultFileName {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DefaultPaths returns the places Tableau keeps its preferences file. The
// paths are returned whether or not they exist, so they can be shown to
// the user. Windows and macOS both use the Documents folder; on other
// systems the same layout covers synced repositories.
func DefaultPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(home, "Documents", "My Tableau Repository", DefaultFileName)}
}

// DescribePath labels a candidate path for display: where it came from and
// whether it is usable right now.
func DescribePath(path string) string {
	switch {
	case path == "":
		return "(not set)"
	case IsPreferencesFile(path):
		return path
	case !strings.HasSuffix(path, DefaultFileName):
		return path + " (not a " + DefaultFileName + ")"
	default:
		return path + " (missing)"
	}
}
