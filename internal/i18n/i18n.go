// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides internationalization support for TabPal. It uses
// the go-i18n library to load translation files embedded in the binary,
// allowing the user interface to be displayed in multiple languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

// bundle stores all the loaded translation messages from the locale files.
var bundle *i18n.Bundle

// localizer translates messages into the active language.
var localizer *i18n.Localizer

// currentLang is the language code the localizer was built for.
var currentLang string

// Init loads every embedded locale file and activates the given language.
// Message lookups fall back to English when the active language has no
// translation for an ID.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		bundle.ParseMessageFileBytes(data, f.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang)
	currentLang = lang
}

// T translates a message by its ID. Extra arguments are applied with
// fmt.Sprintf, so messages may carry printf verbs. An unknown ID is
// returned as-is so a missing translation never hides information.
func T(messageID string, args ...interface{}) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language code.
func GetLang() string {
	if currentLang == "" {
		return "en"
	}
	return currentLang
}

// GetAvailableLocales returns the embedded locales as a map from language
// code to the language's self-description (its language_name message).
func GetAvailableLocales() map[string]string {
	if bundle == nil {
		Init("en")
	}
	locales := map[string]string{}
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
			continue
		}
		code := strings.TrimSuffix(f.Name(), ".yaml")
		loc := i18n.NewLocalizer(bundle, code)
		name, err := loc.Localize(&i18n.LocalizeConfig{MessageID: "language_name"})
		if err != nil || name == "" {
			name = code
		}
		locales[code] = name
	}
	return locales
}
