// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import "testing"

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	if name, ok := av["en"]; !ok || name != "English" {
		t.Fatalf("unexpected display name for en: %v (present: %v)", av["en"], ok)
	}
	if name, ok := av["de"]; !ok || name != "Deutsch" {
		t.Fatalf("unexpected display name for de: %v (present: %v)", av["de"], ok)
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("editor.palettes_title"); got != "Palettes" {
		t.Fatalf("expected 'Palettes', got %q", got)
	}

	// fmt-style formatting via trailing args
	got := T("editor.status_color_added", "#AABBCC", "Ocean")
	if got != "Added #AABBCC to Ocean." {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	// switch language to German
	SetLang("de")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("editor.palettes_title"); got != "Paletten" {
		t.Fatalf("expected German 'Paletten', got %q", got)
	}
	SetLang("en")
}

func TestT_UnknownIDFallsBackToID(t *testing.T) {
	Init("en")
	if got := T("no.such.message"); got != "no.such.message" {
		t.Fatalf("unknown ID should come back verbatim, got %q", got)
	}
}
