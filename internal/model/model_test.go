// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "testing"

func TestKindLabelRoundTrip(t *testing.T) {
	for _, kind := range AllKinds() {
		label := kind.Label()
		if label == string(kind) {
			t.Fatalf("kind %q has no friendly label", kind)
		}
		got, ok := KindFromLabel(label)
		if !ok {
			t.Fatalf("KindFromLabel(%q) did not resolve", label)
		}
		if got != kind {
			t.Errorf("KindFromLabel(%q) = %q, want %q", label, got, kind)
		}
	}
}

func TestKindFromLabelAcceptsRawCodes(t *testing.T) {
	got, ok := KindFromLabel("ordered-diverging")
	if !ok || got != KindDiverging {
		t.Fatalf("KindFromLabel(raw code) = %q, %v; want %q, true", got, ok, KindDiverging)
	}
	got, ok = KindFromLabel("CATEGORICAL")
	if !ok || got != KindCategorical {
		t.Fatalf("KindFromLabel is not case-insensitive: got %q, %v", got, ok)
	}
}

func TestKindFromLabelRejectsUnknown(t *testing.T) {
	if _, ok := KindFromLabel("rainbow"); ok {
		t.Fatal("KindFromLabel accepted an unknown label")
	}
	if _, ok := KindFromLabel(""); ok {
		t.Fatal("KindFromLabel accepted the empty string")
	}
}

func TestUnknownKindLabelShownVerbatim(t *testing.T) {
	if got := PaletteKind("ordered-mystery").Label(); got != "ordered-mystery" {
		t.Fatalf("unknown kind label = %q, want the raw code", got)
	}
}

func TestValidHex(t *testing.T) {
	valid := []string{"#AABBCC", "aabbcc", "#aabbcc", "112233", "#1A2b3C"}
	for _, s := range valid {
		if !ValidHex(s) {
			t.Errorf("ValidHex(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "#", "#AAB", "AABBC", "#AABBCCDD", "#GGHHII", "blue", "##AABBCC", "#AABBC ", " AABBCC"}
	for _, s := range invalid {
		if ValidHex(s) {
			t.Errorf("ValidHex(%q) = true, want false", s)
		}
	}
}

func TestCanonicalHex(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"#AABBCC", "#AABBCC"},
		{"aabbcc", "#AABBCC"},
		{"#aAbBcC", "#AABBCC"},
		{"112233", "#112233"},
	}
	for _, tc := range cases {
		got, err := CanonicalHex(tc.in)
		if err != nil {
			t.Errorf("CanonicalHex(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("CanonicalHex(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalHexRejectsInvalid(t *testing.T) {
	for _, s := range []string{"", "#AAB", "not-a-color", "#AABBCCDD"} {
		if _, err := CanonicalHex(s); err == nil {
			t.Errorf("CanonicalHex(%q) succeeded, want error", s)
		}
	}
}

func TestSameColor(t *testing.T) {
	if !SameColor("#AABBCC", "aabbcc") {
		t.Error("SameColor should ignore case and the leading '#'")
	}
	if SameColor("#AABBCC", "#AABBCD") {
		t.Error("SameColor matched two different colors")
	}
	// Non-hex values only match themselves.
	if !SameColor("junk", "junk") {
		t.Error("SameColor should match identical non-hex values")
	}
	if SameColor("junk", "#AABBCC") {
		t.Error("SameColor matched a non-hex value against a hex color")
	}
}

func TestPaletteString(t *testing.T) {
	p := Palette{Name: "Brand", Kind: KindSequential}
	if got := p.String(); got != "Brand (Sequential)" {
		t.Fatalf("Palette.String() = %q", got)
	}
}
