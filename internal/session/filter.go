// Copyright (c) 2026 ToeiRei
// TabPal - Tableau color palette editor
// This source code is licensed under the MIT license found in the LICENSE file.

package session

import "strings"

// FilterEntriesByTokens returns the subset of entries that match all tokens.
// Matching is case-insensitive and tests the palette name and kind label for
// substring containment. If tokens is nil or empty, the original slice is
// returned.
func FilterEntriesByTokens(entries []PaletteEntry, tokens []string) []PaletteEntry {
	if len(tokens) == 0 {
		return entries
	}
	out := make([]PaletteEntry, 0, len(entries))
	for _, entry := range entries {
		name := strings.ToLower(entry.Name)
		kind := strings.ToLower(entry.KindLabel)

		matchedAll := true
		for _, tok := range tokens {
			tok = strings.ToLower(strings.TrimSpace(tok))
			if tok == "" {
				continue
			}
			if !strings.Contains(name, tok) && !strings.Contains(kind, tok) {
				matchedAll = false
				break
			}
		}
		if matchedAll {
			out = append(out, entry)
		}
	}
	return out
}
