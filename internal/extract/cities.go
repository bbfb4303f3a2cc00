// Package extract pulls city entities out of normalized prompt text.
package extract

import (
	"strings"

	"github.com/gridwise-ai/gridwise/internal/lexicon"
)

// minFuzzyLen guards the substring fallback: both the token and the
// candidate key must be at least this long, otherwise short words like
// "lima" start matching inside "climate".
const minFuzzyLen = 5

// Cities scans text for gazetteer entries and returns them in order of
// first occurrence, deduplicated.
//
// The scan is greedy longest-match-first: at each cursor position a
// 3-word, then 2-word, then 1-word window is tested, and the widest hit
// consumes its tokens. This keeps "new york" from being mis-split into
// an unmatched "new" plus a stray "york"-like token. Consumed tokens
// are never revisited; overlaps resolve by the greedy order, not by
// backtracking.
func Cities(text string) []lexicon.CityRecord {
	tokens := strings.Fields(text)

	var out []lexicon.CityRecord
	seen := make(map[string]bool)

	for i := 0; i < len(tokens); {
		rec, width, ok := matchAt(tokens, i)
		if !ok {
			i++
			continue
		}
		key := strings.ToLower(rec.Name)
		if !seen[key] {
			seen[key] = true
			out = append(out, rec)
		}
		i += width
	}
	return out
}

// Keys returns the lowercased gazetteer keys for Cities(text).
func Keys(text string) []string {
	recs := Cities(text)
	if len(recs) == 0 {
		return nil
	}
	keys := make([]string, len(recs))
	for i, r := range recs {
		keys[i] = strings.ToLower(r.Name)
	}
	return keys
}

// matchAt tests the 3-, 2- and 1-word windows starting at position i.
func matchAt(tokens []string, i int) (lexicon.CityRecord, int, bool) {
	for width := 3; width >= 1; width-- {
		if i+width > len(tokens) {
			continue
		}
		window := strings.Join(tokens[i:i+width], " ")

		if rec, ok := lexicon.LookupCity(window); ok {
			return rec, width, true
		}
		if rec, ok := lexicon.LookupShorthand(window); ok {
			return rec, width, true
		}
		// Fuzzy containment only applies to single tokens; on wider
		// windows it would capture an unrelated city buried in the
		// middle of the phrase.
		if width == 1 {
			if rec, ok := fuzzyLookup(window); ok {
				return rec, width, true
			}
		}
	}
	return lexicon.CityRecord{}, 0, false
}

func fuzzyLookup(token string) (lexicon.CityRecord, bool) {
	if len(token) < minFuzzyLen {
		return lexicon.CityRecord{}, false
	}
	for _, key := range lexicon.CityKeys() {
		if len(key) < minFuzzyLen {
			continue
		}
		if strings.Contains(key, token) || strings.Contains(token, key) {
			rec, _ := lexicon.LookupCity(key)
			return rec, true
		}
	}
	return lexicon.CityRecord{}, false
}
