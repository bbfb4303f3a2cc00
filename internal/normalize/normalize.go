// Package normalize canonicalizes raw prompt text before any matching
// runs: lowercasing, punctuation stripping, shorthand expansion and
// filler-word removal. Normalize is pure and total; it never fails.
package normalize

import (
	"regexp"
	"strings"
)

var punctuation = regexp.MustCompile(`[.,!?]`)

// shorthandRule expands a common abbreviation. Rules apply in order as
// whole-word substitutions; "usa" sits before "us" so the bare "us"
// rule never sees the longer form, and the word boundary keeps "us"
// from corrupting words like "status".
type shorthandRule struct {
	pattern *regexp.Regexp
	repl    string
}

var shorthandRules = []shorthandRule{
	{regexp.MustCompile(`\b(plz|pls)\b`), "please"},
	{regexp.MustCompile(`\btmrw\b`), "tomorrow"},
	{regexp.MustCompile(`\buk\b`), "united kingdom"},
	{regexp.MustCompile(`\bnyc\b`), "new york"},
	{regexp.MustCompile(`\busa\b`), "united states"},
	{regexp.MustCompile(`\bus\b`), "united states"},
}

// fillerWords are dropped by exact token match, never by substring.
var fillerWords = map[string]bool{
	"please": true,
	"show":   true,
	"me":     true,
	"can":    true,
	"you":    true,
	"add":    true,
	"create": true,
	"make":   true,
	"get":    true,
	"want":   true,
	"need":   true,
}

// Normalize lowercases, strips punctuation, expands shorthand and
// removes filler tokens. Idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	text := strings.ToLower(raw)
	text = punctuation.ReplaceAllString(text, " ")

	for _, rule := range shorthandRules {
		text = rule.pattern.ReplaceAllString(text, rule.repl)
	}

	tokens := strings.Fields(text)
	kept := tokens[:0]
	for _, tok := range tokens {
		if !fillerWords[tok] {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}
