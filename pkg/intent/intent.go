// Package intent is the public entry point for prompt parsing.
//
// Parsing flow:
// 1. Utility classifier (clock / weather), tried first by the caller
// 2. Data-widget parser, on a soft miss
//
// A result with Success false and no Clarification is the soft miss
// that tells the caller to fall through to ParseWidgetIntent. A
// non-empty Clarification must be surfaced to the user and answered
// via HandleClarification. Both parsers recover internal panics at this
// boundary; they never propagate.
package intent

import (
	"fmt"
	"strings"
	"time"

	"github.com/gridwise-ai/gridwise/internal/datawidget"
	"github.com/gridwise-ai/gridwise/internal/normalize"
	"github.com/gridwise-ai/gridwise/internal/utility"
	"github.com/gridwise-ai/gridwise/internal/validate"
	"github.com/gridwise-ai/gridwise/pkg/widget"
)

// maxPromptLen caps input defensively; the scan is linear-to-quadratic
// in token count, so unbounded prompts are truncated rather than parsed
// in full.
const maxPromptLen = 2048

// Clarification questions, re-exported for callers that match on them.
const (
	QuestionClockOrWeather = utility.QuestionClockOrWeather
	QuestionWhichCity      = utility.QuestionWhichCity
)

// UtilityResult is the outcome of the utility parsing stage.
type UtilityResult struct {
	Success       bool                      `json:"success"`
	Definition    *widget.UtilityDefinition `json:"definition,omitempty"`
	Clarification string                    `json:"clarification,omitempty"`
}

// WidgetResult is the outcome of the data-widget parsing stage.
type WidgetResult struct {
	Success       bool               `json:"success"`
	Definition    *widget.Definition `json:"definition,omitempty"`
	Error         string             `json:"error,omitempty"`
	Clarification string             `json:"clarification,omitempty"`
}

// ParseUtilityIntent classifies a prompt as a clock or weather request.
// Never panics; a malformed prompt degrades to a soft miss.
func ParseUtilityIntent(prompt string) (res UtilityResult) {
	defer func() {
		if r := recover(); r != nil {
			res = UtilityResult{}
		}
	}()

	text := normalize.Normalize(truncate(prompt))
	switch c := utility.Classify(text); c.Outcome {
	case utility.OutcomeClock, utility.OutcomeWeather:
		return UtilityResult{Success: true, Definition: c.Definition}
	case utility.OutcomeClarify:
		return UtilityResult{Clarification: c.Clarification}
	}
	return UtilityResult{}
}

// ParseWidgetIntent parses a prompt into a data-widget definition and
// validates it. Validation failures and internal panics both surface as
// Success false with an error message, never as a thrown error.
func ParseWidgetIntent(prompt string) (res WidgetResult) {
	defer func() {
		if r := recover(); r != nil {
			res = WidgetResult{Error: fmt.Sprintf("internal parse error: %v", r)}
		}
	}()

	text := normalize.Normalize(truncate(prompt))
	def := datawidget.Parse(text, time.Now())

	if v := validate.Definition(def); !v.Valid {
		return WidgetResult{Error: "invalid widget definition: " + strings.Join(v.Errors, "; ")}
	}
	return WidgetResult{Success: true, Definition: def}
}

// ValidateWidgetDefinition checks an already-built definition, for
// callers that construct or edit definitions directly.
func ValidateWidgetDefinition(def *widget.Definition) validate.Result {
	return validate.Definition(def)
}

// HandleClarification re-drives the utility classifier with the
// original prompt plus the user's disambiguating answer. It handles
// only the two questions the classifier can raise and returns nil when
// the combined text still does not resolve to a utility widget.
func HandleClarification(originalPrompt, question, userResponse string) *widget.UtilityDefinition {
	combined := normalize.Normalize(truncate(originalPrompt) + " " + truncate(userResponse))

	switch question {
	case QuestionClockOrWeather:
		// The answer names the family; the combined text still carries
		// both hint words, so the classifier alone would ask again.
		family, ok := familyFromAnswer(normalize.Normalize(userResponse))
		if !ok {
			return nil
		}
		if c := utility.Resolve(combined, family); c.Definition != nil {
			return c.Definition
		}
	case QuestionWhichCity:
		if c := utility.Classify(combined); c.Definition != nil {
			return c.Definition
		}
	}
	return nil
}

func familyFromAnswer(answer string) (widget.UtilityType, bool) {
	switch {
	case strings.Contains(answer, "weather"), strings.Contains(answer, "temperature"), strings.Contains(answer, "forecast"):
		return widget.UtilityWeather, true
	case strings.Contains(answer, "clock"), strings.Contains(answer, "time"):
		return widget.UtilityWorldClock, true
	}
	return "", false
}

func truncate(s string) string {
	if len(s) <= maxPromptLen {
		return s
	}
	return strings.ToValidUTF8(s[:maxPromptLen], "")
}
