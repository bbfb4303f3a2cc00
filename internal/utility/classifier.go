// Package utility decides whether a prompt asks for a clock or weather
// widget and, when it does, derives the full widget configuration from
// the extracted cities and keyword hints.
package utility

import (
	"strings"

	"github.com/google/uuid"

	"github.com/gridwise-ai/gridwise/internal/extract"
	"github.com/gridwise-ai/gridwise/internal/lexicon"
	"github.com/gridwise-ai/gridwise/pkg/widget"
)

// Clarification questions surfaced to the user, verbatim.
const (
	QuestionClockOrWeather = "Do you want a clock or weather widget?"
	QuestionWhichCity      = "Which city or country?"
)

// Outcome is the three-way classification result. OutcomeNone is the
// soft miss: not an error, the caller falls through to the data parser.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeClock
	OutcomeWeather
	OutcomeClarify
)

// Result of classifying one normalized prompt.
type Result struct {
	Outcome       Outcome
	Definition    *widget.UtilityDefinition
	Clarification string
}

// defaultClockCities is the fallback trio when a clock prompt names no
// city. Weather deliberately has no such fallback: a clock needs some
// timezone, weather without a location is meaningless.
var defaultClockCities = []string{"london", "new york", "sydney"}

// Classify runs the utility intent decision over normalized text.
func Classify(text string) Result {
	cities := extract.Cities(text)

	clockHint := containsAny(text, lexicon.ClockHints)
	weatherHint := containsAny(text, lexicon.WeatherHints)

	strongClock := clockHint && (len(cities) > 0 || containsAny(text, lexicon.ClockAnchors))
	strongWeather := weatherHint && (len(cities) > 0 || containsAny(text, lexicon.WeatherAnchors))

	switch {
	case strongClock && strongWeather:
		return Result{Outcome: OutcomeClarify, Clarification: QuestionClockOrWeather}
	case strongClock:
		return Result{Outcome: OutcomeClock, Definition: buildClock(cities, text)}
	case strongWeather:
		if len(cities) == 0 {
			return Result{Outcome: OutcomeClarify, Clarification: QuestionWhichCity}
		}
		return Result{Outcome: OutcomeWeather, Definition: buildWeather(cities, text)}
	}
	return Result{Outcome: OutcomeNone}
}

// Resolve builds a specific utility family from text, skipping the
// clock-vs-weather disambiguation. Used when the user has already
// answered that question. Weather still clarifies without a place.
func Resolve(text string, t widget.UtilityType) Result {
	cities := extract.Cities(text)

	if t == widget.UtilityWorldClock {
		return Result{Outcome: OutcomeClock, Definition: buildClock(cities, text)}
	}
	if len(cities) == 0 {
		return Result{Outcome: OutcomeClarify, Clarification: QuestionWhichCity}
	}
	return Result{Outcome: OutcomeWeather, Definition: buildWeather(cities, text)}
}

func buildClock(cities []lexicon.CityRecord, text string) *widget.UtilityDefinition {
	if len(cities) == 0 {
		for _, key := range defaultClockCities {
			rec, _ := lexicon.LookupCity(key)
			cities = append(cities, rec)
		}
	}

	entries := make([]widget.ClockCity, len(cities))
	for i, c := range cities {
		entries[i] = widget.ClockCity{Label: c.Name, Timezone: c.Timezone}
	}

	twelveHour := hasToken(text, lexicon.TwelveHourTokens)
	seconds := strings.Contains(text, lexicon.SecondsHint)

	format := widget.Clock24h
	switch {
	case twelveHour && seconds:
		format = widget.Clock12hSeconds
	case twelveHour:
		format = widget.Clock12h
	case seconds:
		format = widget.Clock24hSeconds
	}

	tick := 30000
	if seconds {
		tick = 1000
	}

	size := clockSize(len(entries))
	extras := size == widget.SizeLG || size == widget.SizeXL

	return &widget.UtilityDefinition{
		ID:          uuid.NewString(),
		Kind:        "utility",
		UtilityType: widget.UtilityWorldClock,
		Name:        "World Clock",
		Size:        size,
		Clock: &widget.WorldClockConfig{
			Cities:         entries,
			Format:         format,
			ShowDate:       extras,
			ShowBadges:     extras,
			TickIntervalMs: tick,
		},
	}
}

func buildWeather(cities []lexicon.CityRecord, text string) *widget.UtilityDefinition {
	places := make([]widget.Place, len(cities))
	for i, c := range cities {
		places[i] = widget.Place{Label: c.Name, Lat: c.Lat, Lon: c.Lon}
	}

	mode := widget.WeatherCurrent
	switch {
	case containsAny(text, lexicon.Daily3Hints):
		mode = widget.WeatherDaily3
	case containsAny(text, lexicon.Hourly24Hints):
		mode = widget.WeatherHourly24
	}

	units := "metric"
	if containsAny(text, lexicon.ImperialHints) {
		units = "imperial"
	}

	name := "Weather"
	if len(places) == 1 {
		name = places[0].Label + " Weather"
	}

	return &widget.UtilityDefinition{
		ID:          uuid.NewString(),
		Kind:        "utility",
		UtilityType: widget.UtilityWeather,
		Name:        name,
		Size:        weatherSize(len(places), mode),
		Weather: &widget.WeatherConfig{
			Places:             places,
			Mode:               mode,
			Units:              units,
			ShowIcon:           true,
			RefreshIntervalSec: 900,
		},
	}
}

func clockSize(n int) widget.Size {
	switch {
	case n <= 3:
		return widget.SizeMD
	case n <= 8:
		return widget.SizeLG
	default:
		return widget.SizeXL
	}
}

func weatherSize(n int, mode string) widget.Size {
	forecast := mode != widget.WeatherCurrent
	switch {
	case n == 1 && !forecast:
		return widget.SizeSM
	case n == 1:
		return widget.SizeMD
	case n <= 3 && !forecast:
		return widget.SizeMD
	case n <= 3:
		return widget.SizeLG
	default:
		return widget.SizeXL
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func hasToken(text string, wanted []string) bool {
	for _, tok := range strings.Fields(text) {
		for _, w := range wanted {
			if tok == w {
				return true
			}
		}
	}
	return false
}
