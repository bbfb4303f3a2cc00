package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridwise-ai/gridwise/internal/normalize"
	"github.com/gridwise-ai/gridwise/pkg/widget"
)

func classify(t *testing.T, prompt string) Result {
	t.Helper()
	return Classify(normalize.Normalize(prompt))
}

func TestClassifySoftMiss(t *testing.T) {
	prompts := []string{
		"",
		"show itts due next week by region",
		"projects grouped by status as a pie chart",
		"total spend per month",
	}
	for _, p := range prompts {
		res := classify(t, p)
		assert.Equal(t, OutcomeNone, res.Outcome, "prompt %q", p)
		assert.Nil(t, res.Definition)
		assert.Empty(t, res.Clarification)
	}
}

func TestClassifyClockBasics(t *testing.T) {
	res := classify(t, "time london sydney sweden")
	require.Equal(t, OutcomeClock, res.Outcome)

	def := res.Definition
	require.NotNil(t, def)
	assert.Equal(t, "utility", def.Kind)
	assert.Equal(t, widget.UtilityWorldClock, def.UtilityType)
	assert.NotEmpty(t, def.ID)
	require.NotNil(t, def.Clock)

	labels := clockLabels(def)
	assert.Equal(t, []string{"London", "Sydney", "Stockholm"}, labels)
	assert.Equal(t, widget.Clock24h, def.Clock.Format)
	assert.Equal(t, widget.SizeMD, def.Size)
	assert.False(t, def.Clock.ShowDate)
	assert.False(t, def.Clock.ShowBadges)
}

func TestClassifyClockDefaultTrio(t *testing.T) {
	res := classify(t, "add a world clock")
	require.Equal(t, OutcomeClock, res.Outcome)
	require.NotNil(t, res.Definition.Clock)

	assert.Equal(t, []string{"London", "New York", "Sydney"}, clockLabels(res.Definition))
	assert.Equal(t, widget.SizeMD, res.Definition.Size)
}

func TestClassifyClockSeconds(t *testing.T) {
	res := classify(t, "add a clock seconds new york tokyo")
	require.Equal(t, OutcomeClock, res.Outcome)

	cfg := res.Definition.Clock
	require.NotNil(t, cfg)
	assert.Equal(t, widget.Clock24hSeconds, cfg.Format)
	assert.Equal(t, 1000, cfg.TickIntervalMs)
	assert.Equal(t, widget.SizeMD, res.Definition.Size)
}

func TestClassifyClockTwelveHour(t *testing.T) {
	res := classify(t, "clock for new york am pm")
	require.Equal(t, OutcomeClock, res.Outcome)
	assert.Equal(t, widget.Clock12h, res.Definition.Clock.Format)
}

func TestClassifyClockAmsterdamIsNotTwelveHour(t *testing.T) {
	// "amsterdam" contains "am" as a substring; only whole tokens count.
	res := classify(t, "clock amsterdam")
	require.Equal(t, OutcomeClock, res.Outcome)
	assert.Equal(t, widget.Clock24h, res.Definition.Clock.Format)
}

func TestClassifyClockSizeScalesWithCities(t *testing.T) {
	res := classify(t, "time london paris berlin madrid rome")
	require.Equal(t, OutcomeClock, res.Outcome)
	assert.Equal(t, widget.SizeLG, res.Definition.Size)
	assert.True(t, res.Definition.Clock.ShowDate)
	assert.True(t, res.Definition.Clock.ShowBadges)
}

func TestClassifyWeather(t *testing.T) {
	res := classify(t, "weather in dubai and london next 3 days")
	require.Equal(t, OutcomeWeather, res.Outcome)

	def := res.Definition
	require.NotNil(t, def)
	assert.Equal(t, widget.UtilityWeather, def.UtilityType)
	require.NotNil(t, def.Weather)

	require.Len(t, def.Weather.Places, 2)
	assert.Equal(t, "Dubai", def.Weather.Places[0].Label)
	assert.Equal(t, "London", def.Weather.Places[1].Label)
	assert.Equal(t, widget.WeatherDaily3, def.Weather.Mode)
	assert.Equal(t, "metric", def.Weather.Units)
	assert.True(t, def.Weather.ShowIcon)
}

func TestClassifyWeatherModesAndUnits(t *testing.T) {
	tests := []struct {
		prompt string
		mode   string
		units  string
		size   widget.Size
	}{
		{"weather in london", widget.WeatherCurrent, "metric", widget.SizeSM},
		{"hourly weather in london", widget.WeatherHourly24, "metric", widget.SizeMD},
		{"weather forecast for the weekend in paris", widget.WeatherDaily3, "metric", widget.SizeMD},
		{"weather in the usa fahrenheit", widget.WeatherCurrent, "imperial", widget.SizeSM},
		{"weather london paris tokyo berlin", widget.WeatherCurrent, "metric", widget.SizeXL},
	}
	for _, tt := range tests {
		res := classify(t, tt.prompt)
		require.Equal(t, OutcomeWeather, res.Outcome, "prompt %q", tt.prompt)
		assert.Equal(t, tt.mode, res.Definition.Weather.Mode, "prompt %q", tt.prompt)
		assert.Equal(t, tt.units, res.Definition.Weather.Units, "prompt %q", tt.prompt)
		assert.Equal(t, tt.size, res.Definition.Size, "prompt %q", tt.prompt)
	}
}

func TestClassifyWeatherWithoutPlaceAsks(t *testing.T) {
	res := classify(t, "what is the weather like")
	assert.Equal(t, OutcomeClarify, res.Outcome)
	assert.Equal(t, QuestionWhichCity, res.Clarification)
}

func TestClassifyAmbiguousAsks(t *testing.T) {
	res := classify(t, "time and weather in london")
	assert.Equal(t, OutcomeClarify, res.Outcome)
	assert.Equal(t, QuestionClockOrWeather, res.Clarification)
}

func TestResolveForcesFamily(t *testing.T) {
	text := normalize.Normalize("time and weather in london")

	clock := Resolve(text, widget.UtilityWorldClock)
	require.Equal(t, OutcomeClock, clock.Outcome)
	assert.Equal(t, []string{"London"}, clockLabels(clock.Definition))

	weather := Resolve(text, widget.UtilityWeather)
	require.Equal(t, OutcomeWeather, weather.Outcome)
	require.Len(t, weather.Definition.Weather.Places, 1)

	// Forcing weather with no place still needs one.
	noPlace := Resolve(normalize.Normalize("weather"), widget.UtilityWeather)
	assert.Equal(t, OutcomeClarify, noPlace.Outcome)
	assert.Equal(t, QuestionWhichCity, noPlace.Clarification)
}

func clockLabels(def *widget.UtilityDefinition) []string {
	labels := make([]string, len(def.Clock.Cities))
	for i, c := range def.Clock.Cities {
		labels[i] = c.Label
	}
	return labels
}
