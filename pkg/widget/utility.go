package widget

// UtilityType distinguishes the two non-data widget families.
type UtilityType string

const (
	UtilityWorldClock UtilityType = "world-clock"
	UtilityWeather    UtilityType = "weather"
)

// Clock display formats. The seconds variants are chosen when the prompt
// asks for seconds precision.
const (
	Clock24h        = "HH:mm"
	Clock24hSeconds = "HH:mm:ss"
	Clock12h        = "hh:mm A"
	Clock12hSeconds = "hh:mm:ss A"
)

// Weather display modes.
const (
	WeatherCurrent  = "current"
	WeatherDaily3   = "daily3"
	WeatherHourly24 = "hourly24"
)

// ClockCity is one timezone entry in a world-clock widget.
type ClockCity struct {
	Label    string `json:"label"`
	Timezone string `json:"timezone"` // IANA name, e.g. "Europe/London"
}

// WorldClockConfig configures a world-clock widget.
type WorldClockConfig struct {
	Cities         []ClockCity `json:"cities"`
	Format         string      `json:"format"`
	ShowDate       bool        `json:"showDate"`
	ShowBadges     bool        `json:"showBadges"`
	TickIntervalMs int         `json:"tickIntervalMs"`
}

// Place is one location entry in a weather widget.
type Place struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// WeatherConfig configures a weather widget.
type WeatherConfig struct {
	Places             []Place `json:"places"`
	Mode               string  `json:"mode"`  // WeatherCurrent, WeatherDaily3 or WeatherHourly24
	Units              string  `json:"units"` // "metric" or "imperial"
	ShowIcon           bool    `json:"showIcon"`
	RefreshIntervalSec int     `json:"refreshIntervalSec"`
}

// UtilityDefinition is a fully specified clock or weather widget.
// Exactly one of Clock/Weather is set, matching UtilityType.
type UtilityDefinition struct {
	ID          string            `json:"id"`
	Kind        string            `json:"kind"` // always "utility"
	UtilityType UtilityType       `json:"utilityType"`
	Name        string            `json:"name"`
	Size        Size              `json:"size"`
	Clock       *WorldClockConfig `json:"clock,omitempty"`
	Weather     *WeatherConfig    `json:"weather,omitempty"`
}
