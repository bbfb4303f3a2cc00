package lexicon

import "github.com/gridwise-ai/gridwise/pkg/widget"

// Keyword-to-concept tables. Each table is an ordered slice scanned
// front to back; for the tables where the first hit wins, order is part
// of the contract and covered by tests.

// ============================================================
// Data sources
// ============================================================

// SourceRule maps a prompt keyword to a data source.
type SourceRule struct {
	Keyword string
	Source  widget.Source
}

// SourceRules is scanned in order; the first keyword contained in the
// prompt decides the source. "itt" must come before the generic
// "region"/"country" entries so "ITTs by region" lands on itts.
var SourceRules = []SourceRule{
	{"project", widget.SourceProjects},
	{"itt", widget.SourceITTs},
	{"tender", widget.SourceITTs},
	{"supplier", widget.SourceSuppliers},
	{"vendor", widget.SourceSuppliers},
	{"cost", widget.SourceCosts},
	{"budget", widget.SourceCosts},
	{"spend", widget.SourceCosts},
	{"issue", widget.SourceIssues},
	{"problem", widget.SourceIssues},
	{"defect", widget.SourceIssues},
	{"region", widget.SourceRegionMetrics},
	{"country", widget.SourceRegionMetrics},
}

// SourceFields is the per-source field whitelist used by the validator
// and by groupBy extraction.
var SourceFields = map[widget.Source][]string{
	widget.SourceProjects:      {"name", "status", "region", "country", "budget", "spent", "progress", "deadline", "week", "month", "quarter", "year", "priority", "type", "manager"},
	widget.SourceITTs:          {"name", "status", "region", "country", "supplier", "trade", "value", "deadline", "week", "month", "priority"},
	widget.SourceSuppliers:     {"name", "supplier", "region", "country", "trade", "score", "onTimeDelivery", "status", "spent", "week", "month"},
	widget.SourceCosts:         {"category", "region", "country", "supplier", "type", "budget", "spent", "week", "month", "quarter", "year"},
	widget.SourceIssues:        {"name", "status", "priority", "region", "country", "type", "project", "deadline", "week", "month"},
	widget.SourceRegionMetrics: {"region", "country", "week", "month", "score", "spent", "budget", "progress"},
}

// DateField names the field a relative-date filter applies to, per
// source. Sources without a deadline column fall back to month so the
// emitted filter always passes validation.
var DateField = map[widget.Source]string{
	widget.SourceProjects:      "deadline",
	widget.SourceITTs:          "deadline",
	widget.SourceIssues:        "deadline",
	widget.SourceSuppliers:     "month",
	widget.SourceCosts:         "month",
	widget.SourceRegionMetrics: "month",
}

// ============================================================
// Dimensions (groupBy)
// ============================================================

// DimensionRule maps a keyword to the field it groups by. A hit is only
// accepted when the field is valid for the detected source.
type DimensionRule struct {
	Keyword string
	Field   string
}

var DimensionRules = []DimensionRule{
	{"region", "region"},
	{"country", "country"},
	{"trade", "trade"},
	{"category", "category"},
	{"supplier", "supplier"},
	{"month", "month"},
	{"week", "week"},
	{"quarter", "quarter"},
	{"year", "year"},
	{"status", "status"},
	{"type", "type"},
	{"priority", "priority"},
}

// TemporalFields are the groupBy fields that imply a line chart.
var TemporalFields = []string{"month", "quarter", "year", "week"}

// ============================================================
// Metrics
// ============================================================

// AggregationRule maps a keyword to an aggregation verb.
type AggregationRule struct {
	Keyword string
	Agg     widget.Aggregation
}

var AggregationRules = []AggregationRule{
	{"count", widget.AggCount},
	{"number", widget.AggCount},
	{"total", widget.AggCount},
	{"sum", widget.AggSum},
	{"amount", widget.AggSum},
	{"value", widget.AggSum},
	{"average", widget.AggAvg},
	{"avg", widget.AggAvg},
	{"mean", widget.AggAvg},
	{"minimum", widget.AggMin},
	{"min", widget.AggMin},
	{"maximum", widget.AggMax},
	{"max", widget.AggMax},
	{"percentage", widget.AggPctChange},
	{"percent", widget.AggPctChange},
	{"change", widget.AggPctChange},
	{"growth", widget.AggPctChange},
}

// MetricFieldRule infers the field a metric targets from nearby words.
type MetricFieldRule struct {
	Keyword string
	Field   string
	Unit    string
}

var MetricFieldRules = []MetricFieldRule{
	{"budget", "spent", "£"},
	{"spend", "spent", "£"},
	{"progress", "progress", "%"},
	{"completion", "progress", "%"},
	{"score", "score", ""},
	{"rating", "score", ""},
	{"time", "onTimeDelivery", "%"},
	{"delivery", "onTimeDelivery", "%"},
}

// ============================================================
// Visualization and size
// ============================================================

// VizRule maps a keyword to a chart type.
type VizRule struct {
	Keyword string
	Viz     widget.Viz
}

var VizRules = []VizRule{
	{"bar", widget.VizBar},
	{"column", widget.VizBar},
	{"line", widget.VizLine},
	{"trend", widget.VizLine},
	{"area", widget.VizArea},
	{"pie", widget.VizPie},
	{"donut", widget.VizPie},
	{"table", widget.VizTable},
	{"list", widget.VizTable},
	{"kpi", widget.VizKPI},
	{"metric", widget.VizKPI},
	{"number", widget.VizKPI},
	{"progress", widget.VizProgress},
	{"gauge", widget.VizProgress},
	{"card", widget.VizCard},
}

// SizeRule maps a keyword to a widget size. "extra large" sits before
// "large" so the longer phrase wins.
type SizeRule struct {
	Keyword string
	Size    widget.Size
}

var SizeRules = []SizeRule{
	{"extra large", widget.SizeXL},
	{"wide", widget.SizeXL},
	{"full", widget.SizeXL},
	{"small", widget.SizeSM},
	{"compact", widget.SizeSM},
	{"medium", widget.SizeMD},
	{"standard", widget.SizeMD},
	{"large", widget.SizeLG},
	{"big", widget.SizeLG},
}

// ============================================================
// Relative time windows
// ============================================================

// WindowKind selects the calendar arithmetic for a relative-date phrase.
type WindowKind int

const (
	WindowToday WindowKind = iota
	WindowYesterday
	WindowTomorrow
	WindowThisWeek
	WindowLastWeek
	WindowThisMonth
	WindowLastMonth
	WindowThisQuarter
	WindowThisYear
	WindowNextNDays
)

// TimeWindowRule maps a phrase to its window. Days is only used by
// WindowNextNDays.
type TimeWindowRule struct {
	Phrase string
	Kind   WindowKind
	Days   int
}

var TimeWindowRules = []TimeWindowRule{
	{Phrase: "today", Kind: WindowToday},
	{Phrase: "yesterday", Kind: WindowYesterday},
	{Phrase: "tomorrow", Kind: WindowTomorrow},
	{Phrase: "this week", Kind: WindowThisWeek},
	{Phrase: "last week", Kind: WindowLastWeek},
	{Phrase: "this month", Kind: WindowThisMonth},
	{Phrase: "last month", Kind: WindowLastMonth},
	{Phrase: "this quarter", Kind: WindowThisQuarter},
	{Phrase: "this year", Kind: WindowThisYear},
	{Phrase: "next 7 days", Kind: WindowNextNDays, Days: 7},
	{Phrase: "next 14 days", Kind: WindowNextNDays, Days: 14},
	{Phrase: "next 30 days", Kind: WindowNextNDays, Days: 30},
	{Phrase: "next 90 days", Kind: WindowNextNDays, Days: 90},
}

// ============================================================
// Additional filters and options
// ============================================================

// FilterRule appends a fixed filter when its keyword is present.
// Matched rules stack; they are not mutually exclusive. Country keys are
// the post-normalization forms of "uk"/"usa".
type FilterRule struct {
	Keyword string
	Field   string
	Value   string
}

var FilterRules = []FilterRule{
	{"active", "status", "Active"},
	{"pending", "status", "Pending"},
	{"high priority", "priority", "High"},
	{"united kingdom", "country", "UK"},
	{"united states", "country", "USA"},
}

// ============================================================
// Utility widget hints
// ============================================================

// Clock and weather hint words, matched by substring containment over
// the whole normalized prompt.
var (
	ClockHints   = []string{"world clock", "local time", "city time", "time", "clock", "timezone", "zone"}
	WeatherHints = []string{"weather", "temperature", "temp", "forecast", "rain", "sunny", "wind", "humidity"}

	// Anchor words upgrade a hint to a strong signal even without an
	// extracted city.
	ClockAnchors   = []string{"clock", "timezone"}
	WeatherAnchors = []string{"weather", "temperature", "forecast"}
)

// TwelveHourTokens flag a 12-hour clock format. These are matched as
// whole tokens: "amsterdam" must not trip the "am" hint.
var TwelveHourTokens = []string{"12", "12h", "am", "pm"}

// SecondsHint asks for seconds precision on a clock.
const SecondsHint = "second"

// Weather period hints.
var (
	Daily3Hints   = []string{"3 day", "3-day", "next 3", "weekend"}
	Hourly24Hints = []string{"24h", "24 hour", "hourly"}
)

// ImperialHints switch weather units to imperial. "united states" is the
// expanded form of "us"/"usa".
var ImperialHints = []string{"fahrenheit", "united states"}
