// Package widget provides shared widget definition types used across
// Gridwise components. These types can be imported by dashboard frontends
// and extensions.
package widget

// Source identifies the data set a visualization widget draws from.
type Source string

const (
	SourceProjects      Source = "projects"
	SourceITTs          Source = "itts"
	SourceSuppliers     Source = "suppliers"
	SourceCosts         Source = "costs"
	SourceIssues        Source = "issues"
	SourceRegionMetrics Source = "regionMetrics"
)

// Viz is the chart type used to render a data widget.
type Viz string

const (
	VizBar      Viz = "bar"
	VizLine     Viz = "line"
	VizArea     Viz = "area"
	VizPie      Viz = "pie"
	VizTable    Viz = "table"
	VizKPI      Viz = "kpi"
	VizProgress Viz = "progress"
	VizCard     Viz = "card"
)

// Size is the grid footprint of a widget.
type Size string

const (
	SizeSM Size = "sm"
	SizeMD Size = "md"
	SizeLG Size = "lg"
	SizeXL Size = "xl"
)

// Aggregation is the reduce applied to a metric field.
type Aggregation string

const (
	AggCount     Aggregation = "count"
	AggSum       Aggregation = "sum"
	AggAvg       Aggregation = "avg"
	AggMin       Aggregation = "min"
	AggMax       Aggregation = "max"
	AggPctChange Aggregation = "pct_change"
)

// Filter restricts the rows a widget aggregates over.
type Filter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"` // "eq", "gte", ...
	Value    any    `json:"value"`
}

// Metric is one aggregated series shown by a data widget.
type Metric struct {
	Label       string      `json:"label"`
	Aggregation Aggregation `json:"aggregation"`
	Field       string      `json:"field,omitempty"`
	Unit        string      `json:"unit,omitempty"`
}

// Options carries presentation knobs that are not filters or metrics.
type Options struct {
	Limit    int    `json:"limit,omitempty"`
	OrderBy  string `json:"orderBy,omitempty"`
	OrderDir string `json:"orderDir,omitempty"` // "asc" or "desc"
}

// Definition is a fully specified data-visualization widget.
type Definition struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Source    Source   `json:"source"`
	Filters   []Filter `json:"filters"`
	GroupBy   []string `json:"groupBy,omitempty"`
	Metrics   []Metric `json:"metrics"`
	Viz       Viz      `json:"viz"`
	Size      Size     `json:"size"`
	Options   Options  `json:"options"`
	DateScope string   `json:"dateScope"` // "custom" when a date filter was parsed, else "global"
}
