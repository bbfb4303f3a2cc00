// Package datawidget turns a normalized prompt into a data-visualization
// widget definition. The pipeline is a fixed sequence of pure stages:
// source, date filter, groupBy, metrics, viz, size, extra filters, name.
//
// The pipeline is permissive: with no recognizable source keyword it
// defaults to projects instead of failing, so even garbage input yields
// a definition. Whether that default is desirable is an open product
// question; the behavior is preserved and pinned by tests.
package datawidget

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gridwise-ai/gridwise/internal/lexicon"
	"github.com/gridwise-ai/gridwise/pkg/widget"
)

var topNPattern = regexp.MustCompile(`\btop (\d+)\b`)

// Parse builds a widget definition from normalized text. now anchors
// relative date phrases.
func Parse(text string, now time.Time) *widget.Definition {
	source := detectSource(text)

	dateFilter, hasDate := DateFilter(text, source, now)
	groupBy := detectGroupBy(text, source)
	metrics := detectMetrics(text)
	viz := detectViz(text, groupBy, metrics)
	size := detectSize(text, viz, groupBy)

	filters := make([]widget.Filter, 0, 4)
	if hasDate {
		filters = append(filters, dateFilter)
	}
	// Keyword filters stack with the date filter and with each other.
	for _, rule := range lexicon.FilterRules {
		if strings.Contains(text, rule.Keyword) {
			filters = append(filters, widget.Filter{Field: rule.Field, Operator: "eq", Value: rule.Value})
		}
	}

	var opts widget.Options
	if m := topNPattern.FindStringSubmatch(text); m != nil {
		limit, _ := strconv.Atoi(m[1])
		opts.Limit = limit
		opts.OrderBy = "score"
		opts.OrderDir = "desc"
	}

	scope := "global"
	if hasDate {
		scope = "custom"
	}

	return &widget.Definition{
		ID:        uuid.NewString(),
		Name:      synthesizeName(source, groupBy, viz),
		Source:    source,
		Filters:   filters,
		GroupBy:   groupBy,
		Metrics:   metrics,
		Viz:       viz,
		Size:      size,
		Options:   opts,
		DateScope: scope,
	}
}

// detectSource scans the source lexicon in its declared order; the
// first keyword hit wins.
func detectSource(text string) widget.Source {
	for _, rule := range lexicon.SourceRules {
		if strings.Contains(text, rule.Keyword) {
			return rule.Source
		}
	}
	return widget.SourceProjects
}

// detectGroupBy applies the special-case overrides first; they
// short-circuit the generic dimension scan.
func detectGroupBy(text string, source widget.Source) []string {
	if strings.Contains(text, "compare") {
		if strings.Contains(text, "united kingdom") && strings.Contains(text, "united states") {
			return []string{"country"}
		}
		if strings.Contains(text, "region") {
			return []string{"region"}
		}
	}
	if strings.Contains(text, "top") && strings.Contains(text, "supplier") {
		return []string{"supplier"}
	}
	if strings.Contains(text, "monthly") || strings.Contains(text, "by month") {
		return []string{"month"}
	}

	var out []string
	seen := make(map[string]bool)
	for _, rule := range lexicon.DimensionRules {
		if !strings.Contains(text, rule.Keyword) {
			continue
		}
		if !fieldValid(source, rule.Field) || seen[rule.Field] {
			continue
		}
		seen[rule.Field] = true
		out = append(out, rule.Field)
	}
	return out
}

// detectMetrics synthesizes one metric per aggregation verb found. The
// default-guard checks only the literal count/sum/avg trigger words;
// a bare "maximum" without one of those still yields the default count
// metric, matching the shipped behavior.
func detectMetrics(text string) []widget.Metric {
	if !strings.Contains(text, "count") && !strings.Contains(text, "sum") && !strings.Contains(text, "avg") {
		return []widget.Metric{defaultCountMetric()}
	}

	var out []widget.Metric
	seen := make(map[widget.Aggregation]bool)
	for _, rule := range lexicon.AggregationRules {
		if !strings.Contains(text, rule.Keyword) || seen[rule.Agg] {
			continue
		}
		seen[rule.Agg] = true
		out = append(out, buildMetric(rule.Agg, text))
	}
	if len(out) == 0 {
		out = append(out, defaultCountMetric())
	}
	return out
}

func defaultCountMetric() widget.Metric {
	return widget.Metric{Label: "Count", Aggregation: widget.AggCount, Unit: "count"}
}

func buildMetric(agg widget.Aggregation, text string) widget.Metric {
	if agg == widget.AggCount {
		return defaultCountMetric()
	}

	m := widget.Metric{Aggregation: agg, Label: aggLabels[agg]}
	for _, rule := range lexicon.MetricFieldRules {
		if strings.Contains(text, rule.Keyword) {
			m.Field = rule.Field
			m.Unit = rule.Unit
			m.Label += " " + fieldLabels[rule.Field]
			break
		}
	}
	return m
}

var aggLabels = map[widget.Aggregation]string{
	widget.AggCount:     "Count",
	widget.AggSum:       "Total",
	widget.AggAvg:       "Average",
	widget.AggMin:       "Minimum",
	widget.AggMax:       "Maximum",
	widget.AggPctChange: "Change",
}

var fieldLabels = map[string]string{
	"spent":          "Spent",
	"progress":       "Progress",
	"score":          "Score",
	"onTimeDelivery": "On-Time Delivery",
}

// detectViz: explicit keyword wins, then grouping-based inference, then
// the lone-count-metric kpi case, then bar.
func detectViz(text string, groupBy []string, metrics []widget.Metric) widget.Viz {
	for _, rule := range lexicon.VizRules {
		if strings.Contains(text, rule.Keyword) {
			return rule.Viz
		}
	}

	if len(groupBy) > 0 {
		if isTemporal(groupBy[0]) {
			return widget.VizLine
		}
		switch groupBy[0] {
		case "region", "country", "supplier":
			return widget.VizBar
		}
	}

	if len(groupBy) == 0 && len(metrics) == 1 && metrics[0].Aggregation == widget.AggCount {
		return widget.VizKPI
	}
	return widget.VizBar
}

func detectSize(text string, viz widget.Viz, groupBy []string) widget.Size {
	for _, rule := range lexicon.SizeRules {
		if strings.Contains(text, rule.Keyword) {
			return rule.Size
		}
	}
	switch {
	case viz == widget.VizKPI:
		return widget.SizeSM
	case len(groupBy) > 0:
		return widget.SizeLG
	case viz == widget.VizTable:
		return widget.SizeXL
	}
	return widget.SizeMD
}

var sourceLabels = map[widget.Source]string{
	widget.SourceProjects:      "Projects",
	widget.SourceITTs:          "ITTs",
	widget.SourceSuppliers:     "Suppliers",
	widget.SourceCosts:         "Costs",
	widget.SourceIssues:        "Issues",
	widget.SourceRegionMetrics: "Region Metrics",
}

var vizLabels = map[widget.Viz]string{
	widget.VizBar:      "Bar Chart",
	widget.VizLine:     "Line Chart",
	widget.VizArea:     "Area Chart",
	widget.VizPie:      "Pie Chart",
	widget.VizTable:    "Table",
	widget.VizKPI:      "KPI",
	widget.VizProgress: "Progress",
	widget.VizCard:     "Card",
}

func synthesizeName(source widget.Source, groupBy []string, viz widget.Viz) string {
	name := sourceLabels[source]
	if len(groupBy) > 0 {
		name += " by " + groupBy[0]
	}
	return name + " " + vizLabels[viz]
}

func fieldValid(source widget.Source, field string) bool {
	for _, f := range lexicon.SourceFields[source] {
		if f == field {
			return true
		}
	}
	return false
}

func isTemporal(field string) bool {
	for _, f := range lexicon.TemporalFields {
		if f == field {
			return true
		}
	}
	return false
}
