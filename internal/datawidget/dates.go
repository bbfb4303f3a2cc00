package datawidget

import (
	"strings"
	"time"

	"github.com/gridwise-ai/gridwise/internal/lexicon"
	"github.com/gridwise-ai/gridwise/pkg/widget"
)

// DateFilter scans text for a relative-time phrase and, on the first
// hit, returns a gte filter on the source's date field anchored to now.
//
// Only the lower bound is encoded, even for phrases that imply a closed
// window like "today" or "this week". That asymmetry is the current
// product behavior and is asserted by tests as-is.
func DateFilter(text string, source widget.Source, now time.Time) (widget.Filter, bool) {
	for _, rule := range lexicon.TimeWindowRules {
		if !strings.Contains(text, rule.Phrase) {
			continue
		}
		start := windowStart(rule, now)
		return widget.Filter{
			Field:    lexicon.DateField[source],
			Operator: "gte",
			Value:    start.Format(time.RFC3339),
		}, true
	}
	return widget.Filter{}, false
}

func windowStart(rule lexicon.TimeWindowRule, now time.Time) time.Time {
	day := midnight(now)
	switch rule.Kind {
	case lexicon.WindowToday:
		return day
	case lexicon.WindowYesterday:
		return day.AddDate(0, 0, -1)
	case lexicon.WindowTomorrow:
		return day.AddDate(0, 0, 1)
	case lexicon.WindowThisWeek:
		// Week starts on the most recent Sunday.
		return day.AddDate(0, 0, -int(now.Weekday()))
	case lexicon.WindowLastWeek:
		return day.AddDate(0, 0, -int(now.Weekday())-7)
	case lexicon.WindowThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case lexicon.WindowLastMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	case lexicon.WindowThisQuarter:
		qm := time.Month((int(now.Month())-1)/3*3 + 1)
		return time.Date(now.Year(), qm, 1, 0, 0, 0, 0, now.Location())
	case lexicon.WindowThisYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	case lexicon.WindowNextNDays:
		return now
	}
	return now
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
