// Package tables profiles uploaded tabular data into the compact summaries
// embedded in generation prompts.
package tables

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Table is a column-oriented table: column name to cell values.
type Table map[string][]any

// Summary is the per-file profile: enough for the model to reason about the
// data without shipping the whole table.
type Summary struct {
	NumRows       int                       `json:"num_rows"`
	Columns       []string                  `json:"columns"`
	SampleRows    []map[string]string       `json:"sample_rows"`
	MissingCounts map[string]int            `json:"missing_counts"`
	Types         map[string]string         `json:"types"`
	NumericStats  map[string]map[string]any `json:"numeric_stats"`
	Error         string                    `json:"error,omitempty"`
}

const sampleRowLimit = 2

// typeThreshold is the fraction of non-missing cells that must parse as a
// type before a column is classified as that type.
const typeThreshold = 0.4

// Summarize profiles every uploaded table. Absent or empty input yields an
// empty map; a malformed table yields a summary carrying only an error so one
// bad file never sinks the rest.
func Summarize(data map[string]Table) map[string]*Summary {
	out := make(map[string]*Summary, len(data))
	for name, tbl := range data {
		out[name] = summarizeTable(tbl)
	}
	return out
}

func summarizeTable(tbl Table) *Summary {
	if len(tbl) == 0 {
		return &Summary{Error: "could not parse table"}
	}

	cols := make([]string, 0, len(tbl))
	for c := range tbl {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	rows := 0
	for _, vals := range tbl {
		if len(vals) > rows {
			rows = len(vals)
		}
	}

	s := &Summary{
		NumRows:       rows,
		Columns:       cols,
		SampleRows:    []map[string]string{},
		MissingCounts: make(map[string]int, len(cols)),
		Types:         make(map[string]string, len(cols)),
		NumericStats:  make(map[string]map[string]any, len(cols)),
	}

	for i := 0; i < rows && i < sampleRowLimit; i++ {
		row := make(map[string]string, len(cols))
		for _, c := range cols {
			row[c] = cellString(tbl[c], i)
		}
		s.SampleRows = append(s.SampleRows, row)
	}

	for _, c := range cols {
		vals := tbl[c]
		missing := 0
		for _, v := range vals {
			if isMissing(v) {
				missing++
			}
		}
		missing += rows - len(vals)
		s.MissingCounts[c] = missing

		if nums, ok := numericColumn(vals); ok {
			s.Types[c] = "numeric"
			s.NumericStats[c] = numericStats(nums)
			continue
		}
		if start, end, ok := datetimeColumn(vals); ok {
			s.Types[c] = "datetime"
			s.NumericStats[c] = map[string]any{
				"start": start.Format(time.RFC3339),
				"end":   end.Format(time.RFC3339),
			}
			continue
		}
		s.Types[c] = "string"
	}
	return s
}

func cellString(vals []any, i int) string {
	if i >= len(vals) || isMissing(vals[i]) {
		return ""
	}
	switch x := vals[i].(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func isMissing(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	if f, ok := v.(float64); ok {
		return math.IsNaN(f)
	}
	return false
}

// ParseNumber parses a cell as a number after stripping thousand separators,
// percent signs and spaces.
func ParseNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case string:
		cleaned := strings.NewReplacer(",", "", "%", "", " ", "", "$", "").Replace(strings.TrimSpace(x))
		if cleaned == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func numericColumn(vals []any) ([]float64, bool) {
	if len(vals) == 0 {
		return nil, false
	}
	nums := make([]float64, 0, len(vals))
	for _, v := range vals {
		if f, ok := ParseNumber(v); ok {
			nums = append(nums, f)
		}
	}
	min := int(math.Max(1, typeThreshold*float64(len(vals))))
	if len(nums) < min {
		return nil, false
	}
	return nums, true
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2006",
	"2006",
}

func parseDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func datetimeColumn(vals []any) (time.Time, time.Time, bool) {
	if len(vals) == 0 {
		return time.Time{}, time.Time{}, false
	}
	var times []time.Time
	for _, v := range vals {
		if t, ok := parseDate(v); ok {
			times = append(times, t)
		}
	}
	min := int(math.Max(1, typeThreshold*float64(len(vals))))
	if len(times) < min {
		return time.Time{}, time.Time{}, false
	}
	start, end := times[0], times[0]
	for _, t := range times[1:] {
		if t.Before(start) {
			start = t
		}
		if t.After(end) {
			end = t
		}
	}
	return start, end, true
}

func numericStats(nums []float64) map[string]any {
	if len(nums) == 0 {
		return map[string]any{}
	}
	sorted := append([]float64(nil), nums...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, f := range sorted {
		sum += f
	}
	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}
	return map[string]any{
		"count":  len(sorted),
		"mean":   sum / float64(len(sorted)),
		"median": median,
		"min":    sorted[0],
		"max":    sorted[len(sorted)-1],
	}
}
