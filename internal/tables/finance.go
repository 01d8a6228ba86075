package tables

import (
	"sort"
	"strings"
)

// financialTargets are matched as lowercase substrings against column names.
var financialTargets = []string{
	"revenue",
	"ebitda",
	"net income",
	"net_income",
	"netincome",
	"fcf",
	"free cash flow",
	"operating cash flow",
	"total debt",
	"equity",
	"assets",
	"liabilities",
}

// ExtractFinancialMetrics scans every table's columns for known financial
// line items and records the most recent value found for each. Later tables
// and later matching columns win, mirroring a "latest upload is freshest"
// convention.
func ExtractFinancialMetrics(data map[string]Table) map[string]float64 {
	out := map[string]float64{}
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	// Deterministic walk order so repeated runs agree.
	sort.Strings(names)

	for _, name := range names {
		tbl := data[name]
		cols := make([]string, 0, len(tbl))
		for c := range tbl {
			cols = append(cols, c)
		}
		sort.Strings(cols)

		for _, col := range cols {
			lower := strings.ToLower(col)
			for _, target := range financialTargets {
				if !strings.Contains(lower, target) {
					continue
				}
				if v, ok := lastNumeric(tbl[col]); ok {
					out[target] = v
				}
			}
		}
	}
	return out
}

// lastNumeric returns the last parseable value of a column, the most recent
// figure in time-ordered financial tables.
func lastNumeric(vals []any) (float64, bool) {
	for i := len(vals) - 1; i >= 0; i-- {
		if f, ok := ParseNumber(vals[i]); ok {
			return f, true
		}
	}
	return 0, false
}
