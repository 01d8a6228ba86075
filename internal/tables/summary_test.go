package tables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize_NumericColumn(t *testing.T) {
	data := map[string]Table{
		"sales.csv": {
			"Revenue": {"1,200", "800", "1,000", ""},
			"Region":  {"North", "South", "East", "West"},
		},
	}
	out := Summarize(data)
	require.Len(t, out, 1)
	s := out["sales.csv"]
	require.Empty(t, s.Error)
	require.Equal(t, 4, s.NumRows)
	require.Equal(t, []string{"Region", "Revenue"}, s.Columns)
	require.Equal(t, "numeric", s.Types["Revenue"])
	require.Equal(t, "string", s.Types["Region"])
	require.Equal(t, 1, s.MissingCounts["Revenue"])

	stats := s.NumericStats["Revenue"]
	require.Equal(t, 3, stats["count"])
	require.Equal(t, 1000.0, stats["mean"])
	require.Equal(t, 1000.0, stats["median"])
	require.Equal(t, 800.0, stats["min"])
	require.Equal(t, 1200.0, stats["max"])
}

func TestSummarize_SampleRowsCappedAndStringified(t *testing.T) {
	data := map[string]Table{
		"t.csv": {
			"a": {1.0, 2.0, 3.0},
			"b": {"x", "y", "z"},
		},
	}
	s := Summarize(data)["t.csv"]
	require.Len(t, s.SampleRows, 2)
	require.Equal(t, map[string]string{"a": "1", "b": "x"}, s.SampleRows[0])
	require.Equal(t, map[string]string{"a": "2", "b": "y"}, s.SampleRows[1])
}

func TestSummarize_DatetimeColumn(t *testing.T) {
	data := map[string]Table{
		"t.csv": {
			"date": {"2024-01-01", "2024-06-30", "not a date"},
		},
	}
	s := Summarize(data)["t.csv"]
	require.Equal(t, "datetime", s.Types["date"])
	stats := s.NumericStats["date"]
	require.Contains(t, stats["start"], "2024-01-01")
	require.Contains(t, stats["end"], "2024-06-30")
}

func TestSummarize_TypeThreshold(t *testing.T) {
	// Only 1 of 5 values parses as numeric, below the 40% threshold.
	data := map[string]Table{
		"t.csv": {
			"mixed": {"a", "b", "c", "d", "5"},
		},
	}
	s := Summarize(data)["t.csv"]
	require.Equal(t, "string", s.Types["mixed"])
}

func TestSummarize_EmptyTableGetsErrorSummary(t *testing.T) {
	out := Summarize(map[string]Table{"bad.csv": {}})
	require.NotEmpty(t, out["bad.csv"].Error)
}

func TestSummarize_NoInput(t *testing.T) {
	require.Empty(t, Summarize(nil))
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{"1,200", 1200, true},
		{"45%", 45, true},
		{"$ 3.5", 3.5, true},
		{2.0, 2, true},
		{"", 0, false},
		{"n/a", 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		require.Equal(t, tt.ok, ok, "input %v", tt.in)
		if ok {
			require.Equal(t, tt.want, got)
		}
	}
}

func TestExtractFinancialMetrics(t *testing.T) {
	data := map[string]Table{
		"fin.csv": {
			"Total Revenue ($M)": {"100", "120", "150"},
			"EBITDA":             {"20", "25", "30"},
			"Notes":              {"a", "b", "c"},
		},
	}
	got := ExtractFinancialMetrics(data)
	require.Equal(t, 150.0, got["revenue"])
	require.Equal(t, 30.0, got["ebitda"])
	require.NotContains(t, got, "equity")
}

func TestExtractFinancialMetrics_LastParseableWins(t *testing.T) {
	data := map[string]Table{
		"fin.csv": {
			"Net Income": {"10", "12", "pending"},
		},
	}
	got := ExtractFinancialMetrics(data)
	// The trailing unparseable cell is skipped in favor of the latest number.
	require.Equal(t, 12.0, got["net income"])
}

func TestExtractFinancialMetrics_Empty(t *testing.T) {
	require.Empty(t, ExtractFinancialMetrics(nil))
	require.Empty(t, ExtractFinancialMetrics(map[string]Table{"t": {"col": {"x"}}}))
}
