package deck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSeries_DeterministicPerFamily(t *testing.T) {
	tests := []struct {
		viz        string
		firstLabel string
		length     int
	}{
		{"Pie Chart", "Market Leader", 4},
		{"Doughnut Chart", "Market Leader", 4},
		{"Line Chart", "Q1", 4},
		{"Area Chart", "Q1", 4},
		{"Radar Chart", "Performance", 5},
		{"Waterfall Chart", "Starting Value", 5},
		{"Bar Chart", "Region A", 4},
		{"Something Unrecognized", "Region A", 4},
		{"", "Region A", 4},
	}
	for _, tt := range tests {
		t.Run(tt.viz, func(t *testing.T) {
			got := DefaultSeries(tt.viz)
			require.Len(t, got, tt.length)
			require.Equal(t, tt.firstLabel, got[0].Label)
			require.Equal(t, got, DefaultSeries(tt.viz), "must be deterministic")
		})
	}
}

func TestDefaultSeries_ScatterUsesCoordinates(t *testing.T) {
	for _, viz := range []string{"Scatter Plot", "Bubble Chart"} {
		got := DefaultSeries(viz)
		require.Len(t, got, 4)
		for _, p := range got {
			require.NotNil(t, p.X)
			require.NotNil(t, p.Y)
			require.NotNil(t, p.Z)
			require.Empty(t, p.Label)
		}
		require.Equal(t, 10.0, *got[0].X)
		require.Equal(t, 35.0, *got[3].Y)
	}
}

func TestDefaultSeries_MatchIsCaseInsensitive(t *testing.T) {
	require.Equal(t, DefaultSeries("PIE chart"), DefaultSeries("pie"))
	require.Equal(t, DefaultSeries("WATERFALL"), DefaultSeries("Waterfall Chart"))
}
