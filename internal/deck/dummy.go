package deck

import "strings"

func fp(f float64) *float64 { return &f }

// DefaultSeries returns a plausible placeholder data series for a
// visualization type so a slide is always immediately plottable even when
// generation omitted data. The match is a case-insensitive keyword lookup on
// the visualization string; anything unrecognized gets a bar comparison.
func DefaultSeries(visualization string) []DataPoint {
	viz := strings.ToLower(visualization)

	switch {
	case strings.Contains(viz, "pie") || strings.Contains(viz, "donut") || strings.Contains(viz, "doughnut"):
		return []DataPoint{
			{Label: "Market Leader", Value: 45},
			{Label: "Challenger", Value: 30},
			{Label: "Follower", Value: 20},
			{Label: "Niche", Value: 5},
		}
	case strings.Contains(viz, "line") || strings.Contains(viz, "area"):
		return []DataPoint{
			{Label: "Q1", Value: 120},
			{Label: "Q2", Value: 135},
			{Label: "Q3", Value: 142},
			{Label: "Q4", Value: 158},
		}
	case strings.Contains(viz, "scatter") || strings.Contains(viz, "bubble"):
		return []DataPoint{
			{X: fp(10), Y: fp(20), Z: fp(30)},
			{X: fp(15), Y: fp(25), Z: fp(40)},
			{X: fp(20), Y: fp(30), Z: fp(50)},
			{X: fp(25), Y: fp(35), Z: fp(60)},
		}
	case strings.Contains(viz, "radar"):
		return []DataPoint{
			{Label: "Performance", Value: 85},
			{Label: "Efficiency", Value: 70},
			{Label: "Innovation", Value: 90},
			{Label: "Customer", Value: 75},
			{Label: "Financial", Value: 80},
		}
	case strings.Contains(viz, "waterfall"):
		return []DataPoint{
			{Label: "Starting Value", Value: 100},
			{Label: "Growth", Value: 25},
			{Label: "Market Expansion", Value: 15},
			{Label: "Efficiency Gains", Value: 10},
			{Label: "Final Value", Value: 150},
		}
	default:
		return []DataPoint{
			{Label: "Region A", Value: 120},
			{Label: "Region B", Value: 95},
			{Label: "Region C", Value: 140},
			{Label: "Region D", Value: 110},
		}
	}
}
