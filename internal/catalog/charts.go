package catalog

// Charts is the chart-type repository offered to the model. Names are the
// canonical strings the renderer understands.
var Charts = []Chart{
	{Name: "Bar Chart", DataForm: "categorical", UseCases: []string{"comparison", "ranking", "regional breakdown"}},
	{Name: "Stacked Bar Chart", DataForm: "categorical_series", UseCases: []string{"composition over categories", "segment mix"}},
	{Name: "Line Chart", DataForm: "time_series", UseCases: []string{"trend analysis", "forecasting"}},
	{Name: "Area Chart", DataForm: "time_series", UseCases: []string{"cumulative trend", "volume over time"}},
	{Name: "Pie Chart", DataForm: "share", UseCases: []string{"market share", "composition"}},
	{Name: "Doughnut Chart", DataForm: "share", UseCases: []string{"composition", "KPI share"}},
	{Name: "Waterfall Chart", DataForm: "bridge", UseCases: []string{"P&L bridge", "value decomposition"}},
	{Name: "Scatter Chart", DataForm: "coordinates", UseCases: []string{"correlation", "positioning"}},
	{Name: "Bubble Chart", DataForm: "coordinates_sized", UseCases: []string{"portfolio view", "three-dimensional comparison"}},
	{Name: "Radar Chart", DataForm: "multi_dimension", UseCases: []string{"capability scorecard", "benchmarking"}},
	{Name: "Polar Area Chart", DataForm: "multi_dimension", UseCases: []string{"cyclical comparison"}},
	{Name: "Funnel Chart", DataForm: "funnel", UseCases: []string{"conversion analysis", "pipeline"}},
	{Name: "Gantt Chart", DataForm: "project_timeline", UseCases: []string{"roadmap", "implementation plan"}},
	{Name: "Heatmap", DataForm: "matrix", UseCases: []string{"density", "risk matrix"}},
	{Name: "Combo Chart", DataForm: "mixed_series", UseCases: []string{"revenue vs margin", "dual-axis comparison"}},
}
