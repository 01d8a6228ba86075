package catalog

// SlideTemplates is the layout-template repository the model picks slide
// archetypes from.
var SlideTemplates = []LayoutTemplate{
	{
		Name:     "Executive Summary",
		UseCases: []string{"CxO reporting", "strategy"},
		Layout:   GridSpec{Rows: 1, Columns: 1, Sections: []string{"Summary"}},
		Visuals:  []string{"kpi_tiles", "infographic"},
	},
	{
		Name:     "Market Opportunity Map",
		UseCases: []string{"strategy", "market research"},
		Layout:   GridSpec{Rows: 2, Columns: 2, Sections: []string{"High Growth / High Share", "High Growth / Low Share", "Low Growth / High Share", "Low Growth / Low Share"}},
		Visuals:  []string{"matrix_chart"},
	},
	{
		Name:     "Channel Strategy Overview",
		UseCases: []string{"sales", "marketing"},
		Layout:   GridSpec{Rows: 1, Columns: 3, Sections: []string{"Direct", "Indirect", "Digital"}},
		Visuals:  []string{"pie_chart", "bar_chart"},
	},
	{
		Name:     "Executive Priorities",
		UseCases: []string{"strategy", "CxO reporting"},
		Layout:   GridSpec{Rows: 1, Columns: 3, Sections: []string{"Top Priority", "Secondary Priority", "Other Initiatives"}},
		Visuals:  []string{"kpi_tiles", "infographic"},
	},
	{
		Name:     "Operational KPIs",
		UseCases: []string{"ops", "monitoring"},
		Layout:   GridSpec{Rows: 2, Columns: 2, Sections: []string{"Cycle Time", "Throughput", "Defects", "Capacity Utilization"}},
		Visuals:  []string{"line_chart", "bar_chart"},
	},
	{
		Name:     "Scenario Planning Matrix",
		UseCases: []string{"strategy", "planning"},
		Layout:   GridSpec{Rows: 2, Columns: 2, Sections: []string{"Best Case", "Likely Case", "Worst Case", "Assumptions"}},
		Visuals:  []string{"matrix_chart", "table"},
	},
	{
		Name:     "R&D Pipeline",
		UseCases: []string{"product strategy", "innovation"},
		Layout:   GridSpec{Rows: 1, Columns: 4, Sections: []string{"Idea Stage", "Prototype", "Pilot", "Commercialization"}},
		Visuals:  []string{"timeline", "infographic"},
	},
	{
		Name:     "Competitor Product Comparison",
		UseCases: []string{"market research", "strategy"},
		Layout:   GridSpec{Rows: 1, Columns: 3, Sections: []string{"Product A", "Product B", "Product C"}},
		Visuals:  []string{"table", "bar_chart"},
	},
	{
		Name:     "Cost Optimization Initiatives",
		UseCases: []string{"finance", "ops"},
		Layout:   GridSpec{Rows: 2, Columns: 2, Sections: []string{"Labor", "Procurement", "Inventory", "Overhead"}},
		Visuals:  []string{"waterfall_chart", "table"},
	},
	{
		Name:     "Brand Equity Dashboard",
		UseCases: []string{"marketing", "strategy"},
		Layout:   GridSpec{Rows: 1, Columns: 4, Sections: []string{"Awareness", "Perception", "Preference", "Loyalty"}},
		Visuals:  []string{"kpi_tiles", "bar_chart"},
	},
	{
		Name:     "Operational Bottleneck Analysis",
		UseCases: []string{"ops", "process improvement"},
		Layout:   GridSpec{Rows: 2, Columns: 2, Sections: []string{"Step 1", "Step 2", "Step 3", "Step 4"}},
		Visuals:  []string{"flow_chart", "bar_chart"},
	},
	{
		Name:     "Marketing Campaign ROI",
		UseCases: []string{"marketing", "finance"},
		Layout:   GridSpec{Rows: 1, Columns: 4, Sections: []string{"SEO", "PPC", "Email", "Social"}},
		Visuals:  []string{"line_chart", "bar_chart"},
	},
	{
		Name:     "Executive Dashboard Overview",
		UseCases: []string{"CxO reporting", "strategy"},
		Layout:   GridSpec{Rows: 2, Columns: 2, Sections: []string{"Financials", "Customer", "Ops", "Strategy"}},
		Visuals:  []string{"kpi_tiles", "line_chart", "pie_chart"},
	},
	{
		Name:     "Customer Satisfaction Survey Results",
		UseCases: []string{"CX", "marketing"},
		Layout:   GridSpec{Rows: 1, Columns: 4, Sections: []string{"Product", "Service", "Support", "Overall"}},
		Visuals:  []string{"bar_chart", "pie_chart"},
	},
	{
		Name:     "Financial Deep Dive",
		UseCases: []string{"finance", "due diligence"},
		Layout:   GridSpec{Rows: 2, Columns: 3, Sections: []string{"Revenue", "EBITDA", "Net Income", "Free Cash Flow", "Debt", "Equity"}},
		Visuals:  []string{"waterfall_chart", "line_chart", "table"},
	},
	{
		Name:     "Recommendation & Next Steps",
		UseCases: []string{"strategy", "CxO reporting"},
		Layout:   GridSpec{Rows: 1, Columns: 2, Sections: []string{"Recommendation", "Next Steps"}},
		Visuals:  []string{"infographic", "timeline"},
	},
}
