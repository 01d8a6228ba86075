package catalog

// Frameworks is the strategic-framework repository. Grouped the way the
// product surfaces them: strategy, financial, operational, customer/product.
var Frameworks = []Framework{
	// Strategy & business analysis
	{Name: "SWOT Analysis", DataForm: "qualitative", UseCases: []string{"strategic planning", "risk assessment", "internal analysis"}},
	{Name: "PESTLE Analysis", DataForm: "qualitative", UseCases: []string{"macro-environment analysis", "market scanning"}},
	{Name: "Porter's Five Forces", DataForm: "qualitative", UseCases: []string{"industry structure analysis", "competitive forces"}},
	{Name: "BCG Growth-Share Matrix", DataForm: "categorical", UseCases: []string{"portfolio management", "investment prioritization"}},
	{Name: "GE McKinsey Matrix", DataForm: "categorical", UseCases: []string{"portfolio prioritization", "resource allocation"}},
	{Name: "Ansoff Matrix", DataForm: "categorical", UseCases: []string{"growth strategy", "market vs product expansion"}},
	{Name: "Value Chain Analysis", DataForm: "process_map", UseCases: []string{"operational analysis", "cost optimization"}},
	{Name: "VRIO Framework", DataForm: "qualitative", UseCases: []string{"competitive advantage", "capability evaluation"}},
	{Name: "Balanced Scorecard", DataForm: "KPI_dashboard", UseCases: []string{"performance tracking", "strategic alignment"}},
	{Name: "Blue Ocean Strategy Canvas", DataForm: "categorical", UseCases: []string{"market positioning", "differentiation"}},

	// Financial & market analysis
	{Name: "DuPont Analysis", DataForm: "financial_ratios", UseCases: []string{"ROE decomposition", "financial performance analysis"}},
	{Name: "Economic Value Added (EVA)", DataForm: "financial", UseCases: []string{"value creation", "performance-based compensation"}},
	{Name: "Break-even Analysis", DataForm: "quantitative", UseCases: []string{"profit planning", "cost-volume analysis"}},
	{Name: "Sensitivity Analysis", DataForm: "scenario_model", UseCases: []string{"risk assessment", "financial forecasting"}},
	{Name: "Monte Carlo Simulation", DataForm: "probabilistic", UseCases: []string{"risk modelling", "forecast uncertainty"}},
	{Name: "Scenario Planning", DataForm: "qualitative_quantitative", UseCases: []string{"strategic foresight", "long-term planning"}},
	{Name: "Cohort Analysis", DataForm: "time_series", UseCases: []string{"customer retention", "user behavior analysis"}},
	{Name: "Unit Economics Model", DataForm: "financial_model", UseCases: []string{"startup analysis", "scalability assessment"}},
	{Name: "LTV:CAC Ratio", DataForm: "metric", UseCases: []string{"customer profitability", "marketing efficiency"}},
	{Name: "CLV Forecasting Model", DataForm: "time_series", UseCases: []string{"customer lifetime value", "growth modelling"}},

	// Operational & org analysis
	{Name: "RACI Matrix", DataForm: "matrix", UseCases: []string{"role clarity", "responsibility assignment"}},
	{Name: "Organizational Structure Chart", DataForm: "hierarchical", UseCases: []string{"reporting structure", "org design"}},
	{Name: "Process Flow Diagram", DataForm: "process_map", UseCases: []string{"process improvement", "efficiency analysis"}},
	{Name: "SIPOC Diagram", DataForm: "process_map", UseCases: []string{"process scoping", "quality management"}},
	{Name: "Root Cause Analysis (5 Whys)", DataForm: "cause_effect", UseCases: []string{"problem solving", "defect reduction"}},
	{Name: "Fishbone Diagram", DataForm: "cause_effect", UseCases: []string{"root cause identification", "brainstorming"}},
	{Name: "Critical Path Method (CPM)", DataForm: "project_timeline", UseCases: []string{"project scheduling", "bottleneck detection"}},
	{Name: "PERT Chart", DataForm: "project_timeline", UseCases: []string{"project estimation", "uncertainty analysis"}},
	{Name: "Value Stream Mapping", DataForm: "process_map", UseCases: []string{"lean improvement", "waste reduction"}},
	{Name: "Theory of Constraints (TOC)", DataForm: "process_analysis", UseCases: []string{"throughput improvement", "bottleneck resolution"}},

	// Customer & product
	{Name: "Customer Journey Map", DataForm: "timeline_flow", UseCases: []string{"experience mapping", "pain point detection"}},
	{Name: "Empathy Map", DataForm: "qualitative", UseCases: []string{"user needs understanding", "UX design"}},
	{Name: "Kano Model", DataForm: "categorical", UseCases: []string{"feature prioritization", "product strategy"}},
	{Name: "Jobs-to-be-Done Framework", DataForm: "qualitative", UseCases: []string{"innovation discovery", "customer motivation analysis"}},
	{Name: "Product Life Cycle Curve", DataForm: "time_series", UseCases: []string{"product strategy", "portfolio planning"}},
	{Name: "Innovation Adoption Curve", DataForm: "time_series", UseCases: []string{"market adoption", "product launch strategy"}},
	{Name: "AARRR Funnel", DataForm: "funnel", UseCases: []string{"startup growth tracking", "user lifecycle"}},
	{Name: "HEART Framework", DataForm: "KPI_dashboard", UseCases: []string{"UX metrics", "user experience tracking"}},
	{Name: "North Star Metric Framework", DataForm: "KPI_dashboard", UseCases: []string{"product focus", "growth tracking"}},
	{Name: "OKR Framework", DataForm: "goal_hierarchy", UseCases: []string{"goal setting", "performance tracking"}},
}

// FrameworkFields maps well-known frameworks to the labeled lists their
// structured breakdown should carry. Frameworks not listed here get an open
// key-to-list shape decided by the model.
var FrameworkFields = map[string][]string{
	"SWOT Analysis":                 {"Strengths", "Weaknesses", "Opportunities", "Threats"},
	"PESTLE Analysis":               {"Political", "Economic", "Social", "Technological", "Legal", "Environmental"},
	"Porter's Five Forces":          {"Competitive Rivalry", "Supplier Power", "Buyer Power", "Threat of Substitution", "Threat of New Entry"},
	"BCG Growth-Share Matrix":       {"Stars", "Cash Cows", "Question Marks", "Dogs"},
	"GE McKinsey Matrix":            {"Invest/Grow", "Selectivity/Earnings", "Harvest/Divest"},
	"Ansoff Matrix":                 {"Market Penetration", "Market Development", "Product Development", "Diversification"},
	"Value Chain Analysis":          {"Primary Activities", "Support Activities"},
	"VRIO Framework":                {"Value", "Rarity", "Imitability", "Organization"},
	"Balanced Scorecard":            {"Financial", "Customer", "Internal Processes", "Learning & Growth"},
	"DuPont Analysis":               {"ROE Decomposition", "Financial Performance Analysis"},
	"Economic Value Added (EVA)":    {"Value Creation", "Performance-Based Compensation"},
	"Break-even Analysis":           {"Profit Planning", "Cost-Volume Analysis"},
	"Sensitivity Analysis":          {"Risk Assessment", "Financial Forecasting"},
	"Monte Carlo Simulation":        {"Risk Modelling", "Forecast Uncertainty"},
	"Scenario Planning":             {"Strategic Foresight", "Long-Term Planning"},
	"Cohort Analysis":               {"Customer Retention", "User Behavior Analysis"},
	"Unit Economics Model":          {"Startup Analysis", "Scalability Assessment"},
	"LTV:CAC Ratio":                 {"Customer Profitability", "Marketing Efficiency"},
	"CLV Forecasting Model":         {"Customer Lifetime Value", "Growth Modelling"},
	"RACI Matrix":                   {"Role Clarity", "Responsibility Assignment"},
	"Organizational Structure Chart": {"Reporting Structure", "Org Design"},
	"Process Flow Diagram":          {"Process Improvement", "Efficiency Analysis"},
	"SIPOC Diagram":                 {"Process Scoping", "Quality Management"},
	"Root Cause Analysis (5 Whys)":  {"Problem Solving", "Defect Reduction"},
	"Fishbone Diagram":              {"Root Cause Identification", "Brainstorming"},
	"Critical Path Method (CPM)":    {"Project Scheduling", "Bottleneck Detection"},
	"PERT Chart":                    {"Project Estimation", "Uncertainty Analysis"},
	"Value Stream Mapping":          {"Lean Improvement", "Waste Reduction"},
	"Theory of Constraints (TOC)":   {"Throughput Improvement", "Bottleneck Resolution"},
	"Customer Journey Map":          {"Experience Mapping", "Pain Point Detection"},
	"Empathy Map":                   {"User Needs Understanding", "UX Design"},
	"Kano Model":                    {"Feature Prioritization", "Product Strategy"},
	"Jobs-to-be-Done Framework":     {"Innovation Discovery", "Customer Motivation Analysis"},
	"Product Life Cycle Curve":      {"Product Strategy", "Portfolio Planning"},
	"Innovation Adoption Curve":     {"Market Adoption", "Product Launch Strategy"},
	"AARRR Funnel":                  {"Startup Growth Tracking", "User Lifecycle"},
	"HEART Framework":               {"UX Metrics", "User Experience Tracking"},
	"North Star Metric Framework":   {"Product Focus", "Growth Tracking"},
	"OKR Framework":                 {"Goal Setting", "Performance Tracking"},
}
