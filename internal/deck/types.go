// Package deck holds the deck data model and the deterministic repair logic
// that turns whatever the model returned into a complete, grid-valid deck.
package deck

// Layout is a slide's section grid. Rows and Columns are coerced to be at
// least 1 before any slot arithmetic happens.
type Layout struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// DataPoint is one plottable point. Categorical series use Label/Value;
// coordinate series use X/Y and optionally Z.
type DataPoint struct {
	Label string   `json:"label,omitempty"`
	Value float64  `json:"value,omitempty"`
	X     *float64 `json:"x,omitempty"`
	Y     *float64 `json:"y,omitempty"`
	Z     *float64 `json:"z,omitempty"`
}

// ChartData is the plotting payload attached to a section for one chart,
// produced by enrichment. Exactly one of the series forms is populated
// depending on the chart family.
type ChartData struct {
	XAxisTitle string    `json:"xAxisTitle"`
	YAxisTitle string    `json:"yAxisTitle"`
	Legend     string    `json:"legend"`
	Inferences []string  `json:"inferences"`
	Labels     []string  `json:"labels,omitempty"`
	Values     []float64 `json:"values,omitempty"`
	Steps      []string  `json:"steps,omitempty"`
	X          []float64 `json:"x,omitempty"`
	Y          []float64 `json:"y,omitempty"`
	Z          []float64 `json:"z,omitempty"`
}

// Section is one cell of a slide's grid. After reconciliation every section
// has a 1-indexed in-range position and usable substance: non-blank content,
// or a chart/framework attachment.
type Section struct {
	Row           int                  `json:"row"`
	Col           int                  `json:"col"`
	Title         string               `json:"title"`
	Content       string               `json:"content"`
	Charts        []string             `json:"charts"`
	Frameworks    []string             `json:"frameworks"`
	Infographics  []string             `json:"infographics"`
	ChartData     map[string]ChartData `json:"chart_data"`
	FrameworkData []map[string]any     `json:"framework_data"`
}

// Slide is one slide of the deck. Created once by the assembler from the raw
// model payload, then mutated in place by reconciliation and enrichment, and
// never touched after the deck is returned.
type Slide struct {
	SlideNumber      int         `json:"slide_number"`
	Title            string      `json:"title"`
	Archetype        string      `json:"slide_archetype,omitempty"`
	Layout           Layout      `json:"layout"`
	Sections         []*Section  `json:"sections"`
	Visualization    string      `json:"visualization"`
	Frameworks       []string    `json:"frameworks"`
	Content          []string    `json:"content"`
	Takeaway         string      `json:"takeaway,omitempty"`
	CallToAction     string      `json:"call_to_action,omitempty"`
	ExecutiveSummary string      `json:"executive_summary,omitempty"`
	DetailedAnalysis string      `json:"detailed_analysis,omitempty"`
	Methodology      string      `json:"methodology,omitempty"`
	Data             []DataPoint `json:"data"`
}

// Deck is the full generation result.
type Deck struct {
	ProblemStatement   string           `json:"problem_statement,omitempty"`
	OptimizedStoryline []string         `json:"optimized_storyline"`
	Slides             []*Slide         `json:"slides"`
	Recommendations    []any            `json:"recommendations,omitempty"`
	TableSources       []map[string]any `json:"table_sources"`
	TableSummaries     map[string]any   `json:"table_summaries"`
	FinancialMetrics   map[string]any   `json:"financial_metrics"`
}
