package catalog

// Infographics is the infographic-style repository suggested per section.
var Infographics = []Infographic{
	{Name: "Process Flow", UseCases: []string{"sequential steps", "workflows"}},
	{Name: "Timeline", UseCases: []string{"milestones", "history", "roadmap"}},
	{Name: "Pyramid", UseCases: []string{"hierarchy", "priority stacking"}},
	{Name: "Funnel", UseCases: []string{"conversion", "filtering stages"}},
	{Name: "Venn Diagram", UseCases: []string{"overlap", "shared traits"}},
	{Name: "Iceberg", UseCases: []string{"visible vs hidden factors"}},
	{Name: "Roadmap", UseCases: []string{"phased plans", "initiatives"}},
	{Name: "Comparison Table", UseCases: []string{"side-by-side options"}},
	{Name: "KPI Tiles", UseCases: []string{"headline metrics"}},
	{Name: "Circular Cycle", UseCases: []string{"recurring processes", "feedback loops"}},
	{Name: "Stair Steps", UseCases: []string{"progressive growth", "maturity levels"}},
	{Name: "Matrix Grid", UseCases: []string{"two-dimensional classification"}},
	{Name: "Honeycomb", UseCases: []string{"interconnected capabilities"}},
	{Name: "Gears", UseCases: []string{"interdependent mechanisms"}},
	{Name: "Mind Map", UseCases: []string{"idea clustering", "brainstorming"}},
}
