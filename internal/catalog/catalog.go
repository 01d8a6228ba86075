// Package catalog holds the static reference repositories embedded into
// generation prompts: chart types, strategic frameworks, slide layout
// templates and infographic styles. Loaded once, read-only, safe for
// unsynchronized concurrent reads.
package catalog

// Chart describes one supported chart type.
type Chart struct {
	Name     string   `json:"name"`
	DataForm string   `json:"data_form"`
	UseCases []string `json:"use_cases"`
}

// Framework describes one strategic framework and the data shape it wants.
type Framework struct {
	Name     string   `json:"name"`
	DataForm string   `json:"data_form"`
	UseCases []string `json:"use_cases"`
}

// GridSpec is the row/column grid of a layout template with per-cell labels.
type GridSpec struct {
	Rows     int      `json:"rows"`
	Columns  int      `json:"columns"`
	Sections []string `json:"sections"`
}

// LayoutTemplate is a named slide layout with suggested visuals.
type LayoutTemplate struct {
	Name     string   `json:"name"`
	UseCases []string `json:"use_cases"`
	Layout   GridSpec `json:"layout"`
	Visuals  []string `json:"visuals"`
}

// Infographic is a named infographic style.
type Infographic struct {
	Name     string   `json:"name"`
	UseCases []string `json:"use_cases"`
}

// ChartNames returns the catalog chart names in declaration order.
func ChartNames() []string {
	out := make([]string, len(Charts))
	for i, c := range Charts {
		out[i] = c.Name
	}
	return out
}

// FrameworkNames returns the catalog framework names in declaration order.
func FrameworkNames() []string {
	out := make([]string, len(Frameworks))
	for i, f := range Frameworks {
		out[i] = f.Name
	}
	return out
}

// InfographicNames returns the catalog infographic names in declaration order.
func InfographicNames() []string {
	out := make([]string, len(Infographics))
	for i, g := range Infographics {
		out[i] = g.Name
	}
	return out
}

// Repos bundles the catalogs the way prompts embed them.
func Repos() map[string]any {
	return map[string]any{
		"CHART_REPO":      Charts,
		"DATA_FRAMEWORKS": Frameworks,
		"SLIDE_REPO":      SlideTemplates,
	}
}
