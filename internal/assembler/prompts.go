package assembler

import (
	"fmt"
	"sort"
	"strings"

	"pitchmate/internal/catalog"
	"pitchmate/internal/deck"
	"pitchmate/internal/tables"
	"pitchmate/internal/util/jsonutil"
)

const deckSystemPrompt = "You are a veteran McKinsey/BCG partner and expert in consulting slide design, structure and storytelling. " +
	"For each slide, provide: " +
	"1. Slide Archetype (e.g., Title-Content, Comparison, Timeline, Framework, Data Chart, etc.). " +
	"2. Select the recommended layout from SLIDE_REPO according to the slide archetype, if available. If not, suggest a layout inspired by BCG/McKinsey slide layouts. " +
	"3. For each grid section, specify: " +
	"   - title: Section title " +
	"   - content: Key points (minimize content) " +
	"   - charts: an array of chart types (from CHART_REPO) relevant for this section " +
	"   - frameworks: an array of frameworks (from DATA_FRAMEWORKS) relevant for this section " +
	"Study BCG and McKinsey slide design patterns and suggest layouts and content sections that maximize clarity and impact for each section of each slide. " +
	"Also, build an executive-ready consulting deck with detailed, comprehensive content. Expand the storyline into detailed, actionable insights. " +
	"Use the provided repos to choose frameworks and chart types. " +
	"Be structured, comprehensive, and action-oriented. " +
	"Get numerical statistics and data from legit sources. " +
	"For financials, do deep analysis and calculations as needed. " +
	"Mention sources. Output strictly valid JSON matching the response schema."

// deckResponseSchema is embedded verbatim in the prompt; it constrains shape
// only by instruction, the decoder still treats the reply as untrusted.
const deckResponseSchema = `{
  "type": "object",
  "properties": {
    "optimized_storyline": {"type": "array", "items": {"type": "string"}},
    "context_analysis": {"type": "object"},
    "slides": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "slide_number": {"type": "number"},
          "title": {"type": "string"},
          "slide_archetype": {"type": "string"},
          "layout": {"type": "object", "properties": {"rows": {"type": "number"}, "columns": {"type": "number"}}, "required": ["rows", "columns"]},
          "sections": {"type": "array", "items": {"type": "object", "properties": {
            "row": {"type": "number"},
            "col": {"type": "number"},
            "title": {"type": "string"},
            "content": {"type": "string"},
            "charts": {"type": "array", "items": {"type": "string"}},
            "frameworks": {"type": "array", "items": {"type": "string"}}
          }, "required": ["row", "col", "content"]}},
          "visualization": {"type": "string"},
          "frameworks": {"type": "array", "items": {"type": "string"}},
          "content": {"type": "array", "items": {"type": "string"}},
          "takeaway": {"type": "string"},
          "call_to_action": {"type": "string"},
          "executive_summary": {"type": "string"},
          "detailed_analysis": {"type": "string"},
          "methodology": {"type": "string"},
          "data": {"type": "array"}
        },
        "required": ["slide_number","title","slide_archetype","layout","sections","visualization","frameworks","content","takeaway"]
      }
    },
    "recommendations": {"type": "array"}
  },
  "required": ["optimized_storyline","slides"]
}`

// promptJSON marshals prompt context; all inputs here marshal cleanly, so a
// failure degrades to an empty object rather than aborting the prompt.
func promptJSON(v any) []byte {
	b, err := jsonutil.MarshalNoEscape(v)
	if err != nil {
		return []byte("{}")
	}
	return b
}

func buildDeckPrompt(req *Request, summaries map[string]*tables.Summary, metrics map[string]float64) string {
	payload := map[string]any{
		"problem_statement": req.ProblemStatement,
		"storyline":         req.Storyline,
		"num_slides":        req.NumSlides,
		"data":              req.Data,
		"deep_analysis":     req.DeepAnalysis,
	}
	tableNames := make([]string, 0, len(req.TableData))
	for name := range req.TableData {
		tableNames = append(tableNames, name)
	}
	sort.Strings(tableNames)
	if len(tableNames) > 10 {
		tableNames = tableNames[:10]
	}
	sources := req.TableSources
	if sources == nil {
		sources = []map[string]any{}
	}

	var b strings.Builder
	b.WriteString("INPUT (JSON):\n")
	b.Write(promptJSON(payload))
	b.WriteString("\n\nREPOS (JSON):\n")
	b.Write(promptJSON(catalog.Repos()))
	b.WriteString("\n\nTABLE DATA / SOURCES:\n")
	b.Write(promptJSON(map[string]any{
		"table_sources":     sources,
		"table_data_sample": tableNames,
	}))
	b.WriteString("\n\nTABLE SUMMARIES (JSON):\n")
	b.Write(promptJSON(deck.SanitizeNumbers(summariesToMap(summaries))))
	b.WriteString("\n\nFINANCIAL METRICS (JSON):\n")
	b.Write(promptJSON(metrics))
	if req.DeepAnalysis {
		b.WriteString("\n\nIMPORTANT: Read the provided tables carefully, call out any specific data points used in your inferences, " +
			"and cite the table filename (from table_sources) where the data came from. " +
			"Include a top-level field `table_sources` in your response listing any sources referenced.")
	}
	b.WriteString("\n\nRESPONSE REQUIREMENTS:\n")
	b.WriteString("- Return only JSON that conforms to this schema:\n")
	b.WriteString(deckResponseSchema)
	b.WriteString(`
- For each slide, provide slide_archetype, layout (rows/columns), and sections (row, col, content) as described above.
- chart must be one of the chart names present in CHART_REPO and should be the most suitable one
- If chart is specified, compulsorily give relevant data with sources.
- For forecasts, use realistic, justifiable numbers and give 5 year forecasts with CAGR and sources.
- frameworks must be chosen from DATA_FRAMEWORKS names and should be the most suitable one
- Content should have relevant data points, numbers, and sources.
- Ensure slides length == num_slides and include slide_number 1..N
- Create detailed, comprehensive content with 3-4 bullet points per slide
- Expand storyline into detailed, actionable insights
- Include detailed_analysis and methodology fields for each slide
- Make content executive-ready with specific numbers, metrics and recommendations`)
	return b.String()
}

const infographicsSystemPrompt = "You are a consulting infographics expert. Return only valid JSON."

func buildInfographicsPrompt(sectionTitle, sectionContent string) string {
	return fmt.Sprintf(`Given the following section content, suggest the most relevant infographic types from this list:
%s
Section Title: %s
Section Content: %s
Only return a JSON array of infographic names that best visualize this section's information.`,
		promptJSON(catalog.InfographicNames()), sectionTitle, sectionContent)
}

const frameworkSystemPrompt = "You are a consulting frameworks expert. Return only valid JSON."

func buildFrameworkPrompt(framework, slideTitle, sectionTitle, sectionContent string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `For the following framework, provide a JSON object with the relevant fields filled in for this section context:
Framework: %s
Slide Title: %s
Section Title: %s
Section Content: %s
`, framework, slideTitle, sectionTitle, sectionContent)
	// Shape hints keep the model on the canonical keys for known frameworks.
	names := make([]string, 0, len(catalog.FrameworkFields))
	for name := range catalog.FrameworkFields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fields := catalog.FrameworkFields[name]
		parts := make([]string, len(fields))
		for i, f := range fields {
			parts[i] = fmt.Sprintf("%q: [...]", f)
		}
		fmt.Fprintf(&b, "If %q, return {%s}\n", name, strings.Join(parts, ", "))
	}
	b.WriteString("For other frameworks, return a dictionary with relevant keys and values.")
	return b.String()
}

const chartSystemPrompt = "You are a data visualization expert. Return only valid JSON."

func buildChartPrompt(chart, slideTitle, sectionTitle, sectionContent, problem string) string {
	return fmt.Sprintf(`You are a data visualization assistant. Your task is to generate **strictly valid JSON** for plotting charts.

Context:
- Chart Type: %s
- Slide Title: %s
- Section Title: %s
- Slide Content: %s
- Problem Statement (use this for data extraction if possible): %s

Instructions:
1. Always extract or infer structured numeric data from the Problem Statement or Section Content.
   - If no explicit numbers exist, invent a small but realistic dataset (3-6 entries).
   - Ensure data matches the specified chart type.

2. Output must be a **single JSON object** following the schema for the chart type:
   - For Bar/Line/Area/Pie/Donut/Doughnut charts: {"labels": ["Label1", ...], "values": [number, ...]}
   - For Waterfall charts: {"steps": ["Step1", ...], "values": [number, ...]}
   - For Scatter/Bubble charts: {"x": [number, ...], "y": [number, ...], "z": [number, ...]}
   - For Radar charts: {"labels": ["Dimension1", ...], "values": [number, ...]}
   - For other chart types: provide a dictionary with arrays for each axis/series.

3. Additionally include these **metadata fields** in the JSON:
   - "xAxisTitle": string
   - "yAxisTitle": string
   - "legend": string
   - "inferences": ["Insight1", "Insight2", ...]

4. Output Rules:
   - Return only **one JSON object** with no explanations or extra text.
   - Do not wrap JSON in code blocks.
   - Ensure JSON is syntactically valid.`, chart, slideTitle, sectionTitle, sectionContent, problem)
}

const sectionSystemPrompt = "You are a helpful assistant that writes concise, actionable slide bullets and, " +
	"when requested, suggests charts and frameworks in JSON format."

func buildSectionPrompt(title, content string, num int, includeCharts, includeFrameworks bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d NEW, non-redundant, actionable bullet points that EXPAND on the input section. ", num)
	b.WriteString("Do NOT merely rephrase the original content — add concrete, novel ideas, examples, or next steps that build on it. " +
		"Each bullet should be concise (1-2 sentences) and focused on practical recommendations or specific elaborations. " +
		"When helpful, include an example, metric, or brief suggested action.\n\n")
	fmt.Fprintf(&b, "Title: %s\nContent: %s\n\n", title, content)
	if includeCharts || includeFrameworks {
		b.WriteString("Return ONLY a JSON object with the following optional keys: 'bullets' (array of strings), " +
			"'charts' (array of objects), 'frameworks' (array of strings or objects). " +
			"Each chart object should include 'type' (one of known chart names, e.g., 'Bar Chart') and 'data' " +
			`(array of datapoints like [{"label":.., "value":..}]). ` +
			"Each framework should be a name from DATA_FRAMEWORKS; optionally include framework-specific data in a 'framework_data' object. " +
			"Do NOT include any extra text outside the JSON. Ensure valid JSON.")
	} else {
		b.WriteString(`IMPORTANT: Return ONLY a valid JSON array of strings (e.g. ["bullet 1", "bullet 2"]). ` +
			"Do not include any markdown, backticks, explanatory text, or trailing commas.")
	}
	return b.String()
}

const problemSystemPrompt = "You are a concise analyst. Return only JSON."

func buildProblemPrompt(problem string, answers []string) string {
	return fmt.Sprintf(`You are a helpful analyst. Given the following problem statement and optional user answers, produce a JSON object with keys:
- enriched: a polished, expanded problem statement suitable for generating slides (2-4 short paragraphs)
- data: an array of extracted or inferred data points or metrics (each item should be a dict with label and value when appropriate)
- sources: an array of strings listing plausible sources for the data (URLs or dataset names)

Input problem:
%s

User answers (if any):
%s

Return only valid JSON. Keep content concise and actionable.`, problem, strings.Join(answers, "\n"))
}

const paletteSystemPrompt = "You are a professional designer. Return only JSON."

const palettePrompt = `Provide a single JSON object with two keys: "name" (string) and "colors" (an array of exactly 6 hex color codes like '#1a2b3c'). ` +
	"Keep the response strictly as JSON with no extra commentary. The palette should be harmonious and suitable for professional consulting slides."
