package assembler

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"pitchmate/internal/deck"
	"pitchmate/internal/util/jsonutil"
)

// enrichDeck runs the per-section enrichment completions with bounded
// parallelism. Every task absorbs its own failure and writes a usable
// default, so one bad completion never poisons a neighboring section.
//
// Each task owns a distinct write target fixed before the fan-out starts:
// the infographics slice, one pre-sized framework slot, or the single
// chart-data entry. No two tasks share a target.
func (s *Service) enrichDeck(ctx context.Context, d *deck.Deck, problem string) {
	g := new(errgroup.Group)
	g.SetLimit(s.parallel)

	for _, sl := range d.Slides {
		for _, sec := range sl.Sections {
			sl, sec := sl, sec
			sec.Infographics = []string{}
			sec.ChartData = map[string]deck.ChartData{}
			sec.FrameworkData = make([]map[string]any, len(sec.Frameworks))

			g.Go(func() error {
				sec.Infographics = s.suggestInfographics(ctx, sec)
				return nil
			})
			for i, fw := range sec.Frameworks {
				i, fw := i, fw
				g.Go(func() error {
					sec.FrameworkData[i] = map[string]any{fw: s.frameworkData(ctx, fw, sl.Title, sec)}
					return nil
				})
			}
			if len(sec.Charts) > 0 {
				chart := sec.Charts[0]
				g.Go(func() error {
					sec.ChartData[chart] = s.chartData(ctx, chart, sl.Title, sec, problem)
					return nil
				})
			}
		}
	}
	g.Wait() // tasks never return errors
}

// complete runs one enrichment completion under the per-call timeout.
func (s *Service) complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.llm.Complete(ctx, system, user, temperature)
}

func (s *Service) suggestInfographics(ctx context.Context, sec *deck.Section) []string {
	text, err := s.complete(ctx, infographicsSystemPrompt, buildInfographicsPrompt(sec.Title, sec.Content), 0.2)
	if err != nil {
		return []string{}
	}
	var items []any
	if err := jsonutil.RecoverInto(text, &items); err != nil {
		return []string{}
	}
	names := deck.StringList(items)
	if names == nil {
		return []string{}
	}
	return names
}

// frameworkData returns the framework's filled-in payload, or an empty
// object when the completion or parse fails.
func (s *Service) frameworkData(ctx context.Context, framework, slideTitle string, sec *deck.Section) any {
	text, err := s.complete(ctx, frameworkSystemPrompt, buildFrameworkPrompt(framework, slideTitle, sec.Title, sec.Content), 0.2)
	if err != nil {
		return map[string]any{}
	}
	var payload map[string]any
	if err := jsonutil.RecoverInto(text, &payload); err != nil {
		return map[string]any{}
	}
	if tab, ok := tabularize(payload); ok {
		return tab
	}
	return payload
}

// tabularize detects the all-columns shape (every value a list) and pads the
// columns to equal length with nils, so the frontend can render the payload
// as a table without ragged rows.
func tabularize(payload map[string]any) (map[string]any, bool) {
	if len(payload) == 0 {
		return nil, false
	}
	maxLen := 0
	for _, v := range payload {
		col, ok := v.([]any)
		if !ok {
			return nil, false
		}
		if len(col) > maxLen {
			maxLen = len(col)
		}
	}
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		col := v.([]any)
		for len(col) < maxLen {
			col = append(col, nil)
		}
		out[k] = col
	}
	return out, true
}

var chartDataFallback = deck.ChartData{
	XAxisTitle: "Not available",
	YAxisTitle: "Not available",
	Legend:     "Not available",
	Inferences: []string{},
}

func (s *Service) chartData(ctx context.Context, chart, slideTitle string, sec *deck.Section, problem string) deck.ChartData {
	text, err := s.complete(ctx, chartSystemPrompt, buildChartPrompt(chart, slideTitle, sec.Title, sec.Content, problem), 0.3)
	if err != nil {
		return chartDataFallback
	}
	raw, err := jsonutil.Recover(text)
	if err != nil {
		return chartDataFallback
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return chartDataFallback
	}
	m, _ = deck.SanitizeNumbers(m).(map[string]any)

	cd := deck.ChartData{
		XAxisTitle: deck.String(m["xAxisTitle"]),
		YAxisTitle: deck.String(m["yAxisTitle"]),
		Legend:     deck.String(m["legend"]),
		Inferences: deck.StringList(m["inferences"]),
		Labels:     deck.StringList(m["labels"]),
		Values:     deck.FloatList(m["values"]),
		Steps:      deck.StringList(m["steps"]),
		X:          deck.FloatList(m["x"]),
		Y:          deck.FloatList(m["y"]),
		Z:          deck.FloatList(m["z"]),
	}
	if cd.XAxisTitle == "" {
		cd.XAxisTitle = "Not available"
	}
	if cd.YAxisTitle == "" {
		cd.YAxisTitle = "Not available"
	}
	if cd.Legend == "" {
		cd.Legend = "Not available"
	}
	if cd.Inferences == nil {
		cd.Inferences = []string{}
	}
	return cd
}
