package deck

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Decode converts a recovered JSON payload into a Deck, permissively. The
// model is not trusted to honor the response schema: missing fields default,
// unknown fields are dropped, and wrong-typed fields are coerced where a
// sensible reading exists (a bare string where a list was asked for becomes a
// one-element list) or replaced with the empty value where none does. Nothing
// dynamically shaped flows past this point.
func Decode(raw json.RawMessage) (*Deck, error) {
	var top map[string]any
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("deck: decode payload: %w", err)
	}

	d := &Deck{
		OptimizedStoryline: StringList(top["optimized_storyline"]),
		Recommendations:    anyList(top["recommendations"]),
	}
	for _, item := range anyList(top["slides"]) {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		d.Slides = append(d.Slides, decodeSlide(m))
	}
	return d, nil
}

func decodeSlide(m map[string]any) *Slide {
	s := &Slide{
		SlideNumber:      Int(m["slide_number"]),
		Title:            String(m["title"]),
		Archetype:        String(m["slide_archetype"]),
		Visualization:    String(m["visualization"]),
		Frameworks:       StringList(m["frameworks"]),
		Content:          StringList(m["content"]),
		Takeaway:         String(m["takeaway"]),
		CallToAction:     String(m["call_to_action"]),
		ExecutiveSummary: String(m["executive_summary"]),
		DetailedAnalysis: String(m["detailed_analysis"]),
		Methodology:      String(m["methodology"]),
		Data:             DataPoints(m["data"]),
	}
	if lm, ok := m["layout"].(map[string]any); ok {
		s.Layout = Layout{Rows: Int(lm["rows"]), Columns: Int(lm["columns"])}
	}
	for _, item := range anyList(m["sections"]) {
		sm, ok := item.(map[string]any)
		if !ok {
			continue
		}
		s.Sections = append(s.Sections, decodeSection(sm))
	}
	return s
}

func decodeSection(m map[string]any) *Section {
	return &Section{
		Row:        Int(m["row"]),
		Col:        Int(m["col"]),
		Title:      String(m["title"]),
		Content:    String(m["content"]),
		Charts:     StringList(m["charts"]),
		Frameworks: StringList(m["frameworks"]),
	}
}

// String coerces v to a string. Numbers are formatted, anything else that is
// not a string yields "".
func String(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// StringList coerces v to a list of strings. A bare string becomes a
// one-element list; list elements that are not strings are stringified when
// scalar and dropped otherwise. Blank entries are dropped.
func StringList(v any) []string {
	var out []string
	switch x := v.(type) {
	case string:
		if strings.TrimSpace(x) != "" {
			out = append(out, x)
		}
	case []any:
		for _, item := range x {
			s := String(item)
			if strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Int coerces v to an int; strings holding numbers are parsed, everything
// else yields 0.
func Int(v any) int {
	switch x := v.(type) {
	case float64:
		return int(x)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int(f)
		}
	case bool:
		if x {
			return 1
		}
	}
	return 0
}

// Float coerces v to a float64 plus an ok flag. Non-finite results are
// rejected: strconv accepts spellings like "Infinity" and "NaN", and a value
// that cannot be marshaled back out is worse than no value.
func Float(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case string:
		cleaned := strings.NewReplacer(",", "", "%", "", " ", "").Replace(x)
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// DataPoints coerces v to a list of data points, accepting either the
// label/value or the x/y/z form per element.
func DataPoints(v any) []DataPoint {
	var out []DataPoint
	for _, item := range anyList(v) {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		p := DataPoint{Label: String(m["label"])}
		if f, ok := Float(m["value"]); ok {
			p.Value = f
		}
		if f, ok := Float(m["x"]); ok {
			x := f
			p.X = &x
		}
		if f, ok := Float(m["y"]); ok {
			y := f
			p.Y = &y
		}
		if f, ok := Float(m["z"]); ok {
			z := f
			p.Z = &z
		}
		if p.Label == "" && p.X == nil && p.Y == nil && p.Value == 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FloatList coerces v to a list of float64, dropping elements that are not
// numeric.
func FloatList(v any) []float64 {
	var out []float64
	for _, item := range anyList(v) {
		if f, ok := Float(item); ok {
			out = append(out, f)
		}
	}
	return out
}

func anyList(v any) []any {
	if l, ok := v.([]any); ok {
		return l
	}
	return nil
}
