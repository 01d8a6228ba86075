package deck

import "math"

// SanitizeNumbers walks any JSON-like value and replaces non-finite floats
// (NaN, ±Inf) with nil. Everything else passes through with structure intact.
// Several producers — heuristic numeric coercion of table cells, extrapolated
// forecasts — can legitimately yield non-finite values, which are not
// representable on the wire. Pure and idempotent.
func SanitizeNumbers(v any) any {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil
		}
		return x
	case float32:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return x
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, vv := range x {
			out[k] = SanitizeNumbers(vv)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, vv := range x {
			out[i] = SanitizeNumbers(vv)
		}
		return out
	default:
		return v
	}
}

// Sanitize scrubs the dynamically shaped regions of a finished deck before it
// is returned or persisted. Typed numeric fields stay finite on their own:
// JSON numbers cannot encode NaN or Inf and Float rejects non-finite string
// coercions, so only the pass-through and enrichment payloads need the walk.
func (d *Deck) Sanitize() {
	if d == nil {
		return
	}
	if d.TableSummaries != nil {
		d.TableSummaries = SanitizeNumbers(d.TableSummaries).(map[string]any)
	}
	if d.FinancialMetrics != nil {
		d.FinancialMetrics = SanitizeNumbers(d.FinancialMetrics).(map[string]any)
	}
	if d.Recommendations != nil {
		d.Recommendations = SanitizeNumbers(d.Recommendations).([]any)
	}
	for _, s := range d.Slides {
		if s == nil {
			continue
		}
		for _, sec := range s.Sections {
			if sec == nil {
				continue
			}
			for i, fd := range sec.FrameworkData {
				if fd == nil {
					continue
				}
				sec.FrameworkData[i] = SanitizeNumbers(fd).(map[string]any)
			}
		}
	}
}
