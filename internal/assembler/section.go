package assembler

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strings"

	"pitchmate/internal/deck"
	"pitchmate/internal/util/jsonutil"
)

// SectionRequest asks for extra bullet points for a sparse section.
type SectionRequest struct {
	Title             string `json:"title"`
	Content           string `json:"content"`
	NumPoints         int    `json:"num_points"`
	IncludeCharts     bool   `json:"include_charts"`
	IncludeFrameworks bool   `json:"include_frameworks"`
}

// SectionEnrichment is the section expansion result. Charts and Frameworks
// are present only when requested and returned.
type SectionEnrichment struct {
	Bullets    []string    `json:"bullets"`
	Charts     []ChartIdea `json:"charts,omitempty"`
	Frameworks []any       `json:"frameworks,omitempty"`
}

// ChartIdea is a suggested chart with inline data points.
type ChartIdea struct {
	Type string `json:"type"`
	Data []any  `json:"data"`
}

// cachedComplete runs a completion through the reply cache, keyed on the
// exact prompt pair. Enrichment prompts repeat often enough (same section,
// same palette ask) that this saves real tokens.
func (s *Service) cachedComplete(ctx context.Context, system, user string, temperature float32) (string, error) {
	sum := sha256.Sum256([]byte(system + "\x00" + user))
	key := hex.EncodeToString(sum[:])
	if text, ok := s.cache.Get(key); ok {
		return text, nil
	}
	text, err := s.complete(ctx, system, user, temperature)
	if err != nil {
		return "", err
	}
	s.cache.Add(key, text)
	return text, nil
}

// EnrichSection expands a section with new bullets and, on request, chart
// and framework suggestions. The model reply is recovered leniently; when
// nothing JSON-shaped survives, the raw text is split into bullet lines.
func (s *Service) EnrichSection(ctx context.Context, req *SectionRequest) (*SectionEnrichment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, &InputError{Field: "content", Msg: "required"}
	}
	num := req.NumPoints
	if num <= 0 {
		num = 3
	}

	prompt := buildSectionPrompt(req.Title, req.Content, num, req.IncludeCharts, req.IncludeFrameworks)
	text, err := s.cachedComplete(ctx, sectionSystemPrompt, prompt, 0.35)
	if err != nil {
		return nil, err
	}

	if raw, rerr := jsonutil.Recover(text); rerr == nil {
		if out, ok := parseSectionReply(raw, num, req); ok {
			return out, nil
		}
	}
	return &SectionEnrichment{Bullets: splitBullets(text, req.Content, num)}, nil
}

func parseSectionReply(raw json.RawMessage, num int, req *SectionRequest) (*SectionEnrichment, bool) {
	var arr []any
	if err := json.Unmarshal(raw, &arr); err == nil {
		bullets := deck.StringList(arr)
		if len(bullets) > num {
			bullets = bullets[:num]
		}
		return &SectionEnrichment{Bullets: bullets}, true
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	out := &SectionEnrichment{Bullets: deck.StringList(obj["bullets"])}
	if len(out.Bullets) == 0 {
		out.Bullets = deck.StringList(obj["enriched"])
	}
	if len(out.Bullets) > num {
		out.Bullets = out.Bullets[:num]
	}
	if out.Bullets == nil {
		out.Bullets = []string{}
	}

	if req.IncludeCharts {
		if items, ok := obj["charts"].([]any); ok {
			for _, item := range items {
				m, ok := item.(map[string]any)
				if !ok {
					continue
				}
				ctype := deck.String(m["type"])
				cdata, _ := m["data"].([]any)
				if ctype != "" && len(cdata) > 0 {
					out.Charts = append(out.Charts, ChartIdea{Type: ctype, Data: cdata})
				}
			}
		}
	}
	if req.IncludeFrameworks {
		switch fw := obj["frameworks"].(type) {
		case []any:
			out.Frameworks = fw
		case nil:
		default:
			out.Frameworks = []any{fw}
		}
	}
	return out, true
}

var bulletPrefix = regexp.MustCompile(`^\s*(?:\d+\.|[-•])\s*`)

// splitBullets is the legacy fallback: treat each non-blank line of the raw
// reply as a bullet, stripping list markers and stray quoting.
func splitBullets(text, content string, num int) []string {
	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		s := bulletPrefix.ReplaceAllString(strings.TrimSpace(line), "")
		s = strings.Trim(s, `"'`)
		s = strings.TrimSuffix(s, ",")
		s = strings.TrimSpace(s)
		if s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		if c := strings.TrimSpace(content); c != "" {
			cleaned = []string{c}
		}
	}
	if len(cleaned) > num {
		cleaned = cleaned[:num]
	}
	if cleaned == nil {
		cleaned = []string{}
	}
	return cleaned
}

// ProblemEnrichment is the polished problem statement plus extracted data.
type ProblemEnrichment struct {
	Enriched string   `json:"enriched"`
	Data     []any    `json:"data"`
	Sources  []string `json:"sources"`
}

// EnrichProblem expands a raw problem statement into deck-ready framing.
// When the reply cannot be recovered as JSON, the raw text becomes the
// enriched statement.
func (s *Service) EnrichProblem(ctx context.Context, problem string, answers []string) (*ProblemEnrichment, error) {
	if strings.TrimSpace(problem) == "" {
		return nil, &InputError{Field: "problem", Msg: "required"}
	}
	text, err := s.cachedComplete(ctx, problemSystemPrompt, buildProblemPrompt(problem, answers), 0.2)
	if err != nil {
		return nil, err
	}

	out := &ProblemEnrichment{Data: []any{}, Sources: []string{}}
	var obj map[string]any
	if rerr := jsonutil.RecoverInto(text, &obj); rerr != nil {
		out.Enriched = text
		return out, nil
	}
	out.Enriched = deck.String(obj["enriched"])
	if out.Enriched == "" {
		out.Enriched = text
	}
	if items, ok := obj["data"].([]any); ok {
		out.Data = items
	}
	out.Sources = deck.StringList(obj["sources"])
	if out.Sources == nil {
		out.Sources = []string{}
	}
	return out, nil
}

// Palette is a 6-color slide theme.
type Palette struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

var defaultPalette = Palette{
	Name:   "Default Consulting",
	Colors: []string{"#0f172a", "#1f6feb", "#10b981", "#f59e0b", "#ef4444", "#6b7280"},
}

var hexColor = regexp.MustCompile(`#[0-9a-fA-F]{6}`)

// SuggestPalette asks the model for a palette and falls back to the default
// on any failure. A reply that is not valid JSON but still contains six hex
// codes is salvaged by regex.
func (s *Service) SuggestPalette(ctx context.Context) Palette {
	text, err := s.cachedComplete(ctx, paletteSystemPrompt, palettePrompt, 0.35)
	if err != nil {
		return defaultPalette
	}

	var obj map[string]any
	if rerr := jsonutil.RecoverInto(text, &obj); rerr != nil {
		hexes := hexColor.FindAllString(text, -1)
		if len(hexes) >= 6 {
			return Palette{Name: "AI Palette", Colors: hexes[:6]}
		}
		return defaultPalette
	}

	colors := deck.StringList(obj["colors"])
	if len(colors) < 6 {
		return defaultPalette
	}
	name := deck.String(obj["name"])
	if name == "" {
		name = "AI Palette"
	}
	return Palette{Name: name, Colors: colors[:6]}
}
