package deck

import (
	"fmt"
	"strings"
)

// fillerText is used when every fallback source is exhausted.
const fillerText = "No content available."

type gridKey struct{ row, col int }

// ReconcileSections forces a slide's candidate sections into a complete
// row-major grid of exactly rows*columns cells. Candidates may be sparse,
// overlapping, unpositioned or empty; authored content is preserved wherever
// possible and every output cell ends with a unique in-range position and
// usable substance: non-blank content, or a chart/framework attachment.
//
// When two candidates claim the same cell, the later one in input order wins.
// That tie-break, like the cyclic reuse of data-series labels for filler
// text, mirrors the established behavior of the service and is deliberate.
func ReconcileSections(s *Slide) {
	if s == nil {
		return
	}
	if s.Layout.Rows < 1 {
		s.Layout.Rows = 1
	}
	if s.Layout.Columns < 1 {
		s.Layout.Columns = 1
	}
	rows, cols := s.Layout.Rows, s.Layout.Columns
	slots := rows * cols

	// Partition candidates. Positioned sections land in a cell map
	// (last-write-wins on collisions); the rest queue up for later placement.
	positioned := make(map[gridKey]*Section)
	var unpositioned []*Section
	for _, sec := range s.Sections {
		if sec == nil {
			continue
		}
		normalizeSection(sec)
		if sec.Row > 0 && sec.Col > 0 {
			positioned[gridKey{sec.Row, sec.Col}] = sec
		} else {
			unpositioned = append(unpositioned, sec)
		}
	}

	fallback := buildFallbackQueue(s)
	series := s.Data

	nextText := func(cyclicIdx int) string {
		if text, ok := fallback.pop(); ok {
			return text
		}
		if len(series) > 0 {
			if label := series[cyclicIdx%len(series)].Label; strings.TrimSpace(label) != "" {
				return label
			}
		}
		return fillerText
	}

	out := make([]*Section, 0, slots)
	filler := make([]bool, 0, slots) // cells whose content is synthesized, eligible for adoption
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			if sec, ok := positioned[gridKey{r, c}]; ok {
				if sectionEmpty(sec) {
					// Authored position but no substance: fill from the queue,
					// cycling the data series by row index once exhausted.
					sec.Content = nextText(r - 1)
					filler = append(filler, true)
				} else {
					filler = append(filler, false)
				}
				sec.Row, sec.Col = r, c
				out = append(out, sec)
				continue
			}
			title := s.Title
			if strings.TrimSpace(title) == "" {
				title = "Section"
			}
			out = append(out, &Section{
				Row:          r,
				Col:          c,
				Title:        fmt.Sprintf("%s - %d,%d", title, r, c),
				Content:      nextText(len(out)),
				Charts:       []string{},
				Frameworks:   []string{},
				Infographics: []string{},
			})
			filler = append(filler, true)
		}
	}

	// Give unpositioned candidates a home: each replaces the first cell that
	// still only carries synthesized filler. The adopted section takes the
	// cell's coordinates so the grid stays a perfect cross-product; leftovers
	// beyond the available filler cells are dropped.
	for _, sec := range unpositioned {
		placed := false
		for i, ns := range out {
			if !filler[i] || len(ns.Charts) > 0 || len(ns.Frameworks) > 0 {
				continue
			}
			sec.Row, sec.Col = ns.Row, ns.Col
			if strings.TrimSpace(sec.Content) == "" {
				sec.Content = ns.Content
			}
			out[i] = sec
			filler[i] = false
			placed = true
			break
		}
		if !placed {
			break
		}
	}

	// Guarded by construction, but cheap to keep honest.
	if len(out) > slots {
		out = out[:slots]
	}
	s.Sections = out
}

// normalizeSection guarantees the list-valued attachment fields are non-nil
// so downstream consumers and serialization never see null where a list is
// expected.
func normalizeSection(sec *Section) {
	if sec.Charts == nil {
		sec.Charts = []string{}
	}
	if sec.Frameworks == nil {
		sec.Frameworks = []string{}
	}
	if sec.Infographics == nil {
		sec.Infographics = []string{}
	}
}

// sectionEmpty reports whether a section carries no usable substance: blank
// content and no chart or framework attachments.
func sectionEmpty(sec *Section) bool {
	return strings.TrimSpace(sec.Content) == "" && len(sec.Charts) == 0 && len(sec.Frameworks) == 0
}

type textQueue struct {
	items []string
	idx   int
}

func (q *textQueue) pop() (string, bool) {
	for q.idx < len(q.items) {
		item := q.items[q.idx]
		q.idx++
		if strings.TrimSpace(item) != "" {
			return item, true
		}
	}
	return "", false
}

// buildFallbackQueue collects filler text in priority order: the slide's own
// content bullets, then its takeaway, then one derived line per labeled data
// point.
func buildFallbackQueue(s *Slide) *textQueue {
	q := &textQueue{}
	q.items = append(q.items, s.Content...)
	if strings.TrimSpace(s.Takeaway) != "" {
		q.items = append(q.items, s.Takeaway)
	}
	for _, p := range s.Data {
		if strings.TrimSpace(p.Label) != "" {
			q.items = append(q.items, "Data point: "+p.Label)
		}
	}
	return q
}
