// Package assembler orchestrates deck generation: one big completion for the
// draft, deterministic repair of whatever came back, then a bounded fan-out
// of enrichment completions.
package assembler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"pitchmate/internal/deck"
	"pitchmate/internal/llm"
	"pitchmate/internal/tables"
	"pitchmate/internal/util/jsonutil"
)

// InputError rejects a request before any model call is made. Handlers map
// it to a 4xx; everything else is the service's fault.
type InputError struct {
	Field string
	Msg   string
}

func (e *InputError) Error() string { return "assembler: " + e.Field + ": " + e.Msg }

// Request is the deck generation input.
type Request struct {
	ProblemStatement string                  `json:"problem_statement"`
	Storyline        []string                `json:"storyline"`
	NumSlides        int                     `json:"num_slides"`
	Data             map[string]any          `json:"data,omitempty"`
	TableData        map[string]tables.Table `json:"table_data,omitempty"`
	TableSources     []map[string]any        `json:"table_sources,omitempty"`
	DeepAnalysis     bool                    `json:"deep_analysis,omitempty"`

	// Progress, when set, receives coarse stage names as generation advances.
	Progress func(stage string) `json:"-"`
}

const maxSlides = 30

func (r *Request) validate() error {
	if r.ProblemStatement == "" {
		return &InputError{Field: "problem_statement", Msg: "required"}
	}
	if r.NumSlides < 1 {
		return &InputError{Field: "num_slides", Msg: "must be at least 1"}
	}
	if r.NumSlides > maxSlides {
		return &InputError{Field: "num_slides", Msg: fmt.Sprintf("must be at most %d", maxSlides)}
	}
	return nil
}

func (r *Request) progress(stage string) {
	if r.Progress != nil {
		r.Progress(stage)
	}
}

// Options tune the service; zero values get sensible defaults.
type Options struct {
	Parallel    int           // max in-flight enrichment completions
	CallTimeout time.Duration // per enrichment completion
	CacheSize   int           // entries in the reply cache
}

// Service runs generation and enrichment against one LLM client.
type Service struct {
	llm      llm.Client
	log      *logrus.Logger
	parallel int
	timeout  time.Duration
	cache    *lru.Cache[string, string]
}

func New(client llm.Client, log *logrus.Logger, opts Options) *Service {
	if opts.Parallel <= 0 {
		opts.Parallel = 8
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 45 * time.Second
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 256
	}
	cache, _ := lru.New[string, string](opts.CacheSize)
	if log == nil {
		log = logrus.New()
	}
	return &Service{
		llm:      client,
		log:      log,
		parallel: opts.Parallel,
		timeout:  opts.CallTimeout,
		cache:    cache,
	}
}

// GenerateDeck produces a complete, grid-valid, JSON-safe deck. The only
// error it returns is an InputError: model failures degrade to the fallback
// deck and enrichment failures degrade to empty enrichment, never to an
// aborted request.
func (s *Service) GenerateDeck(ctx context.Context, req *Request) (*deck.Deck, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	summaries := tables.Summarize(req.TableData)
	metrics := tables.ExtractFinancialMetrics(req.TableData)

	req.progress("drafting")
	d := s.draftDeck(ctx, req, summaries, metrics)

	if d.ProblemStatement == "" {
		d.ProblemStatement = req.ProblemStatement
	}
	if len(d.OptimizedStoryline) == 0 {
		d.OptimizedStoryline = append([]string(nil), req.Storyline...)
	}
	if d.TableSources == nil {
		d.TableSources = req.TableSources
	}
	if d.TableSources == nil {
		d.TableSources = []map[string]any{}
	}
	d.TableSummaries = summariesToMap(summaries)
	d.FinancialMetrics = metricsToMap(metrics)

	req.progress("reconciling")
	fitSlideCount(d, req)
	for i, sl := range d.Slides {
		normalizeSlide(sl, i)
	}

	req.progress("enriching")
	s.enrichDeck(ctx, d, req.ProblemStatement)

	d.Sanitize()
	req.progress("done")
	s.log.WithFields(logrus.Fields{
		"slides": len(d.Slides),
		"tables": len(req.TableData),
	}).Info("deck generated")
	return d, nil
}

// draftDeck asks for the full deck in a single completion and repairs the
// reply. Any failure along the way yields the deterministic fallback deck.
func (s *Service) draftDeck(ctx context.Context, req *Request, summaries map[string]*tables.Summary, metrics map[string]float64) *deck.Deck {
	prompt := buildDeckPrompt(req, summaries, metrics)

	text, err := s.llm.Complete(ctx, deckSystemPrompt, prompt, 0.3)
	if err != nil {
		s.log.WithError(err).Warn("deck completion failed, using fallback deck")
		return fallbackDeck(req)
	}
	raw, err := jsonutil.Recover(text)
	if err != nil {
		s.log.WithError(err).Warn("deck reply unrecoverable, using fallback deck")
		return fallbackDeck(req)
	}
	d, err := deck.Decode(raw)
	if err != nil {
		s.log.WithError(err).Warn("deck reply undecodable, using fallback deck")
		return fallbackDeck(req)
	}
	return d
}

// fallbackDeck is the minimal complete deck built from the storyline alone.
func fallbackDeck(req *Request) *deck.Deck {
	d := &deck.Deck{
		OptimizedStoryline: append([]string(nil), req.Storyline...),
	}
	for i := 0; i < req.NumSlides; i++ {
		d.Slides = append(d.Slides, fallbackSlide(req, i))
	}
	return d
}

func fallbackSlide(req *Request, i int) *deck.Slide {
	content := []string{"Key point"}
	if i < len(req.Storyline) {
		content = []string{req.Storyline[i]}
	}
	return &deck.Slide{
		SlideNumber:      i + 1,
		Title:            fmt.Sprintf("Slide %d", i+1),
		Visualization:    "Bar Chart",
		Frameworks:       []string{},
		Content:          content,
		Takeaway:         "Key insight",
		CallToAction:     "Next steps",
		ExecutiveSummary: "Summary",
		Data:             []deck.DataPoint{},
	}
}

// fitSlideCount trims extra slides and pads missing ones before enrichment,
// so no completion is spent on a slide that would be thrown away.
func fitSlideCount(d *deck.Deck, req *Request) {
	if len(d.Slides) > req.NumSlides {
		d.Slides = d.Slides[:req.NumSlides]
	}
	for len(d.Slides) < req.NumSlides {
		d.Slides = append(d.Slides, fallbackSlide(req, len(d.Slides)))
	}
}

func normalizeSlide(sl *deck.Slide, i int) {
	// Renumber unconditionally: model-supplied numbers duplicate and skip.
	sl.SlideNumber = i + 1
	if sl.Visualization == "" {
		sl.Visualization = "Bar Chart"
	}
	if len(sl.Data) == 0 {
		sl.Data = deck.DefaultSeries(sl.Visualization)
	}
	deck.ReconcileSections(sl)
}

func summariesToMap(summaries map[string]*tables.Summary) map[string]any {
	out := make(map[string]any, len(summaries))
	for name, s := range summaries {
		b, err := jsonutil.MarshalNoEscape(s)
		if err != nil {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(b, &m); err != nil {
			continue
		}
		out[name] = m
	}
	return out
}

func metricsToMap(metrics map[string]float64) map[string]any {
	out := make(map[string]any, len(metrics))
	for k, v := range metrics {
		out[k] = v
	}
	return out
}
