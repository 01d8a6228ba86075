package assembler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"pitchmate/internal/llm"
)

func newTestService(fn func(system, user string) (string, error)) *Service {
	log := logrus.New()
	log.SetOutput(&strings.Builder{})
	return New(&llm.FakeClient{Fn: fn}, log, Options{Parallel: 4})
}

// scriptByPrompt routes completions on distinctive prompt markers so one fake
// serves the draft call and every enrichment call.
func scriptByPrompt(deckReply string, enrich func(user string) (string, error)) func(string, string) (string, error) {
	return func(system, user string) (string, error) {
		if strings.Contains(user, "RESPONSE REQUIREMENTS") {
			return deckReply, nil
		}
		if enrich != nil {
			return enrich(user)
		}
		return "{}", nil
	}
}

func baseRequest() *Request {
	return &Request{
		ProblemStatement: "Enter the APAC market",
		Storyline:        []string{"context", "analysis", "plan"},
		NumSlides:        3,
	}
}

func TestGenerateDeck_Validation(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	_, err := svc.GenerateDeck(ctx, &Request{NumSlides: 3})
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	require.Equal(t, "problem_statement", inputErr.Field)

	_, err = svc.GenerateDeck(ctx, &Request{ProblemStatement: "x", NumSlides: 0})
	require.ErrorAs(t, err, &inputErr)

	_, err = svc.GenerateDeck(ctx, &Request{ProblemStatement: "x", NumSlides: maxSlides + 1})
	require.ErrorAs(t, err, &inputErr)
}

func TestGenerateDeck_UnrecoverableReplyFallsBack(t *testing.T) {
	svc := newTestService(scriptByPrompt("this is not json at all", nil))
	d, err := svc.GenerateDeck(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Len(t, d.Slides, 3)
	require.Equal(t, "Slide 1", d.Slides[0].Title)
	require.Equal(t, []string{"context"}, d.Slides[0].Content)
	require.Equal(t, "Key insight", d.Slides[0].Takeaway)
	require.Equal(t, []string{"context", "analysis", "plan"}, d.OptimizedStoryline)
}

func TestGenerateDeck_CompletionErrorFallsBack(t *testing.T) {
	svc := newTestService(func(system, user string) (string, error) {
		return "", errors.New("provider down")
	})
	d, err := svc.GenerateDeck(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Len(t, d.Slides, 3)
	require.Equal(t, "Enter the APAC market", d.ProblemStatement)
}

func TestGenerateDeck_SlideCountFitted(t *testing.T) {
	// Model returns one slide, request wants three.
	reply := `{"optimized_storyline":["a"],"slides":[{"slide_number":1,"title":"Only","layout":{"rows":1,"columns":1},"sections":[],"visualization":"Bar Chart","content":["x"],"takeaway":"t"}]}`
	svc := newTestService(scriptByPrompt(reply, nil))
	d, err := svc.GenerateDeck(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Len(t, d.Slides, 3)
	require.Equal(t, "Only", d.Slides[0].Title)
	require.Equal(t, "Slide 2", d.Slides[1].Title)
	for i, s := range d.Slides {
		require.Equal(t, i+1, s.SlideNumber)
		require.NotEmpty(t, s.Data, "slide %d must have a plottable series", i+1)
		require.Len(t, s.Sections, s.Layout.Rows*s.Layout.Columns)
	}
}

func TestGenerateDeck_RenumbersDuplicateSlideNumbers(t *testing.T) {
	// Model claims slide_number 5 twice; the deck must come back as 1..N.
	reply := `{"optimized_storyline":["a","b","c"],"slides":[` +
		`{"slide_number":5,"title":"First","layout":{"rows":1,"columns":1},"sections":[],"visualization":"Bar Chart","content":["x"],"takeaway":"t"},` +
		`{"slide_number":5,"title":"Second","layout":{"rows":1,"columns":1},"sections":[],"visualization":"Bar Chart","content":["y"],"takeaway":"t"},` +
		`{"slide_number":2,"title":"Third","layout":{"rows":1,"columns":1},"sections":[],"visualization":"Bar Chart","content":["z"],"takeaway":"t"}]}`
	svc := newTestService(scriptByPrompt(reply, nil))
	d, err := svc.GenerateDeck(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Len(t, d.Slides, 3)
	for i, s := range d.Slides {
		require.Equal(t, i+1, s.SlideNumber)
	}
	require.Equal(t, "First", d.Slides[0].Title)
	require.Equal(t, "Third", d.Slides[2].Title)
}

func TestGenerateDeck_FencedReplyRecovered(t *testing.T) {
	reply := "```json\n" + `{"optimized_storyline":["a","b","c"],"slides":[` +
		`{"slide_number":1,"title":"S1","layout":{"rows":1,"columns":2},"sections":[{"row":1,"col":1,"content":"left"}],"visualization":"Pie Chart","content":["one"],"takeaway":"t1"},` +
		`{"slide_number":2,"title":"S2","layout":{"rows":1,"columns":1},"sections":[],"visualization":"Line Chart","content":["two"],"takeaway":"t2"},` +
		`{"slide_number":3,"title":"S3","layout":{"rows":1,"columns":1},"sections":[],"visualization":"Bar Chart","content":["three"],"takeaway":"t3"},]}` + "\n```"
	svc := newTestService(scriptByPrompt(reply, nil))
	d, err := svc.GenerateDeck(context.Background(), baseRequest())
	require.NoError(t, err)
	require.Len(t, d.Slides, 3)
	require.Equal(t, "S1", d.Slides[0].Title)
	// The sparse 1x2 grid was completed.
	require.Len(t, d.Slides[0].Sections, 2)
	require.Equal(t, "left", d.Slides[0].Sections[0].Content)
	// Pie visualization got the pie placeholder series.
	require.Equal(t, "Market Leader", d.Slides[0].Data[0].Label)
}

func TestGenerateDeck_EnrichmentFaultIsolation(t *testing.T) {
	reply := `{"optimized_storyline":["a","b","c"],"slides":[{"slide_number":1,"title":"S1","layout":{"rows":1,"columns":2},"sections":[` +
		`{"row":1,"col":1,"content":"good","charts":["Bar Chart"],"frameworks":["SWOT Analysis"]},` +
		`{"row":1,"col":2,"content":"bad","charts":["Line Chart"],"frameworks":["PEST Analysis"]}` +
		`],"visualization":"Bar Chart","content":["x"],"takeaway":"t"}]}`

	enrich := func(user string) (string, error) {
		if strings.Contains(user, "Section Content: bad") || strings.Contains(user, "Slide Content: bad") {
			return "", errors.New("boom")
		}
		if strings.Contains(user, "infographic") {
			return `["Process Flow"]`, nil
		}
		if strings.Contains(user, "Chart Type:") {
			return `{"labels":["A"],"values":[1],"xAxisTitle":"X","yAxisTitle":"Y","legend":"L","inferences":["i"]}`, nil
		}
		// framework prompt
		return `{"Strengths":["s1"],"Weaknesses":["w1"]}`, nil
	}

	req := baseRequest()
	req.NumSlides = 1
	svc := newTestService(scriptByPrompt(reply, enrich))
	d, err := svc.GenerateDeck(context.Background(), req)
	require.NoError(t, err)

	good := d.Slides[0].Sections[0]
	bad := d.Slides[0].Sections[1]

	// Healthy section got real enrichment.
	require.Equal(t, []string{"Process Flow"}, good.Infographics)
	require.Equal(t, "X", good.ChartData["Bar Chart"].XAxisTitle)
	require.Equal(t, []string{"A"}, good.ChartData["Bar Chart"].Labels)
	require.Len(t, good.FrameworkData, 1)
	require.Contains(t, good.FrameworkData[0], "SWOT Analysis")

	// Failed section degraded to defaults instead of sinking the request.
	require.Equal(t, []string{}, bad.Infographics)
	require.Equal(t, "Not available", bad.ChartData["Line Chart"].XAxisTitle)
	require.Equal(t, []string{}, bad.ChartData["Line Chart"].Inferences)
	require.Len(t, bad.FrameworkData, 1)
	require.Equal(t, map[string]any{"PEST Analysis": map[string]any{}}, bad.FrameworkData[0])
}

func TestGenerateDeck_TabularFrameworkPadded(t *testing.T) {
	reply := `{"optimized_storyline":["a"],"slides":[{"slide_number":1,"title":"S","layout":{"rows":1,"columns":1},"sections":[` +
		`{"row":1,"col":1,"content":"c","frameworks":["BCG Matrix"]}` +
		`],"visualization":"Bar Chart","content":["x"],"takeaway":"t"}]}`
	enrich := func(user string) (string, error) {
		if strings.Contains(user, "infographic") {
			return `[]`, nil
		}
		return `{"Stars":["a","b"],"Dogs":["c"]}`, nil
	}
	req := baseRequest()
	req.NumSlides = 1
	svc := newTestService(scriptByPrompt(reply, enrich))
	d, err := svc.GenerateDeck(context.Background(), req)
	require.NoError(t, err)

	fd := d.Slides[0].Sections[0].FrameworkData[0]
	inner := fd["BCG Matrix"].(map[string]any)
	require.Equal(t, []any{"a", "b"}, inner["Stars"])
	// Shorter columns are padded to the longest with nils.
	require.Equal(t, []any{"c", nil}, inner["Dogs"])
}

func TestGenerateDeck_ProgressStages(t *testing.T) {
	var stages []string
	req := baseRequest()
	req.Progress = func(stage string) { stages = append(stages, stage) }

	svc := newTestService(scriptByPrompt("garbage", nil))
	_, err := svc.GenerateDeck(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, []string{"drafting", "reconciling", "enriching", "done"}, stages)
}

func TestTabularize(t *testing.T) {
	_, ok := tabularize(map[string]any{"a": []any{1}, "b": "scalar"})
	require.False(t, ok)
	_, ok = tabularize(map[string]any{})
	require.False(t, ok)

	out, ok := tabularize(map[string]any{"a": []any{1, 2, 3}, "b": []any{}})
	require.True(t, ok)
	require.Equal(t, []any{nil, nil, nil}, out["b"])
}
