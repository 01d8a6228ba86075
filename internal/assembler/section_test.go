package assembler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnrichSection_ArrayReply(t *testing.T) {
	svc := newTestService(func(system, user string) (string, error) {
		return `["first bullet", "second bullet", "third bullet", "fourth bullet"]`, nil
	})
	out, err := svc.EnrichSection(context.Background(), &SectionRequest{
		Title:     "Market sizing",
		Content:   "TAM is growing",
		NumPoints: 3,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"first bullet", "second bullet", "third bullet"}, out.Bullets)
	require.Empty(t, out.Charts)
	require.Empty(t, out.Frameworks)
}

func TestEnrichSection_ObjectReplyWithExtras(t *testing.T) {
	reply := `{"bullets":["b1","b2"],"charts":[{"type":"Bar Chart","data":[{"label":"A","value":1}]},{"type":"","data":[1]}],"frameworks":["SWOT Analysis"]}`
	svc := newTestService(func(system, user string) (string, error) { return reply, nil })
	out, err := svc.EnrichSection(context.Background(), &SectionRequest{
		Content:           "something",
		IncludeCharts:     true,
		IncludeFrameworks: true,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"b1", "b2"}, out.Bullets)
	// The chart with a blank type was skipped.
	require.Len(t, out.Charts, 1)
	require.Equal(t, "Bar Chart", out.Charts[0].Type)
	require.Equal(t, []any{"SWOT Analysis"}, out.Frameworks)
}

func TestEnrichSection_ExtrasIgnoredWhenNotRequested(t *testing.T) {
	reply := `{"bullets":["b1"],"charts":[{"type":"Bar Chart","data":[1]}],"frameworks":["SWOT Analysis"]}`
	svc := newTestService(func(system, user string) (string, error) { return reply, nil })
	out, err := svc.EnrichSection(context.Background(), &SectionRequest{Content: "c"})
	require.NoError(t, err)
	require.Empty(t, out.Charts)
	require.Empty(t, out.Frameworks)
}

func TestEnrichSection_ProseFallsBackToLineSplit(t *testing.T) {
	reply := "Here are some ideas\n1. Expand to APAC,\n- \"Cut costs\"\n• Hire locally\n\n"
	svc := newTestService(func(system, user string) (string, error) { return reply, nil })
	out, err := svc.EnrichSection(context.Background(), &SectionRequest{Content: "c", NumPoints: 3})
	require.NoError(t, err)
	require.Equal(t, []string{"Here are some ideas", "Expand to APAC", "Cut costs"}, out.Bullets)
}

func TestEnrichSection_Validation(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.EnrichSection(context.Background(), &SectionRequest{Content: "   "})
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	require.Equal(t, "content", inputErr.Field)
}

func TestEnrichSection_CompletionErrorPropagates(t *testing.T) {
	svc := newTestService(func(system, user string) (string, error) {
		return "", errors.New("provider down")
	})
	_, err := svc.EnrichSection(context.Background(), &SectionRequest{Content: "c"})
	require.Error(t, err)
}

func TestSplitBullets_ContentLastResort(t *testing.T) {
	got := splitBullets("\n  \n", "original content", 3)
	require.Equal(t, []string{"original content"}, got)

	got = splitBullets("", "", 3)
	require.Equal(t, []string{}, got)
}

func TestCachedComplete(t *testing.T) {
	calls := 0
	svc := newTestService(func(system, user string) (string, error) {
		calls++
		return `["a"]`, nil
	})
	req := &SectionRequest{Content: "same content"}
	_, err := svc.EnrichSection(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.EnrichSection(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestEnrichProblem(t *testing.T) {
	reply := `{"enriched":"A polished statement.","data":[{"label":"TAM","value":5}],"sources":["statista.com"]}`
	svc := newTestService(func(system, user string) (string, error) { return reply, nil })
	out, err := svc.EnrichProblem(context.Background(), "enter apac", []string{"B2B only"})
	require.NoError(t, err)
	require.Equal(t, "A polished statement.", out.Enriched)
	require.Len(t, out.Data, 1)
	require.Equal(t, []string{"statista.com"}, out.Sources)
}

func TestEnrichProblem_RawTextFallback(t *testing.T) {
	svc := newTestService(func(system, user string) (string, error) {
		return "not json, just prose about the problem", nil
	})
	out, err := svc.EnrichProblem(context.Background(), "enter apac", nil)
	require.NoError(t, err)
	require.Equal(t, "not json, just prose about the problem", out.Enriched)
	require.Equal(t, []any{}, out.Data)
	require.Equal(t, []string{}, out.Sources)
}

func TestEnrichProblem_Validation(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.EnrichProblem(context.Background(), "", nil)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestSuggestPalette(t *testing.T) {
	reply := `{"name":"Ocean","colors":["#111111","#222222","#333333","#444444","#555555","#666666","#777777"]}`
	svc := newTestService(func(system, user string) (string, error) { return reply, nil })
	p := svc.SuggestPalette(context.Background())
	require.Equal(t, "Ocean", p.Name)
	require.Len(t, p.Colors, 6)
	require.Equal(t, "#111111", p.Colors[0])
}

func TestSuggestPalette_RegexSalvage(t *testing.T) {
	reply := "Sure! Try #111111, #222222, #333333, #444444, #555555 and #666666."
	svc := newTestService(func(system, user string) (string, error) { return reply, nil })
	p := svc.SuggestPalette(context.Background())
	require.Equal(t, "AI Palette", p.Name)
	require.Equal(t, []string{"#111111", "#222222", "#333333", "#444444", "#555555", "#666666"}, p.Colors)
}

func TestSuggestPalette_Fallbacks(t *testing.T) {
	// Too few colors.
	svc := newTestService(func(system, user string) (string, error) {
		return `{"name":"Thin","colors":["#111111"]}`, nil
	})
	require.Equal(t, defaultPalette, svc.SuggestPalette(context.Background()))

	// Completion failure.
	svc = newTestService(func(system, user string) (string, error) {
		return "", errors.New("provider down")
	})
	require.Equal(t, defaultPalette, svc.SuggestPalette(context.Background()))
}
