package deck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireFullGrid(t *testing.T, s *Slide) {
	t.Helper()
	rows, cols := s.Layout.Rows, s.Layout.Columns
	require.Len(t, s.Sections, rows*cols)
	seen := map[[2]int]bool{}
	i := 0
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			sec := s.Sections[i]
			require.Equal(t, r, sec.Row)
			require.Equal(t, c, sec.Col)
			require.False(t, seen[[2]int{r, c}])
			seen[[2]int{r, c}] = true
			require.NotEmpty(t, sec.Content, "cell %d,%d", r, c)
			i++
		}
	}
}

func TestReconcile_FullGridFromSparseInput(t *testing.T) {
	s := &Slide{
		Title:  "Market Entry",
		Layout: Layout{Rows: 2, Columns: 3},
		Sections: []*Section{
			{Row: 1, Col: 1, Content: "Authored"},
			{Row: 2, Col: 3, Content: "Also authored"},
		},
		Content:  []string{"bullet one", "bullet two"},
		Takeaway: "the takeaway",
	}
	ReconcileSections(s)
	requireFullGrid(t, s)
	require.Equal(t, "Authored", s.Sections[0].Content)
	require.Equal(t, "Also authored", s.Sections[5].Content)
	// Synthesized cells take the fallback texts in row-major order.
	require.Equal(t, "bullet one", s.Sections[1].Content)
	require.Equal(t, "Market Entry - 1,2", s.Sections[1].Title)
}

func TestReconcile_CollisionLastWriteWins(t *testing.T) {
	s := &Slide{
		Layout: Layout{Rows: 1, Columns: 1},
		Sections: []*Section{
			{Row: 1, Col: 1, Content: "first"},
			{Row: 1, Col: 1, Content: "second"},
		},
	}
	ReconcileSections(s)
	require.Len(t, s.Sections, 1)
	require.Equal(t, "second", s.Sections[0].Content)
}

func TestReconcile_OutOfRangePositionTreatedAsUnpositioned(t *testing.T) {
	s := &Slide{
		Layout: Layout{Rows: 1, Columns: 2},
		Sections: []*Section{
			{Row: 0, Col: 5, Content: "floating"},
		},
		Content: []string{"filler"},
	}
	ReconcileSections(s)
	requireFullGrid(t, s)
	// The unpositioned candidate adopts the first synthesized cell.
	require.Equal(t, "floating", s.Sections[0].Content)
	require.Equal(t, 1, s.Sections[0].Row)
	require.Equal(t, 1, s.Sections[0].Col)
}

func TestReconcile_UnpositionedOverflowDropped(t *testing.T) {
	s := &Slide{
		Layout: Layout{Rows: 1, Columns: 1},
		Sections: []*Section{
			{Content: "keeper"},
			{Content: "dropped"},
		},
	}
	ReconcileSections(s)
	require.Len(t, s.Sections, 1)
	require.Equal(t, "keeper", s.Sections[0].Content)
}

func TestReconcile_ZeroCandidates(t *testing.T) {
	s := &Slide{
		Title:  "Empty",
		Layout: Layout{Rows: 2, Columns: 2},
		Data: []DataPoint{
			{Label: "Region A", Value: 1},
			{Label: "Region B", Value: 2},
		},
	}
	ReconcileSections(s)
	requireFullGrid(t, s)
	for _, sec := range s.Sections {
		require.NotEmpty(t, sec.Content)
	}
	// With no bullets or takeaway the queue goes straight to data labels.
	require.Equal(t, "Data point: Region A", s.Sections[0].Content)
}

func TestReconcile_SeriesLabelsCycleWhenQueueExhausted(t *testing.T) {
	s := &Slide{
		Layout: Layout{Rows: 1, Columns: 3},
		Data:   []DataPoint{{Label: "Only", Value: 1}},
	}
	ReconcileSections(s)
	requireFullGrid(t, s)
	// One queue item ("Data point: Only"), then the cyclic label fallback.
	require.Equal(t, "Data point: Only", s.Sections[0].Content)
	require.Equal(t, "Only", s.Sections[1].Content)
	require.Equal(t, "Only", s.Sections[2].Content)
}

func TestReconcile_FillerLiteralWhenNothingLeft(t *testing.T) {
	s := &Slide{Layout: Layout{Rows: 1, Columns: 2}}
	ReconcileSections(s)
	requireFullGrid(t, s)
	require.Equal(t, "No content available.", s.Sections[0].Content)
	require.Equal(t, "No content available.", s.Sections[1].Content)
}

func TestReconcile_NonPositiveDimensionsCoerced(t *testing.T) {
	for _, layout := range []Layout{{Rows: 0, Columns: 0}, {Rows: -2, Columns: 3}} {
		s := &Slide{Layout: layout, Content: []string{"x"}}
		ReconcileSections(s)
		require.GreaterOrEqual(t, s.Layout.Rows, 1)
		require.GreaterOrEqual(t, s.Layout.Columns, 1)
		requireFullGrid(t, s)
	}
}

func TestReconcile_EmptyPositionedCellFilled(t *testing.T) {
	s := &Slide{
		Layout: Layout{Rows: 1, Columns: 1},
		Sections: []*Section{
			{Row: 1, Col: 1, Content: "   "},
		},
		Takeaway: "insight",
	}
	ReconcileSections(s)
	require.Equal(t, "insight", s.Sections[0].Content)
}

func TestReconcile_ChartOnlySectionIsNotEmpty(t *testing.T) {
	s := &Slide{
		Layout: Layout{Rows: 1, Columns: 1},
		Sections: []*Section{
			{Row: 1, Col: 1, Charts: []string{"Bar Chart"}},
		},
	}
	ReconcileSections(s)
	require.Equal(t, []string{"Bar Chart"}, s.Sections[0].Charts)
	// A chart attachment counts as substance; content stays blank.
	require.Empty(t, s.Sections[0].Content)
}

func TestReconcile_LargeGridStaysConsistent(t *testing.T) {
	var candidates []*Section
	for i := 0; i < 7; i++ {
		candidates = append(candidates, &Section{Content: fmt.Sprintf("c%d", i)})
	}
	s := &Slide{
		Layout:   Layout{Rows: 3, Columns: 4},
		Sections: candidates,
		Content:  []string{"a", "b"},
	}
	ReconcileSections(s)
	requireFullGrid(t, s)
}
