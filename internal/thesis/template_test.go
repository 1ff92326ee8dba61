package thesis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_Registry(t *testing.T) {
	tpls := Templates()
	require.Len(t, tpls, 4)

	ids := make([]string, len(tpls))
	for i, tpl := range tpls {
		ids[i] = tpl.ID
	}
	assert.Equal(t,
		[]string{"executive-summary", "detailed-analysis", "investor-pitch", "custom"},
		ids)

	// Returned slice is a copy
	tpls[0].ID = "mutated"
	fresh := Templates()
	assert.Equal(t, "executive-summary", fresh[0].ID)
}

func TestTemplateByID(t *testing.T) {
	tpl, ok := TemplateByID("investor-pitch")
	require.True(t, ok)
	assert.Equal(t, "Investor Pitch", tpl.Name)

	_, ok = TemplateByID("unknown")
	assert.False(t, ok)
}

func TestScore_FullMatch(t *testing.T) {
	tpl, _ := TemplateByID("executive-summary")

	sel := make([]Selection, 0, len(tpl.DefaultSelectionIDs))
	for i, id := range tpl.DefaultSelectionIDs {
		sel = append(sel, Selection{Item: Item{ID: id}, Order: i, Selected: true})
	}

	score := Score(tpl, sel)
	assert.Equal(t, 1.0, score.MatchRatio)
	assert.Equal(t, len(tpl.DefaultSelectionIDs), score.MatchingCount)
	assert.Empty(t, score.MissingIDs)
}

func TestScore_PartialMatch(t *testing.T) {
	tpl := Template{
		ID:                  "t",
		DefaultSelectionIDs: []string{"a", "b", "c", "d"},
	}
	sel := []Selection{
		{Item: Item{ID: "b"}},
		{Item: Item{ID: "x"}}, // extras never penalize
	}

	score := Score(tpl, sel)
	assert.Equal(t, 0.25, score.MatchRatio)
	assert.Equal(t, 1, score.MatchingCount)
	// Missing ids keep the template's declared order
	assert.Equal(t, []string{"a", "c", "d"}, score.MissingIDs)
}

func TestScore_EmptySelections(t *testing.T) {
	tpl, _ := TemplateByID("detailed-analysis")

	score := Score(tpl, nil)
	assert.Equal(t, 0.0, score.MatchRatio)
	assert.Equal(t, 0, score.MatchingCount)
	assert.Equal(t, tpl.DefaultSelectionIDs, score.MissingIDs)
}

func TestScore_CustomAlwaysOne(t *testing.T) {
	tpl, _ := TemplateByID("custom")

	assert.Equal(t, 1.0, Score(tpl, nil).MatchRatio)
	assert.Equal(t, 1.0, Score(tpl, []Selection{{Item: Item{ID: "anything"}}}).MatchRatio)
}

func TestScore_BoundedRatio(t *testing.T) {
	for _, tpl := range Templates() {
		for _, sel := range [][]Selection{
			nil,
			{{Item: Item{ID: "market-line"}}},
			{{Item: Item{ID: "market-line"}}, {Item: Item{ID: "p0"}}, {Item: Item{ID: "risk-assessment"}}},
		} {
			score := Score(tpl, sel)
			assert.GreaterOrEqual(t, score.MatchRatio, 0.0)
			assert.LessOrEqual(t, score.MatchRatio, 1.0)
			assert.NotNil(t, score.MissingIDs)
		}
	}
}
