package thesis

import (
	"testing"
	"time"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noetic-labs/thesisd/internal/refdata"
)

func testBuilder(t *testing.T) *PlanBuilder {
	t.Helper()
	ds := refdata.Default()
	fixed := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	return NewPlanBuilder(ds, DefaultCharts(ds), DefaultInsights(), func() time.Time { return fixed })
}

func pick(t *testing.T, c *Catalog, ids ...string) []Selection {
	t.Helper()
	var sel []Selection
	for _, id := range ids {
		sel = c.Toggle(sel, id)
	}
	require.Len(t, sel, len(ids))
	return sel
}

func pageIDs(plan []Page) []string {
	out := make([]string, len(plan))
	for i, p := range plan {
		out[i] = p.ID
	}
	return out
}

func TestBuild_OrderedPlan(t *testing.T) {
	b := testBuilder(t)
	c := testCatalog(t)
	tpl, _ := TemplateByID("detailed-analysis")

	sel := pick(t, c, "market-line", "p0", RiskItemID)
	plan := b.Build(sel, tpl, DefaultOptions())

	assert.Equal(t,
		[]string{CoverPageID, SummaryPageID, "market-line", "p0", RiskPageID},
		pageIDs(plan))
	assert.Equal(t, 5, EstimatePages(plan, DefaultOptions()))
}

func TestBuild_Deterministic(t *testing.T) {
	b := testBuilder(t)
	c := testCatalog(t)
	tpl, _ := TemplateByID("investor-pitch")

	sel := pick(t, c, "return-bar", "p2", "market-line")
	first := b.Build(sel, tpl, DefaultOptions())
	second := b.Build(sel, tpl, DefaultOptions())

	assert.Equal(t, first, second)
}

func TestBuild_FollowsSelectionOrder(t *testing.T) {
	b := testBuilder(t)
	c := testCatalog(t)
	tpl, _ := TemplateByID("custom")

	sel := pick(t, c, "market-line", "capital-doughnut", "p1")
	sel = Reorder(sel, 2, 0)

	plan := b.Build(sel, tpl, DefaultOptions())
	assert.Equal(t,
		[]string{CoverPageID, SummaryPageID, "p1", "market-line", "capital-doughnut"},
		pageIDs(plan))
}

func TestBuild_CoverPage(t *testing.T) {
	b := testBuilder(t)
	c := testCatalog(t)
	tpl, _ := TemplateByID("executive-summary")

	plan := b.Build(pick(t, c, "market-line"), tpl, DefaultOptions())

	cover := plan[0]
	assert.Equal(t, PageCover, cover.Kind)
	assert.Equal(t, "Executive Summary", cover.TemplateName)
	assert.Equal(t, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC), cover.GeneratedAt)
}

func TestBuild_TogglesRemovePages(t *testing.T) {
	b := testBuilder(t)
	c := testCatalog(t)
	tpl, _ := TemplateByID("custom")

	opts := DefaultOptions()
	off := false
	opts = opts.Apply(OptionsPatch{Customization: &CustomizationPatch{
		IncludeCoverPage:        &off,
		IncludeExecutiveSummary: &off,
	}})

	plan := b.Build(pick(t, c, "market-line"), tpl, opts)
	assert.Equal(t, []string{"market-line"}, pageIDs(plan))
}

func TestBuild_MetricSelectionsEmitNothing(t *testing.T) {
	b := testBuilder(t)
	c := testCatalog(t)
	tpl, _ := TemplateByID("custom")

	sel := pick(t, c, "target-fund-size", "anchor-allocation")
	plan := b.Build(sel, tpl, DefaultOptions())

	assert.Equal(t, []string{CoverPageID, SummaryPageID}, pageIDs(plan))
}

func TestBuild_RiskPagesCollapse(t *testing.T) {
	b := testBuilder(t)
	tpl, _ := TemplateByID("custom")

	// Two risk selections can only come from a hand-built list, but the
	// builder still collapses them.
	sel := []Selection{
		{Item: Item{ID: RiskItemID, Kind: KindRisk, Title: "Risk Assessment"}, Order: 0, Selected: true},
		{Item: Item{ID: RiskItemID, Kind: KindRisk, Title: "Risk Assessment"}, Order: 1, Selected: true},
	}
	plan := b.Build(sel, tpl, DefaultOptions())
	assert.Equal(t, []string{CoverPageID, SummaryPageID, RiskPageID}, pageIDs(plan))
}

func TestBuild_RiskGroups(t *testing.T) {
	b := testBuilder(t)
	c := testCatalog(t)
	tpl, _ := TemplateByID("custom")

	plan := b.Build(pick(t, c, RiskItemID), tpl, DefaultOptions())
	risk := plan[len(plan)-1]

	require.Len(t, risk.RiskGroups, 3)
	assert.Equal(t, refdata.RiskHigh, risk.RiskGroups[0].Level)
	assert.Equal(t, refdata.RiskMedium, risk.RiskGroups[1].Level)
	assert.Equal(t, refdata.RiskLow, risk.RiskGroups[2].Level)
	assert.Len(t, risk.RiskGroups[0].Names, 2)
	assert.Len(t, risk.RiskGroups[1].Names, 3)
	assert.Len(t, risk.RiskGroups[2].Names, 1)
}

func TestBuild_ChartPageCarriesInsight(t *testing.T) {
	b := testBuilder(t)
	c := testCatalog(t)
	tpl, _ := TemplateByID("custom")

	plan := b.Build(pick(t, c, "market-line"), tpl, DefaultOptions())
	chart := plan[len(plan)-1]

	assert.Equal(t, PageChart, chart.Kind)
	assert.Equal(t, "market-line", chart.ChartID)
	assert.NotEmpty(t, chart.Insight)
	assert.NotEqual(t, "Key insights and analysis for this metric.", chart.Insight)
}

func TestBuild_PhasePage(t *testing.T) {
	b := testBuilder(t)
	c := testCatalog(t)
	tpl, _ := TemplateByID("custom")

	plan := b.Build(pick(t, c, "p1"), tpl, DefaultOptions())
	phase := plan[len(plan)-1]

	assert.Equal(t, PagePhase, phase.Kind)
	assert.NotEmpty(t, phase.Duration)
	require.NotEmpty(t, phase.Metrics)
	// Keys come out titleized
	for _, m := range phase.Metrics {
		first := rune(m.Key[0])
		assert.True(t, unicode.IsUpper(first), m.Key)
	}
}

func TestBuild_UnknownPhaseKeepsPlanTotal(t *testing.T) {
	b := testBuilder(t)
	tpl, _ := TemplateByID("custom")

	sel := []Selection{{Item: Item{ID: "p9", Kind: KindPhase, Title: "Phase 9"}, Order: 0, Selected: true}}
	plan := b.Build(sel, tpl, DefaultOptions())

	page := plan[len(plan)-1]
	assert.Equal(t, "p9", page.ID)
	assert.Empty(t, page.Duration)
	assert.Empty(t, page.Metrics)
}

func TestBuild_EmptySelections(t *testing.T) {
	b := testBuilder(t)
	tpl, _ := TemplateByID("custom")

	plan := b.Build(nil, tpl, DefaultOptions())
	assert.Equal(t, []string{CoverPageID, SummaryPageID}, pageIDs(plan))
}

func TestEstimatePages_Appendix(t *testing.T) {
	b := testBuilder(t)
	c := testCatalog(t)
	tpl, _ := TemplateByID("custom")

	opts := DefaultOptions()
	plan := b.Build(pick(t, c, "market-line"), tpl, opts)
	assert.Equal(t, 3, EstimatePages(plan, opts))

	on := true
	opts = opts.Apply(OptionsPatch{Customization: &CustomizationPatch{IncludeAppendix: &on}})
	assert.Equal(t, 4, EstimatePages(plan, opts))
}

func TestTitleizeKey(t *testing.T) {
	assert.Equal(t, "Ebitda Margin", TitleizeKey("ebitdaMargin"))
	assert.Equal(t, "Revenue Range", TitleizeKey("revenueRange"))
	assert.Equal(t, "Irr", TitleizeKey("irr"))
	assert.Equal(t, "", TitleizeKey(""))
}
