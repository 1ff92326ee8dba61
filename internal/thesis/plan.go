package thesis

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/noetic-labs/thesisd/internal/refdata"
)

// Plan page ids that are not selection ids.
const (
	CoverPageID   = "cover"
	SummaryPageID = "executive-summary"
	RiskPageID    = "risk-assessment"
)

// PlanBuilder derives page plans from selections, a template and
// export options. Build is pure and deterministic: the clock is
// injected so the cover timestamp is captured at build time and two
// builds from the same inputs differ only in that timestamp.
type PlanBuilder struct {
	dataset  *refdata.Dataset
	charts   *ChartRegistry
	insights *InsightTable
	now      func() time.Time
}

// NewPlanBuilder wires a builder over the immutable registries.
func NewPlanBuilder(ds *refdata.Dataset, charts *ChartRegistry, insights *InsightTable, now func() time.Time) *PlanBuilder {
	if now == nil {
		now = time.Now
	}
	return &PlanBuilder{dataset: ds, charts: charts, insights: insights, now: now}
}

// Build produces the ordered page plan. Total: any well-typed input,
// including empty selections, yields a plan without error.
//
// Ordering: optional cover, optional executive summary, then one page
// per selection in ascending Order — except that metric selections
// emit nothing and all risk selections collapse into a single risk
// page.
func (b *PlanBuilder) Build(selections []Selection, tpl Template, opts ExportOptions) []Page {
	plan := make([]Page, 0, len(selections)+2)

	if opts.Customization.IncludeCoverPage {
		plan = append(plan, Page{
			ID:           CoverPageID,
			Title:        "Cover Page",
			Kind:         PageCover,
			GeneratedAt:  b.now(),
			TemplateName: tpl.Name,
		})
	}

	if opts.Customization.IncludeExecutiveSummary {
		plan = append(plan, b.summaryPage())
	}

	ordered := make([]Selection, len(selections))
	copy(ordered, selections)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	riskEmitted := false
	for _, sel := range ordered {
		switch sel.Kind {
		case KindChart:
			plan = append(plan, Page{
				ID:      sel.ID,
				Title:   sel.Title,
				Kind:    PageChart,
				ChartID: sel.ID,
				Insight: b.insights.For(sel.ID),
			})
		case KindPhase:
			plan = append(plan, b.phasePage(sel))
		case KindRisk:
			// Risk data is a singleton; multiple risk selections
			// still produce exactly one page.
			if riskEmitted {
				continue
			}
			riskEmitted = true
			plan = append(plan, b.riskPage())
		case KindMetric:
			// Metric selections only affect template scoring.
		}
	}

	return plan
}

func (b *PlanBuilder) summaryPage() Page {
	fundSize, _ := b.dataset.CapitalPlan.Get("targetFundSize")
	return Page{
		ID:    SummaryPageID,
		Title: "Executive Summary",
		Kind:  PageSummary,
		SummaryMetrics: refdata.Entries{
			{Key: "Target Fund Size", Value: fundSize},
			{Key: "Revenue CAGR", Value: "25%+"},
			{Key: "Target IRR", Value: "15-25%"},
		},
	}
}

func (b *PlanBuilder) phasePage(sel Selection) Page {
	page := Page{ID: sel.ID, Title: sel.Title, Kind: PagePhase}
	phase, ok := b.dataset.Phase(sel.ID)
	if !ok {
		// Unknown phase ids keep the plan total: an empty page
		// body rather than an error.
		return page
	}
	page.Title = phase.Title
	page.Duration = phase.Duration
	page.Metrics = make(refdata.Entries, 0, len(phase.Metrics))
	for _, m := range phase.Metrics {
		page.Metrics = append(page.Metrics, refdata.Entry{Key: TitleizeKey(m.Key), Value: m.Value})
	}
	return page
}

func (b *PlanBuilder) riskPage() Page {
	groups := make([]RiskGroup, 0, 3)
	for _, level := range []refdata.RiskLevel{refdata.RiskHigh, refdata.RiskMedium, refdata.RiskLow} {
		names := make([]string, 0)
		for _, r := range b.dataset.RisksByLevel(level) {
			names = append(names, r.Name)
		}
		groups = append(groups, RiskGroup{Level: level, Names: names})
	}
	return Page{
		ID:         RiskPageID,
		Title:      "Risk Assessment",
		Kind:       PageRisk,
		RiskGroups: groups,
	}
}

// EstimatePages is the page count shown in the export summary. The
// appendix is reserved: it adds one to the estimate when enabled even
// though no appendix page is emitted yet.
func EstimatePages(plan []Page, opts ExportOptions) int {
	n := len(plan)
	if opts.Customization.IncludeAppendix {
		n++
	}
	return n
}

// TitleizeKey converts a camelCase metric key to space-separated title
// case: "ebitdaMargin" becomes "Ebitda Margin".
func TitleizeKey(key string) string {
	var sb strings.Builder
	sb.Grow(len(key) + 4)
	for i, r := range key {
		if i == 0 {
			sb.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
