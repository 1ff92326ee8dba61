package thesis

// InsightTable maps chart ids to a one-paragraph insight string used on
// chart pages. Loaded once at startup; lookups for unknown ids return
// the generic fallback instead of an empty string.
type InsightTable struct {
	byID     map[string]string
	fallback string
}

// NewInsightTable creates a table from the given entries and fallback.
func NewInsightTable(entries map[string]string, fallback string) *InsightTable {
	byID := make(map[string]string, len(entries))
	for id, text := range entries {
		byID[id] = text
	}
	return &InsightTable{byID: byID, fallback: fallback}
}

// Lookup returns the insight for id and whether a specific entry
// exists.
func (t *InsightTable) Lookup(id string) (string, bool) {
	text, ok := t.byID[id]
	return text, ok
}

// For returns the insight for id, or the generic fallback for unknown
// ids. Never empty.
func (t *InsightTable) For(id string) string {
	if text, ok := t.byID[id]; ok {
		return text
	}
	return t.fallback
}

// DefaultInsights returns the fixed chart insight table.
func DefaultInsights() *InsightTable {
	return NewInsightTable(map[string]string{
		"market-line":         "The CNS market shows consistent growth at 10.4% CAGR, reaching $254.6B by 2030, providing substantial runway for consolidation strategy.",
		"capital-doughnut":    "Strategic capital allocation prioritizes anchor acquisition (45%) and bolt-on growth (35%) with prudent reserves (20%).",
		"noetic-os-radar":     "NoeticOS platform capabilities span all critical operational areas, with particular strength in data/AI and go-to-market functions.",
		"platform-kpi-bar":    "Significant improvement opportunities exist across all KPIs, with integration speed and cross-sell rate showing highest potential impact.",
		"value-creation-dual": "Value creation accelerates through systematic revenue growth and margin expansion, reaching optimal scale by Year 4.",
		"return-bar":          "Multiple return scenarios demonstrate strong downside protection with significant upside potential in favorable market conditions.",
	}, "Key insights and analysis for this metric.")
}
