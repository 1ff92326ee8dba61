package thesis

// Template is an immutable presentation template: an ordered section
// list plus the default selection set used for compatibility scoring.
type Template struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Sections            []string `json:"sections"`
	DefaultSelectionIDs []string `json:"default_selection_ids"`
}

// Compatibility is the result of scoring a template against a
// selection list.
type Compatibility struct {
	MatchRatio    float64  `json:"match_ratio"`
	MatchingCount int      `json:"matching_count"`
	MissingIDs    []string `json:"missing_ids"`
}

// templates is the fixed catalog. Never mutated at runtime.
var templates = []Template{
	{
		ID:          "executive-summary",
		Name:        "Executive Summary",
		Description: "Concise overview perfect for board presentations and initial investor meetings",
		Sections: []string{
			"Cover Page",
			"Investment Thesis",
			"Market Opportunity",
			"Capital Strategy",
			"Key Metrics",
			"Risk Assessment",
			"Expected Returns",
		},
		DefaultSelectionIDs: []string{
			"market-line",
			"capital-doughnut",
			"return-bar",
			"risk-assessment",
			"target-fund-size",
		},
	},
	{
		ID:          "detailed-analysis",
		Name:        "Detailed Analysis",
		Description: "Comprehensive analysis with all phases and metrics for thorough due diligence",
		Sections: []string{
			"Cover Page",
			"Executive Summary",
			"Market Analysis",
			"Investment Strategy",
			"Phase 0: Foundation",
			"Phase 1: Anchor",
			"Phase 2: Bolt-Ons",
			"Phase 3: Scale",
			"Phase 4: Exit",
			"Financial Projections",
			"Risk Analysis",
			"Appendix",
		},
		DefaultSelectionIDs: []string{
			"market-line",
			"capital-doughnut",
			"noetic-os-radar",
			"platform-kpi-bar",
			"value-creation-dual",
			"return-bar",
			"p0", "p1", "p2", "p3", "p4",
			"risk-assessment",
		},
	},
	{
		ID:          "investor-pitch",
		Name:        "Investor Pitch",
		Description: "Focused pitch deck designed to generate investor interest and commitment",
		Sections: []string{
			"Title Slide",
			"Problem & Opportunity",
			"Solution Overview",
			"Market Size & Growth",
			"Business Model",
			"Competitive Advantage",
			"Financial Projections",
			"Investment Ask",
			"Use of Funds",
			"Team & Advisors",
			"Next Steps",
		},
		DefaultSelectionIDs: []string{
			"market-line",
			"value-creation-dual",
			"return-bar",
			"target-fund-size",
			"anchor-allocation",
		},
	},
	{
		ID:          "custom",
		Name:        "Custom Template",
		Description: "Flexible template that adapts to your selected content with minimal structure",
		Sections: []string{
			"Cover Page",
			"Selected Content",
			"Appendix",
		},
		DefaultSelectionIDs: []string{},
	},
}

// Templates returns the fixed template catalog, always the same four
// entries in the same order.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// TemplateByID returns the template with the given id.
func TemplateByID(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// Score computes how well a selection list covers a template's default
// set. The ratio is matching/len(defaults), defined as 1 for an empty
// default set, so the custom template always scores 1. MissingIDs
// preserves the template's declared default order. Total over any
// input, including an empty selection list.
func Score(tpl Template, selections []Selection) Compatibility {
	selected := make(map[string]struct{}, len(selections))
	for _, s := range selections {
		selected[s.ID] = struct{}{}
	}

	matching := 0
	missing := make([]string, 0)
	for _, id := range tpl.DefaultSelectionIDs {
		if _, ok := selected[id]; ok {
			matching++
		} else {
			missing = append(missing, id)
		}
	}

	ratio := 1.0
	if len(tpl.DefaultSelectionIDs) > 0 {
		ratio = float64(matching) / float64(len(tpl.DefaultSelectionIDs))
	}

	return Compatibility{MatchRatio: ratio, MatchingCount: matching, MissingIDs: missing}
}
