package export

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/noetic-labs/thesisd/internal/errors"
	"github.com/noetic-labs/thesisd/internal/refdata"
	"github.com/noetic-labs/thesisd/internal/thesis"
)

// Branding strings shared by every export.
const (
	deckTitle   = "Noetic 2.0 - Strategic Transformation Investment Thesis"
	deckSubject = "Investment Thesis"
	deckAuthor  = "David C. Nichols"
	deckCompany = "Noetic 2.0"
	wordmark    = "NOETIC 2.0"
	tagline     = "Strategic Transformation: From Venture Fund to CNS Operating Company"
)

var mitigationStrategies = []string{
	"Experienced management team with proven track record",
	"Conservative financial modeling with stress testing",
	"Diversified acquisition pipeline across CNS verticals",
	"Strong operational playbook via NoeticOS platform",
}

var valueDrivers = []string{
	"Market-leading anchor acquisition in neurodiagnostics",
	"Systematic bolt-on acquisition program",
	"Platform-wide operational improvements via NoeticOS",
	"Multiple exit pathways with 6-8x revenue multiples",
}

// Composer maps page plans to the abstract layout tree. The chart
// registry supplies placeholder captions for chart pages.
type Composer struct {
	charts *thesis.ChartRegistry
}

// NewComposer creates a composer over the chart registry.
func NewComposer(charts *thesis.ChartRegistry) *Composer {
	return &Composer{charts: charts}
}

// Compose builds the layout tree for a plan. One slide per page,
// in plan order, every page kind supported. An unknown page kind is a
// programming error and fails the whole export.
func (c *Composer) Compose(plan []thesis.Page) (Deck, error) {
	deck := Deck{
		Title:   deckTitle,
		Subject: deckSubject,
		Author:  deckAuthor,
		Company: deckCompany,
		Slides:  make([]Slide, 0, len(plan)),
	}

	for _, page := range plan {
		slide, err := c.composePage(page)
		if err != nil {
			return Deck{}, err
		}
		if page.Kind == thesis.PageCover {
			deck.GeneratedAt = page.GeneratedAt
		}
		deck.Slides = append(deck.Slides, slide)
	}
	if deck.GeneratedAt.IsZero() {
		deck.GeneratedAt = time.Now()
	}

	return deck, nil
}

func (c *Composer) composePage(page thesis.Page) (Slide, error) {
	switch page.Kind {
	case thesis.PageCover:
		return c.coverSlide(page), nil
	case thesis.PageSummary:
		return c.summarySlide(page), nil
	case thesis.PageChart:
		return c.chartSlide(page), nil
	case thesis.PagePhase:
		return c.phaseSlide(page), nil
	case thesis.PageRisk:
		return c.riskSlide(page), nil
	default:
		return Slide{}, apperrors.NewExportError("compose", "layout",
			fmt.Errorf("%w: unknown page kind %q", apperrors.ErrRenderFailure, page.Kind))
	}
}

func (c *Composer) coverSlide(page thesis.Page) Slide {
	return Slide{
		PageID:    page.ID,
		Title:     page.Title,
		Kind:      page.Kind,
		FullBleed: true,
		Blocks: []Block{
			Heading{Text: wordmark, Level: 1},
			Heading{Text: "Investment Thesis", Level: 2},
			Paragraph{Text: tagline},
			MetricBoxes{Boxes: []MetricBox{
				{Value: "$140B+", Label: "Market"},
				{Value: "10.4%", Label: "CAGR"},
				{Value: "Infrastructure-Led", Label: "Strategy"},
			}},
			Paragraph{Text: fmt.Sprintf("Prepared by: %s\nDate: %s\nTemplate: %s",
				deckAuthor, page.GeneratedAt.Format("1/2/2006"), page.TemplateName)},
		},
	}
}

func (c *Composer) summarySlide(page thesis.Page) Slide {
	boxes := make([]MetricBox, 0, len(page.SummaryMetrics))
	for _, m := range page.SummaryMetrics {
		boxes = append(boxes, MetricBox{Value: m.Value, Label: m.Key})
	}
	return Slide{
		PageID: page.ID,
		Title:  page.Title,
		Kind:   page.Kind,
		Blocks: []Block{
			Heading{Text: page.Title, Level: 1},
			Heading{Text: "Investment Opportunity", Level: 2},
			Paragraph{Text: "Noetic 2.0 represents a strategic transformation from venture fund to CNS operating company, targeting the $140B+ central nervous system market with an infrastructure-led consolidation strategy."},
			MetricBoxes{Boxes: boxes},
			Heading{Text: "Key Value Drivers", Level: 2},
			Bullets{Items: valueDrivers},
		},
	}
}

func (c *Composer) chartSlide(page thesis.Page) Slide {
	caption := "Chart visualization"
	if chart, ok := c.charts.Get(page.ChartID); ok {
		caption = chart.Caption()
	}
	return Slide{
		PageID: page.ID,
		Title:  page.Title,
		Kind:   page.Kind,
		Blocks: []Block{
			Heading{Text: page.Title, Level: 1},
			ChartBox{ChartID: page.ChartID, Title: page.Title, Caption: caption},
			Heading{Text: "Key Insights", Level: 2},
			Paragraph{Text: page.Insight},
		},
	}
}

func (c *Composer) phaseSlide(page thesis.Page) Slide {
	rows := make([]KeyValue, 0, len(page.Metrics))
	for _, m := range page.Metrics {
		rows = append(rows, KeyValue{Key: m.Key, Value: m.Value})
	}
	blocks := []Block{Heading{Text: page.Title, Level: 1}}
	if page.Duration != "" {
		blocks = append(blocks, Paragraph{Text: "Duration: " + page.Duration})
	}
	if len(rows) > 0 {
		blocks = append(blocks, Heading{Text: "Key Metrics", Level: 2}, KeyValues{Rows: rows})
	}
	return Slide{PageID: page.ID, Title: page.Title, Kind: page.Kind, Blocks: blocks}
}

func (c *Composer) riskSlide(page thesis.Page) Slide {
	cols := make([]Column, 0, len(page.RiskGroups))
	for _, g := range page.RiskGroups {
		cols = append(cols, Column{
			Title: strings.ToUpper(string(g.Level)) + " RISK",
			Items: g.Names,
			Color: riskColor(g.Level),
		})
	}
	return Slide{
		PageID: page.ID,
		Title:  page.Title,
		Kind:   page.Kind,
		Blocks: []Block{
			Heading{Text: page.Title, Level: 1},
			Columns{Cols: cols},
			Heading{Text: "Mitigation Strategies", Level: 2},
			Bullets{Items: mitigationStrategies},
		},
	}
}

func riskColor(level refdata.RiskLevel) string {
	switch level {
	case refdata.RiskHigh:
		return ColorRiskHigh
	case refdata.RiskMedium:
		return ColorRiskMedium
	default:
		return ColorRiskLow
	}
}
