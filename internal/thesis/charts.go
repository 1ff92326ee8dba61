package thesis

import (
	"fmt"

	"github.com/noetic-labs/thesisd/internal/refdata"
)

// Chart is an opaque chart provider: the core only needs an id, a
// display title and a one-line caption for export placeholders. Actual
// rendering lives outside this module.
type Chart interface {
	ID() string
	Title() string
	Caption() string
}

// ChartRegistry maps chart ids to providers. It is populated once at
// startup and read-only afterwards.
type ChartRegistry struct {
	order  []string
	charts map[string]Chart
}

// NewChartRegistry creates an empty registry.
func NewChartRegistry() *ChartRegistry {
	return &ChartRegistry{charts: make(map[string]Chart)}
}

// Register adds a provider. Registering a duplicate id is a wiring
// defect and panics.
func (r *ChartRegistry) Register(c Chart) {
	if _, dup := r.charts[c.ID()]; dup {
		panic("thesis: duplicate chart id " + c.ID())
	}
	r.order = append(r.order, c.ID())
	r.charts[c.ID()] = c
}

// Get returns the provider for id.
func (r *ChartRegistry) Get(id string) (Chart, bool) {
	c, ok := r.charts[id]
	return c, ok
}

// IDs returns all chart ids in registration order.
func (r *ChartRegistry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered providers.
func (r *ChartRegistry) Len() int { return len(r.charts) }

// seriesChart adapts a single reference-data series to the Chart
// interface.
type seriesChart struct {
	id      string
	title   string
	caption string
}

func (c seriesChart) ID() string      { return c.id }
func (c seriesChart) Title() string   { return c.title }
func (c seriesChart) Caption() string { return c.caption }

func spanCaption(s refdata.Series) string {
	if len(s.Labels) == 0 {
		return s.Title
	}
	return fmt.Sprintf("%s, %s – %s", s.Title, s.Labels[0], s.Labels[len(s.Labels)-1])
}

func dualSpanCaption(s refdata.DualSeries) string {
	if len(s.Labels) == 0 {
		return s.Title
	}
	return fmt.Sprintf("%s, %s – %s", s.Title, s.Labels[0], s.Labels[len(s.Labels)-1])
}

// DefaultCharts builds the standard chart providers over the reference
// dataset. The ids are shared with the selection catalog and the
// insight table.
func DefaultCharts(ds *refdata.Dataset) *ChartRegistry {
	r := NewChartRegistry()
	r.Register(seriesChart{"market-line", "Market Size Projection", spanCaption(ds.Market)})
	r.Register(seriesChart{"capital-doughnut", "Capital Allocation", spanCaption(ds.Capital)})
	r.Register(seriesChart{"noetic-os-radar", "NoeticOS Implementation", spanCaption(ds.PlatformOS)})
	r.Register(seriesChart{"platform-kpi-bar", "Platform KPIs", dualSpanCaption(ds.PlatformKPIs)})
	r.Register(seriesChart{"value-creation-dual", "Value Creation Timeline", dualSpanCaption(ds.ValueCreation)})
	r.Register(seriesChart{"return-bar", "Return Scenarios", spanCaption(ds.ReturnScenarios)})
	return r
}
