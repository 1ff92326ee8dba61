package thesis

import (
	"strings"

	"github.com/noetic-labs/thesisd/internal/refdata"
)

// RiskItemID is the id of the single risk pseudo-item. The catalog
// offers exactly one risk entry covering the whole risk register.
const RiskItemID = "risk-assessment"

// keyMetric binds a selectable metric id to a capital plan key.
type keyMetric struct {
	id    string
	key   string
	title string
}

// The key metrics exposed as selectable items. Metric selections only
// affect template compatibility scoring; they do not produce pages.
var keyMetrics = []keyMetric{
	{"target-fund-size", "targetFundSize", "Target Fund Size"},
	{"anchor-allocation", "anchorAllocation", "Anchor Allocation"},
	{"bolt-on-allocation", "boltOnAllocation", "Bolt-On Allocation"},
}

// Filter narrows ListAvailable results. Category uses the plural UI
// labels ("charts", "metrics", "phases", "risks"); empty or "all"
// matches everything. Search is a case-insensitive substring match on
// the title only.
type Filter struct {
	Category string
	Search   string
}

var categoryKinds = map[string]Kind{
	"charts":  KindChart,
	"metrics": KindMetric,
	"phases":  KindPhase,
	"risks":   KindRisk,
}

// Catalog enumerates every selectable item: all registered charts,
// every phase, the declared key metrics and the single risk
// pseudo-item. Immutable after construction.
type Catalog struct {
	items []Item
	byID  map[string]Item
}

// NewCatalog derives the catalog from the dataset and chart registry.
func NewCatalog(ds *refdata.Dataset, charts *ChartRegistry) *Catalog {
	c := &Catalog{byID: make(map[string]Item)}

	for _, id := range charts.IDs() {
		chart, _ := charts.Get(id)
		c.add(Item{ID: id, Kind: KindChart, Title: chart.Title()})
	}
	for _, p := range ds.Phases {
		c.add(Item{ID: p.ID, Kind: KindPhase, Title: p.Title})
	}
	for _, m := range keyMetrics {
		c.add(Item{ID: m.id, Kind: KindMetric, Title: m.title})
	}
	c.add(Item{ID: RiskItemID, Kind: KindRisk, Title: "Risk Assessment"})

	return c
}

func (c *Catalog) add(item Item) {
	if _, dup := c.byID[item.ID]; dup {
		panic("thesis: duplicate catalog id " + item.ID)
	}
	c.items = append(c.items, item)
	c.byID[item.ID] = item
}

// Lookup returns the catalog item with the given id.
func (c *Catalog) Lookup(id string) (Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Len returns the number of selectable items.
func (c *Catalog) Len() int { return len(c.items) }

// ListAvailable returns the catalogued items matching the filter, in
// declared order, with Selected reflecting membership in current.
func (c *Catalog) ListAvailable(f Filter, current []Selection) []Selection {
	wantKind, kindFiltered := categoryKinds[f.Category]
	search := strings.ToLower(f.Search)

	selected := make(map[string]struct{}, len(current))
	for _, s := range current {
		selected[s.ID] = struct{}{}
	}

	out := make([]Selection, 0, len(c.items))
	for _, item := range c.items {
		if kindFiltered && item.Kind != wantKind {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Title), search) {
			continue
		}
		_, isSelected := selected[item.ID]
		out = append(out, Selection{Item: item, Selected: isSelected})
	}
	return out
}

// Toggle adds the item with the given id to the selection list, or
// removes it if already present. Removal compacts the remaining orders
// back to 0..n-1; addition appends with Order = len. Ids unknown to
// the catalog leave the list unchanged. Total: never fails.
func (c *Catalog) Toggle(current []Selection, id string) []Selection {
	for i, s := range current {
		if s.ID == id {
			out := make([]Selection, 0, len(current)-1)
			out = append(out, current[:i]...)
			out = append(out, current[i+1:]...)
			return renumber(out)
		}
	}

	item, ok := c.byID[id]
	if !ok {
		return current
	}
	out := make([]Selection, len(current), len(current)+1)
	copy(out, current)
	return append(out, Selection{Item: item, Order: len(current), Selected: true})
}

// Reorder moves the selection at from to position to and renumbers the
// orders 0..n-1. The relative order of every other element is
// preserved. Out-of-range indices return the input unchanged.
func Reorder(current []Selection, from, to int) []Selection {
	if from < 0 || from >= len(current) || to < 0 || to >= len(current) {
		return current
	}
	out := make([]Selection, len(current))
	copy(out, current)

	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]Selection{moved}, out[to:]...)...)
	return renumber(out)
}

// renumber rewrites Order fields to match slice positions.
func renumber(sel []Selection) []Selection {
	for i := range sel {
		sel[i].Order = i
		sel[i].Selected = true
	}
	return sel
}
