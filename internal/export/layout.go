// Package export turns a page plan into binary artifacts. The plan is
// first composed into an abstract layout tree (Deck); the document and
// slide-deck back-ends only map that tree to format primitives, so the
// two outputs cannot drift apart structurally.
package export

import (
	"time"

	"github.com/noetic-labs/thesisd/internal/thesis"
)

// Fixed severity colors for the risk columns. Not user-configurable.
const (
	ColorRiskHigh   = "DC2626"
	ColorRiskMedium = "D97706"
	ColorRiskLow    = "059669"
)

// Block is one layout element on a slide. The concrete types below are
// the full vocabulary both back-ends must support.
type Block interface{ block() }

// Heading is a titled text run. Level 1 is the page title, level 2 a
// section header within the page.
type Heading struct {
	Text  string
	Level int
}

// Paragraph is a plain text run.
type Paragraph struct {
	Text string
}

// Bullets is an unordered list.
type Bullets struct {
	Items []string
}

// KeyValue is one row of a two-column label/value table.
type KeyValue struct {
	Key   string
	Value string
}

// KeyValues is a two-column label/value table.
type KeyValues struct {
	Rows []KeyValue
}

// MetricBox is one emphasized value/label tile.
type MetricBox struct {
	Value string
	Label string
}

// MetricBoxes is a row of emphasized tiles.
type MetricBoxes struct {
	Boxes []MetricBox
}

// Column is one colored column of the risk matrix.
type Column struct {
	Title string
	Items []string
	Color string // hex without '#'
}

// Columns is a side-by-side colored column group.
type Columns struct {
	Cols []Column
}

// ChartBox is the placeholder frame standing in for a rendered chart.
type ChartBox struct {
	ChartID string
	Title   string
	Caption string
}

func (Heading) block()     {}
func (Paragraph) block()   {}
func (Bullets) block()     {}
func (KeyValues) block()   {}
func (MetricBoxes) block() {}
func (Columns) block()     {}
func (ChartBox) block()    {}

// Slide is the abstract layout of one output unit: exactly one
// document page or one deck slide. FullBleed paints the slide
// background with the primary brand color (the cover treatment).
type Slide struct {
	PageID    string
	Title     string
	Kind      thesis.PageKind
	FullBleed bool
	Blocks    []Block
}

// Deck is the composed layout tree for a whole export.
type Deck struct {
	Title       string
	Subject     string
	Author      string
	Company     string
	GeneratedAt time.Time
	Slides      []Slide
}

// Titles returns the slide titles in order. Used to assert parity
// between back-ends.
func (d Deck) Titles() []string {
	out := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		out[i] = s.Title
	}
	return out
}
