// Package thesis implements the thesis builder core: the selection
// catalog, the template registry, compatibility scoring and the page
// plan builder. Everything in this package is pure in-memory logic —
// no I/O, no clocks except the one injected into the plan builder.
package thesis

import (
	"time"

	"github.com/noetic-labs/thesisd/internal/refdata"
)

// Kind classifies a selectable item.
type Kind string

const (
	KindChart  Kind = "chart"
	KindMetric Kind = "metric"
	KindPhase  Kind = "phase"
	KindRisk   Kind = "risk"
)

// Item is one selectable entity. Identity is the ID: chart ids are
// shared with the chart provider registry, phase ids with the
// reference dataset.
type Item struct {
	ID    string `json:"id"`
	Kind  Kind   `json:"kind"`
	Title string `json:"title"`
}

// Selection is an Item the user has added to the thesis. Order is the
// 0-based display position and stays contiguous across toggles and
// reorders. Selected is redundant with membership and is kept true for
// every element of a selection list.
type Selection struct {
	Item
	Order    int  `json:"order"`
	Selected bool `json:"selected"`
}

// PageKind classifies a derived page.
type PageKind string

const (
	PageCover   PageKind = "cover"
	PageSummary PageKind = "summary"
	PageChart   PageKind = "chart"
	PagePhase   PageKind = "phase"
	PageRisk    PageKind = "risk"
)

// RiskGroup is one severity bucket of the risk page, captured at plan
// build time.
type RiskGroup struct {
	Level refdata.RiskLevel `json:"level"`
	Names []string          `json:"names"`
}

// Page is a derived page descriptor. Pages are produced fresh by the
// plan builder and never mutated afterwards; all content, including
// the cover timestamp, is captured at build time.
type Page struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Kind  PageKind `json:"kind"`

	// Cover fields.
	GeneratedAt  time.Time `json:"generated_at,omitempty"`
	TemplateName string    `json:"template_name,omitempty"`

	// Chart fields.
	ChartID string `json:"chart_id,omitempty"`
	Insight string `json:"insight,omitempty"`

	// Phase fields. Metric keys are already in display form.
	Duration string          `json:"duration,omitempty"`
	Metrics  refdata.Entries `json:"metrics,omitempty"`

	// Summary fields.
	SummaryMetrics refdata.Entries `json:"summary_metrics,omitempty"`

	// Risk fields.
	RiskGroups []RiskGroup `json:"risk_groups,omitempty"`
}
