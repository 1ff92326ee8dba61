package thesis

// Zoom bounds and step for the preview.
const (
	MinZoom  = 0.5
	MaxZoom  = 2.0
	ZoomStep = 0.25
)

// BlockHint names a thumbnail placeholder block.
type BlockHint string

const (
	BlockTitle    BlockHint = "title"
	BlockSubtitle BlockHint = "subtitle"
	BlockText     BlockHint = "text"
	BlockMetrics  BlockHint = "metrics"
	BlockChart    BlockHint = "chart"
	BlockInsight  BlockHint = "insight"
)

// Thumbnail is the placeholder layout for one page in the preview
// strip. Blocks are derived from the page kind alone, never from id
// inspection.
type Thumbnail struct {
	PageID string      `json:"page_id"`
	Title  string      `json:"title"`
	Kind   PageKind    `json:"kind"`
	Blocks []BlockHint `json:"blocks"`
}

// thumbnailBlocks maps a page kind to its placeholder block layout.
func thumbnailBlocks(kind PageKind) []BlockHint {
	switch kind {
	case PageCover:
		return []BlockHint{BlockTitle, BlockSubtitle, BlockMetrics}
	case PageSummary:
		return []BlockHint{BlockTitle, BlockText, BlockMetrics, BlockText}
	case PageChart:
		return []BlockHint{BlockTitle, BlockChart, BlockInsight}
	default:
		return []BlockHint{BlockTitle, BlockText, BlockText}
	}
}

// Preview is a read-only navigable view over a page plan. It holds no
// external resources and performs no I/O.
type Preview struct {
	plan  []Page
	index int
	zoom  float64
}

// NewPreview creates a preview positioned at the first page with 100%
// zoom.
func NewPreview(plan []Page) *Preview {
	return &Preview{plan: plan, zoom: 1.0}
}

// SetPlan replaces the plan, re-clamping the current index if the plan
// shrank.
func (p *Preview) SetPlan(plan []Page) {
	p.plan = plan
	p.index = clampIndex(p.index, len(plan))
}

// Len returns the number of pages.
func (p *Preview) Len() int { return len(p.plan) }

// Index returns the current page index.
func (p *Preview) Index() int { return p.index }

// Page returns the current page. ok is false for an empty plan.
func (p *Preview) Page() (Page, bool) {
	if len(p.plan) == 0 {
		return Page{}, false
	}
	return p.plan[p.index], true
}

// GoTo moves to the given page index, clamped to the plan bounds.
func (p *Preview) GoTo(i int) { p.index = clampIndex(i, len(p.plan)) }

// Next advances one page.
func (p *Preview) Next() { p.GoTo(p.index + 1) }

// Prev goes back one page.
func (p *Preview) Prev() { p.GoTo(p.index - 1) }

// Zoom returns the current zoom level.
func (p *Preview) Zoom() float64 { return p.zoom }

// ZoomIn increases zoom by one step up to MaxZoom.
func (p *Preview) ZoomIn() { p.zoom = clampZoom(p.zoom + ZoomStep) }

// ZoomOut decreases zoom by one step down to MinZoom.
func (p *Preview) ZoomOut() { p.zoom = clampZoom(p.zoom - ZoomStep) }

// Thumbnails returns the placeholder strip for the whole plan.
func (p *Preview) Thumbnails() []Thumbnail {
	out := make([]Thumbnail, len(p.plan))
	for i, page := range p.plan {
		out[i] = Thumbnail{
			PageID: page.ID,
			Title:  page.Title,
			Kind:   page.Kind,
			Blocks: thumbnailBlocks(page.Kind),
		}
	}
	return out
}

func clampIndex(i, length int) int {
	if length == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
