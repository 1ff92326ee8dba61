package thesis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func previewPlan(t *testing.T) []Page {
	t.Helper()
	b := testBuilder(t)
	c := testCatalog(t)
	tpl, _ := TemplateByID("custom")
	return b.Build(pick(t, c, "market-line", "p0", RiskItemID), tpl, DefaultOptions())
}

func TestPreview_Navigation(t *testing.T) {
	p := NewPreview(previewPlan(t))
	require.Equal(t, 5, p.Len())
	assert.Equal(t, 0, p.Index())

	p.Next()
	assert.Equal(t, 1, p.Index())

	p.GoTo(99)
	assert.Equal(t, 4, p.Index())
	p.Next()
	assert.Equal(t, 4, p.Index())

	p.GoTo(-3)
	assert.Equal(t, 0, p.Index())
	p.Prev()
	assert.Equal(t, 0, p.Index())

	page, ok := p.Page()
	require.True(t, ok)
	assert.Equal(t, CoverPageID, page.ID)
}

func TestPreview_EmptyPlan(t *testing.T) {
	p := NewPreview(nil)
	assert.Equal(t, 0, p.Len())

	_, ok := p.Page()
	assert.False(t, ok)

	p.Next() // no panic on empty plan
	assert.Equal(t, 0, p.Index())
}

func TestPreview_Zoom(t *testing.T) {
	p := NewPreview(previewPlan(t))
	assert.Equal(t, 1.0, p.Zoom())

	for i := 0; i < 10; i++ {
		p.ZoomIn()
	}
	assert.Equal(t, MaxZoom, p.Zoom())

	for i := 0; i < 10; i++ {
		p.ZoomOut()
	}
	assert.Equal(t, MinZoom, p.Zoom())

	p.ZoomIn()
	assert.Equal(t, 0.75, p.Zoom())
}

func TestPreview_SetPlanReclamps(t *testing.T) {
	plan := previewPlan(t)
	p := NewPreview(plan)
	p.GoTo(4)

	p.SetPlan(plan[:2])
	assert.Equal(t, 1, p.Index())

	p.SetPlan(nil)
	assert.Equal(t, 0, p.Index())
}

func TestPreview_Thumbnails(t *testing.T) {
	p := NewPreview(previewPlan(t))

	thumbs := p.Thumbnails()
	require.Len(t, thumbs, 5)

	assert.Equal(t, []BlockHint{BlockTitle, BlockSubtitle, BlockMetrics}, thumbs[0].Blocks)
	assert.Equal(t, []BlockHint{BlockTitle, BlockText, BlockMetrics, BlockText}, thumbs[1].Blocks)
	assert.Equal(t, []BlockHint{BlockTitle, BlockChart, BlockInsight}, thumbs[2].Blocks)
	// Phase and risk pages share the generic layout
	assert.Equal(t, thumbs[3].Blocks, thumbs[4].Blocks)
}
