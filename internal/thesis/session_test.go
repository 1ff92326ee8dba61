package thesis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/noetic-labs/thesisd/internal/errors"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(testCatalog(t), testBuilder(t))
}

func TestSession_Defaults(t *testing.T) {
	s := testSession(t)

	assert.Equal(t, StepSelect, s.Step())
	assert.Empty(t, s.Selections())
	assert.Nil(t, s.Template())
	assert.Equal(t, DefaultOptions(), s.Options())
}

func TestSession_ToggleAndReorder(t *testing.T) {
	s := testSession(t)

	s.Toggle("market-line")
	s.Toggle("p0")
	sel := s.Reorder(1, 0)

	require.Len(t, sel, 2)
	assert.Equal(t, "p0", sel[0].ID)
	assert.Equal(t, []int{0, 1}, orders(sel))
}

func TestSession_SetTemplate(t *testing.T) {
	s := testSession(t)

	assert.False(t, s.SetTemplate("bogus"))
	assert.Nil(t, s.Template())

	require.True(t, s.SetTemplate("investor-pitch"))
	require.NotNil(t, s.Template())
	assert.Equal(t, "investor-pitch", s.Template().ID)
}

func TestSession_PatchOptions_PreservesSiblings(t *testing.T) {
	s := testSession(t)

	red := "#ff0000"
	opts := s.PatchOptions(OptionsPatch{Branding: &BrandingPatch{PrimaryColor: &red}})

	assert.Equal(t, "#ff0000", opts.Branding.PrimaryColor)
	// Untouched siblings keep their defaults
	assert.Equal(t, "#764ba2", opts.Branding.SecondaryColor)
	assert.Equal(t, "Inter", opts.Branding.FontFamily)
	assert.True(t, opts.Customization.IncludeCoverPage)
}

func TestSession_AdvanceGating(t *testing.T) {
	s := testSession(t)

	// No selections yet: later steps are unreachable
	assert.False(t, s.Advance(StepTemplate))
	assert.False(t, s.Advance(StepPreview))
	assert.Equal(t, StepSelect, s.Step())

	s.Toggle("market-line")
	assert.True(t, s.Advance(StepTemplate))

	// Preview and export also need a template
	assert.False(t, s.Advance(StepPreview))
	s.SetTemplate("custom")
	assert.True(t, s.Advance(StepPreview))
	assert.True(t, s.Advance(StepExport))

	// Going back is always allowed
	assert.True(t, s.Advance(StepSelect))
}

func TestSession_Advance_UnknownStep(t *testing.T) {
	s := testSession(t)
	assert.False(t, s.Advance(Step("checkout")))
}

func TestSession_Plan(t *testing.T) {
	s := testSession(t)

	s.Toggle("market-line")
	assert.Nil(t, s.Plan())

	s.SetTemplate("executive-summary")
	plan := s.Plan()
	require.NotNil(t, plan)
	assert.Equal(t, []string{CoverPageID, SummaryPageID, "market-line"}, pageIDs(plan))
}

func TestSession_SingleExportInFlight(t *testing.T) {
	s := testSession(t)

	require.NoError(t, s.BeginExport())
	assert.ErrorIs(t, s.BeginExport(), apperrors.ErrExportInFlight)

	s.EndExport()
	assert.NoError(t, s.BeginExport())
}
