package thesis

// Format selects the export back-end.
type Format string

const (
	FormatDocument  Format = "document"
	FormatSlideDeck Format = "slide-deck"
)

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f == FormatDocument || f == FormatSlideDeck
}

// Branding carries the user-configurable visual identity applied by
// both export back-ends.
type Branding struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
}

// Customization toggles optional plan content. IncludeAppendix is
// recorded and reflected in the page estimate but does not yet emit a
// page.
type Customization struct {
	IncludeCoverPage        bool `json:"include_cover_page"`
	IncludeExecutiveSummary bool `json:"include_executive_summary"`
	IncludeAppendix         bool `json:"include_appendix"`
	PageNumbers             bool `json:"page_numbers"`
}

// ExportOptions is the full export configuration owned by a builder
// session.
type ExportOptions struct {
	Format        Format        `json:"format"`
	Branding      Branding      `json:"branding"`
	Customization Customization `json:"customization"`
}

// DefaultOptions returns the session defaults.
func DefaultOptions() ExportOptions {
	return ExportOptions{
		Format: FormatDocument,
		Branding: Branding{
			PrimaryColor:   "#667eea",
			SecondaryColor: "#764ba2",
			FontFamily:     "Inter",
		},
		Customization: Customization{
			IncludeCoverPage:        true,
			IncludeExecutiveSummary: true,
			IncludeAppendix:         false,
			PageNumbers:             true,
		},
	}
}

// BrandingPatch is a partial Branding update.
type BrandingPatch struct {
	PrimaryColor   *string `json:"primary_color,omitempty"`
	SecondaryColor *string `json:"secondary_color,omitempty"`
	FontFamily     *string `json:"font_family,omitempty"`
}

// CustomizationPatch is a partial Customization update.
type CustomizationPatch struct {
	IncludeCoverPage        *bool `json:"include_cover_page,omitempty"`
	IncludeExecutiveSummary *bool `json:"include_executive_summary,omitempty"`
	IncludeAppendix         *bool `json:"include_appendix,omitempty"`
	PageNumbers             *bool `json:"page_numbers,omitempty"`
}

// OptionsPatch is a merge patch over ExportOptions: only named fields
// are touched, sibling fields are always preserved.
type OptionsPatch struct {
	Format        *Format             `json:"format,omitempty"`
	Branding      *BrandingPatch      `json:"branding,omitempty"`
	Customization *CustomizationPatch `json:"customization,omitempty"`
}

// Apply merges the patch into a copy of o and returns it.
func (o ExportOptions) Apply(p OptionsPatch) ExportOptions {
	out := o
	if p.Format != nil {
		out.Format = *p.Format
	}
	if p.Branding != nil {
		if p.Branding.PrimaryColor != nil {
			out.Branding.PrimaryColor = *p.Branding.PrimaryColor
		}
		if p.Branding.SecondaryColor != nil {
			out.Branding.SecondaryColor = *p.Branding.SecondaryColor
		}
		if p.Branding.FontFamily != nil {
			out.Branding.FontFamily = *p.Branding.FontFamily
		}
	}
	if p.Customization != nil {
		if p.Customization.IncludeCoverPage != nil {
			out.Customization.IncludeCoverPage = *p.Customization.IncludeCoverPage
		}
		if p.Customization.IncludeExecutiveSummary != nil {
			out.Customization.IncludeExecutiveSummary = *p.Customization.IncludeExecutiveSummary
		}
		if p.Customization.IncludeAppendix != nil {
			out.Customization.IncludeAppendix = *p.Customization.IncludeAppendix
		}
		if p.Customization.PageNumbers != nil {
			out.Customization.PageNumbers = *p.Customization.PageNumbers
		}
	}
	return out
}
