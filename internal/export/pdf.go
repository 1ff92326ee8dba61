package export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog"

	apperrors "github.com/noetic-labs/thesisd/internal/errors"
	"github.com/noetic-labs/thesisd/internal/thesis"
)

// Document artifact constants.
const (
	PDFContentType = "application/pdf"
	PDFFilename    = "noetic-2.0-thesis.pdf"
)

// PDFRenderer maps the layout tree to a paginated A4 document.
type PDFRenderer struct {
	logger zerolog.Logger
}

// NewPDFRenderer creates the document back-end.
func NewPDFRenderer(logger zerolog.Logger) *PDFRenderer {
	return &PDFRenderer{logger: logger.With().Str("component", "pdf_renderer").Logger()}
}

// Render produces the one-page-per-slide PDF artifact. Any failure
// aborts the whole document; no partial output is returned.
func (r *PDFRenderer) Render(deck Deck, opts thesis.ExportOptions) (Artifact, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(deck.Title, false)
	pdf.SetAuthor(deck.Author, false)
	pdf.SetSubject(deck.Subject, false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	font := pdfFont(opts.Branding.FontFamily)
	primary := parseHexColor(opts.Branding.PrimaryColor)
	secondary := parseHexColor(opts.Branding.SecondaryColor)

	if opts.Customization.PageNumbers {
		pdf.AliasNbPages("")
		pdf.SetFooterFunc(func() {
			pdf.SetY(-15)
			pdf.SetFont(font, "", 9)
			pdf.SetTextColor(102, 102, 102)
			pdf.CellFormat(0, 10, fmt.Sprintf("%d / {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		})
	}

	for _, slide := range deck.Slides {
		r.renderSlide(pdf, slide, font, primary, secondary)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Artifact{}, apperrors.NewExportError(string(thesis.FormatDocument), "render",
			fmt.Errorf("%w: %v", apperrors.ErrRenderFailure, err))
	}

	r.logger.Debug().Int("pages", len(deck.Slides)).Int("bytes", buf.Len()).Msg("document rendered")

	return Artifact{
		ContentType: PDFContentType,
		Filename:    PDFFilename,
		Data:        buf.Bytes(),
	}, nil
}

func (r *PDFRenderer) renderSlide(pdf *fpdf.Fpdf, slide Slide, font string, primary, secondary rgb) {
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	bodyColor := rgb{51, 51, 51}
	headingColor := primary
	subColor := secondary

	if slide.FullBleed {
		pdf.SetFillColor(primary.r, primary.g, primary.b)
		pdf.Rect(0, 0, pageW, pageH, "F")
		// White text on the brand background.
		bodyColor = rgb{255, 255, 255}
		headingColor = bodyColor
		subColor = bodyColor
		pdf.SetY(pageH / 4)
	}

	for _, block := range slide.Blocks {
		switch b := block.(type) {
		case Heading:
			if b.Level == 1 {
				pdf.SetFont(font, "B", 24)
				pdf.SetTextColor(headingColor.r, headingColor.g, headingColor.b)
				align := "L"
				if slide.FullBleed {
					align = "C"
				}
				pdf.CellFormat(0, 14, b.Text, "", 1, align, false, 0, "")
				pdf.Ln(2)
			} else {
				pdf.SetFont(font, "B", 14)
				pdf.SetTextColor(subColor.r, subColor.g, subColor.b)
				align := "L"
				if slide.FullBleed {
					align = "C"
				}
				pdf.CellFormat(0, 9, b.Text, "", 1, align, false, 0, "")
				pdf.Ln(1)
			}
		case Paragraph:
			pdf.SetFont(font, "", 11)
			pdf.SetTextColor(bodyColor.r, bodyColor.g, bodyColor.b)
			align := "L"
			if slide.FullBleed {
				align = "C"
			}
			pdf.MultiCell(0, 6, b.Text, "", align, false)
			pdf.Ln(3)
		case Bullets:
			pdf.SetFont(font, "", 11)
			pdf.SetTextColor(bodyColor.r, bodyColor.g, bodyColor.b)
			for _, item := range b.Items {
				pdf.MultiCell(0, 6, "- "+item, "", "L", false)
			}
			pdf.Ln(3)
		case KeyValues:
			r.renderKeyValues(pdf, b, font, primary, bodyColor)
		case MetricBoxes:
			r.renderMetricBoxes(pdf, b, slide.FullBleed, font, primary)
		case Columns:
			r.renderColumns(pdf, b, font)
		case ChartBox:
			r.renderChartBox(pdf, b, font)
		}
	}
}

func (r *PDFRenderer) renderKeyValues(pdf *fpdf.Fpdf, kv KeyValues, font string, primary, body rgb) {
	for _, row := range kv.Rows {
		pdf.SetFont(font, "", 11)
		pdf.SetTextColor(body.r, body.g, body.b)
		pdf.CellFormat(85, 7, row.Key, "", 0, "L", false, 0, "")
		pdf.SetFont(font, "B", 11)
		pdf.SetTextColor(primary.r, primary.g, primary.b)
		pdf.CellFormat(85, 7, row.Value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}

func (r *PDFRenderer) renderMetricBoxes(pdf *fpdf.Fpdf, mb MetricBoxes, fullBleed bool, font string, primary rgb) {
	if len(mb.Boxes) == 0 {
		return
	}
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right
	gap := 5.0
	boxW := (usable - gap*float64(len(mb.Boxes)-1)) / float64(len(mb.Boxes))
	boxH := 24.0
	y := pdf.GetY()

	for i, box := range mb.Boxes {
		x := left + float64(i)*(boxW+gap)
		if fullBleed {
			pdf.SetFillColor(255, 255, 255)
			pdf.SetDrawColor(255, 255, 255)
		} else {
			pdf.SetFillColor(245, 245, 252)
			pdf.SetDrawColor(primary.r, primary.g, primary.b)
		}
		pdf.Rect(x, y, boxW, boxH, "D")

		pdf.SetXY(x, y+4)
		pdf.SetFont(font, "B", 14)
		if fullBleed {
			pdf.SetTextColor(255, 255, 255)
		} else {
			pdf.SetTextColor(primary.r, primary.g, primary.b)
		}
		pdf.CellFormat(boxW, 8, box.Value, "", 0, "C", false, 0, "")

		pdf.SetXY(x, y+13)
		pdf.SetFont(font, "", 9)
		if fullBleed {
			pdf.SetTextColor(255, 255, 255)
		} else {
			pdf.SetTextColor(102, 102, 102)
		}
		pdf.CellFormat(boxW, 6, strings.ToUpper(box.Label), "", 0, "C", false, 0, "")
	}

	pdf.SetY(y + boxH + 6)
}

func (r *PDFRenderer) renderColumns(pdf *fpdf.Fpdf, cols Columns, font string) {
	if len(cols.Cols) == 0 {
		return
	}
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right
	gap := 5.0
	colW := (usable - gap*float64(len(cols.Cols)-1)) / float64(len(cols.Cols))
	colH := 50.0
	y := pdf.GetY()

	for i, col := range cols.Cols {
		x := left + float64(i)*(colW+gap)
		c := parseHexColor(col.Color)

		pdf.SetDrawColor(c.r, c.g, c.b)
		pdf.Rect(x, y, colW, colH, "D")

		pdf.SetFillColor(c.r, c.g, c.b)
		pdf.Rect(x, y, colW, 9, "F")
		pdf.SetXY(x, y)
		pdf.SetFont(font, "B", 10)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(colW, 9, col.Title, "", 0, "C", false, 0, "")

		pdf.SetFont(font, "", 9)
		pdf.SetTextColor(51, 51, 51)
		itemY := y + 12
		for _, item := range col.Items {
			pdf.SetXY(x+2, itemY)
			pdf.CellFormat(colW-4, 6, item, "", 0, "C", false, 0, "")
			itemY += 7
		}
	}

	pdf.SetY(y + colH + 6)
}

func (r *PDFRenderer) renderChartBox(pdf *fpdf.Fpdf, cb ChartBox, font string) {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	boxW := pageW - left - right
	boxH := 80.0
	y := pdf.GetY()

	pdf.SetDrawColor(209, 213, 219)
	pdf.SetDashPattern([]float64{2, 2}, 0)
	pdf.Rect(left, y, boxW, boxH, "D")
	pdf.SetDashPattern([]float64{}, 0)

	pdf.SetXY(left, y+boxH/2-8)
	pdf.SetFont(font, "", 13)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(boxW, 8, "Chart: "+cb.Title, "", 1, "C", false, 0, "")
	pdf.SetX(left)
	pdf.SetFont(font, "", 9)
	pdf.CellFormat(boxW, 6, cb.Caption, "", 0, "C", false, 0, "")

	pdf.SetY(y + boxH + 6)
}

type rgb struct{ r, g, b int }

// parseHexColor parses "#RRGGBB" or "RRGGBB". Malformed input falls
// back to black rather than failing the export.
func parseHexColor(s string) rgb {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return rgb{}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgb{}
	}
	return rgb{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}
}

// pdfFont maps a branding font family to one of the PDF core fonts.
func pdfFont(family string) string {
	switch strings.ToLower(family) {
	case "times new roman", "georgia":
		return "Times"
	case "courier":
		return "Courier"
	default:
		return "Helvetica"
	}
}
