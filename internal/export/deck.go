package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	apperrors "github.com/noetic-labs/thesisd/internal/errors"
	"github.com/noetic-labs/thesisd/internal/thesis"
)

// Slide-deck artifact constants.
const (
	PPTXContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	PPTXFilename    = "noetic-2.0-thesis.pptx"
)

// Slide geometry in EMU (914400 per inch), 10 x 7.5 inch canvas.
const (
	emuPerInch = 914400
	slideCX    = 10 * emuPerInch
	slideCY    = 7*emuPerInch + emuPerInch/2
)

// DeckRenderer maps the layout tree to a PPTX archive. The OOXML is
// written directly: one slide master carrying the rule line and brand
// wordmark footer, one slide per layout-tree entry.
type DeckRenderer struct {
	logger zerolog.Logger
}

// NewDeckRenderer creates the slide-deck back-end.
func NewDeckRenderer(logger zerolog.Logger) *DeckRenderer {
	return &DeckRenderer{logger: logger.With().Str("component", "deck_renderer").Logger()}
}

// Render produces the PPTX artifact. Assembly is all-or-nothing: a
// failed slide or zip write aborts the export with no partial output.
func (r *DeckRenderer) Render(deck Deck, opts thesis.ExportOptions) (Artifact, error) {
	primary := strings.TrimPrefix(opts.Branding.PrimaryColor, "#")
	secondary := strings.TrimPrefix(opts.Branding.SecondaryColor, "#")
	font := opts.Branding.FontFamily

	w := &pptxWriter{
		primary:   strings.ToUpper(primary),
		secondary: strings.ToUpper(secondary),
		font:      font,
	}

	slides := make([]string, 0, len(deck.Slides))
	for i, slide := range deck.Slides {
		xmlBody, err := w.slideXML(slide)
		if err != nil {
			return Artifact{}, apperrors.NewExportError(string(thesis.FormatSlideDeck), "render",
				fmt.Errorf("%w: slide %d (%s): %v", apperrors.ErrRenderFailure, i+1, slide.PageID, err))
		}
		slides = append(slides, xmlBody)
	}

	data, err := w.archive(deck, slides)
	if err != nil {
		return Artifact{}, apperrors.NewExportError(string(thesis.FormatSlideDeck), "assemble",
			fmt.Errorf("%w: %v", apperrors.ErrRenderFailure, err))
	}

	r.logger.Debug().Int("slides", len(slides)).Int("bytes", len(data)).Msg("slide deck rendered")

	return Artifact{
		ContentType: PPTXContentType,
		Filename:    PPTXFilename,
		Data:        data,
	}, nil
}

// pptxWriter holds branding state while emitting OOXML parts.
type pptxWriter struct {
	primary   string
	secondary string
	font      string
	shapeID   int
}

func (w *pptxWriter) nextID() int {
	w.shapeID++
	return w.shapeID + 1 // id 1 is reserved for the group shape
}

func esc(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func emu(inches float64) int {
	return int(inches * emuPerInch)
}

// textBox emits a positioned text shape. Each line of text becomes its
// own paragraph.
func (w *pptxWriter) textBox(x, y, cx, cy float64, text string, sizePt int, bold bool, color, align string) string {
	boldAttr := ""
	if bold {
		boldAttr = ` b="1"`
	}
	algn := ""
	if align != "" {
		algn = fmt.Sprintf(`<a:pPr algn="%s"/>`, align)
	}

	var paras strings.Builder
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(&paras,
			`<a:p>%s<a:r><a:rPr lang="en-US" sz="%d"%s dirty="0"><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:latin typeface="%s"/></a:rPr><a:t>%s</a:t></a:r></a:p>`,
			algn, sizePt*100, boldAttr, color, esc(w.font), esc(line))
	}

	return fmt.Sprintf(
		`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`+
			`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
			`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`+
			`<p:txBody><a:bodyPr wrap="square" rtlCol="0"><a:normAutofit/></a:bodyPr><a:lstStyle/>%s</p:txBody></p:sp>`,
		w.nextID(), w.shapeID, emu(x), emu(y), emu(cx), emu(cy), paras.String())
}

// rect emits a filled and/or outlined rectangle with no text.
func (w *pptxWriter) rect(x, y, cx, cy float64, fill, line string, dashed bool) string {
	fillXML := "<a:noFill/>"
	if fill != "" {
		fillXML = fmt.Sprintf(`<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, fill)
	}
	lineXML := ""
	if line != "" {
		dash := ""
		if dashed {
			dash = `<a:prstDash val="dash"/>`
		}
		lineXML = fmt.Sprintf(`<a:ln w="19050"><a:solidFill><a:srgbClr val="%s"/></a:solidFill>%s</a:ln>`, line, dash)
	}
	return fmt.Sprintf(
		`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Rect %d"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`+
			`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
			`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>%s%s</p:spPr>`+
			`<p:txBody><a:bodyPr/><a:lstStyle/><a:p/></p:txBody></p:sp>`,
		w.nextID(), w.shapeID, emu(x), emu(y), emu(cx), emu(cy), fillXML, lineXML)
}

// slideXML renders one slide. Block layout walks a vertical cursor the
// same way the document back-end does, so the two outputs carry the
// same content in the same order.
func (w *pptxWriter) slideXML(slide Slide) (string, error) {
	w.shapeID = 0

	bg := ""
	textColor := "333333"
	headingColor := w.primary
	subColor := w.secondary
	align := ""
	if slide.FullBleed {
		bg = fmt.Sprintf(`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`, w.primary)
		textColor = "FFFFFF"
		headingColor = "FFFFFF"
		subColor = "FFFFFF"
		align = "ctr"
	}

	var shapes strings.Builder
	y := 0.4
	if slide.FullBleed {
		y = 1.6
	}

	for _, block := range slide.Blocks {
		switch b := block.(type) {
		case Heading:
			if b.Level == 1 {
				shapes.WriteString(w.textBox(0.5, y, 9.0, 0.8, b.Text, 30, true, headingColor, align))
				y += 0.9
			} else {
				shapes.WriteString(w.textBox(0.5, y, 9.0, 0.5, b.Text, 18, true, subColor, align))
				y += 0.6
			}
		case Paragraph:
			lines := float64(strings.Count(b.Text, "\n") + 1)
			h := 0.35 * lines
			shapes.WriteString(w.textBox(0.5, y, 9.0, h, b.Text, 13, false, textColor, align))
			y += h + 0.15
		case Bullets:
			var sb strings.Builder
			for i, item := range b.Items {
				if i > 0 {
					sb.WriteByte('\n')
				}
				sb.WriteString("- ")
				sb.WriteString(item)
			}
			h := 0.35 * float64(len(b.Items))
			shapes.WriteString(w.textBox(0.5, y, 9.0, h, sb.String(), 13, false, textColor, align))
			y += h + 0.15
		case KeyValues:
			for _, row := range b.Rows {
				shapes.WriteString(w.textBox(0.5, y, 4.0, 0.4, row.Key, 12, false, textColor, ""))
				shapes.WriteString(w.textBox(4.8, y, 4.7, 0.4, row.Value, 12, true, headingColor, ""))
				y += 0.45
			}
			y += 0.15
		case MetricBoxes:
			w.metricBoxes(&shapes, b, slide.FullBleed, y)
			y += 1.4
		case Columns:
			w.columns(&shapes, b, y)
			y += 2.4
		case ChartBox:
			shapes.WriteString(w.rect(1.0, y, 8.0, 2.8, "F9FAFB", "D1D5DB", true))
			shapes.WriteString(w.textBox(1.0, y+1.0, 8.0, 0.5, "Chart: "+b.Title, 15, false, "6B7280", "ctr"))
			shapes.WriteString(w.textBox(1.0, y+1.5, 8.0, 0.4, b.Caption, 11, false, "6B7280", "ctr"))
			y += 3.0
		default:
			return "", fmt.Errorf("unsupported block %T", block)
		}
	}

	return fmt.Sprintf(xmlHeader+
		`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`+
		`<p:cSld>%s<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`+
		`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`+
		`%s</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`,
		bg, shapes.String()), nil
}

func (w *pptxWriter) metricBoxes(shapes *strings.Builder, mb MetricBoxes, fullBleed bool, y float64) {
	n := len(mb.Boxes)
	if n == 0 {
		return
	}
	gap := 0.25
	boxW := (9.0 - gap*float64(n-1)) / float64(n)
	for i, box := range mb.Boxes {
		x := 0.5 + float64(i)*(boxW+gap)
		valueColor := w.primary
		lineColor := w.primary
		if fullBleed {
			valueColor = "FFFFFF"
			lineColor = "FFFFFF"
		}
		shapes.WriteString(w.rect(x, y, boxW, 1.2, "", lineColor, false))
		shapes.WriteString(w.textBox(x, y+0.15, boxW, 0.5, box.Value, 18, true, valueColor, "ctr"))
		labelColor := "666666"
		if fullBleed {
			labelColor = "FFFFFF"
		}
		shapes.WriteString(w.textBox(x, y+0.7, boxW, 0.35, box.Label, 11, false, labelColor, "ctr"))
	}
}

func (w *pptxWriter) columns(shapes *strings.Builder, cols Columns, y float64) {
	n := len(cols.Cols)
	if n == 0 {
		return
	}
	gap := 0.25
	colW := (9.0 - gap*float64(n-1)) / float64(n)
	for i, col := range cols.Cols {
		x := 0.5 + float64(i)*(colW+gap)
		shapes.WriteString(w.rect(x, y, colW, 2.2, "", col.Color, false))
		shapes.WriteString(w.rect(x, y, colW, 0.4, col.Color, "", false))
		shapes.WriteString(w.textBox(x, y, colW, 0.4, col.Title, 12, true, "FFFFFF", "ctr"))
		shapes.WriteString(w.textBox(x+0.1, y+0.5, colW-0.2, 1.6, strings.Join(col.Items, "\n"), 11, false, "333333", "ctr"))
	}
}

// archive assembles the PPTX zip from the rendered slides.
func (w *pptxWriter) archive(deck Deck, slides []string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := [][2]string{
		{"[Content_Types].xml", w.contentTypes(len(slides))},
		{"_rels/.rels", rootRels},
		{"docProps/core.xml", w.coreProps(deck)},
		{"docProps/app.xml", w.appProps(deck, len(slides))},
		{"ppt/presentation.xml", w.presentation(len(slides))},
		{"ppt/_rels/presentation.xml.rels", w.presentationRels(len(slides))},
		{"ppt/slideMasters/slideMaster1.xml", w.slideMaster()},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", masterRels},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayout},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", layoutRels},
		{"ppt/theme/theme1.xml", themeXML},
	}
	for i, slide := range slides {
		parts = append(parts,
			[2]string{fmt.Sprintf("ppt/slides/slide%d.xml", i+1), slide},
			[2]string{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), slideRels},
		)
	}

	for _, part := range parts {
		f, err := zw.Create(part[0])
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part[0], err)
		}
		if _, err := f.Write([]byte(part[1])); err != nil {
			return nil, fmt.Errorf("write %s: %w", part[0], err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *pptxWriter) contentTypes(slideCount int) string {
	var overrides strings.Builder
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&overrides,
			`<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i)
	}
	return xmlHeader +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>` +
		`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>` +
		`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>` +
		`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>` +
		`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
		`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>` +
		overrides.String() +
		`</Types>`
}

func (w *pptxWriter) coreProps(deck Deck) string {
	return xmlHeader + fmt.Sprintf(
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`+
			`<dc:title>%s</dc:title><dc:subject>%s</dc:subject><dc:creator>%s</dc:creator>`+
			`<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`+
			`</cp:coreProperties>`,
		esc(deck.Title), esc(deck.Subject), esc(deck.Author),
		deck.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"))
}

func (w *pptxWriter) appProps(deck Deck, slideCount int) string {
	return xmlHeader + fmt.Sprintf(
		`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">`+
			`<Application>thesisd</Application><Slides>%d</Slides><Company>%s</Company>`+
			`</Properties>`,
		slideCount, esc(deck.Company))
}

func (w *pptxWriter) presentation(slideCount int) string {
	var ids strings.Builder
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&ids, `<p:sldId id="%d" r:id="rId%d"/>`, 255+i, i+2)
	}
	return xmlHeader + fmt.Sprintf(
		`<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`+
			`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`+
			`<p:sldIdLst>%s</p:sldIdLst>`+
			`<p:sldSz cx="%d" cy="%d"/><p:notesSz cx="%d" cy="%d"/>`+
			`</p:presentation>`,
		ids.String(), slideCX, slideCY, slideCY, slideCX)
}

func (w *pptxWriter) presentationRels(slideCount int) string {
	var rels strings.Builder
	rels.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	rels.WriteString(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="theme/theme1.xml"/>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&rels,
			`<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`,
			i+2, i)
	}
	return xmlHeader +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		rels.String() + `</Relationships>`
}

// slideMaster carries the shared footer: a thin rule in the primary
// brand color and the wordmark, inherited by every slide.
func (w *pptxWriter) slideMaster() string {
	w.shapeID = 0
	rule := w.rect(0.5, 7.0, 9.0, 0.02, w.primary, "", false)
	mark := w.textBox(8.0, 7.1, 1.8, 0.3, wordmark, 10, false, w.primary, "r")
	return xmlHeader + fmt.Sprintf(
		`<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`+
			`<p:cSld><p:bg><p:bgPr><a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`+
			`<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`+
			`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`+
			`%s%s</p:spTree></p:cSld>`+
			`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>`+
			`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>`+
			`</p:sldMaster>`,
		rule, mark)
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const rootRels = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>` +
	`</Relationships>`

const masterRels = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>` +
	`</Relationships>`

const layoutRels = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>` +
	`</Relationships>`

const slideRels = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
	`</Relationships>`

const slideLayout = xmlHeader +
	`<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="blank">` +
	`<p:cSld name="Blank"><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>` +
	`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sldLayout>`

const themeXML = xmlHeader +
	`<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office">` +
	`<a:themeElements><a:clrScheme name="Office">` +
	`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1><a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
	`<a:dk2><a:srgbClr val="44546A"/></a:dk2><a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>` +
	`<a:accent1><a:srgbClr val="667EEA"/></a:accent1><a:accent2><a:srgbClr val="764BA2"/></a:accent2>` +
	`<a:accent3><a:srgbClr val="A5A5A5"/></a:accent3><a:accent4><a:srgbClr val="FFC000"/></a:accent4>` +
	`<a:accent5><a:srgbClr val="5B9BD5"/></a:accent5><a:accent6><a:srgbClr val="70AD47"/></a:accent6>` +
	`<a:hlink><a:srgbClr val="0563C1"/></a:hlink><a:folHlink><a:srgbClr val="954F72"/></a:folHlink>` +
	`</a:clrScheme><a:fontScheme name="Office">` +
	`<a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>` +
	`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>` +
	`</a:fontScheme><a:fmtScheme name="Office">` +
	`<a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst>` +
	`<a:lnStyleLst><a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst>` +
	`<a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst>` +
	`<a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst>` +
	`</a:fmtScheme></a:themeElements></a:theme>`
