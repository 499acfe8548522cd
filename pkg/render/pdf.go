package render

import (
	"io"

	// Packages
	fpdf "github.com/go-pdf/fpdf"

	// Namespace imports
	. "github.com/djthorpe/go-errors"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// pdf renders a two-column document, with timestamps in the left margin
// and the text of each block alongside
type pdf struct {
	style Style
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	colorText      = [3]int{0, 0, 0}
	colorMuted     = [3]int{128, 128, 128}
	colorSeparator = [3]int{245, 245, 245}
)

const (
	rowPaddingTop  = 1
	separatorWidth = 0.25
)

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (r *pdf) Format() string {
	return FormatPDF
}

func (r *pdf) Render(w io.Writer, doc *Document) error {
	style := r.style
	if err := style.Validate(); err != nil {
		return err
	}

	// Page geometry
	f := fpdf.New("P", "pt", style.PageSize, "")
	left, right := inches(style.Margins.Left), inches(style.Margins.Right)
	top, bottom := inches(style.Margins.Top), inches(style.Margins.Bottom)
	f.SetMargins(left, top, right)
	f.SetAutoPageBreak(true, bottom)
	pageWidth, pageHeight := f.GetPageSize()
	width := pageWidth - left - right
	tsWidth := inches(style.TimestampWidth)
	bodyWidth := width - tsWidth
	if bodyWidth <= 0 {
		return ErrBadParameter.With("no room for text between the margins")
	}

	// Core fonts use cp1252
	tr := f.UnicodeTranslatorFromDescriptor("")

	// Metadata
	f.SetTitle(doc.Title, true)
	f.SetAuthor(style.Author, true)
	f.SetCreator("go-transcript", true)
	f.AddPage()

	// Title and subtitle
	if doc.Title != "" {
		f.SetFont(style.Font, "B", style.TitleSize)
		setTextColor(f, colorText)
		f.MultiCell(width, style.TitleLeading, tr(doc.Title), "", "L", false)
		f.Ln(style.TitleLeading / 2)
	}
	if doc.Subtitle != "" {
		f.SetFont(style.Font, "", style.SubtitleSize)
		setTextColor(f, colorMuted)
		f.MultiCell(width, style.SubtitleLeading, tr(doc.Subtitle), "", "L", false)
		f.Ln(style.SubtitleLeading)
	}

	// Rows
	for _, block := range doc.Blocks {
		body := tr(block.Text)

		// Start a new page if the row does not fit, unless it is already at the
		// top of a page
		f.SetFont(style.Font, "", style.BodySize)
		lines := f.SplitLines([]byte(body), bodyWidth)
		height := rowPaddingTop + float64(len(lines))*style.BodyLeading + style.RowSpacing
		if y := f.GetY(); y+height > pageHeight-bottom && y > top {
			f.AddPage()
		}
		y := f.GetY() + rowPaddingTop

		// Timestamp
		f.SetFont(style.Font, "B", style.TimestampSize)
		setTextColor(f, colorMuted)
		f.SetXY(left, y)
		f.CellFormat(tsWidth, style.BodyLeading, block.Label(), "", 0, "L", false, 0, "")

		// Text
		f.SetFont(style.Font, "", style.BodySize)
		setTextColor(f, colorText)
		f.SetXY(left+tsWidth, y)
		f.MultiCell(bodyWidth, style.BodyLeading, body, "", "L", false)

		// Separator
		y = f.GetY() + style.RowSpacing/2
		if style.Separators {
			f.SetDrawColor(colorSeparator[0], colorSeparator[1], colorSeparator[2])
			f.SetLineWidth(separatorWidth)
			f.Line(left, y, left+width, y)
		}
		f.SetXY(left, y+style.RowSpacing/2)
	}

	// Write the document
	if err := f.Output(w); err != nil {
		return err
	}
	return f.Error()
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func setTextColor(doc *fpdf.Fpdf, c [3]int) {
	doc.SetTextColor(c[0], c[1], c[2])
}
