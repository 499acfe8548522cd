// Package render writes blocks of transcript text, each annotated with a
// margin timestamp, as a paginated document or a plain text format.
package render

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-transcript/pkg/schema"

	// Namespace imports
	. "github.com/djthorpe/go-errors"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Document is the input to a renderer
type Document struct {
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle,omitempty"`
	Interval schema.Timestamp `json:"interval"`
	Blocks   []*schema.Block  `json:"blocks"`
}

// Renderer writes a document in a specific format
type Renderer interface {
	// Format returns the name of the format
	Format() string

	// Render writes the document to w
	Render(w io.Writer, doc *Document) error
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	FormatPDF      = "pdf"
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatSRT      = "srt"
	FormatVTT      = "vtt"
	FormatJSON     = "json"
)

// Formats lists the supported output formats
var Formats = []string{FormatPDF, FormatText, FormatMarkdown, FormatSRT, FormatVTT, FormatJSON}

var extensions = map[string]string{
	".pdf":      FormatPDF,
	".txt":      FormatText,
	".text":     FormatText,
	".md":       FormatMarkdown,
	".markdown": FormatMarkdown,
	".srt":      FormatSRT,
	".vtt":      FormatVTT,
	".json":     FormatJSON,
}

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a renderer for the format. The style is only used by the pdf
// renderer, and when nil the default style is used.
func New(format string, style *Style) (Renderer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if !slices.Contains(Formats, format) {
		return nil, ErrBadParameter.Withf("format %q not supported", format)
	}
	if style == nil {
		style = DefaultStyle()
	}
	switch format {
	case FormatPDF:
		return &pdf{style: *style}, nil
	default:
		return &text{format: format}, nil
	}
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// FormatForPath returns the format implied by the file extension of path,
// defaulting to pdf
func FormatForPath(path string) string {
	if format, exists := extensions[strings.ToLower(filepath.Ext(path))]; exists {
		return format
	}
	return FormatPDF
}

// WriteFile renders the document to path, or to standard output when the
// path is "-"
func WriteFile(path string, r Renderer, doc *Document) error {
	if path == "-" {
		return r.Render(os.Stdout, doc)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Render(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
