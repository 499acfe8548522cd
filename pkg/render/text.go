package render

import (
	"encoding/json"
	"fmt"
	"io"

	// Namespace imports
	. "github.com/djthorpe/go-errors"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// text renders the plain text formats
type text struct {
	format string
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (r *text) Format() string {
	return r.format
}

func (r *text) Render(w io.Writer, doc *Document) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatText:
		if doc.Title != "" {
			fmt.Fprintf(w, "%s\n", doc.Title)
		}
		if doc.Subtitle != "" {
			fmt.Fprintf(w, "%s\n", doc.Subtitle)
		}
		if doc.Title != "" || doc.Subtitle != "" {
			fmt.Fprintln(w)
		}
		for _, block := range doc.Blocks {
			block.WriteText(w)
		}
	case FormatMarkdown:
		if doc.Title != "" {
			fmt.Fprintf(w, "# %s\n\n", doc.Title)
		}
		if doc.Subtitle != "" {
			fmt.Fprintf(w, "> %s\n\n", doc.Subtitle)
		}
		for _, block := range doc.Blocks {
			block.WriteMarkdown(w)
		}
	case FormatSRT:
		for i, block := range doc.Blocks {
			block.WriteSRT(w, i+1)
		}
	case FormatVTT:
		fmt.Fprint(w, "WEBVTT\n\n")
		for _, block := range doc.Blocks {
			block.WriteVTT(w)
		}
	default:
		return ErrNotImplemented.Withf("format %q", r.format)
	}
	return nil
}
