package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Block is one margin row of the document: the cleaned text of every segment
// which falls into a fixed-width, aligned time bucket
type Block struct {
	Start Timestamp `json:"start" writer:",right,width:8"`
	End   Timestamp `json:"end" writer:",right,width:8"`
	Text  string    `json:"text" writer:",wrap,width:70"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (b *Block) String() string {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Label returns the margin timestamp for the block
func (b *Block) Label() string {
	return FormatClock(b.Start)
}

// WriteSRT writes the block as a numbered subrip cue
func (b *Block) WriteSRT(w io.Writer, n int) {
	fmt.Fprintf(w, "%d\n%s --> %s\n", n, tsToSrt(time.Duration(b.Start)), tsToSrt(time.Duration(b.End)))
	fmt.Fprintf(w, "%s\n\n", b.Text)
}

// WriteVTT writes the block as a WebVTT cue, without the file header
func (b *Block) WriteVTT(w io.Writer) {
	if b.Text == "" {
		return
	}
	fmt.Fprintf(w, "%s --> %s\n", tsToVtt(time.Duration(b.Start)), tsToVtt(time.Duration(b.End)))
	fmt.Fprintf(w, "%s\n\n", b.Text)
}

// WriteText writes the block as a single line prefixed with its timestamp
func (b *Block) WriteText(w io.Writer) {
	fmt.Fprintf(w, "[%s] %s\n", b.Label(), b.Text)
}

// WriteMarkdown writes the block as a paragraph with a bold timestamp
func (b *Block) WriteMarkdown(w io.Writer) {
	fmt.Fprintf(w, "**%s** %s\n\n", b.Label(), b.Text)
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func tsToSrt(ts time.Duration) string {
	if ts < 0 {
		ts = 0
	}
	hours := int(ts.Hours())
	minutes := int(ts.Minutes()) % 60
	seconds := int(ts.Seconds()) % 60
	milliseconds := int(ts.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, milliseconds)
}

func tsToVtt(ts time.Duration) string {
	if ts < 0 {
		ts = 0
	}
	hours := int(ts.Hours())
	minutes := int(ts.Minutes()) % 60
	seconds := int(ts.Seconds()) % 60
	milliseconds := int(ts.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, milliseconds)
}
