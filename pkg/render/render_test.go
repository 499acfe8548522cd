package render_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	// Packages
	errors "github.com/djthorpe/go-errors"
	"github.com/mutablelogic/go-transcript/pkg/render"
	"github.com/mutablelogic/go-transcript/pkg/schema"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Render_001(t *testing.T) {
	assert := assert.New(t)
	for _, format := range render.Formats {
		t.Run(format, func(t *testing.T) {
			r, err := render.New(format, nil)
			if assert.NoError(err) {
				assert.Equal(format, r.Format())
			}
		})
	}

	_, err := render.New("docx", nil)
	assert.ErrorIs(err, errors.ErrBadParameter)
}

func Test_Render_002(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		format, out string
	}{
		{render.FormatText, "Lecture 12\nCaches\n\n[00:00] So today we talk about caches.\n[01:01:00] Questions?\n"},
		{render.FormatMarkdown, "# Lecture 12\n\n> Caches\n\n**00:00** So today we talk about caches.\n\n**01:01:00** Questions?\n\n"},
		{render.FormatSRT, "1\n00:00:00,000 --> 00:00:30,000\nSo today we talk about caches.\n\n2\n01:01:00,000 --> 01:01:30,000\nQuestions?\n\n"},
		{render.FormatVTT, "WEBVTT\n\n00:00:00.000 --> 00:00:30.000\nSo today we talk about caches.\n\n01:01:00.000 --> 01:01:30.000\nQuestions?\n\n"},
	}
	for _, test := range tests {
		t.Run(test.format, func(t *testing.T) {
			r, err := render.New(test.format, nil)
			if !assert.NoError(err) {
				t.FailNow()
			}
			var buf bytes.Buffer
			assert.NoError(r.Render(&buf, document()))
			assert.Equal(test.out, buf.String())
		})
	}
}

func Test_Render_003(t *testing.T) {
	assert := assert.New(t)
	r, err := render.New(render.FormatJSON, nil)
	if !assert.NoError(err) {
		t.FailNow()
	}
	var buf bytes.Buffer
	if !assert.NoError(r.Render(&buf, document())) {
		t.FailNow()
	}

	var doc struct {
		Title    string  `json:"title"`
		Interval float64 `json:"interval"`
		Blocks   []struct {
			Start float64 `json:"start"`
			Text  string  `json:"text"`
		} `json:"blocks"`
	}
	assert.NoError(json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal("Lecture 12", doc.Title)
	assert.Equal(30.0, doc.Interval)
	if assert.Len(doc.Blocks, 2) {
		assert.Equal(3660.0, doc.Blocks[1].Start)
		assert.Equal("Questions?", doc.Blocks[1].Text)
	}
}

func Test_PDF_001(t *testing.T) {
	assert := assert.New(t)
	r, err := render.New("PDF", nil)
	if !assert.NoError(err) {
		t.FailNow()
	}

	// Enough rows to run over several pages, with non-ASCII text
	doc := document()
	for i := 0; i < 200; i++ {
		doc.Blocks = append(doc.Blocks, &schema.Block{
			Start: schema.SecToTimestamp(float64(i * 30)),
			End:   schema.SecToTimestamp(float64(i*30 + 30)),
			Text:  strings.Repeat("Caché lines and memory hierarchies. ", 1+i%7),
		})
	}

	var buf bytes.Buffer
	if assert.NoError(r.Render(&buf, doc)) {
		assert.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		assert.Contains(buf.String(), "%%EOF")
	}
}

func Test_PDF_002(t *testing.T) {
	assert := assert.New(t)
	style := render.DefaultStyle()
	style.TimestampWidth = 20
	r, err := render.New(render.FormatPDF, style)
	if !assert.NoError(err) {
		t.FailNow()
	}
	var buf bytes.Buffer
	assert.ErrorIs(r.Render(&buf, document()), errors.ErrBadParameter)
}

func Test_Format_001(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(render.FormatPDF, render.FormatForPath("transcript.pdf"))
	assert.Equal(render.FormatPDF, render.FormatForPath("transcript"))
	assert.Equal(render.FormatMarkdown, render.FormatForPath("notes/Lecture.MD"))
	assert.Equal(render.FormatSRT, render.FormatForPath("a.srt"))
	assert.Equal(render.FormatVTT, render.FormatForPath("a.vtt"))
	assert.Equal(render.FormatText, render.FormatForPath("a.txt"))
	assert.Equal(render.FormatJSON, render.FormatForPath("a.json"))
}

func Test_Style_001(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "style.yaml")
	assert.NoError(os.WriteFile(path, []byte("page_size: A4\nmargins:\n  left: 1.25\nbody_size: 12\nseparators: false\n"), 0o600))

	style, err := render.LoadStyle(path)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("A4", style.PageSize)
	assert.Equal(1.25, style.Margins.Left)
	assert.Equal(0.85, style.Margins.Right)
	assert.Equal(12.0, style.BodySize)
	assert.Equal(15.0, style.BodyLeading)
	assert.False(style.Separators)

	assert.NoError(os.WriteFile(path, []byte("page_size: B7\n"), 0o600))
	_, err = render.LoadStyle(path)
	assert.ErrorIs(err, errors.ErrBadParameter)

	assert.NoError(os.WriteFile(path, []byte("body_size: [1, 2]\n"), 0o600))
	_, err = render.LoadStyle(path)
	assert.ErrorIs(err, errors.ErrBadParameter)

	_, err = render.LoadStyle(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(err, os.ErrNotExist)
}

func Test_WriteFile_001(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "out.md")
	r, err := render.New(render.FormatForPath(path), nil)
	if !assert.NoError(err) {
		t.FailNow()
	}
	if !assert.NoError(render.WriteFile(path, r, document())) {
		t.FailNow()
	}
	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.True(strings.HasPrefix(string(data), "# Lecture 12\n"))
}

///////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func document() *render.Document {
	return &render.Document{
		Title:    "Lecture 12",
		Subtitle: "Caches",
		Interval: schema.Timestamp(30 * time.Second),
		Blocks: []*schema.Block{
			{Start: schema.SecToTimestamp(0), End: schema.SecToTimestamp(30), Text: "So today we talk about caches."},
			{Start: schema.SecToTimestamp(3660), End: schema.SecToTimestamp(3690), Text: "Questions?"},
		},
	}
}
