package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	// Packages
	"github.com/mutablelogic/go-server/pkg/httprequest"
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-transcript/pkg/bucket"
	"github.com/mutablelogic/go-transcript/pkg/render"
	"github.com/mutablelogic/go-transcript/pkg/schema"
	"github.com/mutablelogic/go-transcript/pkg/source"

	// Namespace imports
	. "github.com/djthorpe/go-errors"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type queryRender struct {
	Format   string `json:"format"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Interval int    `json:"interval"`
}

type respBlocks struct {
	Interval schema.Timestamp `json:"interval"`
	Blocks   []*schema.Block  `json:"blocks"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Largest transcript accepted in a request body
	maxBodySize = 64 << 20

	defaultInterval = 30
	defaultTitle    = "Lecture Transcript"
)

var contentTypes = map[string]string{
	render.FormatPDF:      "application/pdf",
	render.FormatText:     "text/plain",
	render.FormatMarkdown: "text/markdown",
	render.FormatSRT:      "application/x-subrip",
	render.FormatVTT:      "text/vtt",
	render.FormatJSON:     "application/json",
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Blocks responds with the timestamped blocks of the transcript in the body
func Blocks(w http.ResponseWriter, r *http.Request) error {
	query, err := readQuery(r)
	if err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}

	blocks, err := readBlocks(w, r, query)
	if err != nil {
		return errorResponse(w, err)
	}

	// Response to client
	return httpresponse.JSON(w, http.StatusOK, 2, respBlocks{
		Interval: interval(query),
		Blocks:   blocks,
	})
}

// Render responds with the transcript in the body rendered as a document
func Render(w http.ResponseWriter, r *http.Request, style *render.Style) error {
	query, err := readQuery(r)
	if err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}
	if query.Format == "" {
		query.Format = render.FormatPDF
	}
	renderer, err := render.New(query.Format, style)
	if err != nil {
		return errorResponse(w, err)
	}

	blocks, err := readBlocks(w, r, query)
	if err != nil {
		return errorResponse(w, err)
	}

	// Render the document before writing the response, so errors can be
	// reported with a status code
	var buf bytes.Buffer
	if err := renderer.Render(&buf, &render.Document{
		Title:    query.Title,
		Subtitle: query.Subtitle,
		Interval: interval(query),
		Blocks:   blocks,
	}); err != nil {
		return errorResponse(w, err)
	}

	// Response to client
	return httpresponse.Write(w, http.StatusOK, contentTypes[renderer.Format()], func(w io.Writer) (int, error) {
		return w.Write(buf.Bytes())
	})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// readQuery reads the query parameters. Parameters which are absent take
// their default values.
func readQuery(r *http.Request) (queryRender, error) {
	var query queryRender
	values := r.URL.Query()
	if err := httprequest.Query(values, &query); err != nil {
		return query, err
	}
	if !values.Has("title") {
		query.Title = defaultTitle
	}
	if !values.Has("interval") {
		query.Interval = defaultInterval
	}
	return query, nil
}

func readBlocks(w http.ResponseWriter, r *http.Request, query queryRender) ([]*schema.Block, error) {
	transcription, err := source.Decode(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		return nil, err
	}
	blocks, err := bucket.Bucketize(transcription.Segments, time.Duration(query.Interval)*time.Second)
	if err != nil {
		return nil, err
	} else if len(blocks) == 0 {
		return nil, bucket.ErrEmptyResult
	}
	return blocks, nil
}

func interval(query queryRender) schema.Timestamp {
	return schema.Timestamp(time.Duration(query.Interval) * time.Second)
}

// errorResponse maps errors to a status code
func errorResponse(w http.ResponseWriter, err error) error {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		return httpresponse.Error(w, httpresponse.Err(http.StatusRequestEntityTooLarge), err.Error())
	case errors.Is(err, bucket.ErrEmptyResult):
		return httpresponse.Error(w, httpresponse.ErrNotFound, err.Error())
	case errors.Is(err, ErrBadParameter):
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	default:
		return httpresponse.Error(w, httpresponse.ErrInternalError, err.Error())
	}
}
