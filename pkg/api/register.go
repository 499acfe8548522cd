package api

import (
	"net/http"
	"os"

	// Packages
	"github.com/mutablelogic/go-server/pkg/httpresponse"
	"github.com/mutablelogic/go-server/pkg/logger"
	"github.com/mutablelogic/go-server/pkg/types"
	"github.com/mutablelogic/go-transcript/pkg/render"
)

/////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RegisterEndpoints adds the transcript endpoints under base to mux, creating
// a new mux if it is nil. The style is used for pdf output.
func RegisterEndpoints(base string, style *render.Style, mux *http.ServeMux, debug bool) *http.ServeMux {
	// Create a new router
	if mux == nil {
		mux = http.NewServeMux()
	}
	if style == nil {
		style = render.DefaultStyle()
	}

	// Create a logger
	logger := logger.New(os.Stderr, logger.Term, debug)

	// Not Found: GET /
	//   returns a not found response
	mux.HandleFunc("/", logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		httpresponse.Error(w, httpresponse.ErrNotFound)
	}))

	// Health: GET /v1/health
	//   returns an empty OK response
	mux.HandleFunc(types.JoinPath(base, "health"), logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodGet:
			httpresponse.Empty(w, http.StatusOK)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}))

	// Blocks: POST /v1/blocks?interval={seconds}
	//   divides a whisper JSON transcript into timestamped blocks of
	//   cleaned text, and returns them as JSON
	mux.HandleFunc(types.JoinPath(base, "blocks"), logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodPost:
			Blocks(w, r)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}))

	// Render: POST /v1/render?format={format}&title={title}&subtitle={subtitle}&interval={seconds}
	//   renders a whisper JSON transcript as a document with margin
	//   timestamps, pdf by default
	mux.HandleFunc(types.JoinPath(base, "render"), logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodPost:
			Render(w, r, style)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}))

	// Return mux
	return mux
}
