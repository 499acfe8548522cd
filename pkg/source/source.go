// Package source loads whisper transcripts from files, standard input or
// a remote URL.
package source

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	schema "github.com/mutablelogic/go-transcript/pkg/schema"
	logrus "github.com/sirupsen/logrus"

	// Namespace imports
	. "github.com/djthorpe/go-errors"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type opts struct {
	stdin   io.Reader
	timeout time.Duration
	trace   io.Writer
	log     logrus.FieldLogger
}

// Opt is an option for Open
type Opt func(*opts) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Path which reads the transcript from standard input
	Stdin = "-"

	defaultTimeout = time.Minute
)

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// OptStdin sets the reader used when the path is "-"
func OptStdin(r io.Reader) Opt {
	return func(o *opts) error {
		if r == nil {
			return ErrBadParameter.With("stdin is nil")
		}
		o.stdin = r
		return nil
	}
}

// OptTimeout sets the timeout for fetching a remote transcript
func OptTimeout(v time.Duration) Opt {
	return func(o *opts) error {
		if v <= 0 {
			return ErrBadParameter.Withf("invalid timeout %v", v)
		}
		o.timeout = v
		return nil
	}
}

// OptTrace writes HTTP requests and responses for remote transcripts to w
func OptTrace(w io.Writer) Opt {
	return func(o *opts) error {
		o.trace = w
		return nil
	}
}

// OptLogger sets the logger
func OptLogger(log logrus.FieldLogger) Opt {
	return func(o *opts) error {
		if log == nil {
			return ErrBadParameter.With("logger is nil")
		}
		o.log = log
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Open loads a transcript from path. The path "-" reads standard input, an
// http or https URL is fetched, and anything else is read as a file.
func Open(ctx context.Context, path string, opt ...Opt) (*schema.Transcription, error) {
	o := opts{
		stdin:   os.Stdin,
		timeout: defaultTimeout,
		log:     logrus.StandardLogger(),
	}
	for _, fn := range opt {
		if err := fn(&o); err != nil {
			return nil, err
		}
	}

	var result *schema.Transcription
	var err error
	switch {
	case path == "":
		return nil, ErrBadParameter.With("missing transcript path")
	case path == Stdin:
		result, err = Decode(o.stdin)
	case IsURL(path):
		result, err = fetch(ctx, path, &o)
	default:
		result, err = readFile(path)
	}
	if err != nil {
		return nil, err
	}

	o.log.WithFields(logrus.Fields{
		"path":     path,
		"segments": len(result.Segments),
		"language": result.Language,
	}).Debug("loaded transcript")

	// Return success
	return result, nil
}

// IsURL returns true if the path should be fetched over HTTP
func IsURL(path string) bool {
	path = strings.ToLower(path)
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func readFile(path string) (*schema.Transcription, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

func fetch(ctx context.Context, url string, o *opts) (*schema.Transcription, error) {
	// Create a client for the endpoint
	clientopts := []client.ClientOpt{
		client.OptEndpoint(url),
		client.OptTimeout(o.timeout),
	}
	if o.trace != nil {
		clientopts = append(clientopts, client.OptTrace(o.trace, false))
	}
	remote, err := client.New(clientopts...)
	if err != nil {
		return nil, err
	}

	// Fetch the document
	o.log.WithField("url", url).Debug("fetching transcript")
	var body document
	if err := remote.DoWithContext(ctx, client.MethodGet, &body); err != nil {
		return nil, err
	}
	o.log.WithFields(logrus.Fields{"url": url, "type": body.mimetype, "bytes": len(body.data)}).Debug("fetched transcript")

	return Decode(bytes.NewReader(body.data))
}

///////////////////////////////////////////////////////////////////////////////
// RESPONSE

// document holds a response body whatever its content type, since hosts
// often serve JSON files as text/plain or application/octet-stream
type document struct {
	mimetype string
	data     []byte
}

func (d *document) Unmarshal(mimetype string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	d.mimetype, d.data = mimetype, data
	return nil
}

func (d *document) UnmarshalJSON(data []byte) error {
	d.mimetype, d.data = "application/json", bytes.Clone(data)
	return nil
}
