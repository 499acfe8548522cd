package client

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	// Packages
	"github.com/mutablelogic/go-transcript/pkg/render"

	// Namespace imports
	. "github.com/djthorpe/go-errors"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Request options
type opts struct {
	query url.Values
}

type Opt func(*opts) error

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(opt ...Opt) (*opts, error) {
	o := opts{query: url.Values{}}
	for _, opt := range opt {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	return &o, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// OptFormat sets the document format, one of render.Formats
func OptFormat(format string) Opt {
	return func(o *opts) error {
		format = strings.ToLower(strings.TrimSpace(format))
		if !slices.Contains(render.Formats, format) {
			return ErrBadParameter.Withf("unsupported format %q", format)
		}
		o.query.Set("format", format)
		return nil
	}
}

// OptTitle sets the document title
func OptTitle(title string) Opt {
	return func(o *opts) error {
		o.query.Set("title", title)
		return nil
	}
}

// OptSubtitle sets the line under the document title
func OptSubtitle(subtitle string) Opt {
	return func(o *opts) error {
		o.query.Set("subtitle", subtitle)
		return nil
	}
}

// OptInterval sets the spacing of the timestamps, in whole seconds
func OptInterval(interval time.Duration) Opt {
	return func(o *opts) error {
		if interval < time.Second || interval%time.Second != 0 {
			return ErrBadParameter.Withf("interval must be a positive number of seconds, got %v", interval)
		}
		o.query.Set("interval", strconv.FormatInt(int64(interval/time.Second), 10))
		return nil
	}
}
