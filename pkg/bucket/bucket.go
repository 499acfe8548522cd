// Package bucket groups timed transcript segments into fixed-width,
// aligned blocks of cleaned text.
package bucket

import (
	"slices"
	"strings"
	"time"

	// Packages
	"github.com/mutablelogic/go-transcript/pkg/normalize"
	"github.com/mutablelogic/go-transcript/pkg/schema"

	// Namespace imports
	. "github.com/djthorpe/go-errors"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type opts struct {
	normalize func(string) string
}

// Opt is an option for Bucketize
type Opt func(*opts) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// ErrEmptyResult is returned by callers when bucketing produced no blocks,
// even though the transcript was well-formed
var ErrEmptyResult = ErrNotFound.With("no transcript text found in segments")

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// OptNormalizer replaces the text cleanup applied to each block
func OptNormalizer(fn func(string) string) Opt {
	return func(o *opts) error {
		if fn == nil {
			return ErrBadParameter.With("normalizer is nil")
		}
		o.normalize = fn
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Bucketize groups segments, which are ordered by start time, into blocks
// of width interval. Block boundaries are aligned to the first segment start
// rounded down to a multiple of the interval. Blocks with no text after
// cleanup are omitted, so the returned blocks are ordered but may have gaps.
//
// Segments are consumed with a forward-only cursor: once a segment ends at or
// before the start of a block it is never considered again, and any segment
// from the cursor onwards which starts before the end of a block contributes
// its text to that block.
func Bucketize(segments []*schema.Segment, interval time.Duration, opt ...Opt) ([]*schema.Block, error) {
	o := opts{normalize: normalize.Normalize}
	for _, fn := range opt {
		if err := fn(&o); err != nil {
			return nil, err
		}
	}
	if interval <= 0 {
		return nil, ErrBadParameter.Withf("interval must be positive, got %v", interval)
	}

	// Ignore nil segments
	segments = slices.DeleteFunc(slices.Clone(segments), func(seg *schema.Segment) bool {
		return seg == nil
	})
	if len(segments) == 0 {
		return []*schema.Block{}, nil
	}

	// Determine the aligned start and the number of blocks
	anchor := Anchor(segments[0].Start, interval)
	last := segments[0].Until()
	for _, seg := range segments[1:] {
		last = max(last, seg.Until())
	}
	n := Count(anchor, last, interval)

	// Fill the blocks
	result := make([]*schema.Block, 0, n)
	cursor := 0
	texts := make([]string, 0, 16)
	for i := 0; i < n; i++ {
		start := anchor + schema.Timestamp(time.Duration(i)*interval)
		end := start + schema.Timestamp(interval)

		// Skip segments which have ended
		for cursor < len(segments) && segments[cursor].Until() <= start {
			cursor++
		}

		// Collect the text of segments which start before the end of the block
		texts = texts[:0]
		for j := cursor; j < len(segments) && segments[j].Start < end; j++ {
			if text := segments[j].Trimmed(); text != "" {
				texts = append(texts, text)
			}
		}
		if len(texts) == 0 {
			continue
		}

		if text := o.normalize(strings.Join(texts, " ")); text != "" {
			result = append(result, &schema.Block{
				Start: start,
				End:   end,
				Text:  text,
			})
		}
	}

	// Return success
	return result, nil
}

// Anchor returns ts rounded down to a multiple of interval
func Anchor(ts schema.Timestamp, interval time.Duration) schema.Timestamp {
	if interval <= 0 {
		return ts
	}
	n := time.Duration(ts) / interval
	if time.Duration(ts)%interval < 0 {
		n--
	}
	return schema.Timestamp(n * interval)
}

// Count returns the number of blocks of width interval needed to tile the
// range from anchor to end
func Count(anchor, end schema.Timestamp, interval time.Duration) int {
	if interval <= 0 || end <= anchor {
		return 0
	}
	d := time.Duration(end - anchor)
	n := d / interval
	if d%interval > 0 {
		n++
	}
	return int(n)
}
