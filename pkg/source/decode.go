package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	// Packages
	"github.com/mutablelogic/go-transcript/pkg/schema"

	// Namespace imports
	. "github.com/djthorpe/go-errors"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Fields of a whisper segment record. Pointers distinguish missing values.
type record struct {
	Id    *int32   `json:"id"`
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
	Text  *string  `json:"text"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// ErrMalformedInput is returned when the input does not have the structure of
// a whisper transcript
var ErrMalformedInput = ErrBadParameter.With("malformed transcript")

// Largest time in seconds which can be held by a timestamp
var maxSeconds = float64(math.MaxInt64 / int64(time.Second))

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Decode reads a whisper JSON transcript. The document must be an object with
// a "segments" list. For each segment a missing end defaults to zero and
// missing text defaults to an empty string; text is trimmed.
func Decode(r io.Reader) (*schema.Transcription, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// Decode the top-level object
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	} else if doc == nil {
		return nil, fmt.Errorf("%w: expected an object", ErrMalformedInput)
	}

	// Decode the segments
	var records []json.RawMessage
	if raw, exists := doc["segments"]; !exists {
		return nil, fmt.Errorf("%w: missing 'segments' list", ErrMalformedInput)
	} else if isNull(raw) {
		return nil, fmt.Errorf("%w: 'segments' is not a list", ErrMalformedInput)
	} else if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: 'segments' is not a list", ErrMalformedInput)
	}

	result := &schema.Transcription{
		Segments: make([]*schema.Segment, 0, len(records)),
	}
	for i, raw := range records {
		seg, err := decodeSegment(i, raw)
		if err != nil {
			return nil, err
		}
		result.Segments = append(result.Segments, seg)
	}

	// Optional metadata is ignored if it has an unexpected type
	decodeOptional(doc, "task", &result.Task)
	decodeOptional(doc, "language", &result.Language)
	decodeOptional(doc, "text", &result.Text)
	decodeOptional(doc, "duration", &result.Duration)

	// Return success
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func decodeSegment(i int, raw json.RawMessage) (*schema.Segment, error) {
	var r record
	if isNull(raw) {
		return nil, fmt.Errorf("%w: segment %d is null", ErrMalformedInput, i)
	} else if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("%w: segment %d: %v", ErrMalformedInput, i, err)
	}

	seg := &schema.Segment{
		Id: int32(i),
	}
	if r.Id != nil {
		seg.Id = *r.Id
	}
	if r.Start != nil {
		if !inRange(*r.Start) {
			return nil, fmt.Errorf("%w: segment %d: start %v out of range", ErrMalformedInput, i, *r.Start)
		}
		seg.Start = schema.SecToTimestamp(*r.Start)
	}
	if r.End != nil {
		if !inRange(*r.End) {
			return nil, fmt.Errorf("%w: segment %d: end %v out of range", ErrMalformedInput, i, *r.End)
		}
		seg.End = schema.SecToTimestamp(*r.End)
	}
	if r.Text != nil {
		seg.Text = strings.TrimSpace(*r.Text)
	}
	return seg, nil
}

func decodeOptional(doc map[string]json.RawMessage, key string, v any) {
	if raw, exists := doc[key]; exists {
		_ = json.Unmarshal(raw, v)
	}
}

func inRange(sec float64) bool {
	return !math.IsNaN(sec) && math.Abs(sec) <= maxSeconds
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
