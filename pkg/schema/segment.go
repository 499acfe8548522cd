package schema

import (
	"encoding/json"
	"strings"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Segment is a single timed piece of speech from the recognizer
type Segment struct {
	Id    int32     `json:"id" writer:",right,width:5"`
	Start Timestamp `json:"start" writer:",right,width:8"`
	End   Timestamp `json:"end" writer:",right,width:8"`
	Text  string    `json:"text" writer:",wrap,width:70"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s *Segment) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Until returns the end of the segment, which is never before the start
func (s *Segment) Until() Timestamp {
	if s.End < s.Start {
		return s.Start
	}
	return s.End
}

// Trimmed returns the text of the segment without surrounding whitespace
func (s *Segment) Trimmed() string {
	return strings.TrimSpace(s.Text)
}
