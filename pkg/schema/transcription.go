package schema

import (
	"encoding/json"
	"fmt"
	"time"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Timestamp is an offset into the recording. It is marshalled as float
// seconds, the way whisper writes segment times.
type Timestamp time.Duration

type Transcription struct {
	Task     string     `json:"task,omitempty"`
	Language string     `json:"language,omitempty" writer:",width:8"`
	Duration Timestamp  `json:"duration,omitempty" writer:",width:8,right"`
	Text     string     `json:"text,omitempty" writer:",width:60,wrap"`
	Segments []*Segment `json:"segments" writer:",width:40,wrap"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t *Transcription) String() string {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (t Timestamp) String() string {
	return FormatClock(t)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	// We convert durations into float64 seconds
	return json.Marshal(time.Duration(t).Seconds())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var seconds float64
	if err := json.Unmarshal(data, &seconds); err != nil {
		return err
	}
	*t = SecToTimestamp(seconds)
	return nil
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func SecToTimestamp(sec float64) Timestamp {
	// Convert seconds to Timestamp
	return Timestamp(time.Duration(sec * float64(time.Second)))
}

// Seconds returns the timestamp as float seconds
func (t Timestamp) Seconds() float64 {
	return time.Duration(t).Seconds()
}

// FormatClock returns the timestamp as MM:SS, or HH:MM:SS when the hour
// component is non-zero. The value is rounded to the nearest second first,
// with halves rounding up.
func FormatClock(ts Timestamp) string {
	if ts < 0 {
		ts = 0
	}
	secs := int64((time.Duration(ts) + time.Second/2) / time.Second)
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
