package schema_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	// Packages
	"github.com/mutablelogic/go-transcript/pkg/schema"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Clock_001(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		in  float64
		out string
	}{
		{0, "00:00"},
		{65, "01:05"},
		{3661, "01:01:01"},
		{59.6, "01:00"},
		{59.4, "00:59"},
		{0.5, "00:01"},
		{3599.5, "01:00:00"},
		{-3, "00:00"},
	}
	for _, test := range tests {
		t.Run(test.out, func(t *testing.T) {
			assert.Equal(test.out, schema.FormatClock(schema.SecToTimestamp(test.in)))
		})
	}
}

func Test_Timestamp_001(t *testing.T) {
	assert := assert.New(t)

	var seg schema.Segment
	if !assert.NoError(json.Unmarshal([]byte(`{"id":3,"start":1.5,"end":4.25,"text":" hello "}`), &seg)) {
		t.FailNow()
	}
	assert.Equal(schema.Timestamp(1500*time.Millisecond), seg.Start)
	assert.Equal(schema.Timestamp(4250*time.Millisecond), seg.End)
	assert.Equal("hello", seg.Trimmed())

	data, err := json.Marshal(seg.End)
	assert.NoError(err)
	assert.Equal("4.25", string(data))
}

func Test_Segment_001(t *testing.T) {
	assert := assert.New(t)
	seg := schema.Segment{Start: schema.SecToTimestamp(10), End: schema.SecToTimestamp(2)}
	assert.Equal(seg.Start, seg.Until())

	seg.End = schema.SecToTimestamp(12)
	assert.Equal(seg.End, seg.Until())
}

func Test_Block_001(t *testing.T) {
	assert := assert.New(t)
	block := schema.Block{
		Start: schema.SecToTimestamp(3600),
		End:   schema.SecToTimestamp(3630),
		Text:  "Hello there.",
	}

	var buf bytes.Buffer
	block.WriteSRT(&buf, 7)
	assert.Equal("7\n01:00:00,000 --> 01:00:30,000\nHello there.\n\n", buf.String())

	buf.Reset()
	block.WriteVTT(&buf)
	assert.Equal("01:00:00.000 --> 01:00:30.000\nHello there.\n\n", buf.String())

	buf.Reset()
	block.WriteText(&buf)
	assert.Equal("[01:00:00] Hello there.\n", buf.String())

	buf.Reset()
	block.WriteMarkdown(&buf)
	assert.Equal("**01:00:00** Hello there.\n\n", buf.String())
}
