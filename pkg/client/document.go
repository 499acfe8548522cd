package client

import (
	"io"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// document copies a response body of any content type to a writer
type document struct {
	w        io.Writer
	mimetype string
}

///////////////////////////////////////////////////////////////////////////////
// UNMARSHAL

// Unmarshal is called for response bodies which are not JSON
func (d *document) Unmarshal(mimetype string, r io.Reader) error {
	d.mimetype = mimetype
	_, err := io.Copy(d.w, r)
	return err
}

// UnmarshalJSON is called with the JSON value of a JSON response body
func (d *document) UnmarshalJSON(data []byte) error {
	d.mimetype = "application/json"
	_, err := d.w.Write(data)
	return err
}
