package client

import (
	"context"
	"encoding/json"
	"io"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-transcript/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client calls the endpoints of a transcript service
type Client struct {
	*client.Client
}

// BlocksResponse is the timestamped blocks of a transcript
type BlocksResponse struct {
	Interval schema.Timestamp `json:"interval"`
	Blocks   []*schema.Block  `json:"blocks"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client for the service at endpoint, which includes
// the path prefix (for example, http://localhost:8080/api/v1)
func New(endpoint string, opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endpoint),
	}, opts...)
	if client, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{Client: client}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Ping returns nil if the service is healthy
func (c *Client) Ping(ctx context.Context) error {
	return c.DoWithContext(ctx, client.MethodGet, nil, client.OptPath("health"))
}

// Blocks sends the whisper JSON transcript read from r, and returns
// the timestamped blocks. Only the interval option is used.
func (c *Client) Blocks(ctx context.Context, r io.Reader, opt ...Opt) (*BlocksResponse, error) {
	var response BlocksResponse

	o, err := applyOpts(opt...)
	if err != nil {
		return nil, err
	}
	payload, err := transcript(r)
	if err != nil {
		return nil, err
	}

	// Send the request
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("blocks"), client.OptQuery(o.query)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// Render sends the whisper JSON transcript read from r, and writes the
// rendered document to w. It returns the mime type of the document.
func (c *Client) Render(ctx context.Context, w io.Writer, r io.Reader, opt ...Opt) (string, error) {
	o, err := applyOpts(opt...)
	if err != nil {
		return "", err
	}
	payload, err := transcript(r)
	if err != nil {
		return "", err
	}

	// Send the request
	response := document{w: w}
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("render"), client.OptQuery(o.query)); err != nil {
		return "", err
	}

	// Return success
	return response.mimetype, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func transcript(r io.Reader) (client.Payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return client.NewJSONRequest(json.RawMessage(data))
}
