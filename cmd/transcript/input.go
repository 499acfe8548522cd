package main

import (
	"os"
	"time"

	// Packages
	bucket "github.com/mutablelogic/go-transcript/pkg/bucket"
	schema "github.com/mutablelogic/go-transcript/pkg/schema"
	source "github.com/mutablelogic/go-transcript/pkg/source"
	logrus "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// InputFlags select the transcript and how it is divided into blocks
type InputFlags struct {
	Path     string        `arg:"" help:"Whisper JSON transcript: a file, an http(s) URL, or - for standard input"`
	Interval uint          `flag:"" default:"30" help:"Timestamp interval in seconds"`
	Timeout  time.Duration `flag:"" default:"1m" help:"Timeout when fetching a transcript from a URL"`
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (flags *InputFlags) interval() time.Duration {
	return time.Duration(flags.Interval) * time.Second
}

// blocks loads the transcript and groups its segments into blocks. It
// returns an error when no block has any text.
func (flags *InputFlags) blocks(app *Globals) ([]*schema.Block, error) {
	opts := []source.Opt{
		source.OptLogger(app.log),
		source.OptTimeout(flags.Timeout),
	}
	if app.Debug {
		opts = append(opts, source.OptTrace(os.Stderr))
	}

	// Load the transcript
	transcription, err := source.Open(app.ctx, flags.Path, opts...)
	if err != nil {
		return nil, err
	}

	// Divide into blocks
	blocks, err := bucket.Bucketize(transcription.Segments, flags.interval())
	if err != nil {
		return nil, err
	} else if len(blocks) == 0 {
		return nil, bucket.ErrEmptyResult
	}

	app.log.WithFields(logrus.Fields{
		"segments": len(transcription.Segments),
		"blocks":   len(blocks),
		"interval": flags.interval(),
	}).Debug("divided transcript into blocks")

	// Return success
	return blocks, nil
}
