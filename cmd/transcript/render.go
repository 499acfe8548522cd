package main

import (
	"fmt"

	// Packages
	render "github.com/mutablelogic/go-transcript/pkg/render"
	schema "github.com/mutablelogic/go-transcript/pkg/schema"
	logrus "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type RenderCmd struct {
	InputFlags
	Out      string `name:"out" short:"o" default:"transcript.pdf" help:"Output file, or - for standard output"`
	Title    string `flag:"" default:"Lecture Transcript" help:"Document title"`
	Subtitle string `flag:"" help:"Optional subtitle (course, date, etc.)"`
	Format   string `flag:"" help:"Output format (pdf, text, markdown, srt, vtt, json), inferred from the output file when not set"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *RenderCmd) Run(app *Globals) error {
	// Choose the renderer before doing any work
	format := cmd.Format
	if format == "" {
		format = render.FormatForPath(cmd.Out)
	}
	style, err := app.style()
	if err != nil {
		return err
	}
	renderer, err := render.New(format, style)
	if err != nil {
		return err
	}

	// Load and divide the transcript
	blocks, err := cmd.InputFlags.blocks(app)
	if err != nil {
		return err
	}

	// Write the document
	if err := render.WriteFile(cmd.Out, renderer, &render.Document{
		Title:    cmd.Title,
		Subtitle: cmd.Subtitle,
		Interval: schema.Timestamp(cmd.interval()),
		Blocks:   blocks,
	}); err != nil {
		return err
	}

	app.log.WithFields(logrus.Fields{
		"out":    cmd.Out,
		"format": renderer.Format(),
	}).Debug("wrote document")
	if cmd.Out != "-" {
		fmt.Printf("Wrote: %s  (%d timestamp blocks, ~%ds each)\n", cmd.Out, len(blocks), cmd.Interval)
	}

	// Return success
	return nil
}
