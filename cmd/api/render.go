package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Packages
	client "github.com/mutablelogic/go-transcript/pkg/client"
	render "github.com/mutablelogic/go-transcript/pkg/render"
)

type RenderCmd struct {
	Path     string `arg:"" help:"Whisper JSON transcript file" type:"existingfile"`
	Out      string `name:"out" short:"o" help:"Output file" default:"transcript.pdf"`
	Title    string `name:"title" help:"Document title" default:"Lecture Transcript"`
	Subtitle string `name:"subtitle" help:"Line under the title, for example the course and date"`
	Interval uint   `name:"interval" help:"Seconds between timestamps" default:"30"`
	Format   string `name:"format" help:"Output format, inferred from the output file extension if not set"`
}

func (cmd *RenderCmd) Run(app *Globals) error {
	format := cmd.Format
	if format == "" {
		format = render.FormatForPath(cmd.Out)
	}

	service, err := app.service()
	if err != nil {
		return err
	}

	r, err := os.Open(cmd.Path)
	if err != nil {
		return err
	}
	defer r.Close()

	// Write to a temporary file, which replaces the output on success
	w, err := os.CreateTemp(filepath.Dir(cmd.Out), ".transcript-*")
	if err != nil {
		return err
	}
	defer os.Remove(w.Name())
	defer w.Close()

	if _, err := service.Render(app.ctx, w, r,
		client.OptFormat(format),
		client.OptTitle(cmd.Title),
		client.OptSubtitle(cmd.Subtitle),
		client.OptInterval(time.Duration(cmd.Interval)*time.Second),
	); err != nil {
		return err
	} else if err := w.Close(); err != nil {
		return err
	} else if err := os.Rename(w.Name(), cmd.Out); err != nil {
		return err
	}

	fmt.Println("Wrote:", cmd.Out)
	return nil
}
