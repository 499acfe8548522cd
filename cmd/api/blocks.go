package main

import (
	"os"
	"time"

	// Packages
	client "github.com/mutablelogic/go-transcript/pkg/client"
)

type BlocksCmd struct {
	Path     string `arg:"" help:"Whisper JSON transcript file" type:"existingfile"`
	Interval uint   `name:"interval" help:"Seconds between timestamps" default:"30"`
}

type blockRow struct {
	Time string `json:"time" writer:",right,width:8"`
	Text string `json:"text" writer:",wrap,width:70"`
}

func (cmd *BlocksCmd) Run(app *Globals) error {
	service, err := app.service()
	if err != nil {
		return err
	}

	r, err := os.Open(cmd.Path)
	if err != nil {
		return err
	}
	defer r.Close()

	response, err := service.Blocks(app.ctx, r, client.OptInterval(time.Duration(cmd.Interval)*time.Second))
	if err != nil {
		return err
	}

	rows := make([]blockRow, 0, len(response.Blocks))
	for _, block := range response.Blocks {
		rows = append(rows, blockRow{Time: block.Label(), Text: block.Text})
	}
	return app.writer.Write(rows)
}
