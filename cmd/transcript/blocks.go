package main

import (
	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type BlocksCmd struct {
	InputFlags
}

type blockRow struct {
	Time string `json:"time" writer:",right,width:8"`
	Text string `json:"text" writer:",wrap,width:70"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *BlocksCmd) Run(app *Globals) error {
	blocks, err := cmd.InputFlags.blocks(app)
	if err != nil {
		return err
	}

	rows := make([]blockRow, 0, len(blocks))
	for _, block := range blocks {
		rows = append(rows, blockRow{
			Time: block.Label(),
			Text: block.Text,
		})
	}
	return app.writer.Write(rows, tablewriter.OptHeader())
}
