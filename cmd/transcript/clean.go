package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	normalize "github.com/mutablelogic/go-transcript/pkg/normalize"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type CleanCmd struct {
	Text  []string `arg:"" optional:"" help:"Text to clean up, read line by line from standard input when omitted"`
	Trace bool     `flag:"" help:"Show the output of every rule for a single pass"`

	// Input when no text is given
	stdin io.Reader
}

type ruleRow struct {
	Rule string `json:"rule" writer:",width:20"`
	Text string `json:"text" writer:",wrap,width:70"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *CleanCmd) Run(app *Globals) error {
	if len(cmd.Text) > 0 {
		return cmd.clean(app, strings.Join(cmd.Text, " "))
	}

	// Read lines from standard input
	if cmd.stdin == nil {
		cmd.stdin = os.Stdin
	}
	scanner := bufio.NewScanner(cmd.stdin)
	for scanner.Scan() {
		if err := cmd.clean(app, scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *CleanCmd) clean(app *Globals, text string) error {
	if !cmd.Trace {
		fmt.Println(normalize.Normalize(text))
		return nil
	}

	rows := []ruleRow{{Rule: "input", Text: text}}
	normalize.Trace(text, func(rule normalize.Rule, text string) {
		rows = append(rows, ruleRow{Rule: rule.Name, Text: text})
	})
	rows = append(rows, ruleRow{Rule: "result", Text: normalize.Normalize(text)})
	return app.writer.Write(rows, tablewriter.OptHeader())
}
