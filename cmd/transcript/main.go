package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	tablewriter "github.com/djthorpe/go-tablewriter"
	render "github.com/mutablelogic/go-transcript/pkg/render"
	logrus "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	Debug bool   `name:"debug" help:"Enable debug output"`
	Style string `name:"style" help:"YAML file with the pdf layout (can be set from TRANSCRIPT_STYLE env)" default:"${TRANSCRIPT_STYLE}"`

	// Writer, logger and context
	writer *tablewriter.Writer
	log    *logrus.Logger
	ctx    context.Context
}

type CLI struct {
	Globals

	Render  RenderCmd  `cmd:"render" default:"withargs" help:"Render a whisper transcript as a document with margin timestamps"`
	Blocks  BlocksCmd  `cmd:"blocks" help:"Print the timestamped blocks of a whisper transcript"`
	Clean   CleanCmd   `cmd:"clean" help:"Clean up text with the normalization rules"`
	Serve   ServeCmd   `cmd:"serve" help:"Serve the render and blocks endpoints over HTTP"`
	Version VersionCmd `cmd:"version" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		name = filepath.Base(name)
	}

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(name),
		kong.Description("whisper transcript formatter"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"TRANSCRIPT_STYLE": envOrDefault("TRANSCRIPT_STYLE", ""),
		},
	)

	// Create a logger which writes to stderr
	cli.Globals.log = logrus.New()
	cli.Globals.log.SetOutput(os.Stderr)
	cli.Globals.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cli.Globals.Debug {
		cli.Globals.log.SetLevel(logrus.DebugLevel)
	}

	// Create a tablewriter object with text output
	cli.Globals.writer = tablewriter.New(os.Stdout, tablewriter.OptOutputText())

	// Create a context
	var cancel context.CancelFunc
	cli.Globals.ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// style returns the pdf layout, read from the style file if set
func (app *Globals) style() (*render.Style, error) {
	if app.Style == "" {
		return render.DefaultStyle(), nil
	}
	style, err := render.LoadStyle(app.Style)
	if err != nil {
		return nil, err
	}
	app.log.WithField("path", app.Style).Debug("loaded style")
	return style, nil
}

func envOrDefault(name, def string) string {
	if value := os.Getenv(name); value != "" {
		return value
	} else {
		return def
	}
}
