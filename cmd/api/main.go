package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	tablewriter "github.com/djthorpe/go-tablewriter"
	opt "github.com/mutablelogic/go-client"
	client "github.com/mutablelogic/go-transcript/pkg/client"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	Url     string        `name:"url" help:"URL of transcript service (can be set from TRANSCRIPT_URL env)" default:"${TRANSCRIPT_URL}"`
	Timeout time.Duration `name:"timeout" help:"Request timeout" default:"5m"`
	Debug   bool          `name:"debug" help:"Enable debug output"`

	// Writer and context
	writer *tablewriter.Writer
	ctx    context.Context
}

type CLI struct {
	Globals

	Ping   PingCmd   `cmd:"ping" help:"Ping the transcript service"`
	Blocks BlocksCmd `cmd:"blocks" help:"Print the timestamped blocks of a whisper transcript"`
	Render RenderCmd `cmd:"render" help:"Render a whisper transcript with the transcript service"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultEndpoint = "http://localhost:8080/api/v1"
)

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	name := "transcript-client"
	if path, err := os.Executable(); err == nil {
		name = filepath.Base(path)
	}

	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(name),
		kong.Description("transcript formatting service client"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"TRANSCRIPT_URL": envOrDefault("TRANSCRIPT_URL", defaultEndpoint),
		},
	)

	cli.Globals.writer = tablewriter.New(os.Stdout, tablewriter.OptOutputText())

	// Cancel requests on interrupt
	var cancel context.CancelFunc
	cli.Globals.ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd.FatalIfErrorf(cmd.Run(&cli.Globals))
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// service returns a client for the transcript service
func (app *Globals) service() (*client.Client, error) {
	opts := []opt.ClientOpt{opt.OptTimeout(app.Timeout)}
	if app.Debug {
		opts = append(opts, opt.OptTrace(os.Stderr, true))
	}
	return client.New(app.Url, opts...)
}

func envOrDefault(name, def string) string {
	if value, exists := os.LookupEnv(name); exists && value != "" {
		return value
	}
	return def
}
