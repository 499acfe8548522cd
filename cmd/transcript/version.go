package main

import (
	"runtime"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	version "github.com/mutablelogic/go-transcript/pkg/version"
)

type VersionCmd struct{}

func (cmd *VersionCmd) Run(app *Globals) error {
	type kv struct {
		Key   string `json:"name"`
		Value string `json:"value" writer:",width:60"`
	}
	var metadata = []kv{}
	for _, v := range []kv{
		{"source", version.GitSource},
		{"branch", version.GitBranch},
		{"tag", version.GitTag},
		{"hash", version.GitHash},
		{"build time", version.GoBuildTime},
	} {
		if v.Value != "" {
			metadata = append(metadata, v)
		}
	}
	metadata = append(metadata, kv{"go version", runtime.Version()})
	metadata = append(metadata, kv{"os", runtime.GOOS + "/" + runtime.GOARCH})

	return app.writer.Write(metadata, tablewriter.OptHeader())
}
