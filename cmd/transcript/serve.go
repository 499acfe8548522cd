package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	// Packages
	api "github.com/mutablelogic/go-transcript/pkg/api"
)

type ServeCmd struct {
	Listen string        `name:"listen" help:"Address to listen on" default:"localhost:8080"`
	Base   string        `name:"base" help:"Path prefix for the endpoints" default:"/api/v1"`
	Grace  time.Duration `name:"grace" help:"Time to wait for requests to finish on shutdown" default:"30s"`
}

func (cmd *ServeCmd) Run(app *Globals) error {
	style, err := app.style()
	if err != nil {
		return err
	}

	// Listen before serving, so the bound address can be logged
	listener, err := net.Listen("tcp", cmd.Listen)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           api.RegisterEndpoints(cmd.Base, style, nil, app.Debug),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Serve in the background
	result := make(chan error, 1)
	go func() {
		app.log.WithField("addr", listener.Addr().String()).WithField("base", cmd.Base).Info("serving")
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			result <- err
		}
		close(result)
	}()

	// Wait for the server to fail or the context to be cancelled
	select {
	case err := <-result:
		return err
	case <-app.ctx.Done():
	}

	app.log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cmd.Grace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	return <-result
}
