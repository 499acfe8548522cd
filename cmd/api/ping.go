package main

import (
	"fmt"
)

type PingCmd struct{}

func (cmd *PingCmd) Run(app *Globals) error {
	service, err := app.service()
	if err != nil {
		return err
	}
	if err := service.Ping(app.ctx); err != nil {
		return err
	}
	fmt.Println("OK")
	return nil
}
