package main

import (
	"os"

	"clinic-management/cmd/bootstrap"
	"clinic-management/internal/delivery/cli"
)

func main() {
	// Every command builds its own application with all dependencies
	os.Exit(cli.Execute(func() (cli.Runtime, error) {
		app, err := bootstrap.New()
		if err != nil {
			return nil, err
		}
		return app, nil
	}))
}
