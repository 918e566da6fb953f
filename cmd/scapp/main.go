package main

import (
	"os"

	"github.com/company/scapp/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := cli.NewApp(version, commit, date)
	if err := app.Execute(); err != nil {
		os.Exit(app.HandleError(err))
	}
}
