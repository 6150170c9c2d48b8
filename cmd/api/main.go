// ABOUTME: Main entry point for the noticias API server
// ABOUTME: Defines the command line app and its serve and fetch commands

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := rootApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootApp() *cli.App {
	return &cli.App{
		Name:  "noticias",
		Usage: "Aggregated Mozambican news over HTTP",
		Description: `Fetches the configured RSS sources concurrently, normalizes their
items and serves the merged feed at GET /api/noticias.

Configuration is read from environment variables, optionally loaded
from one or more .env files first, e.g.:

PORT=8000
FEED_SOURCES_FILE=sources.toml
CACHE_TYPE=redis`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "env-file",
				Usage:   ".env files to load before reading the environment",
				Value:   cli.NewStringSlice(".env"),
				EnvVars: []string{"NOTICIAS_ENV_FILE"},
			},
		},
		Commands: []*cli.Command{
			serveCmd(),
			fetchCmd(),
		},
		// Serving is the default when no command is given
		Action: func(ctx *cli.Context) error {
			return runServe(ctx)
		},
	}
}
