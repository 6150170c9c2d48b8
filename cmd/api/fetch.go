// ABOUTME: Fetch command running one aggregation cycle from the command line
// ABOUTME: Prints the merged feed as JSON on stdout and logs to stderr

package main

import (
	"encoding/json"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Jis87-63/noticias-moc/infrastructure/logger/structured"
)

func fetchCmd() *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Run one aggregation cycle and print the feed",
		Description: `Fetches every configured source once and prints the aggregated
feed as a JSON array, the same body GET /api/noticias returns.

All log messages go to stderr. Use a tool like jq to process the output.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "indent the JSON output",
			},
		},
		Action: runFetch,
	}
}

func runFetch(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logger, err := structured.NewLoggerWithWriter(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	items := a.aggregator.Aggregate(ctx.Context, a.registry.All())

	enc := json.NewEncoder(os.Stdout)
	if ctx.Bool("pretty") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(items)
}
