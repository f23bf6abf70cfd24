// Command clipinspect loads bitmap clips from a TexturePacker atlas and steps
// them headlessly, printing labels and frame changes.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "clipinspect"})
	runner := NewRunner(RunnerOpts{Logger: logger})

	app := &cli.Command{
		Name:     "clipinspect",
		Usage:    "Inspect and step bitmap clips without a window",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
