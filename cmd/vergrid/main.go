package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/stverner/vergrid/internal/app"
	"github.com/stverner/vergrid/internal/cli"
	"github.com/stverner/vergrid/internal/config"
	"github.com/stverner/vergrid/internal/hcl"
	"github.com/stverner/vergrid/internal/yamlcfg"
)

// main is the entrypoint for the vergrid target generator.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the program so tests can drive it, and converts startup
// panics from app.NewApp into plain errors. Targets go to outW, usage and
// logs to the writers the caller chooses.
func run(outW, logW io.Writer, args []string) (err error) {
	appConfig, shouldExit, perr := cli.Parse(args, outW)
	if perr != nil {
		return perr
	}
	if shouldExit {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	loader := config.NewMultiLoader(hcl.NewLoader(), yamlcfg.NewLoader())
	a := app.NewApp(outW, logW, appConfig, loader)
	return a.Run(context.Background())
}
