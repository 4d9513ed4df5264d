package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/checklist/internal/cli"
	"github.com/idilsaglam/checklist/internal/config"
	"github.com/idilsaglam/checklist/internal/logging"
	"github.com/idilsaglam/checklist/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "path to config.toml (default: user config dir)")
	ephemeral := flag.Bool("ephemeral", false, "keep tasks and settings in memory only")
	noColor := flag.Bool("no-color", false, "disable colored output")
	forceColor := flag.Bool("color", false, "force colored output")
	flag.Usage = cli.PrintHelp
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}
	ui.SetColorForcing(*forceColor, *noColor || os.Getenv("NO_COLOR") != "")

	logger := logging.New(os.Stderr, logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	code := cli.Run(flag.Args(), cli.Options{
		Config:    cfg,
		Ephemeral: *ephemeral,
		Logger:    logger,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
