package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/shoplist/internal/cli"
	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/logger"
	"github.com/idilsaglam/shoplist/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		os.Exit(1)
	}

	// Root flags (apply to every subcommand)
	flag.StringVar(&cfg.DataFile, "file", cfg.DataFile, "list file")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file, empty to disable")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flag.StringVar(&cfg.Theme, "theme", cfg.Theme, "classic or mono")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	ui.SetTheme(cfg.Theme)

	log, closer, err := logger.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		ui.Fail(os.Stderr, "logger: "+err.Error())
		os.Exit(1)
	}

	// Hand the remaining args to the CLI runner.
	code := cli.Run(flag.Args(), cli.Options{
		File: cfg.DataFile,
		Log:  log,
	})
	closer.Close()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
