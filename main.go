package main

import (
	"flag"
	"os"

	"github.com/bookshelf-cli/bookshelf/internal/cli"
	"github.com/bookshelf-cli/bookshelf/internal/config"
	"github.com/bookshelf-cli/bookshelf/internal/logging"
	"github.com/bookshelf-cli/bookshelf/internal/tui"
	"github.com/bookshelf-cli/bookshelf/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	group := flag.Bool("group", false, "group listing by read/unread")
	theme := flag.String("theme", "", "UI theme: classic, neon or mono")
	flag.Parse()

	cfg := config.Load()
	if *theme != "" {
		cfg.Theme = *theme
	}
	ui.SetTheme(cfg.Theme)
	if os.Getenv("NO_COLOR") != "" {
		ui.SetColorForcing(false, true)
	}

	log, err := logging.New(cfg)
	if err != nil {
		ui.Fail("logging: " + err.Error())
		os.Exit(1)
	}
	// No subcommand starts the interactive menu; otherwise hand the
	// remaining args to the CLI runner.
	args := flag.Args()
	var code int
	if len(args) == 0 {
		code = tui.Run(cfg, log)
	} else {
		code = cli.Run(args, cli.Options{Group: *group}, cfg, log)
	}
	_ = log.Sync()
	os.Exit(code)
}
