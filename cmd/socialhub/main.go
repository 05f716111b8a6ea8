// Command socialhub is the SocialHub client: an interactive shell for
// managing social media accounts plus one-shot report and chart commands.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/dmitrijs2005/socialhub/internal/client/config"
	"github.com/dmitrijs2005/socialhub/internal/flagx"
	"github.com/dmitrijs2005/socialhub/internal/logging"
	"github.com/google/subcommands"
)

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	args := argv[1:]

	cfg, err := config.LoadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return int(subcommands.ExitUsageError)
	}

	log, closer := logging.NewFileLogger(logging.FileOptions{
		Path:  cfg.LogFile,
		Level: cfg.LogLevel,
	})
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	name := path.Base(argv[0])
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	register(commander, cfg, log)

	// config flags were consumed by LoadConfig
	rest := flagx.StripArgs(args, config.GlobalFlags())
	if err := fs.Parse(rest); err != nil {
		return int(subcommands.ExitUsageError)
	}
	if fs.NArg() == 0 {
		if err := fs.Parse([]string{"shell"}); err != nil {
			return int(subcommands.ExitUsageError)
		}
	}

	log.Debug(ctx, "starting", "command", fs.Arg(0), "storage", cfg.StorageBackend)
	return int(commander.Execute(ctx))
}
