package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/socialhub/internal/client/analytics"
	"github.com/dmitrijs2005/socialhub/internal/client/cli"
	"github.com/dmitrijs2005/socialhub/internal/client/config"
	"github.com/dmitrijs2005/socialhub/internal/logging"
	"github.com/google/subcommands"
)

// env is what every subcommand needs to build the app.
type env struct {
	cfg *config.Config
	log logging.Logger
	out io.Writer
	err io.Writer
}

func (e *env) open(ctx context.Context) (*cli.App, error) {
	app, err := cli.NewApp(ctx, e.cfg, e.log)
	if err != nil {
		fmt.Fprintf(e.err, "Error: %v\n", err)
		return nil, err
	}
	return app, nil
}

func register(c *subcommands.Commander, cfg *config.Config, log logging.Logger) {
	e := &env{cfg: cfg, log: log, out: os.Stdout, err: os.Stderr}
	c.Register(&shellCmd{env: e}, "")
	c.Register(&reportCmd{env: e}, "")
	c.Register(&chartCmd{env: e}, "")
}

// shellCmd runs the interactive REPL.
type shellCmd struct {
	env *env
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start the interactive shell (default)" }
func (*shellCmd) Usage() string {
	return `socialhub [config flags] shell

  Starts the interactive shell. Type 'help' inside for commands.
`
}
func (*shellCmd) SetFlags(*flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := c.env.open(ctx)
	if err != nil {
		return subcommands.ExitFailure
	}
	defer app.Close()

	app.Run(ctx)
	return subcommands.ExitSuccess
}

// reportCmd prints the dashboard of the saved session.
type reportCmd struct {
	env   *env
	style string
	width int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "print the dashboard of the logged-in user" }
func (*reportCmd) Usage() string {
	return `socialhub [config flags] report [-style <name>] [-width n]

  Renders the dashboard for the session saved by the shell.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.style, "style", c.env.cfg.ReportStyle, "glamour style: auto, dark, light, notty, ascii, ...")
	f.IntVar(&c.width, "width", 100, "word wrap width")
}

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := c.env.open(ctx)
	if err != nil {
		return subcommands.ExitFailure
	}
	defer app.Close()

	if !app.Restore(ctx) {
		fmt.Fprintln(c.env.err, "No saved session: run 'socialhub shell' and log in first.")
		return subcommands.ExitFailure
	}
	if err := app.PrintReport(ctx, c.env.out, c.style, c.width); err != nil {
		fmt.Fprintf(c.env.err, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// chartCmd exports the 7-day chart of one metric.
type chartCmd struct {
	env    *env
	metric string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "export the 7-day chart of a metric as SVG" }
func (*chartCmd) Usage() string {
	return "socialhub [config flags] chart [-metric " + analytics.JoinMetrics("|") + "]\n\n" +
		"  Writes <metric>-<date>.svg to the chart directory (-charts).\n"
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.metric, "metric", string(analytics.MetricFollowers), "one of: "+analytics.JoinMetrics(", "))
}

func (c *chartCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := analytics.ParseMetric(c.metric)
	if err != nil {
		fmt.Fprintf(c.env.err, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	app, err := c.env.open(ctx)
	if err != nil {
		return subcommands.ExitFailure
	}
	defer app.Close()

	if !app.Restore(ctx) {
		fmt.Fprintln(c.env.err, "No saved session: run 'socialhub shell' and log in first.")
		return subcommands.ExitFailure
	}

	path, err := app.ExportChart(ctx, m)
	if err != nil {
		fmt.Fprintf(c.env.err, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if path == "" {
		fmt.Fprintln(c.env.out, "Nothing to chart yet: add an account with followers first.")
		return subcommands.ExitSuccess
	}
	fmt.Fprintln(c.env.out, path)
	return subcommands.ExitSuccess
}
