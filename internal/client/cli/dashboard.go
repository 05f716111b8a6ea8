package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/socialhub/internal/client/analytics"
	"github.com/dmitrijs2005/socialhub/internal/client/report"
	"github.com/dmitrijs2005/socialhub/internal/filex"
	"golang.org/x/term"
)

const defaultWidth = 100

// terminalWidth is a test seam for the output width.
var terminalWidth = func() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// Dashboard prints the rendered dashboard report.
func (a *App) Dashboard(ctx context.Context) error {
	return a.PrintReport(ctx, a.out, a.config.ReportStyle, terminalWidth())
}

// PrintReport renders the dashboard of the logged-in user to w.
func (a *App) PrintReport(ctx context.Context, w io.Writer, style string, width int) error {
	u, ok := a.session.User()
	if !ok {
		return errLoginRequired
	}

	md := report.Markdown(report.Build(u, a.accounts.List(), a.now()))
	out, err := report.Render(md, style, width)
	if err != nil {
		a.log.Warn(ctx, "falling back to plain markdown", "style", style, "error", err)
		out = md
	}
	_, err = fmt.Fprint(w, out)
	return err
}

// Chart exports the 7-day chart of a metric (followers by default) as an
// SVG file in the chart directory.
func (a *App) Chart(ctx context.Context, args []string) error {
	m := analytics.MetricFollowers
	if len(args) > 1 {
		return fmt.Errorf("%w: chart [%s]", errUsage, analytics.JoinMetrics("|"))
	}
	if len(args) == 1 {
		var err error
		if m, err = analytics.ParseMetric(args[0]); err != nil {
			return err
		}
	}

	path, err := a.ExportChart(ctx, m)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(a.out, "Nothing to chart yet: add an account with followers first.")
		return nil
	}
	fmt.Fprintf(a.out, "Saved %s chart to %s\n", m, path)
	return nil
}

// ExportChart writes <metric>-<date>.svg to the chart directory and
// returns its path. It writes nothing and returns "" while there are no
// followers to plot.
func (a *App) ExportChart(ctx context.Context, m analytics.Metric) (string, error) {
	if !a.isLoggedIn() {
		return "", errLoginRequired
	}

	totals := analytics.ComputeTotals(a.accounts.List())
	if totals.Followers == 0 {
		return "", nil
	}

	now := a.now()
	svg := analytics.RenderChartSVG(analytics.ChartSeries(totals, now), m)
	name := fmt.Sprintf("%s-%s.svg", m, now.UTC().Format("2006-01-02"))

	path, err := filex.WriteFile(a.fs, a.config.ChartDir, name, []byte(svg))
	if err != nil {
		a.log.Error(ctx, "failed to export chart", "metric", m, "error", err)
		return "", err
	}
	a.log.Info(ctx, "chart exported", "metric", m, "path", path)
	return path, nil
}
