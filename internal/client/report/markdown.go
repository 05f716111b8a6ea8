package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/dmitrijs2005/socialhub/internal/client/analytics"
)

// Markdown renders d as a markdown document.
func Markdown(d Dashboard) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Welcome, %s\n\n", escape(d.User.Name))
	fmt.Fprintf(&b, "_Generated %s_\n\n", d.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"))

	if d.Empty() {
		b.WriteString("## Get Started\n\n")
		b.WriteString("Add your first social media account to start tracking your performance and growth.\n")
		return b.String()
	}

	b.WriteString("## Overview\n\n")
	b.WriteString("| Metric | Total | Avg growth |\n|---|---:|---:|\n")
	fmt.Fprintf(&b, "| Total Followers | %s | %s |\n", analytics.FormatNumber(float64(d.Totals.Followers)), analytics.FormatPercent(d.Growth.Followers))
	fmt.Fprintf(&b, "| Total Views | %s | %s |\n", analytics.FormatNumber(float64(d.Totals.Views)), analytics.FormatPercent(d.Growth.Views))
	fmt.Fprintf(&b, "| Total Comments | %s | %s |\n", analytics.FormatNumber(float64(d.Totals.Comments)), analytics.FormatPercent(d.Growth.Comments))
	fmt.Fprintf(&b, "| Total Revenue | $%s | %s |\n\n", analytics.FormatNumber(d.Totals.Revenue), analytics.FormatPercent(d.Growth.Revenue))

	if d.HasChart() {
		b.WriteString("## Analytics Overview\n\n")
		b.WriteString("| Date | Followers | Views | Revenue |\n|---|---:|---:|---:|\n")
		for _, p := range d.Chart {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", p.Date,
				analytics.FormatChartValue(analytics.MetricFollowers, float64(p.Followers)),
				analytics.FormatChartValue(analytics.MetricViews, float64(p.Views)),
				analytics.FormatChartValue(analytics.MetricRevenue, float64(p.Revenue)))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Your Accounts\n\n%d accounts growing\n\n", d.Growing)
	b.WriteString("| Platform | Username | Followers | Views | Comments | Revenue | Growth | Engagement | Updated |\n")
	b.WriteString("|---|---|---:|---:|---:|---:|---:|---:|---|\n")
	for _, r := range d.Accounts {
		a := r.Account
		user := "@" + escape(a.Username)
		if a.IsVerified {
			user += " ✓"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s%% | %s |\n",
			a.Platform.Label(), user,
			analytics.FormatNumber(float64(a.Followers)),
			analytics.FormatNumber(float64(a.Views)),
			analytics.FormatNumber(float64(a.Comments)),
			analytics.FormatCurrency(a.Revenue),
			analytics.FormatPercent(a.FollowersGrowth),
			strconv.FormatFloat(r.Engagement, 'f', 1, 64),
			escape(a.LastUpdated))
	}

	b.WriteString("\n## Quick Stats\n\n")
	fmt.Fprintf(&b, "- Connected Accounts: **%d**\n", len(d.Accounts))
	fmt.Fprintf(&b, "- Avg Engagement: **%s%%**\n", strconv.FormatFloat(d.Engagement, 'f', 1, 64))
	fmt.Fprintf(&b, "- Revenue per 1K: **$%s**\n", d.RevenuePerThousand.StringFixed(2))
	fmt.Fprintf(&b, "- Growing Accounts: **%d**\n", d.Growing)

	return b.String()
}

var mdEscaper = strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`, "`", "\\`")

// escape keeps user text from breaking table cells or emphasis.
func escape(s string) string {
	return mdEscaper.Replace(s)
}

// Render formats md for a terminal of the given width. Style is a
// glamour style name such as "dark", "light" or "notty"; "auto" picks
// one from the terminal background.
func Render(md, style string, width int) (string, error) {
	styleOpt := glamour.WithStandardStyle(style)
	if style == "" || style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
