// Package report assembles the dashboard view of a user's accounts and
// renders it as markdown for the terminal.
package report

import (
	"time"

	"github.com/dmitrijs2005/socialhub/internal/client/analytics"
	"github.com/dmitrijs2005/socialhub/internal/client/models"
	"github.com/shopspring/decimal"
)

// AccountRow is one account with its derived engagement rate.
type AccountRow struct {
	Account    models.SocialMediaAccount
	Engagement float64
}

// Dashboard is a point-in-time snapshot of everything the dashboard shows.
type Dashboard struct {
	User        models.User
	GeneratedAt time.Time

	Accounts           []AccountRow
	Totals             analytics.Totals
	Growth             analytics.Growth
	Engagement         float64
	RevenuePerThousand decimal.Decimal
	Growing            int
	Chart              []analytics.ChartPoint
}

// Empty reports whether there is nothing to aggregate yet.
func (d Dashboard) Empty() bool {
	return len(d.Accounts) == 0
}

// HasChart mirrors the dashboard rule that the chart only appears once
// there are followers to plot.
func (d Dashboard) HasChart() bool {
	return d.Totals.Followers > 0
}

// Build computes the dashboard for accounts as of now.
func Build(u models.User, accounts []models.SocialMediaAccount, now time.Time) Dashboard {
	totals := analytics.ComputeTotals(accounts)

	d := Dashboard{
		User:               u,
		GeneratedAt:        now,
		Accounts:           make([]AccountRow, 0, len(accounts)),
		Totals:             totals,
		Growth:             analytics.AverageGrowth(accounts),
		Engagement:         totals.EngagementRate(),
		RevenuePerThousand: analytics.RevenuePerThousand(totals),
		Chart:              analytics.ChartSeries(totals, now),
	}
	for _, a := range accounts {
		d.Accounts = append(d.Accounts, AccountRow{Account: a, Engagement: analytics.EngagementRate(a)})
		if a.FollowersGrowth > 0 {
			d.Growing++
		}
	}
	return d
}
