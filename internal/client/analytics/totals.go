// Package analytics derives dashboard figures from a user's accounts.
// Everything here is pure: no IO, no clock reads, no shared state.
package analytics

import (
	"github.com/dmitrijs2005/socialhub/internal/client/models"
	"github.com/shopspring/decimal"
)

// Totals are summed counters across accounts.
type Totals struct {
	Followers int64
	Views     int64
	Comments  int64
	Likes     int64
	Revenue   float64
}

// Growth holds per-metric mean growth percentages.
type Growth struct {
	Followers float64
	Views     float64
	Comments  float64
	Likes     float64
	Revenue   float64
}

// ComputeTotals sums the counters of accounts.
func ComputeTotals(accounts []models.SocialMediaAccount) Totals {
	var t Totals
	for _, a := range accounts {
		t.Followers += a.Followers
		t.Views += a.Views
		t.Comments += a.Comments
		t.Likes += a.Likes
		t.Revenue += a.Revenue
	}
	return t
}

// AverageGrowth is the arithmetic mean of each growth field, all zero
// for no accounts.
func AverageGrowth(accounts []models.SocialMediaAccount) Growth {
	var g Growth
	if len(accounts) == 0 {
		return g
	}
	for _, a := range accounts {
		g.Followers += a.FollowersGrowth
		g.Views += a.ViewsGrowth
		g.Comments += a.CommentsGrowth
		g.Likes += a.LikesGrowth
		g.Revenue += a.RevenueGrowth
	}
	n := float64(len(accounts))
	g.Followers /= n
	g.Views /= n
	g.Comments /= n
	g.Likes /= n
	g.Revenue /= n
	return g
}

// EngagementRate is (comments+likes) per follower of one account, in
// percent.
func EngagementRate(a models.SocialMediaAccount) float64 {
	if a.Followers == 0 {
		return 0
	}
	return float64(a.Comments+a.Likes) / float64(a.Followers) * 100
}

// EngagementRate is the dashboard-wide comments per follower, in percent.
func (t Totals) EngagementRate() float64 {
	if t.Followers == 0 {
		return 0
	}
	return float64(t.Comments) / float64(t.Followers) * 100
}

var thousand = decimal.NewFromInt(1000)

// RevenuePerThousand is revenue per 1000 followers rounded to cents.
func RevenuePerThousand(t Totals) decimal.Decimal {
	if t.Followers == 0 {
		return decimal.Zero
	}
	return decimalFromFloat(t.Revenue).
		Div(decimal.NewFromInt(t.Followers)).
		Mul(thousand).
		Round(2)
}
