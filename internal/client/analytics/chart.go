package analytics

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/socialhub/internal/common"
)

// Metric names a chartable series.
type Metric string

const (
	MetricFollowers Metric = "followers"
	MetricViews     Metric = "views"
	MetricRevenue   Metric = "revenue"
)

// Metrics lists the chartable series in display order.
func Metrics() []Metric {
	return []Metric{MetricFollowers, MetricViews, MetricRevenue}
}

// JoinMetrics joins the metric names with sep for usage text.
func JoinMetrics(sep string) string {
	names := make([]string, 0, len(Metrics()))
	for _, m := range Metrics() {
		names = append(names, string(m))
	}
	return strings.Join(names, sep)
}

// ParseMetric accepts a metric name in any case.
func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Metrics(), m) {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q (want %s)", common.ErrUnknownMetric, s, JoinMetrics(", "))
}

// Title is the capitalized metric name.
func (m Metric) Title() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}

// ChartDays is the length of the chart series.
const ChartDays = 7

// ChartPoint is one day of the simulated history.
type ChartPoint struct {
	Date      string
	Followers int64
	Views     int64
	Revenue   int64
}

// Value returns the point's value for m.
func (p ChartPoint) Value(m Metric) float64 {
	switch m {
	case MetricViews:
		return float64(p.Views)
	case MetricRevenue:
		return float64(p.Revenue)
	default:
		return float64(p.Followers)
	}
}

// ChartSeries synthesizes a week of history ending at now. Each day is a
// fixed fraction of today's totals, rising towards the present. Dates
// are UTC calendar days, oldest first.
func ChartSeries(t Totals, now time.Time) []ChartPoint {
	today := now.UTC()
	// the explicit float64 conversions keep the multipliers from being
	// fused into FMA instructions, which would change rounding
	points := make([]ChartPoint, ChartDays)
	for i := range points {
		f := float64(i)
		points[i] = ChartPoint{
			Date:      today.AddDate(0, 0, i-(ChartDays-1)).Format(time.DateOnly),
			Followers: int64(math.Floor(float64(t.Followers) * (0.85 + float64(f*0.025)))),
			Views:     int64(math.Floor(float64(t.Views) * (0.8 + float64(f*0.035)))),
			Revenue:   int64(math.Floor(t.Revenue * (0.75 + float64(f*0.045)))),
		}
	}
	return points
}

// bounds returns the smallest and largest value of m in points.
func bounds(points []ChartPoint, m Metric) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		v := p.Value(m)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

type coord struct{ x, y float64 }

// project maps points into a width x height box. Values span the bottom
// 90% of the height; a flat series lies on the baseline.
func project(points []ChartPoint, m Metric, width, height float64) []coord {
	if len(points) == 0 {
		return nil
	}
	lo, hi := bounds(points, m)
	span := hi - lo

	out := make([]coord, len(points))
	for i, p := range points {
		var x float64
		if len(points) > 1 {
			x = float64(i) * width / float64(len(points)-1)
		}
		y := height
		if span > 0 {
			y = height - (p.Value(m)-lo)/span*(height*0.9)
		}
		out[i] = coord{x, y}
	}
	return out
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func pathData(cs []coord) string {
	var b strings.Builder
	for i, c := range cs {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(fmtCoord(c.x))
		b.WriteByte(',')
		b.WriteString(fmtCoord(c.y))
	}
	return b.String()
}

// ChartPath returns SVG path data for the polyline of m.
func ChartPath(points []ChartPoint, m Metric, width, height float64) string {
	return pathData(project(points, m, width, height))
}

const (
	svgWidth  = 400
	svgHeight = 200
)

var metricColors = map[Metric]string{
	MetricFollowers: "#3b82f6",
	MetricViews:     "#a855f7",
	MetricRevenue:   "#22c55e",
}

// RenderChartSVG draws a standalone 400x200 SVG line chart of m with a
// background grid, filled area, point markers and axis labels.
func RenderChartSVG(points []ChartPoint, m Metric) string {
	color := metricColors[m]
	if color == "" {
		color = metricColors[MetricFollowers]
	}
	cs := project(points, m, svgWidth, svgHeight)
	line := ChartPath(points, m, svgWidth, svgHeight)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="-60 -10 %d %d" font-family="sans-serif" font-size="10">`+"\n",
		svgWidth+70, svgHeight+40, svgWidth+70, svgHeight+40)
	b.WriteString(`  <defs><pattern id="grid" width="40" height="40" patternUnits="userSpaceOnUse">` +
		`<path d="M 40 0 L 0 0 0 40" fill="none" stroke="#f3f4f6" stroke-width="1"/></pattern></defs>` + "\n")
	fmt.Fprintf(&b, `  <rect width="%d" height="%d" fill="url(#grid)"/>`+"\n", svgWidth, svgHeight)
	fmt.Fprintf(&b, `  <text x="0" y="-2" font-size="12" font-weight="bold">%s</text>`+"\n", m.Title())

	if len(cs) > 0 {
		fmt.Fprintf(&b, `  <path d="%s" fill="none" stroke="%s" stroke-width="3"/>`+"\n", line, color)
		fmt.Fprintf(&b, `  <path d="%s L %d,%d L 0,%d Z" fill="%s" opacity="0.2"/>`+"\n", line, svgWidth, svgHeight, svgHeight, color)
		for _, c := range cs {
			fmt.Fprintf(&b, `  <circle cx="%s" cy="%s" r="4" fill="%s" stroke="#ffffff" stroke-width="2"/>`+"\n", fmtCoord(c.x), fmtCoord(c.y), color)
		}

		lo, hi := bounds(points, m)
		for _, l := range []struct {
			y int
			v float64
		}{{10, hi}, {svgHeight / 2, lo + (hi-lo)*0.5}, {svgHeight, lo}} {
			fmt.Fprintf(&b, `  <text x="-8" y="%d" text-anchor="end">%s</text>`+"\n", l.y, FormatChartValue(m, l.v))
		}
		for i, p := range points {
			d, err := time.Parse(time.DateOnly, p.Date)
			if err != nil {
				continue
			}
			fmt.Fprintf(&b, `  <text x="%s" y="%d" text-anchor="middle">%s</text>`+"\n", fmtCoord(cs[i].x), svgHeight+20, d.Format("Jan 2"))
		}
	}

	b.WriteString("</svg>\n")
	return b.String()
}
