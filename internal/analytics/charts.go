package analytics

import (
	"bytes"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const chartHeight = "320px"

var renderers = map[string]func(theme string) (string, error){
	"revenue": revenueChart,
	"usage":   usageChart,
	"regions": regionChart,
}

// Charts lists the chart names, sorted.
func Charts() []string {
	names := make([]string, 0, len(renderers))
	for n := range renderers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func echartsTheme(theme string) string {
	if theme == "dark" {
		return types.ThemeChalk
	}
	return types.ThemeWesteros
}

func globalOptions(title, subtitle, theme string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{Theme: theme, Width: "100%", Height: chartHeight}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func revenueChart(theme string) (string, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions("Revenue Trends", "Monthly revenue and session growth", theme)...)

	months := make([]string, len(monthly))
	revenue := make([]opts.LineData, len(monthly))
	sessions := make([]opts.LineData, len(monthly))
	for i, p := range monthly {
		months[i] = p.Month
		revenue[i] = opts.LineData{Name: p.Month, Value: p.Revenue}
		sessions[i] = opts.LineData{Name: p.Month, Value: p.Sessions}
	}
	line.SetXAxis(months).
		AddSeries("Revenue", revenue).
		AddSeries("Sessions", sessions).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return render(line)
}

func usageChart(theme string) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions("Usage Patterns", "Sessions by hour of day", theme)...)

	hours := make([]string, len(hourly))
	data := make([]opts.BarData, len(hourly))
	for i, p := range hourly {
		hours[i] = p.Hour
		data[i] = opts.BarData{Name: p.Hour, Value: p.Sessions}
	}
	bar.SetXAxis(hours).AddSeries("Sessions", data)
	return render(bar)
}

func regionChart(theme string) (string, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(globalOptions("Regional Distribution", "Share of sessions by city", theme)...)

	data := make([]opts.PieData, len(regions))
	for i, r := range regions {
		data[i] = opts.PieData{Name: r.Name, Value: r.Value, ItemStyle: &opts.ItemStyle{Color: r.Color}}
	}
	pie.AddSeries("Regions", data)
	return render(pie)
}

func render(c interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
