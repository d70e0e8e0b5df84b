// Package analytics serves the network reports and the dashboard overview.
// The figures come from the reporting pipeline and are not derived from
// the record collections.
package analytics

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"
)

// ErrUnknownChart is returned for chart names other than Charts().
var ErrUnknownChart = errors.New("unknown chart")

// Time ranges and metrics offered by the report selectors.
var (
	TimeRanges = []string{"24h", "7d", "30d", "90d"}
	Metrics    = []string{"revenue", "sessions", "users"}
)

const (
	defaultTimeRange = "7d"
	defaultMetric    = "revenue"
)

// Report is the analytics view.
type Report struct {
	TimeRange string        `json:"timeRange"`
	Metric    string        `json:"metric"`
	KPIs      []KPI         `json:"kpis"`
	Monthly   []MonthPoint  `json:"monthly"`
	Hourly    []HourPoint   `json:"hourly"`
	Regions   []RegionShare `json:"regions"`
	Charts    []string      `json:"charts"`
}

// Overview is the dashboard landing view.
type Overview struct {
	KPIs         []KPI         `json:"kpis"`
	LiveSessions int           `json:"liveSessions"`
	StationStats []StationStat `json:"stationStats"`
}

// Service renders reports and memoizes chart markup.
type Service struct {
	charts *cache.Cache
}

// NewService creates a service whose rendered charts live for ttl.
func NewService(ttl time.Duration) *Service {
	return &Service{charts: cache.New(ttl, 2*ttl)}
}

// Report returns the analytics view. Unknown selector values fall back to
// the defaults; the series are the same for every selection.
func (s *Service) Report(timeRange, metric string) Report {
	if !slices.Contains(TimeRanges, timeRange) {
		timeRange = defaultTimeRange
	}
	if !slices.Contains(Metrics, metric) {
		metric = defaultMetric
	}
	return Report{
		TimeRange: timeRange,
		Metric:    metric,
		KPIs:      slices.Clone(analyticsKPIs),
		Monthly:   slices.Clone(monthly),
		Hourly:    slices.Clone(hourly),
		Regions:   slices.Clone(regions),
		Charts:    Charts(),
	}
}

// Overview returns the dashboard cards.
func (s *Service) Overview() Overview {
	return Overview{
		KPIs:         slices.Clone(dashboardKPIs),
		LiveSessions: liveSessions,
		StationStats: slices.Clone(stationStats),
	}
}

// Chart returns the HTML for a named chart in the given theme.
func (s *Service) Chart(name, theme string) (string, error) {
	r, ok := renderers[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownChart, name)
	}
	key := name + "|" + theme
	if html, found := s.charts.Get(key); found {
		return html.(string), nil
	}
	html, err := r(echartsTheme(theme))
	if err != nil {
		return "", fmt.Errorf("rendering %s chart: %w", name, err)
	}
	s.charts.SetDefault(key, html)
	return html, nil
}

// Flush drops all memoized charts.
func (s *Service) Flush() { s.charts.Flush() }
