package analytics

import "strconv"

// Trend is the direction a KPI moved.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// KPI is one headline card. Values are preformatted for display.
type KPI struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Change      string `json:"change"`
	ChangeValue string `json:"changeValue"`
	Trend       Trend  `json:"trend"`
}

// MonthPoint is one month of network totals.
type MonthPoint struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Sessions int     `json:"sessions"`
	Users    int     `json:"users"`
}

// HourPoint is the session count at an hour of the day.
type HourPoint struct {
	Hour     string `json:"hour"`
	Sessions int    `json:"sessions"`
}

// RegionShare is a region's share of network sessions, in percent.
type RegionShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// StationStat counts stations in one state across the whole network.
type StationStat struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

var monthly = []MonthPoint{
	{Month: "Jan", Revenue: 45000, Sessions: 1240, Users: 850},
	{Month: "Feb", Revenue: 52000, Sessions: 1456, Users: 920},
	{Month: "Mar", Revenue: 48000, Sessions: 1320, Users: 890},
	{Month: "Apr", Revenue: 61000, Sessions: 1680, Users: 1050},
	{Month: "May", Revenue: 58000, Sessions: 1590, Users: 1020},
	{Month: "Jun", Revenue: 67000, Sessions: 1820, Users: 1180},
	{Month: "Jul", Revenue: 73000, Sessions: 1950, Users: 1240},
}

var hourly = []HourPoint{
	{Hour: "00:00", Sessions: 45},
	{Hour: "04:00", Sessions: 28},
	{Hour: "08:00", Sessions: 156},
	{Hour: "12:00", Sessions: 234},
	{Hour: "16:00", Sessions: 189},
	{Hour: "20:00", Sessions: 167},
}

var regions = []RegionShare{
	{Name: "Mumbai", Value: 35, Color: "#007aff"},
	{Name: "Delhi", Value: 28, Color: "#34c759"},
	{Name: "Bangalore", Value: 22, Color: "#ff9500"},
	{Name: "Chennai", Value: 15, Color: "#af52de"},
}

var analyticsKPIs = []KPI{
	{Title: "Total Revenue", Value: "₹4,23,000", Change: "+12.5%", ChangeValue: "+₹47,000", Trend: TrendUp},
	{Title: "Active Sessions", Value: "8,940", Change: "+8.3%", ChangeValue: "+686", Trend: TrendUp},
	{Title: "Network Efficiency", Value: "96.7%", Change: "+2.1%", ChangeValue: "Improved", Trend: TrendUp},
	{Title: "Avg Session Time", Value: "42 min", Change: "-5.2%", ChangeValue: "-2.8 min", Trend: TrendDown},
}

// liveSessions is the network-wide live session counter shown on the
// dashboard.
const liveSessions = 342

var dashboardKPIs = []KPI{
	{Title: "Revenue Today", Value: "₹2,45,670", Change: "+12.3%", ChangeValue: "+₹26,890", Trend: TrendUp},
	{Title: "Active Users", Value: "15,847", Change: "+5.2%", ChangeValue: "+784", Trend: TrendUp},
	{Title: "Live Sessions", Value: strconv.Itoa(liveSessions), Change: "Real-time", ChangeValue: "Live data", Trend: TrendNeutral},
	{Title: "Network Uptime", Value: "98.7%", Change: "+0.3%", ChangeValue: "↑ 2.8h avg", Trend: TrendUp},
}

var stationStats = []StationStat{
	{Name: "Online Stations", Count: 287, Total: 295, Percentage: 97.3},
	{Name: "Maintenance", Count: 5, Total: 295, Percentage: 1.7},
	{Name: "Offline", Count: 3, Total: 295, Percentage: 1.0},
}
