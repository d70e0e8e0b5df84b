// Package views defines the dashboard's sidebar views and their routing.
package views

// Key identifies a sidebar view.
type Key string

const (
	Dashboard    Key = "dashboard"
	Stations     Key = "stations"
	Chargers     Key = "chargers"
	Users        Key = "users"
	Payments     Key = "payments"
	Pricing      Key = "pricing"
	PlatformFees Key = "platform-fees"
	CPO          Key = "cpo"
	Analytics    Key = "analytics"
	Support      Key = "support"
	Settings     Key = "settings"
)

// AppTitle and AppVersion are shown in the sidebar header and footer.
const (
	AppTitle   = "EV Charge Pro"
	AppVersion = "v2.1.4"
)

// View describes one sidebar entry.
type View struct {
	Key   Key    `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	// Refreshed is the toast shown after a manual refresh of the view.
	Refreshed string `json:"-"`
}

// Group is a titled section of the sidebar.
type Group struct {
	Title string `json:"title"`
	Items []View `json:"items"`
}

var groups = []Group{
	{Title: "Overview", Items: []View{
		{Key: Dashboard, Title: "Dashboard", Icon: "bar-chart-3", Refreshed: "Dashboard refreshed successfully!"},
	}},
	{Title: "Operations", Items: []View{
		{Key: Stations, Title: "Stations", Icon: "zap", Refreshed: "Station data refreshed!"},
		{Key: Chargers, Title: "Chargers", Icon: "battery", Refreshed: "Charger data refreshed!"},
		{Key: Users, Title: "Users", Icon: "users", Refreshed: "User data refreshed!"},
	}},
	{Title: "Business", Items: []View{
		{Key: Payments, Title: "Payments", Icon: "credit-card", Refreshed: "Payment data refreshed!"},
		{Key: Pricing, Title: "Pricing", Icon: "dollar-sign", Refreshed: "Pricing data refreshed!"},
		{Key: PlatformFees, Title: "Platform Fees", Icon: "calculator", Refreshed: "Fee data refreshed!"},
		{Key: CPO, Title: "CPO Integration", Icon: "building-2", Refreshed: "CPO data refreshed!"},
		{Key: Analytics, Title: "Analytics", Icon: "pie-chart", Refreshed: "Analytics data refreshed!"},
	}},
	{Title: "Support", Items: []View{
		{Key: Support, Title: "Customer Support", Icon: "headphones", Refreshed: "Support data refreshed!"},
		{Key: Settings, Title: "Settings", Icon: "settings", Refreshed: "Settings refreshed!"},
	}},
}

var byKey = func() map[Key]View {
	m := make(map[Key]View)
	for _, g := range groups {
		for _, v := range g.Items {
			m[v.Key] = v
		}
	}
	return m
}()

// Resolve returns the view for key. Unknown keys resolve to the dashboard.
func Resolve(key string) View {
	if v, ok := byKey[Key(key)]; ok {
		return v
	}
	return byKey[Dashboard]
}

// Known reports whether key names a view.
func Known(key string) bool {
	_, ok := byKey[Key(key)]
	return ok
}

// All returns every view in sidebar order.
func All() []View {
	out := make([]View, 0, len(byKey))
	for _, g := range groups {
		out = append(out, g.Items...)
	}
	return out
}

// NavItem is a sidebar entry with its highlight state.
type NavItem struct {
	View
	Active bool `json:"active"`
}

// NavGroup is a sidebar section as rendered for one request.
type NavGroup struct {
	Title string    `json:"title"`
	Items []NavItem `json:"items"`
}

// Nav is the sidebar model.
type Nav struct {
	Title   string     `json:"title"`
	Version string     `json:"version"`
	Active  Key        `json:"active"`
	Groups  []NavGroup `json:"groups"`
}

// Sidebar builds the sidebar with the resolved active view highlighted.
func Sidebar(active string) Nav {
	current := Resolve(active).Key
	nav := Nav{Title: AppTitle, Version: AppVersion, Active: current}
	for _, g := range groups {
		ng := NavGroup{Title: g.Title, Items: make([]NavItem, len(g.Items))}
		for i, v := range g.Items {
			ng.Items[i] = NavItem{View: v, Active: v.Key == current}
		}
		nav.Groups = append(nav.Groups, ng)
	}
	return nav
}
