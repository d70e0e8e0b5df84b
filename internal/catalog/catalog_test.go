package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"evcharge-admin-backend/internal/command"
	"evcharge-admin-backend/internal/db"
	"evcharge-admin-backend/internal/detail"
	"evcharge-admin-backend/internal/filter"
	"evcharge-admin-backend/internal/model"
	"evcharge-admin-backend/internal/notification"
	"evcharge-admin-backend/internal/seed"
	"evcharge-admin-backend/internal/store"
	"evcharge-admin-backend/internal/views"
)

func newCatalog(t *testing.T) (*Catalog, store.Store) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	f, err := seed.Default()
	require.NoError(t, err)
	require.NoError(t, seed.Apply(context.Background(), gdb, f, zap.NewNop()))

	s := store.NewGormStore(gdb)
	return New(s, detail.NewMemoryStore(time.Minute)), s
}

func list(t *testing.T, c *Catalog, name string, crit filter.Criteria) Listing {
	t.Helper()
	col, err := c.Lookup(name)
	require.NoError(t, err)
	l, err := col.List(context.Background(), crit)
	require.NoError(t, err)
	return l
}

func ids[T any](t *testing.T, items any, id func(T) string) []string {
	t.Helper()
	rs, ok := items.([]T)
	require.True(t, ok, "items are %T", items)
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = id(r)
	}
	return out
}

func stationID(s model.Station) string { return s.ID }

func TestCatalog_LookupUnknown(t *testing.T) {
	c, _ := newCatalog(t)
	_, err := c.Lookup("spaceships")
	assert.ErrorIs(t, err, ErrUnknownCollection)

	_, err = c.Subject(context.Background(), "spaceships", "X")
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestCatalog_EveryCollectionLists(t *testing.T) {
	c, _ := newCatalog(t)
	want := map[string]int{
		"stations": 5, "chargers": 5, "users": 5, "transactions": 5,
		"wallets": 3, "settlements": 3, "cpos": 4, "integration-logs": 4,
		"tariffs": 5, "promotions": 3, "fees": 5, "tickets": 4,
		"agents": 3, "sessions": 5, "activities": 5,
	}
	assert.Len(t, c.Names(), len(want))
	for name, n := range want {
		l := list(t, c, name, filter.Criteria{})
		assert.Equal(t, n, l.Total, name)
		assert.Equal(t, n, l.Matched, name)
		assert.NotNil(t, l.Summary, name)
		assert.NotEmpty(t, l.Filters, name)
	}
}

func TestStations_SingleMaintenanceRecord(t *testing.T) {
	c, _ := newCatalog(t)

	l := list(t, c, "stations", filter.Criteria{Filters: map[string]string{"status": "maintenance"}})
	assert.Equal(t, []string{"ST003"}, ids(t, l.Items, stationID))

	l = list(t, c, "stations", filter.Criteria{Filters: map[string]string{"status": "online"}})
	assert.Equal(t, []string{"ST001", "ST002", "ST004"}, ids(t, l.Items, stationID))
	assert.NotContains(t, ids(t, l.Items, stationID), "ST003")
}

func TestStations_SearchMatchesAnyField(t *testing.T) {
	c, _ := newCatalog(t)

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "by name", search: "Phoenix", want: []string{"ST001"}},
		{name: "by location", search: "delhi", want: []string{"ST003", "ST005"}},
		{name: "by address", search: "whitefield", want: []string{"ST001"}},
		{name: "no match", search: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := list(t, c, "stations", filter.Criteria{Search: tt.search})
			assert.Equal(t, tt.want, ids(t, l.Items, stationID))
			assert.Equal(t, 5, l.Total)
		})
	}
}

func TestTickets_SearchIsCaseInsensitive(t *testing.T) {
	c, _ := newCatalog(t)
	l := list(t, c, "tickets", filter.Criteria{Search: "rahul"})
	got := ids(t, l.Items, func(r model.Ticket) string { return r.Customer.Name })
	require.NotEmpty(t, got)
	for _, name := range got {
		assert.Equal(t, "Rahul Sharma", name)
	}
}

func TestFilterAliases(t *testing.T) {
	c, _ := newCatalog(t)

	l := list(t, c, "users", filter.Criteria{Filters: map[string]string{"tier": "premium"}})
	assert.Equal(t, 2, l.Matched)

	l = list(t, c, "users", filter.Criteria{Filters: map[string]string{"membershipTier": "premium"}})
	assert.Equal(t, 0, l.Matched)

	l = list(t, c, "users", filter.Criteria{Search: "43212"})
	assert.Equal(t, 1, l.Matched)
}

func TestSummaries(t *testing.T) {
	c, _ := newCatalog(t)

	s := list(t, c, "stations", filter.Criteria{Search: "Phoenix"}).Summary
	assert.Equal(t, 5, s["total"])
	assert.Equal(t, 3, s["online"])
	assert.Equal(t, 60.0, s["operational"])
	assert.Equal(t, 27, s["activeChargers"])
	assert.Equal(t, 40, s["totalChargers"])
	assert.Equal(t, 122900.0, s["revenue"])

	u := list(t, c, "users", filter.Criteria{}).Summary
	assert.Equal(t, 3, u["active"])
	assert.Equal(t, 60.0, u["activePercent"])
	assert.Equal(t, 2, u["premium"])
	assert.Equal(t, 114, u["avgSessions"])
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(3, 0))
	assert.Equal(t, 97.3, Percent(287, 295))
	assert.Equal(t, 100.0, Percent(4, 4))
	assert.Equal(t, 33.3, Percent(1, 3))
}

func TestListing_Actions(t *testing.T) {
	c, _ := newCatalog(t)
	l := list(t, c, "stations", filter.Criteria{})
	assert.Contains(t, l.Actions.Record, "maintenance")
	assert.Contains(t, l.Actions.Collection, "create")
}

func TestForView(t *testing.T) {
	c, _ := newCatalog(t)
	var names []string
	for _, col := range c.ForView(views.Payments) {
		names = append(names, col.Name())
	}
	assert.Equal(t, []string{"transactions", "wallets", "settlements"}, names)
	assert.Empty(t, c.ForView(views.Settings))
}

func TestSelection_OnePerViewer(t *testing.T) {
	c, _ := newCatalog(t)
	ctx := context.Background()
	col, err := c.Lookup("stations")
	require.NoError(t, err)

	_, err = col.Select(ctx, "alice", "ST001")
	require.NoError(t, err)
	got, err := col.Select(ctx, "alice", "ST002")
	require.NoError(t, err)

	state := got.(detail.State[model.Station])
	r, ok := state.Record()
	require.True(t, ok)
	assert.Equal(t, "ST002", r.ID)

	other, err := col.Selection(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, other.(detail.State[model.Station]).IsOpen())

	closed, err := col.Deselect(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, closed.(detail.State[model.Station]).IsOpen())

	_, err = col.Select(ctx, "alice", "ST999")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestActions_LeaveRecordsUnchanged(t *testing.T) {
	c, _ := newCatalog(t)
	ctx := context.Background()

	before := list(t, c, "stations", filter.Criteria{})
	beforeItems := append([]model.Station(nil), before.Items.([]model.Station)...)

	feed := notification.NewFeed(time.Minute)
	d := command.NewDispatcher(c, command.NewNotifyHandler(feed, zap.NewNop()))
	toast, err := d.Dispatch(ctx, command.Action{Collection: "stations", RecordID: "ST001", Name: "maintenance"})
	require.NoError(t, err)
	assert.Equal(t, "Scheduling maintenance for Phoenix Mall Hub", toast.Message)

	require.NoError(t, c.Reload(ctx, views.Stations))
	after := list(t, c, "stations", filter.Criteria{})
	assert.Equal(t, beforeItems, after.Items)
}

func TestReload_PicksUpStoreChanges(t *testing.T) {
	c, s := newCatalog(t)
	ctx := context.Background()

	assert.Equal(t, 3, list(t, c, "agents", filter.Criteria{}).Total)
	require.NoError(t, s.DB().Create(&model.Agent{Ordered: model.Ordered{Position: 99}, Name: "Zed", Status: "online"}).Error)

	assert.Equal(t, 3, list(t, c, "agents", filter.Criteria{}).Total)
	require.NoError(t, c.Reload(ctx, views.Support))
	assert.Equal(t, 4, list(t, c, "agents", filter.Criteria{}).Total)
}
