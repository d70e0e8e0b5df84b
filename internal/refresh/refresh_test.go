package refresh

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"evcharge-admin-backend/internal/notification"
	"evcharge-admin-backend/internal/views"
)

type fakeReloader struct {
	views []views.Key
	err   error
}

func (f *fakeReloader) Reload(_ context.Context, v views.Key) error {
	f.views = append(f.views, v)
	return f.err
}

type fakeCache struct {
	keys []string
}

func (f *fakeCache) Purge(prefix string) int {
	kept, n := f.keys[:0], 0
	for _, k := range f.keys {
		if strings.HasPrefix(k, prefix) {
			n++
			continue
		}
		kept = append(kept, k)
	}
	f.keys = kept
	return n
}

func prefixes(v views.Key) []string {
	if v == views.Stations {
		return []string{"/api/stations"}
	}
	return []string{"/api/overview", "/api/sessions"}
}

func newRefresher(delay time.Duration, r Reloader, c Purger) (*Refresher, *notification.Feed) {
	feed := notification.NewFeed(time.Minute)
	return New(delay, r, c, feed, prefixes, zap.NewNop()), feed
}

func TestRefresh_PurgesReloadsAndAnnounces(t *testing.T) {
	rl := &fakeReloader{}
	c := &fakeCache{keys: []string{"/api/stations?search=a", "/api/stations", "/api/users"}}
	r, feed := newRefresher(time.Millisecond, rl, c)

	res := r.Refresh(context.Background(), "stations")

	assert.Equal(t, views.Stations, res.View)
	assert.Equal(t, 2, res.Purged)
	assert.Equal(t, []string{"/api/users"}, c.keys)
	assert.Equal(t, []views.Key{views.Stations}, rl.views)

	toasts := feed.List()
	require.Len(t, toasts, 1)
	assert.Equal(t, notification.LevelSuccess, toasts[0].Level)
	assert.Equal(t, "Station data refreshed!", toasts[0].Message)
}

func TestRefresh_UnknownViewFallsBackToDashboard(t *testing.T) {
	rl := &fakeReloader{}
	r, feed := newRefresher(0, rl, &fakeCache{})

	res := r.Refresh(context.Background(), "nowhere")
	assert.Equal(t, views.Dashboard, res.View)
	assert.Equal(t, "Dashboard refreshed successfully!", feed.List()[0].Message)
}

func TestRefresh_CancelledWaitStillCompletes(t *testing.T) {
	rl := &fakeReloader{}
	r, feed := newRefresher(time.Hour, rl, &fakeCache{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	r.Refresh(ctx, "analytics")
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, []views.Key{views.Analytics}, rl.views)
	assert.Len(t, feed.List(), 1)
}

func TestRefresh_ReloadErrorStillCompletes(t *testing.T) {
	rl := &fakeReloader{err: errors.New("db down")}
	r, feed := newRefresher(0, rl, &fakeCache{})

	res := r.Refresh(context.Background(), "users")
	assert.Equal(t, views.Users, res.View)
	require.Len(t, feed.List(), 1)
	assert.Equal(t, "User data refreshed!", feed.List()[0].Message)
}
