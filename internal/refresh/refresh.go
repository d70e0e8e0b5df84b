// Package refresh simulates reloading a view from its backend.
package refresh

import (
	"context"
	"time"

	"go.uber.org/zap"

	"evcharge-admin-backend/internal/notification"
	"evcharge-admin-backend/internal/views"
)

// Reloader re-reads the records behind a view.
type Reloader interface {
	Reload(ctx context.Context, view views.Key) error
}

// Purger drops cached responses under a path prefix.
type Purger interface {
	Purge(prefix string) int
}

// Result describes a completed refresh.
type Result struct {
	View      views.Key `json:"view"`
	Refreshed time.Time `json:"refreshedAt"`
	Purged    int       `json:"purged"`
}

// Refresher waits out the simulated latency, invalidates what the view
// depends on and announces the result.
type Refresher struct {
	delay    time.Duration
	reloader Reloader
	cache    Purger
	feed     notification.Publisher
	prefixes func(views.Key) []string
	log      *zap.Logger
	now      func() time.Time
}

// New creates a refresher. prefixes maps a view to the API paths whose
// cached responses it invalidates.
func New(delay time.Duration, reloader Reloader, cache Purger, feed notification.Publisher, prefixes func(views.Key) []string, log *zap.Logger) *Refresher {
	return &Refresher{
		delay:    delay,
		reloader: reloader,
		cache:    cache,
		feed:     feed,
		prefixes: prefixes,
		log:      log,
		now:      time.Now,
	}
}

// Refresh refreshes a view. Unknown views refresh the dashboard. A
// cancelled wait cuts the latency short; the refresh still completes. A
// failed reload keeps the previous records and is only logged.
func (r *Refresher) Refresh(ctx context.Context, key string) Result {
	v := views.Resolve(key)

	timer := time.NewTimer(r.delay)
	select {
	case <-timer.C:
	case <-ctx.Done():
		timer.Stop()
		r.log.Debug("refresh wait cancelled", zap.String("view", string(v.Key)))
	}

	purged := 0
	for _, p := range r.prefixes(v.Key) {
		purged += r.cache.Purge(p)
	}

	// The request context may be gone by now.
	if err := r.reloader.Reload(context.WithoutCancel(ctx), v.Key); err != nil {
		r.log.Warn("reload failed, serving previous records", zap.String("view", string(v.Key)), zap.Error(err))
	}

	r.feed.Publish(notification.LevelSuccess, v.Refreshed)
	r.log.Info("view refreshed", zap.String("view", string(v.Key)), zap.Int("purged", purged))
	return Result{View: v.Key, Refreshed: r.now(), Purged: purged}
}
