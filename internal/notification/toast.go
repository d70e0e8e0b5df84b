package notification

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Level is the severity of a toast.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Toast is a transient message shown to the operator.
type Toast struct {
	ID        uuid.UUID `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Publisher accepts toasts. Publishing never blocks and never fails.
type Publisher interface {
	Publish(level Level, message string) Toast
}

const subscriberBuffer = 16

// Feed is the single toast queue. Toasts dismiss themselves after the TTL.
type Feed struct {
	cache *cache.Cache
	now   func() time.Time

	mu    sync.RWMutex
	subs  map[chan Toast]struct{}
	hooks []func(Toast)
}

// NewFeed creates a feed whose toasts live for ttl.
func NewFeed(ttl time.Duration) *Feed {
	return &Feed{
		cache: cache.New(ttl, ttl),
		now:   time.Now,
		subs:  make(map[chan Toast]struct{}),
	}
}

// OnPublish registers fn to be called with every published toast.
func (f *Feed) OnPublish(fn func(Toast)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hooks = append(f.hooks, fn)
}

// Publish enqueues a toast and fans it out to subscribers. Subscribers
// that are not keeping up miss the toast.
func (f *Feed) Publish(level Level, message string) Toast {
	t := Toast{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		CreatedAt: f.now(),
	}
	f.cache.SetDefault(t.ID.String(), t)

	f.mu.RLock()
	defer f.mu.RUnlock()
	for ch := range f.subs {
		select {
		case ch <- t:
		default:
		}
	}
	for _, fn := range f.hooks {
		fn(t)
	}
	return t
}

// List returns the toasts that have not been dismissed, oldest first.
func (f *Feed) List() []Toast {
	items := f.cache.Items()
	out := make([]Toast, 0, len(items))
	for _, it := range items {
		out = append(out, it.Object.(Toast))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Dismiss removes a toast before its TTL.
func (f *Feed) Dismiss(id uuid.UUID) {
	f.cache.Delete(id.String())
}

// Subscribe returns a channel receiving every toast published from now on
// and a func that ends the subscription.
func (f *Feed) Subscribe() (<-chan Toast, func()) {
	ch := make(chan Toast, subscriberBuffer)
	f.mu.Lock()
	f.subs[ch] = struct{}{}
	f.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, ch)
			f.mu.Unlock()
			close(ch)
		})
	}
}
