package notification

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"go.uber.org/zap"

	"evcharge-admin-backend/internal/model"
)

// NotificationSender defines the interface for sending a web push notification.
type NotificationSender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is a real implementation of NotificationSender using the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// SubscriptionStore is the part of the store the pool needs.
type SubscriptionStore interface {
	ListSubscriptions(ctx context.Context) ([]model.PushSubscription, error)
	DeleteSubscription(ctx context.Context, endpoint string) error
}

// WorkerPool delivers toasts to browser push subscriptions.
type WorkerPool struct {
	size    int
	jobs    chan Toast
	store   SubscriptionStore
	webpush *webpush.Options
	sender  NotificationSender
	log     *zap.Logger
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, store SubscriptionStore, webpushOptions *webpush.Options, log *zap.Logger) *WorkerPool {
	if size < 1 {
		size = 1
	}
	return &WorkerPool{
		size:    size,
		jobs:    make(chan Toast, size*8),
		store:   store,
		webpush: webpushOptions,
		sender:  &WebPushSender{},
		log:     log,
	}
}

// Start launches the worker goroutines. They stop when ctx is done.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	wp.log.Debug("push worker started", zap.Int("worker", id))
	for {
		select {
		case t := <-wp.jobs:
			wp.deliver(ctx, t)
		case <-ctx.Done():
			wp.log.Debug("push worker shutting down", zap.Int("worker", id))
			return
		}
	}
}

// Dispatch queues a toast for delivery. When the queue is full the toast
// is dropped.
func (wp *WorkerPool) Dispatch(t Toast) {
	select {
	case wp.jobs <- t:
	default:
		wp.log.Warn("push queue full, dropping toast", zap.String("toast", t.ID.String()))
	}
}

func (wp *WorkerPool) deliver(ctx context.Context, t Toast) {
	subs, err := wp.store.ListSubscriptions(ctx)
	if err != nil {
		wp.log.Error("fetching push subscriptions", zap.Error(err))
		return
	}
	if len(subs) == 0 {
		return
	}

	payload, err := json.Marshal(t)
	if err != nil {
		wp.log.Error("encoding toast", zap.Error(err))
		return
	}

	wp.log.Debug("sending push notifications", zap.Int("count", len(subs)), zap.String("toast", t.ID.String()))
	for _, sub := range subs {
		wp.send(ctx, sub, payload)
	}
}

func (wp *WorkerPool) send(ctx context.Context, sub model.PushSubscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		wp.log.Warn("sending push notification", zap.String("endpoint", sub.Endpoint), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusGone {
		wp.log.Info("push subscription expired, deleting", zap.String("endpoint", sub.Endpoint))
		if err := wp.store.DeleteSubscription(ctx, sub.Endpoint); err != nil {
			wp.log.Error("deleting expired subscription", zap.String("endpoint", sub.Endpoint), zap.Error(err))
		}
	}
}
