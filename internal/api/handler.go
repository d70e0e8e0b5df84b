package api

import (
	"errors"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"evcharge-admin-backend/internal/analytics"
	"evcharge-admin-backend/internal/catalog"
	"evcharge-admin-backend/internal/command"
	"evcharge-admin-backend/internal/notification"
	"evcharge-admin-backend/internal/refresh"
	"evcharge-admin-backend/internal/settings"
	"evcharge-admin-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store      store.Store
	catalog    *catalog.Catalog
	dispatcher *command.Dispatcher
	feed       *notification.Feed
	refresher  *refresh.Refresher
	analytics  *analytics.Service
	settings   *settings.Service
	webpush    *webpush.Options
	log        *zap.Logger
	secure     bool
	upgrader   websocket.Upgrader
}

// Deps are the services the API is built on.
type Deps struct {
	Store         store.Store
	Catalog       *catalog.Catalog
	Dispatcher    *command.Dispatcher
	Feed          *notification.Feed
	Refresher     *refresh.Refresher
	Analytics     *analytics.Service
	Settings      *settings.Service
	WebPush       *webpush.Options
	Log           *zap.Logger
	SecureCookies bool
	// AllowedOrigins may open the notification websocket in addition to
	// the server's own origin.
	AllowedOrigins []string
}

// NewHandler creates a new API handler.
func NewHandler(d Deps) *Handler {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		store:      d.Store,
		catalog:    d.Catalog,
		dispatcher: d.Dispatcher,
		feed:       d.Feed,
		refresher:  d.Refresher,
		analytics:  d.Analytics,
		settings:   d.Settings,
		webpush:    d.WebPush,
		log:        log,
		secure:     d.SecureCookies,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(d.AllowedOrigins),
		},
	}
}

// fail maps service errors to status codes.
func (h *Handler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrUnknownCollection),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, command.ErrUnknownAction),
		errors.Is(err, analytics.ErrUnknownChart),
		errors.Is(err, settings.ErrUnknownOperation):
		status = http.StatusNotFound
	case errors.Is(err, command.ErrMissingParam):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
