package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

// originChecker accepts requests without an Origin header, requests from
// the server's own host, and the listed origins.
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		if strings.EqualFold(u.Host, r.Host) {
			return true
		}
		for _, o := range allowed {
			if strings.EqualFold(strings.TrimSuffix(o, "/"), origin) {
				return true
			}
		}
		return false
	}
}

// ListNotifications returns the toasts that have not expired.
func (h *Handler) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.feed.List()})
}

// DismissNotification removes a toast before it expires.
func (h *Handler) DismissNotification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}
	h.feed.Dismiss(id)
	c.Status(http.StatusNoContent)
}

// StreamNotifications upgrades to a websocket and pushes every new toast
// as JSON, starting with the ones still live.
func (h *Handler) StreamNotifications(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	toasts, cancel := h.feed.Subscribe()
	defer cancel()

	// The client never sends; reading only detects the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	sent := make(map[uuid.UUID]bool)
	for _, t := range h.feed.List() {
		sent[t.ID] = true
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(t); err != nil {
			return
		}
	}

	for {
		select {
		case <-closed:
			return
		case <-c.Request.Context().Done():
			return
		case t, ok := <-toasts:
			if !ok {
				return
			}
			if sent[t.ID] {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(t); err != nil {
				return
			}
		}
	}
}
