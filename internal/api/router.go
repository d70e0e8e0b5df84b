package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"evcharge-admin-backend/config"
	"evcharge-admin-backend/internal/catalog"
	"evcharge-admin-backend/internal/mw"
	"evcharge-admin-backend/internal/views"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(d Deps, cfg config.ServerConfig, cache *mw.ResponseCache) *gin.Engine {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	r := gin.New()
	r.Use(mw.Recovery(d.Log), mw.Logger(d.Log))

	handler := NewHandler(d)
	caching := cache.Middleware()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": views.AppVersion})
	})

	api := r.Group("/api")
	api.Use(mw.Viewer(cfg.SecureCookies), mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst, mw.ViewerOrIP))
	{
		api.GET("/nav", handler.GetNav)
		api.GET("/views/:view", handler.GetView)
		api.POST("/views/:view/refresh", handler.RefreshView)

		api.GET("/theme", handler.GetTheme)
		api.POST("/theme/toggle", handler.ToggleTheme)

		api.GET("/notifications", handler.ListNotifications)
		api.GET("/notifications/ws", handler.StreamNotifications)
		api.DELETE("/notifications/:id", handler.DismissNotification)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)

		api.GET("/overview", caching, handler.GetOverview)
		api.GET("/analytics", caching, handler.GetAnalytics)
		api.GET("/analytics/charts/:chart", handler.GetChart)
		api.POST("/analytics/export", handler.ExportAnalytics)
		api.GET("/settings", handler.GetSettings)
		api.POST("/settings/:op", handler.RunSettingsOp)

		api.GET("/:collection", caching, handler.ListRecords)
		api.GET("/:collection/selection", handler.GetSelection)
		api.PUT("/:collection/selection", handler.PutSelection)
		api.DELETE("/:collection/selection", handler.DeleteSelection)
		api.POST("/:collection/actions/:action", handler.RunAction)
		api.GET("/:collection/:id", caching, handler.GetRecord)
		api.POST("/:collection/:id/actions/:action", handler.RunAction)
	}

	return r
}

// CachePrefixes maps a view to the cached API paths its data feeds.
func CachePrefixes(cat *catalog.Catalog) func(views.Key) []string {
	return func(v views.Key) []string {
		var out []string
		for _, col := range cat.ForView(v) {
			out = append(out, "/api/"+col.Name())
		}
		switch v {
		case views.Dashboard:
			out = append(out, "/api/overview")
		case views.Analytics:
			out = append(out, "/api/analytics")
		}
		return out
	}
}
