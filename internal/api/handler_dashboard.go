package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"evcharge-admin-backend/internal/notification"
	"evcharge-admin-backend/internal/settings"
)

// GetOverview returns the dashboard cards.
func (h *Handler) GetOverview(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Overview())
}

// GetAnalytics returns the analytics report for the selected range and metric.
func (h *Handler) GetAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Report(c.Query("timeRange"), c.Query("metric")))
}

// GetChart renders a chart as an HTML fragment in the viewer's theme.
func (h *Handler) GetChart(c *gin.Context) {
	html, err := h.analytics.Chart(c.Param("chart"), string(h.currentTheme(c)))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// ExportAnalytics announces a report export.
func (h *Handler) ExportAnalytics(c *gin.Context) {
	toast := h.feed.Publish(notification.LevelSuccess, "Exporting analytics report...")
	c.JSON(http.StatusOK, gin.H{"toast": toast})
}

// GetSettings returns the default preferences.
func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, settings.Defaults())
}

// RunSettingsOp runs a settings page operation.
func (h *Handler) RunSettingsOp(c *gin.Context) {
	toast, err := h.settings.Run(c.Request.Context(), settings.Op(c.Param("op")))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"toast": toast})
}
