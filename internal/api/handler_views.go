package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"evcharge-admin-backend/internal/theme"
	"evcharge-admin-backend/internal/views"
)

// GetNav returns the sidebar with the active view marked.
func (h *Handler) GetNav(c *gin.Context) {
	c.JSON(http.StatusOK, views.Sidebar(c.Query("active")))
}

// GetView describes a view and the collections it shows.
func (h *Handler) GetView(c *gin.Context) {
	v := views.Resolve(c.Param("view"))
	names := []string{}
	for _, col := range h.catalog.ForView(v.Key) {
		names = append(names, col.Name())
	}
	c.JSON(http.StatusOK, gin.H{"view": v, "collections": names})
}

// RefreshView simulates reloading a view.
func (h *Handler) RefreshView(c *gin.Context) {
	c.JSON(http.StatusOK, h.refresher.Refresh(c.Request.Context(), c.Param("view")))
}

func (h *Handler) currentTheme(c *gin.Context) theme.Mode {
	saved, _ := c.Cookie(theme.StorageKey)
	return theme.Resolve(saved, theme.PrefersDark(c.GetHeader(theme.PreferenceHeader)))
}

func themeBody(m theme.Mode) gin.H {
	return gin.H{"theme": m, "class": theme.Class(m)}
}

// GetTheme returns the resolved colour scheme.
func (h *Handler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, themeBody(h.currentTheme(c)))
}

// ToggleTheme flips the colour scheme and remembers the choice.
func (h *Handler) ToggleTheme(c *gin.Context) {
	m := theme.Toggle(h.currentTheme(c))
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(theme.StorageKey, string(m), 365*24*3600, "/", "", h.secure, false)
	c.JSON(http.StatusOK, themeBody(m))
}
