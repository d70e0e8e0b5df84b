package mw

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ViewerCookie identifies a browser for per-viewer state.
const ViewerCookie = "evadmin_viewer"

const (
	viewerKey       = "viewer"
	viewerIssuedKey = "viewer_issued"
)

// Viewer makes sure every request carries a viewer id, issuing a cookie
// when the request has none or a malformed one.
func Viewer(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(ViewerCookie)
		if _, perr := uuid.Parse(id); err != nil || perr != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(ViewerCookie, id, 365*24*3600, "/", "", secure, true)
			c.Set(viewerIssuedKey, true)
		}
		c.Set(viewerKey, id)
		c.Next()
	}
}

// ViewerID returns the id set by Viewer.
func ViewerID(c *gin.Context) string {
	return c.GetString(viewerKey)
}

// ViewerIssued reports whether Viewer minted the id on this request, i.e.
// the client did not present a valid cookie.
func ViewerIssued(c *gin.Context) bool {
	return c.GetBool(viewerIssuedKey)
}

// ViewerOrIP buckets requests by the viewer cookie the client sent, falling
// back to the client IP when it sent none.
func ViewerOrIP(c *gin.Context) string {
	if id := ViewerID(c); id != "" && !ViewerIssued(c) {
		return "viewer:" + id
	}
	return "ip:" + c.ClientIP()
}
