package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"evcharge-admin-backend/internal/catalog"
	"evcharge-admin-backend/internal/command"
	"evcharge-admin-backend/internal/filter"
	"evcharge-admin-backend/internal/mw"
)

func (h *Handler) collection(c *gin.Context) (catalog.Collection, bool) {
	col, err := h.catalog.Lookup(c.Param("collection"))
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return col, true
}

// criteria reads the search term and treats every other query parameter
// as an exact-match filter.
func criteria(c *gin.Context) filter.Criteria {
	crit := filter.Criteria{Search: c.Query("search"), Filters: map[string]string{}}
	for k, v := range c.Request.URL.Query() {
		if k == "search" || len(v) == 0 {
			continue
		}
		crit.Filters[k] = v[0]
	}
	return crit
}

// ListRecords returns the filtered records of a collection.
func (h *Handler) ListRecords(c *gin.Context) {
	col, ok := h.collection(c)
	if !ok {
		return
	}
	listing, err := col.List(c.Request.Context(), criteria(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// GetRecord returns one record.
func (h *Handler) GetRecord(c *gin.Context) {
	col, ok := h.collection(c)
	if !ok {
		return
	}
	rec, err := col.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetSelection returns the viewer's detail panel state.
func (h *Handler) GetSelection(c *gin.Context) {
	col, ok := h.collection(c)
	if !ok {
		return
	}
	state, err := col.Selection(c.Request.Context(), mw.ViewerID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type selectRequest struct {
	ID string `json:"id" binding:"required"`
}

// PutSelection opens the detail panel on a record.
func (h *Handler) PutSelection(c *gin.Context) {
	col, ok := h.collection(c)
	if !ok {
		return
	}
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	state, err := col.Select(c.Request.Context(), mw.ViewerID(c), req.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// DeleteSelection closes the detail panel.
func (h *Handler) DeleteSelection(c *gin.Context) {
	col, ok := h.collection(c)
	if !ok {
		return
	}
	state, err := col.Deselect(c.Request.Context(), mw.ViewerID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type actionRequest struct {
	Params map[string]string `json:"params"`
}

// RunAction runs a record-level action, or a collection-level one when
// the route has no id.
func (h *Handler) RunAction(c *gin.Context) {
	col, ok := h.collection(c)
	if !ok {
		return
	}
	var req actionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	toast, err := h.dispatcher.Dispatch(c.Request.Context(), command.Action{
		Collection: col.Name(),
		RecordID:   c.Param("id"),
		Name:       c.Param("action"),
		Params:     req.Params,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"toast": toast})
}
