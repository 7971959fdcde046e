package handler

import (
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
	"github.com/gin-gonic/gin"
)

// SheetsHandler exposes the raw grid for ad hoc reads and maintenance writes,
// bypassing the schema layer.
type SheetsHandler struct {
	store *sheetstore.Store
}

func NewSheetsHandler(store *sheetstore.Store) *SheetsHandler {
	return &SheetsHandler{store: store}
}

type rangeRequest struct {
	Sheet  string     `json:"sheet" binding:"required"`
	Range  string     `json:"range" binding:"required"`
	Values [][]string `json:"values"`
}

// POST /api/sheets/read
func (h *SheetsHandler) Read(c *gin.Context) {
	var req rangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	values, err := h.store.Grid().GetRange(c.Request.Context(), req.Sheet, req.Range)
	if err != nil {
		InternalError(c, "failed to read range: "+err.Error())
		return
	}
	Success(c, gin.H{"values": values})
}

// POST /api/sheets/write
func (h *SheetsHandler) Write(c *gin.Context) {
	var req rangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if len(req.Values) == 0 {
		BadRequest(c, "values are required")
		return
	}
	if err := h.store.Grid().UpdateRange(c.Request.Context(), req.Sheet, req.Range, req.Values); err != nil {
		InternalError(c, "failed to write range: "+err.Error())
		return
	}
	Success(c, nil)
}

// POST /api/sheets/append
func (h *SheetsHandler) Append(c *gin.Context) {
	var req struct {
		Sheet  string     `json:"sheet" binding:"required"`
		Values [][]string `json:"values" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := h.store.Grid().AppendRows(c.Request.Context(), req.Sheet, req.Values); err != nil {
		InternalError(c, "failed to append rows: "+err.Error())
		return
	}
	Success(c, nil)
}

// POST /api/sheets/clear
func (h *SheetsHandler) Clear(c *gin.Context) {
	var req rangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := h.store.Grid().ClearRange(c.Request.Context(), req.Sheet, req.Range); err != nil {
		InternalError(c, "failed to clear range: "+err.Error())
		return
	}
	Success(c, nil)
}
