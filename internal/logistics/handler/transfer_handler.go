package handler

import (
	"errors"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/service"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
	"github.com/gin-gonic/gin"
)

// TransferHandler serves the transfer endpoints.
type TransferHandler struct {
	svc *service.TransferService
}

func NewTransferHandler(svc *service.TransferService) *TransferHandler {
	return &TransferHandler{svc: svc}
}

// List transfers with normalized totals and location-enriched addresses.
// GET /api/transfers
func (h *TransferHandler) List(c *gin.Context) {
	transfers, err := h.svc.List(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list transfers: "+err.Error())
		return
	}
	Success(c, transfers)
}

// GET /api/transfers/:id
func (h *TransferHandler) Get(c *gin.Context) {
	transfer, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "transfer not found")
			return
		}
		InternalError(c, "failed to load transfer: "+err.Error())
		return
	}
	Success(c, transfer)
}

// Update merges the body's columns over the stored row.
// PUT /api/transfers/:id
func (h *TransferHandler) Update(c *gin.Context) {
	partial, err := bindRecord(c)
	if err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	transfer, err := h.svc.Update(c.Request.Context(), c.Param("id"), partial)
	if err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "transfer not found")
			return
		}
		InternalError(c, "failed to update transfer: "+err.Error())
		return
	}
	Success(c, transfer)
}

// DELETE /api/transfers/:id
func (h *TransferHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "transfer not found")
			return
		}
		InternalError(c, "failed to delete transfer: "+err.Error())
		return
	}
	Success(c, nil)
}

// AdvanceStatus moves transportStatus one step forward.
// POST /api/transfers/:id/advance-status
func (h *TransferHandler) AdvanceStatus(c *gin.Context) {
	transfer, err := h.svc.AdvanceStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "transfer not found")
			return
		}
		InternalError(c, "failed to advance status: "+err.Error())
		return
	}
	Success(c, transfer)
}
