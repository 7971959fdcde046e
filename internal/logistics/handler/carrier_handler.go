package handler

import (
	"errors"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/service"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
	"github.com/gin-gonic/gin"
)

// CarrierHandler serves the carrier endpoints.
type CarrierHandler struct {
	svc *service.CarrierService
}

func NewCarrierHandler(svc *service.CarrierService) *CarrierHandler {
	return &CarrierHandler{svc: svc}
}

// GET /api/carriers?active=true
func (h *CarrierHandler) List(c *gin.Context) {
	var (
		carriers []entity.Carrier
		err      error
	)
	if c.Query("active") == "true" {
		carriers, err = h.svc.ListActive(c.Request.Context())
	} else {
		carriers, err = h.svc.List(c.Request.Context())
	}
	if err != nil {
		InternalError(c, "failed to list carriers: "+err.Error())
		return
	}
	Success(c, carriers)
}

// GET /api/carriers/:id
func (h *CarrierHandler) Get(c *gin.Context) {
	carrier, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "carrier not found")
			return
		}
		InternalError(c, "failed to load carrier: "+err.Error())
		return
	}
	Success(c, carrier)
}

// POST /api/carriers
func (h *CarrierHandler) Create(c *gin.Context) {
	var carrier entity.Carrier
	if err := c.ShouldBindJSON(&carrier); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	created, err := h.svc.Create(c.Request.Context(), &carrier)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, created)
}

// PUT /api/carriers/:id
func (h *CarrierHandler) Update(c *gin.Context) {
	partial, err := bindRecord(c)
	if err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	carrier, err := h.svc.Update(c.Request.Context(), c.Param("id"), partial)
	if err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "carrier not found")
			return
		}
		InternalError(c, "failed to update carrier: "+err.Error())
		return
	}
	Success(c, carrier)
}

// DELETE /api/carriers/:id
func (h *CarrierHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "carrier not found")
			return
		}
		InternalError(c, "failed to delete carrier: "+err.Error())
		return
	}
	Success(c, nil)
}
