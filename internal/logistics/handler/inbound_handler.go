package handler

import (
	"errors"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/service"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
	"github.com/gin-gonic/gin"
)

// InboundHandler serves the inbound shipment endpoints.
type InboundHandler struct {
	svc *service.InboundService
}

func NewInboundHandler(svc *service.InboundService) *InboundHandler {
	return &InboundHandler{svc: svc}
}

// GET /api/inbound/international
func (h *InboundHandler) ListInternational(c *gin.Context) {
	items, err := h.svc.ListInternational(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list inbound shipments: "+err.Error())
		return
	}
	Success(c, items)
}

// GET /api/inbound/international/:id
func (h *InboundHandler) GetInternational(c *gin.Context) {
	item, err := h.svc.GetInternational(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "inbound shipment not found")
			return
		}
		InternalError(c, "failed to load inbound shipment: "+err.Error())
		return
	}
	Success(c, item)
}

// POST /api/inbound/international
func (h *InboundHandler) CreateInternational(c *gin.Context) {
	var item entity.InboundItem
	if err := c.ShouldBindJSON(&item); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	created, err := h.svc.CreateInternational(c.Request.Context(), &item)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, created)
}

// UpdateInternational replaces the whole nested item, clearing removed steps.
// PUT /api/inbound/international/:id
func (h *InboundHandler) UpdateInternational(c *gin.Context) {
	var item entity.InboundItem
	if err := c.ShouldBindJSON(&item); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	updated, err := h.svc.UpdateInternational(c.Request.Context(), c.Param("id"), &item)
	if err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "inbound shipment not found")
			return
		}
		InternalError(c, "failed to update inbound shipment: "+err.Error())
		return
	}
	Success(c, updated)
}

// AddStepDescription appends a timestamped note to one step's history.
// POST /api/inbound/international/:id/steps/:stepId/descriptions
func (h *InboundHandler) AddStepDescription(c *gin.Context) {
	var req struct {
		Author  string `json:"author"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	item, err := h.svc.AddStepDescription(c.Request.Context(), c.Param("id"), c.Param("stepId"), req.Author, req.Content)
	if err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "inbound shipment not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, item)
}

// DELETE /api/inbound/international/:id
func (h *InboundHandler) DeleteInternational(c *gin.Context) {
	if err := h.svc.DeleteInternational(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "inbound shipment not found")
			return
		}
		InternalError(c, "failed to delete inbound shipment: "+err.Error())
		return
	}
	Success(c, nil)
}

// GET /api/inbound/domestic
func (h *InboundHandler) ListDomestic(c *gin.Context) {
	items, err := h.svc.ListDomestic(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list inbound shipments: "+err.Error())
		return
	}
	Success(c, items)
}

// GET /api/inbound/domestic/:id
func (h *InboundHandler) GetDomestic(c *gin.Context) {
	item, err := h.svc.GetDomestic(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "inbound shipment not found")
			return
		}
		InternalError(c, "failed to load inbound shipment: "+err.Error())
		return
	}
	Success(c, item)
}

// POST /api/inbound/domestic
func (h *InboundHandler) CreateDomestic(c *gin.Context) {
	var item entity.InboundItem
	if err := c.ShouldBindJSON(&item); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	created, err := h.svc.CreateDomestic(c.Request.Context(), &item)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, created)
}

// PUT /api/inbound/domestic/:id
func (h *InboundHandler) UpdateDomestic(c *gin.Context) {
	partial, err := bindRecord(c)
	if err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	item, err := h.svc.UpdateDomestic(c.Request.Context(), c.Param("id"), partial)
	if err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "inbound shipment not found")
			return
		}
		InternalError(c, "failed to update inbound shipment: "+err.Error())
		return
	}
	Success(c, item)
}

// DELETE /api/inbound/domestic/:id
func (h *InboundHandler) DeleteDomestic(c *gin.Context) {
	if err := h.svc.DeleteDomestic(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "inbound shipment not found")
			return
		}
		InternalError(c, "failed to delete inbound shipment: "+err.Error())
		return
	}
	Success(c, nil)
}
