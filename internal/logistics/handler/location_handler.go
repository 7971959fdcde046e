package handler

import (
	"errors"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/entity"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/service"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
	"github.com/gin-gonic/gin"
)

// LocationHandler serves the location endpoints.
type LocationHandler struct {
	svc *service.LocationService
}

func NewLocationHandler(svc *service.LocationService) *LocationHandler {
	return &LocationHandler{svc: svc}
}

// GET /api/locations
func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.svc.List(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list locations: "+err.Error())
		return
	}
	Success(c, locations)
}

// GET /api/locations/:id
func (h *LocationHandler) Get(c *gin.Context) {
	location, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "location not found")
			return
		}
		InternalError(c, "failed to load location: "+err.Error())
		return
	}
	Success(c, location)
}

// POST /api/locations
func (h *LocationHandler) Create(c *gin.Context) {
	var location entity.Location
	if err := c.ShouldBindJSON(&location); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	created, err := h.svc.Create(c.Request.Context(), &location)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, created)
}

// PUT /api/locations/:id
func (h *LocationHandler) Update(c *gin.Context) {
	partial, err := bindRecord(c)
	if err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	location, err := h.svc.Update(c.Request.Context(), c.Param("id"), partial)
	if err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "location not found")
			return
		}
		InternalError(c, "failed to update location: "+err.Error())
		return
	}
	Success(c, location)
}

// DELETE /api/locations/:id
func (h *LocationHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "location not found")
			return
		}
		InternalError(c, "failed to delete location: "+err.Error())
		return
	}
	Success(c, nil)
}
