package handler

import (
	"errors"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/service"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
	"github.com/gin-gonic/gin"
)

// TransportHandler serves the transport-request endpoints, including the
// consolidation flow.
type TransportHandler struct {
	svc *service.TransportService
}

func NewTransportHandler(svc *service.TransportService) *TransportHandler {
	return &TransportHandler{svc: svc}
}

// GET /api/transport-requests
func (h *TransportHandler) List(c *gin.Context) {
	requests, err := h.svc.List(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list transport requests: "+err.Error())
		return
	}
	Success(c, requests)
}

// GET /api/transport-requests/:id
func (h *TransportHandler) Get(c *gin.Context) {
	request, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "transport request not found")
			return
		}
		InternalError(c, "failed to load transport request: "+err.Error())
		return
	}
	Success(c, request)
}

// GenerateID proposes the next MSC id and reserves its row.
// POST /api/transport-requests/generate-id
func (h *TransportHandler) GenerateID(c *gin.Context) {
	requestID, rowIndex, err := h.svc.GenerateRequestID(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to generate request id: "+err.Error())
		return
	}
	Success(c, gin.H{
		"requestId": requestID,
		"rowIndex":  rowIndex,
	})
}

// CalculateDistance resolves per-stop road distances, best-effort.
// POST /api/transport-requests/calculate-distance
func (h *TransportHandler) CalculateDistance(c *gin.Context) {
	var req struct {
		PickupAddress string                `json:"pickupAddress"`
		Stops         []service.StopAddress `json:"stops"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	distances, lookupErrors := h.svc.CalculateDistances(c.Request.Context(), req.PickupAddress, req.Stops)
	Success(c, gin.H{
		"distances": distances,
		"errors":    lookupErrors,
	})
}

// SelectTransfers resolves selected transfer ids into a pre-filled booking
// form, capping at the stop limit.
// POST /api/transport-requests/select
func (h *TransportHandler) SelectTransfers(c *gin.Context) {
	var req struct {
		TransferIDs []string `json:"transferIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	selection, err := h.svc.SelectTransfers(c.Request.Context(), req.TransferIDs)
	if err != nil {
		if errors.Is(err, service.ErrEmptySelection) {
			BadRequest(c, "no transfers selected")
			return
		}
		InternalError(c, "failed to select transfers: "+err.Error())
		return
	}
	form := h.svc.BuildForm(selection)
	Success(c, gin.H{
		"form":      form,
		"truncated": selection.Truncated,
	})
}

// Submit books the consolidated dispatch.
// POST /api/transport-requests/submit
func (h *TransportHandler) Submit(c *gin.Context) {
	var form service.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	result, err := h.svc.Submit(c.Request.Context(), &form)
	if err != nil {
		if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrEmptySelection) {
			BadRequest(c, err.Error())
			return
		}
		InternalError(c, "failed to submit transport request: "+err.Error())
		return
	}
	Created(c, result)
}

// Update merges the body over the stored request row.
// PUT /api/transport-requests/:id
func (h *TransportHandler) Update(c *gin.Context) {
	partial, err := bindRecord(c)
	if err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	request, err := h.svc.Update(c.Request.Context(), c.Param("id"), partial)
	if err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "transport request not found")
			return
		}
		InternalError(c, "failed to update transport request: "+err.Error())
		return
	}
	Success(c, request)
}

// DELETE /api/transport-requests/:id
func (h *TransportHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, sheetstore.ErrNotFound) {
			NotFound(c, "transport request not found")
			return
		}
		InternalError(c, "failed to delete transport request: "+err.Error())
		return
	}
	Success(c, nil)
}
