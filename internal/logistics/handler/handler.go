package handler

import (
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/service"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the HTTP handlers.
type Handlers struct {
	Transfer  *TransferHandler
	Carrier   *CarrierHandler
	Location  *LocationHandler
	Inbound   *InboundHandler
	Transport *TransportHandler
	Sheets    *SheetsHandler
}

func NewHandlers(services *service.Services, store *sheetstore.Store) *Handlers {
	return &Handlers{
		Transfer:  NewTransferHandler(services.Transfer),
		Carrier:   NewCarrierHandler(services.Carrier),
		Location:  NewLocationHandler(services.Location),
		Inbound:   NewInboundHandler(services.Inbound),
		Transport: NewTransportHandler(services.Transport),
		Sheets:    NewSheetsHandler(store),
	}
}

// RegisterRoutes mounts every endpoint under the given router group.
func RegisterRoutes(api gin.IRouter, h *Handlers) {
	transfers := api.Group("/transfers")
	{
		transfers.GET("", h.Transfer.List)
		transfers.GET("/:id", h.Transfer.Get)
		transfers.PUT("/:id", h.Transfer.Update)
		transfers.DELETE("/:id", h.Transfer.Delete)
		transfers.POST("/:id/advance-status", h.Transfer.AdvanceStatus)
	}

	carriers := api.Group("/carriers")
	{
		carriers.GET("", h.Carrier.List)
		carriers.GET("/:id", h.Carrier.Get)
		carriers.POST("", h.Carrier.Create)
		carriers.PUT("/:id", h.Carrier.Update)
		carriers.DELETE("/:id", h.Carrier.Delete)
	}

	locations := api.Group("/locations")
	{
		locations.GET("", h.Location.List)
		locations.GET("/:id", h.Location.Get)
		locations.POST("", h.Location.Create)
		locations.PUT("/:id", h.Location.Update)
		locations.DELETE("/:id", h.Location.Delete)
	}

	requests := api.Group("/transport-requests")
	{
		requests.GET("", h.Transport.List)
		requests.GET("/:id", h.Transport.Get)
		requests.POST("/generate-id", h.Transport.GenerateID)
		requests.POST("/calculate-distance", h.Transport.CalculateDistance)
		requests.POST("/select", h.Transport.SelectTransfers)
		requests.POST("/submit", h.Transport.Submit)
		requests.PUT("/:id", h.Transport.Update)
		requests.DELETE("/:id", h.Transport.Delete)
	}

	inbound := api.Group("/inbound")
	{
		inbound.GET("/international", h.Inbound.ListInternational)
		inbound.GET("/international/:id", h.Inbound.GetInternational)
		inbound.POST("/international", h.Inbound.CreateInternational)
		inbound.PUT("/international/:id", h.Inbound.UpdateInternational)
		inbound.POST("/international/:id/steps/:stepId/descriptions", h.Inbound.AddStepDescription)
		inbound.DELETE("/international/:id", h.Inbound.DeleteInternational)

		inbound.GET("/domestic", h.Inbound.ListDomestic)
		inbound.GET("/domestic/:id", h.Inbound.GetDomestic)
		inbound.POST("/domestic", h.Inbound.CreateDomestic)
		inbound.PUT("/domestic/:id", h.Inbound.UpdateDomestic)
		inbound.DELETE("/domestic/:id", h.Inbound.DeleteDomestic)
	}

	sheets := api.Group("/sheets")
	{
		sheets.POST("/read", h.Sheets.Read)
		sheets.POST("/write", h.Sheets.Write)
		sheets.POST("/append", h.Sheets.Append)
		sheets.POST("/clear", h.Sheets.Clear)
	}
}

// Response is the wire envelope shared by every endpoint.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}
