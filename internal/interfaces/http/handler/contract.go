package handler

import (
	documentapp "github.com/rentops/backend/internal/application/document"
	"github.com/rentops/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContractHandler handles rental contract document endpoints
type ContractHandler struct {
	BaseHandler
	contractService *documentapp.ContractService
}

// NewContractHandler creates a new ContractHandler. contractService may be
// nil when document generation is disabled.
func NewContractHandler(contractService *documentapp.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// RegisterRoutes registers contract endpoints under bookings
func (h *ContractHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("/:id/contract", h.Generate)
		bookings.GET("/:id/contract", h.GetDownloadURL)
	}
}

// Generate renders and stores the contract PDF for a booking
func (h *ContractHandler) Generate(c *gin.Context) {
	if h.contractService == nil {
		h.BadRequest(c, "Contract generation is disabled")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.contractService.Generate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	logger.GetGinLogger(c).Info("Contract generated",
		zap.String("booking_id", id.String()),
		zap.String("object_key", resp.ObjectKey),
	)
	h.Created(c, resp)
}

// GetDownloadURL returns a presigned link for the booking's contract
func (h *ContractHandler) GetDownloadURL(c *gin.Context) {
	if h.contractService == nil {
		h.BadRequest(c, "Contract generation is disabled")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.contractService.GetDownloadURL(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
