package handler

import (
	bookingapp "github.com/rentops/backend/internal/application/booking"
	"github.com/gin-gonic/gin"
)

// BookingHandler handles booking lifecycle endpoints
type BookingHandler struct {
	BaseHandler
	bookingService *bookingapp.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService *bookingapp.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// RegisterRoutes registers booking endpoints
func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.GET("/availability", h.CheckAvailability)
		bookings.GET("/quote", h.Quote)
		bookings.POST("", h.Create)
		bookings.GET("", h.List)
		bookings.GET("/:id", h.GetByID)
		bookings.POST("/:id/confirm", h.Confirm)
		bookings.POST("/:id/start", h.Start)
		bookings.POST("/:id/complete", h.Complete)
		bookings.POST("/:id/cancel", h.Cancel)
		bookings.PUT("/:id/schedule", h.Reschedule)
	}
}

// CheckAvailability reports whether a vehicle is free for a period
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req bookingapp.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.bookingService.CheckAvailability(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Quote prices a rental period without creating a booking
func (h *BookingHandler) Quote(c *gin.Context) {
	var req bookingapp.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.bookingService.Quote(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Create creates a booking. Retries can pass an Idempotency-Key header so a
// repeated request does not create a second booking.
func (h *BookingHandler) Create(c *gin.Context) {
	var req bookingapp.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.IdempotencyKey = c.GetHeader("Idempotency-Key")

	resp, err := h.bookingService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns bookings matching the filter
func (h *BookingHandler) List(c *gin.Context) {
	var filter bookingapp.BookingListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = 20
	}

	bookings, total, err := h.bookingService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, bookings, total, filter.Page, filter.PageSize)
}

// GetByID returns one booking
func (h *BookingHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Confirm moves a pending booking to confirmed
func (h *BookingHandler) Confirm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.bookingService.Confirm(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Start marks the booking as in progress
func (h *BookingHandler) Start(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.bookingService.Start(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Complete marks the booking as completed
func (h *BookingHandler) Complete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.bookingService.Complete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cancel cancels a booking that has not started yet
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req bookingapp.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.bookingService.Cancel(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Reschedule moves a booking to a new period
func (h *BookingHandler) Reschedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req bookingapp.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.bookingService.Reschedule(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
