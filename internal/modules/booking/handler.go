package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sessiondesk/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/booking-requests", h.ListRequests)
	rg.POST("/booking-requests", h.CreateRequest)
	rg.PUT("/booking-requests/:id", h.DecideRequest)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PUT("/bookings/:id/cancel", h.CancelBooking)
}

func (h *Handler) CreateRequest(c *gin.Context) {
	var in CreateRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", response.CodeInvalidInput)
		return
	}

	req, err := h.service.CreateRequest(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, req)
}

func (h *Handler) DecideRequest(c *gin.Context) {
	var in DecideRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", response.CodeInvalidInput)
		return
	}

	out, err := h.service.Decide(c.Request.Context(), c.Param("id"), in.Action)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if out.Booking != nil {
		response.JSON(c, http.StatusOK, gin.H{
			"message": "Booking approved successfully",
			"booking": out.Booking,
		})
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Booking rejected"})
}

func (h *Handler) ListRequests(c *gin.Context) {
	reqs := h.service.ListRequests(c.Request.Context(), c.Query("studioId"), c.Query("userId"))
	response.JSON(c, http.StatusOK, gin.H{"bookingRequests": reqs})
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings := h.service.ListBookings(c.Request.Context(), c.Query("studioId"), c.Query("userId"))
	response.JSON(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, req, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if b != nil {
		response.JSON(c, http.StatusOK, b)
		return
	}
	response.JSON(c, http.StatusOK, req)
}

func (h *Handler) CancelBooking(c *gin.Context) {
	b, alreadyCancelled, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	msg := "Booking cancelled successfully"
	if alreadyCancelled {
		msg = "Booking is already cancelled"
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message": msg,
		"booking": b,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, err.Error(), response.CodeInvalidInput)
	case errors.Is(err, ErrInvalidAction):
		response.Error(c, http.StatusBadRequest, "Invalid action. Use 'approve' or 'reject'", response.CodeInvalidAction)
	case errors.Is(err, ErrAlreadyDecided):
		response.Error(c, http.StatusConflict, "Booking request has already been decided", response.CodeConflict)
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "Room is already booked for the selected time", response.CodeConflict)
	case errors.Is(err, ErrStudioNotFound):
		response.Error(c, http.StatusNotFound, "Studio not found", response.CodeNotFound)
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "Room not found", response.CodeNotFound)
	case errors.Is(err, ErrRequestNotFound):
		response.Error(c, http.StatusNotFound, "Booking request not found", response.CodeNotFound)
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "Booking not found", response.CodeNotFound)
	default:
		response.Error(c, http.StatusInternalServerError, "Internal error", response.CodeInternalError)
	}
}
