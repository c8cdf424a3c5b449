package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sessiondesk/internal/modules/booking"
)

func (h *handlers) ListBookingRequests(w http.ResponseWriter, r *http.Request) {
	reqs := h.deps.Bookings.ListRequests(r.Context(), r.URL.Query().Get("studioId"), r.URL.Query().Get("userId"))
	writeJSON(w, http.StatusOK, map[string]any{"bookingRequests": reqs})
}

func (h *handlers) CreateBookingRequest(w http.ResponseWriter, r *http.Request) {
	var in booking.CreateRequestInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", codeInvalidInput)
		return
	}

	req, err := h.deps.Bookings.CreateRequest(r.Context(), in)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *handlers) DecideBookingRequest(w http.ResponseWriter, r *http.Request) {
	var in booking.DecideRequestInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", codeInvalidInput)
		return
	}

	out, err := h.deps.Bookings.Decide(r.Context(), chi.URLParam(r, "id"), in.Action)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	if out.Booking != nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Booking approved successfully",
			"booking": out.Booking,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Booking rejected"})
}

func (h *handlers) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings := h.deps.Bookings.ListBookings(r.Context(), r.URL.Query().Get("studioId"), r.URL.Query().Get("userId"))
	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

func (h *handlers) GetBooking(w http.ResponseWriter, r *http.Request) {
	b, req, err := h.deps.Bookings.GetBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeBookingError(w, err)
		return
	}
	if b != nil {
		writeJSON(w, http.StatusOK, b)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *handlers) CancelBooking(w http.ResponseWriter, r *http.Request) {
	b, alreadyCancelled, err := h.deps.Bookings.CancelBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	msg := "Booking cancelled successfully"
	if alreadyCancelled {
		msg = "Booking is already cancelled"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": msg,
		"booking": b,
	})
}

func (h *handlers) writeBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, booking.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error(), codeInvalidInput)
	case errors.Is(err, booking.ErrInvalidAction):
		writeError(w, http.StatusBadRequest, "Invalid action. Use 'approve' or 'reject'", codeInvalidAction)
	case errors.Is(err, booking.ErrAlreadyDecided):
		writeError(w, http.StatusConflict, "Booking request has already been decided", codeConflict)
	case errors.Is(err, booking.ErrConflict):
		writeError(w, http.StatusConflict, "Room is already booked for the selected time", codeConflict)
	case errors.Is(err, booking.ErrStudioNotFound):
		writeError(w, http.StatusNotFound, "Studio not found", codeNotFound)
	case errors.Is(err, booking.ErrRoomNotFound):
		writeError(w, http.StatusNotFound, "Room not found", codeNotFound)
	case errors.Is(err, booking.ErrRequestNotFound):
		writeError(w, http.StatusNotFound, "Booking request not found", codeNotFound)
	case errors.Is(err, booking.ErrBookingNotFound):
		writeError(w, http.StatusNotFound, "Booking not found", codeNotFound)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", codeInternalError)
	}
}
