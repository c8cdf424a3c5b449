package booking

import "sessiondesk/internal/domain"

// BookingRepository defines the booking operations the service consumes.
type BookingRepository interface {
	GetByID(id string) (*domain.Booking, bool)
	Save(b domain.Booking)
	List(studioID, userID string) []domain.Booking
	ByRoomAndDate(roomID, date string) []domain.Booking
}

// BookingRequestRepository defines the request operations the service consumes.
type BookingRequestRepository interface {
	GetByID(id string) (*domain.BookingRequest, bool)
	Save(req domain.BookingRequest)
	List(studioID, userID string) []domain.BookingRequest
	ByRoomAndDate(roomID, date string) []domain.BookingRequest
}

// StudioDirectory resolves studios (and through them, rooms) during
// request creation. Reference data only, never mutated here.
type StudioDirectory interface {
	GetByID(id string) (*domain.Studio, bool)
}
