package repository

import (
	"sort"

	"sessiondesk/internal/domain"
	"sessiondesk/internal/store"
)

type BookingRequestRepository struct {
	db *store.DB
}

func NewBookingRequestRepository(db *store.DB) *BookingRequestRepository {
	return &BookingRequestRepository{db: db}
}

func (r *BookingRequestRepository) GetByID(id string) (*domain.BookingRequest, bool) {
	req, ok := r.db.BookingRequests.Get(id)
	if !ok {
		return nil, false
	}
	return &req, true
}

func (r *BookingRequestRepository) Save(req domain.BookingRequest) {
	r.db.BookingRequests.Put(req.ID, req)
}

func (r *BookingRequestRepository) List(studioID, userID string) []domain.BookingRequest {
	out := []domain.BookingRequest{}
	r.db.BookingRequests.Scan(func(_ string, req domain.BookingRequest) bool {
		if studioID != "" && req.StudioID != studioID {
			return true
		}
		if userID != "" && req.UserID != userID {
			return true
		}
		out = append(out, req)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}

func (r *BookingRequestRepository) ByRoomAndDate(roomID, date string) []domain.BookingRequest {
	out := []domain.BookingRequest{}
	r.db.BookingRequests.Scan(func(_ string, req domain.BookingRequest) bool {
		if req.RoomID == roomID && req.Date == date {
			out = append(out, req)
		}
		return true
	})
	return out
}

func (r *BookingRequestRepository) Count() int {
	return r.db.BookingRequests.Len()
}
