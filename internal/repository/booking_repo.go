package repository

import (
	"sort"

	"sessiondesk/internal/domain"
	"sessiondesk/internal/store"
)

type BookingRepository struct {
	db *store.DB
}

func NewBookingRepository(db *store.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) GetByID(id string) (*domain.Booking, bool) {
	b, ok := r.db.Bookings.Get(id)
	if !ok {
		return nil, false
	}
	return &b, true
}

func (r *BookingRepository) Save(b domain.Booking) {
	r.db.Bookings.Put(b.ID, b)
}

// List returns bookings matching the optional studio/user filters.
// Empty filter values match everything.
func (r *BookingRepository) List(studioID, userID string) []domain.Booking {
	out := []domain.Booking{}
	r.db.Bookings.Scan(func(_ string, b domain.Booking) bool {
		if studioID != "" && b.StudioID != studioID {
			return true
		}
		if userID != "" && b.UserID != userID {
			return true
		}
		out = append(out, b)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}

// ByRoomAndDate returns every booking on the given room and calendar
// date, regardless of status. Date matching is exact string equality.
func (r *BookingRepository) ByRoomAndDate(roomID, date string) []domain.Booking {
	out := []domain.Booking{}
	r.db.Bookings.Scan(func(_ string, b domain.Booking) bool {
		if b.RoomID == roomID && b.Date == date {
			out = append(out, b)
		}
		return true
	})
	return out
}

func (r *BookingRepository) Count() int {
	return r.db.Bookings.Len()
}
