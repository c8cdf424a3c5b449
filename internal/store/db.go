package store

import "sessiondesk/internal/domain"

// DB bundles every collection the mock backend serves. Both transports
// share one instance, so data written through the gin API is visible to
// the chi API and vice versa when they run in the same process.
type DB struct {
	Studios         *Collection[domain.Studio]
	Users           *Collection[domain.User]
	Bookings        *Collection[domain.Booking]
	BookingRequests *Collection[domain.BookingRequest]
	OpenCalls       *Collection[domain.OpenCall]

	// OwnerStudios maps a studio-owner user id to their studio id.
	OwnerStudios *Collection[string]
}

func Open() *DB {
	return &DB{
		Studios:         NewCollection[domain.Studio](),
		Users:           NewCollection[domain.User](),
		Bookings:        NewCollection[domain.Booking](),
		BookingRequests: NewCollection[domain.BookingRequest](),
		OpenCalls:       NewCollection[domain.OpenCall](),
		OwnerStudios:    NewCollection[string](),
	}
}
