package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"sessiondesk/internal/domain"
)

// Service owns the booking request lifecycle and the conflict check that
// gates approval.
type Service struct {
	// mu serializes every lifecycle mutation. Creation and approval are
	// check-then-act over the shared store; without this lock two
	// concurrent requests could both pass the conflict check and double
	// book a slot.
	mu sync.Mutex

	bookings BookingRepository
	requests BookingRequestRepository
	studios  StudioDirectory

	now   func() time.Time
	newID func() string
}

func NewService(bookings BookingRepository, requests BookingRequestRepository, studios StudioDirectory) *Service {
	return &Service{
		bookings: bookings,
		requests: requests,
		studios:  studios,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// HasConflict reports whether the candidate interval overlaps any
// confirmed booking or pending request on the same room and date. Date
// matching is exact string equality. excludeID skips one record in both
// collections so an approval re-check does not collide with the request
// being approved. Malformed stored or candidate times surface as errors.
func (s *Service) HasConflict(roomID, date, startTime, endTime, excludeID string) (bool, error) {
	start, err := parseClock(startTime)
	if err != nil {
		return false, err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return false, err
	}

	for _, b := range s.bookings.ByRoomAndDate(roomID, date) {
		if b.ID == excludeID {
			continue
		}
		// Cancelled bookings free their slot.
		if b.Status == domain.BookingCancelled {
			continue
		}
		bStart, err := parseClock(b.StartTime)
		if err != nil {
			return false, err
		}
		bEnd, err := parseClock(b.EndTime)
		if err != nil {
			return false, err
		}
		if overlaps(start, end, bStart, bEnd) {
			return true, nil
		}
	}

	for _, req := range s.requests.ByRoomAndDate(roomID, date) {
		if req.ID == excludeID {
			continue
		}
		// Approved requests are excluded: their booking is the
		// authoritative record. Rejected and cancelled do not hold slots.
		if req.Status != domain.RequestPending {
			continue
		}
		rStart, err := parseClock(req.StartTime)
		if err != nil {
			return false, err
		}
		rEnd, err := parseClock(req.EndTime)
		if err != nil {
			return false, err
		}
		if overlaps(start, end, rStart, rEnd) {
			return true, nil
		}
	}

	return false, nil
}

func (s *Service) CreateRequest(ctx context.Context, in CreateRequestInput) (*domain.BookingRequest, error) {
	if in.StudioID == "" || in.RoomID == "" || in.Date == "" || in.StartTime == "" || in.EndTime == "" {
		return nil, ErrValidation
	}
	if !validDate(in.Date) {
		return nil, ErrValidation
	}
	start, err := parseClock(in.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(in.EndTime)
	if err != nil {
		return nil, err
	}
	if start >= end {
		return nil, ErrValidation
	}

	studio, ok := s.studios.GetByID(string(in.StudioID))
	if !ok {
		return nil, ErrStudioNotFound
	}
	room := studio.RoomByID(string(in.RoomID))
	if room == nil {
		return nil, ErrRoomNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conflict, err := s.HasConflict(string(in.RoomID), in.Date, in.StartTime, in.EndTime, "")
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrConflict
	}

	hourlyRate := in.HourlyRate
	if hourlyRate == 0 {
		hourlyRate = room.HourlyRate
	}
	duration := in.Duration
	if duration == 0 {
		duration = 1
	}

	req := domain.BookingRequest{
		ID:         s.newID(),
		StudioID:   string(in.StudioID),
		StudioName: studio.Name,
		RoomID:     string(in.RoomID),
		RoomName:   room.Name,
		UserID:     in.UserID,
		UserName:   in.UserName,
		UserEmail:  in.UserEmail,
		Date:       in.Date,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Duration:   duration,
		HourlyRate: hourlyRate,
		TotalCost:  in.TotalCost,
		Message:    in.Message,
		Status:     domain.RequestPending,
		CreatedAt:  s.timestamp(),
	}
	s.requests.Save(req)
	return &req, nil
}

// Decide applies an approve or reject action to a pending request.
// Approval re-runs the conflict check with the request itself excluded;
// another booking confirmed for the slot since creation blocks it and
// the request stays pending.
func (s *Service) Decide(ctx context.Context, requestID, action string) (*DecisionOutcome, error) {
	if action != "approve" && action != "reject" {
		return nil, ErrInvalidAction
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests.GetByID(requestID)
	if !ok {
		return nil, ErrRequestNotFound
	}
	if req.Status != domain.RequestPending {
		return nil, ErrAlreadyDecided
	}

	if action == "reject" {
		req.Status = domain.RequestRejected
		s.requests.Save(*req)
		return &DecisionOutcome{Request: req}, nil
	}

	conflict, err := s.HasConflict(req.RoomID, req.Date, req.StartTime, req.EndTime, req.ID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrConflict
	}

	// Snapshot every scheduling field; the booking and the request are
	// independent records from here on.
	b := domain.Booking{
		ID:         s.newID(),
		StudioID:   req.StudioID,
		StudioName: req.StudioName,
		RoomID:     req.RoomID,
		RoomName:   req.RoomName,
		UserID:     req.UserID,
		UserName:   req.UserName,
		UserEmail:  req.UserEmail,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Duration:   req.Duration,
		HourlyRate: req.HourlyRate,
		TotalCost:  req.TotalCost,
		Message:    req.Message,
		Status:     domain.BookingConfirmed,
		CreatedAt:  req.CreatedAt,
		ApprovedAt: s.timestamp(),
	}
	s.bookings.Save(b)

	req.Status = domain.RequestApproved
	s.requests.Save(*req)

	return &DecisionOutcome{Request: req, Booking: &b}, nil
}

// CancelBooking marks a confirmed booking cancelled. Cancelling an
// already-cancelled booking succeeds without touching the record;
// alreadyCancelled tells the caller which case occurred.
func (s *Service) CancelBooking(ctx context.Context, bookingID string) (b *domain.Booking, alreadyCancelled bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings.GetByID(bookingID)
	if !ok {
		return nil, false, ErrBookingNotFound
	}
	if b.Status == domain.BookingCancelled {
		return b, true, nil
	}

	b.Status = domain.BookingCancelled
	b.CancelledAt = s.timestamp()
	s.bookings.Save(*b)
	return b, false, nil
}

func (s *Service) ListBookings(ctx context.Context, studioID, userID string) []domain.Booking {
	return s.bookings.List(studioID, userID)
}

func (s *Service) ListRequests(ctx context.Context, studioID, userID string) []domain.BookingRequest {
	return s.requests.List(studioID, userID)
}

// GetBooking looks the id up among confirmed bookings first and falls
// back to booking requests, so clients can resolve either kind of record
// from one endpoint.
func (s *Service) GetBooking(ctx context.Context, id string) (*domain.Booking, *domain.BookingRequest, error) {
	if b, ok := s.bookings.GetByID(id); ok {
		return b, nil, nil
	}
	if req, ok := s.requests.GetByID(id); ok {
		return nil, req, nil
	}
	return nil, nil, ErrBookingNotFound
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}
