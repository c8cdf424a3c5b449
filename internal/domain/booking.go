package domain

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestApproved  RequestStatus = "approved"
	RequestRejected  RequestStatus = "rejected"
	RequestCancelled RequestStatus = "cancelled"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingRequest is a not-yet-committed reservation awaiting studio
// approval. Studio, room and user names are denormalized at creation
// time so listings do not need joins.
type BookingRequest struct {
	ID         string        `json:"id"`
	StudioID   string        `json:"studioId"`
	StudioName string        `json:"studioName"`
	RoomID     string        `json:"roomId"`
	RoomName   string        `json:"roomName"`
	UserID     string        `json:"userId"`
	UserName   string        `json:"userName"`
	UserEmail  string        `json:"userEmail"`
	Date       string        `json:"date"`
	StartTime  string        `json:"startTime"`
	EndTime    string        `json:"endTime"`
	Duration   float64       `json:"duration"`
	HourlyRate float64       `json:"hourlyRate"`
	TotalCost  float64       `json:"totalCost"`
	Message    string        `json:"message"`
	Status     RequestStatus `json:"status"`
	CreatedAt  string        `json:"createdAt"`
}

// Booking is a committed reservation. It is created only by approving a
// BookingRequest and carries a snapshot of the request's scheduling
// fields, not a live reference.
type Booking struct {
	ID          string        `json:"id"`
	StudioID    string        `json:"studioId"`
	StudioName  string        `json:"studioName"`
	RoomID      string        `json:"roomId"`
	RoomName    string        `json:"roomName"`
	UserID      string        `json:"userId"`
	UserName    string        `json:"userName"`
	UserEmail   string        `json:"userEmail"`
	Date        string        `json:"date"`
	StartTime   string        `json:"startTime"`
	EndTime     string        `json:"endTime"`
	Duration    float64       `json:"duration"`
	HourlyRate  float64       `json:"hourlyRate"`
	TotalCost   float64       `json:"totalCost"`
	Message     string        `json:"message"`
	Status      BookingStatus `json:"status"`
	CreatedAt   string        `json:"createdAt"`
	ApprovedAt  string        `json:"approvedAt"`
	CancelledAt string        `json:"cancelledAt,omitempty"`
}
