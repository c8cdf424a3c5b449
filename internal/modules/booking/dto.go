package booking

import (
	"encoding/json"
	"strconv"
	"strings"

	"sessiondesk/internal/domain"
)

// FlexID accepts either a JSON string or a JSON number, so clients that
// send numeric studio/room ids still match string-keyed records.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = FlexID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	// Render integers without an exponent or trailing zeros.
	if i, err := n.Int64(); err == nil {
		*f = FlexID(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexID(n.String())
	return nil
}

type CreateRequestInput struct {
	StudioID   FlexID  `json:"studioId"`
	RoomID     FlexID  `json:"roomId"`
	UserID     string  `json:"userId"`
	UserName   string  `json:"userName"`
	UserEmail  string  `json:"userEmail"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Duration   float64 `json:"duration"`
	HourlyRate float64 `json:"hourlyRate"`
	TotalCost  float64 `json:"totalCost"`
	Message    string  `json:"message"`
}

type DecideRequestInput struct {
	Action string `json:"action"`
}

// DecisionOutcome carries the result of an approve/reject action.
// Booking is set only when the action was an approval.
type DecisionOutcome struct {
	Request *domain.BookingRequest
	Booking *domain.Booking
}
