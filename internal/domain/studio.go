package domain

// Room is immutable reference data owned by a studio. The lifecycle
// manager looks rooms up during request creation and approval but never
// mutates them.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	HourlyRate  float64  `json:"hourlyRate"`
	Capacity    int      `json:"capacity"`
	Images      []string `json:"images,omitempty"`
	Equipment   []string `json:"equipment,omitempty"`
}

type Studio struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Location       string            `json:"location"`
	Address        string            `json:"address"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	Website        string            `json:"website"`
	ProfileImage   string            `json:"profileImage"`
	CoverImage     string            `json:"coverImage"`
	HourlyRate     float64           `json:"hourlyRate"`
	Specialties    []string          `json:"specialties"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	Description    string            `json:"description"`
	Amenities      []string          `json:"amenities"`
	Owner          string            `json:"owner"`
	Images         []string          `json:"images"`
	Gallery        []string          `json:"gallery"`
	Equipment      []string          `json:"equipment"`
	Rooms          []Room            `json:"rooms"`
	Staff          []string          `json:"staff"`
	OperatingHours map[string]string `json:"operatingHours,omitempty"`
	IsAvailable    bool              `json:"isAvailable"`
	TrackURL       string            `json:"trackUrl"`
	Followers      []string          `json:"followers"`
	CreatedAt      string            `json:"createdAt,omitempty"`
	UpdatedAt      string            `json:"updatedAt,omitempty"`
}

// RoomByID resolves a room inside the studio's room list. Comparison is
// by string value so numeric ids sent by clients still match.
func (s *Studio) RoomByID(roomID string) *Room {
	for i := range s.Rooms {
		if s.Rooms[i].ID == roomID {
			return &s.Rooms[i]
		}
	}
	return nil
}
