package domain

type OpenCallStatus string

const (
	OpenCallActive OpenCallStatus = "active"
	OpenCallClosed OpenCallStatus = "closed"
)

type Applicant struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserImage string `json:"userImage"`
	Message   string `json:"message"`
	AppliedAt string `json:"appliedAt"`
}

// OpenCall is a job/collaboration posting. It can be posted either by a
// studio or by a user; poster name, image and contact email are resolved
// once at creation time.
type OpenCall struct {
	ID            string         `json:"id"`
	PostedByID    string         `json:"postedById"`
	PostedByType  string         `json:"postedByType"`
	PostedByName  string         `json:"postedByName"`
	PostedByImage string         `json:"postedByImage"`
	Role          string         `json:"role"`
	Description   string         `json:"description"`
	Genre         string         `json:"genre"`
	Location      string         `json:"location"`
	Budget        string         `json:"budget"`
	Deadline      string         `json:"deadline"`
	ContactEmail  string         `json:"contactEmail"`
	Status        OpenCallStatus `json:"status"`
	CreatedAt     string         `json:"createdAt"`
	UpdatedAt     string         `json:"updatedAt,omitempty"`
	Applicants    []Applicant    `json:"applicants"`
}
