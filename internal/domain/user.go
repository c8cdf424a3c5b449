package domain

type ProjectHighlight struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type User struct {
	ID                string             `json:"id"`
	Email             string             `json:"email"`
	Name              string             `json:"name"`
	Role              string             `json:"role"`
	Bio               string             `json:"bio,omitempty"`
	Location          string             `json:"location,omitempty"`
	Experience        string             `json:"experience,omitempty"`
	Genres            []string           `json:"genres,omitempty"`
	SocialMedia       map[string]string  `json:"socialMedia,omitempty"`
	TrackURL          string             `json:"trackUrl"`
	ProfileImage      string             `json:"profileImage,omitempty"`
	BannerImage       string             `json:"bannerImage,omitempty"`
	ProjectHighlights []ProjectHighlight `json:"projectHighlights,omitempty"`
	Following         []string           `json:"following"`
	Followers         []string           `json:"followers"`
	CreatedAt         string             `json:"created_at"`
	UpdatedAt         string             `json:"updated_at,omitempty"`
}
