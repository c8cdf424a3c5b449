package auth

import "sessiondesk/internal/domain"

type LoginInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type SignupInput struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Phone      string `json:"phone"`
	StudioName string `json:"studioName"`
}

// AuthResult is the login/signup response payload. StudioID is set only
// for studio-role users.
type AuthResult struct {
	User     *domain.User `json:"user"`
	Token    string       `json:"token"`
	StudioID string       `json:"studioId,omitempty"`
}

// UserPatch carries the profile fields a PUT may change; nil fields are
// left as they are. Follow lists are owned by the social module and are
// not patchable here.
type UserPatch struct {
	Name              *string                    `json:"name"`
	Bio               *string                    `json:"bio"`
	Location          *string                    `json:"location"`
	Experience        *string                    `json:"experience"`
	Genres            *[]string                  `json:"genres"`
	SocialMedia       *map[string]string         `json:"socialMedia"`
	TrackURL          *string                    `json:"trackUrl"`
	ProfileImage      *string                    `json:"profileImage"`
	BannerImage       *string                    `json:"bannerImage"`
	ProjectHighlights *[]domain.ProjectHighlight `json:"projectHighlights"`
}

func (p *UserPatch) apply(u *domain.User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Experience != nil {
		u.Experience = *p.Experience
	}
	if p.Genres != nil {
		u.Genres = *p.Genres
	}
	if p.SocialMedia != nil {
		u.SocialMedia = *p.SocialMedia
	}
	if p.TrackURL != nil {
		u.TrackURL = *p.TrackURL
	}
	if p.ProfileImage != nil {
		u.ProfileImage = *p.ProfileImage
	}
	if p.BannerImage != nil {
		u.BannerImage = *p.BannerImage
	}
	if p.ProjectHighlights != nil {
		u.ProjectHighlights = *p.ProjectHighlights
	}
}
