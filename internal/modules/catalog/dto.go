package catalog

import "sessiondesk/internal/domain"

// StudioView is a studio plus the derived followersCount field every
// studio response carries.
type StudioView struct {
	domain.Studio
	FollowersCount int `json:"followersCount"`
}

func newStudioView(s domain.Studio) StudioView {
	return StudioView{Studio: s, FollowersCount: len(s.Followers)}
}

// StudioPatch applies partial updates: nil fields are left untouched.
// Followers are never patchable; the follow graph owns them.
type StudioPatch struct {
	Owner          string             `json:"owner"`
	Name           *string            `json:"name"`
	Location       *string            `json:"location"`
	Address        *string            `json:"address"`
	Phone          *string            `json:"phone"`
	Email          *string            `json:"email"`
	Website        *string            `json:"website"`
	ProfileImage   *string            `json:"profileImage"`
	CoverImage     *string            `json:"coverImage"`
	Description    *string            `json:"description"`
	HourlyRate     *float64           `json:"hourlyRate"`
	Amenities      *[]string          `json:"amenities"`
	Specialties    *[]string          `json:"specialties"`
	Images         *[]string          `json:"images"`
	Gallery        *[]string          `json:"gallery"`
	Equipment      *[]string          `json:"equipment"`
	Rooms          *[]domain.Room     `json:"rooms"`
	OperatingHours *map[string]string `json:"operatingHours"`
	IsAvailable    *bool              `json:"isAvailable"`
	TrackURL       *string            `json:"trackUrl"`
	Staff          *[]string          `json:"staff"`
}

func (p *StudioPatch) apply(s *domain.Studio) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Website != nil {
		s.Website = *p.Website
	}
	if p.ProfileImage != nil {
		s.ProfileImage = *p.ProfileImage
	}
	if p.CoverImage != nil {
		s.CoverImage = *p.CoverImage
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.HourlyRate != nil {
		s.HourlyRate = *p.HourlyRate
	}
	if p.Amenities != nil {
		s.Amenities = *p.Amenities
	}
	if p.Specialties != nil {
		s.Specialties = *p.Specialties
	}
	if p.Images != nil {
		s.Images = *p.Images
	}
	if p.Gallery != nil {
		s.Gallery = *p.Gallery
	}
	if p.Equipment != nil {
		s.Equipment = *p.Equipment
	}
	if p.Rooms != nil {
		s.Rooms = *p.Rooms
	}
	if p.OperatingHours != nil {
		s.OperatingHours = *p.OperatingHours
	}
	if p.IsAvailable != nil {
		s.IsAvailable = *p.IsAvailable
	}
	if p.TrackURL != nil {
		s.TrackURL = *p.TrackURL
	}
	if p.Staff != nil {
		s.Staff = *p.Staff
	}
}
