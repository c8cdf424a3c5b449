package opencall

import "sessiondesk/internal/domain"

type CreateInput struct {
	PostedByID   string `json:"postedById"`
	PostedByType string `json:"postedByType"`
	Role         string `json:"role"`
	Description  string `json:"description"`
	Genre        string `json:"genre"`
	Location     string `json:"location"`
	Budget       string `json:"budget"`
	Deadline     string `json:"deadline"`
}

// ListFilter narrows the open-call listing. Zero values (and "all" for
// role/genre) match everything.
type ListFilter struct {
	Role     string
	Genre    string
	PosterID string
}

type UpdateInput struct {
	Role        *string                `json:"role"`
	Description *string                `json:"description"`
	Genre       *string                `json:"genre"`
	Location    *string                `json:"location"`
	Budget      *string                `json:"budget"`
	Deadline    *string                `json:"deadline"`
	Status      *domain.OpenCallStatus `json:"status"`
}

func (p *UpdateInput) apply(c *domain.OpenCall) {
	if p.Role != nil {
		c.Role = *p.Role
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Genre != nil {
		c.Genre = *p.Genre
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.Budget != nil {
		c.Budget = *p.Budget
	}
	if p.Deadline != nil {
		c.Deadline = *p.Deadline
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
}

type ApplyInput struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}
