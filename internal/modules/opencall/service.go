package opencall

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"sessiondesk/internal/domain"
)

type OpenCallRepository interface {
	GetByID(id string) (*domain.OpenCall, bool)
	Save(c domain.OpenCall)
	Delete(id string) bool
	List() []domain.OpenCall
}

type StudioDirectory interface {
	GetByID(id string) (*domain.Studio, bool)
}

type UserDirectory interface {
	GetByID(id string) (*domain.User, bool)
}

type Service struct {
	// mu serializes the duplicate-applicant scan against the applicant
	// append; without it two concurrent applications by the same user can
	// both pass the scan.
	mu sync.Mutex

	calls   OpenCallRepository
	studios StudioDirectory
	users   UserDirectory

	now   func() time.Time
	newID func() string
}

func NewService(calls OpenCallRepository, studios StudioDirectory, users UserDirectory) *Service {
	return &Service{
		calls:   calls,
		studios: studios,
		users:   users,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// List returns open calls newest first. Role matches as a
// case-insensitive substring, genre as a case-insensitive exact value.
func (s *Service) List(ctx context.Context, f ListFilter) []domain.OpenCall {
	out := []domain.OpenCall{}
	for _, c := range s.calls.List() {
		if f.Role != "" && !strings.EqualFold(f.Role, "all") {
			if !strings.Contains(strings.ToLower(c.Role), strings.ToLower(f.Role)) {
				continue
			}
		}
		if f.Genre != "" && !strings.EqualFold(f.Genre, "all") {
			if !strings.EqualFold(c.Genre, f.Genre) {
				continue
			}
		}
		if f.PosterID != "" && c.PostedByID != f.PosterID {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.OpenCall, error) {
	if in.PostedByID == "" || in.Role == "" || in.Description == "" {
		return nil, ErrValidation
	}

	postedByType := in.PostedByType
	if postedByType == "" {
		postedByType = "user"
	}

	// The poster's display name, image and contact email are resolved
	// once here and stored on the call.
	var name, image, email string
	switch postedByType {
	case "studio":
		studio, ok := s.studios.GetByID(in.PostedByID)
		if !ok {
			return nil, ErrInvalidPoster
		}
		name, image, email = studio.Name, studio.ProfileImage, studio.Email
	case "user":
		user, ok := s.users.GetByID(in.PostedByID)
		if !ok {
			return nil, ErrInvalidPoster
		}
		name, image, email = user.Name, user.ProfileImage, user.Email
	default:
		return nil, ErrInvalidPoster
	}
	if image == "" {
		image = "/placeholder.svg?height=40&width=40"
	}

	call := domain.OpenCall{
		ID:            s.newID(),
		PostedByID:    in.PostedByID,
		PostedByType:  postedByType,
		PostedByName:  name,
		PostedByImage: image,
		Role:          in.Role,
		Description:   in.Description,
		Genre:         in.Genre,
		Location:      in.Location,
		Budget:        in.Budget,
		Deadline:      in.Deadline,
		ContactEmail:  email,
		Status:        domain.OpenCallActive,
		CreatedAt:     s.timestamp(),
		Applicants:    []domain.Applicant{},
	}
	s.calls.Save(call)
	return &call, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.OpenCall, error) {
	call, ok := s.calls.GetByID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return call, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.OpenCall, error) {
	call, ok := s.calls.GetByID(id)
	if !ok {
		return nil, ErrNotFound
	}

	in.apply(call)
	call.UpdatedAt = s.timestamp()
	s.calls.Save(*call)
	return call, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.calls.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// Apply records a user's application. A user can apply to a call once.
func (s *Service) Apply(ctx context.Context, callID string, in ApplyInput) (*domain.Applicant, error) {
	if in.UserID == "" {
		return nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	call, ok := s.calls.GetByID(callID)
	if !ok {
		return nil, ErrNotFound
	}
	user, ok := s.users.GetByID(in.UserID)
	if !ok {
		return nil, ErrUserNotFound
	}
	for _, a := range call.Applicants {
		if a.UserID == in.UserID {
			return nil, ErrAlreadyApplied
		}
	}

	image := user.ProfileImage
	if image == "" {
		image = "/placeholder.svg?height=40&width=40"
	}
	applicant := domain.Applicant{
		UserID:    in.UserID,
		UserName:  displayName(user.Name),
		UserEmail: user.Email,
		UserImage: image,
		Message:   in.Message,
		AppliedAt: s.timestamp(),
	}
	call.Applicants = append(call.Applicants, applicant)
	s.calls.Save(*call)
	return &applicant, nil
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func displayName(name string) string {
	if name == "" {
		return "Unknown User"
	}
	return name
}
