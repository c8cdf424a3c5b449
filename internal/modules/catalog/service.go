package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"sessiondesk/internal/domain"
)

type StudioRepository interface {
	GetByID(id string) (*domain.Studio, bool)
	GetByOwner(ownerEmail string) (*domain.Studio, bool)
	List() []domain.Studio
	Save(s domain.Studio)
}

type Service struct {
	studios StudioRepository

	now   func() time.Time
	newID func() string
}

func NewService(studios StudioRepository) *Service {
	return &Service{
		studios: studios,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// List returns all studios, optionally filtered by a case-insensitive
// location substring. "all" means no filter.
func (s *Service) List(ctx context.Context, location string) []StudioView {
	out := []StudioView{}
	for _, st := range s.studios.List() {
		if location != "" && !strings.EqualFold(location, "all") {
			if !strings.Contains(strings.ToLower(st.Location), strings.ToLower(location)) {
				continue
			}
		}
		out = append(out, newStudioView(st))
	}
	return out
}

func (s *Service) Get(ctx context.Context, id string) (*StudioView, error) {
	st, ok := s.studios.GetByID(id)
	if !ok {
		return nil, ErrStudioNotFound
	}
	v := newStudioView(*st)
	return &v, nil
}

// CreateOrUpdate resolves the studio by owner email: an existing studio
// is patched in place with its followers preserved, otherwise a new one
// is created. created tells the handler which status code to return.
func (s *Service) CreateOrUpdate(ctx context.Context, patch StudioPatch) (view *StudioView, created bool, err error) {
	if existing, ok := s.studios.GetByOwner(patch.Owner); ok {
		patch.apply(existing)
		existing.UpdatedAt = s.timestamp()
		s.studios.Save(*existing)
		v := newStudioView(*existing)
		return &v, false, nil
	}

	st := domain.Studio{
		ID:          s.newID(),
		Name:        "New Studio",
		Owner:       patch.Owner,
		Rating:      4.8,
		ReviewCount: 12,
		Specialties: []string{},
		Amenities:   []string{},
		Images:      []string{},
		Gallery:     []string{},
		Equipment:   []string{},
		Rooms:       []domain.Room{},
		Staff:       []string{},
		Followers:   []string{},
		IsAvailable: true,
		CreatedAt:   s.timestamp(),
	}
	patch.apply(&st)
	s.studios.Save(st)
	v := newStudioView(st)
	return &v, true, nil
}

// Update patches an existing studio by id.
func (s *Service) Update(ctx context.Context, id string, patch StudioPatch) (*StudioView, error) {
	st, ok := s.studios.GetByID(id)
	if !ok {
		return nil, ErrStudioNotFound
	}

	patch.apply(st)
	st.UpdatedAt = s.timestamp()
	s.studios.Save(*st)

	v := newStudioView(*st)
	return &v, nil
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}
