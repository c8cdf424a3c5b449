package repository

import (
	"sort"

	"sessiondesk/internal/domain"
	"sessiondesk/internal/store"
)

type StudioRepository struct {
	db *store.DB
}

func NewStudioRepository(db *store.DB) *StudioRepository {
	return &StudioRepository{db: db}
}

func (r *StudioRepository) GetByID(id string) (*domain.Studio, bool) {
	s, ok := r.db.Studios.Get(id)
	if !ok {
		return nil, false
	}
	return &s, true
}

func (r *StudioRepository) GetByOwner(ownerEmail string) (*domain.Studio, bool) {
	var found *domain.Studio
	r.db.Studios.Scan(func(_ string, s domain.Studio) bool {
		if s.Owner == ownerEmail && ownerEmail != "" {
			found = &s
			return false
		}
		return true
	})
	return found, found != nil
}

// ListByOwner returns every studio owned by the given email.
func (r *StudioRepository) ListByOwner(ownerEmail string) []domain.Studio {
	out := []domain.Studio{}
	if ownerEmail == "" {
		return out
	}
	r.db.Studios.Scan(func(_ string, s domain.Studio) bool {
		if s.Owner == ownerEmail {
			out = append(out, s)
		}
		return true
	})
	sortStudios(out)
	return out
}

func (r *StudioRepository) List() []domain.Studio {
	out := make([]domain.Studio, 0, r.db.Studios.Len())
	r.db.Studios.Scan(func(_ string, s domain.Studio) bool {
		out = append(out, s)
		return true
	})
	sortStudios(out)
	return out
}

func (r *StudioRepository) Save(s domain.Studio) {
	r.db.Studios.Put(s.ID, s)
}

// OwnerStudioID resolves the studio a studio-owner user is mapped to.
func (r *StudioRepository) OwnerStudioID(userID string) (string, bool) {
	return r.db.OwnerStudios.Get(userID)
}

func (r *StudioRepository) SetOwnerStudio(userID, studioID string) {
	r.db.OwnerStudios.Put(userID, studioID)
}

// Map iteration order is random; listings sort by id so responses are
// stable between calls.
func sortStudios(s []domain.Studio) {
	sort.Slice(s, func(i, j int) bool { return s[i].ID < s[j].ID })
}
