package repository

import (
	"sort"

	"sessiondesk/internal/domain"
	"sessiondesk/internal/store"
)

type OpenCallRepository struct {
	db *store.DB
}

func NewOpenCallRepository(db *store.DB) *OpenCallRepository {
	return &OpenCallRepository{db: db}
}

func (r *OpenCallRepository) GetByID(id string) (*domain.OpenCall, bool) {
	c, ok := r.db.OpenCalls.Get(id)
	if !ok {
		return nil, false
	}
	return &c, true
}

func (r *OpenCallRepository) Save(c domain.OpenCall) {
	r.db.OpenCalls.Put(c.ID, c)
}

func (r *OpenCallRepository) Delete(id string) bool {
	return r.db.OpenCalls.Delete(id)
}

// List returns all open calls, newest first.
func (r *OpenCallRepository) List() []domain.OpenCall {
	out := make([]domain.OpenCall, 0, r.db.OpenCalls.Len())
	r.db.OpenCalls.Scan(func(_ string, c domain.OpenCall) bool {
		out = append(out, c)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}
