package repository

import (
	"sessiondesk/internal/domain"
	"sessiondesk/internal/store"
)

type UserRepository struct {
	db *store.DB
}

func NewUserRepository(db *store.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(id string) (*domain.User, bool) {
	u, ok := r.db.Users.Get(id)
	if !ok {
		return nil, false
	}
	return &u, true
}

func (r *UserRepository) GetByEmail(email string) (*domain.User, bool) {
	var found *domain.User
	r.db.Users.Scan(func(_ string, u domain.User) bool {
		if u.Email == email && email != "" {
			found = &u
			return false
		}
		return true
	})
	return found, found != nil
}

func (r *UserRepository) Save(u domain.User) {
	r.db.Users.Put(u.ID, u)
}
