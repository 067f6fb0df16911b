package repository

import (
	"strings"

	"github.com/dymun-conference/portal-backend/internal/models"
	"github.com/dymun-conference/portal-backend/internal/store"
)

// UserRepository reads the delegate roster. Users are written once at seed
// time and immutable afterwards.
type UserRepository struct {
	doc *store.Document[models.User]
}

func NewUserRepository(doc *store.Document[models.User]) *UserRepository {
	return &UserRepository{doc: doc}
}

func (r *UserRepository) FindByID(id string) (models.User, bool) {
	for _, u := range r.doc.All() {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (r *UserRepository) FindByGmail(gmail string) (models.User, bool) {
	gmail = strings.TrimSpace(strings.ToLower(gmail))
	for _, u := range r.doc.All() {
		if strings.ToLower(u.Gmail) == gmail {
			return u, true
		}
	}
	return models.User{}, false
}

func (r *UserRepository) FindByIDNumber(idNumber string) (models.User, bool) {
	for _, u := range r.doc.All() {
		if u.IDNumber == idNumber {
			return u, true
		}
	}
	return models.User{}, false
}

func (r *UserRepository) FindAll() []models.User {
	return r.doc.All()
}

func (r *UserRepository) Count() int {
	return len(r.doc.All())
}

// Insert appends a user to the roster document. Seed-time only.
func (r *UserRepository) Insert(u models.User) error {
	return r.doc.Mutate(func(users []models.User) ([]models.User, error) {
		return append(users, u), nil
	})
}
