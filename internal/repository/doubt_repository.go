package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/dymun-conference/portal-backend/internal/models"
	"github.com/dymun-conference/portal-backend/internal/store"
)

// ModerationUpdate is the only mutation allowed on an existing doubt:
// a chair response and/or the approval flag. Identifier, authorship and
// timestamp fields are not reachable through it.
type ModerationUpdate struct {
	Response   *string
	IsApproved *bool
}

// DoubtRepository persists forum doubts in insertion order.
type DoubtRepository struct {
	doc *store.Document[models.ForumDoubt]
}

func NewDoubtRepository(doc *store.Document[models.ForumDoubt]) *DoubtRepository {
	return &DoubtRepository{doc: doc}
}

// Create appends a fresh doubt: unapproved, no response yet.
func (r *DoubtRepository) Create(userID, committeeName, question string) (models.ForumDoubt, error) {
	doubt := models.ForumDoubt{
		ID:            uuid.NewString(),
		UserID:        userID,
		CommitteeName: committeeName,
		Question:      question,
		Response:      nil,
		IsApproved:    false,
		CreatedAt:     time.Now().UTC(),
	}
	err := r.doc.Mutate(func(doubts []models.ForumDoubt) ([]models.ForumDoubt, error) {
		return append(doubts, doubt), nil
	})
	if err != nil {
		return models.ForumDoubt{}, err
	}
	return doubt, nil
}

// FindByCommittee returns the approved doubts of one committee, oldest first.
func (r *DoubtRepository) FindByCommittee(committeeName string) []models.ForumDoubt {
	out := []models.ForumDoubt{}
	for _, d := range r.doc.All() {
		if d.CommitteeName == committeeName && d.IsApproved {
			out = append(out, d)
		}
	}
	return out
}

// FindByUser returns every doubt the user submitted, approved or not.
func (r *DoubtRepository) FindByUser(userID string) []models.ForumDoubt {
	out := []models.ForumDoubt{}
	for _, d := range r.doc.All() {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out
}

// FindAll returns the whole collection for the moderation view.
func (r *DoubtRepository) FindAll() []models.ForumDoubt {
	return r.doc.All()
}

// Update applies a moderation update to the doubt with the given id.
// Returns store.ErrNotFound when no such doubt exists.
func (r *DoubtRepository) Update(id string, upd ModerationUpdate) (models.ForumDoubt, error) {
	var updated models.ForumDoubt
	err := r.doc.Mutate(func(doubts []models.ForumDoubt) ([]models.ForumDoubt, error) {
		for i := range doubts {
			if doubts[i].ID != id {
				continue
			}
			if upd.Response != nil {
				doubts[i].Response = upd.Response
			}
			if upd.IsApproved != nil {
				doubts[i].IsApproved = *upd.IsApproved
			}
			updated = doubts[i]
			return doubts, nil
		}
		return nil, store.ErrNotFound
	})
	if err != nil {
		return models.ForumDoubt{}, err
	}
	return updated, nil
}
