package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quickcommerce/crm-portal/internal/domain"
)

// rosterKey is the snapshot key for the administrator roster slice.
const rosterKey = "admin"

// rosterSnapshot is the persisted layout of the roster slice.
type rosterSnapshot struct {
	Admins []domain.Administrator `json:"admins"`
}

// Roster owns the set of created administrator accounts. All mutations go
// through its methods; consumers only ever see copies.
type Roster struct {
	mu      sync.RWMutex
	admins  []domain.Administrator
	persist *FileStore
	logger  *zap.Logger
}

// NewRoster rehydrates the roster from its persisted snapshot, if any.
func NewRoster(persist *FileStore, logger *zap.Logger) (*Roster, error) {
	r := &Roster{persist: persist, logger: logger}

	var snap rosterSnapshot
	found, err := persist.Load(rosterKey, &snap)
	if err != nil {
		return nil, err
	}
	if found {
		r.admins = snap.Admins
	}
	return r, nil
}

// Add appends a new administrator carrying the given temporary password.
// Email uniqueness is deliberately not enforced; authentication resolves
// duplicates by first match.
func (r *Roster) Add(name, email string, role domain.Role, tempPassword string) domain.Administrator {
	admin := domain.Administrator{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Role:         role,
		TempPassword: tempPassword,
		CreatedAt:    time.Now().UTC(),
	}

	r.mu.Lock()
	r.admins = append(r.admins, admin)
	r.mu.Unlock()

	r.save()
	return admin
}

// UpdatePassword sets the permanent password for the administrator with the
// given id and clears the temporary one. An unknown id leaves the roster
// unchanged; it indicates the session and roster have drifted apart, so it
// is logged rather than silently swallowed.
func (r *Roster) UpdatePassword(id, password string) bool {
	r.mu.Lock()
	updated := false
	for i := range r.admins {
		if r.admins[i].ID == id {
			r.admins[i].Password = password
			r.admins[i].TempPassword = ""
			updated = true
			break
		}
	}
	r.mu.Unlock()

	if !updated {
		r.logger.Warn("password update for unknown administrator", zap.String("id", id))
		return false
	}

	r.save()
	return true
}

// FindByEmail returns the first administrator with an exactly matching
// email, preserving roster insertion order.
func (r *Roster) FindByEmail(email string) (domain.Administrator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, admin := range r.admins {
		if admin.Email == email {
			return admin, true
		}
	}
	return domain.Administrator{}, false
}

// Admins returns a copy of the roster in insertion order.
func (r *Roster) Admins() []domain.Administrator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Administrator, len(r.admins))
	copy(out, r.admins)
	return out
}

func (r *Roster) save() {
	r.mu.RLock()
	snap := rosterSnapshot{Admins: append([]domain.Administrator{}, r.admins...)}
	r.mu.RUnlock()

	if err := r.persist.Save(rosterKey, snap); err != nil {
		r.logger.Error("persist roster snapshot", zap.Error(err))
	}
}
