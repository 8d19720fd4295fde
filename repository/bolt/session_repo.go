package bolt

import (
	"context"
	"time"

	"github.com/zenai/backend/domain"
	"github.com/zenai/backend/repository"
)

const currentUserKey = "currentUser"

type sessionRepository struct {
	store *Store
	ttl   time.Duration
}

// NewSessionRepository creates a Bolt-backed session repository holding the
// single active session pointer under the "currentUser" key.
func NewSessionRepository(store *Store, ttl time.Duration) repository.SessionRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &sessionRepository{store: store, ttl: ttl}
}

func (r *sessionRepository) Get(ctx context.Context) (*domain.Session, error) {
	var session domain.Session
	found, err := r.store.Get(currentUserKey, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrSessionNotFound
	}
	if session.IsExpired(time.Now()) {
		_ = r.store.Delete(currentUserKey)
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *domain.Session) error {
	if session == nil || session.ID == "" || session.UserID == "" {
		return domain.ErrInvalidPayload
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	if session.ExpiresAt.Before(session.CreatedAt) {
		session.ExpiresAt = session.CreatedAt.Add(r.ttl)
	}
	return r.store.Put(currentUserKey, session)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(currentUserKey)
}
