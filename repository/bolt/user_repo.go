package bolt

import (
	"context"

	"github.com/zenai/backend/domain"
	"github.com/zenai/backend/repository"
)

const usersKey = "users"

type userRepository struct {
	store *Store
}

// NewUserRepository creates a Bolt-backed user repository. All users live in
// one ordered record under the "users" key.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	if user == nil || user.ID == "" {
		return domain.ErrInvalidPayload
	}
	var users []domain.User
	return r.store.Update(usersKey, &users, func(found bool) (interface{}, error) {
		for i := range users {
			if users[i].ID == user.ID {
				users[i] = *user
				return users, nil
			}
		}
		return append(users, *user), nil
	})
}

func (r *userRepository) load() ([]domain.User, error) {
	var users []domain.User
	if _, err := r.store.Get(usersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}
