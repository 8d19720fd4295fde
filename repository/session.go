package repository

import (
	"context"

	"github.com/zenai/backend/domain"
)

type SessionRepository interface {
	Get(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Clear(ctx context.Context) error
}
